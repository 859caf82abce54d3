package consts

const (
	PostLikeKey         = "post:like:"
	PostViewKey         = "post:view:"
	PostCommentKey      = "post:comment:"
	PostReactionKey     = "post:reaction:"
	PostDirtyKey        = "post:dirty"
	AnalyticsSummaryKey = "analytics:summary"
)
