package dto

// LikeResultDTO 点赞切换结果
type LikeResultDTO struct {
	Liked     bool  `json:"liked"`
	LikeCount int64 `json:"like_count"`
}

// ReactionCreateDTO 表情反应请求
type ReactionCreateDTO struct {
	Emoji string `json:"emoji" binding:"required" validate:"min=1,max=32"`
}

// ReactionDTO 已存储的表情反应
type ReactionDTO struct {
	UserID    uint64 `json:"user_id"`
	PostID    uint64 `json:"post_id"`
	Emoji     string `json:"emoji"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// EngagementStateDTO 帖子互动状态
type EngagementStateDTO struct {
	ViewCount     int64 `json:"view_count"`
	LikeCount     int64 `json:"like_count"`
	CommentCount  int64 `json:"comment_count"`
	ReactionCount int64 `json:"reaction_count"`
	IsLiked       bool  `json:"is_liked"`
}

// CommentCreateDTO 创建评论请求
type CommentCreateDTO struct {
	PostID  uint64 `json:"post_id" binding:"required"`
	Message string `json:"message" binding:"required,max=1000"`
}

// CommentListDTO 评论分页查询
type CommentListDTO struct {
	Page     int `form:"page,default=1" binding:"min=1"`
	PageSize int `form:"page_size,default=20" binding:"min=1,max=100"`
}

// CommentDTO 评论详情，作者仅暴露公开身份
type CommentDTO struct {
	ID        uint64 `json:"id"`
	PostID    uint64 `json:"post_id"`
	UserID    uint64 `json:"user_id"`
	Username  string `json:"username"`
	Message   string `json:"message"`
	CreatedAt string `json:"created_at"`
}

// AnalyticsSummaryDTO 全站互动汇总
type AnalyticsSummaryDTO struct {
	TotalViews    int64 `json:"total_views"`
	TotalLikes    int64 `json:"total_likes"`
	TotalComments int64 `json:"total_comments"`
}
