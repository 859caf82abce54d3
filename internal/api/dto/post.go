package dto

// PostDTO 帖子详情，附带插图、表情反应与点赞用户
type PostDTO struct {
	ID           uint64 `json:"id"`
	AuthorID     uint64 `json:"author_id"`
	Title        string `json:"title"`
	Content      string `json:"content"`
	ViewCount    int    `json:"view_count"`
	LikeCount    int    `json:"like_count"`
	CommentCount int    `json:"comment_count"`
	CreatedAt    string `json:"created_at"`
	UpdatedAt    string `json:"updated_at"`

	Illustrations []*IllustrationDTO   `json:"illustrations"`
	Reactions     []*ReactionByUserDTO `json:"reactions"`
	LikedUserIDs  []uint64             `json:"liked_user_ids"`
}

// IllustrationDTO 插图
type IllustrationDTO struct {
	ID        uint64 `json:"id"`
	Content   string `json:"content"`
	URL       string `json:"url"`
	SortOrder int    `json:"sort_order"`
}

// ReactionByUserDTO 某用户对帖子的表情反应
type ReactionByUserDTO struct {
	Username string `json:"username"`
	Emoji    string `json:"emoji"`
}

// IllustrationInputDTO 插图输入，object_name 为空表示纯文字插图
type IllustrationInputDTO struct {
	Content    string `json:"content" binding:"required" validate:"min=1"`
	ObjectName string `json:"object_name" validate:"max=512"`
}

// PostBaseDTO 帖子新增或修改
type PostBaseDTO struct {
	Title         string                  `json:"title" binding:"required" validate:"min=1,max=255"`
	Content       string                  `json:"content" binding:"required" validate:"min=1"`
	Illustrations []*IllustrationInputDTO `json:"illustrations" validate:"max=5"`
}
