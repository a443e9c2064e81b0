package dto

// CommentCreateRequest 发表评论请求
type CommentCreateRequest struct {
	Text string `json:"text" binding:"required"`
}

// CommentInfo 评论信息，user 为评论者用户名
type CommentInfo struct {
	ID   int64  `json:"id"`
	Text string `json:"text"`
	User string `json:"user"`
}

// LikeInfo 点赞信息，user 为点赞者用户名
type LikeInfo struct {
	ID   int64  `json:"id"`
	User string `json:"user"`
}
