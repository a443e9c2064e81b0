package dto

// AvatarData 头像上传结果
type AvatarData struct {
	AvatarURL string `json:"avatar_url"`
}

// LikeCountData 点赞操作结果
type LikeCountData struct {
	BlogID     int64 `json:"blog_id"`
	LikesCount int64 `json:"likes_count"`
}
