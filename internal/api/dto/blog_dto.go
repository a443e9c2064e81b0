package dto

import "time"

// BlogCreateRequest 创建博客请求
type BlogCreateRequest struct {
	Title string `json:"title" binding:"required,max=255"`
	Desc  string `json:"desc" binding:"required"`
}

// BlogInfo 博客基本信息
type BlogInfo struct {
	ID         int64     `json:"id"`
	Title      string    `json:"title"`
	Desc       string    `json:"desc"`
	CreatedAt  time.Time `json:"created_at"`
	Author     string    `json:"author"`
	LikesCount int64     `json:"likes_count"`
}

// BlogDetail 博客详情，附带评论和点赞
type BlogDetail struct {
	BlogInfo
	Comments []CommentInfo `json:"comments"`
	Likes    []LikeInfo    `json:"likes"`
}

// BlogListData 博客列表数据
type BlogListData struct {
	Blogs []BlogDetail `json:"blogs"`
	Total int64        `json:"total"`
}

// TimelineData 时间线数据
type TimelineData struct {
	Blogs []BlogInfo `json:"blogs"`
	Total int64      `json:"total"`
}
