package dto

// RegisterRequest 注册请求，用户名由邮箱派生，不由客户端提供
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email,max=255"`
	Password string `json:"password" binding:"required,max=255"`
	Name     string `json:"name" binding:"required,max=255"`
}

// LoginRequest 登录请求
type LoginRequest struct {
	Username string `json:"username" binding:"required,max=255"`
	Password string `json:"password" binding:"required,max=255"`
}

// TokenData 登录成功返回的 Token 信息
type TokenData struct {
	Access    string `json:"access"`
	TokenType string `json:"token_type"`
	ExpiresIn int    `json:"expires_in"`
}

// UserInfo 用户公开信息（不含密码及哈希）
type UserInfo struct {
	Username string  `json:"username"`
	Email    string  `json:"email"`
	Name     string  `json:"name"`
	Avatar   *string `json:"avatar"`
}

// ProfileData 当前用户详情，附带粉丝与关注列表
type ProfileData struct {
	UserInfo
	Followers []UserInfo `json:"followers"`
	Following []UserInfo `json:"following"`
}
