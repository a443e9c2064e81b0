package handler

import (
	"errors"

	"bloggers/internal/api/dto"
	"bloggers/internal/api/middleware"
	"bloggers/internal/api/response"
	"bloggers/internal/service"
	"bloggers/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register 用户注册
// @Summary 用户注册
// @Description 注册新用户，用户名取邮箱最后一个 @ 之前的部分
// @Tags 用户
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "注册信息"
// @Success 201 {object} response.Response{data=dto.UserInfo} "注册成功"
// @Failure 400 {object} response.ErrorResponse "请求参数无效/邮箱已注册"
// @Router /users [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数无效: "+err.Error())
		return
	}

	userInfo, err := h.authService.Register(&req)
	if err != nil {
		if errors.Is(err, service.ErrEmailExists) || errors.Is(err, service.ErrUsernameExists) {
			response.BadRequest(c, err.Error())
			return
		}
		logger.Error("Register failed", zap.Error(err))
		response.InternalError(c, "注册失败，请稍后重试")
		return
	}

	response.Created(c, "注册成功", userInfo)
}

// Token 用户登录，签发 JWT
// @Summary 获取访问令牌
// @Description 使用用户名和密码换取 JWT，响应 data.access 为令牌
// @Tags 用户
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "登录信息"
// @Success 200 {object} response.Response{data=dto.TokenData} "登录成功"
// @Failure 400 {object} response.ErrorResponse "请求参数无效/用户名或密码错误"
// @Router /token [post]
func (h *AuthHandler) Token(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数无效: "+err.Error())
		return
	}

	tokenData, err := h.authService.Login(&req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredential) || errors.Is(err, service.ErrUserInactive) {
			response.BadRequest(c, err.Error())
			return
		}
		logger.Error("Login failed", zap.Error(err))
		response.InternalError(c, "登录失败，请稍后重试")
		return
	}

	response.OK(c, "登录成功", tokenData)
}

// Me 获取当前用户信息
// @Summary 获取当前用户信息
// @Description 获取当前登录用户详情，附带粉丝与关注列表
// @Tags 用户
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response{data=dto.ProfileData} "获取成功"
// @Failure 401 {object} response.ErrorResponse "未授权"
// @Router /users/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	username, ok := middleware.GetCurrentUsername(c)
	if !ok {
		response.Unauthorized(c, "无法获取用户信息")
		return
	}

	profile, err := h.authService.GetProfile(username)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.Unauthorized(c, err.Error())
			return
		}
		logger.Error("Get profile failed", zap.Error(err), zap.String("username", username))
		response.InternalError(c, "获取用户信息失败")
		return
	}

	response.OK(c, "获取成功", profile)
}
