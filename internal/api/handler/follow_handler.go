package handler

import (
	"errors"

	"bloggers/internal/api/middleware"
	"bloggers/internal/api/response"
	"bloggers/internal/service"
	"bloggers/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type FollowHandler struct {
	followService *service.FollowService
}

func NewFollowHandler(followService *service.FollowService) *FollowHandler {
	return &FollowHandler{followService: followService}
}

// Follow 关注用户
// @Summary 关注用户
// @Description 关注指定用户，重复关注不报错
// @Tags 关注
// @Produce json
// @Security BearerAuth
// @Param username path string true "被关注用户名"
// @Success 201 {object} response.Response "关注成功"
// @Failure 400 {object} response.ErrorResponse "不能关注自己"
// @Failure 401 {object} response.ErrorResponse "未授权"
// @Failure 404 {object} response.ErrorResponse "用户不存在"
// @Router /users/follow/{username} [post]
func (h *FollowHandler) Follow(c *gin.Context) {
	follower, ok := middleware.GetCurrentUsername(c)
	if !ok {
		response.Unauthorized(c, "无法获取用户信息")
		return
	}
	target := c.Param("username")

	if err := h.followService.Follow(follower, target); err != nil {
		h.handleFollowError(c, err, follower, target)
		return
	}

	response.Created(c, "关注成功", nil)
}

// Unfollow 取消关注
// @Summary 取消关注
// @Description 取消关注指定用户，未关注时同样返回成功
// @Tags 关注
// @Produce json
// @Security BearerAuth
// @Param username path string true "被取关用户名"
// @Success 204 "取关成功"
// @Failure 401 {object} response.ErrorResponse "未授权"
// @Failure 404 {object} response.ErrorResponse "用户不存在"
// @Router /users/unfollow/{username} [delete]
func (h *FollowHandler) Unfollow(c *gin.Context) {
	follower, ok := middleware.GetCurrentUsername(c)
	if !ok {
		response.Unauthorized(c, "无法获取用户信息")
		return
	}
	target := c.Param("username")

	if err := h.followService.Unfollow(follower, target); err != nil {
		h.handleFollowError(c, err, follower, target)
		return
	}

	response.NoContent(c)
}

func (h *FollowHandler) handleFollowError(c *gin.Context, err error, follower, target string) {
	switch {
	case errors.Is(err, service.ErrCannotFollowSelf):
		response.BadRequest(c, err.Error())
	case errors.Is(err, service.ErrUserNotFound):
		response.NotFound(c, err.Error())
	default:
		logger.Error("Follow operation failed", zap.Error(err),
			zap.String("follower", follower), zap.String("target", target))
		response.InternalError(c, "操作失败，请稍后重试")
	}
}
