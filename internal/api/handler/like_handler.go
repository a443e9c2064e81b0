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

type LikeHandler struct {
	likeService *service.LikeService
}

func NewLikeHandler(likeService *service.LikeService) *LikeHandler {
	return &LikeHandler{likeService: likeService}
}

// Like 点赞博客
// @Summary 点赞博客
// @Description 点赞指定博客，重复点赞不报错，返回最新点赞数
// @Tags 点赞
// @Produce json
// @Security BearerAuth
// @Param id path int true "博客ID"
// @Success 200 {object} response.Response{data=dto.LikeCountData} "点赞成功"
// @Failure 401 {object} response.ErrorResponse "未授权"
// @Failure 404 {object} response.ErrorResponse "博客不存在"
// @Router /blogs/like/{id} [post]
func (h *LikeHandler) Like(c *gin.Context) {
	username, ok := middleware.GetCurrentUsername(c)
	if !ok {
		response.Unauthorized(c, "无法获取用户信息")
		return
	}

	blogID, ok := parseIDParam(c)
	if !ok {
		return
	}

	countData, err := h.likeService.Like(username, blogID)
	if err != nil {
		h.handleLikeError(c, err, blogID, username)
		return
	}

	response.OK(c, "点赞成功", countData)
}

// Unlike 取消点赞
// @Summary 取消点赞
// @Description 取消对指定博客的点赞，未点赞时同样返回成功
// @Tags 点赞
// @Produce json
// @Security BearerAuth
// @Param id path int true "博客ID"
// @Success 204 "取消成功"
// @Failure 401 {object} response.ErrorResponse "未授权"
// @Failure 404 {object} response.ErrorResponse "博客不存在"
// @Router /blogs/unlike/{id} [delete]
func (h *LikeHandler) Unlike(c *gin.Context) {
	username, ok := middleware.GetCurrentUsername(c)
	if !ok {
		response.Unauthorized(c, "无法获取用户信息")
		return
	}

	blogID, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.likeService.Unlike(username, blogID); err != nil {
		h.handleLikeError(c, err, blogID, username)
		return
	}

	response.NoContent(c)
}

func (h *LikeHandler) handleLikeError(c *gin.Context, err error, blogID int64, username string) {
	switch {
	case errors.Is(err, service.ErrBlogNotFound):
		response.NotFound(c, err.Error())
	default:
		logger.Error("Like operation failed", zap.Error(err),
			zap.Int64("blog_id", blogID), zap.String("username", username))
		response.InternalError(c, "操作失败，请稍后重试")
	}
}
