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

type CommentHandler struct {
	commentService *service.CommentService
}

func NewCommentHandler(commentService *service.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

// Create 评论博客
// @Summary 评论博客
// @Description 对指定博客发表评论
// @Tags 评论
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "博客ID"
// @Param request body dto.CommentCreateRequest true "评论内容"
// @Success 201 {object} response.Response{data=dto.CommentInfo} "评论成功"
// @Failure 400 {object} response.ErrorResponse "请求参数无效"
// @Failure 401 {object} response.ErrorResponse "未授权"
// @Failure 404 {object} response.ErrorResponse "博客不存在"
// @Router /blogs/comment/{id} [post]
func (h *CommentHandler) Create(c *gin.Context) {
	username, ok := middleware.GetCurrentUsername(c)
	if !ok {
		response.Unauthorized(c, "无法获取用户信息")
		return
	}

	blogID, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.CommentCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数无效: "+err.Error())
		return
	}

	commentInfo, err := h.commentService.Create(username, blogID, &req)
	if err != nil {
		if errors.Is(err, service.ErrBlogNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		logger.Error("Create comment failed", zap.Error(err),
			zap.Int64("blog_id", blogID), zap.String("username", username))
		response.InternalError(c, "评论失败，请稍后重试")
		return
	}

	response.Created(c, "评论成功", commentInfo)
}
