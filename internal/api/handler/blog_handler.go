package handler

import (
	"errors"
	"strconv"

	"bloggers/internal/api/dto"
	"bloggers/internal/api/middleware"
	"bloggers/internal/api/response"
	"bloggers/internal/service"
	"bloggers/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const defaultTimelineLimit = 50

type BlogHandler struct {
	blogService     *service.BlogService
	timelineService *service.TimelineService
}

func NewBlogHandler(blogService *service.BlogService, timelineService *service.TimelineService) *BlogHandler {
	return &BlogHandler{blogService: blogService, timelineService: timelineService}
}

// Create 发布博客
// @Summary 发布博客
// @Description 以当前登录用户身份发布博客
// @Tags 博客
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.BlogCreateRequest true "博客内容"
// @Success 201 {object} response.Response{data=dto.BlogInfo} "发布成功"
// @Failure 400 {object} response.ErrorResponse "请求参数无效"
// @Failure 401 {object} response.ErrorResponse "未授权"
// @Router /blogs [post]
func (h *BlogHandler) Create(c *gin.Context) {
	username, ok := middleware.GetCurrentUsername(c)
	if !ok {
		response.Unauthorized(c, "无法获取用户信息")
		return
	}

	var req dto.BlogCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数无效: "+err.Error())
		return
	}

	blogInfo, err := h.blogService.Create(username, &req)
	if err != nil {
		logger.Error("Create blog failed", zap.Error(err), zap.String("username", username))
		response.InternalError(c, "发布失败，请稍后重试")
		return
	}

	response.Created(c, "发布成功", blogInfo)
}

// GetDetail 获取博客详情
// @Summary 获取博客详情
// @Description 获取指定博客及其评论与点赞
// @Tags 博客
// @Produce json
// @Security BearerAuth
// @Param id path int true "博客ID"
// @Success 200 {object} response.Response{data=dto.BlogDetail} "获取成功"
// @Failure 400 {object} response.ErrorResponse "博客ID无效"
// @Failure 404 {object} response.ErrorResponse "博客不存在"
// @Router /blogs/{id} [get]
func (h *BlogHandler) GetDetail(c *gin.Context) {
	blogID, ok := parseIDParam(c)
	if !ok {
		return
	}

	detail, err := h.blogService.GetDetail(blogID)
	if err != nil {
		h.handleBlogError(c, err, blogID)
		return
	}

	response.OK(c, "获取成功", detail)
}

// Delete 删除博客
// @Summary 删除博客
// @Description 删除自己的博客，级联删除其评论与点赞
// @Tags 博客
// @Produce json
// @Security BearerAuth
// @Param id path int true "博客ID"
// @Success 204 "删除成功"
// @Failure 403 {object} response.ErrorResponse "只能删除自己的博客"
// @Failure 404 {object} response.ErrorResponse "博客不存在"
// @Router /blogs/{id} [delete]
func (h *BlogHandler) Delete(c *gin.Context) {
	username, ok := middleware.GetCurrentUsername(c)
	if !ok {
		response.Unauthorized(c, "无法获取用户信息")
		return
	}

	blogID, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.blogService.Delete(blogID, username); err != nil {
		h.handleBlogError(c, err, blogID)
		return
	}

	response.NoContent(c)
}

// AllBlogs 获取全部博客
// @Summary 获取全部博客
// @Description 获取全站博客列表，按创建时间倒序，无需登录
// @Tags 博客
// @Produce json
// @Success 200 {object} response.Response{data=dto.BlogListData} "获取成功"
// @Router /blogs/all-blogs [get]
func (h *BlogHandler) AllBlogs(c *gin.Context) {
	listData, err := h.blogService.ListAll()
	if err != nil {
		logger.Error("List all blogs failed", zap.Error(err))
		response.InternalError(c, "获取博客列表失败")
		return
	}

	response.OK(c, "获取成功", listData)
}

// MyBlogs 获取我的博客
// @Summary 获取我的博客
// @Description 获取当前登录用户发布的博客列表
// @Tags 博客
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response{data=dto.BlogListData} "获取成功"
// @Failure 401 {object} response.ErrorResponse "未授权"
// @Router /blogs/my-blogs [get]
func (h *BlogHandler) MyBlogs(c *gin.Context) {
	username, ok := middleware.GetCurrentUsername(c)
	if !ok {
		response.Unauthorized(c, "无法获取用户信息")
		return
	}

	listData, err := h.blogService.ListByAuthor(username)
	if err != nil {
		logger.Error("List my blogs failed", zap.Error(err), zap.String("username", username))
		response.InternalError(c, "获取博客列表失败")
		return
	}

	response.OK(c, "获取成功", listData)
}

// Timeline 获取关注时间线
// @Summary 获取关注时间线
// @Description 获取当前用户关注的人发布的博客，按时间倒序
// @Tags 博客
// @Produce json
// @Security BearerAuth
// @Param limit query int false "返回条数上限" default(50)
// @Success 200 {object} response.Response{data=dto.TimelineData} "获取成功"
// @Failure 401 {object} response.ErrorResponse "未授权"
// @Router /blogs/timeline [get]
func (h *BlogHandler) Timeline(c *gin.Context) {
	username, ok := middleware.GetCurrentUsername(c)
	if !ok {
		response.Unauthorized(c, "无法获取用户信息")
		return
	}

	limit := defaultTimelineLimit
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}

	timelineData, err := h.timelineService.GetTimeline(c.Request.Context(), username, limit)
	if err != nil {
		logger.Error("Get timeline failed", zap.Error(err), zap.String("username", username))
		response.InternalError(c, "获取时间线失败")
		return
	}

	response.OK(c, "获取成功", timelineData)
}

func (h *BlogHandler) handleBlogError(c *gin.Context, err error, blogID int64) {
	switch {
	case errors.Is(err, service.ErrBlogNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrNotBlogAuthor):
		response.Forbidden(c, err.Error())
	default:
		logger.Error("Blog operation failed", zap.Error(err), zap.Int64("blog_id", blogID))
		response.InternalError(c, "操作失败，请稍后重试")
	}
}

// parseIDParam 解析路径中的博客ID，非法时直接回写 400
func parseIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.BadRequest(c, "博客ID无效")
		return 0, false
	}
	return id, true
}
