package handler

import (
	"strconv"

	"bloggers/internal/api/response"
	"bloggers/internal/service"
	"bloggers/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const defaultSearchLimit = 20

type SearchHandler struct {
	searchService *service.SearchService
}

func NewSearchHandler(searchService *service.SearchService) *SearchHandler {
	return &SearchHandler{searchService: searchService}
}

// Search 搜索博客
// @Summary 搜索博客
// @Description 按关键词搜索博客标题与内容，无需登录
// @Tags 博客
// @Produce json
// @Param q query string true "搜索关键词"
// @Param limit query int false "返回条数上限" default(20)
// @Success 200 {object} response.Response{data=dto.TimelineData} "搜索成功"
// @Failure 400 {object} response.ErrorResponse "关键词不能为空"
// @Router /blogs/search [get]
func (h *SearchHandler) Search(c *gin.Context) {
	keyword := c.Query("q")
	if keyword == "" {
		response.BadRequest(c, "关键词不能为空")
		return
	}

	limit := defaultSearchLimit
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}

	listData, err := h.searchService.Search(c.Request.Context(), keyword, limit)
	if err != nil {
		logger.Error("Search blogs failed", zap.Error(err), zap.String("keyword", keyword))
		response.InternalError(c, "搜索失败，请稍后重试")
		return
	}

	response.OK(c, "搜索成功", listData)
}
