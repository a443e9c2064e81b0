package handler

import (
	"errors"
	"path/filepath"
	"strings"

	"bloggers/internal/api/middleware"
	"bloggers/internal/api/response"
	"bloggers/internal/service"
	"bloggers/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// 头像上传限制 5MB
const maxAvatarSize = 5 << 20

var allowedAvatarExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

type UserHandler struct {
	userService *service.UserService
}

func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// UploadAvatar 上传头像
// @Summary 上传头像
// @Description 上传当前用户头像，支持 jpg/jpeg/png/webp，最大 5MB
// @Tags 用户
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param avatar formData file true "头像文件"
// @Success 200 {object} response.Response{data=dto.AvatarData} "上传成功"
// @Failure 400 {object} response.ErrorResponse "文件无效"
// @Failure 401 {object} response.ErrorResponse "未授权"
// @Router /users/me/avatar [post]
func (h *UserHandler) UploadAvatar(c *gin.Context) {
	username, ok := middleware.GetCurrentUsername(c)
	if !ok {
		response.Unauthorized(c, "无法获取用户信息")
		return
	}

	fileHeader, err := c.FormFile("avatar")
	if err != nil {
		response.BadRequest(c, "请上传头像文件")
		return
	}
	if fileHeader.Size > maxAvatarSize {
		response.BadRequest(c, "头像文件过大，最大支持 5MB")
		return
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !allowedAvatarExts[ext] {
		response.BadRequest(c, "不支持的图片格式，仅支持 jpg/jpeg/png/webp")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.BadRequest(c, "无法读取头像文件")
		return
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	avatarData, err := h.userService.UploadAvatar(c.Request.Context(), username, file, fileHeader.Size, contentType, ext)
	if err != nil {
		if errors.Is(err, service.ErrStorageUnavailable) {
			response.InternalError(c, err.Error())
			return
		}
		logger.Error("Upload avatar failed", zap.Error(err), zap.String("username", username))
		response.InternalError(c, "上传失败，请稍后重试")
		return
	}

	response.OK(c, "上传成功", avatarData)
}
