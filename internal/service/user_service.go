package service

import (
	"context"
	"errors"
	"fmt"
	"io"

	"bloggers/internal/api/dto"
	"bloggers/internal/config"
	infraMinio "bloggers/internal/infra/minio"
	"bloggers/internal/repository"

	"github.com/gofrs/uuid"
)

var ErrStorageUnavailable = errors.New("对象存储暂不可用")

type UserService struct {
	userRepo *repository.UserRepository
}

func NewUserService(userRepo *repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// UploadAvatar 上传用户头像到 MinIO，并把公开访问地址写回用户记录
func (s *UserService) UploadAvatar(ctx context.Context, username string, reader io.Reader, size int64, contentType, ext string) (*dto.AvatarData, error) {
	if !infraMinio.Available() {
		return nil, ErrStorageUnavailable
	}

	objectName := fmt.Sprintf("%s/%s%s", username, uuid.Must(uuid.NewV4()).String(), ext)

	if _, err := infraMinio.UploadFile(ctx, infraMinio.AvatarBucket, objectName, reader, size, contentType); err != nil {
		return nil, err
	}

	cfg := config.GetMinIO()
	avatarURL := infraMinio.GetPublicURL(cfg.Endpoint, cfg.UseSSL, infraMinio.AvatarBucket, objectName)

	if err := s.userRepo.UpdateAvatar(username, avatarURL); err != nil {
		return nil, err
	}

	return &dto.AvatarData{AvatarURL: avatarURL}, nil
}
