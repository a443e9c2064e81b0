package service

import (
	"errors"

	"bloggers/internal/api/dto"
	"bloggers/internal/config"
	"bloggers/internal/model"
	"bloggers/internal/repository"
	"bloggers/pkg/utils"

	"gorm.io/gorm"
)

var (
	ErrUserNotFound      = errors.New("用户不存在")
	ErrEmailExists       = errors.New("该邮箱已注册")
	ErrUsernameExists    = errors.New("用户名已存在")
	ErrInvalidCredential = errors.New("用户名或密码错误")
	ErrUserInactive      = errors.New("该账号已被禁用")
)

type AuthService struct {
	userRepo   *repository.UserRepository
	followRepo *repository.FollowRepository
}

func NewAuthService(userRepo *repository.UserRepository, followRepo *repository.FollowRepository) *AuthService {
	return &AuthService{userRepo: userRepo, followRepo: followRepo}
}

// Register 用户注册，用户名取邮箱最后一个 @ 之前的部分
func (s *AuthService) Register(req *dto.RegisterRequest) (*dto.UserInfo, error) {
	exists, err := s.userRepo.ExistsByEmail(req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailExists
	}

	username := utils.UsernameFromEmail(req.Email)

	exists, err = s.userRepo.ExistsByUsername(username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrUsernameExists
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username: username,
		Email:    req.Email,
		Name:     req.Name,
		Password: hashedPassword,
		IsActive: true,
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	return toUserInfo(user), nil
}

// Login 用户登录，返回 token 数据
func (s *AuthService) Login(req *dto.LoginRequest) (*dto.TokenData, error) {
	user, err := s.userRepo.GetByUsername(req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredential
		}
		return nil, err
	}

	if !user.IsActive {
		return nil, ErrUserInactive
	}

	if !utils.VerifyPassword(req.Password, user.Password) {
		return nil, ErrInvalidCredential
	}

	token, err := utils.GenerateToken(user.Username)
	if err != nil {
		return nil, err
	}

	expireSeconds := config.GetJWT().ExpireHours * 3600

	return &dto.TokenData{
		Access:    token,
		TokenType: "bearer",
		ExpiresIn: expireSeconds,
	}, nil
}

// GetProfile 获取当前用户详情，附带粉丝与关注列表
func (s *AuthService) GetProfile(username string) (*dto.ProfileData, error) {
	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	followers, err := s.followRepo.ListFollowers(username)
	if err != nil {
		return nil, err
	}

	following, err := s.followRepo.ListFollowing(username)
	if err != nil {
		return nil, err
	}

	profile := &dto.ProfileData{
		UserInfo:  *toUserInfo(user),
		Followers: toUserInfos(followers),
		Following: toUserInfos(following),
	}

	return profile, nil
}

func toUserInfo(user *model.User) *dto.UserInfo {
	return &dto.UserInfo{
		Username: user.Username,
		Email:    user.Email,
		Name:     user.Name,
		Avatar:   user.Avatar,
	}
}

func toUserInfos(users []model.User) []dto.UserInfo {
	infos := make([]dto.UserInfo, 0, len(users))
	for i := range users {
		infos = append(infos, *toUserInfo(&users[i]))
	}
	return infos
}
