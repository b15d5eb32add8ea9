package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/mahou-anisphia/koala-restaurant-sub000/config"
	"github.com/mahou-anisphia/koala-restaurant-sub000/internal/dto"
	"github.com/mahou-anisphia/koala-restaurant-sub000/internal/model"
	"github.com/mahou-anisphia/koala-restaurant-sub000/internal/repository"
	apperrors "github.com/mahou-anisphia/koala-restaurant-sub000/pkg/errors"
)

// ── 用户模块业务错误 ──

var (
	ErrUserNotFound   = errors.New("用户不存在")
	ErrLoginTaken     = errors.New("登录名已被占用")
	ErrUserSelfDelete = errors.New("不能删除自己")
)

// UserService 用户业务接口（/owner 管理接口）
type UserService interface {
	Create(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserResponse, error)
	GetByID(ctx context.Context, id string) (*dto.UserResponse, error)
	List(ctx context.Context) ([]dto.UserDetailResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateUserRequest) (*dto.UserResponse, error)
	AssignRole(ctx context.Context, id string, req *dto.AssignRoleRequest) error
	Delete(ctx context.Context, id string, callerID string) error
	// EnsureBootstrapOwner 用户表为空时创建初始 Owner 账号
	EnsureBootstrapOwner(ctx context.Context, cfg *config.AuthConfig) error
}

type userService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewUserService 创建 UserService 实例
func NewUserService(repo *repository.Repository, logger *zap.Logger) UserService {
	return &userService{repo: repo, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *userService) Create(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserResponse, error) {
	if !model.ValidRole(req.Role) {
		return nil, apperrors.NewInvalidEnum("role", req.Role, model.Roles())
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("密码哈希失败", zap.Error(err))
		return nil, err
	}

	user := &model.User{
		Name:         req.Name,
		Role:         req.Role,
		Contact:      req.Contact,
		Login:        req.Login,
		PasswordHash: string(hash),
		LocationID:   req.LocationID,
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrLoginTaken
		}
		s.logger.Error("创建用户失败", zap.Error(err))
		return nil, err
	}

	return s.toUserResponse(user), nil
}

// ────────────────────── GetByID ──────────────────────

func (s *userService) GetByID(ctx context.Context, id string) (*dto.UserResponse, error) {
	user, err := s.repo.User.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("查询用户失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return s.toUserResponse(user), nil
}

// ────────────────────── List ──────────────────────

func (s *userService) List(ctx context.Context) ([]dto.UserDetailResponse, error) {
	users, err := s.repo.User.List(ctx)
	if err != nil {
		s.logger.Error("列出用户失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.UserDetailResponse, 0, len(users))
	for i := range users {
		u := &users[i]
		result = append(result, dto.UserDetailResponse{
			ID:              u.UserID,
			Name:            u.Name,
			Role:            u.Role,
			Contact:         u.Contact,
			Login:           u.Login,
			LocationID:      u.LocationID,
			LocationAddress: u.LocationAddress,
			LocationCity:    u.LocationCity,
		})
	}
	return result, nil
}

// ────────────────────── Update ──────────────────────

func (s *userService) Update(ctx context.Context, id string, req *dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := s.repo.User.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("查询用户失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Contact != nil {
		user.Contact = *req.Contact
	}
	if req.LocationID != nil {
		user.LocationID = req.LocationID
	}

	if err := s.repo.User.Update(ctx, user); err != nil {
		s.logger.Error("更新用户失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return s.toUserResponse(user), nil
}

// ────────────────────── AssignRole ──────────────────────

func (s *userService) AssignRole(ctx context.Context, id string, req *dto.AssignRoleRequest) error {
	if !model.ValidRole(req.Role) {
		return apperrors.NewInvalidEnum("role", req.Role, model.Roles())
	}

	if _, err := s.repo.User.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		s.logger.Error("查询用户失败", zap.String("id", id), zap.Error(err))
		return err
	}

	if err := s.repo.User.UpdateRole(ctx, id, req.Role); err != nil {
		s.logger.Error("调整角色失败", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}

// ────────────────────── Delete ──────────────────────

func (s *userService) Delete(ctx context.Context, id string, callerID string) error {
	if id == callerID {
		return ErrUserSelfDelete
	}

	if _, err := s.repo.User.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		s.logger.Error("查询用户失败", zap.String("id", id), zap.Error(err))
		return err
	}

	if err := s.repo.User.Delete(ctx, id); err != nil {
		s.logger.Error("删除用户失败", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}

// ────────────────────── EnsureBootstrapOwner ──────────────────────

func (s *userService) EnsureBootstrapOwner(ctx context.Context, cfg *config.AuthConfig) error {
	n, err := s.repo.User.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	if cfg.BootstrapPassword == "" {
		s.logger.Warn("用户表为空且未配置 auth.bootstrap_password，跳过初始 Owner 创建")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.BootstrapPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	owner := &model.User{
		Name:         "Owner",
		Role:         model.RoleOwner,
		Login:        cfg.BootstrapLogin,
		PasswordHash: string(hash),
	}
	if err := s.repo.User.Create(ctx, owner); err != nil {
		return err
	}

	s.logger.Info("已创建初始 Owner 账号", zap.String("login", cfg.BootstrapLogin))
	return nil
}

// ── 内部辅助方法 ──

func (s *userService) toUserResponse(user *model.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:         user.UserID,
		Name:       user.Name,
		Role:       user.Role,
		Contact:    user.Contact,
		Login:      user.Login,
		LocationID: user.LocationID,
	}
}
