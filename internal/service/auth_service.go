package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/mahou-anisphia/koala-restaurant-sub000/config"
	"github.com/mahou-anisphia/koala-restaurant-sub000/internal/dto"
	"github.com/mahou-anisphia/koala-restaurant-sub000/internal/repository"
	"github.com/mahou-anisphia/koala-restaurant-sub000/pkg/jwt"
	"github.com/mahou-anisphia/koala-restaurant-sub000/pkg/redis"
)

var (
	// ErrInvalidCredentials 登录名不存在与密码错误统一返回同一错误，防止用户枚举
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrWrongOldPassword   = errors.New("旧密码不正确")
)

// AuthService 认证业务接口
type AuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	ChangePassword(ctx context.Context, userID string, req *dto.ChangePasswordRequest, jti string, expiresAt time.Time) error
	GetCurrentUser(ctx context.Context, userID string) (*dto.UserDetailResponse, error)
}

type authService struct {
	cfg    *config.Config
	repo   *repository.Repository
	jwtMgr *jwt.Manager
	rdb    *redis.Client
	logger *zap.Logger
}

// NewAuthService 创建 AuthService 实例
func NewAuthService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	logger *zap.Logger,
) AuthService {
	return &authService{
		cfg:    cfg,
		repo:   repo,
		jwtMgr: jwtMgr,
		rdb:    rdb,
		logger: logger,
	}
}

// ────────────────────── Login ──────────────────────

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	// 1. 查询用户
	user, err := s.repo.User.GetByLogin(ctx, req.Login)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("查询用户失败", zap.Error(err))
		return nil, err
	}

	// 2. 验证密码（bcrypt 恒定时比较，绝不比较明文）
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	// 3. 签发令牌
	token, err := s.jwtMgr.GenerateToken(user.UserID, user.Login, user.Name)
	if err != nil {
		s.logger.Error("签发令牌失败", zap.Error(err))
		return nil, err
	}

	return &dto.TokenResponse{
		Token:     token,
		ExpiresIn: int(s.cfg.Auth.TokenTTL.Seconds()),
		User: dto.UserResponse{
			ID:         user.UserID,
			Name:       user.Name,
			Role:       user.Role,
			Contact:    user.Contact,
			Login:      user.Login,
			LocationID: user.LocationID,
		},
	}, nil
}

// ────────────────────── ChangePassword ──────────────────────

func (s *authService) ChangePassword(ctx context.Context, userID string, req *dto.ChangePasswordRequest, jti string, expiresAt time.Time) error {
	user, err := s.repo.User.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		s.logger.Error("查询用户失败", zap.String("id", userID), zap.Error(err))
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.OldPassword)); err != nil {
		return ErrWrongOldPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("密码哈希失败", zap.Error(err))
		return err
	}

	if err := s.repo.User.UpdatePassword(ctx, userID, string(hash)); err != nil {
		s.logger.Error("更新密码失败", zap.String("id", userID), zap.Error(err))
		return err
	}

	// 改密后作废当前令牌；Redis 不可用时降级跳过
	if s.rdb != nil && jti != "" {
		if err := s.rdb.BlacklistToken(ctx, jti, time.Until(expiresAt)); err != nil {
			s.logger.Warn("令牌拉黑失败", zap.Error(err))
		}
	}

	return nil
}

// ────────────────────── GetCurrentUser ──────────────────────

func (s *authService) GetCurrentUser(ctx context.Context, userID string) (*dto.UserDetailResponse, error) {
	user, err := s.repo.User.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("查询用户失败", zap.String("id", userID), zap.Error(err))
		return nil, err
	}

	resp := &dto.UserDetailResponse{
		ID:         user.UserID,
		Name:       user.Name,
		Role:       user.Role,
		Contact:    user.Contact,
		Login:      user.Login,
		LocationID: user.LocationID,
	}
	if user.Location != nil {
		resp.LocationAddress = &user.Location.Address
		resp.LocationCity = &user.Location.City
	}
	return resp, nil
}
