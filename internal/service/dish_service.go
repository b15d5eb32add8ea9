package service

import (
	"context"
	"errors"
	"io"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/mahou-anisphia/koala-restaurant-sub000/internal/dto"
	"github.com/mahou-anisphia/koala-restaurant-sub000/internal/model"
	"github.com/mahou-anisphia/koala-restaurant-sub000/internal/repository"
	"github.com/mahou-anisphia/koala-restaurant-sub000/pkg/storage"
)

// ── 菜品模块业务错误 ──

var (
	ErrDishNotFound = errors.New("菜品不存在")
)

// DishService 菜品业务接口
type DishService interface {
	Create(ctx context.Context, req *dto.CreateDishRequest, callerID string) (*dto.DishResponse, error)
	GetByID(ctx context.Context, id string) (*dto.DishResponse, error)
	List(ctx context.Context) ([]dto.DishResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateDishRequest, callerID string) (*dto.DishResponse, error)
	Delete(ctx context.Context, id string) error
	UploadImage(ctx context.Context, id string, reader io.Reader, size int64, contentType, filename string) (*dto.DishResponse, error)
}

type dishService struct {
	repo   *repository.Repository
	media  storage.MediaStore
	logger *zap.Logger
}

// NewDishService 创建 DishService 实例
func NewDishService(repo *repository.Repository, media storage.MediaStore, logger *zap.Logger) DishService {
	return &dishService{repo: repo, media: media, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *dishService) Create(ctx context.Context, req *dto.CreateDishRequest, callerID string) (*dto.DishResponse, error) {
	if req.CategoryID != nil {
		if _, err := s.repo.Category.GetByID(ctx, *req.CategoryID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrCategoryNotFound
			}
			s.logger.Error("查询分类失败", zap.Error(err))
			return nil, err
		}
	}

	dish := &model.Dish{
		Name:            req.Name,
		Description:     req.Description,
		Price:           req.Price,
		PreparationTime: req.PreparationTime,
		CategoryID:      req.CategoryID,
		CreatedBy:       &callerID,
		UpdatedBy:       &callerID,
	}

	if err := s.repo.Dish.Create(ctx, dish); err != nil {
		s.logger.Error("创建菜品失败", zap.Error(err))
		return nil, err
	}

	return s.toDishResponse(dish), nil
}

// ────────────────────── GetByID ──────────────────────

func (s *dishService) GetByID(ctx context.Context, id string) (*dto.DishResponse, error) {
	dish, err := s.repo.Dish.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDishNotFound
		}
		s.logger.Error("查询菜品失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return s.toDishResponse(dish), nil
}

// ────────────────────── List ──────────────────────

func (s *dishService) List(ctx context.Context) ([]dto.DishResponse, error) {
	dishes, err := s.repo.Dish.List(ctx)
	if err != nil {
		s.logger.Error("列出菜品失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.DishResponse, 0, len(dishes))
	for i := range dishes {
		result = append(result, *s.toDishResponse(&dishes[i]))
	}
	return result, nil
}

// ────────────────────── Update ──────────────────────

func (s *dishService) Update(ctx context.Context, id string, req *dto.UpdateDishRequest, callerID string) (*dto.DishResponse, error) {
	dish, err := s.repo.Dish.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDishNotFound
		}
		s.logger.Error("查询菜品失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	if req.CategoryID != nil {
		if _, err := s.repo.Category.GetByID(ctx, *req.CategoryID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrCategoryNotFound
			}
			s.logger.Error("查询分类失败", zap.Error(err))
			return nil, err
		}
		dish.CategoryID = req.CategoryID
	}
	if req.Name != nil {
		dish.Name = *req.Name
	}
	if req.Description != nil {
		dish.Description = *req.Description
	}
	if req.Price != nil {
		dish.Price = *req.Price
	}
	if req.PreparationTime != nil {
		dish.PreparationTime = *req.PreparationTime
	}
	dish.UpdatedBy = &callerID

	if err := s.repo.Dish.Update(ctx, dish); err != nil {
		s.logger.Error("更新菜品失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return s.toDishResponse(dish), nil
}

// ────────────────────── Delete ──────────────────────

// Delete 先删数据库行，再清理对象存储中的图片。
// 顺序保证不会出现指向已删图片的存活行；删图失败只留下孤儿对象，记日志即可
func (s *dishService) Delete(ctx context.Context, id string) error {
	dish, err := s.repo.Dish.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrDishNotFound
		}
		s.logger.Error("查询菜品失败", zap.String("id", id), zap.Error(err))
		return err
	}

	if err := s.repo.Dish.Delete(ctx, id); err != nil {
		s.logger.Error("删除菜品失败", zap.String("id", id), zap.Error(err))
		return err
	}

	if dish.ImageURL != "" {
		if err := s.media.Remove(ctx, dish.ImageURL); err != nil {
			s.logger.Warn("清理菜品图片失败",
				zap.String("id", id),
				zap.String("image_url", dish.ImageURL),
				zap.Error(err),
			)
		}
	}
	return nil
}

// ────────────────────── UploadImage ──────────────────────

func (s *dishService) UploadImage(ctx context.Context, id string, reader io.Reader, size int64, contentType, filename string) (*dto.DishResponse, error) {
	dish, err := s.repo.Dish.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDishNotFound
		}
		s.logger.Error("查询菜品失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	url, err := s.media.Store(ctx, reader, size, contentType, filename)
	if err != nil {
		s.logger.Error("上传菜品图片失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	oldURL := dish.ImageURL
	dish.ImageURL = url
	if err := s.repo.Dish.Update(ctx, dish); err != nil {
		s.logger.Error("更新菜品图片失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	// 替换成功后清理旧图，失败只记日志
	if oldURL != "" {
		if err := s.media.Remove(ctx, oldURL); err != nil {
			s.logger.Warn("清理旧图片失败", zap.String("image_url", oldURL), zap.Error(err))
		}
	}

	return s.toDishResponse(dish), nil
}

// ── 内部辅助方法 ──

func (s *dishService) toDishResponse(dish *model.Dish) *dto.DishResponse {
	return &dto.DishResponse{
		ID:              dish.DishID,
		Name:            dish.Name,
		Description:     dish.Description,
		Price:           dish.Price,
		PreparationTime: dish.PreparationTime,
		ImageURL:        dish.ImageURL,
		CategoryID:      dish.CategoryID,
		CreatedAt:       dish.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       dish.UpdatedAt.Format(time.RFC3339),
	}
}
