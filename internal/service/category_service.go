package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/mahou-anisphia/koala-restaurant-sub000/internal/dto"
	"github.com/mahou-anisphia/koala-restaurant-sub000/internal/model"
	"github.com/mahou-anisphia/koala-restaurant-sub000/internal/repository"
	apperrors "github.com/mahou-anisphia/koala-restaurant-sub000/pkg/errors"
)

// ── 分类模块业务错误 ──

var (
	ErrCategoryNotFound = errors.New("分类不存在")
)

// CategoryService 分类业务接口
type CategoryService interface {
	Create(ctx context.Context, req *dto.CreateCategoryRequest, callerID string) (*dto.CategoryResponse, error)
	GetByID(ctx context.Context, id string) (*dto.CategoryResponse, error)
	List(ctx context.Context) ([]dto.CategoryResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateCategoryRequest) (*dto.CategoryResponse, error)
	Delete(ctx context.Context, id string) error
}

type categoryService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewCategoryService 创建 CategoryService 实例
func NewCategoryService(repo *repository.Repository, logger *zap.Logger) CategoryService {
	return &categoryService{repo: repo, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *categoryService) Create(ctx context.Context, req *dto.CreateCategoryRequest, callerID string) (*dto.CategoryResponse, error) {
	cat := &model.Category{
		Name:        req.Name,
		Description: req.Description,
		CreatedBy:   &callerID,
	}

	if err := s.repo.Category.Create(ctx, cat); err != nil {
		s.logger.Error("创建分类失败", zap.Error(err))
		return nil, err
	}

	return s.toCategoryResponse(cat), nil
}

// ────────────────────── GetByID ──────────────────────

func (s *categoryService) GetByID(ctx context.Context, id string) (*dto.CategoryResponse, error) {
	cat, err := s.repo.Category.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		s.logger.Error("查询分类失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return s.toCategoryResponse(cat), nil
}

// ────────────────────── List ──────────────────────

func (s *categoryService) List(ctx context.Context) ([]dto.CategoryResponse, error) {
	cats, err := s.repo.Category.List(ctx)
	if err != nil {
		s.logger.Error("列出分类失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.CategoryResponse, 0, len(cats))
	for i := range cats {
		result = append(result, *s.toCategoryResponse(&cats[i]))
	}
	return result, nil
}

// ────────────────────── Update ──────────────────────

func (s *categoryService) Update(ctx context.Context, id string, req *dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	cat, err := s.repo.Category.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		s.logger.Error("查询分类失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	if req.Name != nil {
		cat.Name = *req.Name
	}
	if req.Description != nil {
		cat.Description = *req.Description
	}

	if err := s.repo.Category.Update(ctx, cat); err != nil {
		s.logger.Error("更新分类失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return s.toCategoryResponse(cat), nil
}

// ────────────────────── Delete ──────────────────────

// Delete 引用保护：存在关联菜品时拒绝删除，并把阻塞菜品返回给调用方
func (s *categoryService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.Category.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCategoryNotFound
		}
		s.logger.Error("查询分类失败", zap.String("id", id), zap.Error(err))
		return err
	}

	dishes, err := s.repo.Dish.ListByCategory(ctx, id)
	if err != nil {
		s.logger.Error("查询关联菜品失败", zap.String("category_id", id), zap.Error(err))
		return err
	}
	if len(dishes) > 0 {
		blocking := make([]dto.DishSummary, 0, len(dishes))
		for i := range dishes {
			blocking = append(blocking, dto.DishSummary{ID: dishes[i].DishID, Name: dishes[i].Name})
		}
		return apperrors.NewDependencyConflict("分类", blocking)
	}

	if err := s.repo.Category.Delete(ctx, id); err != nil {
		s.logger.Error("删除分类失败", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}

// ── 内部辅助方法 ──

func (s *categoryService) toCategoryResponse(cat *model.Category) *dto.CategoryResponse {
	return &dto.CategoryResponse{
		ID:          cat.CategoryID,
		Name:        cat.Name,
		Description: cat.Description,
		CreatedAt:   cat.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   cat.UpdatedAt.Format(time.RFC3339),
	}
}
