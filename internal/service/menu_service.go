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

// ── 菜单模块业务错误 ──

var (
	ErrMenuNotFound     = errors.New("菜单不存在")
	ErrMenuDishExists   = errors.New("菜品已在菜单中")
	ErrMenuDishNotFound = errors.New("菜单中不存在该菜品")
)

// MenuService 菜单业务接口
type MenuService interface {
	Create(ctx context.Context, req *dto.CreateMenuRequest, callerID string) (*dto.MenuResponse, error)
	GetByID(ctx context.Context, id string) (*dto.MenuDetailResponse, error)
	List(ctx context.Context) ([]dto.MenuResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateMenuRequest, callerID string) (*dto.MenuResponse, error)
	Delete(ctx context.Context, id string) error

	AddDish(ctx context.Context, menuID string, req *dto.AddMenuDishRequest) error
	UpdateDishStatus(ctx context.Context, menuID, dishID string, req *dto.UpdateMenuDishRequest) error
	RemoveDish(ctx context.Context, menuID, dishID string) error
}

type menuService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewMenuService 创建 MenuService 实例
func NewMenuService(repo *repository.Repository, logger *zap.Logger) MenuService {
	return &menuService{repo: repo, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *menuService) Create(ctx context.Context, req *dto.CreateMenuRequest, callerID string) (*dto.MenuResponse, error) {
	menu := &model.Menu{
		Name:        req.Name,
		Description: req.Description,
		LocationID:  req.LocationID,
		CreatedBy:   &callerID,
		UpdatedBy:   &callerID,
	}

	if err := s.repo.Menu.Create(ctx, menu); err != nil {
		s.logger.Error("创建菜单失败", zap.Error(err))
		return nil, err
	}

	return s.toMenuResponse(menu), nil
}

// ────────────────────── GetByID ──────────────────────

// GetByID 返回菜单与条目明细（menu_dish_details 视图）
func (s *menuService) GetByID(ctx context.Context, id string) (*dto.MenuDetailResponse, error) {
	menu, err := s.repo.Menu.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMenuNotFound
		}
		s.logger.Error("查询菜单失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	details, err := s.repo.Menu.ListDishDetails(ctx, id)
	if err != nil {
		s.logger.Error("查询菜单条目失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	dishes := make([]dto.MenuDishResponse, 0, len(details))
	for i := range details {
		d := &details[i]
		dishes = append(dishes, dto.MenuDishResponse{
			DishID:          d.DishID,
			DishName:        d.DishName,
			DishDescription: d.DishDescription,
			Price:           d.Price,
			PreparationTime: d.PreparationTime,
			ImageURL:        d.ImageURL,
			Status:          d.Status,
		})
	}

	return &dto.MenuDetailResponse{
		MenuResponse: *s.toMenuResponse(menu),
		Dishes:       dishes,
	}, nil
}

// ────────────────────── List ──────────────────────

func (s *menuService) List(ctx context.Context) ([]dto.MenuResponse, error) {
	menus, err := s.repo.Menu.List(ctx)
	if err != nil {
		s.logger.Error("列出菜单失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.MenuResponse, 0, len(menus))
	for i := range menus {
		result = append(result, *s.toMenuResponse(&menus[i]))
	}
	return result, nil
}

// ────────────────────── Update ──────────────────────

func (s *menuService) Update(ctx context.Context, id string, req *dto.UpdateMenuRequest, callerID string) (*dto.MenuResponse, error) {
	menu, err := s.repo.Menu.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMenuNotFound
		}
		s.logger.Error("查询菜单失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	if req.Name != nil {
		menu.Name = *req.Name
	}
	if req.Description != nil {
		menu.Description = *req.Description
	}
	if req.LocationID != nil {
		menu.LocationID = req.LocationID
	}
	menu.UpdatedBy = &callerID

	if err := s.repo.Menu.Update(ctx, menu); err != nil {
		s.logger.Error("更新菜单失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return s.toMenuResponse(menu), nil
}

// ────────────────────── Delete ──────────────────────

// Delete 显式级联：清关联行 + 删菜单在同一事务内提交
func (s *menuService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.Menu.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMenuNotFound
		}
		s.logger.Error("查询菜单失败", zap.String("id", id), zap.Error(err))
		return err
	}

	if err := s.repo.Menu.DeleteWithDishes(ctx, id); err != nil {
		s.logger.Error("删除菜单失败", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}

// ────────────────────── AddDish ──────────────────────

// AddDish 引用保护：同一 (menu, dish) 组合最多出现一次
func (s *menuService) AddDish(ctx context.Context, menuID string, req *dto.AddMenuDishRequest) error {
	status := req.Status
	if status == "" {
		status = model.MenuDishAvailable
	}
	if !model.ValidMenuDishStatus(status) {
		return apperrors.NewInvalidEnum("status", status, model.MenuDishStatuses())
	}

	if _, err := s.repo.Menu.GetByID(ctx, menuID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMenuNotFound
		}
		s.logger.Error("查询菜单失败", zap.String("id", menuID), zap.Error(err))
		return err
	}
	if _, err := s.repo.Dish.GetByID(ctx, req.DishID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrDishNotFound
		}
		s.logger.Error("查询菜品失败", zap.String("id", req.DishID), zap.Error(err))
		return err
	}

	exists, err := s.repo.Menu.HasDish(ctx, menuID, req.DishID)
	if err != nil {
		s.logger.Error("查询菜单条目失败", zap.String("menu_id", menuID), zap.Error(err))
		return err
	}
	if exists {
		return ErrMenuDishExists
	}

	md := &model.MenuDish{
		MenuID: menuID,
		DishID: req.DishID,
		Status: status,
	}
	if err := s.repo.Menu.AddDish(ctx, md); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrMenuDishExists
		}
		s.logger.Error("添加菜单条目失败", zap.String("menu_id", menuID), zap.Error(err))
		return err
	}
	return nil
}

// ────────────────────── UpdateDishStatus ──────────────────────

func (s *menuService) UpdateDishStatus(ctx context.Context, menuID, dishID string, req *dto.UpdateMenuDishRequest) error {
	if !model.ValidMenuDishStatus(req.Status) {
		return apperrors.NewInvalidEnum("status", req.Status, model.MenuDishStatuses())
	}

	if err := s.repo.Menu.UpdateDishStatus(ctx, menuID, dishID, req.Status); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMenuDishNotFound
		}
		s.logger.Error("更新菜单条目失败", zap.String("menu_id", menuID), zap.Error(err))
		return err
	}
	return nil
}

// ────────────────────── RemoveDish ──────────────────────

func (s *menuService) RemoveDish(ctx context.Context, menuID, dishID string) error {
	if err := s.repo.Menu.RemoveDish(ctx, menuID, dishID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMenuDishNotFound
		}
		s.logger.Error("移除菜单条目失败", zap.String("menu_id", menuID), zap.Error(err))
		return err
	}
	return nil
}

// ── 内部辅助方法 ──

func (s *menuService) toMenuResponse(menu *model.Menu) *dto.MenuResponse {
	return &dto.MenuResponse{
		ID:          menu.MenuID,
		Name:        menu.Name,
		Description: menu.Description,
		LocationID:  menu.LocationID,
		CreatedAt:   menu.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   menu.UpdatedAt.Format(time.RFC3339),
	}
}
