package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/mahou-anisphia/koala-restaurant-sub000/internal/model"
)

// DishRepository 菜品数据访问接口
type DishRepository interface {
	Create(ctx context.Context, dish *model.Dish) error
	GetByID(ctx context.Context, id string) (*model.Dish, error)
	List(ctx context.Context) ([]model.Dish, error)
	// ListByCategory 分类删除前的引用保护查询
	ListByCategory(ctx context.Context, categoryID string) ([]model.Dish, error)
	Update(ctx context.Context, dish *model.Dish) error
	Delete(ctx context.Context, id string) error
}

type dishRepo struct {
	db *gorm.DB
}

// NewDishRepo 创建 DishRepository 实例
func NewDishRepo(db *gorm.DB) DishRepository {
	return &dishRepo{db: db}
}

func (r *dishRepo) Create(ctx context.Context, dish *model.Dish) error {
	return r.db.WithContext(ctx).Create(dish).Error
}

func (r *dishRepo) GetByID(ctx context.Context, id string) (*model.Dish, error) {
	var dish model.Dish
	err := r.db.WithContext(ctx).
		Where("dish_id = ?", id).
		First(&dish).Error
	if err != nil {
		return nil, err
	}
	return &dish, nil
}

func (r *dishRepo) List(ctx context.Context) ([]model.Dish, error) {
	var dishes []model.Dish
	err := r.db.WithContext(ctx).Order("name ASC").Find(&dishes).Error
	return dishes, err
}

func (r *dishRepo) ListByCategory(ctx context.Context, categoryID string) ([]model.Dish, error) {
	var dishes []model.Dish
	err := r.db.WithContext(ctx).
		Where("category_id = ?", categoryID).
		Find(&dishes).Error
	return dishes, err
}

func (r *dishRepo) Update(ctx context.Context, dish *model.Dish) error {
	return r.db.WithContext(ctx).Save(dish).Error
}

func (r *dishRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("dish_id = ?", id).
		Delete(&model.Dish{}).Error
}
