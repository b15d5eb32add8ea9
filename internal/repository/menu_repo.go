package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/mahou-anisphia/koala-restaurant-sub000/internal/model"
)

// MenuRepository 菜单数据访问接口
type MenuRepository interface {
	Create(ctx context.Context, menu *model.Menu) error
	GetByID(ctx context.Context, id string) (*model.Menu, error)
	List(ctx context.Context) ([]model.Menu, error)
	Update(ctx context.Context, menu *model.Menu) error
	// DeleteWithDishes 先清关联行再删菜单，两步在同一事务内提交
	DeleteWithDishes(ctx context.Context, id string) error

	AddDish(ctx context.Context, md *model.MenuDish) error
	HasDish(ctx context.Context, menuID, dishID string) (bool, error)
	UpdateDishStatus(ctx context.Context, menuID, dishID, status string) error
	RemoveDish(ctx context.Context, menuID, dishID string) error
	// ListDishDetails 走 menu_dish_details 视图
	ListDishDetails(ctx context.Context, menuID string) ([]model.MenuDishDetail, error)
}

type menuRepo struct {
	db *gorm.DB
}

// NewMenuRepo 创建 MenuRepository 实例
func NewMenuRepo(db *gorm.DB) MenuRepository {
	return &menuRepo{db: db}
}

func (r *menuRepo) Create(ctx context.Context, menu *model.Menu) error {
	return r.db.WithContext(ctx).Create(menu).Error
}

func (r *menuRepo) GetByID(ctx context.Context, id string) (*model.Menu, error) {
	var menu model.Menu
	err := r.db.WithContext(ctx).
		Where("menu_id = ?", id).
		First(&menu).Error
	if err != nil {
		return nil, err
	}
	return &menu, nil
}

func (r *menuRepo) List(ctx context.Context) ([]model.Menu, error) {
	var menus []model.Menu
	err := r.db.WithContext(ctx).Order("name ASC").Find(&menus).Error
	return menus, err
}

func (r *menuRepo) Update(ctx context.Context, menu *model.Menu) error {
	return r.db.WithContext(ctx).Save(menu).Error
}

func (r *menuRepo) DeleteWithDishes(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("menu_id = ?", id).Delete(&model.MenuDish{}).Error; err != nil {
			return err
		}
		return tx.Where("menu_id = ?", id).Delete(&model.Menu{}).Error
	})
}

func (r *menuRepo) AddDish(ctx context.Context, md *model.MenuDish) error {
	return r.db.WithContext(ctx).Create(md).Error
}

func (r *menuRepo) HasDish(ctx context.Context, menuID, dishID string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&model.MenuDish{}).
		Where("menu_id = ? AND dish_id = ?", menuID, dishID).
		Count(&n).Error
	return n > 0, err
}

func (r *menuRepo) UpdateDishStatus(ctx context.Context, menuID, dishID, status string) error {
	res := r.db.WithContext(ctx).
		Model(&model.MenuDish{}).
		Where("menu_id = ? AND dish_id = ?", menuID, dishID).
		Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *menuRepo) RemoveDish(ctx context.Context, menuID, dishID string) error {
	res := r.db.WithContext(ctx).
		Where("menu_id = ? AND dish_id = ?", menuID, dishID).
		Delete(&model.MenuDish{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *menuRepo) ListDishDetails(ctx context.Context, menuID string) ([]model.MenuDishDetail, error) {
	var details []model.MenuDishDetail
	err := r.db.WithContext(ctx).
		Where("menu_id = ?", menuID).
		Order("dish_name ASC").
		Find(&details).Error
	return details, err
}
