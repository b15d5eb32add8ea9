package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/mahou-anisphia/koala-restaurant-sub000/internal/model"
)

// OrderRepository 订单数据访问接口
type OrderRepository interface {
	// CreateWithItems 订单与首批条目在同一事务内写入
	CreateWithItems(ctx context.Context, order *model.MealOrder) error
	GetByID(ctx context.Context, id string) (*model.MealOrder, error)
	List(ctx context.Context) ([]model.MealOrder, error)
	UpdateStatus(ctx context.Context, id, status string) error

	AddItem(ctx context.Context, item *model.OrderItem) error
	GetItem(ctx context.Context, itemID string) (*model.OrderItem, error)
	UpdateItemStatus(ctx context.Context, itemID, status string) error
	DeleteItem(ctx context.Context, itemID string) error
	// ListItemDetails 走 order_item_details 视图
	ListItemDetails(ctx context.Context, orderID string) ([]model.OrderItemDetail, error)
}

type orderRepo struct {
	db *gorm.DB
}

// NewOrderRepo 创建 OrderRepository 实例
func NewOrderRepo(db *gorm.DB) OrderRepository {
	return &orderRepo{db: db}
}

func (r *orderRepo) CreateWithItems(ctx context.Context, order *model.MealOrder) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		items := order.Items
		order.Items = nil
		if err := tx.Create(order).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].OrderID = order.OrderID
		}
		if len(items) > 0 {
			if err := tx.Create(&items).Error; err != nil {
				return err
			}
		}
		order.Items = items
		return nil
	})
}

func (r *orderRepo) GetByID(ctx context.Context, id string) (*model.MealOrder, error) {
	var order model.MealOrder
	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("order_id = ?", id).
		First(&order).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepo) List(ctx context.Context) ([]model.MealOrder, error) {
	var orders []model.MealOrder
	err := r.db.WithContext(ctx).
		Preload("Items").
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}

func (r *orderRepo) UpdateStatus(ctx context.Context, id, status string) error {
	res := r.db.WithContext(ctx).
		Model(&model.MealOrder{}).
		Where("order_id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *orderRepo) AddItem(ctx context.Context, item *model.OrderItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *orderRepo) GetItem(ctx context.Context, itemID string) (*model.OrderItem, error) {
	var item model.OrderItem
	err := r.db.WithContext(ctx).
		Where("order_item_id = ?", itemID).
		First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *orderRepo) UpdateItemStatus(ctx context.Context, itemID, status string) error {
	res := r.db.WithContext(ctx).
		Model(&model.OrderItem{}).
		Where("order_item_id = ?", itemID).
		Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *orderRepo) DeleteItem(ctx context.Context, itemID string) error {
	res := r.db.WithContext(ctx).
		Where("order_item_id = ?", itemID).
		Delete(&model.OrderItem{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *orderRepo) ListItemDetails(ctx context.Context, orderID string) ([]model.OrderItemDetail, error) {
	var details []model.OrderItemDetail
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Find(&details).Error
	return details, err
}
