package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/mahou-anisphia/koala-restaurant-sub000/internal/model"
)

// DiningTableRepository 餐桌数据访问接口
type DiningTableRepository interface {
	Create(ctx context.Context, table *model.DiningTable) error
	GetByID(ctx context.Context, id string) (*model.DiningTable, error)
	List(ctx context.Context) ([]model.DiningTable, error)
	Update(ctx context.Context, table *model.DiningTable) error
	Delete(ctx context.Context, id string) error
}

type diningTableRepo struct {
	db *gorm.DB
}

// NewDiningTableRepo 创建 DiningTableRepository 实例
func NewDiningTableRepo(db *gorm.DB) DiningTableRepository {
	return &diningTableRepo{db: db}
}

func (r *diningTableRepo) Create(ctx context.Context, table *model.DiningTable) error {
	return r.db.WithContext(ctx).Create(table).Error
}

func (r *diningTableRepo) GetByID(ctx context.Context, id string) (*model.DiningTable, error) {
	var table model.DiningTable
	err := r.db.WithContext(ctx).
		Where("table_id = ?", id).
		First(&table).Error
	if err != nil {
		return nil, err
	}
	return &table, nil
}

func (r *diningTableRepo) List(ctx context.Context) ([]model.DiningTable, error) {
	var tables []model.DiningTable
	err := r.db.WithContext(ctx).Order("label ASC").Find(&tables).Error
	return tables, err
}

func (r *diningTableRepo) Update(ctx context.Context, table *model.DiningTable) error {
	return r.db.WithContext(ctx).Save(table).Error
}

func (r *diningTableRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("table_id = ?", id).
		Delete(&model.DiningTable{}).Error
}
