package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/mahou-anisphia/koala-restaurant-sub000/internal/model"
)

// ReceiptRepository 收据数据访问接口
type ReceiptRepository interface {
	Create(ctx context.Context, receipt *model.Receipt) error
	GetByID(ctx context.Context, id string) (*model.Receipt, error)
	List(ctx context.Context) ([]model.Receipt, error)
	// ListByPeriod 导出报表用：按支付时间区间查询
	ListByPeriod(ctx context.Context, from, to time.Time) ([]model.Receipt, error)
}

type receiptRepo struct {
	db *gorm.DB
}

// NewReceiptRepo 创建 ReceiptRepository 实例
func NewReceiptRepo(db *gorm.DB) ReceiptRepository {
	return &receiptRepo{db: db}
}

func (r *receiptRepo) Create(ctx context.Context, receipt *model.Receipt) error {
	return r.db.WithContext(ctx).Create(receipt).Error
}

func (r *receiptRepo) GetByID(ctx context.Context, id string) (*model.Receipt, error) {
	var receipt model.Receipt
	err := r.db.WithContext(ctx).
		Where("receipt_id = ?", id).
		First(&receipt).Error
	if err != nil {
		return nil, err
	}
	return &receipt, nil
}

func (r *receiptRepo) List(ctx context.Context) ([]model.Receipt, error) {
	var receipts []model.Receipt
	err := r.db.WithContext(ctx).Order("payment_time DESC").Find(&receipts).Error
	return receipts, err
}

func (r *receiptRepo) ListByPeriod(ctx context.Context, from, to time.Time) ([]model.Receipt, error) {
	var receipts []model.Receipt
	err := r.db.WithContext(ctx).
		Where("payment_time >= ? AND payment_time < ?", from, to).
		Order("payment_time ASC").
		Find(&receipts).Error
	return receipts, err
}
