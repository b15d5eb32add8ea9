package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/mahou-anisphia/koala-restaurant-sub000/internal/model"
)

// ReservationRepository 预订数据访问接口
type ReservationRepository interface {
	Create(ctx context.Context, res *model.Reservation) error
	GetByID(ctx context.Context, id string) (*model.Reservation, error)
	List(ctx context.Context) ([]model.Reservation, error)
	ListByUser(ctx context.Context, userID string) ([]model.Reservation, error)
	// ListByTable 餐桌删除前的引用保护查询
	ListByTable(ctx context.Context, tableID string) ([]model.Reservation, error)
	Update(ctx context.Context, res *model.Reservation) error
	Delete(ctx context.Context, id string) error
}

type reservationRepo struct {
	db *gorm.DB
}

// NewReservationRepo 创建 ReservationRepository 实例
func NewReservationRepo(db *gorm.DB) ReservationRepository {
	return &reservationRepo{db: db}
}

func (r *reservationRepo) Create(ctx context.Context, res *model.Reservation) error {
	return r.db.WithContext(ctx).Create(res).Error
}

func (r *reservationRepo) GetByID(ctx context.Context, id string) (*model.Reservation, error) {
	var res model.Reservation
	err := r.db.WithContext(ctx).
		Where("reservation_id = ?", id).
		First(&res).Error
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *reservationRepo) List(ctx context.Context) ([]model.Reservation, error) {
	var list []model.Reservation
	err := r.db.WithContext(ctx).Order("reservation_time DESC").Find(&list).Error
	return list, err
}

func (r *reservationRepo) ListByUser(ctx context.Context, userID string) ([]model.Reservation, error) {
	var list []model.Reservation
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("reservation_time DESC").
		Find(&list).Error
	return list, err
}

func (r *reservationRepo) ListByTable(ctx context.Context, tableID string) ([]model.Reservation, error) {
	var list []model.Reservation
	err := r.db.WithContext(ctx).
		Where("table_id = ?", tableID).
		Find(&list).Error
	return list, err
}

func (r *reservationRepo) Update(ctx context.Context, res *model.Reservation) error {
	return r.db.WithContext(ctx).Save(res).Error
}

func (r *reservationRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("reservation_id = ?", id).
		Delete(&model.Reservation{}).Error
}
