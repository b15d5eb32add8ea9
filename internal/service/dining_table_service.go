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

// ── 餐桌模块业务错误 ──

var (
	ErrTableNotFound = errors.New("餐桌不存在")
)

// DiningTableService 餐桌业务接口
type DiningTableService interface {
	Create(ctx context.Context, req *dto.CreateTableRequest) (*dto.TableResponse, error)
	GetByID(ctx context.Context, id string) (*dto.TableResponse, error)
	List(ctx context.Context) ([]dto.TableResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateTableRequest) (*dto.TableResponse, error)
	Delete(ctx context.Context, id string) error
}

type diningTableService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewDiningTableService 创建 DiningTableService 实例
func NewDiningTableService(repo *repository.Repository, logger *zap.Logger) DiningTableService {
	return &diningTableService{repo: repo, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *diningTableService) Create(ctx context.Context, req *dto.CreateTableRequest) (*dto.TableResponse, error) {
	table := &model.DiningTable{
		Capacity:   req.Capacity,
		Label:      req.Label,
		LocationID: req.LocationID,
	}

	if err := s.repo.DiningTable.Create(ctx, table); err != nil {
		s.logger.Error("创建餐桌失败", zap.Error(err))
		return nil, err
	}

	return s.toTableResponse(table), nil
}

// ────────────────────── GetByID ──────────────────────

func (s *diningTableService) GetByID(ctx context.Context, id string) (*dto.TableResponse, error) {
	table, err := s.repo.DiningTable.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTableNotFound
		}
		s.logger.Error("查询餐桌失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return s.toTableResponse(table), nil
}

// ────────────────────── List ──────────────────────

func (s *diningTableService) List(ctx context.Context) ([]dto.TableResponse, error) {
	tables, err := s.repo.DiningTable.List(ctx)
	if err != nil {
		s.logger.Error("列出餐桌失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.TableResponse, 0, len(tables))
	for i := range tables {
		result = append(result, *s.toTableResponse(&tables[i]))
	}
	return result, nil
}

// ────────────────────── Update ──────────────────────

func (s *diningTableService) Update(ctx context.Context, id string, req *dto.UpdateTableRequest) (*dto.TableResponse, error) {
	table, err := s.repo.DiningTable.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTableNotFound
		}
		s.logger.Error("查询餐桌失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	if req.Capacity != nil {
		table.Capacity = *req.Capacity
	}
	if req.Label != nil {
		table.Label = *req.Label
	}
	if req.LocationID != nil {
		table.LocationID = req.LocationID
	}

	if err := s.repo.DiningTable.Update(ctx, table); err != nil {
		s.logger.Error("更新餐桌失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return s.toTableResponse(table), nil
}

// ────────────────────── Delete ──────────────────────

// Delete 引用保护：存在关联预订时拒绝删除，并把阻塞预订返回给调用方
func (s *diningTableService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.DiningTable.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTableNotFound
		}
		s.logger.Error("查询餐桌失败", zap.String("id", id), zap.Error(err))
		return err
	}

	reservations, err := s.repo.Reservation.ListByTable(ctx, id)
	if err != nil {
		s.logger.Error("查询关联预订失败", zap.String("table_id", id), zap.Error(err))
		return err
	}
	if len(reservations) > 0 {
		blocking := make([]dto.ReservationSummary, 0, len(reservations))
		for i := range reservations {
			r := &reservations[i]
			blocking = append(blocking, dto.ReservationSummary{
				ID:              r.ReservationID,
				ReservationTime: r.ReservationTime.Format(time.RFC3339),
				Status:          r.Status,
			})
		}
		return apperrors.NewDependencyConflict("餐桌", blocking)
	}

	if err := s.repo.DiningTable.Delete(ctx, id); err != nil {
		s.logger.Error("删除餐桌失败", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}

// ── 内部辅助方法 ──

func (s *diningTableService) toTableResponse(table *model.DiningTable) *dto.TableResponse {
	return &dto.TableResponse{
		ID:         table.TableID,
		Capacity:   table.Capacity,
		Label:      table.Label,
		LocationID: table.LocationID,
		CreatedAt:  table.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  table.UpdatedAt.Format(time.RFC3339),
	}
}
