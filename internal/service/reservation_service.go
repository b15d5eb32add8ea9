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

// ── 预订模块业务错误 ──

var (
	ErrReservationNotFound = errors.New("预订不存在")
	ErrInvalidTime         = errors.New("时间格式无效，需要 RFC3339")
)

// ReservationService 预订业务接口
type ReservationService interface {
	Create(ctx context.Context, req *dto.CreateReservationRequest, callerID string) (*dto.ReservationResponse, error)
	GetByID(ctx context.Context, id string) (*dto.ReservationResponse, error)
	List(ctx context.Context) ([]dto.ReservationResponse, error)
	ListMine(ctx context.Context, userID string) ([]dto.ReservationResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateReservationRequest) (*dto.ReservationResponse, error)
	Delete(ctx context.Context, id string) error
}

type reservationService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewReservationService 创建 ReservationService 实例
func NewReservationService(repo *repository.Repository, logger *zap.Logger) ReservationService {
	return &reservationService{repo: repo, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *reservationService) Create(ctx context.Context, req *dto.CreateReservationRequest, callerID string) (*dto.ReservationResponse, error) {
	status := req.Status
	if status == "" {
		status = model.ReservationPending
	}
	if !model.ValidReservationStatus(status) {
		return nil, apperrors.NewInvalidEnum("status", status, model.ReservationStatuses())
	}

	t, err := time.Parse(time.RFC3339, req.ReservationTime)
	if err != nil {
		return nil, ErrInvalidTime
	}

	if _, err := s.repo.DiningTable.GetByID(ctx, req.TableID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTableNotFound
		}
		s.logger.Error("查询餐桌失败", zap.String("id", req.TableID), zap.Error(err))
		return nil, err
	}

	res := &model.Reservation{
		UserID:          callerID,
		TableID:         req.TableID,
		LocationID:      req.LocationID,
		ReservationTime: t,
		SpecialRequests: req.SpecialRequests,
		Status:          status,
	}

	if err := s.repo.Reservation.Create(ctx, res); err != nil {
		s.logger.Error("创建预订失败", zap.Error(err))
		return nil, err
	}

	return s.toReservationResponse(res), nil
}

// ────────────────────── GetByID ──────────────────────

func (s *reservationService) GetByID(ctx context.Context, id string) (*dto.ReservationResponse, error) {
	res, err := s.repo.Reservation.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReservationNotFound
		}
		s.logger.Error("查询预订失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return s.toReservationResponse(res), nil
}

// ────────────────────── List ──────────────────────

func (s *reservationService) List(ctx context.Context) ([]dto.ReservationResponse, error) {
	list, err := s.repo.Reservation.List(ctx)
	if err != nil {
		s.logger.Error("列出预订失败", zap.Error(err))
		return nil, err
	}
	return s.toReservationResponses(list), nil
}

// ────────────────────── ListMine ──────────────────────

// ListMine 顾客只能看到自己名下的预订
func (s *reservationService) ListMine(ctx context.Context, userID string) ([]dto.ReservationResponse, error) {
	list, err := s.repo.Reservation.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("列出预订失败", zap.String("user_id", userID), zap.Error(err))
		return nil, err
	}
	return s.toReservationResponses(list), nil
}

// ────────────────────── Update ──────────────────────

func (s *reservationService) Update(ctx context.Context, id string, req *dto.UpdateReservationRequest) (*dto.ReservationResponse, error) {
	res, err := s.repo.Reservation.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReservationNotFound
		}
		s.logger.Error("查询预订失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	if req.Status != nil {
		if !model.ValidReservationStatus(*req.Status) {
			return nil, apperrors.NewInvalidEnum("status", *req.Status, model.ReservationStatuses())
		}
		res.Status = *req.Status
	}
	if req.ReservationTime != nil {
		t, err := time.Parse(time.RFC3339, *req.ReservationTime)
		if err != nil {
			return nil, ErrInvalidTime
		}
		res.ReservationTime = t
	}
	if req.TableID != nil {
		if _, err := s.repo.DiningTable.GetByID(ctx, *req.TableID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrTableNotFound
			}
			s.logger.Error("查询餐桌失败", zap.String("id", *req.TableID), zap.Error(err))
			return nil, err
		}
		res.TableID = *req.TableID
	}
	if req.SpecialRequests != nil {
		res.SpecialRequests = *req.SpecialRequests
	}

	if err := s.repo.Reservation.Update(ctx, res); err != nil {
		s.logger.Error("更新预订失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return s.toReservationResponse(res), nil
}

// ────────────────────── Delete ──────────────────────

func (s *reservationService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.Reservation.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrReservationNotFound
		}
		s.logger.Error("查询预订失败", zap.String("id", id), zap.Error(err))
		return err
	}

	if err := s.repo.Reservation.Delete(ctx, id); err != nil {
		s.logger.Error("删除预订失败", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}

// ── 内部辅助方法 ──

func (s *reservationService) toReservationResponse(res *model.Reservation) *dto.ReservationResponse {
	return &dto.ReservationResponse{
		ID:              res.ReservationID,
		UserID:          res.UserID,
		TableID:         res.TableID,
		LocationID:      res.LocationID,
		ReservationTime: res.ReservationTime.Format(time.RFC3339),
		SpecialRequests: res.SpecialRequests,
		Status:          res.Status,
		CreatedAt:       res.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       res.UpdatedAt.Format(time.RFC3339),
	}
}

func (s *reservationService) toReservationResponses(list []model.Reservation) []dto.ReservationResponse {
	result := make([]dto.ReservationResponse, 0, len(list))
	for i := range list {
		result = append(result, *s.toReservationResponse(&list[i]))
	}
	return result
}
