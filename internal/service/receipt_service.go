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
)

// ── 收据模块业务错误 ──

var (
	ErrReceiptNotFound = errors.New("收据不存在")
)

// ReceiptService 收据业务接口
type ReceiptService interface {
	Create(ctx context.Context, req *dto.CreateReceiptRequest) (*dto.ReceiptResponse, error)
	GetByID(ctx context.Context, id string) (*dto.ReceiptResponse, error)
	List(ctx context.Context) ([]dto.ReceiptResponse, error)
}

type receiptService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewReceiptService 创建 ReceiptService 实例
func NewReceiptService(repo *repository.Repository, logger *zap.Logger) ReceiptService {
	return &receiptService{repo: repo, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *receiptService) Create(ctx context.Context, req *dto.CreateReceiptRequest) (*dto.ReceiptResponse, error) {
	if _, err := s.repo.Order.GetByID(ctx, req.OrderID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		s.logger.Error("查询订单失败", zap.String("id", req.OrderID), zap.Error(err))
		return nil, err
	}

	receipt := &model.Receipt{
		OrderID:       req.OrderID,
		Amount:        req.Amount,
		PaymentMethod: req.PaymentMethod,
		PaymentTime:   time.Now(),
		LocationID:    req.LocationID,
	}

	if err := s.repo.Receipt.Create(ctx, receipt); err != nil {
		s.logger.Error("创建收据失败", zap.Error(err))
		return nil, err
	}

	return s.toReceiptResponse(receipt), nil
}

// ────────────────────── GetByID ──────────────────────

func (s *receiptService) GetByID(ctx context.Context, id string) (*dto.ReceiptResponse, error) {
	receipt, err := s.repo.Receipt.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReceiptNotFound
		}
		s.logger.Error("查询收据失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return s.toReceiptResponse(receipt), nil
}

// ────────────────────── List ──────────────────────

func (s *receiptService) List(ctx context.Context) ([]dto.ReceiptResponse, error) {
	receipts, err := s.repo.Receipt.List(ctx)
	if err != nil {
		s.logger.Error("列出收据失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.ReceiptResponse, 0, len(receipts))
	for i := range receipts {
		result = append(result, *s.toReceiptResponse(&receipts[i]))
	}
	return result, nil
}

// ── 内部辅助方法 ──

func (s *receiptService) toReceiptResponse(receipt *model.Receipt) *dto.ReceiptResponse {
	return &dto.ReceiptResponse{
		ID:            receipt.ReceiptID,
		OrderID:       receipt.OrderID,
		Amount:        receipt.Amount,
		PaymentMethod: receipt.PaymentMethod,
		PaymentTime:   receipt.PaymentTime.Format(time.RFC3339),
		LocationID:    receipt.LocationID,
		CreatedAt:     receipt.CreatedAt.Format(time.RFC3339),
	}
}
