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

// ── 订单模块业务错误 ──

var (
	ErrOrderNotFound     = errors.New("订单不存在")
	ErrOrderItemNotFound = errors.New("订单条目不存在")
)

// OrderService 订单业务接口
type OrderService interface {
	Create(ctx context.Context, req *dto.CreateOrderRequest, callerID string) (*dto.OrderResponse, error)
	GetByID(ctx context.Context, id string) (*dto.OrderResponse, error)
	List(ctx context.Context) ([]dto.OrderResponse, error)
	UpdateStatus(ctx context.Context, id string, req *dto.UpdateOrderStatusRequest) error

	AddItem(ctx context.Context, orderID string, req *dto.CreateOrderItemRequest) (*dto.OrderItemResponse, error)
	UpdateItemStatus(ctx context.Context, itemID string, req *dto.UpdateOrderItemStatusRequest) error
	DeleteItem(ctx context.Context, itemID string) error
	ListItemDetails(ctx context.Context, orderID string) ([]dto.OrderItemDetailResponse, error)
}

type orderService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewOrderService 创建 OrderService 实例
func NewOrderService(repo *repository.Repository, logger *zap.Logger) OrderService {
	return &orderService{repo: repo, logger: logger}
}

// ────────────────────── Create ──────────────────────

// Create 订单与首批条目一次写入；任何条目校验失败则整单不落库
func (s *orderService) Create(ctx context.Context, req *dto.CreateOrderRequest, callerID string) (*dto.OrderResponse, error) {
	status := req.Status
	if status == "" {
		status = model.OrderPending
	}
	if !model.ValidOrderStatus(status) {
		return nil, apperrors.NewInvalidEnum("status", status, model.OrderStatuses())
	}

	if req.TableID != nil {
		if _, err := s.repo.DiningTable.GetByID(ctx, *req.TableID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrTableNotFound
			}
			s.logger.Error("查询餐桌失败", zap.String("id", *req.TableID), zap.Error(err))
			return nil, err
		}
	}

	items := make([]model.OrderItem, 0, len(req.Items))
	for i := range req.Items {
		it := &req.Items[i]
		itemStatus := it.Status
		if itemStatus == "" {
			itemStatus = model.ItemOrdered
		}
		if !model.ValidOrderItemStatus(itemStatus) {
			return nil, apperrors.NewInvalidEnum("items.status", itemStatus, model.OrderItemStatuses())
		}
		if _, err := s.repo.Dish.GetByID(ctx, it.DishID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrDishNotFound
			}
			s.logger.Error("查询菜品失败", zap.String("id", it.DishID), zap.Error(err))
			return nil, err
		}
		items = append(items, model.OrderItem{
			DishID:          it.DishID,
			Quantity:        it.Quantity,
			Status:          itemStatus,
			SpecialRequests: it.SpecialRequests,
		})
	}

	order := &model.MealOrder{
		UserID:     callerID,
		TableID:    req.TableID,
		LocationID: req.LocationID,
		Status:     status,
		Items:      items,
	}

	if err := s.repo.Order.CreateWithItems(ctx, order); err != nil {
		s.logger.Error("创建订单失败", zap.Error(err))
		return nil, err
	}

	return s.toOrderResponse(order), nil
}

// ────────────────────── GetByID ──────────────────────

func (s *orderService) GetByID(ctx context.Context, id string) (*dto.OrderResponse, error) {
	order, err := s.repo.Order.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		s.logger.Error("查询订单失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return s.toOrderResponse(order), nil
}

// ────────────────────── List ──────────────────────

func (s *orderService) List(ctx context.Context) ([]dto.OrderResponse, error) {
	orders, err := s.repo.Order.List(ctx)
	if err != nil {
		s.logger.Error("列出订单失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.OrderResponse, 0, len(orders))
	for i := range orders {
		result = append(result, *s.toOrderResponse(&orders[i]))
	}
	return result, nil
}

// ────────────────────── UpdateStatus ──────────────────────

func (s *orderService) UpdateStatus(ctx context.Context, id string, req *dto.UpdateOrderStatusRequest) error {
	if !model.ValidOrderStatus(req.Status) {
		return apperrors.NewInvalidEnum("status", req.Status, model.OrderStatuses())
	}

	if err := s.repo.Order.UpdateStatus(ctx, id, req.Status); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrOrderNotFound
		}
		s.logger.Error("更新订单状态失败", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}

// ────────────────────── AddItem ──────────────────────

func (s *orderService) AddItem(ctx context.Context, orderID string, req *dto.CreateOrderItemRequest) (*dto.OrderItemResponse, error) {
	status := req.Status
	if status == "" {
		status = model.ItemOrdered
	}
	if !model.ValidOrderItemStatus(status) {
		return nil, apperrors.NewInvalidEnum("status", status, model.OrderItemStatuses())
	}

	if _, err := s.repo.Order.GetByID(ctx, orderID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		s.logger.Error("查询订单失败", zap.String("id", orderID), zap.Error(err))
		return nil, err
	}
	if _, err := s.repo.Dish.GetByID(ctx, req.DishID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDishNotFound
		}
		s.logger.Error("查询菜品失败", zap.String("id", req.DishID), zap.Error(err))
		return nil, err
	}

	item := &model.OrderItem{
		OrderID:         orderID,
		DishID:          req.DishID,
		Quantity:        req.Quantity,
		Status:          status,
		SpecialRequests: req.SpecialRequests,
	}
	if err := s.repo.Order.AddItem(ctx, item); err != nil {
		s.logger.Error("添加订单条目失败", zap.String("order_id", orderID), zap.Error(err))
		return nil, err
	}

	return s.toItemResponse(item), nil
}

// ────────────────────── UpdateItemStatus ──────────────────────

func (s *orderService) UpdateItemStatus(ctx context.Context, itemID string, req *dto.UpdateOrderItemStatusRequest) error {
	if !model.ValidOrderItemStatus(req.Status) {
		return apperrors.NewInvalidEnum("status", req.Status, model.OrderItemStatuses())
	}

	if err := s.repo.Order.UpdateItemStatus(ctx, itemID, req.Status); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrOrderItemNotFound
		}
		s.logger.Error("更新条目状态失败", zap.String("item_id", itemID), zap.Error(err))
		return err
	}
	return nil
}

// ────────────────────── DeleteItem ──────────────────────

func (s *orderService) DeleteItem(ctx context.Context, itemID string) error {
	if err := s.repo.Order.DeleteItem(ctx, itemID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrOrderItemNotFound
		}
		s.logger.Error("删除订单条目失败", zap.String("item_id", itemID), zap.Error(err))
		return err
	}
	return nil
}

// ────────────────────── ListItemDetails ──────────────────────

// ListItemDetails 厨房视角的条目明细（order_item_details 视图）
func (s *orderService) ListItemDetails(ctx context.Context, orderID string) ([]dto.OrderItemDetailResponse, error) {
	if _, err := s.repo.Order.GetByID(ctx, orderID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		s.logger.Error("查询订单失败", zap.String("id", orderID), zap.Error(err))
		return nil, err
	}

	details, err := s.repo.Order.ListItemDetails(ctx, orderID)
	if err != nil {
		s.logger.Error("查询条目明细失败", zap.String("order_id", orderID), zap.Error(err))
		return nil, err
	}

	result := make([]dto.OrderItemDetailResponse, 0, len(details))
	for i := range details {
		d := &details[i]
		result = append(result, dto.OrderItemDetailResponse{
			ID:              d.OrderItemID,
			OrderID:         d.OrderID,
			DishID:          d.DishID,
			DishName:        d.DishName,
			Price:           d.Price,
			Quantity:        d.Quantity,
			Status:          d.Status,
			SpecialRequests: d.SpecialRequests,
			OrderStatus:     d.OrderStatus,
			TableID:         d.TableID,
			TableLabel:      d.TableLabel,
		})
	}
	return result, nil
}

// ── 内部辅助方法 ──

func (s *orderService) toOrderResponse(order *model.MealOrder) *dto.OrderResponse {
	items := make([]dto.OrderItemResponse, 0, len(order.Items))
	for i := range order.Items {
		items = append(items, *s.toItemResponse(&order.Items[i]))
	}
	return &dto.OrderResponse{
		ID:         order.OrderID,
		UserID:     order.UserID,
		TableID:    order.TableID,
		LocationID: order.LocationID,
		Status:     order.Status,
		Items:      items,
		CreatedAt:  order.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  order.UpdatedAt.Format(time.RFC3339),
	}
}

func (s *orderService) toItemResponse(item *model.OrderItem) *dto.OrderItemResponse {
	return &dto.OrderItemResponse{
		ID:              item.OrderItemID,
		DishID:          item.DishID,
		Quantity:        item.Quantity,
		Status:          item.Status,
		SpecialRequests: item.SpecialRequests,
	}
}
