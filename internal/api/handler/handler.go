package handler

import "github.com/mahou-anisphia/koala-restaurant-sub000/internal/service"

// Handler 所有 Handler 的聚合入口
type Handler struct {
	Auth        *AuthHandler
	User        *UserHandler
	Location    *LocationHandler
	Category    *CategoryHandler
	Dish        *DishHandler
	Menu        *MenuHandler
	DiningTable *DiningTableHandler
	Reservation *ReservationHandler
	Order       *OrderHandler
	Receipt     *ReceiptHandler
}

// NewHandler 创建 Handler 聚合
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Auth:        NewAuthHandler(svc.Auth),
		User:        NewUserHandler(svc.User),
		Location:    NewLocationHandler(svc.Location),
		Category:    NewCategoryHandler(svc.Category),
		Dish:        NewDishHandler(svc.Dish),
		Menu:        NewMenuHandler(svc.Menu),
		DiningTable: NewDiningTableHandler(svc.DiningTable),
		Reservation: NewReservationHandler(svc.Reservation, svc.Export),
		Order:       NewOrderHandler(svc.Order),
		Receipt:     NewReceiptHandler(svc.Receipt, svc.Export),
	}
}
