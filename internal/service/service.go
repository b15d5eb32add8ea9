package service

import (
	"go.uber.org/zap"

	"github.com/mahou-anisphia/koala-restaurant-sub000/config"
	"github.com/mahou-anisphia/koala-restaurant-sub000/internal/repository"
	"github.com/mahou-anisphia/koala-restaurant-sub000/pkg/jwt"
	"github.com/mahou-anisphia/koala-restaurant-sub000/pkg/redis"
	"github.com/mahou-anisphia/koala-restaurant-sub000/pkg/storage"
)

// Service 所有 Service 的聚合入口
type Service struct {
	Auth        AuthService
	User        UserService
	Location    LocationService
	Category    CategoryService
	Dish        DishService
	Menu        MenuService
	DiningTable DiningTableService
	Reservation ReservationService
	Order       OrderService
	Receipt     ReceiptService
	Export      ExportService
}

// NewService 创建 Service 聚合
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	media storage.MediaStore,
	logger *zap.Logger,
) *Service {
	return &Service{
		Auth:        NewAuthService(cfg, repo, jwtMgr, rdb, logger),
		User:        NewUserService(repo, logger),
		Location:    NewLocationService(repo, logger),
		Category:    NewCategoryService(repo, logger),
		Dish:        NewDishService(repo, media, logger),
		Menu:        NewMenuService(repo, logger),
		DiningTable: NewDiningTableService(repo, logger),
		Reservation: NewReservationService(repo, logger),
		Order:       NewOrderService(repo, logger),
		Receipt:     NewReceiptService(repo, logger),
		Export:      NewExportService(repo, logger),
	}
}
