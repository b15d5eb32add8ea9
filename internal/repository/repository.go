package repository

import "gorm.io/gorm"

// Repository 所有 Repository 的聚合入口
type Repository struct {
	User        UserRepository
	Location    LocationRepository
	Category    CategoryRepository
	Dish        DishRepository
	Menu        MenuRepository
	DiningTable DiningTableRepository
	Reservation ReservationRepository
	Order       OrderRepository
	Receipt     ReceiptRepository
}

// NewRepository 创建 Repository 聚合
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		User:        NewUserRepo(db),
		Location:    NewLocationRepo(db),
		Category:    NewCategoryRepo(db),
		Dish:        NewDishRepo(db),
		Menu:        NewMenuRepo(db),
		DiningTable: NewDiningTableRepo(db),
		Reservation: NewReservationRepo(db),
		Order:       NewOrderRepo(db),
		Receipt:     NewReceiptRepo(db),
	}
}
