package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/mahou-anisphia/koala-restaurant-sub000/internal/model"
	"github.com/mahou-anisphia/koala-restaurant-sub000/internal/repository"
)

// newTestRepository 全量 mock 仓库，各测试按需往 map 里塞数据
func newTestRepository() *repository.Repository {
	return &repository.Repository{
		User:        newMockUserRepo(),
		Location:    newMockLocationRepo(),
		Category:    newMockCategoryRepo(),
		Dish:        newMockDishRepo(),
		Menu:        newMockMenuRepo(),
		DiningTable: newMockTableRepo(),
		Reservation: newMockReservationRepo(),
		Order:       newMockOrderRepo(),
		Receipt:     newMockReceiptRepo(),
	}
}

// ── Mock UserRepository ──

type mockUserRepo struct {
	users map[string]*model.User
	seq   int
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*model.User)}
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	for _, u := range m.users {
		if u.Login == user.Login {
			return gorm.ErrDuplicatedKey
		}
	}
	if user.UserID == "" {
		m.seq++
		user.UserID = fmt.Sprintf("user-%03d", m.seq)
	}
	m.users[user.UserID] = user
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByLogin(_ context.Context, login string) (*model.User, error) {
	for _, u := range m.users {
		if u.Login == login {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) List(_ context.Context) ([]model.UserDetail, error) {
	var result []model.UserDetail
	for _, u := range m.users {
		result = append(result, model.UserDetail{
			UserID:     u.UserID,
			Name:       u.Name,
			Role:       u.Role,
			Contact:    u.Contact,
			Login:      u.Login,
			LocationID: u.LocationID,
		})
	}
	return result, nil
}

func (m *mockUserRepo) Update(_ context.Context, user *model.User) error {
	m.users[user.UserID] = user
	return nil
}

func (m *mockUserRepo) UpdatePassword(_ context.Context, id, passwordHash string) error {
	if u, ok := m.users[id]; ok {
		u.PasswordHash = passwordHash
		return nil
	}
	return gorm.ErrRecordNotFound
}

func (m *mockUserRepo) UpdateRole(_ context.Context, id, role string) error {
	if u, ok := m.users[id]; ok {
		u.Role = role
		return nil
	}
	return gorm.ErrRecordNotFound
}

func (m *mockUserRepo) Delete(_ context.Context, id string) error {
	delete(m.users, id)
	return nil
}

func (m *mockUserRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.users)), nil
}

// ── Mock LocationRepository ──

type mockLocationRepo struct {
	locations map[string]*model.Location
}

func newMockLocationRepo() *mockLocationRepo {
	return &mockLocationRepo{locations: make(map[string]*model.Location)}
}

func (m *mockLocationRepo) Create(_ context.Context, loc *model.Location) error {
	if loc.LocationID == "" {
		loc.LocationID = "loc-" + strings.ReplaceAll(loc.Address, " ", "-")
	}
	m.locations[loc.LocationID] = loc
	return nil
}

func (m *mockLocationRepo) GetByID(_ context.Context, id string) (*model.Location, error) {
	if l, ok := m.locations[id]; ok {
		return l, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockLocationRepo) List(_ context.Context) ([]model.Location, error) {
	var result []model.Location
	for _, l := range m.locations {
		result = append(result, *l)
	}
	return result, nil
}

func (m *mockLocationRepo) Update(_ context.Context, loc *model.Location) error {
	m.locations[loc.LocationID] = loc
	return nil
}

func (m *mockLocationRepo) Delete(_ context.Context, id string) error {
	delete(m.locations, id)
	return nil
}

// ── Mock CategoryRepository ──

type mockCategoryRepo struct {
	categories map[string]*model.Category
}

func newMockCategoryRepo() *mockCategoryRepo {
	return &mockCategoryRepo{categories: make(map[string]*model.Category)}
}

func (m *mockCategoryRepo) Create(_ context.Context, cat *model.Category) error {
	if cat.CategoryID == "" {
		cat.CategoryID = "cat-" + cat.Name
	}
	m.categories[cat.CategoryID] = cat
	return nil
}

func (m *mockCategoryRepo) GetByID(_ context.Context, id string) (*model.Category, error) {
	if c, ok := m.categories[id]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCategoryRepo) List(_ context.Context) ([]model.Category, error) {
	var result []model.Category
	for _, c := range m.categories {
		result = append(result, *c)
	}
	return result, nil
}

func (m *mockCategoryRepo) Update(_ context.Context, cat *model.Category) error {
	m.categories[cat.CategoryID] = cat
	return nil
}

func (m *mockCategoryRepo) Delete(_ context.Context, id string) error {
	delete(m.categories, id)
	return nil
}

// ── Mock DishRepository ──

type mockDishRepo struct {
	dishes map[string]*model.Dish
}

func newMockDishRepo() *mockDishRepo {
	return &mockDishRepo{dishes: make(map[string]*model.Dish)}
}

func (m *mockDishRepo) Create(_ context.Context, dish *model.Dish) error {
	if dish.DishID == "" {
		dish.DishID = "dish-" + dish.Name
	}
	m.dishes[dish.DishID] = dish
	return nil
}

func (m *mockDishRepo) GetByID(_ context.Context, id string) (*model.Dish, error) {
	if d, ok := m.dishes[id]; ok {
		return d, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockDishRepo) List(_ context.Context) ([]model.Dish, error) {
	var result []model.Dish
	for _, d := range m.dishes {
		result = append(result, *d)
	}
	return result, nil
}

func (m *mockDishRepo) ListByCategory(_ context.Context, categoryID string) ([]model.Dish, error) {
	var result []model.Dish
	for _, d := range m.dishes {
		if d.CategoryID != nil && *d.CategoryID == categoryID {
			result = append(result, *d)
		}
	}
	return result, nil
}

func (m *mockDishRepo) Update(_ context.Context, dish *model.Dish) error {
	m.dishes[dish.DishID] = dish
	return nil
}

func (m *mockDishRepo) Delete(_ context.Context, id string) error {
	delete(m.dishes, id)
	return nil
}

// ── Mock MenuRepository ──

type mockMenuRepo struct {
	menus map[string]*model.Menu
	// pairs key 形如 "menuID|dishID"
	pairs map[string]*model.MenuDish
}

func newMockMenuRepo() *mockMenuRepo {
	return &mockMenuRepo{
		menus: make(map[string]*model.Menu),
		pairs: make(map[string]*model.MenuDish),
	}
}

func pairKey(menuID, dishID string) string { return menuID + "|" + dishID }

func (m *mockMenuRepo) Create(_ context.Context, menu *model.Menu) error {
	if menu.MenuID == "" {
		menu.MenuID = "menu-" + menu.Name
	}
	m.menus[menu.MenuID] = menu
	return nil
}

func (m *mockMenuRepo) GetByID(_ context.Context, id string) (*model.Menu, error) {
	if mn, ok := m.menus[id]; ok {
		return mn, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockMenuRepo) List(_ context.Context) ([]model.Menu, error) {
	var result []model.Menu
	for _, mn := range m.menus {
		result = append(result, *mn)
	}
	return result, nil
}

func (m *mockMenuRepo) Update(_ context.Context, menu *model.Menu) error {
	m.menus[menu.MenuID] = menu
	return nil
}

func (m *mockMenuRepo) DeleteWithDishes(_ context.Context, id string) error {
	for k := range m.pairs {
		if strings.HasPrefix(k, id+"|") {
			delete(m.pairs, k)
		}
	}
	delete(m.menus, id)
	return nil
}

func (m *mockMenuRepo) AddDish(_ context.Context, md *model.MenuDish) error {
	k := pairKey(md.MenuID, md.DishID)
	if _, ok := m.pairs[k]; ok {
		return gorm.ErrDuplicatedKey
	}
	m.pairs[k] = md
	return nil
}

func (m *mockMenuRepo) HasDish(_ context.Context, menuID, dishID string) (bool, error) {
	_, ok := m.pairs[pairKey(menuID, dishID)]
	return ok, nil
}

func (m *mockMenuRepo) UpdateDishStatus(_ context.Context, menuID, dishID, status string) error {
	if md, ok := m.pairs[pairKey(menuID, dishID)]; ok {
		md.Status = status
		return nil
	}
	return gorm.ErrRecordNotFound
}

func (m *mockMenuRepo) RemoveDish(_ context.Context, menuID, dishID string) error {
	k := pairKey(menuID, dishID)
	if _, ok := m.pairs[k]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.pairs, k)
	return nil
}

func (m *mockMenuRepo) ListDishDetails(_ context.Context, menuID string) ([]model.MenuDishDetail, error) {
	var result []model.MenuDishDetail
	for _, md := range m.pairs {
		if md.MenuID == menuID {
			result = append(result, model.MenuDishDetail{
				MenuID: md.MenuID,
				DishID: md.DishID,
				Status: md.Status,
			})
		}
	}
	return result, nil
}

// ── Mock DiningTableRepository ──

type mockTableRepo struct {
	tables map[string]*model.DiningTable
}

func newMockTableRepo() *mockTableRepo {
	return &mockTableRepo{tables: make(map[string]*model.DiningTable)}
}

func (m *mockTableRepo) Create(_ context.Context, table *model.DiningTable) error {
	if table.TableID == "" {
		table.TableID = "table-" + table.Label
	}
	m.tables[table.TableID] = table
	return nil
}

func (m *mockTableRepo) GetByID(_ context.Context, id string) (*model.DiningTable, error) {
	if t, ok := m.tables[id]; ok {
		return t, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockTableRepo) List(_ context.Context) ([]model.DiningTable, error) {
	var result []model.DiningTable
	for _, t := range m.tables {
		result = append(result, *t)
	}
	return result, nil
}

func (m *mockTableRepo) Update(_ context.Context, table *model.DiningTable) error {
	m.tables[table.TableID] = table
	return nil
}

func (m *mockTableRepo) Delete(_ context.Context, id string) error {
	delete(m.tables, id)
	return nil
}

// ── Mock ReservationRepository ──

type mockReservationRepo struct {
	reservations map[string]*model.Reservation
	seq          int
}

func newMockReservationRepo() *mockReservationRepo {
	return &mockReservationRepo{reservations: make(map[string]*model.Reservation)}
}

func (m *mockReservationRepo) Create(_ context.Context, res *model.Reservation) error {
	if res.ReservationID == "" {
		m.seq++
		res.ReservationID = fmt.Sprintf("res-%03d", m.seq)
	}
	m.reservations[res.ReservationID] = res
	return nil
}

func (m *mockReservationRepo) GetByID(_ context.Context, id string) (*model.Reservation, error) {
	if r, ok := m.reservations[id]; ok {
		return r, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockReservationRepo) List(_ context.Context) ([]model.Reservation, error) {
	var result []model.Reservation
	for _, r := range m.reservations {
		result = append(result, *r)
	}
	return result, nil
}

func (m *mockReservationRepo) ListByUser(_ context.Context, userID string) ([]model.Reservation, error) {
	var result []model.Reservation
	for _, r := range m.reservations {
		if r.UserID == userID {
			result = append(result, *r)
		}
	}
	return result, nil
}

func (m *mockReservationRepo) ListByTable(_ context.Context, tableID string) ([]model.Reservation, error) {
	var result []model.Reservation
	for _, r := range m.reservations {
		if r.TableID == tableID {
			result = append(result, *r)
		}
	}
	return result, nil
}

func (m *mockReservationRepo) Update(_ context.Context, res *model.Reservation) error {
	m.reservations[res.ReservationID] = res
	return nil
}

func (m *mockReservationRepo) Delete(_ context.Context, id string) error {
	delete(m.reservations, id)
	return nil
}

// ── Mock OrderRepository ──

type mockOrderRepo struct {
	orders  map[string]*model.MealOrder
	items   map[string]*model.OrderItem
	seq     int
	itemSeq int
}

func newMockOrderRepo() *mockOrderRepo {
	return &mockOrderRepo{
		orders: make(map[string]*model.MealOrder),
		items:  make(map[string]*model.OrderItem),
	}
}

func (m *mockOrderRepo) CreateWithItems(_ context.Context, order *model.MealOrder) error {
	if order.OrderID == "" {
		m.seq++
		order.OrderID = fmt.Sprintf("order-%03d", m.seq)
	}
	for i := range order.Items {
		it := &order.Items[i]
		it.OrderID = order.OrderID
		if it.OrderItemID == "" {
			m.itemSeq++
			it.OrderItemID = fmt.Sprintf("item-%03d", m.itemSeq)
		}
		m.items[it.OrderItemID] = it
	}
	m.orders[order.OrderID] = order
	return nil
}

func (m *mockOrderRepo) GetByID(_ context.Context, id string) (*model.MealOrder, error) {
	if o, ok := m.orders[id]; ok {
		var items []model.OrderItem
		for _, it := range m.items {
			if it.OrderID == id {
				items = append(items, *it)
			}
		}
		o.Items = items
		return o, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockOrderRepo) List(_ context.Context) ([]model.MealOrder, error) {
	var result []model.MealOrder
	for _, o := range m.orders {
		result = append(result, *o)
	}
	return result, nil
}

func (m *mockOrderRepo) UpdateStatus(_ context.Context, id, status string) error {
	if o, ok := m.orders[id]; ok {
		o.Status = status
		return nil
	}
	return gorm.ErrRecordNotFound
}

func (m *mockOrderRepo) AddItem(_ context.Context, item *model.OrderItem) error {
	if item.OrderItemID == "" {
		m.itemSeq++
		item.OrderItemID = fmt.Sprintf("item-%03d", m.itemSeq)
	}
	m.items[item.OrderItemID] = item
	return nil
}

func (m *mockOrderRepo) GetItem(_ context.Context, itemID string) (*model.OrderItem, error) {
	if it, ok := m.items[itemID]; ok {
		return it, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockOrderRepo) UpdateItemStatus(_ context.Context, itemID, status string) error {
	if it, ok := m.items[itemID]; ok {
		it.Status = status
		return nil
	}
	return gorm.ErrRecordNotFound
}

func (m *mockOrderRepo) DeleteItem(_ context.Context, itemID string) error {
	if _, ok := m.items[itemID]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.items, itemID)
	return nil
}

func (m *mockOrderRepo) ListItemDetails(_ context.Context, orderID string) ([]model.OrderItemDetail, error) {
	var result []model.OrderItemDetail
	for _, it := range m.items {
		if it.OrderID == orderID {
			result = append(result, model.OrderItemDetail{
				OrderItemID: it.OrderItemID,
				OrderID:     it.OrderID,
				DishID:      it.DishID,
				Quantity:    it.Quantity,
				Status:      it.Status,
			})
		}
	}
	return result, nil
}

// ── Mock ReceiptRepository ──

type mockReceiptRepo struct {
	receipts map[string]*model.Receipt
	seq      int
}

func newMockReceiptRepo() *mockReceiptRepo {
	return &mockReceiptRepo{receipts: make(map[string]*model.Receipt)}
}

func (m *mockReceiptRepo) Create(_ context.Context, receipt *model.Receipt) error {
	if receipt.ReceiptID == "" {
		m.seq++
		receipt.ReceiptID = fmt.Sprintf("receipt-%03d", m.seq)
	}
	m.receipts[receipt.ReceiptID] = receipt
	return nil
}

func (m *mockReceiptRepo) GetByID(_ context.Context, id string) (*model.Receipt, error) {
	if r, ok := m.receipts[id]; ok {
		return r, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockReceiptRepo) List(_ context.Context) ([]model.Receipt, error) {
	var result []model.Receipt
	for _, r := range m.receipts {
		result = append(result, *r)
	}
	return result, nil
}

func (m *mockReceiptRepo) ListByPeriod(_ context.Context, from, to time.Time) ([]model.Receipt, error) {
	var result []model.Receipt
	for _, r := range m.receipts {
		if !r.PaymentTime.Before(from) && r.PaymentTime.Before(to) {
			result = append(result, *r)
		}
	}
	return result, nil
}
