package model

// 状态与角色均为封闭字符串枚举，写入前做成员检查。
// 只校验成员资格，不约束跳转顺序：任意合法值之间可以互相切换。

// ── 角色 ──

const (
	RoleOwner    = "Owner"
	RoleWaiter   = "Waiter"
	RoleChef     = "Chef"
	RoleCustomer = "Customer"
)

// Roles 全部合法角色
func Roles() []string {
	return []string{RoleOwner, RoleWaiter, RoleChef, RoleCustomer}
}

// ValidRole 角色成员检查
func ValidRole(v string) bool { return contains(Roles(), v) }

// ── 订单状态 ──

const (
	OrderPending   = "Pending"
	OrderPreparing = "Preparing"
	OrderServed    = "Served"
	OrderCompleted = "Completed"
)

// OrderStatuses 全部合法订单状态
func OrderStatuses() []string {
	return []string{OrderPending, OrderPreparing, OrderServed, OrderCompleted}
}

// ValidOrderStatus 订单状态成员检查
func ValidOrderStatus(v string) bool { return contains(OrderStatuses(), v) }

// ── 订单条目状态（历史原因为小写）──

const (
	ItemOrdered   = "ordered"
	ItemPreparing = "preparing"
	ItemCancelled = "cancelled"
	ItemDelivered = "delivered"
	ItemCompleted = "completed"
)

// OrderItemStatuses 全部合法条目状态
func OrderItemStatuses() []string {
	return []string{ItemOrdered, ItemPreparing, ItemCancelled, ItemDelivered, ItemCompleted}
}

// ValidOrderItemStatus 条目状态成员检查
func ValidOrderItemStatus(v string) bool { return contains(OrderItemStatuses(), v) }

// ── 预订状态 ──

const (
	ReservationPending   = "Pending"
	ReservationConfirmed = "Confirmed"
	ReservationCancelled = "Cancelled"
)

// ReservationStatuses 全部合法预订状态
func ReservationStatuses() []string {
	return []string{ReservationPending, ReservationConfirmed, ReservationCancelled}
}

// ValidReservationStatus 预订状态成员检查
func ValidReservationStatus(v string) bool { return contains(ReservationStatuses(), v) }

// ── 菜单条目状态 ──

const (
	MenuDishAvailable   = "Available"
	MenuDishUnavailable = "Unavailable"
)

// MenuDishStatuses 全部合法菜单条目状态
func MenuDishStatuses() []string {
	return []string{MenuDishAvailable, MenuDishUnavailable}
}

// ValidMenuDishStatus 菜单条目状态成员检查
func ValidMenuDishStatus(v string) bool { return contains(MenuDishStatuses(), v) }

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
