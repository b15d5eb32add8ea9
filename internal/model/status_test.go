package model

import "testing"

func TestValidRole(t *testing.T) {
	for _, role := range Roles() {
		if !ValidRole(role) {
			t.Errorf("%s 应为合法角色", role)
		}
	}
	for _, bad := range []string{"owner", "Admin", "Manager", ""} {
		if ValidRole(bad) {
			t.Errorf("%q 不应为合法角色", bad)
		}
	}
}

func TestValidOrderStatus(t *testing.T) {
	for _, status := range OrderStatuses() {
		if !ValidOrderStatus(status) {
			t.Errorf("%s 应为合法订单状态", status)
		}
	}
	// 订单状态首字母大写，条目状态全小写，互不通用
	for _, bad := range []string{"pending", "ordered", "Done", ""} {
		if ValidOrderStatus(bad) {
			t.Errorf("%q 不应为合法订单状态", bad)
		}
	}
}

func TestValidOrderItemStatus(t *testing.T) {
	for _, status := range OrderItemStatuses() {
		if !ValidOrderItemStatus(status) {
			t.Errorf("%s 应为合法条目状态", status)
		}
	}
	for _, bad := range []string{"Ordered", "Pending", "done", ""} {
		if ValidOrderItemStatus(bad) {
			t.Errorf("%q 不应为合法条目状态", bad)
		}
	}
}

func TestValidReservationStatus(t *testing.T) {
	for _, status := range ReservationStatuses() {
		if !ValidReservationStatus(status) {
			t.Errorf("%s 应为合法预订状态", status)
		}
	}
	for _, bad := range []string{"confirmed", "Booked", ""} {
		if ValidReservationStatus(bad) {
			t.Errorf("%q 不应为合法预订状态", bad)
		}
	}
}

func TestValidMenuDishStatus(t *testing.T) {
	for _, status := range MenuDishStatuses() {
		if !ValidMenuDishStatus(status) {
			t.Errorf("%s 应为合法菜单条目状态", status)
		}
	}
	for _, bad := range []string{"available", "SoldOut", ""} {
		if ValidMenuDishStatus(bad) {
			t.Errorf("%q 不应为合法菜单条目状态", bad)
		}
	}
}
