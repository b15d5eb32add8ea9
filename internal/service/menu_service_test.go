package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/mahou-anisphia/koala-restaurant-sub000/internal/dto"
	"github.com/mahou-anisphia/koala-restaurant-sub000/internal/model"
	"github.com/mahou-anisphia/koala-restaurant-sub000/internal/repository"
	apperrors "github.com/mahou-anisphia/koala-restaurant-sub000/pkg/errors"
)

func setupMenuService(t *testing.T) (MenuService, *repository.Repository) {
	t.Helper()
	repo := newTestRepository()
	return NewMenuService(repo, zap.NewNop()), repo
}

func seedMenuAndDish(t *testing.T, repo *repository.Repository) (*model.Menu, *model.Dish) {
	t.Helper()
	menu := &model.Menu{Name: "午市菜单"}
	if err := repo.Menu.Create(context.Background(), menu); err != nil {
		t.Fatalf("预置菜单失败: %v", err)
	}
	dish := &model.Dish{Name: "鱼香肉丝", Price: 32}
	if err := repo.Dish.Create(context.Background(), dish); err != nil {
		t.Fatalf("预置菜品失败: %v", err)
	}
	return menu, dish
}

func TestMenuAddDish(t *testing.T) {
	svc, repo := setupMenuService(t)
	menu, dish := seedMenuAndDish(t, repo)

	err := svc.AddDish(context.Background(), menu.MenuID, &dto.AddMenuDishRequest{DishID: dish.DishID})
	if err != nil {
		t.Fatalf("AddDish 应成功: %v", err)
	}

	// 缺省状态为 Available
	details, err := repo.Menu.ListDishDetails(context.Background(), menu.MenuID)
	if err != nil {
		t.Fatalf("查询菜单条目失败: %v", err)
	}
	if len(details) != 1 || details[0].Status != model.MenuDishAvailable {
		t.Errorf("菜单条目不符: %+v", details)
	}
}

func TestMenuAddDishDuplicate(t *testing.T) {
	svc, repo := setupMenuService(t)
	menu, dish := seedMenuAndDish(t, repo)

	req := &dto.AddMenuDishRequest{DishID: dish.DishID}
	if err := svc.AddDish(context.Background(), menu.MenuID, req); err != nil {
		t.Fatalf("首次 AddDish 应成功: %v", err)
	}
	if err := svc.AddDish(context.Background(), menu.MenuID, req); err != ErrMenuDishExists {
		t.Errorf("期望 ErrMenuDishExists，实际: %v", err)
	}
}

func TestMenuAddDishInvalidStatus(t *testing.T) {
	svc, repo := setupMenuService(t)
	menu, dish := seedMenuAndDish(t, repo)

	err := svc.AddDish(context.Background(), menu.MenuID, &dto.AddMenuDishRequest{
		DishID: dish.DishID,
		Status: "SoldOut",
	})
	var enumErr *apperrors.InvalidEnumError
	if !errors.As(err, &enumErr) {
		t.Fatalf("期望 InvalidEnumError，实际: %v", err)
	}
}

func TestMenuAddDishNotFound(t *testing.T) {
	svc, repo := setupMenuService(t)
	menu, _ := seedMenuAndDish(t, repo)

	if err := svc.AddDish(context.Background(), menu.MenuID, &dto.AddMenuDishRequest{DishID: "missing"}); err != ErrDishNotFound {
		t.Errorf("期望 ErrDishNotFound，实际: %v", err)
	}
	if err := svc.AddDish(context.Background(), "missing", &dto.AddMenuDishRequest{DishID: "whatever"}); err != ErrMenuNotFound {
		t.Errorf("期望 ErrMenuNotFound，实际: %v", err)
	}
}

func TestMenuUpdateDishStatus(t *testing.T) {
	svc, repo := setupMenuService(t)
	menu, dish := seedMenuAndDish(t, repo)

	if err := svc.AddDish(context.Background(), menu.MenuID, &dto.AddMenuDishRequest{DishID: dish.DishID}); err != nil {
		t.Fatalf("AddDish 应成功: %v", err)
	}

	err := svc.UpdateDishStatus(context.Background(), menu.MenuID, dish.DishID, &dto.UpdateMenuDishRequest{
		Status: model.MenuDishUnavailable,
	})
	if err != nil {
		t.Fatalf("UpdateDishStatus 应成功: %v", err)
	}

	details, _ := repo.Menu.ListDishDetails(context.Background(), menu.MenuID)
	if len(details) != 1 || details[0].Status != model.MenuDishUnavailable {
		t.Errorf("状态未更新: %+v", details)
	}
}

func TestMenuRemoveDish(t *testing.T) {
	svc, repo := setupMenuService(t)
	menu, dish := seedMenuAndDish(t, repo)

	if err := svc.AddDish(context.Background(), menu.MenuID, &dto.AddMenuDishRequest{DishID: dish.DishID}); err != nil {
		t.Fatalf("AddDish 应成功: %v", err)
	}
	if err := svc.RemoveDish(context.Background(), menu.MenuID, dish.DishID); err != nil {
		t.Fatalf("RemoveDish 应成功: %v", err)
	}
	if err := svc.RemoveDish(context.Background(), menu.MenuID, dish.DishID); err != ErrMenuDishNotFound {
		t.Errorf("期望 ErrMenuDishNotFound，实际: %v", err)
	}
}

// 删除菜单连带清空条目，不留孤儿关联
func TestMenuDeleteCascadesDishes(t *testing.T) {
	svc, repo := setupMenuService(t)
	menu, dish := seedMenuAndDish(t, repo)

	if err := svc.AddDish(context.Background(), menu.MenuID, &dto.AddMenuDishRequest{DishID: dish.DishID}); err != nil {
		t.Fatalf("AddDish 应成功: %v", err)
	}
	if err := svc.Delete(context.Background(), menu.MenuID); err != nil {
		t.Fatalf("Delete 应成功: %v", err)
	}

	if _, err := svc.GetByID(context.Background(), menu.MenuID); err != ErrMenuNotFound {
		t.Errorf("删除后查询应返回 ErrMenuNotFound，实际: %v", err)
	}
	details, _ := repo.Menu.ListDishDetails(context.Background(), menu.MenuID)
	if len(details) != 0 {
		t.Errorf("菜单条目应随菜单删除，剩余: %d", len(details))
	}
}

func TestMenuGetWithDishes(t *testing.T) {
	svc, repo := setupMenuService(t)
	menu, dish := seedMenuAndDish(t, repo)

	if err := svc.AddDish(context.Background(), menu.MenuID, &dto.AddMenuDishRequest{DishID: dish.DishID}); err != nil {
		t.Fatalf("AddDish 应成功: %v", err)
	}

	detail, err := svc.GetByID(context.Background(), menu.MenuID)
	if err != nil {
		t.Fatalf("GetByID 应成功: %v", err)
	}
	if detail.Name != "午市菜单" {
		t.Errorf("菜单名称不符: %s", detail.Name)
	}
	if len(detail.Dishes) != 1 || detail.Dishes[0].DishID != dish.DishID {
		t.Errorf("菜单条目不符: %+v", detail.Dishes)
	}
}
