package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/mahou-anisphia/koala-restaurant-sub000/internal/dto"
	"github.com/mahou-anisphia/koala-restaurant-sub000/internal/model"
	"github.com/mahou-anisphia/koala-restaurant-sub000/internal/repository"
	apperrors "github.com/mahou-anisphia/koala-restaurant-sub000/pkg/errors"
)

func setupTableService(t *testing.T) (DiningTableService, *repository.Repository) {
	t.Helper()
	repo := newTestRepository()
	return NewDiningTableService(repo, zap.NewNop()), repo
}

func TestTableCreateAndGet(t *testing.T) {
	svc, _ := setupTableService(t)

	created, err := svc.Create(context.Background(), &dto.CreateTableRequest{
		Capacity: 4,
		Label:    "靠窗 A1",
	})
	if err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}

	got, err := svc.GetByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("GetByID 应成功: %v", err)
	}
	if got.Capacity != 4 || got.Label != "靠窗 A1" {
		t.Errorf("餐桌信息不符: %+v", got)
	}
}

func TestTableGetNotFound(t *testing.T) {
	svc, _ := setupTableService(t)

	if _, err := svc.GetByID(context.Background(), "missing"); err != ErrTableNotFound {
		t.Errorf("期望 ErrTableNotFound，实际: %v", err)
	}
}

func TestTableDeleteBlockedByReservations(t *testing.T) {
	svc, repo := setupTableService(t)

	table := &model.DiningTable{Capacity: 2, Label: "B2"}
	if err := repo.DiningTable.Create(context.Background(), table); err != nil {
		t.Fatalf("预置餐桌失败: %v", err)
	}
	res := &model.Reservation{
		UserID:          "user-1",
		TableID:         table.TableID,
		ReservationTime: time.Now().Add(24 * time.Hour),
		Status:          model.ReservationConfirmed,
	}
	if err := repo.Reservation.Create(context.Background(), res); err != nil {
		t.Fatalf("预置预订失败: %v", err)
	}

	err := svc.Delete(context.Background(), table.TableID)
	var conflict *apperrors.DependencyConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("期望 DependencyConflictError，实际: %v", err)
	}
	blocking, ok := conflict.Blocking.([]dto.ReservationSummary)
	if !ok {
		t.Fatalf("Blocking 类型不符: %T", conflict.Blocking)
	}
	if len(blocking) != 1 || blocking[0].ID != res.ReservationID {
		t.Errorf("阻塞预订列表不符: %+v", blocking)
	}
	if blocking[0].Status != model.ReservationConfirmed {
		t.Errorf("期望携带预订状态，实际: %s", blocking[0].Status)
	}

	if _, err := svc.GetByID(context.Background(), table.TableID); err != nil {
		t.Errorf("被阻塞的餐桌不应被删除: %v", err)
	}
}

func TestTableDeleteWithoutReservations(t *testing.T) {
	svc, repo := setupTableService(t)

	table := &model.DiningTable{Capacity: 6, Label: "C3"}
	if err := repo.DiningTable.Create(context.Background(), table); err != nil {
		t.Fatalf("预置餐桌失败: %v", err)
	}

	if err := svc.Delete(context.Background(), table.TableID); err != nil {
		t.Fatalf("无关联预订时 Delete 应成功: %v", err)
	}
	if _, err := svc.GetByID(context.Background(), table.TableID); err != ErrTableNotFound {
		t.Errorf("删除后查询应返回 ErrTableNotFound，实际: %v", err)
	}
}

func TestTableUpdate(t *testing.T) {
	svc, repo := setupTableService(t)

	table := &model.DiningTable{Capacity: 2, Label: "D4"}
	if err := repo.DiningTable.Create(context.Background(), table); err != nil {
		t.Fatalf("预置餐桌失败: %v", err)
	}

	newCapacity := 8
	resp, err := svc.Update(context.Background(), table.TableID, &dto.UpdateTableRequest{Capacity: &newCapacity})
	if err != nil {
		t.Fatalf("Update 应成功: %v", err)
	}
	if resp.Capacity != 8 {
		t.Errorf("期望容量 8，实际: %d", resp.Capacity)
	}
	if resp.Label != "D4" {
		t.Errorf("未提供的字段不应改变，实际: %s", resp.Label)
	}
}
