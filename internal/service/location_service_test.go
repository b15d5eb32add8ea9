package service

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"github.com/mahou-anisphia/koala-restaurant-sub000/internal/dto"
	"github.com/mahou-anisphia/koala-restaurant-sub000/internal/repository"
)

func setupLocationService(t *testing.T) (LocationService, *repository.Repository) {
	t.Helper()
	repo := newTestRepository()
	return NewLocationService(repo, zap.NewNop()), repo
}

func TestLocationCreateAndGet(t *testing.T) {
	svc, _ := setupLocationService(t)

	created, err := svc.Create(context.Background(), &dto.CreateLocationRequest{
		Address: "人民路 88 号",
		City:    "成都",
		Country: "中国",
	})
	if err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}

	got, err := svc.GetByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("GetByID 应成功: %v", err)
	}
	if got.Address != "人民路 88 号" || got.City != "成都" {
		t.Errorf("地点信息不符: %+v", got)
	}
}

func TestLocationGetNotFound(t *testing.T) {
	svc, _ := setupLocationService(t)

	if _, err := svc.GetByID(context.Background(), "missing"); err != ErrLocationNotFound {
		t.Errorf("期望 ErrLocationNotFound，实际: %v", err)
	}
}

func TestLocationUpdate(t *testing.T) {
	svc, _ := setupLocationService(t)

	created, err := svc.Create(context.Background(), &dto.CreateLocationRequest{Address: "人民路 88 号"})
	if err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}

	newCity := "重庆"
	resp, err := svc.Update(context.Background(), created.ID, &dto.UpdateLocationRequest{City: &newCity})
	if err != nil {
		t.Fatalf("Update 应成功: %v", err)
	}
	if resp.City != "重庆" {
		t.Errorf("期望城市更新为 重庆，实际: %s", resp.City)
	}
	if resp.Address != "人民路 88 号" {
		t.Errorf("未提供的字段不应改变，实际: %s", resp.Address)
	}
}

func TestLocationDelete(t *testing.T) {
	svc, _ := setupLocationService(t)

	created, err := svc.Create(context.Background(), &dto.CreateLocationRequest{Address: "人民路 88 号"})
	if err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}

	if err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("Delete 应成功: %v", err)
	}
	if _, err := svc.GetByID(context.Background(), created.ID); err != ErrLocationNotFound {
		t.Errorf("删除后查询应返回 ErrLocationNotFound，实际: %v", err)
	}
	if err := svc.Delete(context.Background(), created.ID); err != ErrLocationNotFound {
		t.Errorf("二次删除应返回 ErrLocationNotFound，实际: %v", err)
	}
}

func TestLocationList(t *testing.T) {
	svc, _ := setupLocationService(t)

	for _, addr := range []string{"人民路 88 号", "解放碑 1 号"} {
		if _, err := svc.Create(context.Background(), &dto.CreateLocationRequest{Address: addr}); err != nil {
			t.Fatalf("Create 应成功: %v", err)
		}
	}

	list, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List 应成功: %v", err)
	}
	if len(list) != 2 {
		t.Errorf("期望 2 个地点，实际: %d", len(list))
	}
}
