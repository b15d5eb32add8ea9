package service

import (
	"context"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/mahou-anisphia/koala-restaurant-sub000/internal/dto"
	"github.com/mahou-anisphia/koala-restaurant-sub000/internal/model"
	"github.com/mahou-anisphia/koala-restaurant-sub000/internal/repository"
)

func setupDishService(t *testing.T) (DishService, *repository.Repository, *mockMediaStore) {
	t.Helper()
	repo := newTestRepository()
	media := newMockMediaStore()
	return NewDishService(repo, media, zap.NewNop()), repo, media
}

func TestDishCreate(t *testing.T) {
	svc, repo, _ := setupDishService(t)

	cat := &model.Category{Name: "川菜"}
	if err := repo.Category.Create(context.Background(), cat); err != nil {
		t.Fatalf("预置分类失败: %v", err)
	}

	resp, err := svc.Create(context.Background(), &dto.CreateDishRequest{
		Name:       "回锅肉",
		Price:      42,
		CategoryID: &cat.CategoryID,
	}, "user-1")
	if err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}
	if resp.CategoryID == nil || *resp.CategoryID != cat.CategoryID {
		t.Errorf("分类关联不符: %+v", resp)
	}
}

func TestDishCreateCategoryNotFound(t *testing.T) {
	svc, _, _ := setupDishService(t)

	missing := "missing"
	_, err := svc.Create(context.Background(), &dto.CreateDishRequest{
		Name:       "回锅肉",
		Price:      42,
		CategoryID: &missing,
	}, "user-1")
	if err != ErrCategoryNotFound {
		t.Errorf("期望 ErrCategoryNotFound，实际: %v", err)
	}
}

func TestDishUploadImage(t *testing.T) {
	svc, repo, media := setupDishService(t)

	dish := &model.Dish{Name: "回锅肉", Price: 42}
	if err := repo.Dish.Create(context.Background(), dish); err != nil {
		t.Fatalf("预置菜品失败: %v", err)
	}

	reader := strings.NewReader("fake-image-bytes")
	resp, err := svc.UploadImage(context.Background(), dish.DishID, reader, int64(reader.Len()), "image/jpeg", "huiguorou.jpg")
	if err != nil {
		t.Fatalf("UploadImage 应成功: %v", err)
	}
	if resp.ImageURL == "" {
		t.Fatal("期望返回图片 URL")
	}
	if _, ok := media.stored[resp.ImageURL]; !ok {
		t.Error("图片未写入存储")
	}
}

// 再次上传时旧图被替换并从存储中清理
func TestDishUploadImageReplacesOld(t *testing.T) {
	svc, repo, media := setupDishService(t)

	dish := &model.Dish{Name: "回锅肉", Price: 42}
	if err := repo.Dish.Create(context.Background(), dish); err != nil {
		t.Fatalf("预置菜品失败: %v", err)
	}

	first, err := svc.UploadImage(context.Background(), dish.DishID, strings.NewReader("v1"), 2, "image/jpeg", "a.jpg")
	if err != nil {
		t.Fatalf("首次上传应成功: %v", err)
	}
	second, err := svc.UploadImage(context.Background(), dish.DishID, strings.NewReader("v2"), 2, "image/jpeg", "b.jpg")
	if err != nil {
		t.Fatalf("二次上传应成功: %v", err)
	}
	if first.ImageURL == second.ImageURL {
		t.Error("二次上传应生成新 URL")
	}

	if _, ok := media.stored[first.ImageURL]; ok {
		t.Error("旧图应已从存储清理")
	}
	if len(media.removed) != 1 || media.removed[0] != first.ImageURL {
		t.Errorf("删除轨迹不符: %v", media.removed)
	}
}

// 删除菜品先删行再清理图片
func TestDishDeleteCleansImage(t *testing.T) {
	svc, repo, media := setupDishService(t)

	dish := &model.Dish{Name: "回锅肉", Price: 42}
	if err := repo.Dish.Create(context.Background(), dish); err != nil {
		t.Fatalf("预置菜品失败: %v", err)
	}
	resp, err := svc.UploadImage(context.Background(), dish.DishID, strings.NewReader("v1"), 2, "image/jpeg", "a.jpg")
	if err != nil {
		t.Fatalf("上传应成功: %v", err)
	}

	if err := svc.Delete(context.Background(), dish.DishID); err != nil {
		t.Fatalf("Delete 应成功: %v", err)
	}
	if _, err := svc.GetByID(context.Background(), dish.DishID); err != ErrDishNotFound {
		t.Errorf("删除后查询应返回 ErrDishNotFound，实际: %v", err)
	}
	if _, ok := media.stored[resp.ImageURL]; ok {
		t.Error("菜品图片应随行删除")
	}
}

// 清理图片失败不阻断删除
func TestDishDeleteIgnoresImageRemoveFailure(t *testing.T) {
	svc, repo, _ := setupDishService(t)

	dish := &model.Dish{Name: "回锅肉", Price: 42, ImageURL: "http://other-store/x.jpg"}
	if err := repo.Dish.Create(context.Background(), dish); err != nil {
		t.Fatalf("预置菜品失败: %v", err)
	}

	if err := svc.Delete(context.Background(), dish.DishID); err != nil {
		t.Fatalf("删图失败不应阻断 Delete: %v", err)
	}
}

func TestDishUpdate(t *testing.T) {
	svc, repo, _ := setupDishService(t)

	dish := &model.Dish{Name: "回锅肉", Price: 42}
	if err := repo.Dish.Create(context.Background(), dish); err != nil {
		t.Fatalf("预置菜品失败: %v", err)
	}

	newPrice := 45.5
	resp, err := svc.Update(context.Background(), dish.DishID, &dto.UpdateDishRequest{Price: &newPrice}, "user-2")
	if err != nil {
		t.Fatalf("Update 应成功: %v", err)
	}
	if resp.Price != 45.5 {
		t.Errorf("期望价格 45.5，实际: %v", resp.Price)
	}
	if resp.Name != "回锅肉" {
		t.Errorf("未提供的字段不应改变，实际: %s", resp.Name)
	}
}
