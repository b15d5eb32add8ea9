package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/mahou-anisphia/koala-restaurant-sub000/config"
	"github.com/mahou-anisphia/koala-restaurant-sub000/internal/dto"
	"github.com/mahou-anisphia/koala-restaurant-sub000/internal/model"
	"github.com/mahou-anisphia/koala-restaurant-sub000/internal/repository"
	apperrors "github.com/mahou-anisphia/koala-restaurant-sub000/pkg/errors"
)

func setupUserService(t *testing.T) (UserService, *repository.Repository) {
	t.Helper()
	repo := newTestRepository()
	return NewUserService(repo, zap.NewNop()), repo
}

func TestUserCreate(t *testing.T) {
	svc, _ := setupUserService(t)

	resp, err := svc.Create(context.Background(), &dto.CreateUserRequest{
		Name:     "张三",
		Role:     model.RoleWaiter,
		Login:    "zhangsan",
		Password: "password1",
	})
	if err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}
	if resp.ID == "" {
		t.Error("期望分配用户 ID")
	}
	if resp.Role != model.RoleWaiter {
		t.Errorf("期望角色 Waiter，实际: %s", resp.Role)
	}
}

func TestUserCreateDuplicateLogin(t *testing.T) {
	svc, _ := setupUserService(t)

	req := &dto.CreateUserRequest{
		Name:     "张三",
		Role:     model.RoleWaiter,
		Login:    "zhangsan",
		Password: "password1",
	}
	if _, err := svc.Create(context.Background(), req); err != nil {
		t.Fatalf("首次 Create 应成功: %v", err)
	}
	if _, err := svc.Create(context.Background(), req); err != ErrLoginTaken {
		t.Errorf("期望 ErrLoginTaken，实际: %v", err)
	}
}

func TestUserCreateInvalidRole(t *testing.T) {
	svc, _ := setupUserService(t)

	_, err := svc.Create(context.Background(), &dto.CreateUserRequest{
		Name:     "张三",
		Role:     "Manager",
		Login:    "zhangsan",
		Password: "password1",
	})
	var enumErr *apperrors.InvalidEnumError
	if !errors.As(err, &enumErr) {
		t.Fatalf("期望 InvalidEnumError，实际: %v", err)
	}
	if enumErr.Field != "role" || enumErr.Value != "Manager" {
		t.Errorf("枚举错误内容不符: %+v", enumErr)
	}
}

func TestUserAssignRole(t *testing.T) {
	svc, repo := setupUserService(t)
	user := seedUser(t, repo, "alice", "password1", model.RoleWaiter)

	if err := svc.AssignRole(context.Background(), user.UserID, &dto.AssignRoleRequest{Role: model.RoleChef}); err != nil {
		t.Fatalf("AssignRole 应成功: %v", err)
	}

	got, err := svc.GetByID(context.Background(), user.UserID)
	if err != nil {
		t.Fatalf("GetByID 应成功: %v", err)
	}
	if got.Role != model.RoleChef {
		t.Errorf("期望角色 Chef，实际: %s", got.Role)
	}
}

func TestUserAssignRoleInvalid(t *testing.T) {
	svc, repo := setupUserService(t)
	user := seedUser(t, repo, "alice", "password1", model.RoleWaiter)

	err := svc.AssignRole(context.Background(), user.UserID, &dto.AssignRoleRequest{Role: "Admin"})
	var enumErr *apperrors.InvalidEnumError
	if !errors.As(err, &enumErr) {
		t.Errorf("期望 InvalidEnumError，实际: %v", err)
	}
}

func TestUserDeleteSelfForbidden(t *testing.T) {
	svc, repo := setupUserService(t)
	owner := seedUser(t, repo, "owner", "password1", model.RoleOwner)

	if err := svc.Delete(context.Background(), owner.UserID, owner.UserID); err != ErrUserSelfDelete {
		t.Errorf("期望 ErrUserSelfDelete，实际: %v", err)
	}
}

func TestUserDelete(t *testing.T) {
	svc, repo := setupUserService(t)
	owner := seedUser(t, repo, "owner", "password1", model.RoleOwner)
	waiter := seedUser(t, repo, "waiter", "password1", model.RoleWaiter)

	if err := svc.Delete(context.Background(), waiter.UserID, owner.UserID); err != nil {
		t.Fatalf("Delete 应成功: %v", err)
	}
	if _, err := svc.GetByID(context.Background(), waiter.UserID); err != ErrUserNotFound {
		t.Errorf("删除后查询应返回 ErrUserNotFound，实际: %v", err)
	}
}

func TestUserDeleteNotFound(t *testing.T) {
	svc, repo := setupUserService(t)
	owner := seedUser(t, repo, "owner", "password1", model.RoleOwner)

	if err := svc.Delete(context.Background(), "missing", owner.UserID); err != ErrUserNotFound {
		t.Errorf("期望 ErrUserNotFound，实际: %v", err)
	}
}

func TestUserUpdate(t *testing.T) {
	svc, repo := setupUserService(t)
	user := seedUser(t, repo, "alice", "password1", model.RoleWaiter)

	newName := "Alice Liang"
	newContact := "alice@example.com"
	resp, err := svc.Update(context.Background(), user.UserID, &dto.UpdateUserRequest{
		Name:    &newName,
		Contact: &newContact,
	})
	if err != nil {
		t.Fatalf("Update 应成功: %v", err)
	}
	if resp.Name != newName || resp.Contact != newContact {
		t.Errorf("更新结果不符: %+v", resp)
	}
	// 未提供的字段保持原值
	if resp.Login != "alice" {
		t.Errorf("登录名不应改变，实际: %s", resp.Login)
	}
}

func TestEnsureBootstrapOwner(t *testing.T) {
	svc, repo := setupUserService(t)

	cfg := &config.AuthConfig{
		BootstrapLogin:    "owner",
		BootstrapPassword: "bootstrap-secret",
	}
	if err := svc.EnsureBootstrapOwner(context.Background(), cfg); err != nil {
		t.Fatalf("EnsureBootstrapOwner 应成功: %v", err)
	}

	owner, err := repo.User.GetByLogin(context.Background(), "owner")
	if err != nil {
		t.Fatalf("初始 Owner 应已创建: %v", err)
	}
	if owner.Role != model.RoleOwner {
		t.Errorf("期望角色 Owner，实际: %s", owner.Role)
	}

	// 再次调用不应重复创建
	if err := svc.EnsureBootstrapOwner(context.Background(), cfg); err != nil {
		t.Fatalf("二次调用应成功: %v", err)
	}
	n, _ := repo.User.Count(context.Background())
	if n != 1 {
		t.Errorf("期望仍只有 1 个用户，实际: %d", n)
	}
}

func TestEnsureBootstrapOwnerSkipsWhenUsersExist(t *testing.T) {
	svc, repo := setupUserService(t)
	seedUser(t, repo, "alice", "password1", model.RoleWaiter)

	cfg := &config.AuthConfig{
		BootstrapLogin:    "owner",
		BootstrapPassword: "bootstrap-secret",
	}
	if err := svc.EnsureBootstrapOwner(context.Background(), cfg); err != nil {
		t.Fatalf("EnsureBootstrapOwner 应成功: %v", err)
	}
	if _, err := repo.User.GetByLogin(context.Background(), "owner"); err == nil {
		t.Error("已有用户时不应创建初始 Owner")
	}
}
