package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/mahou-anisphia/koala-restaurant-sub000/internal/model"
	"github.com/mahou-anisphia/koala-restaurant-sub000/internal/repository"
)

func setupExportService(t *testing.T) (ExportService, *repository.Repository) {
	t.Helper()
	repo := newTestRepository()
	return NewExportService(repo, zap.NewNop()), repo
}

func TestExportReceiptsEmpty(t *testing.T) {
	svc, _ := setupExportService(t)

	from := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	if _, _, err := svc.ExportReceipts(context.Background(), from, to); err != ErrExportNoReceipts {
		t.Errorf("期望 ErrExportNoReceipts，实际: %v", err)
	}
}

func TestExportReceipts(t *testing.T) {
	svc, repo := setupExportService(t)

	inRange := &model.Receipt{
		OrderID:       "order-001",
		Amount:        88,
		PaymentMethod: "Cash",
		PaymentTime:   time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC),
	}
	outOfRange := &model.Receipt{
		OrderID:       "order-002",
		Amount:        66,
		PaymentMethod: "Card",
		PaymentTime:   time.Date(2026, 7, 1, 12, 0, 0, 0, time.UTC),
	}
	for _, r := range []*model.Receipt{inRange, outOfRange} {
		if err := repo.Receipt.Create(context.Background(), r); err != nil {
			t.Fatalf("预置收据失败: %v", err)
		}
	}

	from := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	buf, filename, err := svc.ExportReceipts(context.Background(), from, to)
	if err != nil {
		t.Fatalf("ExportReceipts 应成功: %v", err)
	}
	if buf.Len() == 0 {
		t.Error("导出内容不应为空")
	}
	if filename != "收据报表_20260801_20260831.xlsx" {
		t.Errorf("文件名不符: %s", filename)
	}
	// xlsx 本质是 zip，以 PK 开头
	if head := buf.Bytes()[:2]; string(head) != "PK" {
		t.Errorf("期望 xlsx(zip) 文件头，实际: %q", head)
	}
}

func TestExportReservationICS(t *testing.T) {
	svc, repo := setupExportService(t)

	table := &model.DiningTable{Capacity: 4, Label: "靠窗 A1"}
	if err := repo.DiningTable.Create(context.Background(), table); err != nil {
		t.Fatalf("预置餐桌失败: %v", err)
	}
	res := &model.Reservation{
		UserID:          "user-1",
		TableID:         table.TableID,
		ReservationTime: time.Date(2026, 9, 15, 18, 30, 0, 0, time.UTC),
		SpecialRequests: "需要儿童座椅",
		Status:          model.ReservationConfirmed,
	}
	if err := repo.Reservation.Create(context.Background(), res); err != nil {
		t.Fatalf("预置预订失败: %v", err)
	}

	buf, filename, err := svc.ExportReservationICS(context.Background(), res.ReservationID)
	if err != nil {
		t.Fatalf("ExportReservationICS 应成功: %v", err)
	}
	if filename != "reservation_"+res.ReservationID+".ics" {
		t.Errorf("文件名不符: %s", filename)
	}

	body := buf.String()
	for _, want := range []string{
		"BEGIN:VCALENDAR",
		"BEGIN:VEVENT",
		"UID:" + res.ReservationID,
		"STATUS:CONFIRMED",
		"END:VEVENT",
		"END:VCALENDAR",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("ICS 内容缺少 %q", want)
		}
	}
}

func TestExportReservationICSNotFound(t *testing.T) {
	svc, _ := setupExportService(t)

	if _, _, err := svc.ExportReservationICS(context.Background(), "missing"); err != ErrReservationNotFound {
		t.Errorf("期望 ErrReservationNotFound，实际: %v", err)
	}
}

// 取消状态映射为 CANCELLED，其余非确认状态一律 TENTATIVE
func TestExportICSStatusMapping(t *testing.T) {
	cases := map[string]string{
		model.ReservationConfirmed: "CONFIRMED",
		model.ReservationCancelled: "CANCELLED",
		model.ReservationPending:   "TENTATIVE",
		"anything-else":            "TENTATIVE",
	}
	for in, want := range cases {
		if got := icsStatus(in); got != want {
			t.Errorf("icsStatus(%q) = %q，期望 %q", in, got, want)
		}
	}
}
