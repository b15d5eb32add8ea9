package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/mahou-anisphia/koala-restaurant-sub000/internal/repository"
)

// ── 导出模块业务错误 ──

var (
	ErrExportNoReceipts   = errors.New("该时间段内无收据")
	ErrExportGenerateFail = errors.New("生成导出文件失败")
)

// 预订 ICS 事件的默认用餐时长
const reservationSlotDuration = 2 * time.Hour

// ExportService 导出业务接口
//
// 设计说明：
//   - 收据报表导出为 Excel (.xlsx)，按支付时间区间查询
//   - 预订导出为 iCalendar (.ics)，顾客可直接导入日历
//   - 导出以 bytes.Buffer 返回，由 Handler 层设置 HTTP 响应头后写入 Response
type ExportService interface {
	// ExportReceipts 导出收据报表为 Excel
	ExportReceipts(ctx context.Context, from, to time.Time) (*bytes.Buffer, string, error)
	// ExportReservationICS 导出单个预订为 iCalendar 事件
	ExportReservationICS(ctx context.Context, reservationID string) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService 创建 ExportService 实例
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

// ═══════════════════════════════════════════════════════════
// ExportReceipts — 导出收据报表为 Excel
// ═══════════════════════════════════════════════════════════
//
// 输出格式：
//   - Sheet "收据报表"
//   - 列：收据ID | 订单ID | 金额 | 支付方式 | 支付时间
//   - 末行：合计金额
//
// 返回值：buf（Excel 内容）, filename（建议文件名）, error

func (s *exportService) ExportReceipts(ctx context.Context, from, to time.Time) (*bytes.Buffer, string, error) {
	receipts, err := s.repo.Receipt.ListByPeriod(ctx, from, to)
	if err != nil {
		s.logger.Error("查询收据失败", zap.Error(err))
		return nil, "", err
	}
	if len(receipts) == 0 {
		return nil, "", ErrExportNoReceipts
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "收据报表"
	idx, _ := f.NewSheet(sheetName)
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	// 列宽
	f.SetColWidth(sheetName, "A", "B", 38)
	f.SetColWidth(sheetName, "C", "C", 12)
	f.SetColWidth(sheetName, "D", "D", 14)
	f.SetColWidth(sheetName, "E", "E", 22)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	// 标题行
	f.SetCellValue(sheetName, "A1", fmt.Sprintf("收据报表 %s ~ %s",
		from.Format("2006-01-02"), to.Format("2006-01-02")))
	f.MergeCell(sheetName, "A1", "E1")
	f.SetCellStyle(sheetName, "A1", "A1", headerStyle)

	// 表头
	headers := []string{"收据ID", "订单ID", "金额", "支付方式", "支付时间"}
	for i, h := range headers {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetCellValue(sheetName, cell(col, 2), h)
	}

	// 数据行
	row := 3
	var total float64
	for i := range receipts {
		r := &receipts[i]
		f.SetCellValue(sheetName, cell("A", row), r.ReceiptID)
		f.SetCellValue(sheetName, cell("B", row), r.OrderID)
		f.SetCellValue(sheetName, cell("C", row), r.Amount)
		f.SetCellValue(sheetName, cell("D", row), r.PaymentMethod)
		f.SetCellValue(sheetName, cell("E", row), r.PaymentTime.Format("2006-01-02 15:04:05"))
		total += r.Amount
		row++
	}

	// 合计行
	f.SetCellValue(sheetName, cell("B", row), "合计")
	f.SetCellValue(sheetName, cell("C", row), total)

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("写入 Excel 失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("收据报表_%s_%s.xlsx",
		from.Format("20060102"), to.Format("20060102"))
	return buf, filename, nil
}

// ═══════════════════════════════════════════════════════════
// ExportReservationICS — 导出预订为 iCalendar
// ═══════════════════════════════════════════════════════════

func (s *exportService) ExportReservationICS(ctx context.Context, reservationID string) (*bytes.Buffer, string, error) {
	res, err := s.repo.Reservation.GetByID(ctx, reservationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrReservationNotFound
		}
		s.logger.Error("查询预订失败", zap.String("id", reservationID), zap.Error(err))
		return nil, "", err
	}

	summary := "餐厅预订"
	if table, err := s.repo.DiningTable.GetByID(ctx, res.TableID); err == nil && table.Label != "" {
		summary = fmt.Sprintf("餐厅预订 — %s", table.Label)
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//koala-restaurant//reservation//ZH")

	event := cal.AddEvent(res.ReservationID)
	event.SetCreatedTime(res.CreatedAt)
	event.SetDtStampTime(time.Now())
	event.SetStartAt(res.ReservationTime)
	event.SetEndAt(res.ReservationTime.Add(reservationSlotDuration))
	event.SetSummary(summary)
	event.SetStatus(ics.ObjectStatus(icsStatus(res.Status)))
	if res.SpecialRequests != "" {
		event.SetDescription(res.SpecialRequests)
	}

	buf := bytes.NewBufferString(cal.Serialize())
	filename := fmt.Sprintf("reservation_%s.ics", res.ReservationID)
	return buf, filename, nil
}

// ── 辅助函数 ──

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}

// icsStatus 预订状态到 iCalendar STATUS 的映射
func icsStatus(status string) string {
	switch status {
	case "Confirmed":
		return "CONFIRMED"
	case "Cancelled":
		return "CANCELLED"
	default:
		return "TENTATIVE"
	}
}
