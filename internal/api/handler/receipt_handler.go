package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mahou-anisphia/koala-restaurant-sub000/internal/dto"
	"github.com/mahou-anisphia/koala-restaurant-sub000/internal/service"
	"github.com/mahou-anisphia/koala-restaurant-sub000/pkg/response"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ReceiptHandler 收据模块 HTTP 处理器
type ReceiptHandler struct {
	receiptSvc service.ReceiptService
	exportSvc  service.ExportService
}

// NewReceiptHandler 创建 ReceiptHandler
func NewReceiptHandler(receiptSvc service.ReceiptService, exportSvc service.ExportService) *ReceiptHandler {
	return &ReceiptHandler{receiptSvc: receiptSvc, exportSvc: exportSvc}
}

// CreateReceipt 创建收据
// POST /api/v1/receipts
func (h *ReceiptHandler) CreateReceipt(c *gin.Context) {
	var req dto.CreateReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}

	receipt, err := h.receiptSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleReceiptError(c, err)
		return
	}

	response.Created(c, receipt)
}

// ListReceipts 收据列表
// GET /api/v1/receipts
func (h *ReceiptHandler) ListReceipts(c *gin.Context) {
	receipts, err := h.receiptSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": receipts})
}

// GetReceipt 收据详情
// GET /api/v1/receipts/:id
func (h *ReceiptHandler) GetReceipt(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "收据ID不能为空")
		return
	}

	receipt, err := h.receiptSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleReceiptError(c, err)
		return
	}

	response.OK(c, receipt)
}

// ExportReceipts 导出收据报表（Excel）
// GET /api/v1/receipts/export?from=2026-01-01&to=2026-02-01
// to 为开区间上界；缺省时 from 取 30 天前、to 取现在
func (h *ReceiptHandler) ExportReceipts(c *gin.Context) {
	now := time.Now()
	from := now.AddDate(0, 0, -30)
	to := now

	if v := c.Query("from"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			response.BadRequest(c, 10001, "from 日期格式无效，需要 YYYY-MM-DD")
			return
		}
		from = t
	}
	if v := c.Query("to"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			response.BadRequest(c, 10001, "to 日期格式无效，需要 YYYY-MM-DD")
			return
		}
		to = t
	}
	if !to.After(from) {
		response.BadRequest(c, 10001, "to 必须晚于 from")
		return
	}

	buf, filename, err := h.exportSvc.ExportReceipts(c.Request.Context(), from, to)
	if err != nil {
		if errors.Is(err, service.ErrExportNoReceipts) {
			response.NotFound(c, 20002, "该时间段内无收据")
			return
		}
		response.InternalError(c)
		return
	}

	// 文件名含中文，按 RFC 5987 编码
	c.Header("Content-Disposition",
		fmt.Sprintf(`attachment; filename*=UTF-8''%s`, url.PathEscape(filename)))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

// handleReceiptError 统一处理收据模块业务错误
func (h *ReceiptHandler) handleReceiptError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrReceiptNotFound):
		response.NotFound(c, 20001, "收据不存在")
	case errors.Is(err, service.ErrOrderNotFound):
		response.BadRequest(c, 19001, "订单不存在")
	default:
		response.InternalError(c)
	}
}
