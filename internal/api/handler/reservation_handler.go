package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mahou-anisphia/koala-restaurant-sub000/internal/dto"
	"github.com/mahou-anisphia/koala-restaurant-sub000/internal/model"
	"github.com/mahou-anisphia/koala-restaurant-sub000/internal/service"
	apperrors "github.com/mahou-anisphia/koala-restaurant-sub000/pkg/errors"
	"github.com/mahou-anisphia/koala-restaurant-sub000/pkg/response"
)

// ReservationHandler 预订模块 HTTP 处理器
type ReservationHandler struct {
	reservationSvc service.ReservationService
	exportSvc      service.ExportService
}

// NewReservationHandler 创建 ReservationHandler
func NewReservationHandler(reservationSvc service.ReservationService, exportSvc service.ExportService) *ReservationHandler {
	return &ReservationHandler{reservationSvc: reservationSvc, exportSvc: exportSvc}
}

// CreateReservation 创建预订（任何已认证用户）
// POST /api/v1/reservation
func (h *ReservationHandler) CreateReservation(c *gin.Context) {
	var req dto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}

	caller, ok := MustGetUser(c)
	if !ok {
		return
	}

	res, err := h.reservationSvc.Create(c.Request.Context(), &req, caller.UserID)
	if err != nil {
		h.handleReservationError(c, err)
		return
	}

	response.Created(c, res)
}

// ListReservations 预订列表
// GET /api/v1/reservation
// Owner/Waiter 看全量，其余角色只看自己名下的
func (h *ReservationHandler) ListReservations(c *gin.Context) {
	caller, ok := MustGetUser(c)
	if !ok {
		return
	}

	var (
		list []dto.ReservationResponse
		err  error
	)
	switch caller.Role {
	case model.RoleOwner, model.RoleWaiter:
		list, err = h.reservationSvc.List(c.Request.Context())
	default:
		list, err = h.reservationSvc.ListMine(c.Request.Context(), caller.UserID)
	}
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": list})
}

// GetReservation 预订详情
// GET /api/v1/reservation/:id
func (h *ReservationHandler) GetReservation(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "预订ID不能为空")
		return
	}

	res, err := h.reservationSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleReservationError(c, err)
		return
	}

	response.OK(c, res)
}

// UpdateReservation 更新预订
// PUT /api/v1/reservation/:id
func (h *ReservationHandler) UpdateReservation(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "预订ID不能为空")
		return
	}

	var req dto.UpdateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}

	res, err := h.reservationSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleReservationError(c, err)
		return
	}

	response.OK(c, res)
}

// DeleteReservation 删除预订
// DELETE /api/v1/reservation/:id
func (h *ReservationHandler) DeleteReservation(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "预订ID不能为空")
		return
	}

	if err := h.reservationSvc.Delete(c.Request.Context(), id); err != nil {
		h.handleReservationError(c, err)
		return
	}

	response.OK(c, nil)
}

// ExportICS 导出预订为 iCalendar 文件
// GET /api/v1/reservation/:id/ics
func (h *ReservationHandler) ExportICS(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "预订ID不能为空")
		return
	}

	buf, filename, err := h.exportSvc.ExportReservationICS(c.Request.Context(), id)
	if err != nil {
		h.handleReservationError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", buf.Bytes())
}

// handleReservationError 统一处理预订模块业务错误
func (h *ReservationHandler) handleReservationError(c *gin.Context, err error) {
	var enumErr *apperrors.InvalidEnumError
	switch {
	case errors.As(err, &enumErr):
		response.ErrorWithDetails(c, 400, 10001, "参数校验失败", enumErr.Error())
	case errors.Is(err, service.ErrReservationNotFound):
		response.NotFound(c, 18001, "预订不存在")
	case errors.Is(err, service.ErrInvalidTime):
		response.BadRequest(c, 18002, "时间格式无效，需要 RFC3339")
	case errors.Is(err, service.ErrTableNotFound):
		response.BadRequest(c, 17001, "餐桌不存在")
	default:
		response.InternalError(c)
	}
}
