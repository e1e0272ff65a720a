package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/soulsyync/soulsyync-api/internal/httpresp"
	"github.com/soulsyync/soulsyync-api/internal/middleware"
	ucAppointment "github.com/soulsyync/soulsyync-api/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	create *ucAppointment.CreateAppointment
	list   *ucAppointment.ListAppointments
	get    *ucAppointment.GetAppointment
	update *ucAppointment.UpdateAppointment
	delete *ucAppointment.DeleteAppointment
}

func NewAppointmentHandler(
	create *ucAppointment.CreateAppointment,
	list *ucAppointment.ListAppointments,
	get *ucAppointment.GetAppointment,
	update *ucAppointment.UpdateAppointment,
	del *ucAppointment.DeleteAppointment,
) *AppointmentHandler {
	return &AppointmentHandler{
		create: create,
		list:   list,
		get:    get,
		update: update,
		delete: del,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	ServiceID uint   `json:"serviceId" binding:"required"`
	Date      string `json:"date" binding:"required"`
	Time      string `json:"time" binding:"required"`
	Notes     string `json:"notes"`
}

type UpdateAppointmentRequest struct {
	ServiceID *uint   `json:"serviceId"`
	Date      *string `json:"date"`
	Time      *string `json:"time"`
	Notes     *string `json:"notes"`
	Status    *string `json:"status"`
	Summary   *string `json:"summary"`
}

// ======================================================
// HANDLERS
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpresp.Fail(c, 400, err.Error())
		return
	}

	ap, err := h.create.Execute(c.Request.Context(), middleware.Principal(c),
		ucAppointment.CreateAppointmentInput{
			ServiceID: req.ServiceID,
			Date:      req.Date,
			Time:      req.Time,
			Notes:     req.Notes,
		})
	if err != nil {
		httpresp.Error(c, err)
		return
	}

	httpresp.Created(c, "Appointment created successfully", ap)
}

func (h *AppointmentHandler) List(c *gin.Context) {
	aps, err := h.list.Execute(c.Request.Context(), middleware.Principal(c))
	if err != nil {
		httpresp.Error(c, err)
		return
	}

	httpresp.OK(c, aps)
}

func (h *AppointmentHandler) Get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		httpresp.Fail(c, 400, "Invalid appointment id")
		return
	}

	ap, err := h.get.Execute(c.Request.Context(), middleware.Principal(c), id)
	if err != nil {
		httpresp.Error(c, err)
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		httpresp.Fail(c, 400, "Invalid appointment id")
		return
	}

	var req UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpresp.Fail(c, 400, err.Error())
		return
	}

	ap, err := h.update.Execute(c.Request.Context(), middleware.Principal(c), id,
		ucAppointment.Patch{
			ServiceID: req.ServiceID,
			Date:      req.Date,
			Time:      req.Time,
			Notes:     req.Notes,
			Status:    req.Status,
			Summary:   req.Summary,
		})
	if err != nil {
		httpresp.Error(c, err)
		return
	}

	httpresp.OKMessage(c, "Appointment updated successfully", ap)
}

func (h *AppointmentHandler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		httpresp.Fail(c, 400, "Invalid appointment id")
		return
	}

	if err := h.delete.Execute(c.Request.Context(), middleware.Principal(c), id); err != nil {
		httpresp.Error(c, err)
		return
	}

	httpresp.Message(c, "Appointment deleted successfully")
}

// ======================================================
// HELPERS
// ======================================================

func parseID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
