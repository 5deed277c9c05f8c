package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/vitalsalud/agenda-api/internal/models"
	"github.com/vitalsalud/agenda-api/internal/service"
	appErrors "github.com/vitalsalud/agenda-api/pkg/errors"
	"github.com/vitalsalud/agenda-api/pkg/response"
)

// StaffScheduleHandler manages recurring shift template endpoints.
type StaffScheduleHandler struct {
	service *service.StaffScheduleService
}

// NewStaffScheduleHandler constructs handler.
func NewStaffScheduleHandler(svc *service.StaffScheduleService) *StaffScheduleHandler {
	return &StaffScheduleHandler{service: svc}
}

// List godoc
// @Summary List staff schedules
// @Tags StaffSchedules
// @Produce json
// @Param staffId query string false "Filter by staff member"
// @Param branchId query string false "Filter by branch"
// @Param active query bool false "Filter by active flag"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Envelope
// @Router /staff-schedules [get]
func (h *StaffScheduleHandler) List(c *gin.Context) {
	var filter models.StaffScheduleFilter
	filter.StaffID = c.Query("staffId")
	filter.BranchID = c.Query("branchId")
	if raw := c.Query("active"); raw != "" {
		active := raw == "true"
		filter.Active = &active
	}
	if page, err := strconv.Atoi(c.DefaultQuery("page", "1")); err == nil {
		filter.Page = page
	}
	if limit, err := strconv.Atoi(c.DefaultQuery("limit", "50")); err == nil {
		filter.PageSize = limit
	}

	schedules, pagination, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, schedules, pagination)
}

// Get godoc
// @Summary Get staff schedule
// @Tags StaffSchedules
// @Produce json
// @Param id path string true "Schedule ID"
// @Success 200 {object} response.Envelope
// @Router /staff-schedules/{id} [get]
func (h *StaffScheduleHandler) Get(c *gin.Context) {
	schedule, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, schedule, nil)
}

// Create godoc
// @Summary Create staff schedule
// @Tags StaffSchedules
// @Accept json
// @Produce json
// @Param payload body service.StaffScheduleRequest true "Schedule payload"
// @Success 201 {object} response.Envelope
// @Router /staff-schedules [post]
func (h *StaffScheduleHandler) Create(c *gin.Context) {
	var req service.StaffScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	schedule, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, schedule)
}

// Update godoc
// @Summary Update staff schedule
// @Tags StaffSchedules
// @Accept json
// @Produce json
// @Param id path string true "Schedule ID"
// @Param payload body service.StaffScheduleRequest true "Schedule payload"
// @Success 200 {object} response.Envelope
// @Router /staff-schedules/{id} [put]
func (h *StaffScheduleHandler) Update(c *gin.Context) {
	var req service.StaffScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	schedule, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, schedule, nil)
}

// Deactivate godoc
// @Summary Deactivate staff schedule
// @Tags StaffSchedules
// @Produce json
// @Param id path string true "Schedule ID"
// @Success 204
// @Router /staff-schedules/{id} [delete]
func (h *StaffScheduleHandler) Deactivate(c *gin.Context) {
	if err := h.service.Deactivate(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// Reactivate godoc
// @Summary Reactivate staff schedule
// @Tags StaffSchedules
// @Produce json
// @Param id path string true "Schedule ID"
// @Success 204
// @Router /staff-schedules/{id}/reactivate [patch]
func (h *StaffScheduleHandler) Reactivate(c *gin.Context) {
	if err := h.service.Reactivate(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
