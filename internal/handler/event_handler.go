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

// EventHandler manages calendar event endpoints.
type EventHandler struct {
	service *service.EventService
}

// NewEventHandler constructs handler.
func NewEventHandler(svc *service.EventService) *EventHandler {
	return &EventHandler{service: svc}
}

// List godoc
// @Summary List events by filter
// @Tags Events
// @Produce json
// @Param type query string true "Event type (TURNO, CITA, OTRO)"
// @Param staffId query string false "Filter by staff member"
// @Param branchId query string false "Filter by branch"
// @Param staffScheduleId query string false "Filter by schedule template"
// @Param status query string false "Filter by status"
// @Param startDate query string false "Range start (YYYY-MM-DD)"
// @Param endDate query string false "Range end (YYYY-MM-DD)"
// @Param disablePagination query bool false "Return the full result set"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Envelope
// @Router /events/filter [get]
func (h *EventHandler) List(c *gin.Context) {
	filter := parseEventFilter(c)
	events, pagination, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, events, pagination)
}

// Get godoc
// @Summary Get event
// @Tags Events
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} response.Envelope
// @Router /events/{id} [get]
func (h *EventHandler) Get(c *gin.Context) {
	event, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, event, nil)
}

// Create godoc
// @Summary Create event
// @Tags Events
// @Accept json
// @Produce json
// @Param payload body service.CreateEventRequest true "Event payload"
// @Success 201 {object} response.Envelope
// @Router /events [post]
func (h *EventHandler) Create(c *gin.Context) {
	var req service.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	event, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, event)
}

// Update godoc
// @Summary Update event
// @Tags Events
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param payload body service.UpdateEventRequest true "Partial event payload"
// @Success 200 {object} response.Envelope
// @Router /events/{id} [patch]
func (h *EventHandler) Update(c *gin.Context) {
	var req service.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	event, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, event, nil)
}

type bulkIDsRequest struct {
	IDs []string `json:"ids"`
}

// BulkDeactivate godoc
// @Summary Deactivate events in bulk
// @Tags Events
// @Accept json
// @Produce json
// @Param payload body bulkIDsRequest true "Event IDs"
// @Success 200 {object} response.Envelope
// @Router /events/remove/all [delete]
func (h *EventHandler) BulkDeactivate(c *gin.Context) {
	var req bulkIDsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	affected, err := h.service.BulkDeactivate(c.Request.Context(), req.IDs)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"affected": affected}, nil)
}

// BulkReactivate godoc
// @Summary Reactivate events in bulk
// @Tags Events
// @Accept json
// @Produce json
// @Param payload body bulkIDsRequest true "Event IDs"
// @Success 200 {object} response.Envelope
// @Router /events/reactivate/all [patch]
func (h *EventHandler) BulkReactivate(c *gin.Context) {
	var req bulkIDsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	affected, err := h.service.BulkReactivate(c.Request.Context(), req.IDs)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"affected": affected}, nil)
}

// Generate godoc
// @Summary Queue recurrence expansion for an event's schedule
// @Tags Events
// @Produce json
// @Param id path string true "Base event ID"
// @Success 202 {object} response.Envelope
// @Router /events/{id}/generate-events [post]
func (h *EventHandler) Generate(c *gin.Context) {
	if err := h.service.GenerateFromEvent(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusAccepted, gin.H{"queued": true}, nil)
}

// DeleteBySchedule godoc
// @Summary Delete every event generated from a schedule
// @Tags Events
// @Produce json
// @Param scheduleId path string true "Schedule ID"
// @Success 200 {object} response.Envelope
// @Router /events/by-schedule/{scheduleId} [delete]
func (h *EventHandler) DeleteBySchedule(c *gin.Context) {
	affected, err := h.service.DeleteBySchedule(c.Request.Context(), c.Param("scheduleId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"affected": affected}, nil)
}

func parseEventFilter(c *gin.Context) models.EventFilter {
	var filter models.EventFilter
	filter.Type = models.EventType(c.Query("type"))
	filter.StaffID = c.Query("staffId")
	filter.BranchID = c.Query("branchId")
	filter.StaffScheduleID = c.Query("staffScheduleId")
	filter.Status = models.EventStatus(c.Query("status"))
	filter.StartDate = c.Query("startDate")
	filter.EndDate = c.Query("endDate")
	filter.DisablePagination = c.Query("disablePagination") == "true"
	if page, err := strconv.Atoi(c.DefaultQuery("page", "1")); err == nil {
		filter.Page = page
	}
	if limit, err := strconv.Atoi(c.DefaultQuery("limit", "100")); err == nil {
		filter.PageSize = limit
	}
	return filter
}
