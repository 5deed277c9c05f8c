package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vitalsalud/agenda-api/internal/calendar"
	"github.com/vitalsalud/agenda-api/internal/service"
	appErrors "github.com/vitalsalud/agenda-api/pkg/errors"
	"github.com/vitalsalud/agenda-api/pkg/response"
)

// CalendarHandler serves rendered calendar view models.
type CalendarHandler struct {
	service *service.CalendarService
}

// NewCalendarHandler constructs handler.
func NewCalendarHandler(svc *service.CalendarService) *CalendarHandler {
	return &CalendarHandler{service: svc}
}

// View godoc
// @Summary Render the calendar for a mode and cursor date
// @Tags Calendar
// @Produce json
// @Param mode query string false "View mode (dia, semana, mes)" default(mes)
// @Param cursor query string false "Cursor date (YYYY-MM-DD), defaults to today"
// @Param type query string true "Event type (TURNO, CITA, OTRO)"
// @Param staffId query string false "Filter by staff member"
// @Param branchId query string false "Filter by branch"
// @Param status query string false "Filter by status"
// @Success 200 {object} response.Envelope
// @Router /calendar [get]
func (h *CalendarHandler) View(c *gin.Context) {
	req := service.CalendarViewRequest{
		Mode:   calendar.Mode(c.DefaultQuery("mode", string(calendar.ModeMonth))),
		Filter: parseEventFilter(c),
	}
	if raw := c.Query("cursor"); raw != "" {
		cursor, err := time.Parse(calendar.DateLayout, raw)
		if err != nil {
			response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid cursor, expected YYYY-MM-DD"))
			return
		}
		req.Cursor = cursor
	}

	view, err := h.service.View(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, view, nil)
}
