package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vitalsalud/agenda-api/internal/service"
	"github.com/vitalsalud/agenda-api/pkg/response"
)

// BranchHandler serves practice locations.
type BranchHandler struct {
	service *service.BranchService
}

// NewBranchHandler constructs handler.
func NewBranchHandler(svc *service.BranchService) *BranchHandler {
	return &BranchHandler{service: svc}
}

// List godoc
// @Summary List branches
// @Tags Branches
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /branches [get]
func (h *BranchHandler) List(c *gin.Context) {
	branches, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, branches, nil)
}

// Get godoc
// @Summary Get branch
// @Tags Branches
// @Produce json
// @Param id path string true "Branch ID"
// @Success 200 {object} response.Envelope
// @Router /branches/{id} [get]
func (h *BranchHandler) Get(c *gin.Context) {
	branch, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, branch, nil)
}
