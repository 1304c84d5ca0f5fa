package handlers

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/profileranker/backend/models"
)

// StatusReader builds the AR dashboard and match detail views
type StatusReader interface {
	ARStatus(ctx context.Context, createdBy string) ([]models.ARStatusRow, error)
	MatchDetail(ctx context.Context, jobID string) (*models.MatchDetail, error)
}

// StatusHandler serves comparison progress and results
type StatusHandler struct {
	status StatusReader
}

// NewStatusHandler creates a new status handler
func NewStatusHandler(status StatusReader) *StatusHandler {
	return &StatusHandler{status: status}
}

// ARStatus lists recent JDs with their latest comparison outcome
// @Summary AR dashboard status
// @Description Most recent JDs, newest first, each with progress and top-3 matches. Top-3 entries flagged placeholder are display filler, not matches.
// @Tags Status
// @Produce json
// @Security BearerAuth
// @Param createdBy query string false "Only JDs uploaded by this user id"
// @Success 200 {array} models.ARStatusRow
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 403 {object} models.ErrorResponse "Forbidden"
// @Failure 500 {object} models.ErrorResponse "Failed to load status"
// @Router /ar-status [get]
func (h *StatusHandler) ARStatus(c *gin.Context) {
	rows, err := h.status.ARStatus(c.Request.Context(), c.Query("createdBy"))
	if err != nil {
		log.Printf("[StatusHandler] AR status failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Failed to load status",
			Code:  http.StatusInternalServerError,
		})
		return
	}
	c.JSON(http.StatusOK, rows)
}

// Matches returns the full scored table for one JD
// @Summary Match detail
// @Description All scored profiles for a JD, highest score first. An unknown JD is reported with found=false.
// @Tags Status
// @Produce json
// @Security BearerAuth
// @Param id path string true "Job description id"
// @Success 200 {object} models.MatchDetail
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 403 {object} models.ErrorResponse "Forbidden"
// @Failure 500 {object} models.ErrorResponse "Failed to load matches"
// @Router /matches/{id} [get]
func (h *StatusHandler) Matches(c *gin.Context) {
	detail, err := h.status.MatchDetail(c.Request.Context(), c.Param("id"))
	if err != nil {
		log.Printf("[StatusHandler] Match detail for %s failed: %v", c.Param("id"), err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Failed to load matches",
			Code:  http.StatusInternalServerError,
		})
		return
	}
	c.JSON(http.StatusOK, detail)
}
