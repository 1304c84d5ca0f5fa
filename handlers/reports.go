package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/profileranker/backend/agent"
	"github.com/profileranker/backend/models"
	"github.com/profileranker/backend/storage"
)

// ReportGenerator produces per-document analysis reports on the agent backend
type ReportGenerator interface {
	GenerateJDReport(ctx context.Context, req agent.JDReportRequest) (*agent.ReportResponse, error)
	GenerateProfileReport(ctx context.Context, req agent.ProfileReportRequest) (*agent.ReportResponse, error)
}

// ReportHandler forwards stored document text to the agent's report endpoints
type ReportHandler struct {
	store PDFStore
	agent ReportGenerator
}

// NewReportHandler creates a new report handler
func NewReportHandler(store PDFStore, generator ReportGenerator) *ReportHandler {
	return &ReportHandler{store: store, agent: generator}
}

// JobDescriptionReport generates an analysis report for one JD
// @Summary Generate JD report
// @Description Sends the stored JD text to the agent and returns its report unchanged
// @Tags Reports
// @Produce json
// @Security BearerAuth
// @Param id path string true "Job description id"
// @Success 200 {object} agent.ReportResponse
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 403 {object} models.ErrorResponse "Forbidden"
// @Failure 404 {object} models.ErrorResponse "JD not found"
// @Failure 502 {object} models.ErrorResponse "Report generation failed"
// @Router /reports/job-description/{id} [post]
func (h *ReportHandler) JobDescriptionReport(c *gin.Context) {
	ctx := c.Request.Context()

	jd, err := h.store.GetJobDescription(ctx, c.Param("id"))
	if err != nil {
		h.lookupFailed(c, "JD not found", err)
		return
	}

	resp, err := h.agent.GenerateJDReport(ctx, agent.JDReportRequest{
		JDContent: jd.Content,
		JDTitle:   jd.Title,
		ReportID:  jd.Title,
	})
	h.respond(c, jd.ID.Hex(), resp, err)
}

// ConsultantProfileReport generates an analysis report for one profile
// @Summary Generate profile report
// @Description Sends the stored resume text to the agent and returns its report unchanged
// @Tags Reports
// @Produce json
// @Security BearerAuth
// @Param id path string true "Consultant profile id"
// @Success 200 {object} agent.ReportResponse
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 403 {object} models.ErrorResponse "Forbidden"
// @Failure 404 {object} models.ErrorResponse "Profile not found"
// @Failure 502 {object} models.ErrorResponse "Report generation failed"
// @Router /reports/consultant-profile/{id} [post]
func (h *ReportHandler) ConsultantProfileReport(c *gin.Context) {
	ctx := c.Request.Context()

	profile, err := h.store.GetConsultantProfile(ctx, c.Param("id"))
	if err != nil {
		h.lookupFailed(c, "Profile not found", err)
		return
	}

	resp, err := h.agent.GenerateProfileReport(ctx, agent.ProfileReportRequest{
		ProfileContent: profile.ResumeText,
		ProfileTitle:   profile.Name,
		ReportID:       profile.Name,
	})
	h.respond(c, profile.ID.Hex(), resp, err)
}

func (h *ReportHandler) lookupFailed(c *gin.Context, notFoundMsg string, err error) {
	if errors.Is(err, storage.ErrNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error: notFoundMsg,
			Code:  http.StatusNotFound,
		})
		return
	}
	log.Printf("[ReportHandler] Lookup failed: %v", err)
	c.JSON(http.StatusInternalServerError, models.ErrorResponse{
		Error: "Internal server error",
		Code:  http.StatusInternalServerError,
	})
}

func (h *ReportHandler) respond(c *gin.Context, id string, resp *agent.ReportResponse, err error) {
	if err != nil {
		log.Printf("[ReportHandler] Report for %s failed: %v", id, err)
		c.JSON(http.StatusBadGateway, models.ErrorResponse{
			Error:   "Report generation failed",
			Code:    http.StatusBadGateway,
			Details: err.Error(),
		})
		return
	}
	log.Printf("[ReportHandler] Report generated for %s", id)
	c.JSON(http.StatusOK, resp)
}
