package handlers

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log"
	"math"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/profileranker/backend/agent"
	"github.com/profileranker/backend/auth"
	"github.com/profileranker/backend/models"
	"github.com/profileranker/backend/storage"
	"github.com/profileranker/backend/utils"
)

// CompareStore loads the documents sent to the agent
type CompareStore interface {
	GetJobDescription(ctx context.Context, id string) (*models.JobDescription, error)
	FindProfilesForComparison(ctx context.Context, ids []string) ([]models.ConsultantProfile, error)
}

// Comparer runs a comparison on the agent backend
type Comparer interface {
	RunAgent(ctx context.Context, req agent.RunAgentRequest) (*agent.RunAgentResponse, error)
	UploadProcessor
}

// CompareHandler triggers agent comparisons
type CompareHandler struct {
	store    CompareStore
	agent    Comparer
	maxBytes int64
}

// NewCompareHandler creates a new compare handler
func NewCompareHandler(store CompareStore, comparer Comparer, maxBytes int64) *CompareHandler {
	return &CompareHandler{store: store, agent: comparer, maxBytes: maxBytes}
}

// Compare sends a JD and the selected profiles to the agent. The agent stores
// the resulting session, which then shows up in the AR status.
// @Summary Compare profiles against a JD
// @Tags Compare
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.CompareRequest true "JD and profiles to compare"
// @Success 200 {object} models.CompareResponse
// @Failure 400 {object} models.ErrorResponse "Missing selection"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 403 {object} models.ErrorResponse "Forbidden"
// @Failure 404 {object} models.ErrorResponse "JD or profiles not found"
// @Failure 502 {object} models.ErrorResponse "Agent comparison failed"
// @Router /compare [post]
func (h *CompareHandler) Compare(c *gin.Context) {
	var req models.CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "Missing selection",
			Code:    http.StatusBadRequest,
			Details: err.Error(),
		})
		return
	}

	claims := auth.GetAuthClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error: "Unauthorized",
			Code:  http.StatusUnauthorized,
		})
		return
	}

	ctx := c.Request.Context()

	jd, err := h.store.GetJobDescription(ctx, req.JDID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{
				Error: "JD not found",
				Code:  http.StatusNotFound,
			})
			return
		}
		log.Printf("[CompareHandler] Failed to load JD %s: %v", req.JDID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Internal server error",
			Code:  http.StatusInternalServerError,
		})
		return
	}

	profiles, err := h.store.FindProfilesForComparison(ctx, req.ProfileIDs)
	if err != nil {
		log.Printf("[CompareHandler] Failed to load profiles: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Internal server error",
			Code:  http.StatusInternalServerError,
		})
		return
	}
	if len(profiles) == 0 {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error: "Profiles not found",
			Code:  http.StatusNotFound,
		})
		return
	}

	content := make(map[string]string, len(profiles))
	for _, p := range profiles {
		if _, dup := content[p.Name]; dup {
			log.Printf("[CompareHandler] Duplicate profile name %q, keeping the first", p.Name)
			continue
		}
		content[p.Name] = p.ResumeText
	}

	resp, err := h.agent.RunAgent(ctx, agent.RunAgentRequest{
		JDID:            jd.ID.Hex(),
		JDFilename:      utils.AttachmentFilename(jd.Title),
		JDContent:       jd.Content,
		ProfilesContent: content,
		AREmail:         claims.Email,
		RecruiterEmail:  req.RecruiterEmail,
		CreatedBy:       claims.UserID,
	})
	if err != nil {
		log.Printf("[CompareHandler] Agent comparison for JD %s failed: %v", req.JDID, err)
		c.JSON(http.StatusBadGateway, models.ErrorResponse{
			Error:   "Agent comparison failed",
			Code:    http.StatusBadGateway,
			Details: err.Error(),
		})
		return
	}

	matches := make([]models.CompareMatch, 0, len(resp.TopMatches))
	for _, m := range resp.TopMatches {
		matches = append(matches, models.CompareMatch{
			ProfileName:     m.ProfileName,
			ApplicantName:   m.ApplicantName,
			SimilarityScore: m.SimilarityScore,
			MatchScore:      int(math.Round(m.SimilarityScore * 100)),
			Justification:   m.Reasoning,
		})
	}

	c.JSON(http.StatusOK, models.CompareResponse{
		Status:  resp.Status,
		Message: resp.Message,
		JDID:    jd.ID.Hex(),
		Matches: matches,
	})
}

// ProcessUpload extracts text from an uploaded file through the agent backend
// @Summary Extract document text
// @Description Proxies a multipart upload to the agent's extractor, used for upload previews
// @Tags Compare
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Document to extract"
// @Success 200 {object} models.ExtractedDocument
// @Failure 400 {object} models.ErrorResponse "Missing file"
// @Failure 413 {object} models.ErrorResponse "File too large"
// @Failure 502 {object} models.ErrorResponse "Extraction failed"
// @Router /process-upload [post]
func (h *CompareHandler) ProcessUpload(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "Missing file",
			Code:  http.StatusBadRequest,
		})
		return
	}
	defer file.Close()

	if header.Size > h.maxBytes {
		c.JSON(http.StatusRequestEntityTooLarge, models.ErrorResponse{
			Error: "File too large",
			Code:  http.StatusRequestEntityTooLarge,
		})
		return
	}

	buf := new(bytes.Buffer)
	if _, err := io.Copy(buf, io.LimitReader(file, h.maxBytes+1)); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "Failed to read file",
			Code:  http.StatusBadRequest,
		})
		return
	}

	doc, err := h.agent.ProcessUpload(c.Request.Context(), header.Filename, buf.Bytes())
	if err != nil {
		log.Printf("[CompareHandler] Extraction of %s failed: %v", header.Filename, err)
		c.JSON(http.StatusBadGateway, models.ErrorResponse{
			Error:   "Extraction failed",
			Code:    http.StatusBadGateway,
			Details: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, doc)
}
