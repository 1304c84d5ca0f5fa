package handlers

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/profileranker/backend/models"
	"github.com/profileranker/backend/storage"
	"github.com/profileranker/backend/utils"
)

// PDFStore loads documents including their PDF payload
type PDFStore interface {
	GetJobDescription(ctx context.Context, id string) (*models.JobDescription, error)
	GetConsultantProfile(ctx context.Context, id string) (*models.ConsultantProfile, error)
}

// PDFHandler streams stored PDFs back to the browser
type PDFHandler struct {
	store   PDFStore
	archive PDFArchive // optional
}

// NewPDFHandler creates a new PDF handler. archive may be nil.
func NewPDFHandler(store PDFStore, archive PDFArchive) *PDFHandler {
	return &PDFHandler{store: store, archive: archive}
}

// ProfilePDF downloads a consultant profile's resume
// @Summary Download profile PDF
// @Tags Documents
// @Produce application/pdf
// @Security BearerAuth
// @Param id path string true "Consultant profile id"
// @Success 200 {file} binary
// @Failure 404 {object} models.ErrorResponse "PDF not found"
// @Router /profile-pdf/{id} [get]
func (h *PDFHandler) ProfilePDF(c *gin.Context) {
	profile, err := h.store.GetConsultantProfile(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.lookupFailed(c, err)
		return
	}
	h.send(c, profile.Name, profile.PDFFile)
}

// JobDescriptionPDF downloads a JD's original PDF
// @Summary Download JD PDF
// @Tags Documents
// @Produce application/pdf
// @Security BearerAuth
// @Param id path string true "Job description id"
// @Success 200 {file} binary
// @Failure 404 {object} models.ErrorResponse "PDF not found"
// @Router /jd-pdf/{id} [get]
func (h *PDFHandler) JobDescriptionPDF(c *gin.Context) {
	jd, err := h.store.GetJobDescription(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.lookupFailed(c, err)
		return
	}
	h.send(c, jd.Title, jd.PDFFile)
}

func (h *PDFHandler) lookupFailed(c *gin.Context, err error) {
	if errors.Is(err, storage.ErrNotFound) {
		pdfNotFound(c)
		return
	}
	log.Printf("[PDFHandler] Lookup failed: %v", err)
	c.JSON(http.StatusInternalServerError, models.ErrorResponse{
		Error: "Internal server error",
		Code:  http.StatusInternalServerError,
	})
}

func (h *PDFHandler) send(c *gin.Context, name string, file models.PDFFile) {
	content, err := h.load(c.Request.Context(), file)
	if err != nil {
		log.Printf("[PDFHandler] PDF for %q unavailable: %v", name, err)
		pdfNotFound(c)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, utils.AttachmentFilename(name)))
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, models.MimeTypePDF, content)
}

// load prefers the inline copy and falls back to the mirrored object
func (h *PDFHandler) load(ctx context.Context, file models.PDFFile) ([]byte, error) {
	if file.Data != "" {
		return utils.DecodeBase64(file.Data)
	}
	if file.StorageURL != "" && h.archive != nil {
		return h.archive.DownloadPDF(ctx, file.StorageURL)
	}
	return nil, errors.New("no PDF stored")
}

func pdfNotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, models.ErrorResponse{
		Error: "PDF not found",
		Code:  http.StatusNotFound,
	})
}
