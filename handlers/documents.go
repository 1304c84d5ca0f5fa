package handlers

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/profileranker/backend/models"
	"github.com/profileranker/backend/storage"
	"github.com/profileranker/backend/utils"
)

// Object storage prefixes for mirrored PDFs
const (
	KindJobDescription    = "job-descriptions"
	KindConsultantProfile = "consultant-profiles"
)

// DocumentStore persists uploaded JDs and consultant profiles
type DocumentStore interface {
	CreateJobDescription(ctx context.Context, jd *models.JobDescription) error
	ListJobDescriptions(ctx context.Context) ([]models.JobDescription, error)
	DeleteJobDescriptionByTitle(ctx context.Context, title string) (*models.JobDescription, error)
	CreateConsultantProfile(ctx context.Context, p *models.ConsultantProfile) error
	ListConsultantProfiles(ctx context.Context) ([]models.ConsultantProfile, error)
	DeleteConsultantProfileByName(ctx context.Context, name string) (*models.ConsultantProfile, error)
}

// TextExtractor turns PDF bytes into plain text
type TextExtractor interface {
	ExtractPDFText(content []byte) (string, error)
}

// UploadProcessor is a remote text extractor used when local extraction fails
type UploadProcessor interface {
	ProcessUpload(ctx context.Context, filename string, data []byte) (*models.ExtractedDocument, error)
}

// PDFArchive mirrors PDFs to object storage
type PDFArchive interface {
	UploadPDF(ctx context.Context, kind, name string, content []byte) (string, error)
	DownloadPDF(ctx context.Context, pdfURL string) ([]byte, error)
	DeletePDF(ctx context.Context, pdfURL string) error
}

// DocumentHandler handles JD and consultant profile uploads
type DocumentHandler struct {
	store     DocumentStore
	users     UserLookup
	extractor TextExtractor
	processor UploadProcessor // optional
	archive   PDFArchive      // optional
	maxBytes  int64
}

// NewDocumentHandler creates a new document handler. processor and archive
// may be nil.
func NewDocumentHandler(
	store DocumentStore,
	users UserLookup,
	extractor TextExtractor,
	processor UploadProcessor,
	archive PDFArchive,
	maxBytes int64,
) *DocumentHandler {
	return &DocumentHandler{
		store:     store,
		users:     users,
		extractor: extractor,
		processor: processor,
		archive:   archive,
		maxBytes:  maxBytes,
	}
}

// upload is a validated upload ready to persist
type upload struct {
	user *models.User
	file models.PDFFile
	text string
}

// UploadJobDescription handles a JD upload
// @Summary Upload job description
// @Description Upload a JD as a base64 PDF; text is extracted and stored alongside it
// @Tags Documents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.UploadJobDescriptionRequest true "JD upload"
// @Success 201 {object} models.JobDescription "Created"
// @Failure 400 {object} models.ErrorResponse "Missing required fields or unreadable PDF"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 404 {object} models.ErrorResponse "User not found"
// @Failure 413 {object} models.ErrorResponse "File exceeds size limit"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /upload/job-description [post]
func (h *DocumentHandler) UploadJobDescription(c *gin.Context) {
	var req models.UploadJobDescriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "Missing required fields",
			Code:    http.StatusBadRequest,
			Details: err.Error(),
		})
		return
	}

	req.Title = strings.TrimSpace(req.Title)
	up, ok := h.prepareUpload(c, req.Title, req.PDFFile, KindJobDescription)
	if !ok {
		return
	}

	jd := &models.JobDescription{
		Title:      req.Title,
		Content:    up.text,
		PDFFile:    up.file,
		UploadedBy: up.user.ID,
	}

	if err := h.store.CreateJobDescription(c.Request.Context(), jd); err != nil {
		log.Printf("[DocumentHandler] Failed to save JD %q: %v", jd.Title, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Internal server error",
			Code:  http.StatusInternalServerError,
		})
		return
	}

	log.Printf("[DocumentHandler] JD uploaded: %q by %s", jd.Title, up.user.Email)
	jd.PDFFile.Data = ""
	c.JSON(http.StatusCreated, jd)
}

// UploadConsultantProfile handles a profile upload
// @Summary Upload consultant profile
// @Description Upload a resume as a base64 PDF; text is extracted and stored alongside it
// @Tags Documents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.UploadProfileRequest true "Profile upload"
// @Success 201 {object} models.ConsultantProfile "Created"
// @Failure 400 {object} models.ErrorResponse "Missing required fields or unreadable PDF"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 404 {object} models.ErrorResponse "User not found"
// @Failure 413 {object} models.ErrorResponse "File exceeds size limit"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /upload/consultant-profile [post]
func (h *DocumentHandler) UploadConsultantProfile(c *gin.Context) {
	var req models.UploadProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "Missing required fields",
			Code:    http.StatusBadRequest,
			Details: err.Error(),
		})
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	up, ok := h.prepareUpload(c, req.Name, req.PDFFile, KindConsultantProfile)
	if !ok {
		return
	}

	profile := &models.ConsultantProfile{
		Name:       req.Name,
		ResumeText: up.text,
		PDFFile:    up.file,
		UploadedBy: up.user.ID,
	}

	if err := h.store.CreateConsultantProfile(c.Request.Context(), profile); err != nil {
		log.Printf("[DocumentHandler] Failed to save profile %q: %v", profile.Name, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Internal server error",
			Code:  http.StatusInternalServerError,
		})
		return
	}

	log.Printf("[DocumentHandler] Profile uploaded: %q by %s", profile.Name, up.user.Email)
	profile.PDFFile.Data = ""
	c.JSON(http.StatusCreated, profile)
}

// prepareUpload validates, decodes, extracts and optionally mirrors an
// uploaded PDF. It writes the error response itself and returns false on
// failure.
func (h *DocumentHandler) prepareUpload(c *gin.Context, name string, in *models.PDFFileInput, kind string) (*upload, bool) {
	if name == "" || in == nil || in.Data == "" || in.MimeType == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "Missing required fields",
			Code:  http.StatusBadRequest,
		})
		return nil, false
	}

	// The encoded length bound leaves room for a data URL prefix
	if in.Size > h.maxBytes || int64(base64.StdEncoding.DecodedLen(len(in.Data))) > h.maxBytes+64 {
		h.tooLarge(c)
		return nil, false
	}

	if in.MimeType != models.MimeTypePDF {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "Only PDF files are allowed",
			Code:    http.StatusBadRequest,
			Details: "mimeType must be " + models.MimeTypePDF,
		})
		return nil, false
	}

	user, ok := currentUser(c, h.users)
	if !ok {
		return nil, false
	}

	content, err := utils.DecodeBase64(in.Data)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "Invalid file encoding",
			Code:    http.StatusBadRequest,
			Details: err.Error(),
		})
		return nil, false
	}
	if int64(len(content)) > h.maxBytes {
		h.tooLarge(c)
		return nil, false
	}

	ctx := c.Request.Context()
	text, err := h.extractText(ctx, name, content)
	if err != nil {
		log.Printf("[DocumentHandler] Unreadable PDF %q: %v", name, err)
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "Unreadable PDF file",
			Code:  http.StatusBadRequest,
		})
		return nil, false
	}

	file := models.PDFFile{
		Data:     base64.StdEncoding.EncodeToString(content),
		MimeType: models.MimeTypePDF,
		Size:     int64(len(content)),
	}

	if h.archive != nil {
		url, err := h.archive.UploadPDF(ctx, kind, name, content)
		if err != nil {
			// The inline copy is authoritative
			log.Printf("[DocumentHandler] Failed to mirror PDF %q: %v", name, err)
		} else {
			file.StorageURL = url
		}
	}

	return &upload{user: user, file: file, text: text}, true
}

func (h *DocumentHandler) tooLarge(c *gin.Context) {
	c.JSON(http.StatusRequestEntityTooLarge, models.ErrorResponse{
		Error: fmt.Sprintf("File exceeds %s limit", sizeLabel(h.maxBytes)),
		Code:  http.StatusRequestEntityTooLarge,
	})
}

func sizeLabel(n int64) string {
	if n > 0 && n%(1<<20) == 0 {
		return fmt.Sprintf("%dMB", n>>20)
	}
	return fmt.Sprintf("%d byte", n)
}

// extractText parses the PDF locally and falls back to the agent backend's
// extractor
func (h *DocumentHandler) extractText(ctx context.Context, name string, content []byte) (string, error) {
	text, err := h.extractor.ExtractPDFText(content)
	if err == nil && text != "" {
		return text, nil
	}
	if err == nil {
		err = errors.New("no extractable text")
	}

	if h.processor == nil {
		return "", err
	}

	log.Printf("[DocumentHandler] Local extraction failed for %q (%v), trying agent", name, err)
	doc, perr := h.processor.ProcessUpload(ctx, utils.AttachmentFilename(name), content)
	if perr != nil {
		return "", errors.Join(err, perr)
	}
	if strings.TrimSpace(doc.Content) == "" {
		return "", err
	}
	return utils.NormalizeText(doc.Content), nil
}

// ListJobDescriptions returns every JD
// @Summary List job descriptions
// @Description Newest first, without the PDF payload
// @Tags Documents
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.JobDescription
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /upload/job-description [get]
func (h *DocumentHandler) ListJobDescriptions(c *gin.Context) {
	jds, err := h.store.ListJobDescriptions(c.Request.Context())
	if err != nil {
		log.Printf("[DocumentHandler] Failed to list JDs: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Internal server error",
			Code:  http.StatusInternalServerError,
		})
		return
	}
	c.JSON(http.StatusOK, jds)
}

// ListConsultantProfiles returns every consultant profile
// @Summary List consultant profiles
// @Description Newest first, without the PDF payload
// @Tags Documents
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.ConsultantProfile
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /upload/consultant-profile [get]
func (h *DocumentHandler) ListConsultantProfiles(c *gin.Context) {
	profiles, err := h.store.ListConsultantProfiles(c.Request.Context())
	if err != nil {
		log.Printf("[DocumentHandler] Failed to list profiles: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Internal server error",
			Code:  http.StatusInternalServerError,
		})
		return
	}
	c.JSON(http.StatusOK, profiles)
}

// DeleteJobDescription deletes one JD by title
// @Summary Delete job description
// @Description Deletes a single JD with the given title. Titles are not unique; only one match is removed.
// @Tags Documents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.DeleteByNameRequest true "JD title"
// @Success 200 {object} models.SuccessResponse
// @Failure 400 {object} models.ErrorResponse "Missing name"
// @Failure 403 {object} models.ErrorResponse "Forbidden"
// @Failure 404 {object} models.ErrorResponse "JD not found"
// @Router /upload/job-description [delete]
func (h *DocumentHandler) DeleteJobDescription(c *gin.Context) {
	name, ok := bindDeleteName(c)
	if !ok {
		return
	}

	jd, err := h.store.DeleteJobDescriptionByTitle(c.Request.Context(), name)
	if !h.deleted(c, err, "JD not found") {
		return
	}

	log.Printf("[DocumentHandler] JD deleted: %q (%s)", jd.Title, jd.ID.Hex())
	h.dropMirror(c.Request.Context(), jd.PDFFile.StorageURL)
	c.JSON(http.StatusOK, models.SuccessResponse{Success: true})
}

// DeleteConsultantProfile deletes one profile by name
// @Summary Delete consultant profile
// @Description Deletes a single profile with the given name. Names are not unique; only one match is removed.
// @Tags Documents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.DeleteByNameRequest true "Profile name"
// @Success 200 {object} models.SuccessResponse
// @Failure 400 {object} models.ErrorResponse "Missing name"
// @Failure 403 {object} models.ErrorResponse "Forbidden"
// @Failure 404 {object} models.ErrorResponse "Profile not found"
// @Router /upload/consultant-profile [delete]
func (h *DocumentHandler) DeleteConsultantProfile(c *gin.Context) {
	name, ok := bindDeleteName(c)
	if !ok {
		return
	}

	profile, err := h.store.DeleteConsultantProfileByName(c.Request.Context(), name)
	if !h.deleted(c, err, "Profile not found") {
		return
	}

	log.Printf("[DocumentHandler] Profile deleted: %q (%s)", profile.Name, profile.ID.Hex())
	h.dropMirror(c.Request.Context(), profile.PDFFile.StorageURL)
	c.JSON(http.StatusOK, models.SuccessResponse{Success: true})
}

func bindDeleteName(c *gin.Context) (string, bool) {
	var req models.DeleteByNameRequest
	_ = c.ShouldBindJSON(&req)

	name := strings.TrimSpace(req.Name)
	if name == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "Missing name",
			Code:  http.StatusBadRequest,
		})
		return "", false
	}
	return name, true
}

func (h *DocumentHandler) deleted(c *gin.Context, err error, notFoundMsg string) bool {
	if err == nil {
		return true
	}
	if errors.Is(err, storage.ErrNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error: notFoundMsg,
			Code:  http.StatusNotFound,
		})
		return false
	}
	log.Printf("[DocumentHandler] Delete failed: %v", err)
	c.JSON(http.StatusInternalServerError, models.ErrorResponse{
		Error: "Internal server error",
		Code:  http.StatusInternalServerError,
	})
	return false
}

func (h *DocumentHandler) dropMirror(ctx context.Context, url string) {
	if h.archive == nil || url == "" {
		return
	}
	if err := h.archive.DeletePDF(ctx, url); err != nil {
		log.Printf("[DocumentHandler] Failed to delete mirrored PDF %s: %v", url, err)
	}
}
