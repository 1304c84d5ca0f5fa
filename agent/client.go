package agent

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/profileranker/backend/config"
	"github.com/profileranker/backend/models"
	"github.com/profileranker/backend/utils"
)

const (
	runAgentPath              = "/run-agent"
	processUploadPath         = "/process-upload"
	generateJDReportPath      = "/generate-jd-report"
	generateProfileReportPath = "/generate-profile-report"
	healthPath                = "/health"

	maxResponseBytes = 10 * 1024 * 1024
	healthTimeout    = 5 * time.Second
)

// Client calls the external agent backend that scores profiles against a JD
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// Error is a failed agent call. StatusCode is 0 when the backend answered
// 2xx but reported a non-success status.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("agent error: %s", e.Message)
	}
	return fmt.Sprintf("agent returned status %d: %s", e.StatusCode, e.Message)
}

// RunAgentRequest is the body of POST /run-agent
type RunAgentRequest struct {
	JDID            string            `json:"jd_id"`
	JDFilename      string            `json:"jd_filename"`
	JDContent       string            `json:"jd_content"`
	ProfilesContent map[string]string `json:"profiles_content"`
	AREmail         string            `json:"ar_email"`
	RecruiterEmail  string            `json:"recruiter_email"`
	CreatedBy       string            `json:"created_by"`
}

// Match is one ranked profile returned by the agent
type Match struct {
	ProfileName     string  `json:"profile_name"`
	ApplicantName   string  `json:"applicant_name"`
	SimilarityScore float64 `json:"similarity_score"`
	Reasoning       string  `json:"reasoning"`
}

// RunAgentResponse is the body returned by POST /run-agent
type RunAgentResponse struct {
	Status     string  `json:"status"`
	Message    string  `json:"message"`
	TopMatches []Match `json:"top_3_matches"`
}

// JDReportRequest is the body of POST /generate-jd-report
type JDReportRequest struct {
	JDContent string `json:"jd_content"`
	JDTitle   string `json:"jd_title"`
	ReportID  string `json:"report_id"`
}

// ProfileReportRequest is the body of POST /generate-profile-report
type ProfileReportRequest struct {
	ProfileContent string `json:"profile_content"`
	ProfileTitle   string `json:"profile_title"`
	ReportID       string `json:"report_id"`
}

// ReportResponse is returned by both report endpoints. Report is kept as
// raw JSON because its shape depends on the document type.
type ReportResponse struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Report  json.RawMessage `json:"report,omitempty" swaggertype:"object"`
}

// NewClient creates an agent client. Comparison and report generation run
// model calls on the agent and are throttled to AgentRatePerMinute; text
// extraction and health checks are not.
func NewClient(cfg *config.Config) *Client {
	limit := rate.Inf
	burst := 1
	if cfg.AgentRatePerMinute > 0 {
		limit = rate.Limit(float64(cfg.AgentRatePerMinute) / 60)
		burst = cfg.AgentRatePerMinute
	}

	return &Client{
		baseURL:    cfg.AgentBaseURL,
		httpClient: utils.NewHTTPClient(time.Duration(cfg.AgentTimeoutSeconds) * time.Second),
		limiter:    rate.NewLimiter(limit, burst),
	}
}

// RunAgent asks the agent to compare profiles against a JD. The agent
// persists the comparison session itself.
func (c *Client) RunAgent(ctx context.Context, req RunAgentRequest) (*RunAgentResponse, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("agent rate limit: %w", err)
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	log.Printf("[Agent] Running comparison for JD %s with %d profiles", req.JDID, len(req.ProfilesContent))

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+runAgentPath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	var resp RunAgentResponse
	if err := c.do(httpReq, &resp); err != nil {
		return nil, err
	}

	if resp.Status != "success" {
		msg := resp.Message
		if msg == "" {
			msg = fmt.Sprintf("status %q", resp.Status)
		}
		return nil, &Error{Message: msg}
	}

	log.Printf("[Agent] Comparison for JD %s returned %d matches", req.JDID, len(resp.TopMatches))
	return &resp, nil
}

// ProcessUpload sends a file to the agent's text extractor
func (c *Client) ProcessUpload(ctx context.Context, filename string, data []byte) (*models.ExtractedDocument, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return nil, fmt.Errorf("failed to write form file: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("failed to close multipart body: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+processUploadPath, &buf)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", mw.FormDataContentType())

	var doc models.ExtractedDocument
	if err := c.do(httpReq, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// GenerateJDReport asks the agent for an analysis report on one JD
func (c *Client) GenerateJDReport(ctx context.Context, req JDReportRequest) (*ReportResponse, error) {
	log.Printf("[Agent] Generating JD report %s", req.ReportID)
	return c.generateReport(ctx, generateJDReportPath, req)
}

// GenerateProfileReport asks the agent for an analysis report on one profile
func (c *Client) GenerateProfileReport(ctx context.Context, req ProfileReportRequest) (*ReportResponse, error) {
	log.Printf("[Agent] Generating profile report %s", req.ReportID)
	return c.generateReport(ctx, generateProfileReportPath, req)
}

func (c *Client) generateReport(ctx context.Context, path string, payload interface{}) (*ReportResponse, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("agent rate limit: %w", err)
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	var resp ReportResponse
	if err := c.do(httpReq, &resp); err != nil {
		return nil, err
	}

	// The agent answers 200 with status "error" when generation fails
	if resp.Status != "success" {
		msg := resp.Message
		if msg == "" {
			msg = fmt.Sprintf("status %q", resp.Status)
		}
		return nil, &Error{Message: msg}
	}
	return &resp, nil
}

// Health probes the agent backend's liveness endpoint
func (c *Client) Health(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, healthTimeout)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+healthPath, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	return c.do(httpReq, nil)
}

func (c *Client) do(req *http.Request, out interface{}) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("agent request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("failed to read agent response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &Error{StatusCode: resp.StatusCode, Message: errorMessage(body)}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode agent response: %w", err)
	}
	return nil
}

// errorMessage extracts FastAPI's {"detail": ...} or a generic {"error": ...}
func errorMessage(body []byte) string {
	var payload struct {
		Detail interface{} `json:"detail"`
		Error  string      `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if s, ok := payload.Detail.(string); ok && s != "" {
			return s
		}
		if payload.Error != "" {
			return payload.Error
		}
	}

	msg := string(body)
	if len(msg) > 200 {
		msg = msg[:200]
	}
	return msg
}
