package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/profileranker/backend/models"
)

// StatusReader builds the AR dashboard and match detail views
type StatusReader interface {
	ARStatus(ctx context.Context, createdBy string) ([]models.ARStatusRow, error)
	MatchDetail(ctx context.Context, jobID string) (*models.MatchDetail, error)
}

// ARStatusTool lists recent JDs with their comparison progress
type ARStatusTool struct {
	status StatusReader
}

// NewARStatusTool creates a new AR status tool
func NewARStatusTool(status StatusReader) *ARStatusTool {
	return &ARStatusTool{status: status}
}

func (t *ARStatusTool) Name() string {
	return "ar_status"
}

func (t *ARStatusTool) Description() string {
	return `List the most recent job descriptions with their comparison progress.
Each entry has progress (0 or 100), whether it was matched, and up to three top profiles.
Top profiles flagged placeholder are display filler, not real matches.`
}

func (t *ARStatusTool) InputSchema() map[string]interface{} {
	return objectSchema(map[string]interface{}{
		"created_by": map[string]interface{}{
			"type":        "string",
			"description": "Only JDs uploaded by this user id",
		},
	})
}

// ARStatusInput represents the input for ar_status
type ARStatusInput struct {
	CreatedBy string `json:"created_by"`
}

func (t *ARStatusTool) Execute(ctx context.Context, input json.RawMessage) (json.RawMessage, error) {
	var in ARStatusInput
	if err := decodeInput(input, &in); err != nil {
		return NewErrorResult(fmt.Sprintf("invalid input: %v", err))
	}

	rows, err := t.status.ARStatus(ctx, strings.TrimSpace(in.CreatedBy))
	if err != nil {
		return NewErrorResult(fmt.Sprintf("status failed: %v", err))
	}
	return NewSuccessResult(rows)
}

// JDMatchesTool returns the full scored table for one JD
type JDMatchesTool struct {
	status StatusReader
}

// NewJDMatchesTool creates a new match detail tool
func NewJDMatchesTool(status StatusReader) *JDMatchesTool {
	return &JDMatchesTool{status: status}
}

func (t *JDMatchesTool) Name() string {
	return "jd_matches"
}

func (t *JDMatchesTool) Description() string {
	return `Get every scored consultant profile for a job description, highest score first.
Input is the job description id. Unknown ids return found=false.`
}

func (t *JDMatchesTool) InputSchema() map[string]interface{} {
	return objectSchema(map[string]interface{}{
		"jd_id": map[string]interface{}{
			"type":        "string",
			"description": "Job description id",
		},
	}, "jd_id")
}

// JDMatchesInput represents the input for jd_matches
type JDMatchesInput struct {
	JDID string `json:"jd_id"`
}

func (t *JDMatchesTool) Execute(ctx context.Context, input json.RawMessage) (json.RawMessage, error) {
	var in JDMatchesInput
	if err := decodeInput(input, &in); err != nil {
		return NewErrorResult(fmt.Sprintf("invalid input: %v", err))
	}
	if strings.TrimSpace(in.JDID) == "" {
		return NewErrorResult("jd_id is required")
	}

	detail, err := t.status.MatchDetail(ctx, strings.TrimSpace(in.JDID))
	if err != nil {
		return NewErrorResult(fmt.Sprintf("match detail failed: %v", err))
	}
	return NewSuccessResult(detail)
}
