package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/profileranker/backend/models"
)

// DocumentLister lists uploaded documents without their PDF payload
type DocumentLister interface {
	ListJobDescriptions(ctx context.Context) ([]models.JobDescription, error)
	ListConsultantProfiles(ctx context.Context) ([]models.ConsultantProfile, error)
}

// DocumentSummary is the compact view of a document returned to agents
type DocumentSummary struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	UploadedBy string `json:"uploaded_by,omitempty"`
	CreatedAt  string `json:"created_at"`
	TextLength int    `json:"text_length"`
}

// ListDocumentsInput limits the number of documents returned
type ListDocumentsInput struct {
	Limit int `json:"limit"`
}

const defaultListLimit = 50

var listSchema = objectSchema(map[string]interface{}{
	"limit": map[string]interface{}{
		"type":        "integer",
		"description": "Maximum number of documents to return (default 50)",
	},
})

// ListJobDescriptionsTool lists uploaded JDs, newest first
type ListJobDescriptionsTool struct {
	docs DocumentLister
}

// NewListJobDescriptionsTool creates a new JD listing tool
func NewListJobDescriptionsTool(docs DocumentLister) *ListJobDescriptionsTool {
	return &ListJobDescriptionsTool{docs: docs}
}

func (t *ListJobDescriptionsTool) Name() string {
	return "list_job_descriptions"
}

func (t *ListJobDescriptionsTool) Description() string {
	return `List uploaded job descriptions, newest first.
Returns id, title, uploader and extracted text length for each.`
}

func (t *ListJobDescriptionsTool) InputSchema() map[string]interface{} {
	return listSchema
}

func (t *ListJobDescriptionsTool) Execute(ctx context.Context, input json.RawMessage) (json.RawMessage, error) {
	limit, err := listLimit(input)
	if err != nil {
		return NewErrorResult(fmt.Sprintf("invalid input: %v", err))
	}

	jds, err := t.docs.ListJobDescriptions(ctx)
	if err != nil {
		return NewErrorResult(fmt.Sprintf("listing failed: %v", err))
	}

	out := make([]DocumentSummary, 0, min(limit, len(jds)))
	for _, jd := range jds {
		if len(out) == limit {
			break
		}
		out = append(out, summarize(jd.ID, jd.Title, jd.UploadedBy, jd.CreatedAt, jd.Content))
	}
	return NewSuccessResult(out)
}

// ListConsultantProfilesTool lists uploaded consultant profiles, newest first
type ListConsultantProfilesTool struct {
	docs DocumentLister
}

// NewListConsultantProfilesTool creates a new profile listing tool
func NewListConsultantProfilesTool(docs DocumentLister) *ListConsultantProfilesTool {
	return &ListConsultantProfilesTool{docs: docs}
}

func (t *ListConsultantProfilesTool) Name() string {
	return "list_consultant_profiles"
}

func (t *ListConsultantProfilesTool) Description() string {
	return `List uploaded consultant profiles, newest first.
Returns id, name, uploader and extracted resume length for each.`
}

func (t *ListConsultantProfilesTool) InputSchema() map[string]interface{} {
	return listSchema
}

func (t *ListConsultantProfilesTool) Execute(ctx context.Context, input json.RawMessage) (json.RawMessage, error) {
	limit, err := listLimit(input)
	if err != nil {
		return NewErrorResult(fmt.Sprintf("invalid input: %v", err))
	}

	profiles, err := t.docs.ListConsultantProfiles(ctx)
	if err != nil {
		return NewErrorResult(fmt.Sprintf("listing failed: %v", err))
	}

	out := make([]DocumentSummary, 0, min(limit, len(profiles)))
	for _, p := range profiles {
		if len(out) == limit {
			break
		}
		out = append(out, summarize(p.ID, p.Name, p.UploadedBy, p.CreatedAt, p.ResumeText))
	}
	return NewSuccessResult(out)
}

func listLimit(input json.RawMessage) (int, error) {
	in := ListDocumentsInput{Limit: defaultListLimit}
	if err := decodeInput(input, &in); err != nil {
		return 0, err
	}
	if in.Limit <= 0 {
		in.Limit = defaultListLimit
	}
	return in.Limit, nil
}

func summarize(id primitive.ObjectID, name string, uploadedBy primitive.ObjectID, createdAt time.Time, text string) DocumentSummary {
	s := DocumentSummary{
		ID:         id.Hex(),
		Name:       name,
		CreatedAt:  createdAt.UTC().Format(time.RFC3339),
		TextLength: len(text),
	}
	if !uploadedBy.IsZero() {
		s.UploadedBy = uploadedBy.Hex()
	}
	return s
}
