package tools

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/profileranker/backend/models"
)

type fakeStatus struct {
	createdBy string
	jobID     string
	err       error
}

func (f *fakeStatus) ARStatus(_ context.Context, createdBy string) ([]models.ARStatusRow, error) {
	f.createdBy = createdBy
	if f.err != nil {
		return nil, f.err
	}
	return []models.ARStatusRow{{ID: "jd1", Title: "Backend", Progress: models.ProgressCompleted, Matched: true, Top3: []models.TopMatch{}}}, nil
}

func (f *fakeStatus) MatchDetail(_ context.Context, jobID string) (*models.MatchDetail, error) {
	f.jobID = jobID
	return &models.MatchDetail{JobID: jobID, Found: true, Top3: []models.MatchRow{}, Results: []models.MatchRow{}}, nil
}

type fakeLister struct {
	jds      []models.JobDescription
	profiles []models.ConsultantProfile
}

func (f fakeLister) ListJobDescriptions(context.Context) ([]models.JobDescription, error) {
	return f.jds, nil
}

func (f fakeLister) ListConsultantProfiles(context.Context) ([]models.ConsultantProfile, error) {
	return f.profiles, nil
}

func decodeResult(t *testing.T, raw json.RawMessage, data interface{}) ToolResult {
	t.Helper()
	var res ToolResult
	require.NoError(t, json.Unmarshal(raw, &res))
	if res.Success && data != nil {
		require.NoError(t, json.Unmarshal(res.Data, data))
	}
	return res
}

func TestRegistry_ListSorted(t *testing.T) {
	status := &fakeStatus{}
	r := NewToolRegistry(NewJDMatchesTool(status), NewARStatusTool(status), NewListJobDescriptionsTool(fakeLister{}))

	var names []string
	for _, tool := range r.List() {
		names = append(names, tool.Name())
	}
	assert.Equal(t, []string{"ar_status", "jd_matches", "list_job_descriptions"}, names)

	_, ok := r.Get("search_web")
	assert.False(t, ok)
}

func TestARStatusTool(t *testing.T) {
	status := &fakeStatus{}
	tool := NewARStatusTool(status)

	var rows []models.ARStatusRow
	raw, err := tool.Execute(context.Background(), json.RawMessage(`{"created_by":" u1 "}`))
	require.NoError(t, err)
	res := decodeResult(t, raw, &rows)
	assert.True(t, res.Success)
	assert.Equal(t, "u1", status.createdBy)
	require.Len(t, rows, 1)
	assert.Equal(t, 100, rows[0].Progress)

	raw, err = tool.Execute(context.Background(), nil)
	require.NoError(t, err)
	assert.True(t, decodeResult(t, raw, nil).Success)
	assert.Empty(t, status.createdBy)

	status.err = errors.New("db down")
	raw, err = tool.Execute(context.Background(), nil)
	require.NoError(t, err)
	res = decodeResult(t, raw, nil)
	assert.False(t, res.Success)
	assert.Contains(t, res.Error, "db down")
}

func TestJDMatchesTool(t *testing.T) {
	status := &fakeStatus{}
	tool := NewJDMatchesTool(status)

	raw, err := tool.Execute(context.Background(), json.RawMessage(`{}`))
	require.NoError(t, err)
	res := decodeResult(t, raw, nil)
	assert.False(t, res.Success)
	assert.Equal(t, "jd_id is required", res.Error)

	raw, err = tool.Execute(context.Background(), json.RawMessage(`{"jd_id":123}`))
	require.NoError(t, err)
	assert.False(t, decodeResult(t, raw, nil).Success)

	var detail models.MatchDetail
	raw, err = tool.Execute(context.Background(), json.RawMessage(`{"jd_id":"abc"}`))
	require.NoError(t, err)
	assert.True(t, decodeResult(t, raw, &detail).Success)
	assert.Equal(t, "abc", detail.JobID)
	assert.Equal(t, "abc", status.jobID)
}

func TestListTools(t *testing.T) {
	uploader := primitive.NewObjectID()
	created := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	lister := fakeLister{
		jds: []models.JobDescription{
			{ID: primitive.NewObjectID(), Title: "Backend", Content: "Go", UploadedBy: uploader, CreatedAt: created},
			{ID: primitive.NewObjectID(), Title: "Frontend", Content: "TS"},
		},
		profiles: []models.ConsultantProfile{
			{ID: primitive.NewObjectID(), Name: "Jane", ResumeText: "Go, Kafka"},
		},
	}

	var jds []DocumentSummary
	raw, err := NewListJobDescriptionsTool(lister).Execute(context.Background(), json.RawMessage(`{"limit":1}`))
	require.NoError(t, err)
	require.True(t, decodeResult(t, raw, &jds).Success)
	require.Len(t, jds, 1)
	assert.Equal(t, "Backend", jds[0].Name)
	assert.Equal(t, uploader.Hex(), jds[0].UploadedBy)
	assert.Equal(t, "2024-05-01T12:00:00Z", jds[0].CreatedAt)
	assert.Equal(t, 2, jds[0].TextLength)

	var profiles []DocumentSummary
	raw, err = NewListConsultantProfilesTool(lister).Execute(context.Background(), nil)
	require.NoError(t, err)
	require.True(t, decodeResult(t, raw, &profiles).Success)
	require.Len(t, profiles, 1)
	assert.Equal(t, "Jane", profiles[0].Name)
	assert.Empty(t, profiles[0].UploadedBy)
}
