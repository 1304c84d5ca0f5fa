package agent

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/profileranker/backend/config"
)

func newTestClient(url string) *Client {
	return NewClient(&config.Config{
		AgentBaseURL:        url,
		AgentTimeoutSeconds: 5,
		AgentRatePerMinute:  0,
	})
}

func TestRunAgent_Success(t *testing.T) {
	var got RunAgentRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, runAgentPath, r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		_, _ = io.WriteString(w, `{"status":"success","top_3_matches":[
			{"profile_name":"Jane_Doe","applicant_name":"Jane Doe","similarity_score":0.91,"reasoning":"Go"}
		]}`)
	}))
	defer srv.Close()

	resp, err := newTestClient(srv.URL).RunAgent(context.Background(), RunAgentRequest{
		JDID:            "jd1",
		JDFilename:      "Backend.pdf",
		JDContent:       "We need Go",
		ProfilesContent: map[string]string{"Jane_Doe": "Go, Kafka"},
		AREmail:         "ar@example.com",
		CreatedBy:       "u1",
	})
	require.NoError(t, err)

	assert.Equal(t, "jd1", got.JDID)
	assert.Equal(t, map[string]string{"Jane_Doe": "Go, Kafka"}, got.ProfilesContent)
	require.Len(t, resp.TopMatches, 1)
	assert.Equal(t, "Jane Doe", resp.TopMatches[0].ApplicantName)
	assert.InDelta(t, 0.91, resp.TopMatches[0].SimilarityScore, 1e-9)
}

func TestRunAgent_Failures(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantStatus int
		wantMsg    string
	}{
		{"http error with detail", http.StatusInternalServerError, `{"detail":"Database connection failed"}`, 500, "Database connection failed"},
		{"non-success status", http.StatusOK, `{"status":"error","message":"no profiles"}`, 0, "no profiles"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			}))
			defer srv.Close()

			_, err := newTestClient(srv.URL).RunAgent(context.Background(), RunAgentRequest{JDID: "jd1"})
			require.Error(t, err)

			var agentErr *Error
			require.True(t, errors.As(err, &agentErr))
			assert.Equal(t, tt.wantStatus, agentErr.StatusCode)
			assert.Equal(t, tt.wantMsg, agentErr.Message)
		})
	}
}

func TestProcessUpload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, processUploadPath, r.URL.Path)

		file, header, err := r.FormFile("file")
		if !assert.NoError(t, err) {
			return
		}
		defer file.Close()
		data, _ := io.ReadAll(file)

		_ = json.NewEncoder(w).Encode(map[string]string{
			"filename": header.Filename,
			"content":  "extracted:" + string(data),
		})
	}))
	defer srv.Close()

	doc, err := newTestClient(srv.URL).ProcessUpload(context.Background(), "resume.pdf", []byte("%PDF"))
	require.NoError(t, err)
	assert.Equal(t, "resume.pdf", doc.Filename)
	assert.Equal(t, "extracted:%PDF", doc.Content)
}

func TestHealth(t *testing.T) {
	var healthy atomic.Bool
	healthy.Store(true)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !healthy.Load() {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = io.WriteString(w, `{"status":"healthy"}`)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	assert.NoError(t, c.Health(context.Background()))

	healthy.Store(false)
	assert.Error(t, c.Health(context.Background()))
}

func TestRunAgent_RespectsCancelledContext(t *testing.T) {
	c := NewClient(&config.Config{AgentBaseURL: "http://127.0.0.1:0", AgentTimeoutSeconds: 1, AgentRatePerMinute: 1})
	// Drain the only token so the next call has to wait.
	require.True(t, c.limiter.Allow())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.RunAgent(ctx, RunAgentRequest{JDID: "jd1"})
	assert.Error(t, err)
}

func TestProcessUpload_NotThrottled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"filename":"cv.pdf","content":"text"}`)
	}))
	defer srv.Close()

	c := NewClient(&config.Config{AgentBaseURL: srv.URL, AgentTimeoutSeconds: 5, AgentRatePerMinute: 1})
	require.True(t, c.limiter.Allow())

	// Extraction must not wait for the comparison budget to refill.
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	doc, err := c.ProcessUpload(ctx, "cv.pdf", []byte("%PDF"))
	require.NoError(t, err)
	assert.Equal(t, "text", doc.Content)

	_, err = c.GenerateJDReport(ctx, JDReportRequest{JDContent: "Go"})
	assert.Error(t, err, "report generation shares the comparison budget")
}

func TestGenerateReports(t *testing.T) {
	var gotPath string
	var got map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = io.WriteString(w, `{"status":"success","message":"done","report":{"executive_summary":"Strong fit"}}`)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)

	resp, err := c.GenerateJDReport(context.Background(), JDReportRequest{JDContent: "We need Go", JDTitle: "Backend", ReportID: "jd1"})
	require.NoError(t, err)
	assert.Equal(t, generateJDReportPath, gotPath)
	assert.Equal(t, map[string]string{"jd_content": "We need Go", "jd_title": "Backend", "report_id": "jd1"}, got)
	assert.JSONEq(t, `{"executive_summary":"Strong fit"}`, string(resp.Report))

	_, err = c.GenerateProfileReport(context.Background(), ProfileReportRequest{ProfileContent: "Go, Kafka", ProfileTitle: "Jane", ReportID: "p1"})
	require.NoError(t, err)
	assert.Equal(t, generateProfileReportPath, gotPath)
	assert.Equal(t, map[string]string{"profile_content": "Go, Kafka", "profile_title": "Jane", "report_id": "p1"}, got)
}

func TestGenerateReport_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"status":"error","message":"JD content is required."}`)
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).GenerateJDReport(context.Background(), JDReportRequest{})
	var agentErr *Error
	require.True(t, errors.As(err, &agentErr))
	assert.Equal(t, 0, agentErr.StatusCode)
	assert.Equal(t, "JD content is required.", agentErr.Message)
}
