package reconcile

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/profileranker/backend/models"
	"github.com/profileranker/backend/storage"
)

type fakeStore struct {
	mu         sync.Mutex
	jobs       []models.JobSummary
	sessions   map[string]*models.LegacySession
	profiles   []models.ProfileRef
	sessionErr map[string]error
	listErr    error
	anyCalls   int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		sessions:   map[string]*models.LegacySession{},
		sessionErr: map[string]error{},
	}
}

func (f *fakeStore) addJob(title string) string {
	at := time.Date(2024, 5, 1, 0, 0, len(f.jobs), 0, time.UTC)
	id := primitive.NewObjectID()
	f.jobs = append(f.jobs, models.JobSummary{ID: id, Title: title, CreatedAt: &at})
	return id.Hex()
}

func (f *fakeStore) addProfile(name string) string {
	id := primitive.NewObjectID()
	f.profiles = append(f.profiles, models.ProfileRef{ID: id, Name: name})
	return id.Hex()
}

func (f *fakeStore) RecentJobSummaries(_ context.Context, _ string, limit int) ([]models.JobSummary, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := []models.JobSummary{}
	for i := len(f.jobs) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, f.jobs[i])
	}
	return out, nil
}

func (f *fakeStore) GetJobSummary(_ context.Context, id string) (*models.JobSummary, error) {
	for _, j := range f.jobs {
		if j.ID.Hex() == id {
			j := j
			return &j, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (f *fakeStore) LatestSessionForJob(_ context.Context, jobID string) (*models.LegacySession, error) {
	if err := f.sessionErr[jobID]; err != nil {
		return nil, err
	}
	return f.sessions[jobID], nil
}

func (f *fakeStore) ProfileNamesByIDs(_ context.Context, ids []string) (map[string]string, error) {
	names := map[string]string{}
	for _, id := range ids {
		for _, p := range f.profiles {
			if p.ID.Hex() == id {
				names[id] = p.Name
			}
		}
	}
	return names, nil
}

func (f *fakeStore) ProfileIDsByNames(_ context.Context, names []string) (map[string]string, error) {
	ids := map[string]string{}
	for _, name := range names {
		for _, p := range f.profiles {
			if p.Name == name {
				ids[name] = p.ID.Hex()
			}
		}
	}
	return ids, nil
}

func (f *fakeStore) AnyProfiles(_ context.Context, limit int) ([]models.ProfileRef, error) {
	f.mu.Lock()
	f.anyCalls++
	f.mu.Unlock()
	if len(f.profiles) > limit {
		return f.profiles[:limit], nil
	}
	return f.profiles, nil
}

func entry(id interface{}, score interface{}) models.LegacyEntry {
	return models.LegacyEntry{ProfileID: id, SimilarityScore: score}
}

func TestNormalizeSession_LegacyShapes(t *testing.T) {
	oid := primitive.NewObjectID()
	session := &models.LegacySession{
		JobIDs:     []interface{}{oid.Hex()},
		ProfileIDs: []interface{}{oid, bson.D{{Key: "$oid", Value: oid.Hex()}}},
		Comparisons: []models.LegacyEntry{
			{ProfileIDSnake: oid.Hex(), SimilarityScoreSnake: "0.42", ApplicantNameSnake: "Ann"},
			{ProfileID: bson.M{"$oid": oid.Hex()}, Score: int32(1), ProfileName: "Bob"},
			{ProfileID: "Jane_Doe_Resume", SimilarityScore: "n/a"},
		},
	}

	got := NormalizeSession(session)

	assert.Equal(t, []string{oid.Hex()}, got.JobIDs)
	assert.Equal(t, []string{oid.Hex(), oid.Hex()}, got.ProfileIDs)
	require.Len(t, got.Results, 3)

	assert.Equal(t, Entry{ProfileID: oid.Hex(), RawProfileID: oid.Hex(), Name: "Ann", Score: 0.42, HasScore: true}, got.Results[0])
	assert.Equal(t, oid.Hex(), got.Results[1].ProfileID)
	assert.Equal(t, 1.0, got.Results[1].Score)
	assert.Equal(t, "Bob", got.Results[1].Name)
	assert.Equal(t, "", got.Results[2].ProfileID)
	assert.Equal(t, "Jane_Doe_Resume", got.Results[2].RawProfileID)
	assert.False(t, got.Results[2].HasScore)
}

func TestNormalizeSession_ScorePrecedence(t *testing.T) {
	got := normalizeEntry(models.LegacyEntry{
		SimilarityScore:      nil,
		SimilarityScoreSnake: 0.3,
		Score:                0.9,
		Name:                 "",
		ProfileName:          "Snapshot",
		ApplicantName:        "Applicant",
	})
	assert.Equal(t, 0.3, got.Score)
	assert.Equal(t, "Snapshot", got.Name)
}

func TestTopByScore_StableOnTies(t *testing.T) {
	entries := []Entry{
		{RawProfileID: "a", Score: 0.5},
		{RawProfileID: "b", Score: 0.9},
		{RawProfileID: "c", Score: 0.5},
		{RawProfileID: "d", Score: 0.1},
	}
	top := TopByScore(entries, 3)
	require.Len(t, top, 3)
	assert.Equal(t, "b", top[0].RawProfileID)
	assert.Equal(t, "a", top[1].RawProfileID)
	assert.Equal(t, "c", top[2].RawProfileID)
	assert.Equal(t, "a", entries[0].RawProfileID)
}

func TestARStatus_NoSession(t *testing.T) {
	store := newFakeStore()
	store.addJob("Backend Engineer")

	rows, err := NewStatusService(store, 10).ARStatus(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, rows, 1)

	assert.Equal(t, models.ProgressPending, rows[0].Progress)
	assert.False(t, rows[0].Matched)
	assert.NotNil(t, rows[0].Top3)
	assert.Empty(t, rows[0].Top3)
}

func TestARStatus_DerivesTop3FromResults(t *testing.T) {
	store := newFakeStore()
	jobID := store.addJob("Backend Engineer")
	a, b := store.addProfile("Alice"), store.addProfile("Bob")
	c, d := store.addProfile("Carol"), store.addProfile("Dan")

	store.sessions[jobID] = &models.LegacySession{
		Results: []models.LegacyEntry{entry(a, 0.2), entry(b, 0.8), entry(c, 0.5), entry(d, 0.9)},
	}

	rows, err := NewStatusService(store, 10).ARStatus(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, models.ProgressCompleted, row.Progress)
	assert.True(t, row.Matched)
	require.Len(t, row.Top3, 3)
	assert.Equal(t, "Dan", row.Top3[0].Name)
	assert.Equal(t, "Bob", row.Top3[1].Name)
	assert.Equal(t, "Carol", row.Top3[2].Name)
}

func TestARStatus_PrefersStoredTopProfiles(t *testing.T) {
	store := newFakeStore()
	jobID := store.addJob("Backend Engineer")
	a, b := store.addProfile("Alice"), store.addProfile("Bob")

	store.sessions[jobID] = &models.LegacySession{
		Results:     []models.LegacyEntry{entry(a, 0.9), entry(b, 0.1)},
		TopProfiles: []models.LegacyEntry{entry(b, 0.1)},
	}

	rows, err := NewStatusService(store, 10).ARStatus(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, rows[0].Top3, 1)
	assert.Equal(t, b, rows[0].Top3[0].ProfileID)
}

func TestARStatus_KeepsStoredTopOrder(t *testing.T) {
	store := newFakeStore()
	jobID := store.addJob("Backend Engineer")
	a, b, c, d := store.addProfile("Alice"), store.addProfile("Bob"), store.addProfile("Cara"), store.addProfile("Dan")

	store.sessions[jobID] = &models.LegacySession{
		TopProfiles: []models.LegacyEntry{entry(b, 0.2), entry(a, 0.9), entry(c, 0.5), entry(d, 0.99)},
	}

	rows, err := NewStatusService(store, 10).ARStatus(context.Background(), "")
	require.NoError(t, err)

	var got []string
	for _, m := range rows[0].Top3 {
		got = append(got, m.Name)
	}
	assert.Equal(t, []string{"Bob", "Alice", "Cara"}, got)
	assert.True(t, rows[0].Matched)
}

func TestARStatus_NameFallbacks(t *testing.T) {
	store := newFakeStore()
	jobID := store.addJob("Backend Engineer")
	store.addProfile("Filler")
	missing := primitive.NewObjectID().Hex()

	store.sessions[jobID] = &models.LegacySession{
		TopProfiles: []models.LegacyEntry{
			{ProfileID: missing, SimilarityScore: 0.9, ProfileName: "Snapshot Sam"},
			{ProfileID: missing, SimilarityScore: 0.8},
		},
	}

	rows, err := NewStatusService(store, 10).ARStatus(context.Background(), "")
	require.NoError(t, err)
	top := rows[0].Top3
	require.Len(t, top, 2)

	assert.Equal(t, "Snapshot Sam", top[0].Name)
	assert.False(t, top[0].Placeholder)
	assert.Equal(t, "Filler", top[1].Name)
	assert.True(t, top[1].Placeholder)
}

func TestARStatus_IsolatesPerJobFailures(t *testing.T) {
	store := newFakeStore()
	broken := store.addJob("Broken")
	healthy := store.addJob("Healthy")
	a := store.addProfile("Alice")

	store.sessionErr[broken] = errors.New("connection reset")
	store.sessions[healthy] = &models.LegacySession{Results: []models.LegacyEntry{entry(a, 0.7)}}

	rows, err := NewStatusService(store, 10).ARStatus(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, rows, 2)

	// newest first
	assert.Equal(t, "Healthy", rows[0].Title)
	assert.True(t, rows[0].Matched)
	assert.Equal(t, "Broken", rows[1].Title)
	assert.False(t, rows[1].Matched)
	assert.Empty(t, rows[1].Top3)
}

func TestARStatus_ListFailure(t *testing.T) {
	store := newFakeStore()
	store.listErr = errors.New("timeout")

	_, err := NewStatusService(store, 10).ARStatus(context.Background(), "")
	assert.Error(t, err)
}

func TestARStatus_PageSize(t *testing.T) {
	store := newFakeStore()
	for i := 0; i < 15; i++ {
		store.addJob("JD")
	}

	rows, err := NewStatusService(store, 10).ARStatus(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, rows, 10)
}

func TestMatchDetail_UnknownJob(t *testing.T) {
	store := newFakeStore()

	detail, err := NewStatusService(store, 10).MatchDetail(context.Background(), "not-an-id")
	require.NoError(t, err)
	assert.False(t, detail.Found)
	assert.Equal(t, "not-an-id", detail.Title)
	assert.Equal(t, models.StatePending, detail.State)
	assert.Empty(t, detail.Results)
	assert.Equal(t, 0, store.anyCalls)
}

func TestMatchDetail_PositionalFallback(t *testing.T) {
	store := newFakeStore()
	jobID := store.addJob("Backend Engineer")
	a, b, c := store.addProfile("A"), store.addProfile("B"), store.addProfile("C")

	store.sessions[jobID] = &models.LegacySession{
		ProfileIDs: []interface{}{a, b, c},
		Results: []models.LegacyEntry{
			{SimilarityScore: 0.9},
			{SimilarityScore: 0.5},
			{SimilarityScore: 0.7},
		},
	}

	detail, err := NewStatusService(store, 10).MatchDetail(context.Background(), jobID)
	require.NoError(t, err)
	require.Len(t, detail.Results, 3)

	byID := map[string]float64{}
	for _, r := range detail.Results {
		byID[r.ProfileID] = r.SimilarityScore
		assert.Equal(t, models.NameSourcePositional, r.NameSource)
	}
	assert.Equal(t, map[string]float64{a: 0.9, b: 0.5, c: 0.7}, byID)

	require.Len(t, detail.Top3, 3)
	assert.Equal(t, []string{"A", "C", "B"}, []string{detail.Top3[0].Name, detail.Top3[1].Name, detail.Top3[2].Name})
	assert.Equal(t, ProfilePDFPath+a, detail.Top3[0].DownloadURL)
	assert.Equal(t, 90, detail.Top3[0].ScorePercent)
	assert.True(t, detail.Matched)
	assert.Equal(t, models.StateCompleted, detail.State)
}

func TestMatchDetail_NamePriority(t *testing.T) {
	store := newFakeStore()
	jobID := store.addJob("Backend Engineer")
	renamed := store.addProfile("Current Name")
	byName := store.addProfile("Jane_Doe_Resume")
	positional := store.addProfile("Positional Pat")
	orphan := primitive.NewObjectID().Hex()

	store.sessions[jobID] = &models.LegacySession{
		ProfileIDs: []interface{}{"", "", "", positional},
		Results: []models.LegacyEntry{
			{ProfileID: renamed, SimilarityScore: 0.6, Name: "Frozen Name"},
			{ProfileID: renamed, SimilarityScore: 0.5},
			{ProfileID: "Jane_Doe_Resume", SimilarityScore: 0.4},
			{SimilarityScore: 0.3},
			{ProfileID: orphan, SimilarityScore: 0.2},
			{SimilarityScore: 0.1},
		},
	}

	detail, err := NewStatusService(store, 10).MatchDetail(context.Background(), jobID)
	require.NoError(t, err)
	require.Len(t, detail.Results, 6)

	type got struct{ name, source string }
	var rows []got
	for _, r := range detail.Results {
		rows = append(rows, got{r.Name, r.NameSource})
	}

	assert.Equal(t, []got{
		{"Frozen Name", models.NameSourceSnapshot},
		{"Current Name", models.NameSourceProfile},
		{"Jane_Doe_Resume", models.NameSourceNameLookup},
		{"Positional Pat", models.NameSourcePositional},
		{orphan, models.NameSourceID},
		{models.UnknownName, models.NameSourceUnknown},
	}, rows)

	assert.Equal(t, byName, detail.Results[2].ProfileID)
	assert.True(t, detail.Results[2].Downloadable)
	assert.False(t, detail.Results[5].Downloadable)
	assert.Empty(t, detail.Results[5].DownloadURL)
}

func TestMatchDetail_Top3MatchesTable(t *testing.T) {
	store := newFakeStore()
	jobID := store.addJob("Backend Engineer")
	var results []models.LegacyEntry
	for _, score := range []float64{0.3, 0.8, 0.1, 0.95, 0.6} {
		results = append(results, entry(store.addProfile("P"), score))
	}
	// Stored topProfiles disagree with the table and are ignored.
	store.sessions[jobID] = &models.LegacySession{
		Results:     results,
		TopProfiles: []models.LegacyEntry{results[2]},
	}

	detail, err := NewStatusService(store, 10).MatchDetail(context.Background(), jobID)
	require.NoError(t, err)
	require.Len(t, detail.Top3, 3)
	assert.Equal(t, detail.Results[:3], detail.Top3)
	assert.Equal(t, []float64{0.95, 0.8, 0.6}, []float64{
		detail.Top3[0].SimilarityScore, detail.Top3[1].SimilarityScore, detail.Top3[2].SimilarityScore,
	})
}

func TestMatchDetail_Idempotent(t *testing.T) {
	store := newFakeStore()
	jobID := store.addJob("Backend Engineer")
	a, b := store.addProfile("A"), store.addProfile("B")
	store.sessions[jobID] = &models.LegacySession{
		Results: []models.LegacyEntry{entry(a, 0.5), entry(b, 0.5)},
	}

	svc := NewStatusService(store, 10)
	first, err := svc.MatchDetail(context.Background(), jobID)
	require.NoError(t, err)
	second, err := svc.MatchDetail(context.Background(), jobID)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestMatchDetail_PlaceholderOnlyOnTotalAbsence(t *testing.T) {
	store := newFakeStore()
	for i := 0; i < 10; i++ {
		store.addProfile("Filler")
	}

	empty := store.addJob("Empty session")
	store.sessions[empty] = &models.LegacySession{}

	partial := store.addJob("Profile ids only")
	store.sessions[partial] = &models.LegacySession{ProfileIDs: []interface{}{store.profiles[3].ID}}

	svc := NewStatusService(store, 10)

	detail, err := svc.MatchDetail(context.Background(), empty)
	require.NoError(t, err)
	assert.True(t, detail.Placeholder)
	assert.False(t, detail.Matched)
	assert.Len(t, detail.Results, 8)
	for _, r := range detail.Results {
		assert.True(t, r.Placeholder)
		assert.Equal(t, models.NameSourceFallback, r.NameSource)
	}

	detail, err = svc.MatchDetail(context.Background(), partial)
	require.NoError(t, err)
	assert.False(t, detail.Placeholder)
	require.Len(t, detail.Results, 1)
	assert.Equal(t, store.profiles[3].ID.Hex(), detail.Results[0].ProfileID)
	assert.False(t, detail.Matched)
}
