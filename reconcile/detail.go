package reconcile

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"sort"

	"github.com/profileranker/backend/models"
	"github.com/profileranker/backend/storage"
)

// fallbackDetailProfiles is how many arbitrary profiles fill an otherwise
// empty match page
const fallbackDetailProfiles = 8

// ProfilePDFPath is the download route for a consultant profile PDF
const ProfilePDFPath = "/api/profile-pdf/"

// row is a match row while it is being resolved
type row struct {
	entry      Entry
	id         string // resolved valid id
	positional bool   // id came from profileIds[i]
}

// MatchDetail returns the full scored table for one JD. An unknown JD is not
// an error: the title falls back to the raw id and Found is false.
func (s *StatusService) MatchDetail(ctx context.Context, jobID string) (*models.MatchDetail, error) {
	detail := &models.MatchDetail{
		JobID:    jobID,
		Title:    jobID,
		Progress: models.ProgressPending,
		State:    models.StatePending,
		Top3:     []models.MatchRow{},
		Results:  []models.MatchRow{},
	}

	job, err := s.store.GetJobSummary(ctx, jobID)
	switch {
	case err == nil:
		detail.Found = true
		detail.Title = job.Title
		detail.CreatedAt = job.CreatedAt
	case errors.Is(err, storage.ErrNotFound):
	default:
		return nil, fmt.Errorf("failed to load job description: %w", err)
	}

	raw, err := s.store.LatestSessionForJob(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	if raw == nil {
		return detail, nil
	}

	session := NormalizeSession(raw)
	detail.Progress = models.ProgressCompleted
	detail.State = models.StateCompleted
	if detail.CreatedAt == nil && !session.CreatedAt.IsZero() {
		createdAt := session.CreatedAt
		detail.CreatedAt = &createdAt
	}

	rows := buildRows(session)
	if len(rows) == 0 {
		results, err := s.placeholderRows(ctx)
		if err != nil {
			log.Printf("[Status] Failed to load fallback profiles for JD %s: %v", jobID, err)
		}
		detail.Results = results
		detail.Placeholder = len(results) > 0
		detail.Top3 = firstRows(results, 3)
		return detail, nil
	}

	results, err := s.resolveRows(ctx, rows)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].SimilarityScore > results[j].SimilarityScore
	})

	detail.Results = results
	detail.Top3 = firstRows(results, 3)
	detail.Matched = hasScores(rows)
	return detail, nil
}

func hasScores(rows []row) bool {
	for _, r := range rows {
		if r.entry.HasScore {
			return true
		}
	}
	return false
}

// buildRows assigns an identity to every result. When the embedded id is not
// usable the i-th result is joined to the i-th profileIds entry. That join is
// by position only and holds only for records whose arrays were written in
// the same order. Sessions with no results list their compared profiles
// without scores.
func buildRows(session Session) []row {
	if len(session.Results) == 0 {
		var rows []row
		for _, raw := range session.ProfileIDs {
			if id := validID(raw); id != "" {
				rows = append(rows, row{entry: Entry{ProfileID: id, RawProfileID: raw}, id: id})
			}
		}
		return rows
	}

	rows := make([]row, len(session.Results))
	for i, e := range session.Results {
		rows[i] = row{entry: e, id: e.ProfileID}
		if rows[i].id == "" && i < len(session.ProfileIDs) {
			if id := validID(session.ProfileIDs[i]); id != "" {
				rows[i].id = id
				rows[i].positional = true
			}
		}
	}
	return rows
}

// resolveRows names every row. Priority: the name frozen on the comparison
// record, the profile found by embedded id, the profile found by name, the
// profile found by position, the literal id, then Unknown.
func (s *StatusService) resolveRows(ctx context.Context, rows []row) ([]models.MatchRow, error) {
	var ids, candidates []string
	for _, r := range rows {
		if r.id != "" {
			ids = append(ids, r.id)
			continue
		}
		if c := nameCandidate(r.entry); c != "" {
			candidates = append(candidates, c)
		}
	}

	namesByID, err := s.store.ProfileNamesByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve profile names: %w", err)
	}

	idsByName := map[string]string{}
	if len(candidates) > 0 {
		idsByName, err = s.store.ProfileIDsByNames(ctx, candidates)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve profile ids: %w", err)
		}
	}

	results := make([]models.MatchRow, 0, len(rows))
	for _, r := range rows {
		id := r.id
		var lookedUp string
		if id == "" {
			if c := nameCandidate(r.entry); c != "" && idsByName[c] != "" {
				id, lookedUp = idsByName[c], c
			}
		}

		m := models.MatchRow{
			ProfileID:       id,
			SimilarityScore: r.entry.Score,
			ScorePercent:    scorePercent(r.entry.Score),
		}
		if m.ProfileID == "" {
			m.ProfileID = r.entry.RawProfileID
		}

		switch {
		case r.entry.Name != "":
			m.Name, m.NameSource = r.entry.Name, models.NameSourceSnapshot
		case !r.positional && namesByID[id] != "":
			m.Name, m.NameSource = namesByID[id], models.NameSourceProfile
		case lookedUp != "":
			m.Name, m.NameSource = lookedUp, models.NameSourceNameLookup
		case r.positional && namesByID[id] != "":
			m.Name, m.NameSource = namesByID[id], models.NameSourcePositional
		case m.ProfileID != "":
			m.Name, m.NameSource = m.ProfileID, models.NameSourceID
		default:
			m.Name, m.NameSource = models.UnknownName, models.NameSourceUnknown
		}

		setDownload(&m, id)
		results = append(results, m)
	}
	return results, nil
}

// nameCandidate is the string to look a profile up by when no id resolved:
// the stored name, or a stored id that is really a profile name.
func nameCandidate(e Entry) string {
	if e.Name != "" {
		return e.Name
	}
	return e.RawProfileID
}

func (s *StatusService) placeholderRows(ctx context.Context) ([]models.MatchRow, error) {
	profiles, err := s.store.AnyProfiles(ctx, fallbackDetailProfiles)
	if err != nil {
		return []models.MatchRow{}, err
	}

	rows := make([]models.MatchRow, 0, len(profiles))
	for _, p := range profiles {
		m := models.MatchRow{
			ProfileID:   p.ID.Hex(),
			Name:        p.Name,
			NameSource:  models.NameSourceFallback,
			Placeholder: true,
		}
		if m.Name == "" {
			m.Name = models.UnknownName
		}
		setDownload(&m, m.ProfileID)
		rows = append(rows, m)
	}
	return rows, nil
}

func setDownload(m *models.MatchRow, id string) {
	if validID(id) == "" {
		return
	}
	m.Downloadable = true
	m.DownloadURL = ProfilePDFPath + id
}

func scorePercent(score float64) int {
	return int(math.Round(score * 100))
}

func firstRows(rows []models.MatchRow, n int) []models.MatchRow {
	if len(rows) > n {
		rows = rows[:n]
	}
	out := make([]models.MatchRow, len(rows))
	copy(out, rows)
	return out
}
