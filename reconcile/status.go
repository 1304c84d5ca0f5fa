package reconcile

import (
	"context"
	"fmt"
	"log"

	"golang.org/x/sync/errgroup"

	"github.com/profileranker/backend/models"
)

// fallbackTopProfiles is how many arbitrary profiles stand in for
// unresolvable names on the AR dashboard
const fallbackTopProfiles = 3

// Store is the read side of the document store used for reconciliation
type Store interface {
	RecentJobSummaries(ctx context.Context, createdBy string, limit int) ([]models.JobSummary, error)
	GetJobSummary(ctx context.Context, id string) (*models.JobSummary, error)
	LatestSessionForJob(ctx context.Context, jobID string) (*models.LegacySession, error)
	ProfileNamesByIDs(ctx context.Context, ids []string) (map[string]string, error)
	ProfileIDsByNames(ctx context.Context, names []string) (map[string]string, error)
	AnyProfiles(ctx context.Context, limit int) ([]models.ProfileRef, error)
}

// StatusService builds the AR dashboard and the match detail view
type StatusService struct {
	store    Store
	pageSize int
}

// NewStatusService creates a status service returning pageSize JDs per page
func NewStatusService(store Store, pageSize int) *StatusService {
	if pageSize <= 0 {
		pageSize = 10
	}
	return &StatusService{store: store, pageSize: pageSize}
}

// ARStatus returns the most recent JDs with their latest comparison outcome.
// Only the listing itself can fail; a JD whose session or names cannot be
// loaded is still returned, with no matches.
func (s *StatusService) ARStatus(ctx context.Context, createdBy string) ([]models.ARStatusRow, error) {
	jobs, err := s.store.RecentJobSummaries(ctx, createdBy, s.pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list job descriptions: %w", err)
	}

	rows := make([]models.ARStatusRow, len(jobs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.pageSize)

	for i, job := range jobs {
		i, job := i, job
		g.Go(func() error {
			row, err := s.statusRow(gctx, job)
			if err != nil {
				log.Printf("[Status] JD %s: %v", job.ID.Hex(), err)
			}
			rows[i] = row
			return nil
		})
	}
	// Workers never return an error
	_ = g.Wait()

	return rows, nil
}

func (s *StatusService) statusRow(ctx context.Context, job models.JobSummary) (models.ARStatusRow, error) {
	row := models.ARStatusRow{
		ID:        job.ID.Hex(),
		Title:     job.Title,
		CreatedAt: job.CreatedAt,
		Progress:  models.ProgressPending,
		Top3:      []models.TopMatch{},
	}

	raw, err := s.store.LatestSessionForJob(ctx, row.ID)
	if err != nil {
		return row, fmt.Errorf("failed to load session: %w", err)
	}
	if raw == nil {
		return row, nil
	}
	row.Progress = models.ProgressCompleted

	session := NormalizeSession(raw)
	// Stored top profiles are already ranked by the agent
	top := session.TopProfiles
	if len(top) > 3 {
		top = top[:3]
	}
	if len(top) == 0 {
		top = TopByScore(session.Results, 3)
	}

	top3, err := s.resolveTopNames(ctx, top)
	if err != nil {
		return row, err
	}

	row.Top3 = top3
	row.Matched = len(top) > 0
	return row, nil
}

// resolveTopNames names each entry by profile lookup, then by the name
// stored on the comparison record. Entries still unnamed borrow the name
// of an arbitrary profile and are flagged as placeholders.
func (s *StatusService) resolveTopNames(ctx context.Context, top []Entry) ([]models.TopMatch, error) {
	ids := make([]string, 0, len(top))
	for _, e := range top {
		if e.ProfileID != "" {
			ids = append(ids, e.ProfileID)
		}
	}

	names, err := s.store.ProfileNamesByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve profile names: %w", err)
	}

	matches := make([]models.TopMatch, len(top))
	var unresolved []int
	for i, e := range top {
		matches[i] = models.TopMatch{
			ProfileID:       e.RawProfileID,
			SimilarityScore: e.Score,
		}
		switch {
		case names[e.ProfileID] != "":
			matches[i].Name = names[e.ProfileID]
		case e.Name != "":
			matches[i].Name = e.Name
		default:
			unresolved = append(unresolved, i)
		}
	}

	if len(unresolved) == 0 {
		return matches, nil
	}

	fallback, err := s.store.AnyProfiles(ctx, fallbackTopProfiles)
	if err != nil {
		log.Printf("[Status] Failed to load fallback profiles: %v", err)
	}
	for n, i := range unresolved {
		if n < len(fallback) && fallback[n].Name != "" {
			matches[i].Name = fallback[n].Name
			matches[i].Placeholder = true
			continue
		}
		matches[i].Name = models.UnknownName
	}

	return matches, nil
}
