// Package reconcile joins comparison sessions, consultant profiles and
// display names across the schema variants the agent backend has written
// over time.
package reconcile

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/profileranker/backend/models"
)

// Session is the canonical form of a comparison session
type Session struct {
	ID          string
	JobIDs      []string
	ProfileIDs  []string // raw; only valid hex entries are usable
	Results     []Entry
	TopProfiles []Entry
	CreatedAt   time.Time
}

// Entry is the canonical form of one scored profile
type Entry struct {
	// ProfileID is a valid 24-hex id or empty
	ProfileID string
	// RawProfileID is whatever was stored, rendered as a string
	RawProfileID string
	Name         string
	Score        float64
	HasScore     bool
}

// NormalizeSession maps a stored session to its canonical form. It is the
// only place that knows about legacy field spellings.
func NormalizeSession(s *models.LegacySession) Session {
	if s == nil {
		return Session{}
	}

	out := Session{
		JobIDs:     make([]string, 0, len(s.JobIDs)),
		ProfileIDs: make([]string, 0, len(s.ProfileIDs)),
		CreatedAt:  s.CreatedAt,
	}
	if !s.ID.IsZero() {
		out.ID = s.ID.Hex()
	}

	for _, v := range s.JobIDs {
		out.JobIDs = append(out.JobIDs, rawID(v))
	}
	for _, v := range s.ProfileIDs {
		out.ProfileIDs = append(out.ProfileIDs, rawID(v))
	}

	results := s.Results
	if len(results) == 0 {
		results = s.Comparisons
	}
	out.Results = normalizeEntries(results)
	out.TopProfiles = normalizeEntries(s.TopProfiles)

	return out
}

func normalizeEntries(in []models.LegacyEntry) []Entry {
	entries := make([]Entry, 0, len(in))
	for _, e := range in {
		entries = append(entries, normalizeEntry(e))
	}
	return entries
}

func normalizeEntry(e models.LegacyEntry) Entry {
	var out Entry

	raw := e.ProfileID
	if isEmpty(raw) {
		raw = e.ProfileIDSnake
	}
	out.RawProfileID = rawID(raw)
	out.ProfileID = validID(out.RawProfileID)

	for _, v := range []interface{}{e.SimilarityScore, e.SimilarityScoreSnake, e.Score} {
		if score, ok := parseScore(v); ok {
			out.Score, out.HasScore = score, true
			break
		}
	}

	out.Name = firstNonEmpty(e.Name, e.ProfileName, e.ProfileNameSnake, e.ApplicantName, e.ApplicantNameSnake)
	return out
}

// TopByScore returns up to n entries ordered by descending score. Ties keep
// their stored order.
func TopByScore(entries []Entry, n int) []Entry {
	sorted := make([]Entry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Score > sorted[j].Score
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// rawID renders any stored identifier as a string: ObjectIds become hex,
// {"$oid": ...} wrappers are unwrapped.
func rawID(v interface{}) string {
	switch id := v.(type) {
	case nil:
		return ""
	case primitive.ObjectID:
		if id.IsZero() {
			return ""
		}
		return id.Hex()
	case string:
		return strings.TrimSpace(id)
	case bson.M:
		return rawID(id["$oid"])
	case bson.D:
		return rawID(id.Map()["$oid"])
	case map[string]interface{}:
		return rawID(id["$oid"])
	default:
		return strings.TrimSpace(fmt.Sprint(id))
	}
}

func validID(raw string) string {
	if primitive.IsValidObjectID(raw) {
		return strings.ToLower(raw)
	}
	return ""
}

// parseScore accepts every numeric BSON type and numeric strings
func parseScore(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case int:
		return float64(n), true
	case primitive.Decimal128:
		f, err := strconv.ParseFloat(n.String(), 64)
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f, err == nil && !math.IsNaN(f) && !math.IsInf(f, 0)
	default:
		return 0, false
	}
}

func isEmpty(v interface{}) bool {
	return rawID(v) == ""
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return ""
}
