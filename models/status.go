package models

import "time"

// Progress values. There is no partial progress: a JD either has a
// comparison session or it does not.
const (
	ProgressPending   = 0
	ProgressCompleted = 100
)

// Match states shown on the detail page
const (
	StateCompleted = "Completed"
	StatePending   = "Pending"
)

// Name sources, in priority order
const (
	NameSourceSnapshot   = "snapshot"
	NameSourceProfile    = "profile"
	NameSourceNameLookup = "name_lookup"
	NameSourcePositional = "positional"
	NameSourceID         = "id"
	NameSourceUnknown    = "unknown"
	NameSourceFallback   = "fallback"
)

// UnknownName is displayed when no name can be resolved
const UnknownName = "Unknown"

// TopMatch is one of the top-3 entries of an AR status row
type TopMatch struct {
	ProfileID       string  `json:"profileId" example:"66b1f0c2a4d3e1f2a3b4c5d6"`
	Name            string  `json:"name" example:"Jane Doe"`
	SimilarityScore float64 `json:"similarityScore" example:"0.87"`
	// Placeholder marks display-only filler profiles that are not matches
	Placeholder bool `json:"placeholder,omitempty"`
}

// ARStatusRow is one JD on the AR dashboard
// @Description AR status for a job description
type ARStatusRow struct {
	ID        string     `json:"id" example:"66b1f0c2a4d3e1f2a3b4c5d6"`
	Title     string     `json:"title" example:"Backend Engineer"`
	CreatedAt *time.Time `json:"createdAt"`
	Progress  int        `json:"progress" example:"100"`
	Matched   bool       `json:"matched" example:"true"`
	Top3      []TopMatch `json:"top3"`
}

// MatchRow is one scored profile on the match detail page
type MatchRow struct {
	ProfileID       string  `json:"profileId,omitempty" example:"66b1f0c2a4d3e1f2a3b4c5d6"`
	Name            string  `json:"name" example:"Jane Doe"`
	NameSource      string  `json:"nameSource" example:"profile"`
	SimilarityScore float64 `json:"similarityScore" example:"0.87"`
	ScorePercent    int     `json:"scorePercent" example:"87"`
	Downloadable    bool    `json:"downloadable"`
	DownloadURL     string  `json:"downloadUrl,omitempty" example:"/api/profile-pdf/66b1f0c2a4d3e1f2a3b4c5d6"`
	Placeholder     bool    `json:"placeholder,omitempty"`
}

// MatchDetail is the full match view for a single JD
// @Description Match detail for a job description
type MatchDetail struct {
	JobID     string     `json:"jobId" example:"66b1f0c2a4d3e1f2a3b4c5d6"`
	Title     string     `json:"title" example:"Backend Engineer"`
	Found     bool       `json:"found"`
	CreatedAt *time.Time `json:"createdAt"`
	Progress  int        `json:"progress" example:"100"`
	State     string     `json:"state" example:"Completed"`
	Matched   bool       `json:"matched"`
	Top3      []MatchRow `json:"top3"`
	Results   []MatchRow `json:"results"`
	// Placeholder is set when Results holds display-only filler profiles
	Placeholder bool `json:"placeholder,omitempty"`
}
