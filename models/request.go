package models

// ErrorResponse represents an API error response
// @Description Standard error response
type ErrorResponse struct {
	Error   string `json:"error" example:"Missing required fields"`
	Code    int    `json:"code" example:"400"`
	Details string `json:"details,omitempty" example:"title is required"`
}

// HealthResponse represents health check response
// @Description Server health status
type HealthResponse struct {
	Status    string `json:"status" example:"healthy"`
	Version   string `json:"version" example:"1.0.0"`
	Timestamp string `json:"timestamp" example:"2024-01-15T10:30:00Z"`
	Database  string `json:"database,omitempty" example:"ok"`
	Agent     string `json:"agent,omitempty" example:"ok"`
}

// CompareRequest triggers an agent comparison run for one JD
// @Description Comparison request
type CompareRequest struct {
	JDID           string   `json:"jdId" binding:"required" example:"66b1f0c2a4d3e1f2a3b4c5d6"`
	ProfileIDs     []string `json:"profileIds" binding:"required,min=1"`
	RecruiterEmail string   `json:"recruiterEmail,omitempty" example:"recruiter@example.com"`
}

// CompareMatch is one ranked match returned by the agent backend
type CompareMatch struct {
	ProfileName     string  `json:"profileName" example:"Jane_Doe_Resume"`
	ApplicantName   string  `json:"applicantName" example:"Jane Doe"`
	SimilarityScore float64 `json:"similarityScore" example:"0.88"`
	MatchScore      int     `json:"matchScore" example:"88"`
	Justification   string  `json:"justification" example:"Strong Go and Kubernetes experience"`
}

// CompareResponse is the result of a comparison run
// @Description Comparison result
type CompareResponse struct {
	Status  string         `json:"status" example:"success"`
	Message string         `json:"message,omitempty"`
	JDID    string         `json:"jdId"`
	Matches []CompareMatch `json:"matches"`
}

// ExtractedDocument is text extracted from an uploaded file
type ExtractedDocument struct {
	Filename string `json:"filename" example:"resume.pdf"`
	Content  string `json:"content"`
}
