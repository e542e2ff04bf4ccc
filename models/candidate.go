package models

import "time"

// Review statuses assigned by the election committee.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// Candidate is a persisted submission as returned by the admin API: the
// submission fields plus the server-assigned identifier and review state.
// It is never created client-side and only mutated through API calls.
type Candidate struct {
	CandidateSubmission

	ID          string      `json:"_id"`
	Status      string      `json:"status"`
	SubmittedAt time.Time   `json:"submittedAt"`
	ReviewedAt  *time.Time  `json:"reviewedAt,omitempty"`
	AdminNotes  []AdminNote `json:"adminNotes,omitempty"`
}

// AdminNote is one entry in a candidate's append-only note list.
type AdminNote struct {
	Note      string    `json:"note"`
	CreatedAt time.Time `json:"createdAt"`
}

// Pagination describes one page of an admin list response.
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}

// Statistics is the aggregate view served to the admin dashboard.
type Statistics struct {
	TotalCandidates    int             `json:"totalCandidates"`
	PendingCandidates  int             `json:"pendingCandidates"`
	ApprovedCandidates int             `json:"approvedCandidates"`
	RejectedCandidates int             `json:"rejectedCandidates"`
	Positions          []PositionCount `json:"positions"`
	MonthlySubmissions []MonthlyCount  `json:"monthlySubmissions"`
}

// PositionCount is the number of candidates contesting one position.
type PositionCount struct {
	Position string `json:"position"`
	Count    int    `json:"count"`
}

// MonthlyCount is one bucket of the monthly submissions histogram. The
// bucket key keeps the API's aggregation shape.
type MonthlyCount struct {
	ID    MonthKey `json:"_id"`
	Count int      `json:"count"`
}

// MonthKey identifies a histogram bucket.
type MonthKey struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

// FileInfo is upload metadata returned by the file-info endpoint.
type FileInfo struct {
	Filename    string    `json:"filename"`
	ContentType string    `json:"contentType"`
	Length      int64     `json:"length"`
	UploadDate  time.Time `json:"uploadDate"`
}
