package apitest

import (
	"encoding/json"
	"time"

	"igsaa-nomination/models"
)

// candidateRow stores one submission: a few indexed columns for filtering
// and sorting, plus the full payload as JSON.
type candidateRow struct {
	ID                string `gorm:"primaryKey;column:id"`
	FormNumber        string `gorm:"column:form_number;uniqueIndex"`
	FullName          string `gorm:"column:full_name"`
	Email             string `gorm:"column:email"`
	PositionContested string `gorm:"column:position_contested"`
	ElectionType      string `gorm:"column:election_type"`
	Status            string `gorm:"column:status"`
	SubmittedAt       time.Time
	ReviewedAt        *time.Time
	Payload           string `gorm:"column:payload"`
	Notes             string `gorm:"column:notes"`
}

func (candidateRow) TableName() string {
	return "candidates"
}

// toCandidate rebuilds the API view from the stored row.
func (r *candidateRow) toCandidate() (models.Candidate, error) {
	var sub models.CandidateSubmission
	if err := json.Unmarshal([]byte(r.Payload), &sub); err != nil {
		return models.Candidate{}, err
	}
	sub.FormNumber = r.FormNumber

	cand := models.Candidate{
		CandidateSubmission: sub,
		ID:                  r.ID,
		Status:              r.Status,
		SubmittedAt:         r.SubmittedAt,
		ReviewedAt:          r.ReviewedAt,
	}
	if r.Notes != "" {
		if err := json.Unmarshal([]byte(r.Notes), &cand.AdminNotes); err != nil {
			return models.Candidate{}, err
		}
	}
	return cand, nil
}

// appendNote adds one entry to the row's append-only note list.
func (r *candidateRow) appendNote(text string) error {
	var notes []models.AdminNote
	if r.Notes != "" {
		if err := json.Unmarshal([]byte(r.Notes), &notes); err != nil {
			return err
		}
	}
	notes = append(notes, models.AdminNote{Note: text, CreatedAt: time.Now()})
	data, err := json.Marshal(notes)
	if err != nil {
		return err
	}
	r.Notes = string(data)
	return nil
}

// storedFile holds an uploaded document.
type storedFile struct {
	ID          string `gorm:"primaryKey;column:id"`
	Filename    string
	ContentType string
	Size        int64
	Data        []byte `gorm:"type:blob"`
	UploadDate  time.Time
}

func (storedFile) TableName() string {
	return "stored_files"
}

// portalUser is an admin-console account.
type portalUser struct {
	ID           string `gorm:"primaryKey;column:id"`
	Name         string
	Email        string `gorm:"uniqueIndex"`
	PasswordHash string `gorm:"column:password_hash"`
	Role         string
	IsActive     bool
	CreatedAt    time.Time
}

func (portalUser) TableName() string {
	return "portal_users"
}

func (u *portalUser) toAdminUser() models.AdminUser {
	created := u.CreatedAt
	return models.AdminUser{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		IsActive:  u.IsActive,
		CreatedAt: &created,
	}
}
