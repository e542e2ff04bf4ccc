// Package form holds the nomination form state and its completion model.
package form

import (
	"igsaa-nomination/models"
)

// Store owns the form's field values for one session. It is created blank
// when the form mounts and fully replaced by Reset after a successful
// submission. There are no concurrent writers; the owning view mutates it
// directly between calls.
type Store struct {
	Record models.NominationRecord

	submitting bool
}

// New returns a store with a blank record and a fresh form number.
func New() *Store {
	return &Store{Record: models.NewNominationRecord()}
}

// Reset replaces the record wholesale: blank values, cleared files, and a
// newly generated form number. No state survives across submissions.
func (s *Store) Reset() {
	s.Record = models.NewNominationRecord()
	s.submitting = false
}

// SetSubmitting flips the in-flight flag. While set, edits are expected to
// stop and Progress reports 100.
func (s *Store) SetSubmitting(v bool) {
	s.submitting = v
}

// Submitting reports whether a submission is in flight.
func (s *Store) Submitting() bool {
	return s.submitting
}

// Attach places a local file handle in the named required slot.
func (s *Store) Attach(field string, att *models.Attachment) error {
	return s.Record.Files.SetRequired(field, att)
}

// AddOtherDocument appends a file to the optional multi-file slot.
func (s *Store) AddOtherDocument(att *models.Attachment) {
	s.Record.Files.OtherDocuments = append(s.Record.Files.OtherDocuments, att)
}

// MissingRequiredFiles lists the required slots that are still empty, in the
// fixed field order. This is the hard gate checked at submit time; it is
// deliberately not folded into the progress percentage.
func (s *Store) MissingRequiredFiles() []string {
	var missing []string
	for _, field := range models.RequiredFileFields {
		if s.Record.Files.Required(field) == nil {
			missing = append(missing, field)
		}
	}
	return missing
}
