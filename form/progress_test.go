package form

import (
	"testing"
	"time"

	"igsaa-nomination/models"
)

// fullStore returns a store with every counted field filled using an
// Executive Election.
func fullStore() *Store {
	s := New()
	r := &s.Record
	date := time.Date(1990, 5, 12, 0, 0, 0, 0, time.UTC)

	r.PositionContested = "President"
	r.ElectionType = models.ExecutiveElection

	r.FullName = "Ada Obi"
	r.Gender = "Female"
	r.DateOfBirth = &date
	r.YearOfAdmission = "2004"
	r.YearOfGraduation = "2010"
	r.MembershipNumber = "M-1234"
	r.ResidentialAddress = "12 College Road"
	r.PhoneNumber = "+2348012345678"
	r.Email = "ada@example.org"

	r.IsRegisteredMember = models.Yes
	r.IsStanzaFinancial = models.Yes
	r.HasPaidAllDues = models.Yes
	r.HasBeenDisciplined = models.No

	r.Sponsor1 = models.Sponsor{Name: "Bola Ade", Stanza: "Alpha", Date: &date}
	r.Sponsor2 = models.Sponsor{Name: "Chika Eze", Stanza: "Beta", Date: &date}

	r.DeclarationName = "Ada Obi"
	r.DeclarationDate = &date

	att := &models.Attachment{Path: "/tmp/f.png", Name: "f.png", Size: 10}
	for _, field := range models.RequiredFileFields {
		r.Files.SetRequired(field, att)
	}
	return s
}

func TestProgressBlankForm(t *testing.T) {
	if got := New().Progress(); got != 0 {
		t.Errorf("blank form progress = %d, want 0", got)
	}
}

func TestProgressFullForm(t *testing.T) {
	if got := fullStore().Progress(); got != 100 {
		t.Errorf("full form progress = %d, want 100", got)
	}
}

func TestProgressSingleField(t *testing.T) {
	s := New()
	s.Record.FullName = "Ada Obi"
	// round(1 * 100 / 28) = 4
	if got := s.Progress(); got != 4 {
		t.Errorf("one field = %d%%, want 4%%", got)
	}
}

func TestProgressWhitespaceDoesNotCount(t *testing.T) {
	s := New()
	s.Record.FullName = "   "
	if got := s.Progress(); got != 0 {
		t.Errorf("whitespace-only field = %d%%, want 0%%", got)
	}
}

func TestProgressOtherElectionNeedsDetail(t *testing.T) {
	complete := fullStore()
	complete.Record.ElectionType = models.OtherElection
	complete.Record.OtherElectionType = "Special Convention"
	if got := complete.Progress(); got != 100 {
		t.Errorf("Other with detail = %d%%, want 100%%", got)
	}

	missing := fullStore()
	missing.Record.ElectionType = models.OtherElection
	missing.Record.OtherElectionType = ""
	if got := missing.Progress(); got == 100 {
		t.Error("Other without detail should not reach 100%")
	}
}

func TestProgressNoCountsSameAsYes(t *testing.T) {
	yes := fullStore()
	no := fullStore()
	no.Record.IsRegisteredMember = models.No
	no.Record.HasPaidAllDues = models.No
	if yes.Progress() != no.Progress() {
		t.Errorf("answering No scored differently: yes=%d no=%d", yes.Progress(), no.Progress())
	}

	unset := fullStore()
	unset.Record.IsRegisteredMember = models.Unset
	if unset.Progress() >= yes.Progress() {
		t.Errorf("unanswered flag should score lower: %d vs %d", unset.Progress(), yes.Progress())
	}
}

func TestProgressWhileSubmitting(t *testing.T) {
	s := New()
	s.SetSubmitting(true)
	if got := s.Progress(); got != 100 {
		t.Errorf("in-flight progress = %d, want 100", got)
	}
	s.SetSubmitting(false)
	if got := s.Progress(); got != 0 {
		t.Errorf("progress after flag cleared = %d, want 0", got)
	}
}

func TestProgressNeverExceedsHundred(t *testing.T) {
	s := fullStore()
	// Filling the free-text override on a non-Other election type adds no
	// extra point.
	s.Record.OtherElectionType = "ignored"
	s.Record.DisciplineDetails = "ignored"
	if got := s.Progress(); got != 100 {
		t.Errorf("progress = %d, want capped at 100", got)
	}
}
