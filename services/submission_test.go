package services

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"igsaa-nomination/apitest"
	"igsaa-nomination/client"
	"igsaa-nomination/form"
	"igsaa-nomination/models"
)

func newPortal(t *testing.T) (*apitest.Server, *client.Client) {
	t.Helper()
	srv, err := apitest.New()
	if err != nil {
		t.Fatalf("start portal stub: %v", err)
	}
	t.Cleanup(srv.Close)
	if err := srv.SeedUser("Admin", "admin@example.org", "secret123", models.RoleAdmin); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return srv, client.New(srv.URL())
}

func writeTempFile(t *testing.T, name string, size int) *models.Attachment {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, make([]byte, size), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return &models.Attachment{Path: path, Name: name, Size: int64(size)}
}

// completeStore builds a fully filled form with all four required documents
// attached.
func completeStore(t *testing.T) *form.Store {
	t.Helper()
	s := form.New()
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

	for _, field := range models.RequiredFileFields {
		if err := s.Attach(field, writeTempFile(t, field+".png", 256)); err != nil {
			t.Fatalf("attach %s: %v", field, err)
		}
	}
	return s
}

func adminClient(t *testing.T, srv *apitest.Server) *client.Client {
	t.Helper()
	c := client.New(srv.URL())
	result, err := c.Login("admin@example.org", "secret123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	c.SetToken(result.Token)
	return c
}

func TestSubmitSuccess(t *testing.T) {
	srv, c := newPortal(t)
	store := completeStore(t)
	store.AddOtherDocument(writeTempFile(t, "recommendation.pdf", 128))
	oldNumber := store.Record.FormNumber

	progressFields := map[string]bool{}
	coordinator := &Coordinator{
		Client:       c,
		ElectionYear: 2026,
		OnProgress: func(field string, percent int) {
			progressFields[field] = true
		},
	}

	result, err := coordinator.Submit(store)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if result.FormNumber == "" {
		t.Fatal("no form number returned")
	}
	if result.Message != "Nomination submitted successfully! Your Form Number is: "+result.FormNumber {
		t.Errorf("message = %q", result.Message)
	}

	for _, field := range models.RequiredFileFields {
		if !progressFields[field] {
			t.Errorf("no progress reported for %s", field)
		}
	}
	if !progressFields[models.FieldOtherDocument] {
		t.Error("no progress reported for the optional document")
	}

	// Success replaces the whole form.
	if store.Record.FormNumber == oldNumber {
		t.Error("store should hold a fresh form number after submission")
	}
	if store.Record.FullName != "" {
		t.Error("store fields should be blank after submission")
	}
	if len(store.MissingRequiredFiles()) != len(models.RequiredFileFields) {
		t.Error("store files should be cleared after submission")
	}

	// The server holds the full record under the confirmed form number.
	admin := adminClient(t, srv)
	candidates, _, err := admin.ListCandidates(client.CandidateListOptions{Search: result.FormNumber})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(candidates) != 1 {
		t.Fatalf("found %d candidates for %s", len(candidates), result.FormNumber)
	}
	cand := candidates[0]
	if cand.FullName != "Ada Obi" || cand.ElectionYear != 2026 {
		t.Errorf("stored candidate = %+v", cand.CandidateSubmission)
	}
	if cand.PassportPhoto == "" || cand.SponsorsSignature == "" {
		t.Error("stored candidate missing uploaded file identifiers")
	}
	if len(cand.OtherDocuments) != 1 {
		t.Errorf("stored %d optional documents, want 1", len(cand.OtherDocuments))
	}
	if cand.IsRegisteredMember != models.Yes || cand.HasBeenDisciplined != models.No {
		t.Error("eligibility answers lost in transit")
	}
}

func TestSubmitMissingDocumentsGate(t *testing.T) {
	srv, c := newPortal(t)
	store := completeStore(t)
	if err := store.Attach(models.FieldSponsorsSignature, nil); err != nil {
		t.Fatalf("clear slot: %v", err)
	}
	oldNumber := store.Record.FormNumber

	coordinator := &Coordinator{Client: c, ElectionYear: 2026}
	_, err := coordinator.Submit(store)

	var subErr *SubmitError
	if !errors.As(err, &subErr) {
		t.Fatalf("error = %v, want *SubmitError", err)
	}
	if !subErr.FocusDocuments {
		t.Error("missing documents should signal the documents section")
	}
	if subErr.Message != "Please upload all required documents before submitting." {
		t.Errorf("message = %q", subErr.Message)
	}

	// The gate fires before any network call.
	admin := adminClient(t, srv)
	candidates, _, listErr := admin.ListCandidates(client.CandidateListOptions{})
	if listErr != nil {
		t.Fatalf("list: %v", listErr)
	}
	if len(candidates) != 0 {
		t.Error("nothing should be submitted when the gate fails")
	}
	if store.Record.FormNumber != oldNumber {
		t.Error("store should be untouched after a gate failure")
	}
}

func TestSubmitUploadFailureAborts(t *testing.T) {
	srv, c := newPortal(t)
	store := completeStore(t)
	// An extension the storage endpoint rejects.
	if err := store.Attach(models.FieldStanzaTestimony, writeTempFile(t, "testimony.exe", 64)); err != nil {
		t.Fatalf("attach: %v", err)
	}
	oldNumber := store.Record.FormNumber

	coordinator := &Coordinator{Client: c, ElectionYear: 2026}
	_, err := coordinator.Submit(store)

	var subErr *SubmitError
	if !errors.As(err, &subErr) {
		t.Fatalf("error = %v, want *SubmitError", err)
	}
	if subErr.FocusDocuments {
		t.Error("an upload failure is not the local documents gate")
	}
	if subErr.Message != "Invalid file type. Only images and PDFs are allowed" {
		t.Errorf("message = %q", subErr.Message)
	}

	var upErr *client.UploadError
	if !errors.As(err, &upErr) {
		t.Fatal("upload error should be wrapped for inspection")
	}
	if upErr.Field != models.FieldStanzaTestimony {
		t.Errorf("failing field = %s", upErr.Field)
	}

	// Failure leaves the form intact for a retry.
	if store.Record.FormNumber != oldNumber {
		t.Error("store should be untouched after a failed submission")
	}
	if store.Submitting() {
		t.Error("submitting flag should be cleared on failure")
	}

	admin := adminClient(t, srv)
	candidates, _, listErr := admin.ListCandidates(client.CandidateListOptions{})
	if listErr != nil {
		t.Fatalf("list: %v", listErr)
	}
	if len(candidates) != 0 {
		t.Error("no candidate should be created when an upload fails")
	}
}

func TestSubmitOptionalDocumentFailure(t *testing.T) {
	srv, c := newPortal(t)
	store := completeStore(t)
	store.AddOtherDocument(writeTempFile(t, "recommendation.exe", 64))
	oldNumber := store.Record.FormNumber

	coordinator := &Coordinator{Client: c, ElectionYear: 2026}
	_, err := coordinator.Submit(store)

	var subErr *SubmitError
	if !errors.As(err, &subErr) {
		t.Fatalf("error = %v, want *SubmitError", err)
	}
	if subErr.FocusDocuments {
		t.Error("an optional upload failure is not the local documents gate")
	}

	// The failing field identifies the optional slot, not a required one.
	var upErr *client.UploadError
	if !errors.As(err, &upErr) {
		t.Fatal("upload error should be wrapped for inspection")
	}
	if upErr.Field != models.FieldOtherDocument {
		t.Errorf("failing field = %s, want %s", upErr.Field, models.FieldOtherDocument)
	}

	if store.Record.FormNumber != oldNumber {
		t.Error("store should be untouched after a failed submission")
	}

	admin := adminClient(t, srv)
	candidates, _, listErr := admin.ListCandidates(client.CandidateListOptions{})
	if listErr != nil {
		t.Fatalf("list: %v", listErr)
	}
	if len(candidates) != 0 {
		t.Error("no candidate should be created when an optional upload fails")
	}
}
