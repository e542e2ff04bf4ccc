// Package services holds the submission pipeline and certificate rendering.
package services

import (
	"errors"
	"fmt"

	"igsaa-nomination/client"
	"igsaa-nomination/form"
	"igsaa-nomination/models"
)

// Coordinator runs the end-to-end submit action: validate required files,
// upload them sequentially, merge the returned identifiers into the payload,
// post it, and reset the form on success. Nothing is retried automatically;
// a retry after failure re-runs the whole pipeline from scratch.
type Coordinator struct {
	Client       *client.Client
	ElectionYear int

	// OnProgress, when set, receives per-file upload progress.
	OnProgress client.ProgressFunc
}

// Result is the outcome of a successful submission.
type Result struct {
	FormNumber string
	Message    string
}

// SubmitError is a user-facing submission failure. FocusDocuments signals
// the caller to bring the documents section into view.
type SubmitError struct {
	Message        string
	FocusDocuments bool
	Err            error
}

func (e *SubmitError) Error() string {
	return e.Message
}

func (e *SubmitError) Unwrap() error {
	return e.Err
}

// Submit drives the pipeline against the given store. On success the store
// is fully reset (new form number, cleared files); on any failure it is left
// untouched so the user can correct and resubmit.
func (c *Coordinator) Submit(store *form.Store) (*Result, error) {
	// Hard gate, checked before any network call. Deliberately independent
	// of the progress percentage.
	if missing := store.MissingRequiredFiles(); len(missing) > 0 {
		return nil, &SubmitError{
			Message:        "Please upload all required documents before submitting.",
			FocusDocuments: true,
		}
	}

	store.SetSubmitting(true)
	defer store.SetSubmitting(false)

	// Required files, strictly sequential in the fixed field order. The
	// first failure aborts the rest.
	uploads := make(map[string]string, len(models.RequiredFileFields))
	for _, field := range models.RequiredFileFields {
		fileID, err := c.Client.UploadFile(store.Record.Files.Required(field), field, c.OnProgress)
		if err != nil {
			return nil, &SubmitError{Message: err.Error(), Err: err}
		}
		uploads[field] = fileID
	}

	// Optional documents go after every required file has succeeded.
	var otherIDs []string
	for _, att := range store.Record.Files.OtherDocuments {
		fileID, err := c.Client.UploadFile(att, models.FieldOtherDocument, c.OnProgress)
		if err != nil {
			return nil, &SubmitError{Message: err.Error(), Err: err}
		}
		otherIDs = append(otherIDs, fileID)
	}

	payload := c.buildSubmission(&store.Record, uploads, otherIDs)

	formNumber, err := c.Client.CreateCandidate(payload)
	if err != nil {
		return nil, &SubmitError{Message: submitFailureMessage(err), Err: err}
	}

	store.Reset()

	return &Result{
		FormNumber: formNumber,
		Message:    fmt.Sprintf("Nomination submitted successfully! Your Form Number is: %s", formNumber),
	}, nil
}

// buildSubmission merges the uploaded file identifiers into a copy of the
// field record. Raw file handles are not sent.
func (c *Coordinator) buildSubmission(r *models.NominationRecord, uploads map[string]string, otherIDs []string) *models.CandidateSubmission {
	return &models.CandidateSubmission{
		PositionContested: r.PositionContested,
		ElectionType:      r.ElectionType,
		OtherElectionType: r.OtherElectionType,
		FormNumber:        r.FormNumber,
		ElectionYear:      c.ElectionYear,

		FullName:           r.FullName,
		Gender:             r.Gender,
		DateOfBirth:        r.DateOfBirth,
		YearOfAdmission:    r.YearOfAdmission,
		YearOfGraduation:   r.YearOfGraduation,
		MembershipNumber:   r.MembershipNumber,
		ResidentialAddress: r.ResidentialAddress,
		PhoneNumber:        r.PhoneNumber,
		Email:              r.Email,

		IsRegisteredMember: r.IsRegisteredMember,
		IsStanzaFinancial:  r.IsStanzaFinancial,
		HasPaidAllDues:     r.HasPaidAllDues,
		HasBeenDisciplined: r.HasBeenDisciplined,
		DisciplineDetails:  r.DisciplineDetails,

		PreviousPositions: r.PreviousPositions,
		OtherExperience:   r.OtherExperience,

		Sponsor1Name:   r.Sponsor1.Name,
		Sponsor1Stanza: r.Sponsor1.Stanza,
		Sponsor1Date:   r.Sponsor1.Date,
		Sponsor2Name:   r.Sponsor2.Name,
		Sponsor2Stanza: r.Sponsor2.Stanza,
		Sponsor2Date:   r.Sponsor2.Date,

		DeclarationName: r.DeclarationName,
		DeclarationDate: r.DeclarationDate,

		PassportPhoto:     uploads[models.FieldPassportPhoto],
		StanzaTestimony:   uploads[models.FieldStanzaTestimony],
		Signature:         uploads[models.FieldSignature],
		SponsorsSignature: uploads[models.FieldSponsorsSignature],
		OtherDocuments:    otherIDs,
	}
}

// submitFailureMessage prefers the server's verbatim message, falling back
// to a generic retry prompt.
func submitFailureMessage(err error) string {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return "Error submitting nomination. Please try again."
}
