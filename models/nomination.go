package models

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"time"
)

// FormNumberPrefix is the tracking-code prefix for all nominations.
const FormNumberPrefix = "IGSAA"

// Election types accepted on the form. OtherElection unlocks the free-text
// override field.
const (
	ExecutiveElection = "Executive Election"
	ByElection        = "By-Election"
	OtherElection     = "Other"
)

// Logical field names for the file slots. These are the keys used for upload
// progress reporting and for the merged submission payload.
const (
	FieldPassportPhoto     = "passportPhoto"
	FieldStanzaTestimony   = "stanzaTestimony"
	FieldSignature         = "signature"
	FieldSponsorsSignature = "sponsorsSignature"
	FieldOtherDocument     = "otherDocument"
)

// RequiredFileFields is the fixed upload order for the four required slots.
var RequiredFileFields = []string{
	FieldPassportPhoto,
	FieldStanzaTestimony,
	FieldSignature,
	FieldSponsorsSignature,
}

// TriState is a yes/no answer that also supports an explicit "not yet
// answered" state, distinct from a default no.
type TriState int

const (
	Unset TriState = iota
	Yes
	No
)

// IsSet reports whether the question has been answered either way.
func (t TriState) IsSet() bool {
	return t != Unset
}

func (t TriState) String() string {
	switch t {
	case Yes:
		return "Yes"
	case No:
		return "No"
	default:
		return "Unanswered"
	}
}

// MarshalJSON encodes Unset as null so the wire format matches the nullable
// booleans the API stores.
func (t TriState) MarshalJSON() ([]byte, error) {
	switch t {
	case Yes:
		return []byte("true"), nil
	case No:
		return []byte("false"), nil
	default:
		return []byte("null"), nil
	}
}

func (t *TriState) UnmarshalJSON(data []byte) error {
	var v *bool
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch {
	case v == nil:
		*t = Unset
	case *v:
		*t = Yes
	default:
		*t = No
	}
	return nil
}

// Sponsor is one of the two structurally identical sponsor sub-records.
type Sponsor struct {
	Name   string
	Stanza string
	Date   *time.Time
}

// Attachment is a local, unsent file handle held by a form slot until upload.
type Attachment struct {
	Path string
	Name string
	Size int64
}

// FileSet holds the form's attachment slots: four required single-file slots
// and one optional multi-file slot.
type FileSet struct {
	PassportPhoto     *Attachment
	StanzaTestimony   *Attachment
	Signature         *Attachment
	SponsorsSignature *Attachment
	OtherDocuments    []*Attachment
}

// Required returns the attachment in the named required slot, or nil.
func (f *FileSet) Required(field string) *Attachment {
	switch field {
	case FieldPassportPhoto:
		return f.PassportPhoto
	case FieldStanzaTestimony:
		return f.StanzaTestimony
	case FieldSignature:
		return f.Signature
	case FieldSponsorsSignature:
		return f.SponsorsSignature
	default:
		return nil
	}
}

// SetRequired places an attachment in the named required slot.
func (f *FileSet) SetRequired(field string, att *Attachment) error {
	switch field {
	case FieldPassportPhoto:
		f.PassportPhoto = att
	case FieldStanzaTestimony:
		f.StanzaTestimony = att
	case FieldSignature:
		f.Signature = att
	case FieldSponsorsSignature:
		f.SponsorsSignature = att
	default:
		return fmt.Errorf("unknown file field %q", field)
	}
	return nil
}

// NominationRecord is the candidate submission as held by the form: one
// instance per session, mutated in place as the nominee fills the form.
type NominationRecord struct {
	// Section A
	PositionContested string
	ElectionType      string
	OtherElectionType string
	FormNumber        string

	// Section B
	FullName           string
	Gender             string
	DateOfBirth        *time.Time
	YearOfAdmission    string
	YearOfGraduation   string
	MembershipNumber   string
	ResidentialAddress string
	PhoneNumber        string
	Email              string

	// Section C
	IsRegisteredMember TriState
	IsStanzaFinancial  TriState
	HasPaidAllDues     TriState
	HasBeenDisciplined TriState
	DisciplineDetails  string

	// Section D
	PreviousPositions string
	OtherExperience   string

	// Sections E and F
	Sponsor1 Sponsor
	Sponsor2 Sponsor

	// Section G
	DeclarationName string
	DeclarationDate *time.Time

	Files FileSet
}

// NewNominationRecord returns a blank record with a freshly generated form
// number.
func NewNominationRecord() NominationRecord {
	return NominationRecord{FormNumber: NewFormNumber()}
}

// NewFormNumber generates a client-side tracking code, PREFIX-YEAR-NNNN.
// It is advisory only; the server confirms or reassigns it on submission.
func NewFormNumber() string {
	return fmt.Sprintf("%s-%d-%d", FormNumberPrefix, time.Now().Year(), 1000+rand.Intn(9000))
}

// CandidateSubmission is the wire payload posted to the candidate-creation
// endpoint: the form fields with file slots replaced by uploaded file
// identifiers. Raw file handles are never sent.
type CandidateSubmission struct {
	PositionContested string `json:"positionContested"`
	ElectionType      string `json:"electionType"`
	OtherElectionType string `json:"otherElectionType,omitempty"`
	FormNumber        string `json:"formNumber"`
	ElectionYear      int    `json:"electionYear"`

	FullName           string     `json:"fullName"`
	Gender             string     `json:"gender"`
	DateOfBirth        *time.Time `json:"dateOfBirth"`
	YearOfAdmission    string     `json:"yearOfAdmission"`
	YearOfGraduation   string     `json:"yearOfGraduation"`
	MembershipNumber   string     `json:"membershipNumber"`
	ResidentialAddress string     `json:"residentialAddress"`
	PhoneNumber        string     `json:"phoneNumber"`
	Email              string     `json:"email"`

	IsRegisteredMember TriState `json:"isRegisteredMember"`
	IsStanzaFinancial  TriState `json:"isStanzaFinancial"`
	HasPaidAllDues     TriState `json:"hasPaidAllDues"`
	HasBeenDisciplined TriState `json:"hasBeenDisciplined"`
	DisciplineDetails  string   `json:"disciplineDetails,omitempty"`

	PreviousPositions string `json:"previousPositions,omitempty"`
	OtherExperience   string `json:"otherExperience,omitempty"`

	Sponsor1Name   string     `json:"sponsor1Name"`
	Sponsor1Stanza string     `json:"sponsor1Stanza"`
	Sponsor1Date   *time.Time `json:"sponsor1Date"`
	Sponsor2Name   string     `json:"sponsor2Name"`
	Sponsor2Stanza string     `json:"sponsor2Stanza"`
	Sponsor2Date   *time.Time `json:"sponsor2Date"`

	DeclarationName string     `json:"declarationName"`
	DeclarationDate *time.Time `json:"declarationDate"`

	PassportPhoto     string   `json:"passportPhoto"`
	StanzaTestimony   string   `json:"stanzaTestimony"`
	Signature         string   `json:"signature"`
	SponsorsSignature string   `json:"sponsorsSignature"`
	OtherDocuments    []string `json:"otherDocuments,omitempty"`
}
