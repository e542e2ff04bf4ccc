// Command nominate submits a nomination form to the portal API. The form is
// described in a JSON file; attachments are local paths uploaded before the
// submission is posted.
//
// Usage:
//
//	nominate -form nomination.json [-check]
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/fatih/color"

	"igsaa-nomination/client"
	"igsaa-nomination/config"
	"igsaa-nomination/form"
	"igsaa-nomination/models"
	"igsaa-nomination/services"
	"igsaa-nomination/utils"
)

// formFile is the on-disk form layout. Dates use dd/MM/yyyy, matching the
// printed form. File entries are local paths.
type formFile struct {
	PositionContested string `json:"positionContested"`
	ElectionType      string `json:"electionType"`
	OtherElectionType string `json:"otherElectionType"`

	FullName           string `json:"fullName"`
	Gender             string `json:"gender"`
	DateOfBirth        string `json:"dateOfBirth"`
	YearOfAdmission    string `json:"yearOfAdmission"`
	YearOfGraduation   string `json:"yearOfGraduation"`
	MembershipNumber   string `json:"membershipNumber"`
	ResidentialAddress string `json:"residentialAddress"`
	PhoneNumber        string `json:"phoneNumber"`
	Email              string `json:"email"`

	IsRegisteredMember *bool  `json:"isRegisteredMember"`
	IsStanzaFinancial  *bool  `json:"isStanzaFinancial"`
	HasPaidAllDues     *bool  `json:"hasPaidAllDues"`
	HasBeenDisciplined *bool  `json:"hasBeenDisciplined"`
	DisciplineDetails  string `json:"disciplineDetails"`

	PreviousPositions string `json:"previousPositions"`
	OtherExperience   string `json:"otherExperience"`

	Sponsor1 sponsorEntry `json:"sponsor1"`
	Sponsor2 sponsorEntry `json:"sponsor2"`

	DeclarationName string `json:"declarationName"`
	DeclarationDate string `json:"declarationDate"`

	Files struct {
		PassportPhoto     string   `json:"passportPhoto"`
		StanzaTestimony   string   `json:"stanzaTestimony"`
		Signature         string   `json:"signature"`
		SponsorsSignature string   `json:"sponsorsSignature"`
		OtherDocuments    []string `json:"otherDocuments"`
	} `json:"files"`
}

type sponsorEntry struct {
	Name   string `json:"name"`
	Stanza string `json:"stanza"`
	Date   string `json:"date"`
}

func main() {
	formPath := flag.String("form", "", "path to the nomination form JSON file")
	checkOnly := flag.Bool("check", false, "report completion and exit without submitting")
	apiURL := flag.String("api", "", "portal API base URL (overrides API_BASE_URL)")
	flag.Parse()

	if *formPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	config.Load()
	logFile, _ := config.InitLogging()
	if logFile != nil {
		defer logFile.Close()
	}

	store, err := loadForm(*formPath)
	if err != nil {
		log.Fatalf("Failed to load form: %v", err)
	}

	pct := store.Progress()
	fmt.Printf("Form %s\n", store.Record.FormNumber)
	fmt.Printf("Completion: %d%%\n", pct)
	if missing := store.MissingRequiredFiles(); len(missing) > 0 {
		color.Yellow("Missing required documents:")
		for _, field := range missing {
			fmt.Printf("  - %s\n", field)
		}
	}

	if *checkOnly {
		return
	}
	if pct < 100 {
		color.Red("Form is incomplete (%d%%). Fill in the remaining fields before submitting.", pct)
		os.Exit(1)
	}

	baseURL := config.APIBaseURL()
	if *apiURL != "" {
		baseURL = *apiURL
	}

	coordinator := &services.Coordinator{
		Client:       client.New(baseURL),
		ElectionYear: config.ElectionYear(),
		OnProgress:   printUploadProgress,
	}

	result, err := coordinator.Submit(store)
	if err != nil {
		color.Red("%v", err)
		os.Exit(1)
	}

	color.Green("%s", result.Message)
	fmt.Println("Keep the form number for tracking your nomination.")
}

// loadForm parses the form file into a store, attaching local files.
func loadForm(path string) (*form.Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var f formFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	store := form.New()
	r := &store.Record

	r.PositionContested = f.PositionContested
	r.ElectionType = f.ElectionType
	r.OtherElectionType = f.OtherElectionType

	r.FullName = f.FullName
	r.Gender = f.Gender
	r.YearOfAdmission = f.YearOfAdmission
	r.YearOfGraduation = f.YearOfGraduation
	r.MembershipNumber = f.MembershipNumber
	r.ResidentialAddress = f.ResidentialAddress
	r.PhoneNumber = f.PhoneNumber
	r.Email = f.Email

	if r.DateOfBirth, err = utils.ParseDate(f.DateOfBirth); err != nil {
		return nil, err
	}

	r.IsRegisteredMember = triState(f.IsRegisteredMember)
	r.IsStanzaFinancial = triState(f.IsStanzaFinancial)
	r.HasPaidAllDues = triState(f.HasPaidAllDues)
	r.HasBeenDisciplined = triState(f.HasBeenDisciplined)
	r.DisciplineDetails = f.DisciplineDetails

	r.PreviousPositions = f.PreviousPositions
	r.OtherExperience = f.OtherExperience

	if r.Sponsor1, err = sponsor(f.Sponsor1); err != nil {
		return nil, err
	}
	if r.Sponsor2, err = sponsor(f.Sponsor2); err != nil {
		return nil, err
	}

	r.DeclarationName = f.DeclarationName
	if r.DeclarationDate, err = utils.ParseDate(f.DeclarationDate); err != nil {
		return nil, err
	}

	base := filepath.Dir(path)
	required := map[string]string{
		models.FieldPassportPhoto:     f.Files.PassportPhoto,
		models.FieldStanzaTestimony:   f.Files.StanzaTestimony,
		models.FieldSignature:         f.Files.Signature,
		models.FieldSponsorsSignature: f.Files.SponsorsSignature,
	}
	for _, field := range models.RequiredFileFields {
		filePath := required[field]
		if filePath == "" {
			continue
		}
		att, err := attachment(base, filePath)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", field, err)
		}
		if err := store.Attach(field, att); err != nil {
			return nil, err
		}
	}
	for _, filePath := range f.Files.OtherDocuments {
		att, err := attachment(base, filePath)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", models.FieldOtherDocument, err)
		}
		store.AddOtherDocument(att)
	}

	return store, nil
}

// attachment resolves a file path relative to the form file and captures its
// name and size.
func attachment(base, filePath string) (*models.Attachment, error) {
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(base, filePath)
	}
	info, err := os.Stat(filePath)
	if err != nil {
		return nil, err
	}
	return &models.Attachment{
		Path: filePath,
		Name: info.Name(),
		Size: info.Size(),
	}, nil
}

func triState(v *bool) models.TriState {
	switch {
	case v == nil:
		return models.Unset
	case *v:
		return models.Yes
	default:
		return models.No
	}
}

func sponsor(e sponsorEntry) (models.Sponsor, error) {
	date, err := utils.ParseDate(e.Date)
	if err != nil {
		return models.Sponsor{}, err
	}
	return models.Sponsor{Name: e.Name, Stanza: e.Stanza, Date: date}, nil
}

func printUploadProgress(field string, percent int) {
	fmt.Printf("\r  Uploading %-18s %3d%%", field, percent)
	if percent >= 100 {
		fmt.Println()
	}
}
