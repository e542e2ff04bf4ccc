package services

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"igsaa-nomination/models"
	"igsaa-nomination/utils"
)

// DefaultBatchDelay paces batch generation so one run does not flood the
// output pipeline. It is a pacing device only, not a synchronization
// guarantee.
const DefaultBatchDelay = 300 * time.Millisecond

// CertificateGenerator renders one fixed-layout nomination certificate per
// candidate. Rendering is pure: no network calls, no mutation of the record.
type CertificateGenerator struct {
	OutputDir  string
	BatchDelay time.Duration
}

// NewCertificateGenerator writes certificates into outputDir.
func NewCertificateGenerator(outputDir string) *CertificateGenerator {
	return &CertificateGenerator{OutputDir: outputDir, BatchDelay: DefaultBatchDelay}
}

// BatchResult is the aggregate outcome of a batch run. Per-item errors are
// logged, not returned.
type BatchResult struct {
	Generated int
	Failed    int
}

// statusColor maps a review status to its band color: pending amber,
// approved green, rejected red.
func statusColor(status string) (r, g, b int) {
	switch status {
	case models.StatusApproved:
		return 16, 185, 129
	case models.StatusRejected:
		return 239, 68, 68
	default:
		return 245, 158, 11
	}
}

// Generate renders the certificate for one candidate and returns the path
// of the written PDF.
func (g *CertificateGenerator) Generate(cand *models.Candidate) (string, error) {
	if err := os.MkdirAll(g.OutputDir, 0o755); err != nil {
		return "", err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("Nomination Certificate %s", cand.FormNumber), false)
	pdf.AddPage()

	// Header
	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 10, "IGSAA ALUMNI ASSOCIATION", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(0, 8, fmt.Sprintf("%d Election - Certificate of Nomination", cand.ElectionYear), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	// Status band
	red, green, blue := statusColor(cand.Status)
	pdf.SetFillColor(red, green, blue)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 12, strings.ToUpper(cand.Status), "", 1, "C", true, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(6)

	g.section(pdf, "Candidate")
	g.row(pdf, "Full Name", cand.FullName)
	g.row(pdf, "Form Number", cand.FormNumber)
	g.row(pdf, "Membership Number", cand.MembershipNumber)
	g.row(pdf, "Date of Birth", utils.FormatDate(cand.DateOfBirth))
	pdf.Ln(4)

	g.section(pdf, "Nomination")
	g.row(pdf, "Position Contested", cand.PositionContested)
	electionType := cand.ElectionType
	if electionType == models.OtherElection && cand.OtherElectionType != "" {
		electionType = cand.OtherElectionType
	}
	g.row(pdf, "Election Type", electionType)
	pdf.Ln(4)

	g.section(pdf, "Sponsors")
	g.row(pdf, "First Sponsor", fmt.Sprintf("%s (%s), %s",
		cand.Sponsor1Name, cand.Sponsor1Stanza, utils.FormatDate(cand.Sponsor1Date)))
	g.row(pdf, "Second Sponsor", fmt.Sprintf("%s (%s), %s",
		cand.Sponsor2Name, cand.Sponsor2Stanza, utils.FormatDate(cand.Sponsor2Date)))
	pdf.Ln(4)

	g.section(pdf, "Declaration")
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, fmt.Sprintf(
		"I, %s, hereby declare that the information provided in this form is true and correct.",
		cand.DeclarationName), "", "L", false)
	pdf.SetFont("Helvetica", "", 10)
	g.row(pdf, "Declaration Date", utils.FormatDate(cand.DeclarationDate))
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.CellFormat(0, 5, fmt.Sprintf("Submitted %s - Generated %s",
		utils.FormatDateTime(cand.SubmittedAt), utils.FormatDateTime(time.Now())), "", 1, "C", false, 0, "")

	path := filepath.Join(g.OutputDir, fmt.Sprintf("certificate-%s.pdf", cand.FormNumber))
	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", err
	}
	return path, nil
}

// GenerateBatch runs the per-candidate renderer over every listed candidate
// with a fixed inter-item delay, and reports aggregate counts.
func (g *CertificateGenerator) GenerateBatch(candidates []models.Candidate) BatchResult {
	delay := g.BatchDelay
	if delay <= 0 {
		delay = DefaultBatchDelay
	}

	var result BatchResult
	for i := range candidates {
		if i > 0 {
			time.Sleep(delay)
		}
		if _, err := g.Generate(&candidates[i]); err != nil {
			log.Printf("certificate for %s failed: %v", candidates[i].FormNumber, err)
			result.Failed++
			continue
		}
		result.Generated++
	}
	return result
}

func (g *CertificateGenerator) section(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, title, "B", 1, "L", false, 0, "")
	pdf.Ln(1)
}

func (g *CertificateGenerator) row(pdf *gofpdf.Fpdf, label, value string) {
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(55, 7, label, "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	if value == "" {
		value = "Not provided"
	}
	pdf.CellFormat(0, 7, value, "", 1, "L", false, 0, "")
}
