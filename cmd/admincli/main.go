// Command admincli is the election committee's review console: it lists and
// inspects submitted nominations, records review decisions and notes, manages
// console accounts, and generates nomination certificates.
//
// Usage:
//
//	admincli login -email admin@example.org -password secret
//	admincli list -status pending
//	admincli approve <id> -notes "Documents verified"
//	admincli certify -all -status approved
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"igsaa-nomination/client"
	"igsaa-nomination/config"
	"igsaa-nomination/models"
	"igsaa-nomination/services"
	"igsaa-nomination/session"
	"igsaa-nomination/utils"
)

func main() {
	config.Load()
	logFile, _ := config.InitLogging()
	if logFile != nil {
		defer logFile.Close()
	}

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "login":
		err = cmdLogin(os.Args[2:])
	case "logout":
		err = cmdLogout()
	case "list":
		err = cmdList(os.Args[2:])
	case "show":
		err = cmdShow(os.Args[2:])
	case "approve":
		err = cmdStatus(models.StatusApproved, os.Args[2:])
	case "reject":
		err = cmdStatus(models.StatusRejected, os.Args[2:])
	case "pending":
		err = cmdStatus(models.StatusPending, os.Args[2:])
	case "note":
		err = cmdNote(os.Args[2:])
	case "delete":
		err = cmdDelete(os.Args[2:])
	case "stats":
		err = cmdStats()
	case "file":
		err = cmdFile(os.Args[2:])
	case "users":
		err = cmdUsers(os.Args[2:])
	case "certify":
		err = cmdCertify(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}

	if err != nil {
		color.Red("%v", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `Usage: admincli <command> [options]

Commands:
  login     -email <email> -password <password>
  logout
  list      [-status s] [-position p] [-election e] [-search q] [-page n] [-limit n] [-sort field] [-order asc|desc]
  show      <id>
  approve   <id> [-notes text]
  reject    <id> [-notes text]
  pending   <id> [-notes text]
  note      <id> -text <note>
  delete    <id>
  stats
  file      <fileId> [-save path]
  users     list | add | update | del
  certify   -id <id> | -all [-status s] [-out dir]`)
}

// apiClient loads the saved session and returns an authenticated client.
func apiClient() (*client.Client, *session.Session, error) {
	sess, err := session.Load()
	if err != nil {
		if err == session.ErrNotLoggedIn {
			return nil, nil, fmt.Errorf("not logged in, run: admincli login")
		}
		return nil, nil, err
	}
	if sess.Expired() {
		return nil, nil, fmt.Errorf("session expired, please login again")
	}

	c := client.New(config.APIBaseURL())
	c.SetToken(sess.Token)
	return c, sess, nil
}

func cmdLogin(args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	fs.Parse(args)

	if *email == "" || *password == "" {
		return fmt.Errorf("both -email and -password are required")
	}

	c := client.New(config.APIBaseURL())
	result, err := c.Login(*email, *password)
	if err != nil {
		return err
	}

	sess := &session.Session{Token: result.Token, User: result.User}
	if err := sess.Save(); err != nil {
		return err
	}

	color.Green("Logged in as %s (%s)", result.User.Name, result.User.Role)
	return nil
}

func cmdLogout() error {
	if err := session.Clear(); err != nil {
		return err
	}
	fmt.Println("Logged out")
	return nil
}

func cmdList(args []string) error {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	opts := client.CandidateListOptions{}
	fs.StringVar(&opts.Status, "status", "", "filter by status")
	fs.StringVar(&opts.Position, "position", "", "filter by position contested")
	fs.StringVar(&opts.ElectionType, "election", "", "filter by election type")
	fs.StringVar(&opts.Search, "search", "", "search name, form number or email")
	fs.StringVar(&opts.SortBy, "sort", "submittedAt", "sort field")
	fs.StringVar(&opts.SortOrder, "order", "desc", "sort order (asc|desc)")
	fs.IntVar(&opts.Page, "page", 1, "page number")
	fs.IntVar(&opts.Limit, "limit", 10, "page size")
	fs.Parse(args)

	c, _, err := apiClient()
	if err != nil {
		return err
	}

	candidates, pagination, err := c.ListCandidates(opts)
	if err != nil {
		return err
	}
	if len(candidates) == 0 {
		fmt.Println("No candidates found")
		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"ID", "Form Number", "Name", "Position", "Status", "Submitted"})
	for i := range candidates {
		cand := &candidates[i]
		table.Append([]string{
			cand.ID,
			cand.FormNumber,
			cand.FullName,
			cand.PositionContested,
			coloredStatus(cand.Status),
			utils.FormatDateTime(cand.SubmittedAt),
		})
	}
	table.Render()

	if pagination != nil {
		fmt.Printf("Page %d of %d (%d candidates)\n", pagination.Page, pagination.Pages, pagination.Total)
	}
	return nil
}

func cmdShow(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: admincli show <id>")
	}

	c, _, err := apiClient()
	if err != nil {
		return err
	}

	cand, err := c.GetCandidate(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("%s  %s\n\n", cand.FormNumber, coloredStatus(cand.Status))

	detail := func(label, value string) {
		if value == "" {
			value = "Not provided"
		}
		fmt.Printf("  %-22s %s\n", label, value)
	}

	fmt.Println("Candidate")
	detail("Full Name", cand.FullName)
	detail("Gender", cand.Gender)
	detail("Date of Birth", utils.FormatDate(cand.DateOfBirth))
	detail("Membership Number", cand.MembershipNumber)
	detail("Admission/Graduation", cand.YearOfAdmission+" / "+cand.YearOfGraduation)
	detail("Address", cand.ResidentialAddress)
	detail("Phone", cand.PhoneNumber)
	detail("Email", cand.Email)

	fmt.Println("\nNomination")
	detail("Position", cand.PositionContested)
	electionType := cand.ElectionType
	if electionType == models.OtherElection && cand.OtherElectionType != "" {
		electionType = cand.OtherElectionType
	}
	detail("Election Type", electionType)
	detail("Election Year", fmt.Sprintf("%d", cand.ElectionYear))

	fmt.Println("\nEligibility")
	detail("Registered Member", cand.IsRegisteredMember.String())
	detail("Stanza Financial", cand.IsStanzaFinancial.String())
	detail("Paid All Dues", cand.HasPaidAllDues.String())
	detail("Disciplined", cand.HasBeenDisciplined.String())
	if cand.DisciplineDetails != "" {
		detail("Details", cand.DisciplineDetails)
	}

	fmt.Println("\nSponsors")
	detail("First Sponsor", fmt.Sprintf("%s (%s), %s",
		cand.Sponsor1Name, cand.Sponsor1Stanza, utils.FormatDate(cand.Sponsor1Date)))
	detail("Second Sponsor", fmt.Sprintf("%s (%s), %s",
		cand.Sponsor2Name, cand.Sponsor2Stanza, utils.FormatDate(cand.Sponsor2Date)))

	fmt.Println("\nDocuments")
	files := map[string]string{
		models.FieldPassportPhoto:     cand.PassportPhoto,
		models.FieldStanzaTestimony:   cand.StanzaTestimony,
		models.FieldSignature:         cand.Signature,
		models.FieldSponsorsSignature: cand.SponsorsSignature,
	}
	for _, field := range models.RequiredFileFields {
		detail(field, files[field])
	}
	for i, fileID := range cand.OtherDocuments {
		detail(fmt.Sprintf("%s %d", models.FieldOtherDocument, i+1), fileID)
	}

	fmt.Println("\nReview")
	detail("Submitted", utils.FormatDateTime(cand.SubmittedAt))
	if cand.ReviewedAt != nil {
		detail("Reviewed", utils.FormatDateTime(*cand.ReviewedAt))
	}
	for _, note := range cand.AdminNotes {
		fmt.Printf("  [%s] %s\n", utils.FormatDateTime(note.CreatedAt), note.Note)
	}
	return nil
}

func cmdStatus(status string, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: admincli %s <id> [-notes text]", status)
	}
	id := args[0]

	fs := flag.NewFlagSet("status", flag.ExitOnError)
	notes := fs.String("notes", "", "review note to record with the change")
	fs.Parse(args[1:])

	c, sess, err := apiClient()
	if err != nil {
		return err
	}
	if !sess.HasRole(models.RoleAdmin, models.RoleModerator) {
		return fmt.Errorf("your role (%s) cannot change candidate status", sess.User.Role)
	}

	cand, err := c.UpdateCandidateStatus(id, status, *notes)
	if err != nil {
		return err
	}

	color.Green("%s is now %s", cand.FormNumber, cand.Status)
	return nil
}

func cmdNote(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: admincli note <id> -text <note>")
	}
	id := args[0]

	fs := flag.NewFlagSet("note", flag.ExitOnError)
	text := fs.String("text", "", "note text")
	fs.Parse(args[1:])

	if *text == "" {
		return fmt.Errorf("-text is required")
	}

	c, sess, err := apiClient()
	if err != nil {
		return err
	}
	if !sess.HasRole(models.RoleAdmin, models.RoleModerator) {
		return fmt.Errorf("your role (%s) cannot add notes", sess.User.Role)
	}

	cand, err := c.AddCandidateNote(id, *text)
	if err != nil {
		return err
	}

	fmt.Printf("Note added to %s (%d total)\n", cand.FormNumber, len(cand.AdminNotes))
	return nil
}

func cmdDelete(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: admincli delete <id>")
	}

	c, sess, err := apiClient()
	if err != nil {
		return err
	}
	if !sess.HasRole(models.RoleAdmin) {
		return fmt.Errorf("only admins can delete candidates")
	}

	if err := c.DeleteCandidate(args[0]); err != nil {
		return err
	}
	fmt.Println("Candidate deleted")
	return nil
}

func cmdStats() error {
	c, _, err := apiClient()
	if err != nil {
		return err
	}

	stats, err := c.GetStatistics()
	if err != nil {
		return err
	}

	fmt.Printf("Total candidates: %d\n", stats.TotalCandidates)
	fmt.Printf("  %s %d\n", coloredStatus(models.StatusPending), stats.PendingCandidates)
	fmt.Printf("  %s %d\n", coloredStatus(models.StatusApproved), stats.ApprovedCandidates)
	fmt.Printf("  %s %d\n", coloredStatus(models.StatusRejected), stats.RejectedCandidates)

	if len(stats.Positions) > 0 {
		fmt.Println()
		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"Position", "Candidates"})
		for _, p := range stats.Positions {
			table.Append([]string{p.Position, fmt.Sprintf("%d", p.Count)})
		}
		table.Render()
	}

	if len(stats.MonthlySubmissions) > 0 {
		fmt.Println()
		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"Month", "Submissions"})
		for _, m := range stats.MonthlySubmissions {
			table.Append([]string{fmt.Sprintf("%02d/%d", m.ID.Month, m.ID.Year), fmt.Sprintf("%d", m.Count)})
		}
		table.Render()
	}
	return nil
}

func cmdFile(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: admincli file <fileId> [-save path]")
	}
	fileID := args[0]

	fs := flag.NewFlagSet("file", flag.ExitOnError)
	savePath := fs.String("save", "", "write the file content to this path")
	fs.Parse(args[1:])

	c, _, err := apiClient()
	if err != nil {
		return err
	}

	info, err := c.GetFileInfo(fileID)
	if err != nil {
		return err
	}
	fmt.Printf("%s  %s  %s  uploaded %s\n",
		info.Filename, info.ContentType, utils.FormatFileSize(info.Length),
		utils.FormatDateTime(info.UploadDate))

	if *savePath == "" {
		return nil
	}

	data, _, err := c.DownloadFile(fileID)
	if err != nil {
		return err
	}
	if err := os.WriteFile(*savePath, data, 0o644); err != nil {
		return err
	}
	fmt.Printf("Saved to %s\n", *savePath)
	return nil
}

func cmdUsers(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: admincli users <list|add|update|del>")
	}

	c, sess, err := apiClient()
	if err != nil {
		return err
	}
	if !sess.HasRole(models.RoleAdmin) {
		return fmt.Errorf("only admins can manage users")
	}

	switch args[0] {
	case "list":
		users, err := c.ListUsers()
		if err != nil {
			return err
		}
		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"ID", "Name", "Email", "Role", "Active"})
		for _, u := range users {
			active := "yes"
			if !u.IsActive {
				active = "no"
			}
			table.Append([]string{u.ID, u.Name, u.Email, u.Role, active})
		}
		table.Render()
		return nil

	case "add":
		fs := flag.NewFlagSet("users add", flag.ExitOnError)
		name := fs.String("name", "", "display name")
		email := fs.String("email", "", "login email")
		password := fs.String("password", "", "initial password (min 6 characters)")
		role := fs.String("role", models.RoleViewer, "role: admin, moderator or viewer")
		fs.Parse(args[1:])

		created, err := c.CreateUser(&models.AdminUser{
			Name:     *name,
			Email:    *email,
			Password: *password,
			Role:     *role,
			IsActive: true,
		})
		if err != nil {
			return err
		}
		color.Green("Created %s (%s)", created.Email, created.Role)
		return nil

	case "update":
		if len(args) < 2 {
			return fmt.Errorf("usage: admincli users update <id> [options]")
		}
		fs := flag.NewFlagSet("users update", flag.ExitOnError)
		name := fs.String("name", "", "new display name")
		email := fs.String("email", "", "new login email")
		password := fs.String("password", "", "new password")
		role := fs.String("role", "", "new role")
		active := fs.Bool("active", true, "whether the account can log in")
		fs.Parse(args[2:])

		updated, err := c.UpdateUser(args[1], &models.AdminUser{
			Name:     *name,
			Email:    *email,
			Password: *password,
			Role:     *role,
			IsActive: *active,
		})
		if err != nil {
			return err
		}
		color.Green("Updated %s", updated.Email)
		return nil

	case "del":
		if len(args) < 2 {
			return fmt.Errorf("usage: admincli users del <id>")
		}
		if err := c.DeleteUser(args[1]); err != nil {
			return err
		}
		fmt.Println("User deleted")
		return nil

	default:
		return fmt.Errorf("unknown users command %q", args[0])
	}
}

func cmdCertify(args []string) error {
	fs := flag.NewFlagSet("certify", flag.ExitOnError)
	id := fs.String("id", "", "generate for a single candidate")
	all := fs.Bool("all", false, "generate for every matching candidate")
	status := fs.String("status", "", "with -all, restrict to this status")
	outDir := fs.String("out", config.CertificateDir(), "output directory")
	fs.Parse(args)

	if (*id == "") == !*all {
		return fmt.Errorf("specify exactly one of -id or -all")
	}

	c, _, err := apiClient()
	if err != nil {
		return err
	}
	generator := services.NewCertificateGenerator(*outDir)

	if *id != "" {
		cand, err := c.GetCandidate(*id)
		if err != nil {
			return err
		}
		path, err := generator.Generate(cand)
		if err != nil {
			return err
		}
		color.Green("Certificate written to %s", path)
		return nil
	}

	// Page through every matching candidate before rendering.
	var candidates []models.Candidate
	opts := client.CandidateListOptions{Status: *status, Page: 1, Limit: 50}
	for {
		page, pagination, err := c.ListCandidates(opts)
		if err != nil {
			return err
		}
		candidates = append(candidates, page...)
		if pagination == nil || opts.Page >= pagination.Pages {
			break
		}
		opts.Page++
	}
	if len(candidates) == 0 {
		fmt.Println("No candidates found")
		return nil
	}

	log.Printf("Generating %d certificates into %s", len(candidates), *outDir)
	result := generator.GenerateBatch(candidates)
	if result.Failed > 0 {
		color.Yellow("Generated %d certificates, %d failed", result.Generated, result.Failed)
		return nil
	}
	color.Green("Generated %d certificates", result.Generated)
	return nil
}

func coloredStatus(status string) string {
	switch status {
	case models.StatusApproved:
		return color.GreenString(status)
	case models.StatusRejected:
		return color.RedString(status)
	default:
		return color.YellowString(strings.ToLower(status))
	}
}
