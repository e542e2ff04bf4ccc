package apitest

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"igsaa-nomination/models"
)

func (s *Server) createCandidate(c *gin.Context) {
	var sub models.CandidateSubmission
	if err := c.ShouldBindJSON(&sub); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	// Every required slot must reference an uploaded file.
	required := map[string]string{
		models.FieldPassportPhoto:     sub.PassportPhoto,
		models.FieldStanzaTestimony:   sub.StanzaTestimony,
		models.FieldSignature:         sub.Signature,
		models.FieldSponsorsSignature: sub.SponsorsSignature,
	}
	for field, fileID := range required {
		if fileID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Missing required document: " + field})
			return
		}
		var count int64
		s.DB.Model(&storedFile{}).Where("id = ?", fileID).Count(&count)
		if count == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Unknown file for " + field})
			return
		}
	}

	// Confirm the client's form number, reassigning on collision.
	formNumber := sub.FormNumber
	for {
		if formNumber == "" {
			formNumber = models.NewFormNumber()
		}
		var count int64
		s.DB.Model(&candidateRow{}).Where("form_number = ?", formNumber).Count(&count)
		if count == 0 {
			break
		}
		formNumber = ""
	}
	sub.FormNumber = formNumber

	payload, err := json.Marshal(&sub)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to save submission"})
		return
	}

	row := candidateRow{
		ID:                uuid.NewString(),
		FormNumber:        formNumber,
		FullName:          sub.FullName,
		Email:             sub.Email,
		PositionContested: sub.PositionContested,
		ElectionType:      sub.ElectionType,
		Status:            models.StatusPending,
		SubmittedAt:       time.Now(),
		Payload:           string(payload),
	}
	if err := s.DB.Create(&row).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to save submission"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "formNumber": formNumber})
}

var sortColumns = map[string]string{
	"submittedAt":       "submitted_at",
	"fullName":          "full_name",
	"status":            "status",
	"positionContested": "position_contested",
}

func (s *Server) listCandidates(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if limit < 1 {
		limit = 10
	}

	query := s.DB.Model(&candidateRow{})
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if position := c.Query("position"); position != "" {
		query = query.Where("position_contested = ?", position)
	}
	if electionType := c.Query("electionType"); electionType != "" {
		query = query.Where("election_type = ?", electionType)
	}
	if search := c.Query("search"); search != "" {
		like := "%" + search + "%"
		query = query.Where("full_name LIKE ? OR form_number LIKE ? OR email LIKE ?", like, like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch candidates"})
		return
	}

	column, ok := sortColumns[c.DefaultQuery("sortBy", "submittedAt")]
	if !ok {
		column = "submitted_at"
	}
	order := "desc"
	if c.Query("sortOrder") == "asc" {
		order = "asc"
	}

	var rows []candidateRow
	if err := query.Order(column + " " + order).
		Offset((page - 1) * limit).Limit(limit).
		Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch candidates"})
		return
	}

	candidates := make([]models.Candidate, 0, len(rows))
	for i := range rows {
		cand, err := rows[i].toCandidate()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Corrupt candidate record"})
			return
		}
		candidates = append(candidates, cand)
	}

	pages := int((total + int64(limit) - 1) / int64(limit))
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    candidates,
		"pagination": models.Pagination{
			Page:  page,
			Limit: limit,
			Total: int(total),
			Pages: pages,
		},
	})
}

func (s *Server) findCandidate(c *gin.Context) (*candidateRow, bool) {
	var row candidateRow
	if err := s.DB.First(&row, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Candidate not found"})
		return nil, false
	}
	return &row, true
}

func (s *Server) respondCandidate(c *gin.Context, row *candidateRow) {
	cand, err := row.toCandidate()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Corrupt candidate record"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": cand})
}

func (s *Server) getCandidate(c *gin.Context) {
	row, ok := s.findCandidate(c)
	if !ok {
		return
	}
	s.respondCandidate(c, row)
}

func (s *Server) updateStatus(c *gin.Context) {
	row, ok := s.findCandidate(c)
	if !ok {
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
		Notes  string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	switch req.Status {
	case models.StatusPending, models.StatusApproved, models.StatusRejected:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid status"})
		return
	}

	now := time.Now()
	row.Status = req.Status
	row.ReviewedAt = &now
	if req.Notes != "" {
		if err := row.appendNote(req.Notes); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to record note"})
			return
		}
	}

	if err := s.DB.Save(row).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update status"})
		return
	}
	s.respondCandidate(c, row)
}

func (s *Server) addNote(c *gin.Context) {
	row, ok := s.findCandidate(c)
	if !ok {
		return
	}

	var req struct {
		Notes string `json:"notes" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	if err := row.appendNote(req.Notes); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to record note"})
		return
	}
	if err := s.DB.Save(row).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to record note"})
		return
	}
	s.respondCandidate(c, row)
}

func (s *Server) deleteCandidate(c *gin.Context) {
	row, ok := s.findCandidate(c)
	if !ok {
		return
	}
	if err := s.DB.Delete(&candidateRow{}, "id = ?", row.ID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to delete candidate"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Candidate deleted"})
}

func (s *Server) statistics(c *gin.Context) {
	countByStatus := func(status string) int {
		var n int64
		s.DB.Model(&candidateRow{}).Where("status = ?", status).Count(&n)
		return int(n)
	}

	var total int64
	s.DB.Model(&candidateRow{}).Count(&total)

	var rows []candidateRow
	if err := s.DB.Model(&candidateRow{}).
		Select("position_contested", "submitted_at").
		Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to compute statistics"})
		return
	}

	positionCounts := map[string]int{}
	monthlyCounts := map[models.MonthKey]int{}
	for i := range rows {
		positionCounts[rows[i].PositionContested]++
		key := models.MonthKey{
			Month: int(rows[i].SubmittedAt.Month()),
			Year:  rows[i].SubmittedAt.Year(),
		}
		monthlyCounts[key]++
	}

	positions := make([]models.PositionCount, 0, len(positionCounts))
	for position, count := range positionCounts {
		positions = append(positions, models.PositionCount{Position: position, Count: count})
	}
	monthly := make([]models.MonthlyCount, 0, len(monthlyCounts))
	for key, count := range monthlyCounts {
		monthly = append(monthly, models.MonthlyCount{ID: key, Count: count})
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": models.Statistics{
			TotalCandidates:    int(total),
			PendingCandidates:  countByStatus(models.StatusPending),
			ApprovedCandidates: countByStatus(models.StatusApproved),
			RejectedCandidates: countByStatus(models.StatusRejected),
			Positions:          positions,
			MonthlySubmissions: monthly,
		},
	})
}
