package client

import (
	"encoding/json"
	"io"
	"strconv"

	"igsaa-nomination/models"
)

// CandidateListOptions filters and pages the admin candidates list. Zero
// values are omitted from the query.
type CandidateListOptions struct {
	Status       string
	Position     string
	ElectionType string
	Search       string
	SortBy       string
	SortOrder    string
	Page         int
	Limit        int
}

// ListCandidates fetches one page of submissions for review.
func (c *Client) ListCandidates(opts CandidateListOptions) ([]models.Candidate, *models.Pagination, error) {
	params := map[string]string{
		"status":       opts.Status,
		"position":     opts.Position,
		"electionType": opts.ElectionType,
		"search":       opts.Search,
		"sortBy":       opts.SortBy,
		"sortOrder":    opts.SortOrder,
	}
	if opts.Page > 0 {
		params["page"] = strconv.Itoa(opts.Page)
	}
	if opts.Limit > 0 {
		params["limit"] = strconv.Itoa(opts.Limit)
	}

	env, err := c.doJSON("GET", "/admin/candidates"+query(params), nil)
	if err != nil {
		return nil, nil, err
	}

	var candidates []models.Candidate
	if err := json.Unmarshal(env.Data, &candidates); err != nil {
		return nil, nil, err
	}
	return candidates, env.Pagination, nil
}

// GetCandidate fetches a single submission by its server-assigned id.
func (c *Client) GetCandidate(id string) (*models.Candidate, error) {
	env, err := c.doJSON("GET", "/admin/candidates/"+id, nil)
	if err != nil {
		return nil, err
	}
	var candidate models.Candidate
	if err := json.Unmarshal(env.Data, &candidate); err != nil {
		return nil, err
	}
	return &candidate, nil
}

// UpdateCandidateStatus sets the review status, optionally recording notes
// with the change, and returns the updated record.
func (c *Client) UpdateCandidateStatus(id, status, notes string) (*models.Candidate, error) {
	body := map[string]string{"status": status, "notes": notes}

	env, err := c.doJSON("PATCH", "/admin/candidates/"+id+"/status", body)
	if err != nil {
		return nil, err
	}
	var candidate models.Candidate
	if err := json.Unmarshal(env.Data, &candidate); err != nil {
		return nil, err
	}
	return &candidate, nil
}

// AddCandidateNote appends a note to the candidate's review history.
func (c *Client) AddCandidateNote(id, note string) (*models.Candidate, error) {
	body := map[string]string{"notes": note}

	env, err := c.doJSON("POST", "/admin/candidates/"+id+"/notes", body)
	if err != nil {
		return nil, err
	}
	var candidate models.Candidate
	if err := json.Unmarshal(env.Data, &candidate); err != nil {
		return nil, err
	}
	return &candidate, nil
}

// DeleteCandidate permanently removes a submission.
func (c *Client) DeleteCandidate(id string) error {
	_, err := c.doJSON("DELETE", "/admin/candidates/"+id, nil)
	return err
}

// GetStatistics fetches the dashboard aggregates.
func (c *Client) GetStatistics() (*models.Statistics, error) {
	env, err := c.doJSON("GET", "/admin/statistics", nil)
	if err != nil {
		return nil, err
	}
	var stats models.Statistics
	if err := json.Unmarshal(env.Data, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// GetFileInfo fetches upload metadata for an attached document.
func (c *Client) GetFileInfo(fileID string) (*models.FileInfo, error) {
	req, err := c.newRequest("GET", "/upload/info/"+fileID, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{StatusCode: resp.StatusCode, Message: extractMessage(raw)}
	}

	var body struct {
		Success bool            `json:"success"`
		File    models.FileInfo `json:"file"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, err
	}
	return &body.File, nil
}

// DownloadFile fetches the binary content of an attached document for
// preview or saving.
func (c *Client) DownloadFile(fileID string) ([]byte, string, error) {
	req, err := c.newRequest("GET", "/upload/id/"+fileID, nil)
	if err != nil {
		return nil, "", err
	}
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, "", err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, "", &APIError{StatusCode: resp.StatusCode, Message: extractMessage(raw)}
	}
	return raw, resp.Header.Get("Content-Type"), nil
}
