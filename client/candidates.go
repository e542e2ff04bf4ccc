package client

import (
	"bytes"
	"encoding/json"
	"io"

	"igsaa-nomination/models"
)

// CreateCandidate posts a merged nomination payload and returns the
// server-confirmed form number. The server may reassign the client-generated
// number; the returned value is authoritative.
func (c *Client) CreateCandidate(sub *models.CandidateSubmission) (string, error) {
	payload, err := json.Marshal(sub)
	if err != nil {
		return "", err
	}

	req, err := c.newRequest("POST", "/candidates", bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &APIError{StatusCode: resp.StatusCode, Message: extractMessage(raw)}
	}

	var result struct {
		FormNumber string `json:"formNumber"`
	}
	if err := json.Unmarshal(raw, &result); err != nil {
		return "", err
	}
	return result.FormNumber, nil
}
