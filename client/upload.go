package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"igsaa-nomination/models"
)

// ProgressFunc receives fractional upload progress, 0-100, keyed by the
// logical field name so callers can render independent progress bars.
type ProgressFunc func(field string, percent int)

// Upload failure categories, mapped from the transport outcome.
type UploadErrorKind int

const (
	UploadErrorGeneric UploadErrorKind = iota
	UploadErrorTooLarge
	UploadErrorInvalidType
	UploadErrorNetwork
)

// UploadError is a categorized upload failure. Message is what the user
// sees, verbatim.
type UploadError struct {
	Field   string
	Kind    UploadErrorKind
	Message string
}

func (e *UploadError) Error() string {
	return e.Message
}

// UploadFile performs a single multipart upload of the attachment under the
// given logical field name and returns the opaque file identifier assigned
// by the storage endpoint. Progress is reported through onProgress as bytes
// are sent. There is no retry; the caller decides what a failure aborts.
func (c *Client) UploadFile(att *models.Attachment, field string, onProgress ProgressFunc) (string, error) {
	if att == nil {
		return "", &UploadError{Field: field, Kind: UploadErrorGeneric, Message: "Error uploading file"}
	}

	f, err := os.Open(att.Path)
	if err != nil {
		return "", &UploadError{Field: field, Kind: UploadErrorGeneric, Message: "Error uploading file"}
	}
	defer f.Close()

	name := att.Name
	if name == "" {
		name = filepath.Base(att.Path)
	}

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", name)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(part, f); err != nil {
		return "", err
	}
	if err := writer.Close(); err != nil {
		return "", err
	}

	body := &progressReader{
		r:          bytes.NewReader(buf.Bytes()),
		total:      int64(buf.Len()),
		field:      field,
		onProgress: onProgress,
	}

	req, err := c.newRequest("POST", "/upload/single", body)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.ContentLength = body.total

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		// No response received at all.
		return "", &UploadError{Field: field, Kind: UploadErrorNetwork,
			Message: "Network error. Please check your connection"}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &UploadError{Field: field, Kind: UploadErrorNetwork,
			Message: "Network error. Please check your connection"}
	}

	switch {
	case resp.StatusCode == http.StatusRequestEntityTooLarge:
		return "", &UploadError{Field: field, Kind: UploadErrorTooLarge,
			Message: "File too large. Maximum size is 10MB"}
	case resp.StatusCode == http.StatusBadRequest:
		return "", &UploadError{Field: field, Kind: UploadErrorInvalidType,
			Message: "Invalid file type. Only images and PDFs are allowed"}
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		msg := extractMessage(raw)
		if msg == "" {
			msg = fmt.Sprintf("Error uploading %s", field)
		}
		return "", &UploadError{Field: field, Kind: UploadErrorGeneric, Message: msg}
	}

	var result struct {
		FileID string `json:"fileId"`
	}
	if err := json.Unmarshal(raw, &result); err != nil || result.FileID == "" {
		return "", &UploadError{Field: field, Kind: UploadErrorGeneric, Message: "Error uploading file"}
	}
	return result.FileID, nil
}

// progressReader reports the fraction of the request body consumed by the
// transport, rounded to a whole percentage.
type progressReader struct {
	r          io.Reader
	total      int64
	sent       int64
	last       int
	field      string
	onProgress ProgressFunc
}

func (p *progressReader) Read(b []byte) (int, error) {
	n, err := p.r.Read(b)
	if n > 0 && p.onProgress != nil && p.total > 0 {
		p.sent += int64(n)
		pct := int(math.Round(float64(p.sent) * 100 / float64(p.total)))
		if pct > 100 {
			pct = 100
		}
		if pct != p.last {
			p.last = pct
			p.onProgress(p.field, pct)
		}
	}
	return n, err
}
