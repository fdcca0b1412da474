package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/KhaiNghiTranNguyen/AI-Challenge-3ITech/internal/catalog"
)

var (
	// ErrImageTooLarge maps HTTP 413 from the analyze endpoint.
	ErrImageTooLarge = errors.New("image too large")

	// ErrRequestFailed covers every other analyze failure: transport
	// errors, unparseable bodies, and server-reported errors. The
	// wrapped message carries the server's text when there is one.
	ErrRequestFailed = errors.New("analysis request failed")
)

// Client consumes the canteen backend's analyze and food-info
// endpoints. It implements catalog.Source.
type Client struct {
	baseURL string
	httpc   *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: 60 * time.Second},
	}
}

// Analyze submits a base64-encoded tray image (without the data-URL
// prefix) and returns the parsed analysis result.
func (c *Client) Analyze(ctx context.Context, imageBase64 string) (*AnalysisResult, error) {
	body := &bytes.Buffer{}
	form := multipart.NewWriter(body)
	if err := form.WriteField("imageData", imageBase64); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	if err := form.Close(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/analyze", body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	req.Header.Set("Content-Type", form.FormDataContentType())

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusRequestEntityTooLarge {
		return nil, ErrImageTooLarge
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr errorResponse
		if decodeErr := json.NewDecoder(resp.Body).Decode(&apiErr); decodeErr == nil && apiErr.Error != "" {
			return nil, fmt.Errorf("%w: %s", ErrRequestFailed, apiErr.Error)
		}
		return nil, fmt.Errorf("%w: unexpected status %d", ErrRequestFailed, resp.StatusCode)
	}

	var result AnalysisResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	if result.Error != "" {
		return nil, fmt.Errorf("%w: %s", ErrRequestFailed, result.Error)
	}

	return &result, nil
}

// FoodInfo fetches the canteen menu. A success=false body counts as a
// fetch failure so the catalog can fall back to detected names.
func (c *Client) FoodInfo(ctx context.Context) ([]catalog.Entry, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/food-info", nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var payload foodInfoResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("malformed food info response: %w", err)
	}
	if !payload.Success {
		if payload.Error != "" {
			return nil, fmt.Errorf("food info rejected: %s", payload.Error)
		}
		return nil, errors.New("food info rejected")
	}

	entries := make([]catalog.Entry, len(payload.FoodInfo))
	for i, f := range payload.FoodInfo {
		entries[i] = catalog.Entry{
			Name:     f.Name,
			Price:    int(f.Price),
			Calories: int(f.Calories),
			Category: f.Category,
		}
	}
	return entries, nil
}
