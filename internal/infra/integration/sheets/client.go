package sheets

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Client is a thin wrapper over the spreadsheet values API: append a row, read
// a range, update a single cell. No logic of its own.
type Client struct {
	baseURL       string
	spreadsheetID string
	accessToken   string
	http          *http.Client
}

func NewClient(accessToken, baseURL, spreadsheetID string) *Client {
	return &Client{
		baseURL:       baseURL,
		spreadsheetID: spreadsheetID,
		accessToken:   accessToken,
		http:          &http.Client{Timeout: 10 * time.Second},
	}
}

// Get reads all rows in the given A1 range.
func (c *Client) Get(ctx context.Context, rng string) ([][]string, error) {
	endpoint := fmt.Sprintf("%s/v4/spreadsheets/%s/values/%s",
		c.baseURL, c.spreadsheetID, url.PathEscape(rng))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	c.setHeaders(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sheets get request: %w", err)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return nil, err
	}

	var response valueRange
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("sheets get decode: %w", err)
	}
	return response.Values, nil
}

// Append adds one row after the last row of the given range.
func (c *Client) Append(ctx context.Context, rng string, row []string) error {
	endpoint := fmt.Sprintf("%s/v4/spreadsheets/%s/values/%s:append?valueInputOption=RAW",
		c.baseURL, c.spreadsheetID, url.PathEscape(rng))

	payload := valueRange{Values: [][]string{row}}
	jsonBody, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("sheets append marshal: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewBuffer(jsonBody))
	if err != nil {
		return err
	}
	c.setHeaders(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("sheets append request: %w", err)
	}
	defer resp.Body.Close()

	return checkStatus(resp)
}

// Update overwrites a single cell addressed by an A1 range like "Sheet1!D5".
func (c *Client) Update(ctx context.Context, rng string, value string) error {
	endpoint := fmt.Sprintf("%s/v4/spreadsheets/%s/values/%s?valueInputOption=RAW",
		c.baseURL, c.spreadsheetID, url.PathEscape(rng))

	payload := valueRange{Values: [][]string{{value}}}
	jsonBody, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("sheets update marshal: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, endpoint, bytes.NewBuffer(jsonBody))
	if err != nil {
		return err
	}
	c.setHeaders(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("sheets update request: %w", err)
	}
	defer resp.Body.Close()

	return checkStatus(resp)
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+c.accessToken)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "StorySellLanding/1.0")
}

func checkStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode <= 299 {
		return nil
	}

	body, _ := io.ReadAll(resp.Body)
	var apiErr errorResponse
	if json.Unmarshal(body, &apiErr) == nil && apiErr.Error.Message != "" {
		return fmt.Errorf("sheets api rejected (status %d): %s", resp.StatusCode, apiErr.Error.Message)
	}
	return fmt.Errorf("sheets api rejected (status %d)", resp.StatusCode)
}
