// Package cgm imports readings from a Dexcom Share-compatible CGM service
// and converts them into glucose records.
package cgm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strconv"
	"time"

	"github.com/SantiagoB07/murphy-go/internal/glucose"
)

// Share API endpoints (US region)
const (
	BaseURL = "https://share2.dexcom.com/ShareWebServices/Services"
	AppID   = "d89443d2-327c-4a6f-89e5-496bbb0317db"
)

// Client is an HTTP client for the Share API.
type Client struct {
	Username   string
	Password   string
	HTTPClient *http.Client
	baseURL    string
	sessionID  string
}

// NewClient creates a new Share API client.
func NewClient(username, password string) *Client {
	return &Client{
		Username: username,
		Password: password,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseURL: BaseURL,
	}
}

// Reading is a raw glucose reading as the Share API returns it.
type Reading struct {
	WT    string // Timestamp like "Date(1234567890000)"
	ST    string // System time
	DT    string // Display time
	Value int    // Glucose in mg/dL
	Trend string // Trend direction
}

// authenticate gets a session ID in two steps: account lookup, then login.
func (c *Client) authenticate(ctx context.Context) error {
	accountID, err := c.postForString(ctx, "/General/AuthenticatePublisherAccount", map[string]string{
		"accountName":   c.Username,
		"password":      c.Password,
		"applicationId": AppID,
	})
	if err != nil {
		return fmt.Errorf("account auth failed: %w", err)
	}

	sessionID, err := c.postForString(ctx, "/General/LoginPublisherAccountById", map[string]string{
		"accountId":     accountID,
		"password":      c.Password,
		"applicationId": AppID,
	})
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	c.sessionID = sessionID
	return nil
}

// postForString posts a JSON body and decodes a JSON string response.
func (c *Client) postForString(ctx context.Context, path string, body map[string]string) (string, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("status %d: %s", resp.StatusCode, string(respBody))
	}

	var value string
	if err := json.Unmarshal(respBody, &value); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}
	return value, nil
}

// FetchReadings fetches up to maxCount readings from the last minutes.
func (c *Client) FetchReadings(ctx context.Context, maxCount, minutes int) ([]Reading, error) {
	// Authenticate if we don't have a session
	if c.sessionID == "" {
		if err := c.authenticate(ctx); err != nil {
			return nil, err
		}
	}

	url := fmt.Sprintf("%s/Publisher/ReadPublisherLatestGlucoseValues?sessionId=%s&minutes=%d&maxCount=%d",
		c.baseURL, c.sessionID, minutes, maxCount)

	req, err := http.NewRequestWithContext(ctx, "POST", url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create fetch request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read fetch response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		// Session might have expired, try re-authenticating
		c.sessionID = ""
		if err := c.authenticate(ctx); err != nil {
			return nil, err
		}
		return c.FetchReadings(ctx, maxCount, minutes)
	}

	var readings []Reading
	if err := json.Unmarshal(body, &readings); err != nil {
		return nil, fmt.Errorf("failed to parse readings: %w", err)
	}

	return readings, nil
}

// ParseTimestamp parses a Share timestamp "Date(1234567890000)" to Unix milliseconds.
func ParseTimestamp(wt string) int64 {
	re := regexp.MustCompile(`Date\((\d+)\)`)
	matches := re.FindStringSubmatch(wt)
	if len(matches) < 2 {
		return 0
	}
	ms, err := strconv.ParseInt(matches[1], 10, 64)
	if err != nil {
		return 0
	}
	return ms
}

// ToRecord converts a raw reading into a glucose record. The measurement
// slot is inferred from the reading's local clock time; the ID is derived
// from the timestamp so repeated imports upsert instead of duplicating.
func (r Reading) ToRecord() glucose.Record {
	at := time.UnixMilli(ParseTimestamp(r.WT))
	return glucose.Record{
		ID:         fmt.Sprintf("cgm-%d", at.UnixMilli()),
		Value:      r.Value,
		RecordedAt: at,
		Slot:       glucose.SlotForTime(at),
		Notes:      "imported from CGM",
	}
}
