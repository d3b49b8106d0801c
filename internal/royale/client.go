// Package royale wraps the official Clash Royale API and adapts player
// snapshots into solver input.
package royale

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

// BaseURL is the official Clash Royale API endpoint
const BaseURL = "https://api.clashroyale.com/v1"

// APIError is a non-2xx response from the API
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("royale api: status %d: %s", e.StatusCode, e.Message)
}

// SnapshotCard is one card entry in a player snapshot
type SnapshotCard struct {
	Name   string `json:"name"`
	Rarity string `json:"rarity"`
	Level  int    `json:"level"`
	Count  int    `json:"count"`
}

// Snapshot is the player state returned by the API, reduced to the fields
// the planner needs
type Snapshot struct {
	Tag       string         `json:"tag"`
	Name      string         `json:"name"`
	ExpPoints int            `json:"expPoints"`
	Cards     []SnapshotCard `json:"cards"`
}

// Client calls the Clash Royale API with a developer key
type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

// NewClient creates a client. An empty key falls back to the ROYALE_API_KEY
// environment variable.
func NewClient(apiKey string) *Client {
	if apiKey == "" {
		apiKey = os.Getenv("ROYALE_API_KEY")
	}
	return &Client{
		apiKey:  apiKey,
		baseURL: BaseURL,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// PlayerSnapshot fetches a player's current state by tag. The leading # is
// optional and the tag is upper-cased before the request.
func (c *Client) PlayerSnapshot(tag string) (*Snapshot, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("royale api: no API key configured (set ROYALE_API_KEY)")
	}

	normalized := NormalizeTag(tag)
	if normalized == "#" {
		return nil, fmt.Errorf("royale api: empty player tag")
	}

	endpoint := fmt.Sprintf("%s/players/%s", c.baseURL, url.PathEscape(normalized))
	req, err := http.NewRequest(http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("royale api: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("royale api: read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{StatusCode: resp.StatusCode, Message: apiMessage(body)}
	}

	var snapshot Snapshot
	if err := json.Unmarshal(body, &snapshot); err != nil {
		return nil, fmt.Errorf("royale api: parse response: %w", err)
	}
	return &snapshot, nil
}

// NormalizeTag upper-cases a player tag and ensures a single leading #
func NormalizeTag(tag string) string {
	trimmed := strings.ToUpper(strings.TrimSpace(tag))
	trimmed = strings.TrimPrefix(trimmed, "#")
	return "#" + trimmed
}

func apiMessage(body []byte) string {
	var payload struct {
		Reason  string `json:"reason"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Message != "" {
			return payload.Message
		}
		if payload.Reason != "" {
			return payload.Reason
		}
	}
	return strings.TrimSpace(string(body))
}
