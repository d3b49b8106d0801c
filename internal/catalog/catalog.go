// Package catalog provides card metadata lookups backed by RoyaleAPI's open
// dataset, used to resolve a card name to its rarity when the player input
// omits it.
package catalog

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// DatasetURL is RoyaleAPI's public card dataset
const DatasetURL = "https://royaleapi.github.io/cr-api-data/json/cards.json"

// Entry is one card in the dataset
type Entry struct {
	Key    string `json:"key"`
	Name   string `json:"name"`
	Rarity string `json:"rarity"`
	Elixir int    `json:"elixir"`
	Type   string `json:"type"`
}

// Catalog indexes the card dataset by name and key
type Catalog struct {
	cards  []Entry
	byName map[string]Entry
	byKey  map[string]Entry
}

// New fetches the live dataset, falling back to a local JSON file when the
// fetch fails. fallbackPath may be empty, in which case a fetch failure is
// returned to the caller.
func New(fallbackPath string) (*Catalog, error) {
	cards, fetchErr := fetchLive()
	if fetchErr != nil {
		if fallbackPath == "" {
			return nil, fmt.Errorf("fetch card dataset: %w", fetchErr)
		}
		data, err := os.ReadFile(fallbackPath)
		if err != nil {
			return nil, fmt.Errorf("fetch card dataset: %v; read fallback: %w", fetchErr, err)
		}
		if err := json.Unmarshal(data, &cards); err != nil {
			return nil, fmt.Errorf("parse fallback dataset: %w", err)
		}
	}
	return FromEntries(cards), nil
}

// FromEntries builds a catalog from an already-loaded dataset
func FromEntries(cards []Entry) *Catalog {
	c := &Catalog{
		cards:  cards,
		byName: make(map[string]Entry, len(cards)),
		byKey:  make(map[string]Entry, len(cards)),
	}
	for _, entry := range cards {
		c.byName[strings.ToLower(entry.Name)] = entry
		c.byKey[strings.ToLower(entry.Key)] = entry
	}
	return c
}

func fetchLive() ([]Entry, error) {
	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Get(DatasetURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("dataset returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var cards []Entry
	if err := json.Unmarshal(body, &cards); err != nil {
		return nil, err
	}
	return cards, nil
}

// Find looks a card up by display name or dataset key
func (c *Catalog) Find(identifier string) (Entry, bool) {
	token := strings.ToLower(strings.TrimSpace(identifier))
	if entry, ok := c.byName[token]; ok {
		return entry, true
	}
	entry, ok := c.byKey[token]
	return entry, ok
}

// Rarity returns a card's rarity by name or key
func (c *Catalog) Rarity(identifier string) (string, bool) {
	entry, ok := c.Find(identifier)
	if !ok {
		return "", false
	}
	return entry.Rarity, true
}

// Require looks a card up and errors if it is not in the dataset
func (c *Catalog) Require(identifier string) (Entry, error) {
	entry, ok := c.Find(identifier)
	if !ok {
		return Entry{}, fmt.Errorf("card %q is not present in the card dataset", identifier)
	}
	return entry, nil
}
