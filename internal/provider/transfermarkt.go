// Package provider implements the player data lookup client against a
// Transfermarkt-style REST API (player search, profile, achievements and
// club search endpoints).
package provider

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"footballer-guess-bot/internal/model"
)

// ErrNotFound is returned when the API has no data for the requested entity.
var ErrNotFound = errors.New("not found")

// DefaultTimeout bounds a single API request.
const DefaultTimeout = 10 * time.Second

// Client is an HTTP client for the player data API.
type Client struct {
	baseURL string
	httpc   *http.Client
}

// Config holds provider client configuration.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// NewClient creates a client for the API at cfg.BaseURL.
func NewClient(cfg *Config) *Client {
	timeout := DefaultTimeout
	if cfg != nil && cfg.Timeout > 0 {
		timeout = cfg.Timeout
	}
	base := ""
	if cfg != nil {
		base = strings.TrimRight(cfg.BaseURL, "/")
	}
	return &Client{
		baseURL: base,
		httpc:   &http.Client{Timeout: timeout},
	}
}

// searchResponse mirrors the /players/search and /clubs/search payloads.
type searchResponse struct {
	Results []searchResult `json:"results"`
}

type searchResult struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Country string `json:"country"`
}

// profileResponse mirrors the /players/{id}/profile payload.
type profileResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Position struct {
		Main string `json:"main"`
	} `json:"position"`
	Club struct {
		Name string `json:"name"`
	} `json:"club"`
	Citizenship []string `json:"citizenship"`
	Age         string   `json:"age"`
}

// achievementsResponse mirrors the /players/{id}/achievements payload.
type achievementsResponse struct {
	Achievements []struct {
		Title   string `json:"title"`
		Count   int    `json:"count"`
		Details []struct {
			Season struct {
				Name string `json:"name"`
			} `json:"season"`
		} `json:"details"`
	} `json:"achievements"`
}

// getJSON performs a GET request and decodes the JSON response into out.
func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d for %s", resp.StatusCode, path)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// Search looks up players by name. An empty slice means no match.
func (c *Client) Search(ctx context.Context, name string) ([]model.Candidate, error) {
	var sr searchResponse
	if err := c.getJSON(ctx, "/players/search/"+url.PathEscape(name), &sr); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	candidates := make([]model.Candidate, 0, len(sr.Results))
	for _, r := range sr.Results {
		candidates = append(candidates, model.Candidate{ID: r.ID, Name: r.Name})
	}
	return candidates, nil
}

// Profile fetches the full player record for an id.
// The achievements list is not populated here; see Achievements.
func (c *Client) Profile(ctx context.Context, id string) (*model.PlayerRecord, error) {
	var pr profileResponse
	if err := c.getJSON(ctx, "/players/"+url.PathEscape(id)+"/profile", &pr); err != nil {
		return nil, err
	}

	// Age is served as a string; unknown or unparseable ages become 0 and
	// age questions degrade to an "attribute unavailable" answer.
	age, err := strconv.Atoi(strings.TrimSpace(pr.Age))
	if err != nil {
		age = 0
	}

	return &model.PlayerRecord{
		ID:          pr.ID,
		Name:        pr.Name,
		Position:    pr.Position.Main,
		Club:        pr.Club.Name,
		Citizenship: pr.Citizenship,
		Age:         age,
	}, nil
}

// Achievements fetches the player's trophy list. An empty list is a valid
// "no achievements", not an error.
func (c *Client) Achievements(ctx context.Context, id string) ([]model.Achievement, error) {
	var ar achievementsResponse
	if err := c.getJSON(ctx, "/players/"+url.PathEscape(id)+"/achievements", &ar); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	achievements := make([]model.Achievement, 0, len(ar.Achievements))
	for _, a := range ar.Achievements {
		seasons := make([]string, 0, len(a.Details))
		for _, d := range a.Details {
			if d.Season.Name != "" {
				seasons = append(seasons, d.Season.Name)
			}
		}
		achievements = append(achievements, model.Achievement{
			Title:   a.Title,
			Count:   a.Count,
			Seasons: seasons,
		})
	}
	return achievements, nil
}

// ClubCountry resolves a club name to the country of its league.
// Returns ErrNotFound when the club cannot be resolved.
func (c *Client) ClubCountry(ctx context.Context, clubName string) (string, error) {
	if clubName == "" {
		return "", ErrNotFound
	}

	var sr searchResponse
	if err := c.getJSON(ctx, "/clubs/search/"+url.PathEscape(clubName), &sr); err != nil {
		return "", err
	}
	if len(sr.Results) == 0 || sr.Results[0].Country == "" {
		return "", ErrNotFound
	}
	return sr.Results[0].Country, nil
}
