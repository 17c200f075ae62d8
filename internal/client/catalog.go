package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/reelmatch/backend/internal/dto"
	"github.com/reelmatch/backend/internal/model"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_catalog.go github.com/reelmatch/backend/internal/client CatalogClient

// Candidate is the display metadata the external catalog resolves for an id.
// The core never stores it; votes and matches carry ids only.
type Candidate struct {
	ID        uint    `json:"id"`
	Kind      string  `json:"kind"`
	Title     string  `json:"title"`
	PosterURL string  `json:"posterUrl"`
	Score     float64 `json:"score"`
	Year      int     `json:"year"`
}

// FeedConfig selects one finite, ordered page of candidates. The same config
// always yields the same sequence, so every participant in a session swipes
// through the same feed.
type FeedConfig struct {
	Kind model.CandidateKind
	Page int
}

type CatalogClient interface {
	ListCandidates(ctx context.Context, config FeedConfig) ([]Candidate, error)
	ResolveCandidate(ctx context.Context, kind model.CandidateKind, id uint) (Candidate, error)
}

const (
	catalogTimeout    = 10 * time.Second
	candidateCacheTTL = 6 * time.Hour
)

type catalogClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	cache      *redis.Client
}

func NewCatalogClient(cfg dto.Config, cache *redis.Client) CatalogClient {
	return &catalogClient{
		baseURL: cfg.CatalogBaseURL,
		apiKey:  cfg.CatalogAPIKey,
		httpClient: &http.Client{
			Timeout: catalogTimeout,
		},
		cache: cache,
	}
}

type catalogEntry struct {
	ID          uint    `json:"id"`
	Title       string  `json:"title"`
	Name        string  `json:"name"`
	PosterPath  string  `json:"poster_path"`
	VoteAverage float64 `json:"vote_average"`
	ReleaseDate string  `json:"release_date"`
	FirstAirOn  string  `json:"first_air_date"`
}

type discoverResponse struct {
	Results []catalogEntry `json:"results"`
}

func (c *catalogClient) ListCandidates(ctx context.Context, config FeedConfig) ([]Candidate, error) {
	page := config.Page
	if page < 1 {
		page = 1
	}

	endpoint := fmt.Sprintf("%s/discover/%s?api_key=%s&sort_by=popularity.desc&page=%d",
		c.baseURL, config.Kind, url.QueryEscape(c.apiKey), page)

	var response discoverResponse
	if err := c.getJSON(ctx, endpoint, &response); err != nil {
		return nil, fmt.Errorf("%w: %v", dto.ErrInternalFailure, err)
	}

	candidates := make([]Candidate, 0, len(response.Results))
	for _, entry := range response.Results {
		candidates = append(candidates, entry.toCandidate(config.Kind))
	}

	return candidates, nil
}

func (c *catalogClient) ResolveCandidate(ctx context.Context, kind model.CandidateKind, id uint) (Candidate, error) {
	cacheKey := fmt.Sprintf("catalog:%s:%d", kind, id)

	if c.cache != nil {
		cached, err := c.cache.Get(ctx, cacheKey).Result()
		if err == nil {
			var candidate Candidate
			if err := json.Unmarshal([]byte(cached), &candidate); err == nil {
				return candidate, nil
			}
		}
	}

	endpoint := fmt.Sprintf("%s/%s/%d?api_key=%s", c.baseURL, kind, id, url.QueryEscape(c.apiKey))

	var entry catalogEntry
	if err := c.getJSON(ctx, endpoint, &entry); err != nil {
		return Candidate{}, fmt.Errorf("%w: %v", dto.ErrInternalFailure, err)
	}

	candidate := entry.toCandidate(kind)

	if c.cache != nil {
		encoded, err := json.Marshal(candidate)
		if err == nil {
			if err := c.cache.Set(ctx, cacheKey, encoded, candidateCacheTTL).Err(); err != nil {
				logrus.Errorf("Failed to cache candidate %s: %v", cacheKey, err)
			}
		}
	}

	return candidate, nil
}

func (c *catalogClient) getJSON(ctx context.Context, endpoint string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("catalog responded with status %d", resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

func (e catalogEntry) toCandidate(kind model.CandidateKind) Candidate {
	title := e.Title
	if title == "" {
		title = e.Name
	}

	releaseDate := e.ReleaseDate
	if releaseDate == "" {
		releaseDate = e.FirstAirOn
	}
	year := 0
	if len(releaseDate) >= 4 {
		if parsed, err := strconv.Atoi(releaseDate[:4]); err == nil {
			year = parsed
		}
	}

	return Candidate{
		ID:        e.ID,
		Kind:      kind.String(),
		Title:     title,
		PosterURL: e.PosterPath,
		Score:     e.VoteAverage,
		Year:      year,
	}
}
