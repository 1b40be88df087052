package youtube

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	gobreaker "github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	"wellbeing-video-service/internal/metrics"
	"wellbeing-video-service/internal/models"
)

const (
	DefaultBaseURL = "https://www.googleapis.com/youtube/v3"
	WatchURLPrefix = "https://www.youtube.com/watch?v="

	breakerName       = "youtube-api"
	defaultMaxResults = 5
	maxResultsCap     = 50
)

var (
	// ErrMissingAPIKey is returned by every call when no credential is configured.
	ErrMissingAPIKey = errors.New("youtube API key not configured")
	// ErrNoResults is returned when a search matches no videos.
	ErrNoResults = errors.New("no videos found")
)

// Options configures a Client.
type Options struct {
	APIKey            string
	BaseURL           string
	Timeout           time.Duration
	RequestsPerSecond float64
}

// Client is the YouTube Data API v3 client. It is safe for concurrent use and
// is not modified after construction.
type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
	limiter *rate.Limiter
	cb      *gobreaker.CircuitBreaker[[]byte]
}

// NewClient creates a new YouTube API client.
func NewClient(opts Options) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 15 * time.Second
	}

	limit := rate.Inf
	if opts.RequestsPerSecond > 0 {
		limit = rate.Limit(opts.RequestsPerSecond)
	}

	metrics.CircuitBreakerState.WithLabelValues(breakerName).Set(0)

	return &Client{
		apiKey:  strings.TrimSpace(opts.APIKey),
		baseURL: strings.TrimRight(opts.BaseURL, "/"),
		http: &http.Client{
			Timeout: opts.Timeout,
		},
		limiter: rate.NewLimiter(limit, 1),
		cb:      newBreaker(),
	}
}

func newBreaker() *gobreaker.CircuitBreaker[[]byte] {
	return gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: 3,
		Interval:    time.Minute,
		Timeout:     2 * time.Minute,
		// Open at a 60% failure rate once there are at least 10 requests.
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < 10 {
				return false
			}
			ratio := float64(counts.TotalFailures) / float64(counts.Requests)
			if ratio >= 0.6 {
				slog.Warn("opening youtube circuit breaker", "failures", counts.TotalFailures, "failure_rate", ratio)
				return true
			}
			return false
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			slog.Info("circuit breaker state change", "name", name, "from", from.String(), "to", to.String())
			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateValue(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, from.String(), to.String()).Inc()
		},
	})
}

func stateValue(s gobreaker.State) float64 {
	switch s {
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return 0
	}
}

// ---- YouTube Response Types ----

type searchListResponse struct {
	Items []searchResult `json:"items"`
}

type searchResult struct {
	ID struct {
		Kind    string `json:"kind"`
		VideoID string `json:"videoId"`
	} `json:"id"`
}

type videoListResponse struct {
	Items []videoItem `json:"items"`
}

type videoItem struct {
	ID             string         `json:"id"`
	Snippet        videoSnippet   `json:"snippet"`
	ContentDetails contentDetails `json:"contentDetails"`
}

type videoSnippet struct {
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	ChannelTitle string     `json:"channelTitle"`
	Tags         []string   `json:"tags"`
	Thumbnails   thumbnails `json:"thumbnails"`
}

type thumbnails struct {
	Default *thumbnail `json:"default"`
	Medium  *thumbnail `json:"medium"`
	High    *thumbnail `json:"high"`
}

type thumbnail struct {
	URL string `json:"url"`
}

type contentDetails struct {
	Duration string `json:"duration"`
}

// ---- Client Methods ----

// SearchVideos runs a search and fetches full details for every hit.
func (c *Client) SearchVideos(ctx context.Context, query string, f models.SearchFilters) ([]models.CandidateVideo, error) {
	ids, err := c.Search(ctx, query, f)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, ErrNoResults
	}
	return c.VideoDetails(ctx, ids)
}

// Search returns the IDs of the videos matching query.
func (c *Client) Search(ctx context.Context, query string, f models.SearchFilters) ([]string, error) {
	maxResults := f.MaxResults
	if maxResults <= 0 {
		maxResults = defaultMaxResults
	}
	safeSearch := f.SafeSearch
	if safeSearch == "" {
		safeSearch = "moderate"
	}

	params := url.Values{}
	params.Set("part", "id,snippet")
	params.Set("q", query)
	params.Set("type", "video")
	params.Set("maxResults", strconv.Itoa(min(maxResults, maxResultsCap)))
	params.Set("order", "relevance")
	params.Set("videoDuration", durationFilter(f.Duration))
	params.Set("safeSearch", safeSearch)
	params.Set("videoDefinition", "any")
	params.Set("videoEmbeddable", "true")
	if f.Language != "" {
		params.Set("relevanceLanguage", f.Language)
	}

	slog.Debug("searching youtube", "query", query, "max_results", maxResults)
	var result searchListResponse
	if err := c.getJSON(ctx, "search", params, &result); err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(result.Items))
	for _, item := range result.Items {
		if item.ID.VideoID != "" {
			ids = append(ids, item.ID.VideoID)
		}
	}
	return ids, nil
}

// VideoDetails fetches snippet and content details for the given video IDs.
func (c *Client) VideoDetails(ctx context.Context, ids []string) ([]models.CandidateVideo, error) {
	params := url.Values{}
	params.Set("part", "snippet,contentDetails,statistics")
	params.Set("id", strings.Join(ids, ","))

	slog.Debug("fetching youtube video details", "count", len(ids))
	var result videoListResponse
	if err := c.getJSON(ctx, "videos", params, &result); err != nil {
		return nil, err
	}

	videos := make([]models.CandidateVideo, 0, len(result.Items))
	for _, item := range result.Items {
		videos = append(videos, toCandidate(item))
	}
	return videos, nil
}

func toCandidate(v videoItem) models.CandidateVideo {
	seconds, err := ParseDuration(v.ContentDetails.Duration)
	if err != nil {
		slog.Warn("could not parse video duration", "video_id", v.ID, "duration", v.ContentDetails.Duration)
	}
	tags := v.Snippet.Tags
	if tags == nil {
		tags = []string{}
	}
	return models.CandidateVideo{
		ID:              v.ID,
		Title:           v.Snippet.Title,
		Description:     v.Snippet.Description,
		ThumbnailURL:    v.Snippet.Thumbnails.best(),
		ContentURL:      WatchURLPrefix + v.ID,
		DurationSeconds: seconds,
		ChannelTitle:    v.Snippet.ChannelTitle,
		Tags:            tags,
	}
}

func (t thumbnails) best() string {
	for _, th := range []*thumbnail{t.High, t.Medium, t.Default} {
		if th != nil && th.URL != "" {
			return th.URL
		}
	}
	return ""
}

// durationFilter maps a preferred duration to the API's videoDuration values.
func durationFilter(d models.Duration) string {
	switch d {
	case models.DurationShort, models.DurationMedium, models.DurationLong:
		return string(d)
	default:
		return "any"
	}
}

func (c *Client) getJSON(ctx context.Context, endpoint string, params url.Values, out any) error {
	if c.apiKey == "" {
		metrics.CatalogRequests.WithLabelValues(endpoint, "skipped").Inc()
		return ErrMissingAPIKey
	}
	params.Set("key", c.apiKey)
	target := c.baseURL + "/" + endpoint + "?" + params.Encode()

	body, err := c.cb.Execute(func() ([]byte, error) {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter: %w", err)
		}
		return c.doGet(ctx, target)
	})
	if err != nil {
		outcome := "failure"
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			outcome = "rejected"
		}
		metrics.CatalogRequests.WithLabelValues(endpoint, outcome).Inc()
		return fmt.Errorf("youtube %s: %w", endpoint, err)
	}
	metrics.CatalogRequests.WithLabelValues(endpoint, "success").Inc()

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", endpoint, err)
	}
	return nil
}

func (c *Client) doGet(ctx context.Context, target string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("HTTP request failed: %w", redact(err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{Code: resp.StatusCode, Body: string(body)}
	}
	return body, nil
}

// redact strips the request URL, which carries the API key, from transport errors.
func redact(err error) error {
	var uerr *url.Error
	if errors.As(err, &uerr) {
		return uerr.Err
	}
	return err
}

// StatusError is returned when the API answers with a non-200 status.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("YouTube API returned status %d: %s", e.Code, e.Body)
}
