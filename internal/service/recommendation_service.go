package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"wellbeing-video-service/internal/extract"
	"wellbeing-video-service/internal/insight"
	"wellbeing-video-service/internal/metrics"
	"wellbeing-video-service/internal/models"
	"wellbeing-video-service/internal/planner"
	"wellbeing-video-service/internal/scoring"
	"wellbeing-video-service/internal/youtube"
)

// ErrInvalidPrompt is returned for a blank or missing prompt.
var ErrInvalidPrompt = errors.New("prompt is blank")

// Catalog searches the external video catalog.
type Catalog interface {
	SearchVideos(ctx context.Context, query string, f models.SearchFilters) ([]models.CandidateVideo, error)
}

// RunStore persists run summaries.
type RunStore interface {
	SaveRun(ctx context.Context, run models.RunRecord) error
}

type RecommendationService struct {
	catalog  Catalog
	runs     RunStore
	parallel bool
}

// NewRecommendationService wires the pipeline. runs may be nil.
func NewRecommendationService(catalog Catalog, runs RunStore, parallel bool) *RecommendationService {
	return &RecommendationService{
		catalog:  catalog,
		runs:     runs,
		parallel: parallel,
	}
}

// Recommend runs the full pipeline for one prompt.
func (s *RecommendationService) Recommend(ctx context.Context, prompt string) (*models.RecommendationResponse, error) {
	if strings.TrimSpace(prompt) == "" {
		return nil, ErrInvalidPrompt
	}

	start := time.Now()
	runID := uuid.New()

	in := extract.Extract(prompt)
	state, opts := in.State, in.Options

	queries := planner.BuildQueries(state, opts.Category)
	slog.Info("generating recommendations",
		"run_id", runID,
		"stress", deref(state.StressLevel),
		"energy", deref(state.EnergyLevel),
		"mood", state.Mood,
		"category", opts.Category,
		"duration", opts.PreferredDuration,
		"language", opts.Language,
		"max_results", opts.MaxResults,
		"queries", queries,
	)

	filters := models.SearchFilters{
		MaxResults: opts.MaxResults,
		Duration:   opts.PreferredDuration,
		Language:   opts.Language,
		SafeSearch: "moderate",
	}
	candidates, err := s.retrieve(ctx, queries, filters)
	if err != nil {
		return nil, fmt.Errorf("retrieve candidates: %w", err)
	}

	ranked := scoring.Rank(candidates, state, opts)
	groups := scoring.Group(ranked)

	elapsed := time.Since(start)
	resp := &models.RecommendationResponse{
		Recommendations:  groups,
		Insights:         insight.Insights(state),
		Suggestions:      insight.Suggestions(state),
		ProcessingTimeMs: elapsed.Milliseconds(),
	}

	count := videoCount(groups)
	metrics.RecommendationDuration.Observe(elapsed.Seconds())
	metrics.RecommendedVideos.Observe(float64(count))
	slog.Info("recommendations generated",
		"run_id", runID,
		"candidates", len(candidates),
		"videos", count,
		"elapsed_ms", resp.ProcessingTimeMs,
	)

	s.saveRun(ctx, models.RunRecord{
		ID:               runID.String(),
		Queries:          queries,
		Category:         string(opts.Category),
		VideoCount:       count,
		Categories:       categoryNames(groups),
		ProcessingTimeMs: resp.ProcessingTimeMs,
		CreatedAt:        start.UTC(),
	})

	return resp, nil
}

// retrieve collects candidates for every query in query order. A failing
// query contributes no candidates.
func (s *RecommendationService) retrieve(ctx context.Context, queries []string, f models.SearchFilters) ([]models.CandidateVideo, error) {
	results := make([][]models.CandidateVideo, len(queries))

	if s.parallel {
		g, gctx := errgroup.WithContext(ctx)
		for i, q := range queries {
			g.Go(func() error {
				results[i] = s.search(gctx, q, f)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	} else {
		for i, q := range queries {
			results[i] = s.search(ctx, q, f)
		}
	}

	var all []models.CandidateVideo
	for _, r := range results {
		all = append(all, r...)
	}
	return all, nil
}

// search runs one catalog query. Errors and panics yield no candidates so a
// single failing query never affects the others.
func (s *RecommendationService) search(ctx context.Context, query string, f models.SearchFilters) (videos []models.CandidateVideo) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("catalog search panicked", "query", query, "panic", r)
			videos = nil
		}
	}()

	videos, err := s.catalog.SearchVideos(ctx, query, f)
	switch {
	case err == nil:
		return videos
	case errors.Is(err, youtube.ErrNoResults):
		slog.Debug("no videos for query", "query", query)
	case errors.Is(err, youtube.ErrMissingAPIKey):
		slog.Warn("youtube API key not configured, skipping search", "query", query)
	default:
		slog.Error("catalog search failed", "query", query, "error", err)
	}
	return nil
}

func (s *RecommendationService) saveRun(ctx context.Context, run models.RunRecord) {
	if s.runs == nil {
		return
	}
	if err := s.runs.SaveRun(ctx, run); err != nil {
		slog.Warn("failed to store recommendation run", "run_id", run.ID, "error", err)
	}
}

func videoCount(groups []models.CategoryRecommendation) int {
	n := 0
	for _, g := range groups {
		n += len(g.Videos)
	}
	return n
}

func categoryNames(groups []models.CategoryRecommendation) []string {
	names := make([]string, 0, len(groups))
	for _, g := range groups {
		names = append(names, string(g.Category))
	}
	return names
}

func deref[T any](p *T) any {
	if p == nil {
		return nil
	}
	return *p
}
