package handler

import (
	"context"
	"log/slog"

	"github.com/gofiber/fiber/v3"

	"wellbeing-video-service/internal/models"
	"wellbeing-video-service/internal/service"
)

// Tool is the JSON boundary of the recommendation pipeline.
type Tool interface {
	RecommendJSON(ctx context.Context, prompt string) string
}

// RunLister lists stored recommendation runs.
type RunLister interface {
	ListRuns(ctx context.Context, limit int) ([]models.RunRecord, error)
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type RecommendRequest struct {
	Prompt string `json:"prompt"`
}

type RecommendationHandler struct {
	tool Tool
	runs RunLister
}

// NewRecommendationHandler creates the handler. runs may be nil when the run
// log is disabled.
func NewRecommendationHandler(tool Tool, runs RunLister) *RecommendationHandler {
	return &RecommendationHandler{tool: tool, runs: runs}
}

// Health godoc
// GET /health
func (h *RecommendationHandler) Health(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"service": "wellbeing-video-service",
	})
}

// ListTools godoc
// GET /api/v1/tools
func (h *RecommendationHandler) ListTools(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"tools": []service.Tool{service.Manifest()},
	})
}

// RecommendYouTubeVideos godoc
// POST /api/v1/tools/recommend_youtube_videos
func (h *RecommendationHandler) RecommendYouTubeVideos(c fiber.Ctx) error {
	var req RecommendRequest
	if err := c.Bind().JSON(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "invalid request body"})
	}

	payload := h.tool.RecommendJSON(c.Context(), req.Prompt)
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
	return c.SendString(payload)
}

// ListRuns godoc
// GET /api/v1/runs?limit=20
func (h *RecommendationHandler) ListRuns(c fiber.Ctx) error {
	if h.runs == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(ErrorResponse{Error: "run log is disabled"})
	}

	limit := fiber.Query(c, "limit", 20)
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	runs, err := h.runs.ListRuns(c.Context(), limit)
	if err != nil {
		slog.Error("failed to list runs", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{Error: "failed to list runs"})
	}

	return c.JSON(fiber.Map{
		"runs":  runs,
		"count": len(runs),
	})
}
