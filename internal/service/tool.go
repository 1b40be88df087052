package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/goccy/go-json"

	"wellbeing-video-service/internal/metrics"
	"wellbeing-video-service/internal/models"
)

const ToolName = "recommend_youtube_videos"

const toolDescription = "Recomenda vídeos do YouTube para bem-estar a partir de um prompt textual com o perfil do usuário. " +
	"Campos reconhecidos: idade, peso, altura, gênero, nível de atividade, objetivo, humor, estresse, ansiedade, energia, " +
	"nível, sequência, xp, calorias, água, refeições, exercício, sono, qualidade do sono, categoria " +
	"(natureza, meditação, respiração, música), duração (curto, médio, longo), idioma e máximo de resultados."

// Tool describes the callable operation for tool manifests.
type Tool struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	InputSchema map[string]any `json:"inputSchema"`
}

// Manifest returns the description of the recommend tool.
func Manifest() Tool {
	return Tool{
		Name:        ToolName,
		Description: toolDescription,
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"prompt": map[string]any{
					"type":        "string",
					"description": "Perfil e estado do usuário em texto livre",
				},
			},
			"required": []string{"prompt"},
		},
	}
}

// Recommender produces recommendations for a prompt.
type Recommender interface {
	Recommend(ctx context.Context, prompt string) (*models.RecommendationResponse, error)
}

// ToolService is the JSON boundary of the recommendation pipeline. It always
// returns a well-formed payload.
type ToolService struct {
	rec Recommender
}

func NewToolService(rec Recommender) *ToolService {
	return &ToolService{rec: rec}
}

// RecommendJSON runs the pipeline and encodes the result. Every error and
// panic becomes the error payload.
func (t *ToolService) RecommendJSON(ctx context.Context, prompt string) (out string) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("recommendation pipeline panicked", "panic", r)
			metrics.RecommendationRuns.WithLabelValues("error").Inc()
			out = encode(unexpectedError(fmt.Errorf("%v", r)))
		}
	}()

	resp, err := t.rec.Recommend(ctx, prompt)
	switch {
	case errors.Is(err, ErrInvalidPrompt):
		metrics.RecommendationRuns.WithLabelValues("invalid_input").Inc()
		return encode(invalidInput())
	case err != nil:
		slog.Error("failed to generate recommendations", "error", err)
		metrics.RecommendationRuns.WithLabelValues("error").Inc()
		return encode(unexpectedError(err))
	}

	metrics.RecommendationRuns.WithLabelValues("success").Inc()
	return encode(resp)
}

func invalidInput() models.ErrorResponse {
	return models.ErrorResponse{
		Error:           true,
		Message:         "Prompt ausente ou inválido",
		Recommendations: []models.CategoryRecommendation{},
		Insights:        "Prompt inválido - verifique a requisição",
		Suggestions:     []string{"Forneça um prompt textual com o perfil do usuário"},
	}
}

func unexpectedError(err error) models.ErrorResponse {
	return models.ErrorResponse{
		Error:           true,
		Message:         "Erro ao gerar recomendações: " + err.Error(),
		Recommendations: []models.CategoryRecommendation{},
		Insights:        "Não foi possível processar sua solicitação no momento.",
		Suggestions:     []string{"Tente novamente em alguns instantes"},
	}
}

func encode(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		slog.Error("failed to encode tool payload", "error", err)
		return `{"error":true,"message":"Erro ao gerar recomendações","recommendations":[],"insights":"","suggestions":[],"processingTimeMs":0}`
	}
	return string(b)
}
