package scoring

import (
	"strings"

	"wellbeing-video-service/internal/models"
)

const (
	reasonPrefix   = "Recomendado porque "
	reasonFallback = "Recomendado para seu bem-estar e equilíbrio"
)

// Reason explains a recommendation using the same thresholds as scoring.
func Reason(v models.CandidateVideo, state models.UserState) string {
	var reasons []string

	if state.HighStress() {
		reasons = append(reasons, "ajuda a reduzir o stress elevado")
	}
	if state.HighAnxiety() {
		reasons = append(reasons, "promove calma e tranquilidade para ansiedade")
	}
	if state.LowEnergy() {
		reasons = append(reasons, "ajuda a aumentar a energia e vitalidade")
	}

	minutes := v.DurationSeconds / 60
	if minutes < 15 {
		reasons = append(reasons, "duração perfeita para uma pausa rápida")
	} else if minutes > 30 {
		reasons = append(reasons, "ideal para relaxamento profundo e imersivo")
	}

	if state.PoorSleep() {
		reasons = append(reasons, "pode melhorar a qualidade do sono")
	}

	if len(reasons) == 0 {
		return reasonFallback
	}
	return reasonPrefix + strings.Join(reasons, ", ")
}
