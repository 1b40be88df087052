// Package insight produces the narrative and suggestions attached to every
// recommendation response. Both are pure functions of the user state.
package insight

import (
	"fmt"
	"strings"

	"wellbeing-video-service/internal/models"
)

const fallbackInsight = "Continue sua jornada de bem-estar com conteúdo personalizado para você."

// ClosingSuggestions are appended to every suggestion list.
var ClosingSuggestions = []string{
	"🙏 Pratique gratidão e reflexão pessoal diariamente",
	"🌱 Mantenha consistência em sua rotina de bem-estar",
}

// Insights returns one sentence per notable condition of s, or a generic
// sentence when nothing stands out.
func Insights(s models.UserState) string {
	var sentences []string

	if s.HighStress() {
		sentences = append(sentences, fmt.Sprintf("Detectamos níveis elevados de stress (%d/10).", *s.StressLevel))
	}
	if s.LongStreak() {
		sentences = append(sentences, fmt.Sprintf("Parabéns por manter sua rotina de bem-estar há %d dias!", *s.Streak))
	}
	if s.LowEnergy() {
		sentences = append(sentences, fmt.Sprintf("Sua energia está baixa (%d/10). Vídeos energizantes podem ajudar.", *s.EnergyLevel))
	}
	if s.PoorSleep() {
		sentences = append(sentences, "Qualidade do sono pode melhorar com relaxamento antes de dormir.")
	}

	if len(sentences) == 0 {
		return fallbackInsight
	}
	return strings.Join(sentences, " ")
}

// Suggestions returns a message per unmet daily target followed by ClosingSuggestions.
func Suggestions(s models.UserState) []string {
	var out []string

	if s.WaterIntakeMl != nil && *s.WaterIntakeMl < 2000 {
		out = append(out, "💧 Lembre-se de se hidratar adequadamente (meta: 2L/dia)")
	}
	if s.ExerciseMinutes != nil && *s.ExerciseMinutes < 30 {
		out = append(out, "🏃 Considere adicionar atividade física leve à sua rotina")
	}
	if s.SleepsUnder(7) {
		out = append(out, "😴 Priorize uma boa noite de sono (7-9 horas) para melhor recuperação")
	}
	if s.HighStress() {
		out = append(out, "🧘 Reserve 10-15 minutos diários para meditação guiada")
	}

	return append(out, ClosingSuggestions...)
}
