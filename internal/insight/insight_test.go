package insight

import (
	"slices"
	"strings"
	"testing"

	"wellbeing-video-service/internal/models"
)

func TestInsights(t *testing.T) {
	tests := []struct {
		name     string
		state    models.UserState
		contains []string
		absent   []string
	}{
		{
			name:     "fallback",
			state:    models.UserState{StressLevel: models.Int(5), Streak: models.Int(7), EnergyLevel: models.Int(4)},
			contains: []string{fallbackInsight},
		},
		{
			name:     "stress and sleep",
			state:    models.UserState{StressLevel: models.Int(9), SleepQuality: models.SleepPoor},
			contains: []string{"stress (9/10)", "Qualidade do sono"},
			absent:   []string{fallbackInsight, "energia"},
		},
		{
			name:     "streak and energy",
			state:    models.UserState{Streak: models.Int(12), EnergyLevel: models.Int(2)},
			contains: []string{"há 12 dias!", "Sua energia está baixa (2/10)"},
			absent:   []string{"stress"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Insights(tt.state)
			for _, s := range tt.contains {
				if !strings.Contains(got, s) {
					t.Errorf("insights %q missing %q", got, s)
				}
			}
			for _, s := range tt.absent {
				if strings.Contains(got, s) {
					t.Errorf("insights %q should not contain %q", got, s)
				}
			}
		})
	}
}

func TestInsights_AllConditionsInOrder(t *testing.T) {
	got := Insights(models.UserState{
		StressLevel:  models.Int(8),
		Streak:       models.Int(8),
		EnergyLevel:  models.Int(1),
		SleepQuality: models.SleepPoor,
	})
	idx := []int{
		strings.Index(got, "stress"),
		strings.Index(got, "Parabéns"),
		strings.Index(got, "Sua energia"),
		strings.Index(got, "Qualidade do sono"),
	}
	for i, n := range idx {
		if n < 0 || (i > 0 && n < idx[i-1]) {
			t.Fatalf("sentence %d missing or out of order in %q", i, got)
		}
	}
}

func TestSuggestions_OnlyClosingWhenTargetsMet(t *testing.T) {
	got := Suggestions(models.UserState{
		WaterIntakeMl:     models.Int(2500),
		ExerciseMinutes:   models.Int(45),
		AverageSleepHours: models.Float(8),
		StressLevel:       models.Int(3),
	})
	if !slices.Equal(got, ClosingSuggestions) {
		t.Fatalf("suggestions=%v", got)
	}
}

func TestSuggestions_UnknownValuesAreNotUnmet(t *testing.T) {
	if got := Suggestions(models.UserState{}); len(got) != len(ClosingSuggestions) {
		t.Fatalf("suggestions=%v", got)
	}
}

func TestSuggestions_AllUnmet(t *testing.T) {
	got := Suggestions(models.UserState{
		WaterIntakeMl:     models.Int(800),
		ExerciseMinutes:   models.Int(0),
		AverageSleepHours: models.Float(5),
		StressLevel:       models.Int(9),
	})
	if len(got) != 6 {
		t.Fatalf("len=%d want=6: %v", len(got), got)
	}
	prefixes := []string{"💧", "🏃", "😴", "🧘", "🙏", "🌱"}
	for i, p := range prefixes {
		if !strings.HasPrefix(got[i], p) {
			t.Errorf("suggestion %d=%q want prefix %q", i, got[i], p)
		}
	}
}
