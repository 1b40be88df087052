package scoring

import (
	"fmt"
	"strings"
	"testing"

	"wellbeing-video-service/internal/models"
)

func video(id, title string, seconds int) models.CandidateVideo {
	return models.CandidateVideo{ID: id, Title: title, DurationSeconds: seconds}
}

func TestScore_BaseWithoutBonuses(t *testing.T) {
	got := Score(video("a", "Piano", 20*60), models.UserState{}, models.RequestOptions{})
	if got != BaseScore {
		t.Fatalf("score=%d want=%d", got, BaseScore)
	}
}

func TestScore_Bonuses(t *testing.T) {
	stressed := models.UserState{StressLevel: models.Int(8)}
	tired := models.UserState{EnergyLevel: models.Int(3)}
	anxious := models.UserState{AnxietyLevel: models.Int(7)}

	tests := []struct {
		name  string
		title string
		mins  int
		state models.UserState
		pref  models.Duration
		want  int
	}{
		{"short match", "x", 10, models.UserState{}, models.DurationShort, 70},
		{"short miss", "x", 15, models.UserState{}, models.DurationShort, 50},
		{"medium lower bound", "x", 15, models.UserState{}, models.DurationMedium, 70},
		{"medium upper bound", "x", 45, models.UserState{}, models.DurationMedium, 70},
		{"long match", "x", 46, models.UserState{}, models.DurationLong, 70},
		{"long miss", "x", 45, models.UserState{}, models.DurationLong, 50},
		{"stress relax", "Música relaxante", 1, stressed, "", 65},
		{"stress keyword", "Adeus stress", 1, stressed, "", 60},
		{"stress deep", "Deep sleep", 1, stressed, "", 58},
		{"stress gated", "Música relaxante", 1, models.UserState{StressLevel: models.Int(7)}, "", 50},
		{"energy keyword", "Motivação", 1, tired, "", 65},
		{"energy both", "Energia total", 1, tired, "", 75},
		{"energy awaken", "Despertar", 1, tired, "", 60},
		{"anxiety keyword", "Calm anxiety", 1, anxious, "", 65},
		{"anxiety breathing", "Breathwork", 1, anxious, "", 60},
		{"quality", "Rain 4K", 1, models.UserState{}, "", 55},
		{"guided", "Guided body scan", 1, models.UserState{}, "", 58},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := video("id", tt.title, tt.mins*60)
			got := Score(v, tt.state, models.RequestOptions{PreferredDuration: tt.pref})
			if got != tt.want {
				t.Fatalf("score=%d want=%d (matched %v)", got, tt.want, MatchedBonuses(v, tt.state, models.RequestOptions{PreferredDuration: tt.pref}))
			}
		})
	}
}

func TestScore_ClampedAt100(t *testing.T) {
	state := models.UserState{StressLevel: models.Int(10), AnxietyLevel: models.Int(10), EnergyLevel: models.Int(1)}
	v := video("x", "Meditação guiada relaxa stress profundo energia despertar ansiedade respira 4K", 20*60)
	opts := models.RequestOptions{PreferredDuration: models.DurationMedium}

	if n := len(MatchedBonuses(v, state, opts)); n != len(Bonuses) {
		t.Fatalf("matched %d of %d bonuses", n, len(Bonuses))
	}
	if got := Score(v, state, opts); got != MaxScore {
		t.Fatalf("score=%d want=%d", got, MaxScore)
	}
}

func TestScore_AlwaysInRange(t *testing.T) {
	titles := []string{"", "relaxa", "stress deep hd", "energia guided", "anxiety breathing ultra", "nada"}
	for level := 0; level <= 11; level++ {
		state := models.UserState{StressLevel: models.Int(level), AnxietyLevel: models.Int(level), EnergyLevel: models.Int(level)}
		for _, title := range titles {
			for _, pref := range []models.Duration{"", models.DurationShort, models.DurationMedium, models.DurationLong} {
				s := Score(video("x", title, level*300), state, models.RequestOptions{PreferredDuration: pref})
				if s < BaseScore || s > MaxScore {
					t.Fatalf("score=%d out of range", s)
				}
			}
		}
	}
}

func TestRank_SortDedupeTruncate(t *testing.T) {
	state := models.UserState{StressLevel: models.Int(9)}
	videos := []models.CandidateVideo{
		video("a", "plain", 60),
		video("b", "relaxa calma", 60),
		video("c", "stress", 60),
		video("b", "relaxa calma", 60),
		video("d", "plain too", 60),
	}

	got := Rank(videos, state, models.RequestOptions{MaxResults: 3})
	ids := make([]string, len(got))
	for i, v := range got {
		ids[i] = v.ID
	}
	if strings.Join(ids, ",") != "b,c,a" {
		t.Fatalf("order=%v want=[b c a]", ids)
	}
	if got[0].MatchScore != 65 || got[1].MatchScore != 60 || got[2].MatchScore != 50 {
		t.Fatalf("scores=%d,%d,%d", got[0].MatchScore, got[1].MatchScore, got[2].MatchScore)
	}
}

func TestRank_TiesKeepInputOrder(t *testing.T) {
	var videos []models.CandidateVideo
	for i := 0; i < 5; i++ {
		videos = append(videos, video(fmt.Sprintf("v%d", i), "same", 60))
	}
	got := Rank(videos, models.UserState{}, models.RequestOptions{MaxResults: 10})
	for i, v := range got {
		if v.ID != fmt.Sprintf("v%d", i) {
			t.Fatalf("position %d has %s", i, v.ID)
		}
	}
}

func TestRank_MaxResultsUpperBound(t *testing.T) {
	var videos []models.CandidateVideo
	for i := 0; i < 80; i++ {
		videos = append(videos, video(fmt.Sprintf("v%d", i), "x", 60))
	}
	tests := []struct {
		max  int
		want int
	}{
		{1, 1},
		{50, 50},
		{51, models.DefaultMaxResults},
		{0, models.DefaultMaxResults},
		{500, models.DefaultMaxResults},
	}
	for _, tt := range tests {
		if got := Rank(videos, models.UserState{}, models.RequestOptions{MaxResults: tt.max}); len(got) != tt.want {
			t.Errorf("max=%d len=%d want=%d", tt.max, len(got), tt.want)
		}
	}
}

func TestRank_Empty(t *testing.T) {
	if got := Rank(nil, models.UserState{}, models.RequestOptions{MaxResults: 5}); len(got) != 0 {
		t.Fatalf("len=%d want=0", len(got))
	}
}

func TestReason(t *testing.T) {
	tests := []struct {
		name  string
		state models.UserState
		mins  int
		want  string
	}{
		{"fallback", models.UserState{}, 20, reasonFallback},
		{"short", models.UserState{}, 5, "Recomendado porque duração perfeita para uma pausa rápida"},
		{"long", models.UserState{}, 31, "Recomendado porque ideal para relaxamento profundo e imersivo"},
		{
			"all",
			models.UserState{StressLevel: models.Int(8), AnxietyLevel: models.Int(7), EnergyLevel: models.Int(2), SleepQuality: models.SleepPoor},
			20,
			"Recomendado porque ajuda a reduzir o stress elevado, promove calma e tranquilidade para ansiedade, " +
				"ajuda a aumentar a energia e vitalidade, pode melhorar a qualidade do sono",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Reason(video("x", "t", tt.mins*60), tt.state); got != tt.want {
				t.Fatalf("reason=%q\nwant=%q", got, tt.want)
			}
		})
	}
}
