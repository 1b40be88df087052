package scoring

import (
	"fmt"
	"testing"

	"wellbeing-video-service/internal/models"
)

func TestCategorize(t *testing.T) {
	tests := []struct {
		title string
		desc  string
		want  models.Category
	}{
		{"Sons da Floresta", "", models.CategoryNature},
		{"Ocean waves", "", models.CategoryMusic},
		{"Chuva para dormir", "", models.CategoryNature},
		{"Piano calmo", "Playlist com sons da natureza", models.CategoryNature},
		{"Meditação da manhã", "", models.CategoryMeditation},
		{"Mindfulness na natureza", "", models.CategoryNature},
		{"Respiração guiada", "", models.CategoryMeditation},
		{"Pranayama", "", models.CategoryBreathing},
		{"Box breathing", "", models.CategoryBreathing},
		{"Lofi beats", "meditação", models.CategoryMusic},
		{"", "", models.CategoryMusic},
	}
	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			got := Categorize(models.CandidateVideo{Title: tt.title, Description: tt.desc})
			if got != tt.want {
				t.Fatalf("category=%q want=%q", got, tt.want)
			}
		})
	}
}

func TestGroup_CapsEachCategory(t *testing.T) {
	var ranked []models.RankedVideo
	for i := 0; i < 5; i++ {
		ranked = append(ranked,
			models.RankedVideo{CandidateVideo: models.CandidateVideo{ID: fmt.Sprintf("m%d", i), Title: "Pranayama"}, MatchScore: 90 - i},
			models.RankedVideo{CandidateVideo: models.CandidateVideo{ID: fmt.Sprintf("n%d", i), Title: "Floresta"}, MatchScore: 80 - i},
		)
	}

	groups := Group(ranked)
	if len(groups) != 2 {
		t.Fatalf("groups=%d want=2", len(groups))
	}
	if groups[0].Category != models.CategoryNature || groups[1].Category != models.CategoryBreathing {
		t.Fatalf("order=%q,%q", groups[0].Category, groups[1].Category)
	}
	for _, g := range groups {
		if len(g.Videos) != PerCategory {
			t.Fatalf("%s has %d videos", g.Category, len(g.Videos))
		}
		for i := 1; i < len(g.Videos); i++ {
			if g.Videos[i-1].MatchScore < g.Videos[i].MatchScore {
				t.Fatalf("%s not sorted", g.Category)
			}
		}
	}
	if groups[1].Videos[0].ID != "m0" {
		t.Fatalf("first breathing video=%s want m0", groups[1].Videos[0].ID)
	}
}

func TestGroup_Empty(t *testing.T) {
	if groups := Group(nil); len(groups) != 0 {
		t.Fatalf("groups=%v", groups)
	}
}
