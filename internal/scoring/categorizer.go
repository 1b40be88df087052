package scoring

import (
	"strings"

	"wellbeing-video-service/internal/models"
)

// PerCategory is the number of videos kept in each category group.
const PerCategory = 3

var (
	natureTitleKeywords     = []string{"natureza", "nature", "floresta", "oceano", "chuva", "pássaro"}
	natureDescKeywords      = []string{"sons da natureza"}
	meditationTitleKeywords = []string{"meditação", "meditation", "mindfulness", "guiada"}
	breathingTitleKeywords  = []string{"respiração", "breathing", "pranayama", "respira"}
)

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

// Categorize assigns v to exactly one category. Nature wins over meditation,
// meditation over breathing; anything else is music.
func Categorize(v models.CandidateVideo) models.Category {
	title := strings.ToLower(v.Title)

	switch {
	case containsAny(title, natureTitleKeywords),
		containsAny(strings.ToLower(v.Description), natureDescKeywords):
		return models.CategoryNature
	case containsAny(title, meditationTitleKeywords):
		return models.CategoryMeditation
	case containsAny(title, breathingTitleKeywords):
		return models.CategoryBreathing
	}
	return models.CategoryMusic
}

// Group buckets ranked videos by category in models.CategoryOrder, keeping the
// first PerCategory of each. Input is expected to be sorted by score already.
// Empty categories are omitted.
func Group(videos []models.RankedVideo) []models.CategoryRecommendation {
	buckets := make(map[models.Category][]models.RankedVideo, len(models.CategoryOrder))
	for _, v := range videos {
		c := Categorize(v.CandidateVideo)
		if len(buckets[c]) < PerCategory {
			buckets[c] = append(buckets[c], v)
		}
	}

	groups := make([]models.CategoryRecommendation, 0, len(buckets))
	for _, c := range models.CategoryOrder {
		if vs := buckets[c]; len(vs) > 0 {
			groups = append(groups, models.CategoryRecommendation{Category: c, Videos: vs})
		}
	}
	return groups
}
