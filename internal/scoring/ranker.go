// Package scoring ranks catalog candidates against a user state and buckets
// the ranked videos into categories.
package scoring

import (
	"sort"
	"strings"

	"wellbeing-video-service/internal/models"
)

const (
	BaseScore = 50
	MaxScore  = 100
)

// candidate is the view of a video that bonus rules are evaluated against.
type candidate struct {
	state   models.UserState
	opts    models.RequestOptions
	title   string // lowercased
	minutes int
}

func (c candidate) titleHas(keywords ...string) bool {
	for _, kw := range keywords {
		if strings.Contains(c.title, kw) {
			return true
		}
	}
	return false
}

// Bonus is an additive scoring rule.
type Bonus struct {
	Name    string
	Points  int
	applies func(c candidate) bool
}

// Bonuses is the ordered list of scoring rules folded over BaseScore.
var Bonuses = []Bonus{
	{"duration_match", 20, func(c candidate) bool { return matchesDuration(c.opts.PreferredDuration, c.minutes) }},

	{"stress_relax", 15, func(c candidate) bool { return c.state.HighStress() && c.titleHas("relaxa", "calma") }},
	{"stress_keyword", 10, func(c candidate) bool { return c.state.HighStress() && c.titleHas("stress", "ansiedade") }},
	{"stress_deep", 8, func(c candidate) bool { return c.state.HighStress() && c.titleHas("profundo", "deep") }},

	{"energy_keyword", 15, func(c candidate) bool { return c.state.LowEnergy() && c.titleHas("energia", "motiv") }},
	{"energy_awaken", 10, func(c candidate) bool { return c.state.LowEnergy() && c.titleHas("despertar", "energi") }},

	{"anxiety_keyword", 15, func(c candidate) bool { return c.state.HighAnxiety() && c.titleHas("ansiedade", "anxiety") }},
	{"anxiety_breathing", 10, func(c candidate) bool { return c.state.HighAnxiety() && c.titleHas("respira", "breath") }},

	{"quality", 5, func(c candidate) bool { return c.titleHas("4k", "hd", "ultra") }},
	{"guided", 8, func(c candidate) bool { return c.titleHas("guiada", "guided") }},
}

// matchesDuration reports whether a video of the given length falls in the
// requested bucket. An empty preference never matches.
func matchesDuration(pref models.Duration, minutes int) bool {
	switch pref {
	case models.DurationShort:
		return minutes < 15
	case models.DurationMedium:
		return minutes >= 15 && minutes <= 45
	case models.DurationLong:
		return minutes > 45
	}
	return false
}

func newCandidate(v models.CandidateVideo, state models.UserState, opts models.RequestOptions) candidate {
	return candidate{
		state:   state,
		opts:    opts,
		title:   strings.ToLower(v.Title),
		minutes: v.DurationSeconds / 60,
	}
}

// Score computes the match score of v, clamped to MaxScore.
func Score(v models.CandidateVideo, state models.UserState, opts models.RequestOptions) int {
	c := newCandidate(v, state, opts)
	score := BaseScore
	for _, b := range Bonuses {
		if b.applies(c) {
			score += b.Points
		}
	}
	return min(score, MaxScore)
}

// MatchedBonuses returns the names of the rules that apply to v.
func MatchedBonuses(v models.CandidateVideo, state models.UserState, opts models.RequestOptions) []string {
	c := newCandidate(v, state, opts)
	var names []string
	for _, b := range Bonuses {
		if b.applies(c) {
			names = append(names, b.Name)
		}
	}
	return names
}

// Rank scores every candidate, sorts by descending score, drops repeated
// videos and truncates to opts.MaxResults. Equal scores keep input order.
func Rank(videos []models.CandidateVideo, state models.UserState, opts models.RequestOptions) []models.RankedVideo {
	ranked := make([]models.RankedVideo, 0, len(videos))
	for _, v := range videos {
		ranked = append(ranked, models.RankedVideo{
			CandidateVideo: v,
			MatchScore:     Score(v, state, opts),
			Reason:         Reason(v, state),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].MatchScore > ranked[j].MatchScore
	})

	ranked = dedupe(ranked)

	if n := models.NormalizeMaxResults(opts.MaxResults); len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// dedupe keeps the first occurrence of each video ID.
func dedupe(videos []models.RankedVideo) []models.RankedVideo {
	seen := make(map[string]struct{}, len(videos))
	out := videos[:0]
	for _, v := range videos {
		if _, ok := seen[v.ID]; ok {
			continue
		}
		seen[v.ID] = struct{}{}
		out = append(out, v)
	}
	return out
}
