// Package extract recovers a UserState and RequestOptions from free-form text.
//
// Extraction is heuristic: numeric fields are located with label patterns and
// categorical fields with ordered keyword lists in Portuguese, English and
// Spanish. It never fails; every field without a match gets its default.
package extract

import (
	"regexp"
	"strconv"
	"strings"

	"wellbeing-video-service/internal/models"
)

// Result holds everything recovered from one prompt.
type Result struct {
	State   models.UserState
	Options models.RequestOptions
}

// text is an immutable view of the prompt with a precomputed lowercase copy.
type text struct {
	raw   string
	lower string
}

func newText(s string) text {
	return text{raw: s, lower: strings.ToLower(s)}
}

// Extract parses prompt into a user state and request options.
func Extract(prompt string) Result {
	t := newText(prompt)
	return Result{
		State:   t.userState(),
		Options: t.options(),
	}
}

// UserState parses only the user state from prompt.
func UserState(prompt string) models.UserState {
	return newText(prompt).userState()
}

// Options parses only the request options from prompt.
func Options(prompt string) models.RequestOptions {
	return newText(prompt).options()
}

func (t text) userState() models.UserState {
	return models.UserState{
		Age:           t.intOr(agePattern, 30),
		WeightKg:      t.floatOr(weightPattern, 70.0),
		HeightCm:      t.floatOr(heightPattern, 170.0),
		Gender:        firstMatch(t.lower, genderRules, models.GenderOther),
		ActivityLevel: firstMatch(t.lower, activityRules, models.ActivityModerate),
		HealthGoal:    firstMatch(t.lower, healthGoalRules, models.GoalWellness),

		Mood:         firstMatch(t.lower, moodRules, models.MoodOK),
		MoodTrend:    firstMatch(t.lower, moodTrendRules, models.TrendStable),
		StressLevel:  t.intOr(stressPattern, 5),
		AnxietyLevel: t.intOr(anxietyPattern, 5),
		EnergyLevel:  t.intOr(energyPattern, 5),

		Level:   t.intOr(levelPattern, 1),
		Streak:  t.intOr(streakPattern, 0),
		TotalXP: t.int64Or(xpPattern, 0),

		AverageCalories: t.intValue(caloriesPattern),
		Macronutrients:  t.macronutrients(),
		WaterIntakeMl:   t.intValue(waterPattern),
		MealsPerDay:     t.intOr(mealsPattern, 3),

		ExerciseMinutes: t.intOr(exercisePattern, 0),

		AverageSleepHours: t.floatOr(sleepPattern, 7.0),
		SleepQuality:      firstMatch(t.lower, sleepQualityRules, models.SleepGood),
	}
}

func (t text) options() models.RequestOptions {
	maxResults := models.DefaultMaxResults
	if v := t.intValue(maxResultsPattern); v != nil {
		maxResults = models.NormalizeMaxResults(*v)
	}
	return models.RequestOptions{
		Category:          firstMatch(t.lower, categoryRules, ""),
		PreferredDuration: firstMatch(t.lower, durationRules, models.DurationMedium),
		Language:          firstMatch(t.lower, languageRules, models.DefaultLanguage),
		MaxResults:        maxResults,
	}
}

func (t text) macronutrients() map[string]float64 {
	var macros map[string]float64
	for _, m := range macroPatterns {
		v := t.floatValue(m.pattern)
		if v == nil {
			continue
		}
		if macros == nil {
			macros = make(map[string]float64, len(macroPatterns))
		}
		macros[m.name] = *v
	}
	return macros
}

// number returns the digits captured by the first match of p.
func (t text) number(p *regexp.Regexp) (string, bool) {
	m := p.FindStringSubmatch(t.raw)
	if m == nil {
		return "", false
	}
	return m[2], true
}

// intValue returns nil when there is no match or the number does not fit in 32 bits.
func (t text) intValue(p *regexp.Regexp) *int {
	s, ok := t.number(p)
	if !ok {
		return nil
	}
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return nil
	}
	v := int(n)
	return &v
}

func (t text) intOr(p *regexp.Regexp, def int) *int {
	if v := t.intValue(p); v != nil {
		return v
	}
	return &def
}

func (t text) int64Or(p *regexp.Regexp, def int64) *int64 {
	if s, ok := t.number(p); ok {
		if n, err := strconv.ParseInt(s, 10, 64); err == nil {
			return &n
		}
	}
	return &def
}

func (t text) floatValue(p *regexp.Regexp) *float64 {
	s, ok := t.number(p)
	if !ok {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &f
}

func (t text) floatOr(p *regexp.Regexp, def float64) *float64 {
	if v := t.floatValue(p); v != nil {
		return v
	}
	return &def
}
