package extract

import (
	"regexp"
	"strings"

	"wellbeing-video-service/internal/models"
)

// keywordRule maps any of its keywords to value. Rules are evaluated in order
// and the first rule with a keyword contained in the text wins.
type keywordRule[T ~string] struct {
	value    T
	keywords []string
}

func firstMatch[T ~string](lower string, rules []keywordRule[T], fallback T) T {
	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(lower, kw) {
				return r.value
			}
		}
	}
	return fallback
}

// "female" contains "male", so the female rule is checked first.
var genderRules = []keywordRule[models.Gender]{
	{models.GenderFemale, []string{"feminino", "female", "mulher"}},
	{models.GenderMale, []string{"masculino", "male", "homem"}},
}

var activityRules = []keywordRule[models.ActivityLevel]{
	{models.ActivitySedentary, []string{"sedentário", "sedentary"}},
	{models.ActivityLight, []string{"levemente ativo", "light"}},
	{models.ActivityVeryActive, []string{"muito ativo", "very active", "very_active"}},
	{models.ActivityActive, []string{"ativo", "active"}},
	{models.ActivityModerate, []string{"moderado", "moderate"}},
}

var healthGoalRules = []keywordRule[models.HealthGoal]{
	{models.GoalLose, []string{"perder peso", "lose weight", "emagrecer"}},
	{models.GoalGain, []string{"ganhar peso", "gain weight", "ganhar massa"}},
	{models.GoalWellness, []string{"bem-estar", "wellness", "saúde"}},
	{models.GoalMaintain, []string{"manter", "maintain"}},
}

var moodRules = []keywordRule[models.Mood]{
	{models.MoodGreat, []string{"ótimo", "excelente", "great"}},
	{models.MoodGood, []string{"bom", "good", "bem"}},
	{models.MoodTerrible, []string{"péssimo", "terrível", "terrible"}},
	{models.MoodBad, []string{"ruim", "bad", "mal"}},
}

var moodTrendRules = []keywordRule[models.MoodTrend]{
	{models.TrendImproving, []string{"melhorando", "improving", "melhor"}},
	{models.TrendDeclining, []string{"piorando", "declining", "pior"}},
}

var sleepQualityRules = []keywordRule[models.SleepQuality]{
	{models.SleepExcellent, []string{"excelente", "excellent"}},
	{models.SleepGood, []string{"bom", "good"}},
	{models.SleepPoor, []string{"ruim", "poor"}},
	{models.SleepFair, []string{"razoável", "fair"}},
}

var categoryRules = []keywordRule[models.Category]{
	{models.CategoryNature, []string{"natureza", "nature", "floresta", "oceano"}},
	{models.CategoryMeditation, []string{"meditação", "meditation", "mindfulness"}},
	{models.CategoryMusic, []string{"música", "music", "musica"}},
	{models.CategoryBreathing, []string{"respiração", "breathing", "pranayama"}},
}

var durationRules = []keywordRule[models.Duration]{
	{models.DurationShort, []string{"curto", "short", "rápido", "quick"}},
	{models.DurationLong, []string{"longo", "long", "extenso", "profundo"}},
	{models.DurationMedium, []string{"médio", "medium", "medio"}},
}

var languageRules = []keywordRule[string]{
	{"pt", []string{"português", "portugues", "pt-br", "brasil"}},
	{"en", []string{"english", "inglês", "ingles"}},
	{"es", []string{"español", "espanhol", "spanish"}},
}

// numberPattern builds a case-insensitive "(label)[:\s]*(number)" matcher.
func numberPattern(decimal bool, labels ...string) *regexp.Regexp {
	quoted := make([]string, len(labels))
	for i, l := range labels {
		quoted[i] = regexp.QuoteMeta(l)
	}
	num := `\d+`
	if decimal {
		num = `\d+\.?\d*`
	}
	return regexp.MustCompile(`(?i)(` + strings.Join(quoted, "|") + `)[:\s]*(` + num + `)`)
}

var (
	agePattern        = numberPattern(false, "idade", "age")
	weightPattern     = numberPattern(true, "peso", "weight")
	heightPattern     = numberPattern(true, "altura", "height")
	stressPattern     = numberPattern(false, "stress", "estresse")
	anxietyPattern    = numberPattern(false, "ansiedade", "anxiety", "ansiedad")
	energyPattern     = numberPattern(false, "energia", "energy")
	levelPattern      = numberPattern(false, "nivel", "level", "nível")
	streakPattern     = numberPattern(false, "streak", "sequencia", "sequência")
	xpPattern         = numberPattern(false, "xp", "experiencia", "experiência")
	caloriesPattern   = numberPattern(false, "calorias", "calories")
	waterPattern      = numberPattern(false, "agua", "water", "água", "hidratação")
	mealsPattern      = numberPattern(false, "refeições", "meals", "refei")
	exercisePattern   = numberPattern(false, "atividade física", "exercise", "exercicio", "exercício")
	sleepPattern      = numberPattern(true, "sono", "sleep", "dormir")
	maxResultsPattern = numberPattern(false, "máximo", "maximo", "max", "limite")
)

// macroPatterns maps a macronutrient name to its gram pattern.
var macroPatterns = []struct {
	name    string
	pattern *regexp.Regexp
}{
	{"protein", numberPattern(true, "proteína", "proteina", "protein")},
	{"carbs", numberPattern(true, "carboidratos", "carbohidratos", "carbs")},
	{"fat", numberPattern(true, "gorduras", "gordura", "grasa", "fats", "fat")},
}
