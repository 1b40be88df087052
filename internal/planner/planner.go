// Package planner turns a user state into a short list of catalog search queries.
package planner

import "wellbeing-video-service/internal/models"

// MaxQueries bounds the number of catalog calls made per recommendation.
const MaxQueries = 5

const searchLanguage = "português"

// rule contributes queries when it applies. Rules are evaluated in order and
// are not mutually exclusive.
type rule func(state models.UserState, category models.Category) []string

var rules = []rule{
	emotionalQueries,
	healthGoalQueries,
	sleepQueries,
	func(_ models.UserState, c models.Category) []string { return categoryQueries[c] },
	experienceQueries,
}

// defaultQueries are used when no rule contributed anything.
var defaultQueries = []string{
	"meditação relaxamento " + searchLanguage + " guiada",
	"música calma instrumental sono",
	"natureza sons relaxantes 4K",
}

var categoryQueries = map[models.Category][]string{
	models.CategoryNature: {
		"sons da natureza relaxamento 4K ultra HD",
		"floresta tropical chuva meditação 10 horas",
		"oceano ondas praia relaxar dormir",
		"pássaros cantando manhã natureza",
	},
	models.CategoryMeditation: {
		"meditação guiada " + searchLanguage + " atenção plena",
		"mindfulness meditação iniciantes",
		"body scan relaxamento progressivo",
		"meditação chakras equilíbrio energia",
	},
	models.CategoryMusic: {
		"música relaxante instrumental piano",
		"música ambiente meditação spa",
		"música clássica relaxar estudar",
		"lofi relaxante jazz suave",
	},
	models.CategoryBreathing: {
		"exercícios respiração guiada pranayama",
		"respiração 4-7-8 técnica dormir",
		"respiração profunda relaxamento stress",
		"wim hof método respiração energia",
	},
}

// emotionalQueries follows a priority cascade: only the most pressing of
// stress, anxiety and low energy contributes.
func emotionalQueries(s models.UserState, _ models.Category) []string {
	switch {
	case s.HighStress():
		return []string{
			"meditação guiada stress ansiedade reduzir " + searchLanguage,
			"música relaxante dormir profundo ondas cerebrais",
			"sons da natureza chuva floresta relaxamento 4K",
			"yoga nidra relaxamento profundo guiado",
		}
	case s.HighAnxiety():
		return []string{
			"exercícios respiração ansiedade guiado",
			"meditação mindfulness presente momento",
			"sons calmantes ansiedade relaxar mente",
		}
	case s.LowEnergy():
		return []string{
			"yoga energizante manhã despertar",
			"música motivacional energia positiva",
			"meditação energia vital chakra",
			"exercícios respiração energizantes pranayama",
		}
	}
	return nil
}

func healthGoalQueries(s models.UserState, _ models.Category) []string {
	switch s.HealthGoal {
	case models.GoalWellness:
		return []string{
			"bem-estar holístico meditação saúde mental",
			"estilo vida saudável relaxamento equilíbrio",
		}
	case models.GoalLose:
		return []string{
			"meditação perda peso visualização",
			"relaxamento após exercício recuperação",
		}
	}
	return nil
}

func sleepQueries(s models.UserState, _ models.Category) []string {
	if !s.PoorSleep() && !s.SleepsUnder(6) {
		return nil
	}
	return []string{
		"música dormir insônia sono profundo",
		"meditação guiada dormir rápido",
		"sons relaxantes dormir bebê 432hz",
	}
}

func experienceQueries(s models.UserState, _ models.Category) []string {
	if s.LongStreak() {
		return []string{
			"meditação avançada mindfulness profundo",
			"yoga intermediário relaxamento força",
		}
	}
	return []string{
		"meditação iniciantes guiada simples",
		"relaxamento básico começar agora",
	}
}

// BuildQueries returns between 1 and MaxQueries distinct queries for state,
// ordered by decreasing specificity. category may be empty.
func BuildQueries(state models.UserState, category models.Category) []string {
	var queries []string
	for _, r := range rules {
		queries = append(queries, r(state, category)...)
	}
	if len(queries) == 0 {
		queries = append(queries, defaultQueries...)
	}
	return limit(dedupe(queries), MaxQueries)
}

func dedupe(queries []string) []string {
	seen := make(map[string]struct{}, len(queries))
	out := queries[:0:0]
	for _, q := range queries {
		if _, ok := seen[q]; ok {
			continue
		}
		seen[q] = struct{}{}
		out = append(out, q)
	}
	return out
}

func limit(queries []string, n int) []string {
	if len(queries) > n {
		return queries[:n]
	}
	return queries
}
