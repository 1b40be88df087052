package models

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "sedentary"
	ActivityLight      ActivityLevel = "light"
	ActivityModerate   ActivityLevel = "moderate"
	ActivityActive     ActivityLevel = "active"
	ActivityVeryActive ActivityLevel = "very_active"
)

type HealthGoal string

const (
	GoalMaintain HealthGoal = "maintain"
	GoalLose     HealthGoal = "lose"
	GoalGain     HealthGoal = "gain"
	GoalWellness HealthGoal = "wellness"
)

type Mood string

const (
	MoodGreat    Mood = "great"
	MoodGood     Mood = "good"
	MoodOK       Mood = "ok"
	MoodBad      Mood = "bad"
	MoodTerrible Mood = "terrible"
)

type MoodTrend string

const (
	TrendImproving MoodTrend = "improving"
	TrendStable    MoodTrend = "stable"
	TrendDeclining MoodTrend = "declining"
)

type SleepQuality string

const (
	SleepPoor      SleepQuality = "poor"
	SleepFair      SleepQuality = "fair"
	SleepGood      SleepQuality = "good"
	SleepExcellent SleepQuality = "excellent"
)

// UserState is a snapshot of a person's wellbeing for a single recommendation call.
// Pointer fields are optional: nil means the value is unknown, which is not the same as zero.
type UserState struct {
	// Physical profile
	Age           *int          `json:"age,omitempty"`
	Gender        Gender        `json:"gender,omitempty"`
	WeightKg      *float64      `json:"weight_kg,omitempty"`
	HeightCm      *float64      `json:"height_cm,omitempty"`
	ActivityLevel ActivityLevel `json:"activity_level,omitempty"`
	HealthGoal    HealthGoal    `json:"health_goal,omitempty"`

	// Emotional profile; levels are nominally 1-10 but are not clamped.
	Mood         Mood      `json:"mood,omitempty"`
	MoodTrend    MoodTrend `json:"mood_trend,omitempty"`
	StressLevel  *int      `json:"stress_level,omitempty"`
	AnxietyLevel *int      `json:"anxiety_level,omitempty"`
	EnergyLevel  *int      `json:"energy_level,omitempty"`

	// Gamification
	Level   *int   `json:"level,omitempty"`
	Streak  *int   `json:"streak,omitempty"`
	TotalXP *int64 `json:"total_xp,omitempty"`

	// Nutrition
	AverageCalories *int               `json:"average_calories,omitempty"`
	Macronutrients  map[string]float64 `json:"macronutrients,omitempty"`
	WaterIntakeMl   *int               `json:"water_intake_ml,omitempty"`
	MealsPerDay     *int               `json:"meals_per_day,omitempty"`

	// Activity
	ExerciseMinutes *int `json:"exercise_minutes,omitempty"`

	// Sleep
	AverageSleepHours *float64     `json:"average_sleep_hours,omitempty"`
	SleepQuality      SleepQuality `json:"sleep_quality,omitempty"`
}

func (s UserState) HighStress() bool { return above(s.StressLevel, 7) }
func (s UserState) HighAnxiety() bool { return above(s.AnxietyLevel, 6) }
func (s UserState) LowEnergy() bool { return below(s.EnergyLevel, 4) }
func (s UserState) LongStreak() bool { return above(s.Streak, 7) }
func (s UserState) PoorSleep() bool { return s.SleepQuality == SleepPoor }
func (s UserState) SleepsUnder(h float64) bool {
	return s.AverageSleepHours != nil && *s.AverageSleepHours < h
}

func above(v *int, n int) bool { return v != nil && *v > n }
func below(v *int, n int) bool { return v != nil && *v < n }

// Int returns a pointer to v. It keeps literal UserState values short.
func Int(v int) *int { return &v }

// Float returns a pointer to v.
func Float(v float64) *float64 { return &v }
