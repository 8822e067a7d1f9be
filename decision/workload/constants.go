package workload

import "github.com/Anderson413366/gleamops-sub002/pkg/api"

// WeeksPerMonth converts weekly figures to monthly ones.
const WeeksPerMonth = 4.33

// Per-area per-visit minute guardrails.
const (
	MinAreaMinutes = 15
	MaxAreaMinutes = 480
)

// DifficultyMultipliers scales computed minutes by area difficulty.
var DifficultyMultipliers = map[api.DifficultyCode]float64{
	api.DifficultyEasy:      0.85,
	api.DifficultyStandard:  1.0,
	api.DifficultyDifficult: 1.25,
}

// FrequencyVisitsPerWeek translates a frequency code into visits per week.
// Recorded on task breakdowns so audits can weight tasks that do not run
// every visit.
var FrequencyVisitsPerWeek = map[string]float64{
	"DAILY":      5,
	"5X_WEEK":    5,
	"4X_WEEK":    4,
	"3X_WEEK":    3,
	"2X_WEEK":    2,
	"WEEKLY":     1,
	"BIWEEKLY":   0.5,
	"MONTHLY":    0.23,
	"QUARTERLY":  0.077,
	"SEMIANNUAL": 0.038,
	"ANNUAL":     0.019,
	"AS_NEEDED":  0,
}
