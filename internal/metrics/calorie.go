package metrics

import "github.com/KhaiNghiTranNguyen/AI-Challenge-3ITech/internal/settings"

// CalorieLevel classifies a meal's calories against the target band.
type CalorieLevel string

const (
	CalorieLow     CalorieLevel = "low"
	CalorieOptimal CalorieLevel = "optimal"
	CalorieHigh    CalorieLevel = "high"
)

// Band is the per-meal calorie target with its tolerance range. The
// range is inclusive on both ends.
type Band struct {
	Target float64
	Lower  float64 // 80% of target
	Upper  float64 // 120% of target
}

// CalorieBand derives the per-meal band from the daily goal and the
// meal threshold percentage. Callers must ensure the goal is positive.
func CalorieBand(s settings.Settings) Band {
	target := float64(s.CalorieGoal) * float64(s.CalorieThreshold) / 100
	return Band{
		Target: target,
		Lower:  target * 0.8,
		Upper:  target * 1.2,
	}
}

// ClassifyCalories places a calorie total in the band. Boundary values
// count as optimal.
func ClassifyCalories(totalCalories int, band Band) CalorieLevel {
	total := float64(totalCalories)
	switch {
	case total < band.Lower:
		return CalorieLow
	case total > band.Upper:
		return CalorieHigh
	default:
		return CalorieOptimal
	}
}

// ProgressPercent maps a calorie total onto the meter, with the upper
// band bound as 100%. Capped at 100.
func ProgressPercent(totalCalories int, band Band) float64 {
	if band.Upper <= 0 {
		return 0
	}
	p := float64(totalCalories) / band.Upper * 100
	if p > 100 {
		return 100
	}
	return p
}
