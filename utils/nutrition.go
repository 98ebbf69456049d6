package utils

import "math"

// Daily targets shown on the dashboard cards. These are product constants,
// not per-user configuration.
const (
	CalorieGoal = 2000.0
	ProteinGoal = 150.0
	FatGoal     = 65.0
	CarbsGoal   = 200.0
)

// Atwater factors (kcal per gram).
const (
	proteinKcalPerGram = 4.0
	carbsKcalPerGram   = 4.0
	fatKcalPerGram     = 9.0
)

// GoalProgress returns the percentage of a fixed daily goal covered by
// total, capped at 100. Goals are positive constants, so the division is
// always defined.
func GoalProgress(total, goal float64) float64 {
	return math.Min((total/goal)*100.0, 100.0)
}

// MacroCalories converts gram amounts of the three tracked macros into
// their calorie contributions.
func MacroCalories(proteinG, carbsG, fatG float64) (proteinKcal, carbsKcal, fatKcal float64) {
	return proteinG * proteinKcalPerGram, carbsG * carbsKcalPerGram, fatG * fatKcalPerGram
}

// CalorieShares is the per-macro percentage of the calories *stated* by the
// analysis. The stated value is model-reported and may disagree with the
// macro-derived total; the distribution bar uses the other basis.
type CalorieShares struct {
	ProteinPct int `json:"protein_pct"`
	CarbsPct   int `json:"carbs_pct"`
	FatPct     int `json:"fat_pct"`
}

// SharesOfStatedCalories computes each macro's share of the stated calorie
// value, rounded to whole percent. All shares are 0 when stated calories
// is 0.
func SharesOfStatedCalories(statedCalories, proteinG, carbsG, fatG float64) CalorieShares {
	if statedCalories <= 0 {
		return CalorieShares{}
	}
	pKcal, cKcal, fKcal := MacroCalories(proteinG, carbsG, fatG)
	return CalorieShares{
		ProteinPct: int(math.Round((pKcal / statedCalories) * 100.0)),
		CarbsPct:   int(math.Round((cKcal / statedCalories) * 100.0)),
		FatPct:     int(math.Round((fKcal / statedCalories) * 100.0)),
	}
}

// Distribution holds segment widths for the macro distribution bar, in
// percent of the macro-derived calorie sum.
type Distribution struct {
	ProteinPct float64 `json:"protein_pct"`
	CarbsPct   float64 `json:"carbs_pct"`
	FatPct     float64 `json:"fat_pct"`
}

// DistributionBar sizes the three bar segments against the sum of
// macro-derived calories, not the stated calorie value. Segments are all 0
// when the macro sum is 0. This basis is intentionally different from
// SharesOfStatedCalories and the two must not be unified.
func DistributionBar(proteinG, carbsG, fatG float64) Distribution {
	pKcal, cKcal, fKcal := MacroCalories(proteinG, carbsG, fatG)
	total := pKcal + cKcal + fKcal
	if total <= 0 {
		return Distribution{}
	}
	return Distribution{
		ProteinPct: (pKcal / total) * 100.0,
		CarbsPct:   (cKcal / total) * 100.0,
		FatPct:     (fKcal / total) * 100.0,
	}
}

// ConfidenceDisplay renders a model confidence score as a value out of 100.
// The score is expected in [0,1] but is not clamped here; out-of-range
// input passes through arithmetically.
func ConfidenceDisplay(score float64) int {
	return int(math.Round(score * 100.0))
}
