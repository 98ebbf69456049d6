package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGoalProgress(t *testing.T) {
	assert.Equal(t, 0.0, GoalProgress(0, CalorieGoal))
	assert.Equal(t, 50.0, GoalProgress(1000, CalorieGoal))
	assert.Equal(t, 100.0, GoalProgress(2000, CalorieGoal))
	// Overshooting the goal still reads 100.
	assert.Equal(t, 100.0, GoalProgress(3500, CalorieGoal))
}

func TestGoalProgressMonotonic(t *testing.T) {
	prev := -1.0
	for total := 0.0; total <= 3000; total += 37.5 {
		p := GoalProgress(total, ProteinGoal)
		assert.GreaterOrEqual(t, p, prev)
		prev = p
	}
}

func TestMacroCalories(t *testing.T) {
	p, c, f := MacroCalories(30, 50, 15)
	assert.Equal(t, 120.0, p)
	assert.Equal(t, 200.0, c)
	assert.Equal(t, 135.0, f)
}

// A plate with 500 stated kcal but 455 macro-derived kcal shows the two
// percentage readings diverging: shares of the stated value sum to 91,
// the distribution bar always fills to 100.
func TestSharesVsDistributionDiverge(t *testing.T) {
	shares := SharesOfStatedCalories(500, 30, 50, 15)
	assert.Equal(t, CalorieShares{ProteinPct: 24, CarbsPct: 40, FatPct: 27}, shares)

	dist := DistributionBar(30, 50, 15)
	assert.InDelta(t, 26.37, dist.ProteinPct, 0.01)
	assert.InDelta(t, 43.96, dist.CarbsPct, 0.01)
	assert.InDelta(t, 29.67, dist.FatPct, 0.01)
	assert.InDelta(t, 100.0, dist.ProteinPct+dist.CarbsPct+dist.FatPct, 1e-9)
}

func TestSharesZeroWhenNoStatedCalories(t *testing.T) {
	assert.Equal(t, CalorieShares{}, SharesOfStatedCalories(0, 30, 50, 15))
	assert.Equal(t, CalorieShares{}, SharesOfStatedCalories(-10, 30, 50, 15))
}

func TestDistributionZeroWhenNoMacros(t *testing.T) {
	assert.Equal(t, Distribution{}, DistributionBar(0, 0, 0))
}

func TestConfidenceDisplay(t *testing.T) {
	assert.Equal(t, 87, ConfidenceDisplay(0.87))
	assert.Equal(t, 80, ConfidenceDisplay(0.8))
	assert.Equal(t, 100, ConfidenceDisplay(1))
	assert.Equal(t, 93, ConfidenceDisplay(0.925))
	// Out-of-range scores are not clamped.
	assert.Equal(t, 120, ConfidenceDisplay(1.2))
	assert.Equal(t, -50, ConfidenceDisplay(-0.5))
}
