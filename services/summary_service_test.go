package services

import (
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/andrewdphillips61/Vita-AI/models"

	"github.com/stretchr/testify/assert"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func testEntry(id, date string, macros *models.Macronutrients) models.FoodEntry {
	e := models.FoodEntry{
		ID:       id,
		UserID:   1,
		Date:     day(date),
		MealType: "lunch",
		FoodName: "Arroz com feijão",
		Macros:   macros,
	}
	if macros != nil {
		macros.FoodEntryID = id
	}
	return e
}

func testMacros(cal, prot, carb, fat float64) *models.Macronutrients {
	return &models.Macronutrients{
		Calories:      cal,
		Protein:       prot,
		Carbohydrates: carb,
		TotalFat:      fat,
	}
}

func TestSummarizeSumsAllEntriesOnSameDate(t *testing.T) {
	entries := []models.FoodEntry{
		testEntry("a", "2024-03-10", testMacros(400, 20, 50, 10)),
		testEntry("b", "2024-03-10", testMacros(600, 35, 70, 22)),
		testEntry("c", "2024-03-10", testMacros(250, 12, 30, 8)),
	}

	out := SummarizeJoined(entries)
	assert.Len(t, out, 1)
	assert.Equal(t, "2024-03-10", out[0].Date)
	assert.Equal(t, 3, out[0].Meals)
	assert.Equal(t, 1250, out[0].Calories)
	assert.Equal(t, 67, out[0].Protein)
	assert.Equal(t, 150, out[0].Carbs)
	assert.Equal(t, 40, out[0].Fat)
}

func TestEntryWithoutMacrosIsExcludedFromSumsAndMealCount(t *testing.T) {
	entries := []models.FoodEntry{
		testEntry("a", "2024-03-10", testMacros(400, 20, 50, 10)),
		testEntry("orphan", "2024-03-10", nil),
	}

	out := SummarizeJoined(entries)
	assert.Len(t, out, 1)
	// The orphan contributes to neither the sums nor the meal count.
	assert.Equal(t, 1, out[0].Meals)
	assert.Equal(t, 400, out[0].Calories)
}

func TestDateWithOnlyOrphansIsOmitted(t *testing.T) {
	entries := []models.FoodEntry{
		testEntry("a", "2024-03-10", testMacros(400, 20, 50, 10)),
		testEntry("b", "2024-03-11", nil),
	}

	out := SummarizeJoined(entries)
	assert.Len(t, out, 1)
	assert.Equal(t, "2024-03-10", out[0].Date)
}

func TestRoundingHappensAfterSummation(t *testing.T) {
	// 100.25 + 100.25 = 200.5 → 201. Rounding each entry first would
	// give 200.
	entries := []models.FoodEntry{
		testEntry("a", "2024-03-10", testMacros(100.25, 10.4, 20.4, 5.4)),
		testEntry("b", "2024-03-10", testMacros(100.25, 10.4, 20.4, 5.4)),
	}

	out := SummarizeJoined(entries)
	assert.Equal(t, 201, out[0].Calories)
	assert.Equal(t, 21, out[0].Protein) // 20.8 → 21
	assert.Equal(t, 41, out[0].Carbs)   // 40.8 → 41
	assert.Equal(t, 11, out[0].Fat)     // 10.8 → 11
}

func TestRoundHalfUp(t *testing.T) {
	assert.Equal(t, 201, roundHalfUp(200.5))
	assert.Equal(t, 200, roundHalfUp(200.49))
	assert.Equal(t, 0, roundHalfUp(0))
}

func TestSummariesSortedByDate(t *testing.T) {
	entries := []models.FoodEntry{
		testEntry("c", "2024-03-12", testMacros(300, 10, 10, 10)),
		testEntry("a", "2024-03-10", testMacros(100, 10, 10, 10)),
		testEntry("b", "2024-03-11", testMacros(200, 10, 10, 10)),
	}

	out := SummarizeJoined(entries)
	assert.Equal(t, []string{"2024-03-10", "2024-03-11", "2024-03-12"},
		[]string{out[0].Date, out[1].Date, out[2].Date})
}

// The join-style fetch and the two-fetch-plus-map fetch must aggregate to
// identical results for the same underlying rows.
func TestJoinedAndSplitStrategiesAreEquivalent(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for trial := 0; trial < 100; trial++ {
		n := rng.Intn(30)
		joined := make([]models.FoodEntry, 0, n)
		headers := make([]models.FoodEntry, 0, n)
		var macroRows []models.Macronutrients

		for i := 0; i < n; i++ {
			id := fmt.Sprintf("t%d-e%d", trial, i)
			date := day("2024-03-01").AddDate(0, 0, rng.Intn(10)).Format("2006-01-02")

			var m *models.Macronutrients
			if rng.Float64() > 0.2 { // ~20% orphans
				m = testMacros(
					rng.Float64()*900,
					rng.Float64()*60,
					rng.Float64()*120,
					rng.Float64()*40,
				)
			}

			joined = append(joined, testEntry(id, date, m))
			headers = append(headers, testEntry(id, date, nil))
			if m != nil {
				row := *m
				row.FoodEntryID = id
				macroRows = append(macroRows, row)
			}
		}

		a := SummarizeJoined(joined)
		b := SummarizeSplit(headers, macroRows)
		assert.Equal(t, a, b, "trial %d diverged", trial)
	}
}

func TestGoalProgressForCapsAt100(t *testing.T) {
	sum := &DailySummary{Calories: 2600, Protein: 80, Carbs: 150, Fat: 70}
	p := GoalProgressFor(sum)

	assert.Equal(t, 100.0, p["calories"]["percent"])
	assert.InDelta(t, 53.333, p["protein"]["percent"], 0.01)
	assert.Equal(t, 75.0, p["carbs"]["percent"])
	assert.Equal(t, 100.0, p["fat"]["percent"])
	assert.Equal(t, 2000.0, p["calories"]["goal"])
}
