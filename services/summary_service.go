package services

import (
	"math"
	"sort"
	"time"

	"github.com/andrewdphillips61/Vita-AI/models"
	"github.com/andrewdphillips61/Vita-AI/utils"
)

// DailySummary is the per-date aggregate the calendar and dashboard
// consume. Values are rounded to whole units at this boundary; upstream
// arithmetic stays in float64.
type DailySummary struct {
	Date     string `json:"date"` // "2006-01-02"
	Calories int    `json:"calories"`
	Protein  int    `json:"protein"`
	Carbs    int    `json:"carbs"`
	Fat      int    `json:"fat"`
	Meals    int    `json:"meals"`
}

type SummaryService struct {
	entries *EntryService
}

func NewSummaryService(es *EntryService) *SummaryService {
	return &SummaryService{entries: es}
}

type dayAccumulator struct {
	calories, protein, carbs, fat float64
	meals                         int
}

// summarize folds entries into per-date accumulators. The macro lookup
// abstracts over the two fetch shapes (nested child vs. separate macro
// rows). An entry whose lookup yields nil carries no nutrition data: it is
// excluded from all four sums AND from the meal count, which is stricter
// than treating missing fields as zero.
func summarize(entries []models.FoodEntry, macroFor func(e *models.FoodEntry) *models.Macronutrients) []DailySummary {
	acc := map[string]*dayAccumulator{}
	for i := range entries {
		e := &entries[i]
		m := macroFor(e)
		if m == nil {
			continue
		}
		key := e.Date.Format("2006-01-02")
		a := acc[key]
		if a == nil {
			a = &dayAccumulator{}
			acc[key] = a
		}
		a.calories += m.Calories
		a.protein += m.Protein
		a.carbs += m.Carbohydrates
		a.fat += m.TotalFat
		a.meals++
	}

	out := make([]DailySummary, 0, len(acc))
	for date, a := range acc {
		out = append(out, DailySummary{
			Date:     date,
			Calories: roundHalfUp(a.calories),
			Protein:  roundHalfUp(a.protein),
			Carbs:    roundHalfUp(a.carbs),
			Fat:      roundHalfUp(a.fat),
			Meals:    a.meals,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

// Summed values are non-negative, so Round behaves as round-half-up here.
func roundHalfUp(v float64) int { return int(math.Round(v)) }

// SummarizeJoined aggregates entries fetched with their nested macro
// child (join-style strategy).
func SummarizeJoined(entries []models.FoodEntry) []DailySummary {
	return summarize(entries, func(e *models.FoodEntry) *models.Macronutrients {
		return e.Macros
	})
}

// SummarizeSplit aggregates the two-fetch shape: entry headers plus macro
// rows keyed back by entry id. Contractually equivalent to
// SummarizeJoined for the same underlying data.
func SummarizeSplit(entries []models.FoodEntry, macros []models.Macronutrients) []DailySummary {
	byEntry := make(map[string]*models.Macronutrients, len(macros))
	for i := range macros {
		byEntry[macros[i].FoodEntryID] = &macros[i]
	}
	return summarize(entries, func(e *models.FoodEntry) *models.Macronutrients {
		return byEntry[e.ID]
	})
}

// RangeSummaries aggregates a date range via the join-style fetch. Dates
// with no qualifying entry are absent from the result; callers must read
// absence as "no data", not "zero calories".
func (s *SummaryService) RangeSummaries(userID uint, start, end time.Time) ([]DailySummary, error) {
	entries, err := s.entries.EntriesInRange(userID, start, end)
	if err != nil {
		return nil, err
	}
	return SummarizeJoined(entries), nil
}

// RangeSummariesSplit aggregates the same range via the separate-fetch
// strategy. Must produce identical output to RangeSummaries.
func (s *SummaryService) RangeSummariesSplit(userID uint, start, end time.Time) ([]DailySummary, error) {
	entries, macros, err := s.entries.EntriesInRangeSplit(userID, start, end)
	if err != nil {
		return nil, err
	}
	return SummarizeSplit(entries, macros), nil
}

// DaySummary aggregates one calendar day. Nil when the day has no
// qualifying entries.
func (s *SummaryService) DaySummary(userID uint, date time.Time) (*DailySummary, error) {
	entries, err := s.entries.EntriesByDate(userID, date)
	if err != nil {
		return nil, err
	}
	summaries := SummarizeJoined(entries)
	if len(summaries) == 0 {
		return nil, nil
	}
	return &summaries[0], nil
}

// TodaySummary backs the dashboard header. Unlike range results, an empty
// day yields a zero-valued summary rather than absence.
func (s *SummaryService) TodaySummary(userID uint) (*DailySummary, error) {
	today := time.Now().In(utils.DisplayLocation())
	sum, err := s.DaySummary(userID, today)
	if err != nil {
		return nil, err
	}
	if sum == nil {
		return &DailySummary{Date: today.Format("2006-01-02")}, nil
	}
	return sum, nil
}

// GoalProgressFor reports each tracked metric against its fixed daily
// target, display-ready.
func GoalProgressFor(sum *DailySummary) map[string]map[string]float64 {
	return map[string]map[string]float64{
		"calories": {"consumed": float64(sum.Calories), "goal": utils.CalorieGoal, "percent": utils.GoalProgress(float64(sum.Calories), utils.CalorieGoal)},
		"protein":  {"consumed": float64(sum.Protein), "goal": utils.ProteinGoal, "percent": utils.GoalProgress(float64(sum.Protein), utils.ProteinGoal)},
		"carbs":    {"consumed": float64(sum.Carbs), "goal": utils.CarbsGoal, "percent": utils.GoalProgress(float64(sum.Carbs), utils.CarbsGoal)},
		"fat":      {"consumed": float64(sum.Fat), "goal": utils.FatGoal, "percent": utils.GoalProgress(float64(sum.Fat), utils.FatGoal)},
	}
}
