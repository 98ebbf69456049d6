package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/andrewdphillips61/Vita-AI/config"
	"github.com/andrewdphillips61/Vita-AI/models"
	"github.com/andrewdphillips61/Vita-AI/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrEntryNotFound = errors.New("food entry not found")

type EntryService struct{}

func NewEntryService() *EntryService { return &EntryService{} }

func validMealType(t string) bool {
	switch t {
	case "breakfast", "lunch", "dinner", "snack":
		return true
	}
	return false
}

// dateOnly strips the time component; entry dates are calendar days.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Create persists a confirmed analysis as a food entry with its two
// nutrient profiles. The three inserts are strictly sequential: parent,
// then macros, then micros. A child failure leaves the parent row in
// place with incomplete nutrition data; no compensating delete is issued.
// Readers exclude such orphans from aggregation, and the inconsistency is
// reported through the alert bus so it stays observable.
func (s *EntryService) Create(userID uint, analysis *FoodAnalysis, imageURL, mealType string) (*models.FoodEntry, error) {
	if analysis == nil {
		return nil, errors.New("analysis is required")
	}
	if !validMealType(mealType) {
		mealType = "snack"
	}

	now := time.Now().In(utils.DisplayLocation())
	entry := &models.FoodEntry{
		ID:                 uuid.NewString(),
		UserID:             userID,
		Date:               dateOnly(now),
		MealType:           mealType,
		Time:               now.Format("15:04:05"),
		FoodName:           analysis.FoodName,
		Description:        analysis.Description,
		FoodCategory:       analysis.FoodCategory,
		PortionSize:        analysis.PortionSize,
		PortionDescription: analysis.PortionDescription,
		ConfidenceScore:    analysis.ConfidenceScore,
		ImageURL:           imageURL,
	}
	if err := config.DB.Create(entry).Error; err != nil {
		return nil, fmt.Errorf("failed to create food entry: %w", err)
	}

	macros := macroRowFromAnalysis(entry.ID, &analysis.Macronutrients)
	if err := config.DB.Create(macros).Error; err != nil {
		s.reportOrphan(userID, entry.ID, "macronutrients", err)
		return nil, fmt.Errorf("failed to create macronutrients: %w", err)
	}

	micros := microRowFromAnalysis(entry.ID, &analysis.Micronutrients)
	if err := config.DB.Create(micros).Error; err != nil {
		s.reportOrphan(userID, entry.ID, "micronutrients", err)
		return nil, fmt.Errorf("failed to create micronutrients: %w", err)
	}

	entry.Macros = macros
	entry.Micros = micros
	return entry, nil
}

func (s *EntryService) reportOrphan(userID uint, entryID, table string, err error) {
	log.Printf("orphaned food entry %s: %s insert failed: %v", entryID, table, err)
	EmitAlert(userID, "warning", fmt.Sprintf("Entrada %s salva sem dados de %s", entryID, table))
}

// EntriesByDate returns the full projection (both nutrient profiles) for
// one calendar day, ordered by wall-clock time.
func (s *EntryService) EntriesByDate(userID uint, date time.Time) ([]models.FoodEntry, error) {
	var entries []models.FoodEntry
	err := config.DB.
		Preload("Macros").
		Preload("Micros").
		Where("user_id = ? AND date = ?", userID, dateOnly(date)).
		Order("time ASC").
		Find(&entries).Error
	return entries, err
}

// EntriesInRange returns a partial projection for aggregation: entry
// headers plus the four tracked macro fields, inclusive bounds.
func (s *EntryService) EntriesInRange(userID uint, start, end time.Time) ([]models.FoodEntry, error) {
	var entries []models.FoodEntry
	err := config.DB.
		Select("id", "user_id", "date", "meal_type", "food_name", "portion_size", "portion_description").
		Preload("Macros", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "food_entry_id", "calories", "protein", "carbohydrates", "total_fat")
		}).
		Where("user_id = ? AND date BETWEEN ? AND ?", userID, dateOnly(start), dateOnly(end)).
		Order("date ASC").
		Find(&entries).Error
	return entries, err
}

// EntriesInRangeSplit is the alternative fetch path: entry headers first,
// then macros by entry-id set. The summary service joins them in memory.
func (s *EntryService) EntriesInRangeSplit(userID uint, start, end time.Time) ([]models.FoodEntry, []models.Macronutrients, error) {
	var entries []models.FoodEntry
	if err := config.DB.
		Select("id", "user_id", "date", "meal_type", "food_name").
		Where("user_id = ? AND date BETWEEN ? AND ?", userID, dateOnly(start), dateOnly(end)).
		Order("date ASC").
		Find(&entries).Error; err != nil {
		return nil, nil, err
	}
	if len(entries) == 0 {
		return entries, nil, nil
	}

	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.ID)
	}

	var macros []models.Macronutrients
	if err := config.DB.
		Select("id", "food_entry_id", "calories", "protein", "carbohydrates", "total_fat").
		Where("food_entry_id IN ?", ids).
		Find(&macros).Error; err != nil {
		return nil, nil, err
	}
	return entries, macros, nil
}

// EntryByID returns the full projection, micronutrients included.
func (s *EntryService) EntryByID(id string) (*models.FoodEntry, error) {
	var entry models.FoodEntry
	err := config.DB.
		Preload("Macros").
		Preload("Micros").
		Where("id = ?", id).
		First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEntryNotFound
		}
		return nil, err
	}
	return &entry, nil
}

// TodayEntries feeds the recent-entries card: today's rows, newest first,
// macro fields only.
func (s *EntryService) TodayEntries(userID uint) ([]models.FoodEntry, error) {
	today := dateOnly(time.Now().In(utils.DisplayLocation()))
	var entries []models.FoodEntry
	err := config.DB.
		Select("id", "user_id", "date", "meal_type", "food_name", "time").
		Preload("Macros", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "food_entry_id", "calories", "protein", "carbohydrates", "total_fat")
		}).
		Where("user_id = ? AND date = ?", userID, today).
		Order("time DESC").
		Find(&entries).Error
	return entries, err
}

func macroRowFromAnalysis(entryID string, m *AnalysisMacros) *models.Macronutrients {
	return &models.Macronutrients{
		FoodEntryID:        entryID,
		Calories:           m.Calories,
		Protein:            m.Protein,
		Carbohydrates:      m.Carbohydrates,
		TotalCarbs:         m.TotalCarbs,
		DietaryFiber:       m.DietaryFiber,
		NetCarbs:           m.NetCarbs,
		TotalFat:           m.TotalFat,
		SaturatedFat:       m.SaturatedFat,
		TransFat:           m.TransFat,
		MonounsaturatedFat: m.MonounsaturatedFat,
		PolyunsaturatedFat: m.PolyunsaturatedFat,
		Cholesterol:        m.Cholesterol,
		Sodium:             m.Sodium,
		Sugar:              m.Sugar,
		AddedSugar:         m.AddedSugar,
	}
}

func microRowFromAnalysis(entryID string, m *AnalysisMicros) *models.Micronutrients {
	return &models.Micronutrients{
		FoodEntryID: entryID,
		VitaminA:    m.VitaminA,
		VitaminC:    m.VitaminC,
		VitaminD:    m.VitaminD,
		VitaminE:    m.VitaminE,
		VitaminK:    m.VitaminK,
		VitaminB1:   m.VitaminB1,
		VitaminB2:   m.VitaminB2,
		VitaminB3:   m.VitaminB3,
		VitaminB5:   m.VitaminB5,
		VitaminB6:   m.VitaminB6,
		VitaminB7:   m.VitaminB7,
		VitaminB9:   m.VitaminB9,
		VitaminB12:  m.VitaminB12,
		Calcium:     m.Calcium,
		Iron:        m.Iron,
		Magnesium:   m.Magnesium,
		Phosphorus:  m.Phosphorus,
		Potassium:   m.Potassium,
		Zinc:        m.Zinc,
		Copper:      m.Copper,
		Manganese:   m.Manganese,
		Selenium:    m.Selenium,
		Iodine:      m.Iodine,
		Chromium:    m.Chromium,
		Molybdenum:  m.Molybdenum,
	}
}
