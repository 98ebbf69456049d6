package services

import (
	"testing"

	"github.com/andrewdphillips61/Vita-AI/models"

	"github.com/stretchr/testify/assert"
)

func TestEntryToAnalysisAppliesPlaceholders(t *testing.T) {
	entry := &models.FoodEntry{
		ID:       "e1",
		FoodName: "Pão de queijo",
	}

	fa := EntryToAnalysis(entry)

	assert.Equal(t, "Pão de queijo", fa.FoodName)
	assert.Equal(t, "Food", fa.FoodCategory)
	assert.Equal(t, 1.0, fa.PortionSize)
	assert.Equal(t, "1 serving", fa.PortionDescription)
	assert.Equal(t, 0.8, fa.ConfidenceScore)
}

func TestEntryToAnalysisKeepsStoredValues(t *testing.T) {
	entry := &models.FoodEntry{
		ID:                 "e2",
		FoodName:           "Feijoada",
		Description:        "Prato típico",
		FoodCategory:       "Prato principal",
		PortionSize:        350,
		PortionDescription: "1 prato fundo",
		ConfidenceScore:    0.93,
		ImageURL:           "https://example.com/feijoada.jpg",
	}

	fa := EntryToAnalysis(entry)

	assert.Equal(t, "Prato principal", fa.FoodCategory)
	assert.Equal(t, 350.0, fa.PortionSize)
	assert.Equal(t, "1 prato fundo", fa.PortionDescription)
	assert.Equal(t, 0.93, fa.ConfidenceScore)
	assert.Equal(t, "https://example.com/feijoada.jpg", fa.Image)
}

func TestEntryToAnalysisHealthBenefitsAlwaysEmpty(t *testing.T) {
	fa := EntryToAnalysis(&models.FoodEntry{ID: "e3", FoodName: "Açaí"})

	// Never persisted, so never recovered. Empty slice, not nil, so the
	// JSON field is [] rather than null.
	assert.NotNil(t, fa.HealthBenefits)
	assert.Empty(t, fa.HealthBenefits)
}

func TestEntryToAnalysisZerosWhenProfilesMissing(t *testing.T) {
	fa := EntryToAnalysis(&models.FoodEntry{ID: "e4", FoodName: "Água"})

	assert.Equal(t, AnalysisMacros{}, fa.Macronutrients)
	assert.Equal(t, AnalysisMicros{}, fa.Micronutrients)
}

// Writing an analysis through the row mappers and converting the entry
// back must preserve every numeric field exactly.
func TestEntryToAnalysisRoundTripExact(t *testing.T) {
	original := &FoodAnalysis{
		FoodName:           "Moqueca",
		Description:        "Peixe com leite de coco",
		FoodCategory:       "Prato principal",
		PortionSize:        420.5,
		PortionDescription: "1 porção generosa",
		ConfidenceScore:    0.875,
		HealthBenefits:     []string{"rica em ômega 3"},
		Macronutrients: AnalysisMacros{
			Calories:           512.345678,
			Protein:            33.333333,
			Carbohydrates:      12.125,
			TotalCarbs:         14.5,
			DietaryFiber:       2.375,
			NetCarbs:           12.125,
			TotalFat:           38.7,
			SaturatedFat:       21.05,
			TransFat:           0.01,
			MonounsaturatedFat: 9.4,
			PolyunsaturatedFat: 5.2,
			Cholesterol:        88.8,
			Sodium:             923.7,
			Sugar:              4.4,
			AddedSugar:         0.5,
		},
		Micronutrients: AnalysisMicros{
			VitaminA:   120.5,
			VitaminC:   18.2,
			VitaminD:   6.1,
			VitaminB12: 3.456789,
			Calcium:    87.3,
			Iron:       2.9,
			Magnesium:  54.1,
			Potassium:  712.6,
			Selenium:   42.0,
		},
	}

	entry := &models.FoodEntry{
		ID:                 "e5",
		FoodName:           original.FoodName,
		Description:        original.Description,
		FoodCategory:       original.FoodCategory,
		PortionSize:        original.PortionSize,
		PortionDescription: original.PortionDescription,
		ConfidenceScore:    original.ConfidenceScore,
		Macros:             macroRowFromAnalysis("e5", &original.Macronutrients),
		Micros:             microRowFromAnalysis("e5", &original.Micronutrients),
	}

	fa := EntryToAnalysis(entry)

	assert.Equal(t, original.Macronutrients, fa.Macronutrients)
	assert.Equal(t, original.Micronutrients, fa.Micronutrients)
	assert.Equal(t, original.FoodName, fa.FoodName)
	assert.Equal(t, original.ConfidenceScore, fa.ConfidenceScore)
	// The only lossy field.
	assert.Empty(t, fa.HealthBenefits)
}
