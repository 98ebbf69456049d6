package services

import (
	"github.com/andrewdphillips61/Vita-AI/models"
)

// EntryToAnalysis rebuilds the transient analysis shape from a stored
// entry so history rows travel the same presentation path as a fresh
// capture. Numeric fields pass through exactly as stored; absent profiles
// flatten to zeros. health_benefits is never persisted, so it always
// comes back empty — a lossy round trip by design, not a defect.
func EntryToAnalysis(entry *models.FoodEntry) *FoodAnalysis {
	fa := &FoodAnalysis{
		FoodName:           entry.FoodName,
		Description:        entry.Description,
		FoodCategory:       entry.FoodCategory,
		PortionSize:        entry.PortionSize,
		PortionDescription: entry.PortionDescription,
		ConfidenceScore:    entry.ConfidenceScore,
		HealthBenefits:     []string{},
		Image:              entry.ImageURL,
	}

	if fa.FoodCategory == "" {
		fa.FoodCategory = "Food"
	}
	if fa.PortionSize == 0 {
		fa.PortionSize = 1
	}
	if fa.PortionDescription == "" {
		fa.PortionDescription = "1 serving"
	}
	if fa.ConfidenceScore == 0 {
		fa.ConfidenceScore = 0.8
	}

	if m := entry.Macros; m != nil {
		fa.Macronutrients = AnalysisMacros{
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

	if m := entry.Micros; m != nil {
		fa.Micronutrients = AnalysisMicros{
			VitaminA:   m.VitaminA,
			VitaminC:   m.VitaminC,
			VitaminD:   m.VitaminD,
			VitaminE:   m.VitaminE,
			VitaminK:   m.VitaminK,
			VitaminB1:  m.VitaminB1,
			VitaminB2:  m.VitaminB2,
			VitaminB3:  m.VitaminB3,
			VitaminB5:  m.VitaminB5,
			VitaminB6:  m.VitaminB6,
			VitaminB7:  m.VitaminB7,
			VitaminB9:  m.VitaminB9,
			VitaminB12: m.VitaminB12,
			Calcium:    m.Calcium,
			Iron:       m.Iron,
			Magnesium:  m.Magnesium,
			Phosphorus: m.Phosphorus,
			Potassium:  m.Potassium,
			Zinc:       m.Zinc,
			Copper:     m.Copper,
			Manganese:  m.Manganese,
			Selenium:   m.Selenium,
			Iodine:     m.Iodine,
			Chromium:   m.Chromium,
			Molybdenum: m.Molybdenum,
		}
	}

	return fa
}
