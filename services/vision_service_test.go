package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeFoodAnalysisWrapped(t *testing.T) {
	raw := []byte(`{"foodAnalysis": {
		"food_name": "Tapioca",
		"food_category": "Café da manhã",
		"portion_size": 80,
		"confidence_score": 0.91,
		"macronutrients": {"calories": 210.5, "protein": 1.2, "carbohydrates": 50.3, "total_fat": 0.3},
		"micronutrients": {"vitamin_b1_thiamine": 0.02},
		"health_benefits": ["sem glúten"]
	}}`)

	fa, err := DecodeFoodAnalysis(raw)
	assert.NoError(t, err)
	assert.Equal(t, "Tapioca", fa.FoodName)
	assert.Equal(t, 210.5, fa.Macronutrients.Calories)
	assert.Equal(t, 0.02, fa.Micronutrients.VitaminB1)
	assert.Equal(t, []string{"sem glúten"}, fa.HealthBenefits)
}

func TestDecodeFoodAnalysisBareObject(t *testing.T) {
	raw := []byte(`{"food_name": "Coxinha", "confidence_score": 0.77}`)

	fa, err := DecodeFoodAnalysis(raw)
	assert.NoError(t, err)
	assert.Equal(t, "Coxinha", fa.FoodName)
	assert.Equal(t, 0.77, fa.ConfidenceScore)
}

func TestDecodeFoodAnalysisRejectsInvalid(t *testing.T) {
	_, err := DecodeFoodAnalysis([]byte(`not json`))
	assert.Error(t, err)

	_, err = DecodeFoodAnalysis([]byte(`{"foodAnalysis": {}}`))
	assert.Error(t, err)

	_, err = DecodeFoodAnalysis([]byte(`{"description": "sem nome"}`))
	assert.Error(t, err)
}

func TestSplitDataURI(t *testing.T) {
	mime, data, err := splitDataURI("data:image/png;base64,iVBORw0KGgo=")
	assert.NoError(t, err)
	assert.Equal(t, "image/png", mime)
	assert.Equal(t, "iVBORw0KGgo=", data)

	// Raw base64 without a prefix is assumed JPEG.
	mime, data, err = splitDataURI("/9j/4AAQSkZJRg==")
	assert.NoError(t, err)
	assert.Equal(t, "image/jpeg", mime)
	assert.Equal(t, "/9j/4AAQSkZJRg==", data)

	_, _, err = splitDataURI("data:image/png;base64")
	assert.Error(t, err)
}
