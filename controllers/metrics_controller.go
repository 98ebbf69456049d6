package controllers

import (
	"net/http"

	"github.com/andrewdphillips61/Vita-AI/services"
	"github.com/andrewdphillips61/Vita-AI/utils"

	"github.com/gin-gonic/gin"
)

// AnalysisMetrics turns an analysis payload into the display-ready derived
// numbers: confidence out of 100, calorie shares against the stated
// calories, and the distribution bar against the macro-kcal sum. The two
// percentage bases feed different widgets and deliberately diverge.
func AnalysisMetrics(c *gin.Context) {
	var analysis services.FoodAnalysis
	if err := c.ShouldBindJSON(&analysis); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	m := analysis.Macronutrients
	c.JSON(http.StatusOK, gin.H{
		"confidence":   utils.ConfidenceDisplay(analysis.ConfidenceScore),
		"shares":       utils.SharesOfStatedCalories(m.Calories, m.Protein, m.Carbohydrates, m.TotalFat),
		"distribution": utils.DistributionBar(m.Protein, m.Carbohydrates, m.TotalFat),
	})
}
