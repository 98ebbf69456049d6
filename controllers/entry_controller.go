package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/andrewdphillips61/Vita-AI/services"
	"github.com/andrewdphillips61/Vita-AI/utils"

	"github.com/gin-gonic/gin"
)

type EntryController struct {
	Vision    *services.VisionService
	Rek       *services.RekognitionService
	Entries   *services.EntryService
	Summaries *services.SummaryService
	Hub       *services.RealtimeHub
}

func NewEntryController(
	vision *services.VisionService,
	rek *services.RekognitionService,
	entries *services.EntryService,
	summaries *services.SummaryService,
	hub *services.RealtimeHub,
) *EntryController {
	return &EntryController{Vision: vision, Rek: rek, Entries: entries, Summaries: summaries, Hub: hub}
}

type AnalyzeInput struct {
	ImageBase64 string `json:"image_base64" binding:"required"`
	MealType    string `json:"meal_type"`
}

// Analyze runs the capture through the vision model and returns the
// transient analysis. Nothing is persisted until the user confirms.
func (ec *EntryController) Analyze(c *gin.Context) {
	var input AnalyzeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	// Cheap gate before the generative call. A Rekognition failure means
	// "unknown", not "not food".
	if ec.Rek != nil {
		if isFood, err := ec.Rek.LooksLikeFood(input.ImageBase64); err == nil && !isFood {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "nenhum alimento detectado na imagem"})
			return
		}
	}

	analysis, err := ec.Vision.Analyze(input.ImageBase64)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"success": false, "error": err.Error()})
		return
	}

	// Image storage is best-effort; the analysis is still usable without
	// a hosted copy.
	uid := c.GetUint("userID")
	imageURL, err := utils.UploadBase64ImageToS3(input.ImageBase64, fmt.Sprintf("meal-photos/%d", uid))
	if err != nil {
		imageURL = ""
	}
	analysis.Image = imageURL

	mealType := input.MealType
	if mealType == "" {
		mealType = "snack"
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"data":     gin.H{"foodAnalysis": analysis},
		"imageUrl": imageURL,
		"mealType": mealType,
	})
}

type LogEntryInput struct {
	Analysis *services.FoodAnalysis `json:"analysis" binding:"required"`
	ImageURL string                 `json:"image_url"`
	MealType string                 `json:"meal_type"`
}

// LogEntry persists a confirmed analysis, notifies open dashboards, and
// fires the goal-reached alert on the crossing.
func (ec *EntryController) LogEntry(c *gin.Context) {
	var input LogEntryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	uid := c.GetUint("userID")
	entry, err := ec.Entries.Create(uid, input.Analysis, input.ImageURL, input.MealType)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if ec.Hub != nil {
		ec.Hub.BroadcastEntryLogged(uid, entry.ID, entry.Date.Format("2006-01-02"))
	}

	if sum, err := ec.Summaries.TodaySummary(uid); err == nil {
		before := float64(sum.Calories) - input.Analysis.Macronutrients.Calories
		if float64(sum.Calories) >= utils.CalorieGoal && before < utils.CalorieGoal {
			services.NotifyGoalReached(uid, sum.Calories)
		}
	}

	c.JSON(http.StatusCreated, entry)
}

// ListByDate returns the full projection for one calendar day.
func (ec *EntryController) ListByDate(c *gin.Context) {
	uid := c.GetUint("userID")

	date, err := time.Parse("2006-01-02", c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date"})
		return
	}

	entries, err := ec.Entries.EntriesByDate(uid, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, entries)
}

// ListRange returns the partial projection between from and to, inclusive.
func (ec *EntryController) ListRange(c *gin.Context) {
	uid := c.GetUint("userID")

	from, err := time.Parse("2006-01-02", c.Query("from"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid from date"})
		return
	}
	to, err := time.Parse("2006-01-02", c.Query("to"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid to date"})
		return
	}
	if to.Before(from) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "`to` must be on/after `from`"})
		return
	}

	entries, err := ec.Entries.EntriesInRange(uid, from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, entries)
}

// GetByID returns the stored entry plus its reconstructed analysis so the
// client reuses the capture result screen for history rows.
func (ec *EntryController) GetByID(c *gin.Context) {
	entry, err := ec.Entries.EntryByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrEntryNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "entry not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"entry":    entry,
		"analysis": services.EntryToAnalysis(entry),
	})
}

// Today feeds the recent-entries card with display-ready rows.
func (ec *EntryController) Today(c *gin.Context) {
	uid := c.GetUint("userID")

	entries, err := ec.Entries.TodayEntries(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	out := make([]gin.H, 0, len(entries))
	for i := range entries {
		e := &entries[i]
		item := gin.H{
			"id":         e.ID,
			"food_name":  e.FoodName,
			"meal_type":  e.MealType,
			"meal_label": utils.MealTypeLabel(e.MealType),
			"time_label": utils.FormatEntryClockToday(e.Time),
		}
		if e.Macros != nil {
			item["calories"] = e.Macros.Calories
			item["protein"] = e.Macros.Protein
			item["carbohydrates"] = e.Macros.Carbohydrates
			item["total_fat"] = e.Macros.TotalFat
		}
		out = append(out, item)
	}
	c.JSON(http.StatusOK, out)
}
