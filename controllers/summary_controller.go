package controllers

import (
	"net/http"
	"time"

	"github.com/andrewdphillips61/Vita-AI/services"

	"github.com/gin-gonic/gin"
)

type SummaryController struct {
	Svc *services.SummaryService
}

func NewSummaryController(svc *services.SummaryService) *SummaryController {
	return &SummaryController{Svc: svc}
}

// Today returns the dashboard aggregate plus progress against the fixed
// daily goals. An empty day is a zero summary, never a 404.
func (sc *SummaryController) Today(c *gin.Context) {
	uid := c.GetUint("userID")

	sum, err := sc.Svc.TodaySummary(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"summary":  sum,
		"progress": services.GoalProgressFor(sum),
	})
}

// Day returns one date's aggregate; a null summary means "no data".
func (sc *SummaryController) Day(c *gin.Context) {
	uid := c.GetUint("userID")

	date, err := time.Parse("2006-01-02", c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date"})
		return
	}

	sum, err := sc.Svc.DaySummary(uid, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"summary": sum})
}

// Range returns the sparse per-date aggregates for a calendar window.
// strategy=split selects the alternative two-fetch path; both strategies
// produce identical aggregates for the same data.
func (sc *SummaryController) Range(c *gin.Context) {
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

	var summaries []services.DailySummary
	if c.DefaultQuery("strategy", "joined") == "split" {
		summaries, err = sc.Svc.RangeSummariesSplit(uid, from, to)
	} else {
		summaries, err = sc.Svc.RangeSummaries(uid, from, to)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, summaries)
}
