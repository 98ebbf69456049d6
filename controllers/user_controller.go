package controllers

import (
	"net/http"

	"github.com/andrewdphillips61/Vita-AI/middlewares"
	"github.com/andrewdphillips61/Vita-AI/services"

	"github.com/gin-gonic/gin"
)

// GetProfile answers from the profile the middleware already resolved;
// no second lookup.
func GetProfile(c *gin.Context) {
	pc := middlewares.Profile(c)
	if pc.State != services.ProfileLoaded {
		c.JSON(http.StatusNotFound, gin.H{"error": "profile not loaded"})
		return
	}

	u := pc.User
	c.JSON(http.StatusOK, gin.H{
		"id":        u.ID,
		"email":     u.Email,
		"full_name": u.FullName,
		"verified":  u.Verified,
	})
}

func UpdateProfile(c *gin.Context) {
	pc := middlewares.Profile(c)
	if pc.State != services.ProfileLoaded {
		c.JSON(http.StatusNotFound, gin.H{"error": "profile not loaded"})
		return
	}

	var input services.ProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := services.UpdateUserProfile(pc.User.ID, input); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "profile updated successfully"})
}
