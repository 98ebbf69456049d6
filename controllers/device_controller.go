package controllers

import (
	"net/http"

	"github.com/andrewdphillips61/Vita-AI/services"

	"github.com/gin-gonic/gin"
)

type DeviceController struct {
	Push *services.PushService
}

func NewDeviceController(ps *services.PushService) *DeviceController {
	return &DeviceController{Push: ps}
}

// Register stores an SNS platform endpoint for the caller's device so
// goal alerts can reach it. Re-registering the same token refreshes the
// existing endpoint instead of duplicating it.
func (dc *DeviceController) Register(c *gin.Context) {
	uid := c.GetUint("userID")

	var req services.RegisterDeviceReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	dev, err := dc.Push.RegisterDevice(uid, req.Platform, req.Token)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"endpoint_arn": dev.EndpointARN,
		"platform":     dev.Platform,
		"enabled":      dev.Enabled,
	})
}
