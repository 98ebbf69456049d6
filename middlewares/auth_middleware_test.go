package middlewares

import (
	"net/http/httptest"
	"testing"

	"github.com/andrewdphillips61/Vita-AI/models"
	"github.com/andrewdphillips61/Vita-AI/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestProfileRoundTripThroughContext(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	u := &models.User{Email: "ana@example.com", FullName: "Ana"}
	u.ID = 7
	setProfile(c, u)

	pc := Profile(c)
	assert.Equal(t, services.ProfileLoaded, pc.State)
	assert.Equal(t, uint(7), pc.User.ID)
	assert.Equal(t, "Ana", pc.User.FullName)

	// The bare keys stay available for handlers that only need the id.
	assert.Equal(t, uint(7), c.GetUint("userID"))
	assert.Equal(t, "ana@example.com", c.GetString("email"))
}

func TestProfileMissingIsUnloaded(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	pc := Profile(c)
	assert.Equal(t, services.ProfileUnloaded, pc.State)
	assert.Nil(t, pc.User)
}
