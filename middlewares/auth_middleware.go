// middlewares/auth_middleware.go
package middlewares

import (
	"errors"
	"net/http"
	"os"
	"strings"

	"github.com/andrewdphillips61/Vita-AI/config"
	"github.com/andrewdphillips61/Vita-AI/models"
	"github.com/andrewdphillips61/Vita-AI/services"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// ProfileKey is the gin context key holding the request's ProfileContext.
const ProfileKey = "profile"

// AuthMiddleware validates the bearer token and resolves the caller's
// profile exactly once per request. Handlers read the internal user id
// from "userID" and the full profile context from ProfileKey; nothing
// downstream touches identity-provider identifiers.
func AuthMiddleware(resolver *services.ProfileResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		secret := []byte(os.Getenv("JWT_SECRET"))
		if len(secret) == 0 {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "server misconfigured: JWT_SECRET not set"})
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return secret, nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid claims"})
			return
		}

		// First-party tokens carry the internal id directly.
		if v, ok := claims["userId"].(float64); ok {
			var user models.User
			if err := config.DB.First(&user, uint(v)).Error; err != nil {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
				return
			}
			setProfile(c, &user)
			return
		}

		// Identity-provider tokens carry the external subject; map it
		// through the cached resolver.
		sub, _ := claims["sub"].(string)
		if sub == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "subject claim missing"})
			return
		}

		pc := resolver.Resolve(sub)
		if pc.State != services.ProfileLoaded && errors.Is(pc.Err, services.ErrProfileNotFound) {
			// First sign-in through the identity provider: provision the
			// profile row and retry once.
			email, _ := claims["email"].(string)
			name, _ := claims["name"].(string)
			if email != "" {
				resolver.EnsureProfile(sub, email, name)
				pc = resolver.Resolve(sub)
			}
		}
		if pc.State != services.ProfileLoaded {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
			return
		}
		setProfile(c, pc.User)
	}
}

func setProfile(c *gin.Context, user *models.User) {
	c.Set("userID", user.ID)
	c.Set("email", user.Email)
	c.Set(ProfileKey, services.ProfileContext{State: services.ProfileLoaded, User: user})
	c.Next()
}

// Profile returns the ProfileContext resolved by AuthMiddleware. Handlers
// that need more than the bare user id read the loaded profile from here
// instead of re-querying.
func Profile(c *gin.Context) services.ProfileContext {
	if v, ok := c.Get(ProfileKey); ok {
		if pc, ok := v.(services.ProfileContext); ok {
			return pc
		}
	}
	return services.ProfileContext{State: services.ProfileUnloaded}
}
