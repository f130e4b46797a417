package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/atif128873806/lead-intelligence-platfor/internal/domain"
	"github.com/atif128873806/lead-intelligence-platfor/internal/logger"
	"github.com/atif128873806/lead-intelligence-platfor/internal/service"
)

// userKey is the Gin context key the authenticated user is stored under.
const userKey = "currentUser"

// Auth returns a middleware that requires a valid bearer token and loads
// the account it belongs to into the request context.
// Parameters:
//   - authService: auth service used to resolve tokens.
// Returns:
//   - gin.HandlerFunc: middleware handler.
func Auth(authService *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid authentication credentials",
			})
			return
		}

		user, err := authService.ResolveToken(c.Request.Context(), token)
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrUserInactive):
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
					"error": "User account is inactive",
				})
			case errors.Is(err, domain.ErrInvalidCredentials):
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
					"error": "Invalid authentication credentials",
				})
			default:
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error": "Authentication check failed",
				})
			}
			return
		}

		c.Set(userKey, user)
		ctx := logger.WithField(c.Request.Context(), logger.FieldUserID, user.ID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// CurrentUser returns the authenticated user for the request, or nil on
// routes that are not behind Auth.
// Parameters:
//   - c: Gin request context.
// Returns:
//   - *domain.User: authenticated user or nil.
func CurrentUser(c *gin.Context) *domain.User {
	if v, exists := c.Get(userKey); exists {
		if user, ok := v.(*domain.User); ok {
			return user
		}
	}
	return nil
}
