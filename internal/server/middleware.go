package server

import (
	"errors"
	"net/http"
	"time"

	model "repair-auctions/internal/models"
	"repair-auctions/services/auction/helpers"
	"repair-auctions/utils"

	"github.com/gin-gonic/gin"
)

var errUnauthenticated = errors.New("request carries no valid identity")

// RequestLoggerMiddleware logs incoming requests with timing
func RequestLoggerMiddleware(c *gin.Context) {
	start := time.Now()

	c.Next() // process request

	utils.Info("HTTP Request", map[string]any{
		"method":  c.Request.Method,
		"path":    c.Request.URL.Path,
		"status":  c.Writer.Status(),
		"latency": time.Since(start).String(),
	})
}

// IdentityMiddleware turns the identity provider's headers into the caller
// Identity handlers read from the context. The headers are trusted as-is;
// issuing and verifying them is the identity provider's job, not ours.
func IdentityMiddleware(c *gin.Context) {
	id := c.GetHeader("X-User-ID")
	role := model.Role(c.GetHeader("X-User-Role"))

	if id == "" || !model.ValidRole(role) {
		utils.JSONError(c, http.StatusUnauthorized, errUnauthenticated, "missing or invalid caller identity")
		utils.Warn("IdentityMiddleware: rejected request", map[string]any{
			"path": c.Request.URL.Path,
			"role": string(role),
		})
		c.Abort()
		return
	}

	c.Set(helpers.IdentityContextKey, model.Identity{ID: id, Role: role})
	c.Next()
}
