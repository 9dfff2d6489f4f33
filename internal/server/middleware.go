package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"auction-house/internal/metrics"
	handler "auction-house/services/auction/handler"
	"auction-house/utils"
)

// TokenVerifier resolves an auth token into a verified user id
type TokenVerifier interface {
	VerifyToken(token string) (string, error)
}

// RequestLoggerMiddleware logs incoming requests with timing
func RequestLoggerMiddleware(c *gin.Context) {
	start := time.Now()

	c.Next() // process request

	latency := time.Since(start)
	metrics.ObserveRequest(c.Request.Method, c.FullPath(), c.Writer.Status(), latency)
	utils.Info("HTTP Request", map[string]any{
		"method":  c.Request.Method,
		"path":    c.Request.URL.Path,
		"status":  c.Writer.Status(),
		"latency": latency.String(),
	})
}

// AuthMiddleware verifies the auth-token header and stores the user id in
// the request context. Identity is established here once; handlers trust it.
func AuthMiddleware(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader("auth-token")
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "not authenticated"})
			return
		}

		userID, err := verifier.VerifyToken(token)
		if err != nil {
			utils.Warn("AuthMiddleware: token rejected", map[string]any{"error": err.Error()})
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "invalid token"})
			return
		}

		c.Set(handler.ContextUserID, userID)
		c.Next()
	}
}
