package middleware

import (
	"github.com/SscSPs/ledger_engine/internal/utils"
	"github.com/gin-gonic/gin"
)

// APIKeySubject is the subject recorded for requests authenticated with the shared API key.
const APIKeySubject = "api-key"

// APIKeyAuth authenticates requests carrying an x-api-key header that matches the
// configured bcrypt hash. Requests without a valid key continue to the JWT check.
func APIKeyAuth(apiKeyHash string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if apiKeyHash == "" {
			c.Next()
			return
		}
		key := c.GetHeader("x-api-key")
		if key == "" {
			c.Next()
			return
		}
		if !utils.CheckAPIKeyHash(key, apiKeyHash) {
			GetLoggerFromCtx(c.Request.Context()).Warn("API key rejected")
			c.Next()
			return
		}
		withSubject(c, APIKeySubject, "api_key")
		c.Next()
	}
}
