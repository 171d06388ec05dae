package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
)

// subjectKey stores the authenticated caller: the JWT subject or the API key label.
const subjectKey = contextKey("subject")

// authMethodKey records which middleware authenticated the request.
const authMethodKey = "authMethod"

func withSubject(c *gin.Context, subject, method string) {
	c.Set(string(subjectKey), subject)
	c.Set(authMethodKey, method)
	ctx := context.WithValue(c.Request.Context(), subjectKey, subject)
	ctx = WithLogger(ctx, GetLoggerFromCtx(ctx).With("subject", subject))
	c.Request = c.Request.WithContext(ctx)
}

// GetSubjectFromContext retrieves the authenticated caller from the Gin context.
// It returns the subject and a boolean indicating if it was found.
func GetSubjectFromContext(c *gin.Context) (string, bool) {
	if v, exists := c.Get(string(subjectKey)); exists {
		subject, ok := v.(string)
		return subject, ok
	}
	if v, ok := c.Request.Context().Value(subjectKey).(string); ok {
		return v, true
	}
	return "", false
}
