package common

import (
	"errors"

	"github.com/gin-gonic/gin"
)

const (
	// Context keys
	ContextSubjectKey = "auth_subject" // Key to store the token subject (username) in context
	ContextRoleKey    = "auth_role"    // Key to store the token role in context
)

// GetSubjectFromContext retrieves the authenticated username from the Gin context.
func GetSubjectFromContext(c *gin.Context) (string, error) {
	subject := c.GetString(ContextSubjectKey)
	if subject == "" {
		return "", errors.New("subject not found in context")
	}
	return subject, nil
}

// GetRoleFromContext retrieves the role claim of the authenticated caller.
func GetRoleFromContext(c *gin.Context) (string, error) {
	role := c.GetString(ContextRoleKey)
	if role == "" {
		return "", errors.New("role not found in context")
	}
	return role, nil
}
