package auth

import (
	"crypto/subtle"
	"fmt"
	"log"
	"net/http"

	"github.com/DhavalSuthar-24/livescore/config"
	"github.com/DhavalSuthar-24/livescore/internal/common"
	"github.com/DhavalSuthar-24/livescore/pkg/token"
	"github.com/DhavalSuthar-24/livescore/utils"
	"github.com/gin-gonic/gin"
)

// AdminRole is the only role a token is issued for.
const AdminRole = "admin"

// AuthController signs in the single configured scorer account.
type AuthController struct {
	username      string
	passwordHash  string
	jwtSecret     string
	expiryMinutes int
}

// NewAuthController hashes the configured admin password once at startup so
// the plain text is not kept around.
func NewAuthController(cfg *config.Config) (*AuthController, error) {
	hash, err := utils.HashPassword(cfg.Admin.Password)
	if err != nil {
		return nil, fmt.Errorf("hash admin password: %w", err)
	}
	return &AuthController{
		username:      cfg.Admin.Username,
		passwordHash:  hash,
		jwtSecret:     cfg.JWT.AccessTokenSecret,
		expiryMinutes: cfg.JWT.AccessTokenExpiryMinutes,
	}, nil
}

// @Summary      Log in as the scorer
// @Description  Exchanges the admin credentials for a bearer token used on every scoring route.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        credentials body LoginRequest true "Admin credentials"
// @Success      200 {object} AuthResponse
// @Failure      400 {object} map[string]string "Invalid input"
// @Failure      401 {object} map[string]string "Invalid credentials"
// @Router       /auth/login [post]
func (ac *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	userOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(ac.username)) == 1
	// bcrypt runs for unknown usernames too
	passOK := utils.CheckPassword(ac.passwordHash, req.Password)
	if !userOK || !passOK {
		log.Printf("Failed login attempt for %q from %s", req.Username, c.ClientIP())
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	accessToken, err := token.GenerateJWT(ac.username, AdminRole, ac.jwtSecret, ac.expiryMinutes)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "access token generation failed: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, AuthResponse{
		AccessToken: accessToken,
		TokenType:   "Bearer",
		ExpiresIn:   ac.expiryMinutes * 60,
	})
}

// @Summary      Current caller
// @Tags         Auth
// @Produce      json
// @Success      200 {object} ProfileResponse
// @Failure      401 {object} map[string]string "Unauthorized"
// @Security     ApiKeyAuth
// @Router       /auth/me [get]
func (ac *AuthController) GetProfile(c *gin.Context) {
	subject, err := common.GetSubjectFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized: " + err.Error()})
		return
	}
	role, _ := common.GetRoleFromContext(c)
	c.JSON(http.StatusOK, ProfileResponse{Username: subject, Role: role})
}
