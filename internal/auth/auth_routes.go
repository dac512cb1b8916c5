package auth

import (
	"github.com/DhavalSuthar-24/livescore/internal/middleware"
	"github.com/gin-gonic/gin"
)

func RegisterAuthRoutes(router *gin.RouterGroup, authController *AuthController, jwtSecret string) {
	// Public routes
	authPublic := router.Group("/auth")
	{
		authPublic.POST("/login", authController.Login)
	}

	// Authenticated routes (protected by auth middleware)
	authProtected := router.Group("/auth")
	authProtected.Use(middleware.AuthMiddleware(jwtSecret))
	{
		authProtected.GET("/me", authController.GetProfile)
	}
}
