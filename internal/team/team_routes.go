package team

import (
	"github.com/gin-gonic/gin"
)

// TeamRoutes sets up all team-related routes. Registering a team goes through
// the admin gate.
func TeamRoutes(router *gin.RouterGroup, repo TeamRepository, adminGate ...gin.HandlerFunc) {
	teamController := NewTeamController(repo)

	// Public team routes
	router.GET("/teams", teamController.GetAllTeams)
	router.GET("/teams/:id", teamController.GetTeamByID)

	adminRoutes := router.Group("/teams")
	adminRoutes.Use(adminGate...)
	{
		adminRoutes.POST("", teamController.CreateTeam)
	}
}
