package match

import (
	"github.com/gin-gonic/gin"
)

// MatchRoutes sets up all match-related routes. Reads are public; anything
// that changes a match goes through the admin gate.
func MatchRoutes(router *gin.RouterGroup, service *MatchService, adminGate ...gin.HandlerFunc) {
	matchController := NewMatchController(service)

	// Public match routes
	router.GET("/matches", matchController.GetAllMatches)
	router.GET("/matches/:id", matchController.GetMatch)

	adminRoutes := router.Group("/matches")
	adminRoutes.Use(adminGate...)
	{
		adminRoutes.POST("", matchController.CreateMatch)
		adminRoutes.POST("/resetAll", matchController.ResetAllMatches)
		adminRoutes.PATCH("/:id", matchController.UpdateToss)
		adminRoutes.DELETE("/:id", matchController.DeleteMatch)

		// Scoring
		adminRoutes.POST("/:id/setPlayers", matchController.SetPlayers)
		adminRoutes.POST("/:id/update", matchController.RecordBall)
		adminRoutes.DELETE("/:id/ball", matchController.UndoBall)
		adminRoutes.POST("/:id/reset", matchController.ResetMatch)
	}
}
