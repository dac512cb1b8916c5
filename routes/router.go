package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/DhavalSuthar-24/livescore/config"
	"github.com/DhavalSuthar-24/livescore/internal/auth"
	"github.com/DhavalSuthar-24/livescore/internal/match"
	"github.com/DhavalSuthar-24/livescore/internal/middleware"
	"github.com/DhavalSuthar-24/livescore/internal/realtime"
	"github.com/DhavalSuthar-24/livescore/internal/team"
	"github.com/DhavalSuthar-24/livescore/pkg/rmiddleware"
)

// Dependencies are the wired services the HTTP surface is built on.
type Dependencies struct {
	Config  *config.Config
	Teams   team.TeamRepository
	Matches *match.MatchService
	Hub     *realtime.Hub
	Auth    *auth.AuthController
}

func SetupRoutes(deps Dependencies) *gin.Engine {
	if deps.Config.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()
	r.Use(cors.New(corsConfig(deps.Config.App.FrontendURL)))

	// Welcome page
	r.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(`
			<html>
				<head><title>Live Score</title></head>
				<body style="text-align:center; margin-top: 40px;">
					<h1>Live Score API 🏏</h1>
					<div><a href="/swagger/index.html">swagger</a></div>
				</body>
			</html>
		`))
	})

	// Swagger route
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Live updates
	r.GET("/ws", deps.Hub.ServeWS(realtime.Upgrader(deps.Config.App.FrontendURL)))

	adminGate := []gin.HandlerFunc{
		middleware.AuthMiddleware(deps.Config.JWT.AccessTokenSecret),
		rmiddleware.AdminMiddleware(),
	}

	// API routes
	api := r.Group("/api")
	auth.RegisterAuthRoutes(api, deps.Auth, deps.Config.JWT.AccessTokenSecret)
	team.TeamRoutes(api, deps.Teams, adminGate...)
	match.MatchRoutes(api, deps.Matches, adminGate...)

	return r
}

// corsConfig allows the scoreboard frontend; "*" or an empty value opens the
// API to any origin without credentials.
func corsConfig(frontendURL string) cors.Config {
	cfg := cors.Config{
		AllowMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Authorization"},
		MaxAge:       12 * time.Hour,
	}
	if frontendURL == "" || frontendURL == "*" {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = []string{frontendURL}
	cfg.AllowCredentials = true
	return cfg
}
