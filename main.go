package main

import (
	_ "github.com/DhavalSuthar-24/livescore/docs"
	"github.com/DhavalSuthar-24/livescore/internal/cli"
)

// @title Live Score REST API
// @version 1.0
// @description Ball-by-ball cricket scoring with live websocket updates 🏏.
// @host localhost:8088
// @BasePath /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
func main() {
	cli.Execute()
}
