package main

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/road2gameday-tech/Hit4Power-Player-Development-Tool-1/config"
	"github.com/road2gameday-tech/Hit4Power-Player-Development-Tool-1/db"
	"github.com/road2gameday-tech/Hit4Power-Player-Development-Tool-1/handlers"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg := config.Load()

	conn, err := db.Open(cfg)
	if err != nil {
		logger.Fatal("database open failed", zap.String("url", cfg.DatabaseURL), zap.Error(err))
	}

	if _, err := db.SeedInstructor(conn, cfg.InstructorDefaultCode); err != nil {
		logger.Fatal("instructor seed failed", zap.Error(err))
	}

	r := gin.Default()

	// Load HTML templates
	r.LoadHTMLGlob("templates/*")

	// Serve static assets (CSS, JS, uploaded player images)
	r.Static("/static", "static")

	store := cookie.NewStore([]byte(cfg.SessionSecret))
	r.Use(sessions.Sessions("h4p_session", store))

	r.GET("/", handlers.Landing())

	r.GET("/instructor", handlers.InstructorLoginForm(conn, cfg.InstructorDefaultCode))
	r.POST("/instructor", handlers.InstructorLogin(conn))
	r.GET("/player", handlers.PlayerLoginForm())
	r.POST("/player", handlers.PlayerLogin(conn))
	r.GET("/logout", handlers.Logout())

	r.GET("/instructor/clients", handlers.ClientsPage(conn))
	r.POST("/instructor/favorite/:player_id", handlers.ToggleFavorite(conn))
	r.POST("/instructor/create-player", handlers.CreatePlayer(conn, cfg, logger))

	r.GET("/player/dashboard", handlers.PlayerDashboard(conn))

	logger.Info("listening", zap.String("addr", cfg.Addr))
	if err := r.Run(cfg.Addr); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
