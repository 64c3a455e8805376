package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"meetpoll-api/core/config"
	"meetpoll-api/core/database"
	"meetpoll-api/core/logger"
	"meetpoll-api/core/middleware"
	"meetpoll-api/modules/event"
	"meetpoll-api/modules/response"

	"github.com/labstack/echo/v4"
)

// Run wires configuration, storage and modules together and serves until
// interrupted.
func Run() error {
	cfg := config.Load()
	logger.Init(cfg.LogLevel)

	db, err := database.InitDB(database.DatabaseConfig{Path: cfg.DBPath})
	if err != nil {
		return err
	}
	defer db.Close()

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	mw := middleware.NewMiddleware(cfg)
	e.Use(mw.Recover())
	e.Use(mw.CORS())
	e.Use(mw.RequestLogger())

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	event.Init(e, db, mw)
	response.Init(e, db, mw)

	go func() {
		logger.Info("Starting server", "port", cfg.Port)
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			logger.Error("Server stopped", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(ctx)
}
