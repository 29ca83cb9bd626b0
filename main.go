package main

import (
	"io"
	"os"
	"path/filepath"

	"github.com/atelier-luz/backend/internal/config"
	"github.com/atelier-luz/backend/internal/models"
	"github.com/atelier-luz/backend/internal/router"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Load()

	// gin uses debug as the default mode, we use release for
	// security reasons
	gin.SetMode(cfg.GinMode)

	// Log format can be explicitly set.
	// If it is not set, it defaults to human readable for development
	// and JSON for release
	output := io.Writer(os.Stdout)
	if (cfg.LogFormat == "" && gin.IsDebugging()) || cfg.LogFormat == "human" {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()

	// Create the data directory
	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), os.ModePerm); err != nil {
		log.Fatal().Msg(err.Error())
	}

	// Connect to the database and migrate all models so that the schema
	// is correct
	if err := models.Connect(cfg.DBPath); err != nil {
		log.Fatal().Msg(err.Error())
	}

	r, err := router.Config(cfg)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	router.AttachRoutes(cfg, r.Group("/"))

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal().Msg(err.Error())
	}
}
