package main

//go:generate go run github.com/swaggo/swag/cmd/swag@v1.16.3 init -g main.go -d ./,../../internal -o ../../docs

import (
	"context"

	"sheet-addresses-api/internal/config"
	"sheet-addresses-api/internal/handler"
	"sheet-addresses-api/internal/logging"
	"sheet-addresses-api/internal/repository"
	"sheet-addresses-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
)

// @title        Sheet Addresses API
// @version      1.0
// @description  Reads name/region/locality rows from a Google spreadsheet and returns deduplicated name/address pairs.
// @BasePath     /
func main() {
	config, err := config.LoadConfig("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	if err := logging.Setup(config.LogLevel, config.LogFormat); err != nil {
		log.Fatal().Err(err).Msg("cannot configure logger")
	}

	// Sheets client
	var opts []option.ClientOption
	if config.SheetsEndpoint != "" {
		opts = append(opts, option.WithEndpoint(config.SheetsEndpoint))
	}
	repo, err := repository.NewSheetsRepository(context.Background(), config.GoogleSheetsAPIKey, opts...)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot create sheets client")
	}

	// Initialize layers
	recordService := service.NewRecordService(repo)

	recordsHandler := handler.NewRecordsHandler(recordService)
	placesHandler := handler.NewPlacesHandler(recordService)

	gin.SetMode(config.GinMode)
	r := newRouter(recordsHandler, placesHandler)

	log.Info().Str("addr", config.ServerAddress).Msg("starting server")
	if err := r.Run(config.ServerAddress); err != nil {
		log.Fatal().Err(err).Msg("server failed")
	}
}
