package main

import (
	"net/http"

	_ "sheet-addresses-api/docs" // Import generated docs
	"sheet-addresses-api/internal/handler"
	"sheet-addresses-api/internal/metrics"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func newRouter(records *handler.RecordsHandler, places *handler.PlacesHandler) *gin.Engine {
	r := gin.New()
	r.Use(handler.RequestLogger(log.Logger), handler.Metrics(), gin.Recovery())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})
	r.GET("/metrics", gin.WrapH(metrics.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.POST("/api/get_data", records.GetData)
	r.POST("/api/get_places", places.GetPlaces)

	return r
}
