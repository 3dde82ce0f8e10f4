package app

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Kurty-byte/plant-sampling/internal/api/handlers"
	"github.com/Kurty-byte/plant-sampling/internal/api/middleware"
	"github.com/Kurty-byte/plant-sampling/internal/config"
)

func newRouter(cfg *config.Config, server *handlers.Server) *gin.Engine {
	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.ErrorHandler(),
		middleware.Metrics(),
	)
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", middleware.RequestIDHeader},
		ExposeHeaders:    []string{middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health/live", server.GetLiveness)
		v1.GET("/health/ready", server.GetReadiness)

		v1.GET("/locations", server.ListLocations)
		v1.POST("/locations", server.CreateLocation)
		v1.GET("/locations/:id", server.GetLocation)
		v1.PUT("/locations/:id", server.UpdateLocation)
		v1.DELETE("/locations/:id", server.DeleteLocation)

		v1.GET("/conditions", server.ListConditions)
		v1.POST("/conditions", server.CreateCondition)
		v1.GET("/conditions/:id", server.GetCondition)
		v1.PUT("/conditions/:id", server.UpdateCondition)
		v1.DELETE("/conditions/:id", server.DeleteCondition)

		v1.GET("/researchers", server.ListResearchers)
		v1.POST("/researchers", server.CreateResearcher)
		v1.GET("/researchers/:id", server.GetResearcher)
		v1.PUT("/researchers/:id", server.UpdateResearcher)
		v1.DELETE("/researchers/:id", server.DeleteResearcher)

		v1.GET("/specimens", server.ListSpecimens)
		v1.POST("/specimens", server.CreateSpecimen)
		v1.GET("/specimens/:id", server.GetSpecimen)
		v1.PUT("/specimens/:id", server.UpdateSpecimen)
		v1.DELETE("/specimens/:id", server.SoftDeleteSpecimen)
		v1.DELETE("/specimens/:id/hard", server.HardDeleteSpecimen)
		v1.GET("/specimens/:id/growth-metrics", server.ListSpecimenGrowthMetrics)
		v1.POST("/specimens/:id/growth-metrics", server.RecordSpecimenGrowth)
		v1.GET("/specimens/:id/audit-logs", server.ListSpecimenAuditLogs)

		v1.GET("/growth-metrics", server.ListGrowthMetrics)
		v1.POST("/growth-metrics", server.CreateGrowthMetric)
		v1.GET("/growth-metrics/:id", server.GetGrowthMetric)
		v1.PUT("/growth-metrics/:id", server.UpdateGrowthMetric)
		v1.DELETE("/growth-metrics/:id", server.DeleteGrowthMetric)

		v1.GET("/specimen-researchers", server.ListLinks)
		v1.POST("/specimen-researchers", server.CreateLink)
		v1.GET("/specimen-researchers/:id", server.GetLink)
		v1.DELETE("/specimen-researchers/:id", server.DeleteLink)

		v1.GET("/audit-logs", server.ListAuditLogs)
	}

	return router
}
