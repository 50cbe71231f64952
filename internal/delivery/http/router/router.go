// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"agromon/internal/delivery/http/middleware"
	"agromon/internal/delivery/http/router/handler"
	"agromon/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler       *handler.AuthHandler
	CropHandler       *handler.CropHandler
	ActionHandler     *handler.ActionHandler
	MonitoringHandler *handler.MonitoringHandler
	ScientistHandler  *handler.ScientistHandler
	SensorHandler     *handler.SensorHandler
	HealthHandler     *handler.HealthHandler

	AuthMiddleware  *middleware.AuthMiddleware
	ScopeMiddleware *middleware.RequestScopeMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.Use(r.params.ScopeMiddleware.Process)

	// Health check endpoint
	e.GET("/health", r.params.HealthHandler.Check)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", r.params.AuthHandler.Login)
		authGroup.POST("/registro", r.params.AuthHandler.Register)
		authGroup.GET("/user/:userId", r.params.AuthHandler.GetUser)
		authGroup.PUT("/user/:userId", r.params.AuthHandler.UpdateProfile)
	}

	// Farmer routes require a resolvable credential
	farmerGroup := e.Group("/farmer")
	farmerGroup.Use(r.params.AuthMiddleware.Authenticate)
	{
		farmerGroup.GET("/crops", r.params.CropHandler.ListCrops)
		farmerGroup.POST("/crops", r.params.CropHandler.SubmitAction)
		farmerGroup.GET("/crops/:cropId", r.params.CropHandler.GetCrop)
		farmerGroup.PUT("/crops/:cropId", r.params.CropHandler.UpdateCrop)
		farmerGroup.DELETE("/crops/:cropId", r.params.CropHandler.DeleteCrop)
		farmerGroup.DELETE("/crops/:cropId/history/:actionId", r.params.CropHandler.DeleteHistoryEntry)
		farmerGroup.GET("/sync-all-data", r.params.CropHandler.SyncAllData)

		farmerGroup.GET("/actions", r.params.ActionHandler.ListActions)
		farmerGroup.POST("/actions", r.params.ActionHandler.RecordAction)

		farmerGroup.GET("/alerts", r.params.MonitoringHandler.ListAlerts)
		farmerGroup.PUT("/alerts/:alertId/read", r.params.MonitoringHandler.MarkAlertRead)

		farmerGroup.GET("/sensor-data", r.params.MonitoringHandler.ListSensorData)
		farmerGroup.GET("/sensor-data/latest", r.params.MonitoringHandler.LatestSensorData)
	}

	// Scientist routes additionally require the scientist role
	scientistGroup := e.Group("/scientist")
	scientistGroup.Use(r.params.AuthMiddleware.Authenticate)
	scientistGroup.Use(r.params.AuthMiddleware.RequireRole(entity.RoleScientist))
	{
		scientistGroup.GET("/farmers", r.params.ScientistHandler.ListFarmers)
		scientistGroup.GET("/farmers/:farmerId", r.params.ScientistHandler.GetFarmer)
		scientistGroup.GET("/farmers/:farmerId/crops", r.params.ScientistHandler.FarmerCrops)
		scientistGroup.GET("/farmers/:farmerId/sensor-data", r.params.ScientistHandler.FarmerSensorData)
		scientistGroup.GET("/recent-sensor-data", r.params.ScientistHandler.RecentSensorData)
		scientistGroup.GET("/crops/:cropId", r.params.ScientistHandler.GetCropDetail)

		// Specific stats routes must register before the parameterized one.
		scientistGroup.GET("/stats/farmers/ranking", r.params.ScientistHandler.FarmersRanking)
		scientistGroup.GET("/stats/biofertilizers", r.params.ScientistHandler.BiofertilizerStats)
		scientistGroup.GET("/stats/simple", r.params.ScientistHandler.SimpleStats)
		scientistGroup.GET("/stats", r.params.ScientistHandler.Overview)
		scientistGroup.GET("/stats/:farmerId", r.params.ScientistHandler.FarmerStats)

		scientistGroup.POST("/recommendations", r.params.ScientistHandler.SendRecommendation)
		scientistGroup.GET("/recommendations/:farmerId", r.params.ScientistHandler.ListRecommendations)
	}

	// Device ingestion authenticates with the shared API key
	sensorGroup := e.Group("/sensor")
	sensorGroup.Use(r.params.AuthMiddleware.AuthenticateDevice)
	{
		sensorGroup.POST("/sensor-data", r.params.SensorHandler.IngestReading)
	}
}
