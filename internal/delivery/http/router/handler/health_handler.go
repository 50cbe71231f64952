package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// HealthHandler reports liveness and datastore connectivity.
type HealthHandler struct {
	db *gorm.DB
}

// NewHealthHandler is the constructor for HealthHandler, injected by Fx.
func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// Check answers the liveness probe with the database connection state.
func (h *HealthHandler) Check(c echo.Context) error {
	database := "Connected"
	if sqlDB, err := h.db.DB(); err != nil || sqlDB.PingContext(c.Request().Context()) != nil {
		database = "Disconnected"
	}

	return c.JSON(http.StatusOK, map[string]any{
		"status":    "OK",
		"message":   "Servidor funcionando correctamente",
		"timestamp": time.Now(),
		"database":  database,
	})
}
