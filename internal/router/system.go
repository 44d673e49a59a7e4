package router

import (
	"github.com/labstack/echo/v4"
	"github.com/stocklot/commerce-api/internal/handler"
)

// registerSystemRoutes registers endpoints that are not part of
// business logic: health status and API documentation.
func registerSystemRoutes(e *echo.Echo, h *handler.Handlers) {
	e.GET("/status", h.Health.CheckHealth)

	e.GET("/openapi.json", h.OpenAPI.ServeOpenAPISpec)
	e.GET("/docs", h.OpenAPI.ServeOpenAPIUI)
}
