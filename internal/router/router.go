// Package router initializes the HTTP router (using Echo).
//
// It registers the middlewares and defines the API route groups,
// mapping specific paths to their corresponding handlers.
package router

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/stocklot/commerce-api/internal/handler"
	"github.com/stocklot/commerce-api/internal/middleware"
	"github.com/stocklot/commerce-api/internal/server"
)

// New builds the Echo instance: global middleware, error handler,
// system routes, and the API routes.
func New(s *server.Server, middlewares *middleware.Middlewares, handlers *handler.Handlers) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	e.Use(middleware.RequestID())
	e.Use(middlewares.ContextEnhancer.EnhanceContext())
	e.Use(middlewares.Global.RequestLogger())
	e.Use(middlewares.Global.Recover())
	e.Use(middlewares.Global.CORS())
	e.Use(middlewares.Global.Secure())

	registerSystemRoutes(e, handlers)
	registerAPIRoutes(e, handlers)

	return e
}

func registerAPIRoutes(e *echo.Echo, h *handler.Handlers) {
	e.GET("/products", handler.Handle(h.Catalog.ListProducts, http.StatusOK))
	e.GET("/products/:name", handler.Handle(h.Catalog.SearchProducts, http.StatusOK))
	e.POST("/products", handler.Handle(h.Catalog.CreateProduct, http.StatusCreated))
	e.POST("/availability", handler.Handle(h.Catalog.CreateAvailability, http.StatusCreated))

	e.GET("/customers/:customerId", handler.Handle(h.Customers.GetCustomer, http.StatusOK))
	e.POST("/customers", handler.Handle(h.Customers.CreateCustomer, http.StatusCreated))
	e.PUT("/customers/:customerId", handler.Handle(h.Customers.UpdateCustomer, http.StatusOK))
	e.DELETE("/customers/:customerId", handler.HandleNoContent(h.Customers.DeleteCustomer, http.StatusNoContent))

	e.POST("/customers/:customerId/orders", handler.Handle(h.Orders.CreateOrder, http.StatusCreated))
	e.GET("/customers/:customerId/orders", handler.Handle(h.Orders.ListCustomerOrders, http.StatusOK))
	e.DELETE("/orders/:orderId", handler.HandleNoContent(h.Orders.DeleteOrder, http.StatusNoContent))
}
