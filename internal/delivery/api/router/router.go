// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"storefront/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler       *handler.UserHandler
	CategoryHandler   *handler.CategoryHandler
	ProductHandler    *handler.ProductHandler
	InvestmentHandler *handler.InvestmentHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler       *handler.UserHandler
	categoryHandler   *handler.CategoryHandler
	productHandler    *handler.ProductHandler
	investmentHandler *handler.InvestmentHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:       params.UserHandler,
		categoryHandler:   params.CategoryHandler,
		productHandler:    params.ProductHandler,
		investmentHandler: params.InvestmentHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	usersGroup := api.Group("/users")
	{
		usersGroup.POST("", r.userHandler.CreateUser)
		usersGroup.GET("", r.userHandler.ListUsers)
		usersGroup.GET("/:id", r.userHandler.GetUser)
		usersGroup.PUT("/:id", r.userHandler.UpdateUser)
	}

	categoriesGroup := api.Group("/categories")
	{
		categoriesGroup.POST("", r.categoryHandler.CreateCategory)
		categoriesGroup.GET("", r.categoryHandler.ListCategories)
		categoriesGroup.GET("/:id", r.categoryHandler.GetCategory)
		categoriesGroup.PUT("/:id", r.categoryHandler.UpdateCategory)
		categoriesGroup.DELETE("/:id", r.categoryHandler.DeleteCategory)
	}

	productsGroup := api.Group("/products")
	{
		// Statistics and search come before /:id so they are never read as an identifier
		productsGroup.GET("/stats/average-price", r.productHandler.AveragePrice)
		productsGroup.GET("/stats/total-pv", r.productHandler.TotalPVValue)
		productsGroup.GET("/stats/highest-priced", r.productHandler.HighestPricedByCategory)
		productsGroup.GET("/stats/price-range", r.productHandler.ProductsByPriceRange)
		productsGroup.GET("/search", r.productHandler.SearchProducts)

		productsGroup.POST("", r.productHandler.CreateProduct)
		productsGroup.GET("", r.productHandler.ListProducts)
		productsGroup.GET("/:id", r.productHandler.GetProduct)
		productsGroup.PUT("/:id", r.productHandler.UpdateProduct)
		productsGroup.DELETE("/:id", r.productHandler.DeleteProduct)
	}

	investmentsGroup := api.Group("/investments")
	{
		investmentsGroup.GET("/user/:userId/payback", r.investmentHandler.TotalPaybackForUser)

		investmentsGroup.POST("", r.investmentHandler.CreateInvestment)
		investmentsGroup.GET("", r.investmentHandler.ListInvestments)
		investmentsGroup.GET("/:id", r.investmentHandler.GetInvestment)
		investmentsGroup.PUT("/:id", r.investmentHandler.UpdateInvestment)
		investmentsGroup.DELETE("/:id", r.investmentHandler.DeleteInvestment)
		investmentsGroup.GET("/:id/latest-payback", r.investmentHandler.LatestPaybackEntry)
		investmentsGroup.POST("/:id/paybacks", r.investmentHandler.RecordPayback)
	}
}
