package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/froesalexandre94-DC/zws/internal/application/analytics"
	"github.com/froesalexandre94-DC/zws/internal/application/usecase"
	"github.com/froesalexandre94-DC/zws/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	DashboardUC *appanalytics.DashboardUseCase
	StockUC     *usecase.StockUseCase
	Logger      *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.DashboardUC, deps.Logger)
	api.Get("/vendas", dashboardHandler.GetSales)
	api.Get("/dashboard/resumo", dashboardHandler.GetSummary)

	// Estoque (CRUD)
	estoque := api.Group("/estoque")
	stockHandler := NewStockHandler(deps.StockUC, deps.Logger)
	estoque.Get("/", stockHandler.List)
	estoque.Post("/", stockHandler.Create)
	estoque.Get("/:codigo", stockHandler.GetByCode)
	estoque.Put("/:codigo", stockHandler.Update)
	estoque.Delete("/:codigo", stockHandler.Delete)
}
