package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/flowdash/internal/application/analytics"
	"github.com/tu-usuario/flowdash/internal/application/report"
	"github.com/tu-usuario/flowdash/internal/application/store"
	"github.com/tu-usuario/flowdash/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Store       *store.Store
	DashboardUC *analytics.DashboardUseCase
	InsightUC   *usecase.InsightUseCase
	StatementUC *report.StatementUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	// Foto completa
	snapshotHandler := NewSnapshotHandler(deps.Store)
	api.Get("/snapshot", snapshotHandler.Get)

	// Products
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.Store)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Collaborators
	collaborators := api.Group("/collaborators")
	collaboratorHandler := NewCollaboratorHandler(deps.Store)
	collaborators.Get("/", collaboratorHandler.List)
	collaborators.Post("/", collaboratorHandler.Create)
	collaborators.Put("/:id", collaboratorHandler.Update)
	collaborators.Delete("/:id", collaboratorHandler.Delete)

	// Transactions (append-only: sin update ni delete)
	transactions := api.Group("/transactions")
	transactionHandler := NewTransactionHandler(deps.Store)
	transactions.Get("/", transactionHandler.List)
	transactions.Post("/", transactionHandler.Create)

	// Dashboard
	dashboard := api.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.Store, deps.DashboardUC)
	dashboard.Get("/summary", dashboardHandler.Summary)
	dashboard.Get("/goal", dashboardHandler.GetGoal)
	dashboard.Put("/goal", dashboardHandler.SetGoal)
	dashboard.Get("/collaborators/:id/report", dashboardHandler.CollaboratorReport)

	// Insights IA
	insightHandler := NewInsightHandler(deps.InsightUC)
	api.Post("/insights", insightHandler.Generate)

	// Reportes
	reports := api.Group("/reports")
	reportHandler := NewReportHandler(deps.StatementUC)
	reports.Get("/statement", reportHandler.Statement)
}
