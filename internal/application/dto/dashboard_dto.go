package dto

import (
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/flowdash/internal/domain/entity"
)

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary: los KPIs
// principales calculados sobre la foto completa.
type DashboardSummaryDTO struct {
	TotalRevenue  decimal.Decimal `json:"total_revenue"`  // suma de ingresos
	TotalExpenses decimal.Decimal `json:"total_expenses"` // suma de egresos
	NetProfit     decimal.Decimal `json:"net_profit"`     // ingresos - egresos

	InventoryValue decimal.Decimal `json:"inventory_value"` // Σ precio·stock
	LowStockCount  int             `json:"low_stock_count"` // productos fuera de IN_STOCK

	MonthlyGoal   decimal.Decimal `json:"monthly_goal"`
	GoalPercent   decimal.Decimal `json:"goal_percent"`   // avance sobre la meta, tope 100
	GoalRemaining decimal.Decimal `json:"goal_remaining"` // cuánto falta; 0 si se superó
	DaysRemaining int             `json:"days_remaining"` // días que quedan del mes

	TopProducts    []TopProductDTO      `json:"top_products"`    // top 3 por ingreso vinculado
	RecentActivity []entity.Transaction `json:"recent_activity"` // últimas 5 por fecha
}

// TopProductDTO resumen de un producto para el widget de más vendidos.
type TopProductDTO struct {
	ProductID    string          `json:"product_id"`
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
}

// CollaboratorReportDTO reporte individual de ventas de un colaborador.
type CollaboratorReportDTO struct {
	Collaborator entity.Collaborator  `json:"collaborator"`
	TotalRevenue decimal.Decimal      `json:"total_revenue"`
	SalesCount   int                  `json:"sales_count"`
	RecentSales  []entity.Transaction `json:"recent_sales"` // últimas 4 por fecha
}

// MonthlyGoalDTO cuerpo de GET/PUT /api/dashboard/goal.
type MonthlyGoalDTO struct {
	Goal decimal.Decimal `json:"goal"`
}
