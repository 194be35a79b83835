package dto

import "github.com/shopspring/decimal"

// Modos de análisis soportados por los insights de negocio.
const (
	InsightModeGeneral   = "general"
	InsightModeInventory = "inventory"
	InsightModeFinance   = "finance"
	InsightModeMarketing = "marketing"
)

// InsightRequest cuerpo de POST /api/insights.
type InsightRequest struct {
	Mode     string `json:"mode"`     // general | inventory | finance | marketing
	Language string `json:"language"` // tag BCP 47; se ajusta a pt/en/es
}

// InsightDTO un consejo de negocio generado por el LLM.
// Type ∈ {success, warning, info}.
type InsightDTO struct {
	Type    string `json:"type"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

// BusinessSummaryDTO es el resumen compacto de la foto que se envía al modelo
// en lugar del agregado completo: nombres de productos críticos, agotados y
// con sobrestock, más las últimas transacciones.
type BusinessSummaryDTO struct {
	ProductCount       int                   `json:"product_count"`
	CriticalProducts   []string              `json:"critical_products"`   // stock 1..4, "Nombre (n un)"
	OutOfStockProducts []string              `json:"out_of_stock"`        // stock 0
	OverstockProducts  []string              `json:"overstock"`           // stock > 20
	RecentTransactions []TransactionBriefDTO `json:"recent_transactions"` // últimas 10
}

// TransactionBriefDTO versión mínima de una transacción para el prompt.
type TransactionBriefDTO struct {
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
}
