package dto

import (
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/flowdash/internal/domain/entity"
)

// CreateTransactionRequest es la intención de transacción que llega por HTTP.
// NewProductName solo aplica al alta de stock de un producto inexistente
// (egreso con cantidad): viaja separado del resto de la intención.
type CreateTransactionRequest struct {
	Date           string          `json:"date" validate:"required"`
	Type           string          `json:"type" validate:"required,oneof=income expense"`
	Category       string          `json:"category" validate:"required"`
	Amount         decimal.Decimal `json:"amount"`
	Description    string          `json:"description" validate:"required"`
	Quantity       int             `json:"quantity"`
	ProductID      string          `json:"productId"`
	CollaboratorID string          `json:"collaboratorId"`
	NewProductName string          `json:"newProductName"`
}

// TransactionCreatedResponse es la salida del registro: la transacción
// finalizada y, si la operación movió inventario, el producto afectado
// (creado o con stock/estado recalculados).
type TransactionCreatedResponse struct {
	Transaction    entity.Transaction `json:"transaction"`
	UpdatedProduct *entity.Product    `json:"updatedProduct,omitempty"`
}
