package entity

import "github.com/shopspring/decimal"

// Tipos de transacción.
const (
	TypeIncome  = "income"  // ingreso (venta)
	TypeExpense = "expense" // egreso (compra, salario, alquiler, etc.)
)

// Categorías de transacción. CategorySTOCK está reservada para compras de inventario.
const (
	TxCategorySales     = "SALES"
	TxCategoryStock     = "STOCK"
	TxCategoryServices  = "SERVICES"
	TxCategoryRent      = "RENT"
	TxCategorySalary    = "SALARY"
	TxCategoryMarketing = "MARKETING"
	TxCategoryEquipment = "EQUIPMENT"
	TxCategorySupplies  = "SUPPLIES"
	TxCategoryOther     = "OTHER"
)

// Transaction es un registro del libro financiero. Inmutable una vez creado:
// el libro es append-only, no existe update ni delete de transacciones.
//
// Quantity, ProductID y CollaboratorID son referencias opcionales: el valor
// cero significa "sin vínculo". Quantity solo está presente (> 0) cuando la
// transacción mueve inventario.
type Transaction struct {
	ID             string          `json:"id"`
	Date           string          `json:"date"` // fecha calendario, formato 2006-01-02
	Type           string          `json:"type"`
	Category       string          `json:"category"`
	Amount         decimal.Decimal `json:"amount"` // valor monetario total del evento
	Description    string          `json:"description"`
	Quantity       int             `json:"quantity,omitempty"`
	ProductID      string          `json:"productId,omitempty"`
	CollaboratorID string          `json:"collaboratorId,omitempty"`
}

// ValidTransactionType indica si el tag de tipo pertenece a la enumeración.
func ValidTransactionType(t string) bool {
	return t == TypeIncome || t == TypeExpense
}

// ValidTransactionCategory indica si el tag de categoría pertenece a la enumeración.
func ValidTransactionCategory(c string) bool {
	switch c {
	case TxCategorySales, TxCategoryStock, TxCategoryServices, TxCategoryRent,
		TxCategorySalary, TxCategoryMarketing, TxCategoryEquipment, TxCategorySupplies, TxCategoryOther:
		return true
	}
	return false
}
