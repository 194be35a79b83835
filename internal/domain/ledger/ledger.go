// Package ledger implementa el motor de consistencia inventario-finanzas:
// dado el catálogo actual y la intención de una transacción, produce la
// transacción finalizada (con ID asignado) y el catálogo resultante.
//
// Es una función pura de (productos, intención) → resultado: no hace I/O,
// no muta sus entradas y no tiene efectos fuera del valor de retorno. El
// Store de aplicación es quien confirma el resultado como nueva foto.
package ledger

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/flowdash/internal/domain/entity"
)

// Intent es la descripción de una transacción a registrar, antes de asignar
// ID y de aplicar efectos de stock. Quantity <= 0 significa "no mueve
// inventario"; ProductID y CollaboratorID vacíos significan "sin vínculo".
type Intent struct {
	Type           string
	Date           string
	Category       string
	Amount         decimal.Decimal
	Description    string
	Quantity       int
	ProductID      string
	CollaboratorID string
}

// Result es la salida del motor: el catálogo completo con cero o una entrada
// agregada o mutada, y la transacción finalizada lista para anexar al libro.
type Result struct {
	Products    []entity.Product
	Transaction entity.Transaction
	// Created indica que la transacción dio de alta un producto nuevo.
	Created bool
}

// Ledger finaliza transacciones. El generador de IDs es inyectable para que
// los tests sean deterministas; en producción se usan UUID v4.
type Ledger struct {
	newID func() string
}

// New construye el motor con IDs UUID.
func New() *Ledger {
	return &Ledger{newID: func() string { return uuid.New().String() }}
}

// NewWithIDGenerator construye el motor con un generador de IDs propio.
func NewWithIDGenerator(gen func() string) *Ledger {
	return &Ledger{newID: gen}
}

// Apply calcula el efecto de la intención sobre el catálogo.
//
// Ramas, según tipo y cantidad:
//  1. Sin cantidad (o <= 0): la transacción pasa tal cual, solo con ID nuevo.
//  2. Egreso con cantidad y newProductName no vacío: alta de producto nuevo
//     (categoría OTHER, precio = monto/cantidad, stock = cantidad) y vínculo
//     de la transacción al producto creado.
//  3. Egreso con cantidad y ProductID existente: suma la cantidad al stock.
//  4. Ingreso con cantidad y ProductID existente: resta la cantidad, con piso
//     en 0 (la sobreventa no se rechaza aquí; esa validación es del caller).
//  5. Referencia que no resuelve: la transacción se registra igual, sin
//     mutar productos (degradación deliberada, no error).
//
// El estado del producto se recalcula SIEMPRE vía entity.StatusForStock en la
// misma operación que toca el stock.
func (l *Ledger) Apply(products []entity.Product, intent Intent, newProductName string) Result {
	tx := entity.Transaction{
		ID:             l.newID(),
		Date:           intent.Date,
		Type:           intent.Type,
		Category:       intent.Category,
		Amount:         intent.Amount,
		Description:    intent.Description,
		ProductID:      intent.ProductID,
		CollaboratorID: intent.CollaboratorID,
	}
	if intent.Quantity > 0 {
		tx.Quantity = intent.Quantity
	}

	out := make([]entity.Product, len(products))
	copy(out, products)

	if intent.Quantity <= 0 {
		return Result{Products: out, Transaction: tx}
	}

	switch intent.Type {
	case entity.TypeExpense:
		if newProductName != "" {
			// Compra de un producto que aún no existe en el catálogo.
			// Costo unitario derivado del monto total, a 2 decimales.
			unitCost := intent.Amount.Div(decimal.NewFromInt(int64(intent.Quantity))).Round(2)
			product := entity.Product{
				ID:       l.newID(),
				Name:     newProductName,
				Category: entity.CategoryOther, // por defecto, editable luego
				Price:    unitCost,
				Stock:    intent.Quantity,
				Status:   entity.StatusForStock(intent.Quantity),
			}
			out = append(out, product)
			tx.ProductID = product.ID
			return Result{Products: out, Transaction: tx, Created: true}
		}
		if i := indexByID(out, intent.ProductID); i >= 0 {
			out[i].Stock += intent.Quantity
			out[i].Status = entity.StatusForStock(out[i].Stock)
		}
	case entity.TypeIncome:
		if i := indexByID(out, intent.ProductID); i >= 0 {
			newStock := out[i].Stock - intent.Quantity
			if newStock < 0 {
				newStock = 0 // sobreventa: el stock nunca queda negativo
			}
			out[i].Stock = newStock
			out[i].Status = entity.StatusForStock(newStock)
		}
	}

	return Result{Products: out, Transaction: tx}
}

func indexByID(products []entity.Product, id string) int {
	if id == "" {
		return -1
	}
	for i := range products {
		if products[i].ID == id {
			return i
		}
	}
	return -1
}
