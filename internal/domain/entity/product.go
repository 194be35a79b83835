package entity

import "github.com/shopspring/decimal"

// Estados de stock (tags simbólicos, neutrales al idioma).
// La etiqueta visible por usuario vive en pkg/i18n, nunca en el dato persistido.
const (
	StatusInStock    = "IN_STOCK"
	StatusLowStock   = "LOW_STOCK"
	StatusOutOfStock = "OUT_OF_STOCK"
)

// Categorías de producto.
const (
	CategoryElectronics = "ELECTRONICS"
	CategoryFurniture   = "FURNITURE"
	CategoryClothing    = "CLOTHING"
	CategoryOffice      = "OFFICE"
	CategoryOther       = "OTHER"
)

// lowStockThreshold: por debajo de esta cantidad el producto se considera en stock bajo.
const lowStockThreshold = 10

// Product representa un producto del catálogo.
// Status es un campo derivado: siempre se recalcula desde Stock vía StatusForStock;
// ningún código debe asignarlo por otra ruta.
type Product struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Category string          `json:"category"`
	Price    decimal.Decimal `json:"price"` // precio unitario de venta
	Stock    int             `json:"stock"`
	Status   string          `json:"status"`
	ImageURL string          `json:"imageUrl,omitempty"`
}

// StatusForStock deriva el estado desde la cantidad en stock.
// Única ruta de código para la regla stock→estado:
// 0 → OUT_OF_STOCK; 1..9 → LOW_STOCK; >=10 → IN_STOCK.
func StatusForStock(stock int) string {
	switch {
	case stock <= 0:
		return StatusOutOfStock
	case stock < lowStockThreshold:
		return StatusLowStock
	default:
		return StatusInStock
	}
}

// ValidCategory indica si el tag de categoría pertenece a la enumeración.
func ValidCategory(c string) bool {
	switch c {
	case CategoryElectronics, CategoryFurniture, CategoryClothing, CategoryOffice, CategoryOther:
		return true
	}
	return false
}
