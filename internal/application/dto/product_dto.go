package dto

import "github.com/shopspring/decimal"

// CreateProductRequest entrada para crear un producto. El estado no se envía:
// es un campo derivado que el Store recalcula desde el stock.
type CreateProductRequest struct {
	Name     string          `json:"name" validate:"required,min=1,max=200"`
	Category string          `json:"category" validate:"required"`
	Price    decimal.Decimal `json:"price"`
	Stock    int             `json:"stock" validate:"min=0"`
	ImageURL string          `json:"imageUrl"`
}

// UpdateProductRequest entrada para reemplazar un producto existente.
// Misma forma que la creación; el ID viene en la ruta.
type UpdateProductRequest = CreateProductRequest
