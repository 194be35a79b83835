package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/flowdash/internal/domain/entity"
)

// Document es el agregado tal como viaja hacia/desde el almacén clave-valor:
// un único documento JSON bajo una clave fija. Collaborators es puntero para
// distinguir un documento legado (campo ausente) de una lista vacía; el Store
// sintetiza la colección desde el seed en el primer caso.
type Document struct {
	Products      []entity.Product       `json:"products"`
	Transactions  []entity.Transaction   `json:"transactions"`
	Collaborators *[]entity.Collaborator `json:"collaborators,omitempty"`
}

// SnapshotRepository es el puerto de persistencia del agregado. La meta
// mensual vive bajo una clave secundaria, independiente del documento.
type SnapshotRepository interface {
	// Load devuelve el documento persistido, o (nil, nil) si no existe.
	Load(ctx context.Context) (*Document, error)
	// Save reemplaza el documento completo bajo la clave fija.
	Save(ctx context.Context, doc Document) error

	// LoadMonthlyGoal devuelve la meta mensual; ok=false si no hay valor.
	LoadMonthlyGoal(ctx context.Context) (goal decimal.Decimal, ok bool, err error)
	SaveMonthlyGoal(ctx context.Context, goal decimal.Decimal) error
}
