// Package store contiene el dueño único del agregado {productos,
// transacciones, colaboradores}: carga al arrancar, expone CRUD por entidad,
// delega las mutaciones con efecto de stock al motor ledger y persiste cada
// cambio como efecto colateral best-effort.
package store

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/flowdash/internal/domain"
	"github.com/tu-usuario/flowdash/internal/domain/entity"
	"github.com/tu-usuario/flowdash/internal/domain/ledger"
	"github.com/tu-usuario/flowdash/internal/domain/repository"
)

// defaultMonthlyGoal se usa cuando la clave secundaria no tiene valor.
var defaultMonthlyGoal = decimal.NewFromInt(50000)

// Store mantiene la foto canónica en memoria. Cada mutación construye una
// foto NUEVA (copy-on-write) y la reemplaza bajo el lock; los lectores
// reciben copias, de modo que un render concurrente nunca observa un
// agregado a medio actualizar.
//
// Si la persistencia falla, la foto en memoria sigue siendo la fuente de
// verdad durante la sesión: se registra un warning y no hay rollback ni
// reintento.
type Store struct {
	mu     sync.RWMutex
	data   entity.AppData
	goal   decimal.Decimal
	ledger *ledger.Ledger
	repo   repository.SnapshotRepository
	log    zerolog.Logger
	newID  func() string
}

// New carga el estado inicial: documento persistido si existe, seed fijo si
// no. Documentos legados sin campo collaborators reciben el set de
// colaboradores del seed (única migración de esquema soportada). Un error de
// lectura no es fatal: se arranca desde el seed con un warning.
func New(ctx context.Context, repo repository.SnapshotRepository, l *ledger.Ledger, log zerolog.Logger) *Store {
	s := &Store{
		ledger: l,
		repo:   repo,
		log:    log.With().Str("component", "store").Logger(),
		goal:   defaultMonthlyGoal,
		newID:  func() string { return uuid.New().String() },
	}

	doc, err := repo.Load(ctx)
	switch {
	case err != nil:
		s.log.Warn().Err(err).Msg("cargar estado persistido; se arranca desde el seed")
		s.data = entity.Seed()
	case doc == nil:
		s.data = entity.Seed()
	default:
		s.data = entity.AppData{
			Products:     doc.Products,
			Transactions: doc.Transactions,
		}
		if doc.Collaborators != nil {
			s.data.Collaborators = *doc.Collaborators
		} else {
			// Migración: respaldo antiguo sin colaboradores.
			s.data.Collaborators = entity.SeedCollaborators()
		}
	}

	if goal, ok, err := repo.LoadMonthlyGoal(ctx); err != nil {
		s.log.Warn().Err(err).Msg("cargar meta mensual; se usa el valor por defecto")
	} else if ok {
		s.goal = goal
	}

	return s
}

// Snapshot devuelve una copia profunda de la foto actual. Dos lecturas sin
// mutación intermedia devuelven valores iguales.
func (s *Store) Snapshot() entity.AppData {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.Clone()
}

// MonthlyGoal devuelve la meta mensual vigente.
func (s *Store) MonthlyGoal() decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.goal
}

// SetMonthlyGoal fija la meta mensual y la persiste bajo su clave secundaria.
func (s *Store) SetMonthlyGoal(ctx context.Context, goal decimal.Decimal) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.goal = goal
	if err := s.repo.SaveMonthlyGoal(ctx, goal); err != nil {
		s.log.Warn().Err(err).Msg("persistir meta mensual")
	}
}

// ── Productos ─────────────────────────────────────────────────────────────────

// AddProduct asigna un ID fresco, recalcula el estado desde el stock y anexa.
func (s *Store) AddProduct(ctx context.Context, p entity.Product) entity.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	p.ID = s.newID()
	p.Status = entity.StatusForStock(p.Stock)

	next := s.data.Clone()
	next.Products = append(next.Products, p)
	s.commit(ctx, next)
	return p
}

// UpdateProduct reemplaza el producto con el mismo ID, recalculando el
// estado desde el stock editado. Devuelve el producto resultante; false
// (no-op) si el ID no existe.
func (s *Store) UpdateProduct(ctx context.Context, p entity.Product) (entity.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.data.Clone()
	for i := range next.Products {
		if next.Products[i].ID == p.ID {
			p.Status = entity.StatusForStock(p.Stock)
			next.Products[i] = p
			s.commit(ctx, next)
			return p, true
		}
	}
	return entity.Product{}, false
}

// DeleteProduct elimina por ID. No hay cascada: las transacciones históricas
// conservan su productId colgante y los consumidores deben tolerarlo.
func (s *Store) DeleteProduct(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.data.Clone()
	for i := range next.Products {
		if next.Products[i].ID == id {
			next.Products = append(next.Products[:i], next.Products[i+1:]...)
			s.commit(ctx, next)
			return true
		}
	}
	return false
}

// ── Colaboradores ─────────────────────────────────────────────────────────────

// AddCollaborator asigna un ID fresco y anexa. La matrícula es única dentro
// del agregado: si otro colaborador ya la tiene devuelve domain.ErrDuplicate.
func (s *Store) AddCollaborator(ctx context.Context, c entity.Collaborator) (entity.Collaborator, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.matriculaTaken(c.Matricula, "") {
		return entity.Collaborator{}, domain.ErrDuplicate
	}

	c.ID = s.newID()
	next := s.data.Clone()
	next.Collaborators = append(next.Collaborators, c)
	s.commit(ctx, next)
	return c, nil
}

// UpdateCollaborator reemplaza por ID. Devuelve domain.ErrNotFound si el ID
// no existe y domain.ErrDuplicate si la matrícula ya pertenece a OTRO
// colaborador (conservar la propia es válido).
func (s *Store) UpdateCollaborator(ctx context.Context, c entity.Collaborator) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.matriculaTaken(c.Matricula, c.ID) {
		return domain.ErrDuplicate
	}

	next := s.data.Clone()
	for i := range next.Collaborators {
		if next.Collaborators[i].ID == c.ID {
			next.Collaborators[i] = c
			s.commit(ctx, next)
			return nil
		}
	}
	return domain.ErrNotFound
}

// matriculaTaken informa si la matrícula ya está asignada a un colaborador
// distinto de excludeID. La comparación ignora mayúsculas. Debe llamarse con
// el lock tomado.
func (s *Store) matriculaTaken(matricula, excludeID string) bool {
	for i := range s.data.Collaborators {
		if s.data.Collaborators[i].ID == excludeID {
			continue
		}
		if strings.EqualFold(s.data.Collaborators[i].Matricula, matricula) {
			return true
		}
	}
	return false
}

// DeleteCollaborator elimina por ID. Sin cascada sobre collaboratorId de
// transacciones históricas.
func (s *Store) DeleteCollaborator(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.data.Clone()
	for i := range next.Collaborators {
		if next.Collaborators[i].ID == id {
			next.Collaborators = append(next.Collaborators[:i], next.Collaborators[i+1:]...)
			s.commit(ctx, next)
			return true
		}
	}
	return false
}

// ── Transacciones ─────────────────────────────────────────────────────────────

// AddTransaction delega en el motor ledger y confirma productos actualizados
// + transacción anexada como UN reemplazo atómico de la foto. Devuelve la
// transacción finalizada y, si hubo efecto de inventario, el producto
// afectado (creado o mutado).
func (s *Store) AddTransaction(ctx context.Context, intent ledger.Intent, newProductName string) (entity.Transaction, *entity.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res := s.ledger.Apply(s.data.Products, intent, newProductName)

	next := s.data.Clone()
	next.Products = res.Products
	next.Transactions = append(next.Transactions, res.Transaction)
	s.commit(ctx, next)

	var affected *entity.Product
	if res.Transaction.Quantity > 0 && res.Transaction.ProductID != "" {
		for i := range res.Products {
			if res.Products[i].ID == res.Transaction.ProductID {
				p := res.Products[i]
				affected = &p
				break
			}
		}
	}
	return res.Transaction, affected
}

// commit reemplaza la foto y dispara la persistencia best-effort.
// Debe llamarse con el lock de escritura tomado.
func (s *Store) commit(ctx context.Context, next entity.AppData) {
	s.data = next

	collaborators := next.Collaborators
	doc := repository.Document{
		Products:      next.Products,
		Transactions:  next.Transactions,
		Collaborators: &collaborators,
	}
	if err := s.repo.Save(ctx, doc); err != nil {
		s.log.Warn().Err(err).Msg("persistir foto; la memoria sigue siendo la fuente de verdad")
	}
}
