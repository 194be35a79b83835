// Package redisstore implementa el puerto de persistencia sobre Redis.
// El agregado completo se serializa como un único documento JSON bajo una
// clave fija, y la meta mensual como un escalar bajo una clave secundaria.
package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/flowdash/internal/domain/repository"
)

// Claves en Redis. Se conservan los nombres que la aplicación usó siempre
// para no invalidar datos ya persistidos.
const (
	keyData        = "nexus_dash_data"
	keyMonthlyGoal = "nexus_monthly_goal"
)

// SnapshotRepository implementa repository.SnapshotRepository con go-redis.
// Las claves no llevan TTL: el documento es el estado canónico, no un caché.
type SnapshotRepository struct {
	rdb *redis.Client
}

// NewSnapshotRepository construye el repositorio sobre un cliente ya conectado.
func NewSnapshotRepository(rdb *redis.Client) *SnapshotRepository {
	return &SnapshotRepository{rdb: rdb}
}

var _ repository.SnapshotRepository = (*SnapshotRepository)(nil)

// Load devuelve el documento persistido, o (nil, nil) si la clave no existe.
func (r *SnapshotRepository) Load(ctx context.Context) (*repository.Document, error) {
	raw, err := r.rdb.Get(ctx, keyData).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis: leer %s: %w", keyData, err)
	}

	var doc repository.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("redis: documento %s corrupto: %w", keyData, err)
	}
	return &doc, nil
}

// Save reemplaza el documento completo bajo la clave fija.
func (r *SnapshotRepository) Save(ctx context.Context, doc repository.Document) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("redis: serializar documento: %w", err)
	}
	if err := r.rdb.Set(ctx, keyData, raw, 0).Err(); err != nil {
		return fmt.Errorf("redis: escribir %s: %w", keyData, err)
	}
	return nil
}

// LoadMonthlyGoal devuelve la meta mensual; ok=false si no hay valor.
func (r *SnapshotRepository) LoadMonthlyGoal(ctx context.Context) (decimal.Decimal, bool, error) {
	raw, err := r.rdb.Get(ctx, keyMonthlyGoal).Result()
	if errors.Is(err, redis.Nil) {
		return decimal.Zero, false, nil
	}
	if err != nil {
		return decimal.Zero, false, fmt.Errorf("redis: leer %s: %w", keyMonthlyGoal, err)
	}

	goal, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, false, fmt.Errorf("redis: meta mensual inválida %q: %w", raw, err)
	}
	return goal, true, nil
}

// SaveMonthlyGoal persiste la meta mensual como escalar.
func (r *SnapshotRepository) SaveMonthlyGoal(ctx context.Context, goal decimal.Decimal) error {
	if err := r.rdb.Set(ctx, keyMonthlyGoal, goal.String(), 0).Err(); err != nil {
		return fmt.Errorf("redis: escribir %s: %w", keyMonthlyGoal, err)
	}
	return nil
}
