// seed escribe el juego de datos de demostración en Redis: el documento
// completo bajo nexus_dash_data y la meta mensual por defecto.
//
// Uso: go run ./cmd/seed [-force]
// Sin -force se niega a pisar un documento existente.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/flowdash/internal/domain/entity"
	"github.com/tu-usuario/flowdash/internal/domain/repository"
	"github.com/tu-usuario/flowdash/internal/infrastructure/redisstore"
	"github.com/tu-usuario/flowdash/pkg/config"
)

func main() {
	force := flag.Bool("force", false, "sobrescribe el documento si ya existe")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer rdb.Close()

	if err := rdb.Ping(ctx).Err(); err != nil {
		fmt.Fprintf(os.Stderr, "conectar a Redis (%s): %v\n", cfg.Redis.Addr, err)
		os.Exit(1)
	}

	repo := redisstore.NewSnapshotRepository(rdb)

	existing, err := repo.Load(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "leer documento existente: %v\n", err)
		os.Exit(1)
	}
	if existing != nil && !*force {
		fmt.Fprintln(os.Stderr, "ya existe un documento persistido; usa -force para sobrescribirlo")
		os.Exit(1)
	}

	data := entity.Seed()
	collaborators := data.Collaborators
	doc := repository.Document{
		Products:      data.Products,
		Transactions:  data.Transactions,
		Collaborators: &collaborators,
	}
	if err := repo.Save(ctx, doc); err != nil {
		fmt.Fprintf(os.Stderr, "escribir documento: %v\n", err)
		os.Exit(1)
	}
	if err := repo.SaveMonthlyGoal(ctx, decimal.NewFromInt(50000)); err != nil {
		fmt.Fprintf(os.Stderr, "escribir meta mensual: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("seed escrito en %s: %d productos, %d transacciones, %d colaboradores\n",
		cfg.Redis.Addr, len(data.Products), len(data.Transactions), len(data.Collaborators))
}
