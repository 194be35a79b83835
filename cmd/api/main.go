package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"

	"github.com/tu-usuario/flowdash/internal/application/analytics"
	"github.com/tu-usuario/flowdash/internal/application/ports"
	"github.com/tu-usuario/flowdash/internal/application/report"
	"github.com/tu-usuario/flowdash/internal/application/store"
	"github.com/tu-usuario/flowdash/internal/application/usecase"
	"github.com/tu-usuario/flowdash/internal/domain/ledger"
	infraai "github.com/tu-usuario/flowdash/internal/infrastructure/ai"
	infrapdf "github.com/tu-usuario/flowdash/internal/infrastructure/pdf"
	"github.com/tu-usuario/flowdash/internal/infrastructure/redisstore"
	httpRouter "github.com/tu-usuario/flowdash/internal/interfaces/http"
	"github.com/tu-usuario/flowdash/pkg/config"
	"github.com/tu-usuario/flowdash/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		// Arranque degradado: la foto en memoria sirve la sesión y cada
		// escritura reintenta contra Redis.
		log.Warn().Err(err).Str("addr", cfg.Redis.Addr).Msg("ping a Redis; se arranca sin estado persistido")
	}
	defer rdb.Close()

	repo := redisstore.NewSnapshotRepository(rdb)
	st := store.New(ctx, repo, ledger.New(), log)

	dashboardUC := analytics.NewDashboardUseCase(st)
	statementUC := report.NewStatementUseCase(st, infrapdf.NewMarotoStatementGenerator(), log)

	var llm ports.LLMService
	switch cfg.AI.Provider {
	case "anthropic":
		llm = infraai.NewAnthropicService(cfg.AI.AnthropicAPIKey, cfg.AI.AnthropicModel)
	default:
		llm = infraai.NewGeminiService(cfg.AI.GeminiAPIKey, cfg.AI.GeminiModel)
	}
	insightUC := usecase.NewInsightUseCase(st, llm, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs. El middleware hace
	// panic durante el registro si el archivo no existe, así que la UI solo
	// se monta cuando el binario corre junto a docs/swagger.json.
	const swaggerFile = "./docs/swagger.json"
	if _, err := os.Stat(swaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerFile,
			Path:     "docs",
			Title:    "FlowDash360 API",
		}))
	} else {
		log.Warn().Str("file", swaggerFile).Msg("swagger.json no encontrado; se arranca sin Swagger UI")
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		Store:       st,
		DashboardUC: dashboardUC,
		InsightUC:   insightUC,
		StatementUC: statementUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
