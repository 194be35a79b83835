// Package usecase contiene los casos de uso transversales de la aplicación.
package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/tu-usuario/flowdash/internal/application/analytics"
	"github.com/tu-usuario/flowdash/internal/application/dto"
	"github.com/tu-usuario/flowdash/internal/application/ports"
	"github.com/tu-usuario/flowdash/internal/domain"
	"github.com/tu-usuario/flowdash/internal/domain/entity"
	"github.com/tu-usuario/flowdash/pkg/i18n"
)

const (
	insightTimeout     = 10 * time.Second // SLA por llamada al LLM
	insightRecentTxs   = 10               // últimas transacciones en el prompt
	criticalStockBelow = 5                // stock < 5 se reporta como crítico
	overstockAbove     = 20               // stock > 20 se reporta como sobrestock
)

// InsightUseCase orquesta la generación de consejos de negocio: construye el
// resumen desde una copia de la foto, delega en el LLM y degrada cualquier
// fallo a un insight informativo visible — esta operación nunca devuelve un
// error de red al caller.
type InsightUseCase struct {
	source analytics.SnapshotSource
	llm    ports.LLMService
	log    zerolog.Logger
}

// NewInsightUseCase construye el caso de uso inyectando el puerto LLMService.
func NewInsightUseCase(source analytics.SnapshotSource, llm ports.LLMService, log zerolog.Logger) *InsightUseCase {
	return &InsightUseCase{source: source, llm: llm, log: log.With().Str("component", "insight_usecase").Logger()}
}

// Generate valida el modo, ajusta el idioma al set soportado y llama al LLM
// con timeout. Solo los errores de validación (modo desconocido) llegan al
// caller; los fallos del servicio externo se convierten en el placeholder
// localizado.
//
// language ya debe venir normalizado a pt/en/es (i18n.Match en el borde HTTP).
func (uc *InsightUseCase) Generate(ctx context.Context, mode, language string) ([]dto.InsightDTO, error) {
	switch mode {
	case "":
		mode = dto.InsightModeGeneral
	case dto.InsightModeGeneral, dto.InsightModeInventory, dto.InsightModeFinance, dto.InsightModeMarketing:
	default:
		return nil, fmt.Errorf("modo de análisis %q: %w", mode, domain.ErrInvalidInput)
	}

	summary := buildSummary(uc.source.Snapshot())

	ctx, cancel := context.WithTimeout(ctx, insightTimeout)
	defer cancel()

	insights, err := uc.llm.GenerateInsights(ctx, summary, mode, language)
	if err != nil {
		uc.log.Warn().Err(err).Str("mode", mode).Msg("generar insights; se degrada a placeholder")
		return placeholder(language), nil
	}
	if len(insights) == 0 {
		return placeholder(language), nil
	}
	return insights, nil
}

// buildSummary compacta la foto al resumen que viaja en el prompt.
func buildSummary(data entity.AppData) dto.BusinessSummaryDTO {
	s := dto.BusinessSummaryDTO{ProductCount: len(data.Products)}

	for _, p := range data.Products {
		switch {
		case p.Stock == 0:
			s.OutOfStockProducts = append(s.OutOfStockProducts, p.Name)
		case p.Stock < criticalStockBelow:
			s.CriticalProducts = append(s.CriticalProducts, fmt.Sprintf("%s (%d un)", p.Name, p.Stock))
		case p.Stock > overstockAbove:
			s.OverstockProducts = append(s.OverstockProducts, p.Name)
		}
	}

	txs := data.Transactions
	if len(txs) > insightRecentTxs {
		txs = txs[len(txs)-insightRecentTxs:]
	}
	for _, tx := range txs {
		s.RecentTransactions = append(s.RecentTransactions, dto.TransactionBriefDTO{
			Type:        tx.Type,
			Amount:      tx.Amount,
			Description: tx.Description,
		})
	}
	return s
}

// Placeholder visible cuando el servicio externo falla (ver pkg/i18n).
func placeholder(language string) []dto.InsightDTO {
	return []dto.InsightDTO{{
		Type:    "warning",
		Title:   i18n.Label(language, "insight.failTitle"),
		Message: i18n.Label(language, "insight.failMessage"),
	}}
}
