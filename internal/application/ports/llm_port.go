package ports

import (
	"context"

	"github.com/tu-usuario/flowdash/internal/application/dto"
)

// LLMService define el puerto de salida hacia los servicios de IA.
// Cualquier adaptador (Gemini, Anthropic, mock) debe implementar esta
// interfaz; la capa de aplicación solo conoce este contrato.
type LLMService interface {
	// GenerateInsights analiza el resumen de negocio y devuelve una lista
	// corta de consejos accionables en el idioma pedido (pt/en/es).
	// El contexto debe llevar un timeout: la llamada sale a la red.
	GenerateInsights(
		ctx context.Context,
		summary dto.BusinessSummaryDTO,
		mode string,
		language string,
	) ([]dto.InsightDTO, error)
}
