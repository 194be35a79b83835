// Package ai contiene los adaptadores del puerto LLMService: Gemini y
// Anthropic, ambos sobre la API REST con net/http (sin SDKs).
package ai

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tu-usuario/flowdash/internal/application/dto"
)

// systemPrompt define el rol del modelo y el formato de salida. Se exige un
// array JSON puro para no tener que limpiar bloques de markdown.
const systemPrompt = `Actúa como un consultor de negocios sénior especializado en retail.
Devuelve ÚNICAMENTE un array JSON (sin texto adicional) de objetos con esta estructura exacta:
[
  {
    "type": "<success | warning | info>",
    "title": "<título corto e impactante, máximo 5 palabras>",
    "message": "<consejo accionable y directo, máximo 30 palabras; evita obviedades>"
  }
]

Reglas:
- type: "success" = oportunidad, "warning" = riesgo que requiere atención, "info" = consejo estratégico.
- Entre 3 y 5 objetos en el array.
- No incluyas texto fuera del JSON.`

// focusInstructions: instrucción de foco por modo de análisis.
var focusInstructions = map[string]string{
	dto.InsightModeGeneral:   "Entrega una visión equilibrada entre alertas de inventario y salud financiera.",
	dto.InsightModeInventory: "Céntrate EXCLUSIVAMENTE en optimización de inventario. Sugiere reposiciones urgentes, identifica productos estancados y propone kits para productos con sobrestock. Ignora lo puramente financiero.",
	dto.InsightModeFinance:   "Céntrate EXCLUSIVAMENTE en salud financiera. Analiza gastos recortables, evalúa si el margen aparente es sano y sugiere acciones para mejorar el flujo de caja inmediato.",
	dto.InsightModeMarketing: "Actúa como Director de Marketing. Propón campañas creativas para los productos actuales: eslóganes cortos o promociones relámpago para los ítems que deben salir del inventario.",
}

// languageNames: nombre del idioma de salida tal como se pide en el prompt.
var languageNames = map[string]string{
	"pt": "Portugués",
	"en": "Inglés",
	"es": "Español",
}

// buildUserPrompt arma el mensaje de usuario con el resumen de negocio.
func buildUserPrompt(summary dto.BusinessSummaryDTO, mode, language string) string {
	focus := focusInstructions[mode]
	if focus == "" {
		focus = focusInstructions[dto.InsightModeGeneral]
	}
	langName := languageNames[language]
	if langName == "" {
		langName = languageNames["pt"]
	}

	recent, _ := json.Marshal(summary.RecentTransactions)

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\nResumen de datos de la empresa:\n", focus)
	fmt.Fprintf(&b, "- Catálogo: %d productos registrados.\n", summary.ProductCount)
	fmt.Fprintf(&b, "- Productos críticos (stock bajo): %s.\n", joinOrNone(summary.CriticalProducts))
	fmt.Fprintf(&b, "- Productos agotados: %s.\n", joinOrNone(summary.OutOfStockProducts))
	fmt.Fprintf(&b, "- Productos con sobrestock (>20): %s.\n", joinOrNone(summary.OverstockProducts))
	fmt.Fprintf(&b, "- Últimas transacciones: %s\n\n", recent)
	fmt.Fprintf(&b, "IMPORTANTE: responde en %s.", langName)
	return b.String()
}

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return "Ninguno"
	}
	return strings.Join(items, ", ")
}

// insightPayload es el objeto que esperamos dentro del array JSON del modelo.
type insightPayload struct {
	Type    string `json:"type"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

// parseInsights valida y normaliza la respuesta del modelo.
func parseInsights(raw string) ([]dto.InsightDTO, error) {
	var payload []insightPayload
	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &payload); err != nil {
		return nil, fmt.Errorf("respuesta del modelo no es JSON válido: %w (respuesta: %s)", err, raw)
	}

	out := make([]dto.InsightDTO, 0, len(payload))
	for _, p := range payload {
		switch p.Type {
		case "success", "warning", "info":
		default:
			p.Type = "info" // tipo fuera del enum: se normaliza
		}
		if p.Title == "" && p.Message == "" {
			continue
		}
		out = append(out, dto.InsightDTO{Type: p.Type, Title: p.Title, Message: p.Message})
	}
	return out, nil
}
