package ai

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/flowdash/internal/application/dto"
)

func TestBuildUserPrompt(t *testing.T) {
	summary := dto.BusinessSummaryDTO{
		ProductCount:     3,
		CriticalProducts: []string{"Teclado (2 un)"},
		RecentTransactions: []dto.TransactionBriefDTO{
			{Type: "income", Amount: decimal.NewFromInt(100), Description: "Venta"},
		},
	}

	prompt := buildUserPrompt(summary, dto.InsightModeInventory, "en")

	assert.Contains(t, prompt, "3 productos registrados")
	assert.Contains(t, prompt, "Teclado (2 un)")
	assert.Contains(t, prompt, "Ninguno", "las listas vacías se reportan como Ninguno")
	assert.Contains(t, prompt, "optimización de inventario")
	assert.Contains(t, prompt, "responde en Inglés")
}

func TestBuildUserPrompt_ModoEIdiomaDesconocidosCaenEnDefecto(t *testing.T) {
	prompt := buildUserPrompt(dto.BusinessSummaryDTO{}, "???", "??")

	assert.Contains(t, prompt, "visión equilibrada")
	assert.Contains(t, prompt, "responde en Portugués")
}

func TestParseInsights(t *testing.T) {
	raw := `[
		{"type":"warning","title":"Stock crítico","message":"Repón teclados ya."},
		{"type":"banana","title":"Raro","message":"Tipo fuera del enum."},
		{"type":"info","title":"","message":""}
	]`

	got, err := parseInsights(raw)

	require.NoError(t, err)
	require.Len(t, got, 2, "los objetos vacíos se descartan")
	assert.Equal(t, "warning", got[0].Type)
	assert.Equal(t, "info", got[1].Type, "tipos desconocidos se normalizan a info")
}

func TestParseInsights_JSONInvalido(t *testing.T) {
	_, err := parseInsights("esto no es JSON")
	assert.Error(t, err)
}

func TestExtractJSONArray(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"array directo", `[{"type":"info"}]`, `[{"type":"info"}]`},
		{"bloque markdown", "```json\n[{\"type\":\"info\"}]\n```", `[{"type":"info"}]`},
		{"con prosa alrededor", `Claro, aquí tienes: [{"type":"info"}] ¡Éxitos!`, `[{"type":"info"}]`},
		{"sin array", "no hay nada útil aquí", ""},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, extractJSONArray(c.in))
		})
	}
}
