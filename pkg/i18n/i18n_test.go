package i18n_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tu-usuario/flowdash/pkg/i18n"
)

func TestMatch_ReduceTagsAlSetSoportado(t *testing.T) {
	cases := map[string]string{
		"":               i18n.LangPT,
		"pt":             i18n.LangPT,
		"pt-BR":          i18n.LangPT,
		"en":             i18n.LangEN,
		"en-US,en;q=0.9": i18n.LangEN,
		"es":             i18n.LangES,
		"es-419":         i18n.LangES,
		"fr":             i18n.LangPT, // no soportado → fallback
		"###":            i18n.LangPT,
	}
	for in, want := range cases {
		assert.Equal(t, want, i18n.Match(in), "tag=%q", in)
	}
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "Em Estoque", i18n.Label(i18n.LangPT, "status.IN_STOCK"))
	assert.Equal(t, "Stock Bajo", i18n.Label(i18n.LangES, "status.LOW_STOCK"))
	assert.Equal(t, "Out of Stock", i18n.Label(i18n.LangEN, "status.OUT_OF_STOCK"))

	// Idioma desconocido cae en pt; clave desconocida se devuelve tal cual.
	assert.Equal(t, "Vendas", i18n.Label("de", "txcat.SALES"))
	assert.Equal(t, "clave.inexistente", i18n.Label(i18n.LangPT, "clave.inexistente"))
}

func TestMonthLabel(t *testing.T) {
	assert.Equal(t, "Outubro 2023", i18n.MonthLabel(i18n.LangPT, 2023, 10))
	assert.Equal(t, "October 2023", i18n.MonthLabel(i18n.LangEN, 2023, 10))
	assert.Equal(t, "Enero 2024", i18n.MonthLabel(i18n.LangES, 2024, 1))
	assert.Equal(t, "2024", i18n.MonthLabel(i18n.LangPT, 2024, 13))
}
