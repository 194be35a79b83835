// Package pdf renderiza el extracto financiero mensual con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  BANDA ÍNDIGO: FlowDash360 + Título | Período + Generado    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: Receitas | Despesas | Saldo (tres cajas)          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Data | Descrição | Categoria | Tipo | Valor          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  PIE: SALDO FINAL                                            │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/flowdash/internal/application/report"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorIndigo = &props.Color{Red: 79, Green: 70, Blue: 229}
	colorGreen  = &props.Color{Red: 22, Green: 163, Blue: 74}
	colorRed    = &props.Color{Red: 220, Green: 38, Blue: 38}
	colorGray   = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorStripe = &props.Color{Red: 243, Green: 244, Blue: 246}
)

const appName = "FlowDash360"

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoStatementGenerator implementa report.StatementPDFGenerator con Maroto v2.
type MarotoStatementGenerator struct{}

// NewMarotoStatementGenerator construye el generador.
func NewMarotoStatementGenerator() *MarotoStatementGenerator { return &MarotoStatementGenerator{} }

var _ report.StatementPDFGenerator = (*MarotoStatementGenerator)(nil)

// GenerateStatementPDF renderiza el extracto y devuelve sus bytes.
func (g *MarotoStatementGenerator) GenerateStatementPDF(
	_ context.Context,
	doc report.StatementDocument,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(doc.Title, true).
		WithAuthor(appName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(doc))
	m.AddRows(line.NewRow(2))
	m.AddRows(summaryRow(doc))
	m.AddRows(line.NewRow(3))

	m.AddRows(tableHeaderRow(doc))
	for _, r := range tableRows(doc.Rows) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorIndigo, Thickness: 0.3}))
	m.AddRows(finalBalanceRow(doc))

	out, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar extracto: %w", err)
	}
	return out.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: banda índigo con el nombre de la app y los metadatos del período.
func headerRow(doc report.StatementDocument) core.Row {
	return row.New(20).WithStyle(&props.Cell{BackgroundColor: colorIndigo}).Add(
		col.New(7).Add(
			text.New(appName, props.Text{
				Style: fontstyle.Bold, Size: 15, Color: &props.WhiteColor, Top: 3, Left: 3,
			}),
			text.New(doc.Title, props.Text{
				Size: 10, Color: &props.WhiteColor, Top: 12, Left: 3,
			}),
		),
		col.New(5).Add(
			text.New(doc.Period, props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right,
				Color: &props.WhiteColor, Top: 5, Right: 3,
			}),
			text.New(doc.GeneratedAt, props.Text{
				Size: 8, Align: align.Right, Color: &props.WhiteColor, Top: 12, Right: 3,
			}),
		),
	)
}

// summaryRow: tres cajas con receitas, despesas y saldo del período.
func summaryRow(doc report.StatementDocument) core.Row {
	box := func(label string, value decimal.Decimal, valueColor *props.Color) core.Col {
		return col.New(4).WithStyle(&props.Cell{BackgroundColor: colorStripe}).Add(
			text.New(label, props.Text{
				Size: 8, Align: align.Center, Color: colorGray, Top: 2,
			}),
			text.New(formatAmount(value), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Center,
				Color: valueColor, Top: 7,
			}),
		)
	}

	balanceColor := colorGreen
	if doc.Balance.IsNegative() {
		balanceColor = colorRed
	}
	return row.New(16).Add(
		box(doc.IncomeLabel, doc.TotalIncome, colorGreen),
		box(doc.ExpenseLabel, doc.TotalExpense, colorRed),
		box(doc.BalanceLabel, doc.Balance, balanceColor),
	)
}

// tableHeaderRow: cabecera de la tabla de movimientos sobre banda índigo.
func tableHeaderRow(doc report.StatementDocument) core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: &props.WhiteColor, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).WithStyle(&props.Cell{BackgroundColor: colorIndigo}).Add(
		h(doc.DateHeader, 2, align.Left),
		h(doc.DescriptionHeader, 3, align.Left),
		h(doc.LinkedHeader, 2, align.Left),
		h(doc.CategoryHeader, 2, align.Left),
		h(doc.TypeHeader, 1, align.Center),
		h(doc.AmountHeader, 2, align.Right),
	)
}

// tableRows: una fila por movimiento, con zebra y el valor coloreado por tipo.
func tableRows(rows []report.StatementRow) []core.Row {
	result := make([]core.Row, 0, len(rows))
	for i, r := range rows {
		amountColor := colorRed
		sign := "-"
		if r.Income {
			amountColor = colorGreen
			sign = "+"
		}

		tr := row.New(7)
		if i%2 == 1 {
			tr.WithStyle(&props.Cell{BackgroundColor: colorStripe})
		}
		tr.Add(
			col.New(2).Add(text.New(r.Date, props.Text{
				Size: 8, Align: align.Left, Top: 1, Left: 1,
			})),
			col.New(3).Add(text.New(r.Description, props.Text{
				Size: 8, Align: align.Left, Top: 1, Left: 1,
			})),
			col.New(2).Add(text.New(r.LinkedName, props.Text{
				Size: 8, Align: align.Left, Top: 1, Left: 1, Color: colorGray,
			})),
			col.New(2).Add(text.New(r.Category, props.Text{
				Size: 8, Align: align.Left, Top: 1, Left: 1, Color: colorGray,
			})),
			col.New(1).Add(text.New(r.TypeLabel, props.Text{
				Size: 8, Align: align.Center, Top: 1,
			})),
			col.New(2).Add(text.New(sign+" "+formatAmount(r.Amount), props.Text{
				Size: 8, Align: align.Right, Top: 1, Right: 1, Color: amountColor,
			})),
		)
		result = append(result, tr)
	}
	return result
}

// finalBalanceRow: saldo final destacado a la derecha.
func finalBalanceRow(doc report.StatementDocument) core.Row {
	balanceColor := colorGreen
	if doc.Balance.IsNegative() {
		balanceColor = colorRed
	}
	return row.New(12).Add(
		col.New(6),
		col.New(3).Add(text.New(doc.FinalBalanceLabel+":", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorIndigo, Top: 3, Right: 2,
		})),
		col.New(3).Add(text.New(formatAmount(doc.Balance), props.Text{
			Style: fontstyle.Bold, Size: 11, Align: align.Right,
			Color: balanceColor, Top: 3, Right: 1,
		})),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

// formatAmount imprime el monto con dos decimales y símbolo de moneda.
// Ej: 1250 → "$ 1250.00"
func formatAmount(d decimal.Decimal) string {
	return "$ " + d.StringFixed(2)
}
