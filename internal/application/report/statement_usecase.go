// Package report arma el extracto financiero mensual que luego se
// renderiza como PDF. El caso de uso filtra y totaliza; el renderizado
// queda detrás del puerto StatementPDFGenerator.
package report

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/flowdash/internal/domain"
	"github.com/tu-usuario/flowdash/internal/domain/entity"
	"github.com/tu-usuario/flowdash/pkg/i18n"
)

// ── Puertos y tipos del documento ─────────────────────────────────────────────

// StatementRow es una línea del extracto, ya localizada. LinkedName es el
// nombre del producto o colaborador referenciado; referencias colgantes se
// muestran como un guion.
type StatementRow struct {
	Date        string
	Description string
	LinkedName  string
	Category    string
	TypeLabel   string
	Income      bool
	Amount      decimal.Decimal
}

// StatementDocument contiene todo lo que el renderizador necesita, con los
// textos resueltos al idioma pedido para que el adaptador PDF no conozca i18n.
type StatementDocument struct {
	Title       string
	Period      string
	GeneratedAt string

	IncomeLabel  string
	ExpenseLabel string
	BalanceLabel string

	DateHeader        string
	DescriptionHeader string
	LinkedHeader      string
	CategoryHeader    string
	TypeHeader        string
	AmountHeader      string
	FinalBalanceLabel string

	TotalIncome  decimal.Decimal
	TotalExpense decimal.Decimal
	Balance      decimal.Decimal

	Rows []StatementRow
}

// StatementPDFGenerator es el puerto de salida hacia el motor de PDF.
type StatementPDFGenerator interface {
	GenerateStatementPDF(ctx context.Context, doc StatementDocument) ([]byte, error)
}

// SnapshotSource entrega la vista inmutable de los datos de la aplicación.
type SnapshotSource interface {
	Snapshot() entity.AppData
}

// ── Caso de uso ───────────────────────────────────────────────────────────────

// StatementUseCase genera el extracto financiero de un mes.
type StatementUseCase struct {
	source SnapshotSource
	pdf    StatementPDFGenerator
	log    zerolog.Logger
	now    func() time.Time
}

// NewStatementUseCase construye el caso de uso.
func NewStatementUseCase(source SnapshotSource, pdf StatementPDFGenerator, log zerolog.Logger) *StatementUseCase {
	return &StatementUseCase{
		source: source,
		pdf:    pdf,
		log:    log.With().Str("component", "statement_usecase").Logger(),
		now:    time.Now,
	}
}

// GenerateStatement produce el PDF del extracto del mes indicado. El idioma
// debe venir ya normalizado (pt, en o es). Un mes sin movimientos produce un
// extracto válido con totales en cero.
func (uc *StatementUseCase) GenerateStatement(ctx context.Context, year, month int, lang string) ([]byte, error) {
	doc, err := uc.BuildStatement(year, month, lang)
	if err != nil {
		return nil, err
	}

	bytes, err := uc.pdf.GenerateStatementPDF(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("generar PDF del extracto: %w", err)
	}

	uc.log.Info().
		Int("year", year).
		Int("month", month).
		Int("rows", len(doc.Rows)).
		Msg("extracto financiero generado")
	return bytes, nil
}

// BuildStatement arma el documento localizado sin renderizarlo. Expuesto
// aparte para poder probar los totales sin motor de PDF.
func (uc *StatementUseCase) BuildStatement(year, month int, lang string) (StatementDocument, error) {
	if month < 1 || month > 12 {
		return StatementDocument{}, fmt.Errorf("%w: mes %d fuera de rango", domain.ErrInvalidInput, month)
	}
	if year < 2000 || year > 2100 {
		return StatementDocument{}, fmt.Errorf("%w: año %d fuera de rango", domain.ErrInvalidInput, year)
	}

	data := uc.source.Snapshot()
	prefix := fmt.Sprintf("%04d-%02d", year, month)

	var monthTxs []entity.Transaction
	for _, t := range data.Transactions {
		if strings.HasPrefix(t.Date, prefix) {
			monthTxs = append(monthTxs, t)
		}
	}
	sort.SliceStable(monthTxs, func(i, j int) bool {
		return monthTxs[i].Date < monthTxs[j].Date
	})

	totalIncome := decimal.Zero
	totalExpense := decimal.Zero
	rows := make([]StatementRow, 0, len(monthTxs))
	for _, t := range monthTxs {
		income := t.Type == entity.TypeIncome
		if income {
			totalIncome = totalIncome.Add(t.Amount)
		} else {
			totalExpense = totalExpense.Add(t.Amount)
		}
		rows = append(rows, StatementRow{
			Date:        t.Date,
			Description: t.Description,
			LinkedName:  linkedName(data, t),
			Category:    i18n.Label(lang, "txcat."+t.Category),
			TypeLabel:   i18n.Label(lang, "type."+t.Type),
			Income:      income,
			Amount:      t.Amount,
		})
	}

	return StatementDocument{
		Title:       i18n.Label(lang, "report.statement"),
		Period:      i18n.Label(lang, "report.period") + ": " + i18n.MonthLabel(lang, year, month),
		GeneratedAt: i18n.Label(lang, "report.generatedAt") + ": " + uc.now().Format("02/01/2006 15:04"),

		IncomeLabel:  i18n.Label(lang, "report.income"),
		ExpenseLabel: i18n.Label(lang, "report.expense"),
		BalanceLabel: i18n.Label(lang, "report.balance"),

		DateHeader:        i18n.Label(lang, "report.date"),
		DescriptionHeader: i18n.Label(lang, "report.description"),
		LinkedHeader:      i18n.Label(lang, "report.linked"),
		CategoryHeader:    i18n.Label(lang, "report.category"),
		TypeHeader:        i18n.Label(lang, "report.type"),
		AmountHeader:      i18n.Label(lang, "report.amount"),
		FinalBalanceLabel: i18n.Label(lang, "report.finalBalance"),

		TotalIncome:  totalIncome,
		TotalExpense: totalExpense,
		Balance:      totalIncome.Sub(totalExpense),

		Rows: rows,
	}, nil
}

// linkedName resuelve el nombre del producto o colaborador referenciado.
// Referencias colgantes (entidad borrada) no son un error: se rinden como
// un guion.
func linkedName(data entity.AppData, t entity.Transaction) string {
	if t.ProductID != "" {
		if p := data.FindProduct(t.ProductID); p != nil {
			return p.Name
		}
		return "—"
	}
	if t.CollaboratorID != "" {
		if c := data.FindCollaborator(t.CollaboratorID); c != nil {
			return c.FullName()
		}
		return "—"
	}
	return "—"
}
