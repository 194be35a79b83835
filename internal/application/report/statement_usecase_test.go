package report

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/flowdash/internal/domain"
	"github.com/tu-usuario/flowdash/internal/domain/entity"
)

type fakeStatementSource struct {
	data entity.AppData
}

func (f *fakeStatementSource) Snapshot() entity.AppData { return f.data.Clone() }

type fakePDFGenerator struct {
	lastDoc StatementDocument
	bytes   []byte
	err     error
}

func (f *fakePDFGenerator) GenerateStatementPDF(_ context.Context, doc StatementDocument) ([]byte, error) {
	f.lastDoc = doc
	return f.bytes, f.err
}

func newStatementUseCaseForTest(data entity.AppData, gen *fakePDFGenerator) *StatementUseCase {
	uc := NewStatementUseCase(&fakeStatementSource{data: data}, gen, zerolog.Nop())
	uc.now = func() time.Time { return time.Date(2025, 7, 20, 14, 30, 0, 0, time.UTC) }
	return uc
}

func tx(id, date, typ, category, desc string, amount int64) entity.Transaction {
	return entity.Transaction{
		ID:          id,
		Date:        date,
		Type:        typ,
		Category:    category,
		Amount:      decimal.NewFromInt(amount),
		Description: desc,
	}
}

func TestBuildStatement_FiltraYTotalizaElMes(t *testing.T) {
	data := entity.AppData{Transactions: []entity.Transaction{
		tx("t1", "2025-07-10", entity.TypeIncome, entity.TxCategorySales, "Venta silla", 500),
		tx("t2", "2025-07-02", entity.TypeExpense, entity.TxCategoryRent, "Alquiler local", 200),
		tx("t3", "2025-06-28", entity.TypeIncome, entity.TxCategorySales, "Venta de junio", 900),
		tx("t4", "2025-07-15", entity.TypeExpense, entity.TxCategoryStock, "Reposición", 100),
	}}
	uc := newStatementUseCaseForTest(data, &fakePDFGenerator{})

	doc, err := uc.BuildStatement(2025, 7, "pt")

	require.NoError(t, err)
	require.Len(t, doc.Rows, 3, "la venta de junio queda fuera")
	assert.Equal(t, "2025-07-02", doc.Rows[0].Date, "filas ordenadas por fecha ascendente")
	assert.Equal(t, "2025-07-15", doc.Rows[2].Date)
	assert.True(t, decimal.NewFromInt(500).Equal(doc.TotalIncome))
	assert.True(t, decimal.NewFromInt(300).Equal(doc.TotalExpense))
	assert.True(t, decimal.NewFromInt(200).Equal(doc.Balance))
}

func TestBuildStatement_ResuelveVinculos(t *testing.T) {
	linkedProduct := tx("t1", "2025-07-10", entity.TypeIncome, entity.TxCategorySales, "Venta", 500)
	linkedProduct.ProductID = "p1"
	danglingProduct := tx("t2", "2025-07-11", entity.TypeIncome, entity.TxCategorySales, "Venta vieja", 100)
	danglingProduct.ProductID = "p-borrado"
	linkedCollab := tx("t3", "2025-07-12", entity.TypeExpense, entity.TxCategorySalary, "Salario", 300)
	linkedCollab.CollaboratorID = "c1"

	data := entity.AppData{
		Products:      []entity.Product{{ID: "p1", Name: "Silla Gamer"}},
		Collaborators: []entity.Collaborator{{ID: "c1", FirstName: "Ana", LastName: "Silva"}},
		Transactions:  []entity.Transaction{linkedProduct, danglingProduct, linkedCollab},
	}
	uc := newStatementUseCaseForTest(data, &fakePDFGenerator{})

	doc, err := uc.BuildStatement(2025, 7, "es")

	require.NoError(t, err)
	require.Len(t, doc.Rows, 3)
	assert.Equal(t, "Silla Gamer", doc.Rows[0].LinkedName)
	assert.Equal(t, "—", doc.Rows[1].LinkedName, "referencia colgante se rinde como guion")
	assert.Equal(t, "Ana Silva", doc.Rows[2].LinkedName)
}

func TestBuildStatement_LocalizaEncabezadosYCategorias(t *testing.T) {
	data := entity.AppData{Transactions: []entity.Transaction{
		tx("t1", "2025-07-10", entity.TypeIncome, entity.TxCategorySales, "Venta", 500),
	}}
	uc := newStatementUseCaseForTest(data, &fakePDFGenerator{})

	pt, err := uc.BuildStatement(2025, 7, "pt")
	require.NoError(t, err)
	assert.Equal(t, "Extrato Financeiro", pt.Title)
	assert.Equal(t, "Vendas", pt.Rows[0].Category)
	assert.Equal(t, "Receita", pt.Rows[0].TypeLabel)
	assert.Contains(t, pt.GeneratedAt, "20/07/2025")

	en, err := uc.BuildStatement(2025, 7, "en")
	require.NoError(t, err)
	assert.Equal(t, "Financial Statement", en.Title)
	assert.Equal(t, "Sales", en.Rows[0].Category)
	assert.Contains(t, en.Period, "July 2025")
}

func TestBuildStatement_MesVacioProduceExtractoEnCero(t *testing.T) {
	uc := newStatementUseCaseForTest(entity.AppData{}, &fakePDFGenerator{})

	doc, err := uc.BuildStatement(2025, 2, "es")

	require.NoError(t, err)
	assert.Empty(t, doc.Rows)
	assert.True(t, doc.TotalIncome.IsZero())
	assert.True(t, doc.TotalExpense.IsZero())
	assert.True(t, doc.Balance.IsZero())
}

func TestBuildStatement_MesInvalido(t *testing.T) {
	uc := newStatementUseCaseForTest(entity.AppData{}, &fakePDFGenerator{})

	_, err := uc.BuildStatement(2025, 13, "pt")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.BuildStatement(1800, 5, "pt")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestGenerateStatement_DelegaEnElGenerador(t *testing.T) {
	data := entity.AppData{Transactions: []entity.Transaction{
		tx("t1", "2025-07-10", entity.TypeIncome, entity.TxCategorySales, "Venta", 500),
	}}
	gen := &fakePDFGenerator{bytes: []byte("%PDF-fake")}
	uc := newStatementUseCaseForTest(data, gen)

	out, err := uc.GenerateStatement(context.Background(), 2025, 7, "pt")

	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-fake"), out)
	assert.Len(t, gen.lastDoc.Rows, 1)
}

func TestGenerateStatement_ErrorDelGenerador(t *testing.T) {
	gen := &fakePDFGenerator{err: errors.New("sin fuente helvetica")}
	uc := newStatementUseCaseForTest(entity.AppData{}, gen)

	_, err := uc.GenerateStatement(context.Background(), 2025, 7, "pt")
	assert.ErrorContains(t, err, "sin fuente helvetica")
}
