package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/flowdash/internal/application/analytics"
	"github.com/tu-usuario/flowdash/internal/application/dto"
	"github.com/tu-usuario/flowdash/internal/application/report"
	"github.com/tu-usuario/flowdash/internal/application/store"
	"github.com/tu-usuario/flowdash/internal/application/usecase"
	"github.com/tu-usuario/flowdash/internal/domain/entity"
	"github.com/tu-usuario/flowdash/internal/domain/ledger"
	"github.com/tu-usuario/flowdash/internal/domain/repository"
	apphttp "github.com/tu-usuario/flowdash/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// memRepo es un repositorio en memoria para construir el Store en los tests.
type memRepo struct {
	doc  *repository.Document
	goal *decimal.Decimal
}

func (m *memRepo) Load(context.Context) (*repository.Document, error) { return m.doc, nil }

func (m *memRepo) Save(_ context.Context, doc repository.Document) error {
	m.doc = &doc
	return nil
}

func (m *memRepo) LoadMonthlyGoal(context.Context) (decimal.Decimal, bool, error) {
	if m.goal == nil {
		return decimal.Zero, false, nil
	}
	return *m.goal, true, nil
}

func (m *memRepo) SaveMonthlyGoal(_ context.Context, g decimal.Decimal) error {
	m.goal = &g
	return nil
}

// stubLLM devuelve siempre los mismos insights.
type stubLLM struct{ out []dto.InsightDTO }

func (s *stubLLM) GenerateInsights(context.Context, dto.BusinessSummaryDTO, string, string) ([]dto.InsightDTO, error) {
	return s.out, nil
}

// stubPDF devuelve bytes fijos en lugar de renderizar.
type stubPDF struct{}

func (stubPDF) GenerateStatementPDF(context.Context, report.StatementDocument) ([]byte, error) {
	return []byte("%PDF-stub"), nil
}

// buildTestApp arma la aplicación completa sobre un repositorio en memoria
// precargado con un documento conocido (sin el seed de fábrica).
func buildTestApp(t *testing.T, doc *repository.Document) (*fiber.App, *store.Store) {
	t.Helper()

	log := zerolog.Nop()
	st := store.New(context.Background(), &memRepo{doc: doc}, ledger.New(), log)
	deps := apphttp.RouterDeps{
		Store:       st,
		DashboardUC: analytics.NewDashboardUseCase(st),
		InsightUC:   usecase.NewInsightUseCase(st, &stubLLM{out: []dto.InsightDTO{{Type: "info", Title: "t", Message: "m"}}}, log),
		StatementUC: report.NewStatementUseCase(st, stubPDF{}, log),
	}

	app := fiber.New()
	apphttp.Router(app, deps)
	return app, st
}

func baseDoc() *repository.Document {
	collaborators := []entity.Collaborator{
		{ID: "c1", FirstName: "Ana", LastName: "Silva", Matricula: "CO001", Sector: entity.SectorCommercial, Role: "Vendedora"},
	}
	return &repository.Document{
		Products: []entity.Product{
			{ID: "p1", Name: "Teclado Mecánico", Category: entity.CategoryElectronics,
				Price: decimal.NewFromInt(120), Stock: 15, Status: entity.StatusForStock(15)},
		},
		Transactions:  []entity.Transaction{},
		Collaborators: &collaborators,
	}
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any, header map[string]string) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range header {
		req.Header.Set(k, v)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Transacciones
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateTransaction_VentaDescuentaStock(t *testing.T) {
	app, st := buildTestApp(t, baseDoc())

	resp := doJSON(t, app, http.MethodPost, "/api/transactions", dto.CreateTransactionRequest{
		Date: "2025-07-10", Type: entity.TypeIncome, Category: entity.TxCategorySales,
		Amount: decimal.NewFromInt(360), Description: "Venta de 3 teclados",
		Quantity: 3, ProductID: "p1", CollaboratorID: "c1",
	}, nil)
	defer resp.Body.Close()

	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var out dto.TransactionCreatedResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.NotEmpty(t, out.Transaction.ID)
	assert.Equal(t, "p1", out.Transaction.ProductID)
	require.NotNil(t, out.UpdatedProduct)
	assert.Equal(t, 12, out.UpdatedProduct.Stock)

	snap := st.Snapshot()
	require.Len(t, snap.Transactions, 1)
	assert.Equal(t, 12, snap.Products[0].Stock)
}

// Una venta que excede el stock no se rechaza: el stock queda en cero y la
// transacción conserva monto y cantidad pedidos.
func TestCreateTransaction_SobreventaNoSeRechaza(t *testing.T) {
	app, st := buildTestApp(t, baseDoc())

	resp := doJSON(t, app, http.MethodPost, "/api/transactions", dto.CreateTransactionRequest{
		Date: "2025-07-10", Type: entity.TypeIncome, Category: entity.TxCategorySales,
		Amount: decimal.NewFromInt(2400), Description: "Pedido mayorista",
		Quantity: 20, ProductID: "p1",
	}, nil)
	defer resp.Body.Close()

	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var out dto.TransactionCreatedResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, 20, out.Transaction.Quantity)
	require.NotNil(t, out.UpdatedProduct)
	assert.Equal(t, 0, out.UpdatedProduct.Stock)
	assert.Equal(t, entity.StatusOutOfStock, out.UpdatedProduct.Status)

	assert.Equal(t, 0, st.Snapshot().Products[0].Stock)
}

func TestCreateTransaction_AltaDeProductoNuevo(t *testing.T) {
	app, st := buildTestApp(t, baseDoc())

	resp := doJSON(t, app, http.MethodPost, "/api/transactions", dto.CreateTransactionRequest{
		Date: "2025-07-11", Type: entity.TypeExpense, Category: entity.TxCategoryStock,
		Amount: decimal.NewFromInt(1000), Description: "Compra inicial de mouse",
		Quantity: 10, NewProductName: "Mouse Inalámbrico",
	}, nil)
	defer resp.Body.Close()

	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var out dto.TransactionCreatedResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.NotNil(t, out.UpdatedProduct)
	assert.Equal(t, "Mouse Inalámbrico", out.UpdatedProduct.Name)
	assert.True(t, decimal.NewFromInt(100).Equal(out.UpdatedProduct.Price), "precio unitario = monto/cantidad")
	assert.Equal(t, entity.StatusInStock, out.UpdatedProduct.Status)

	assert.Len(t, st.Snapshot().Products, 2)
}

func TestCreateTransaction_Validacion(t *testing.T) {
	app, _ := buildTestApp(t, baseDoc())

	cases := []struct {
		name string
		body dto.CreateTransactionRequest
	}{
		{"sin fecha", dto.CreateTransactionRequest{
			Type: entity.TypeIncome, Category: entity.TxCategorySales,
			Amount: decimal.NewFromInt(10), Description: "x"}},
		{"tipo desconocido", dto.CreateTransactionRequest{
			Date: "2025-07-10", Type: "transfer", Category: entity.TxCategorySales,
			Amount: decimal.NewFromInt(10), Description: "x"}},
		{"monto cero", dto.CreateTransactionRequest{
			Date: "2025-07-10", Type: entity.TypeIncome, Category: entity.TxCategorySales,
			Description: "x"}},
		{"sin descripción", dto.CreateTransactionRequest{
			Date: "2025-07-10", Type: entity.TypeIncome, Category: entity.TxCategorySales,
			Amount: decimal.NewFromInt(10)}},
		{"producto nuevo y existente a la vez", dto.CreateTransactionRequest{
			Date: "2025-07-10", Type: entity.TypeExpense, Category: entity.TxCategoryStock,
			Amount: decimal.NewFromInt(10), Description: "x", Quantity: 1,
			ProductID: "p1", NewProductName: "Otro"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := doJSON(t, app, http.MethodPost, "/api/transactions", tc.body, nil)
			defer resp.Body.Close()

			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			body, _ := io.ReadAll(resp.Body)
			assert.Contains(t, string(body), "VALIDATION")
		})
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Colaboradores: default de role por Accept-Language
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateCollaborator_RolePorDefectoSegunIdioma(t *testing.T) {
	app, _ := buildTestApp(t, baseDoc())

	resp := doJSON(t, app, http.MethodPost, "/api/collaborators", dto.CreateCollaboratorRequest{
		FirstName: "Bruno", LastName: "Costa", Matricula: "CO009",
		Sector: entity.SectorGeneralServices, HiredDate: "2025-01-15",
	}, map[string]string{fiber.HeaderAcceptLanguage: "en-US,en;q=0.9"})
	defer resp.Body.Close()

	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var out entity.Collaborator
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "General Services", out.Role, "role vacío toma el nombre del sector en el idioma del caller")
	assert.NotEmpty(t, out.ID)
}

// Una matrícula ya asignada a otro colaborador responde 409 y no crea nada.
func TestCreateCollaborator_MatriculaDuplicada(t *testing.T) {
	app, s := buildTestApp(t, baseDoc())

	// c1 (Ana Silva) ya tiene CO001.
	resp := doJSON(t, app, http.MethodPost, "/api/collaborators", dto.CreateCollaboratorRequest{
		FirstName: "Bruno", LastName: "Costa", Matricula: "CO001",
		Sector: entity.SectorAdmin, Role: "Auxiliar", HiredDate: "2025-01-15",
	}, nil)
	defer resp.Body.Close()

	require.Equal(t, http.StatusConflict, resp.StatusCode)

	var out dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "DUPLICATE", out.Code)
	require.Len(t, s.Snapshot().Collaborators, 1)
	assert.Equal(t, "CO001", s.Snapshot().Collaborators[0].Matricula)
}

func TestCreateCollaborator_MatriculaInvalida(t *testing.T) {
	app, _ := buildTestApp(t, baseDoc())

	resp := doJSON(t, app, http.MethodPost, "/api/collaborators", dto.CreateCollaboratorRequest{
		FirstName: "Bruno", Matricula: "DEMASIADO-LARGA",
		Sector: entity.SectorAdmin, HiredDate: "2025-01-15",
	}, nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Snapshot y reportes
// ──────────────────────────────────────────────────────────────────────────────

func TestGetSnapshot_DevuelveLaFotoCompleta(t *testing.T) {
	app, _ := buildTestApp(t, baseDoc())

	resp := doJSON(t, app, http.MethodGet, "/api/snapshot", nil, nil)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var snap entity.AppData
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&snap))
	assert.Len(t, snap.Products, 1)
	assert.Len(t, snap.Collaborators, 1)
}

func TestStatement_DevuelvePDF(t *testing.T) {
	app, _ := buildTestApp(t, baseDoc())

	resp := doJSON(t, app, http.MethodGet, "/api/reports/statement?year=2025&month=7&lang=pt", nil, nil)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "statement-2025-07.pdf")

	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "%PDF-stub", string(body))
}

func TestStatement_MesInvalido(t *testing.T) {
	app, _ := buildTestApp(t, baseDoc())

	resp := doJSON(t, app, http.MethodGet, "/api/reports/statement?year=2025&month=13", nil, nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
