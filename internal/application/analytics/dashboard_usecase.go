// Package analytics calcula los KPIs del dashboard y el reporte individual
// de ventas por colaborador a partir de la foto en memoria.
package analytics

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/flowdash/internal/application/dto"
	"github.com/tu-usuario/flowdash/internal/domain"
	"github.com/tu-usuario/flowdash/internal/domain/entity"
)

const (
	dashboardTopProducts    = 3 // productos en el widget de más vendidos
	dashboardRecentActivity = 5 // transacciones en actividad reciente
	reportRecentSales       = 4 // ventas en el resumen del colaborador
)

var hundred = decimal.NewFromInt(100)

// SnapshotSource es lo único que el dashboard necesita del Store.
type SnapshotSource interface {
	Snapshot() entity.AppData
	MonthlyGoal() decimal.Decimal
}

// DashboardUseCase genera el resumen de KPIs sobre la foto completa.
// Solo lectura; no hay acceso a persistencia.
type DashboardUseCase struct {
	source SnapshotSource
	now    func() time.Time
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(source SnapshotSource) *DashboardUseCase {
	return &DashboardUseCase{source: source, now: time.Now}
}

// GetSummary calcula los KPIs: totales financieros, valor de inventario,
// productos fuera de IN_STOCK, avance de la meta mensual, top de productos
// por ingreso vinculado y actividad reciente.
func (uc *DashboardUseCase) GetSummary() *dto.DashboardSummaryDTO {
	data := uc.source.Snapshot()
	goal := uc.source.MonthlyGoal()

	revenue := decimal.Zero
	expenses := decimal.Zero
	for _, tx := range data.Transactions {
		if tx.Type == entity.TypeIncome {
			revenue = revenue.Add(tx.Amount)
		} else {
			expenses = expenses.Add(tx.Amount)
		}
	}

	inventoryValue := decimal.Zero
	lowStock := 0
	for _, p := range data.Products {
		inventoryValue = inventoryValue.Add(p.Price.Mul(decimal.NewFromInt(int64(p.Stock))))
		if p.Status != entity.StatusInStock {
			lowStock++
		}
	}

	goalPercent := decimal.Zero
	goalRemaining := decimal.Zero
	if goal.IsPositive() {
		goalPercent = revenue.Div(goal).Mul(hundred).Round(1)
		if goalPercent.GreaterThan(hundred) {
			goalPercent = hundred
		}
		if remaining := goal.Sub(revenue); remaining.IsPositive() {
			goalRemaining = remaining
		}
	}

	return &dto.DashboardSummaryDTO{
		TotalRevenue:   revenue.Round(2),
		TotalExpenses:  expenses.Round(2),
		NetProfit:      revenue.Sub(expenses).Round(2),
		InventoryValue: inventoryValue.Round(2),
		LowStockCount:  lowStock,
		MonthlyGoal:    goal,
		GoalPercent:    goalPercent,
		GoalRemaining:  goalRemaining,
		DaysRemaining:  daysRemainingInMonth(uc.now()),
		TopProducts:    topProducts(data),
		RecentActivity: recentByDate(data.Transactions, dashboardRecentActivity),
	}
}

// GetCollaboratorReport arma el reporte individual de ventas. Devuelve
// domain.ErrNotFound solo si el colaborador mismo no existe; las referencias
// colgantes dentro de las transacciones no son un error.
func (uc *DashboardUseCase) GetCollaboratorReport(id string) (*dto.CollaboratorReportDTO, error) {
	data := uc.source.Snapshot()

	collab := data.FindCollaborator(id)
	if collab == nil {
		return nil, domain.ErrNotFound
	}

	var sales []entity.Transaction
	total := decimal.Zero
	for _, tx := range data.Transactions {
		if tx.Type == entity.TypeIncome && tx.CollaboratorID == id {
			sales = append(sales, tx)
			total = total.Add(tx.Amount)
		}
	}

	return &dto.CollaboratorReportDTO{
		Collaborator: *collab,
		TotalRevenue: total.Round(2),
		SalesCount:   len(sales),
		RecentSales:  recentByDate(sales, reportRecentSales),
	}, nil
}

// topProducts suma el ingreso por producto vinculado y devuelve el top 3.
// Productos borrados (referencia colgante) se omiten del widget.
func topProducts(data entity.AppData) []dto.TopProductDTO {
	revenueByProduct := make(map[string]decimal.Decimal)
	for _, tx := range data.Transactions {
		if tx.Type == entity.TypeIncome && tx.ProductID != "" {
			revenueByProduct[tx.ProductID] = revenueByProduct[tx.ProductID].Add(tx.Amount)
		}
	}

	top := make([]dto.TopProductDTO, 0, len(revenueByProduct))
	for id, total := range revenueByProduct {
		product := data.FindProduct(id)
		if product == nil {
			continue
		}
		top = append(top, dto.TopProductDTO{
			ProductID:    id,
			Name:         product.Name,
			Category:     product.Category,
			TotalRevenue: total.Round(2),
		})
	}
	sort.Slice(top, func(i, j int) bool {
		if !top[i].TotalRevenue.Equal(top[j].TotalRevenue) {
			return top[i].TotalRevenue.GreaterThan(top[j].TotalRevenue)
		}
		return top[i].ProductID < top[j].ProductID // desempate estable
	})
	if len(top) > dashboardTopProducts {
		top = top[:dashboardTopProducts]
	}
	return top
}

// recentByDate devuelve las últimas n transacciones ordenadas de más reciente
// a más antigua. Las fechas son strings 2006-01-02: el orden lexicográfico
// coincide con el cronológico.
func recentByDate(transactions []entity.Transaction, n int) []entity.Transaction {
	out := make([]entity.Transaction, len(transactions))
	copy(out, transactions)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	if len(out) > n {
		out = out[:n]
	}
	return out
}

// daysRemainingInMonth cuenta los días que faltan para terminar el mes de t.
func daysRemainingInMonth(t time.Time) int {
	lastDay := time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, t.Location())
	days := lastDay.Day() - t.Day()
	if days < 0 {
		return 0
	}
	return days
}
