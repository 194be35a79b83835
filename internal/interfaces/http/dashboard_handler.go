package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/flowdash/internal/application/analytics"
	"github.com/tu-usuario/flowdash/internal/application/dto"
	"github.com/tu-usuario/flowdash/internal/application/store"
	"github.com/tu-usuario/flowdash/internal/domain"
)

// DashboardHandler expone los KPIs del panel y la meta mensual.
type DashboardHandler struct {
	store *store.Store
	uc    *analytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(s *store.Store, uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{store: s, uc: uc}
}

// Summary godoc
// @Summary      KPIs del panel
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.DashboardSummaryDTO
// @Router       /api/dashboard/summary [get]
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	return c.JSON(h.uc.GetSummary())
}

// GetGoal godoc
// @Summary      Meta mensual vigente
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.MonthlyGoalDTO
// @Router       /api/dashboard/goal [get]
func (h *DashboardHandler) GetGoal(c *fiber.Ctx) error {
	return c.JSON(dto.MonthlyGoalDTO{Goal: h.store.MonthlyGoal()})
}

// SetGoal godoc
// @Summary      Fijar meta mensual
// @Tags         dashboard
// @Accept       json
// @Produce      json
// @Param        body  body  dto.MonthlyGoalDTO  true  "Meta mensual"
// @Success      200   {object}  dto.MonthlyGoalDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/dashboard/goal [put]
func (h *DashboardHandler) SetGoal(c *fiber.Ctx) error {
	var in dto.MonthlyGoalDTO
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if !in.Goal.IsPositive() {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "goal debe ser mayor que cero"})
	}

	h.store.SetMonthlyGoal(c.Context(), in.Goal)
	return c.JSON(in)
}

// CollaboratorReport godoc
// @Summary      Reporte de ventas de un colaborador
// @Tags         dashboard
// @Produce      json
// @Param        id   path  string  true  "ID del colaborador"
// @Success      200  {object}  dto.CollaboratorReportDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/dashboard/collaborators/{id}/report [get]
func (h *DashboardHandler) CollaboratorReport(c *fiber.Ctx) error {
	report, err := h.uc.GetCollaboratorReport(c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "colaborador no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(report)
}
