package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/flowdash/internal/application/dto"
	"github.com/tu-usuario/flowdash/internal/application/usecase"
	"github.com/tu-usuario/flowdash/internal/domain"
	"github.com/tu-usuario/flowdash/pkg/i18n"
)

// InsightHandler expone la generación de consejos de negocio con IA.
type InsightHandler struct {
	uc *usecase.InsightUseCase
}

// NewInsightHandler construye el handler.
func NewInsightHandler(uc *usecase.InsightUseCase) *InsightHandler {
	return &InsightHandler{uc: uc}
}

// Generate godoc
// @Summary      Generar insights de negocio con IA
// @Description  Analiza la foto actual y devuelve 3 a 5 consejos. Un fallo
//               del proveedor externo no produce error HTTP: la respuesta
//               degrada a un insight informativo localizado. Si language
//               viene vacío se usa Accept-Language.
// @Tags         insights
// @Accept       json
// @Produce      json
// @Param        body  body  dto.InsightRequest  true  "mode (general|inventory|finance|marketing) y language"
// @Success      200   {array}   dto.InsightDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/insights [post]
func (h *InsightHandler) Generate(c *fiber.Ctx) error {
	var req dto.InsightRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}

	tag := req.Language
	if tag == "" {
		tag = c.Get(fiber.HeaderAcceptLanguage)
	}
	lang := i18n.Match(tag)

	insights, err := h.uc.Generate(c.Context(), req.Mode, lang)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(insights)
}
