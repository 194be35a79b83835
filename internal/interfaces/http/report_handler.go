package http

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/flowdash/internal/application/dto"
	"github.com/tu-usuario/flowdash/internal/application/report"
	"github.com/tu-usuario/flowdash/internal/domain"
	"github.com/tu-usuario/flowdash/pkg/i18n"
)

// ReportHandler expone la descarga del extracto financiero en PDF.
type ReportHandler struct {
	uc *report.StatementUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *report.StatementUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Statement godoc
// @Summary      Extracto financiero mensual en PDF
// @Description  Sin year/month se usa el mes en curso. lang acepta un tag
//               BCP 47 y se ajusta a pt/en/es; sin lang se usa
//               Accept-Language. Un mes sin movimientos devuelve un extracto
//               válido con totales en cero.
// @Tags         reports
// @Produce      application/pdf
// @Param        year   query  int     false  "Año (por defecto el actual)"
// @Param        month  query  int     false  "Mes 1-12 (por defecto el actual)"
// @Param        lang   query  string  false  "Idioma del extracto"
// @Success      200  {file}  binary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/statement [get]
func (h *ReportHandler) Statement(c *fiber.Ctx) error {
	now := time.Now()
	year := c.QueryInt("year", now.Year())
	month := c.QueryInt("month", int(now.Month()))

	tag := c.Query("lang")
	if tag == "" {
		tag = c.Get(fiber.HeaderAcceptLanguage)
	}
	lang := i18n.Match(tag)

	pdf, err := h.uc.GenerateStatement(c.Context(), year, month, lang)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="statement-%04d-%02d.pdf"`, year, month))
	return c.Send(pdf)
}
