package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/flowdash/internal/application/dto"
	"github.com/tu-usuario/flowdash/internal/application/store"
	"github.com/tu-usuario/flowdash/internal/domain/entity"
	"github.com/tu-usuario/flowdash/internal/domain/ledger"
)

// TransactionHandler maneja el libro financiero. Solo alta y listado: el
// libro es append-only.
type TransactionHandler struct {
	store *store.Store
}

// NewTransactionHandler construye el handler.
func NewTransactionHandler(s *store.Store) *TransactionHandler {
	return &TransactionHandler{store: s}
}

// List godoc
// @Summary      Listar transacciones
// @Tags         transactions
// @Produce      json
// @Success      200  {array}  entity.Transaction
// @Router       /api/transactions [get]
func (h *TransactionHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.store.Snapshot().Transactions)
}

// Create godoc
// @Summary      Registrar transacción
// @Description  Registra el evento financiero y aplica su efecto de
//               inventario en una sola operación. Una venta que excede el
//               stock no se rechaza: el stock queda en cero y la transacción
//               conserva la cantidad pedida. newProductName con un egreso con
//               cantidad da de alta un producto nuevo.
// @Tags         transactions
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateTransactionRequest  true  "Intención de transacción"
// @Success      201   {object}  dto.TransactionCreatedResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/transactions [post]
func (h *TransactionHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTransactionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if errResp := validateTransaction(in); errResp != nil {
		return c.Status(fiber.StatusBadRequest).JSON(*errResp)
	}

	tx, updated := h.store.AddTransaction(c.Context(), ledger.Intent{
		Type:           in.Type,
		Date:           in.Date,
		Category:       in.Category,
		Amount:         in.Amount,
		Description:    in.Description,
		Quantity:       in.Quantity,
		ProductID:      in.ProductID,
		CollaboratorID: in.CollaboratorID,
	}, in.NewProductName)

	return c.Status(fiber.StatusCreated).JSON(dto.TransactionCreatedResponse{
		Transaction:    tx,
		UpdatedProduct: updated,
	})
}

func validateTransaction(in dto.CreateTransactionRequest) *dto.ErrorResponse {
	if in.Date == "" {
		return &dto.ErrorResponse{Code: "VALIDATION", Message: "date es requerido"}
	}
	if !entity.ValidTransactionType(in.Type) {
		return &dto.ErrorResponse{Code: "VALIDATION", Message: "type debe ser income o expense"}
	}
	if !entity.ValidTransactionCategory(in.Category) {
		return &dto.ErrorResponse{Code: "VALIDATION", Message: "categoría desconocida: " + in.Category}
	}
	if !in.Amount.IsPositive() {
		return &dto.ErrorResponse{Code: "VALIDATION", Message: "amount debe ser mayor que cero"}
	}
	if in.Description == "" {
		return &dto.ErrorResponse{Code: "VALIDATION", Message: "description es requerido"}
	}
	if in.Quantity < 0 {
		return &dto.ErrorResponse{Code: "VALIDATION", Message: "quantity no puede ser negativo"}
	}
	if in.NewProductName != "" && in.ProductID != "" {
		return &dto.ErrorResponse{Code: "VALIDATION", Message: "newProductName y productId son excluyentes"}
	}
	return nil
}
