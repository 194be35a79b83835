package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/flowdash/internal/application/dto"
	"github.com/tu-usuario/flowdash/internal/application/store"
	"github.com/tu-usuario/flowdash/internal/domain/entity"
)

// ProductHandler maneja las peticiones HTTP para el catálogo de productos.
type ProductHandler struct {
	store *store.Store
}

// NewProductHandler construye el handler.
func NewProductHandler(s *store.Store) *ProductHandler {
	return &ProductHandler{store: s}
}

// List godoc
// @Summary      Listar productos
// @Tags         products
// @Produce      json
// @Success      200  {array}  entity.Product
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.store.Snapshot().Products)
}

// Create godoc
// @Summary      Crear producto
// @Description  El estado de stock no se envía: se deriva siempre del stock.
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "Datos del producto"
// @Success      201   {object}  entity.Product
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	in, errResp := parseProductBody(c)
	if errResp != nil {
		return c.Status(fiber.StatusBadRequest).JSON(*errResp)
	}

	created := h.store.AddProduct(c.Context(), entity.Product{
		Name:     in.Name,
		Category: in.Category,
		Price:    in.Price,
		Stock:    in.Stock,
		ImageURL: in.ImageURL,
	})
	return c.Status(fiber.StatusCreated).JSON(created)
}

// Update godoc
// @Summary      Actualizar producto
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.UpdateProductRequest  true  "Datos a reemplazar"
// @Success      200   {object}  entity.Product
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	in, errResp := parseProductBody(c)
	if errResp != nil {
		return c.Status(fiber.StatusBadRequest).JSON(*errResp)
	}

	p := entity.Product{
		ID:       id,
		Name:     in.Name,
		Category: in.Category,
		Price:    in.Price,
		Stock:    in.Stock,
		ImageURL: in.ImageURL,
	}
	updated, ok := h.store.UpdateProduct(c.Context(), p)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
	}
	return c.JSON(updated)
}

// Delete godoc
// @Summary      Eliminar producto
// @Description  Sin cascada: las transacciones históricas conservan su
//               referencia colgante y los consumidores la toleran.
// @Tags         products
// @Param        id  path  string  true  "ID del producto"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	if !h.store.DeleteProduct(c.Context(), c.Params("id")) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// parseProductBody parsea y valida el cuerpo compartido entre Create y Update.
func parseProductBody(c *fiber.Ctx) (dto.CreateProductRequest, *dto.ErrorResponse) {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return in, &dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"}
	}
	if in.Name == "" {
		return in, &dto.ErrorResponse{Code: "VALIDATION", Message: "name es requerido"}
	}
	if !entity.ValidCategory(in.Category) {
		return in, &dto.ErrorResponse{Code: "VALIDATION", Message: "categoría desconocida: " + in.Category}
	}
	if in.Price.IsNegative() {
		return in, &dto.ErrorResponse{Code: "VALIDATION", Message: "price no puede ser negativo"}
	}
	if in.Stock < 0 {
		return in, &dto.ErrorResponse{Code: "VALIDATION", Message: "stock no puede ser negativo"}
	}
	return in, nil
}
