// Package http expone la API REST sobre Fiber. Los handlers validan en el
// borde, delegan en el Store y los casos de uso, y traducen errores de
// dominio a códigos HTTP.
package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/flowdash/internal/application/store"
)

// SnapshotHandler entrega la foto completa del agregado.
type SnapshotHandler struct {
	store *store.Store
}

// NewSnapshotHandler construye el handler.
func NewSnapshotHandler(s *store.Store) *SnapshotHandler {
	return &SnapshotHandler{store: s}
}

// Get godoc
// @Summary      Foto completa de la aplicación
// @Description  Devuelve productos, transacciones y colaboradores en una sola
//               respuesta consistente: ninguna mutación concurrente puede
//               partir la foto a la mitad.
// @Tags         snapshot
// @Produce      json
// @Success      200  {object}  entity.AppData
// @Router       /api/snapshot [get]
func (h *SnapshotHandler) Get(c *fiber.Ctx) error {
	return c.JSON(h.store.Snapshot())
}
