package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/flowdash/internal/application/dto"
	"github.com/tu-usuario/flowdash/internal/application/store"
	"github.com/tu-usuario/flowdash/internal/domain"
	"github.com/tu-usuario/flowdash/internal/domain/entity"
	"github.com/tu-usuario/flowdash/pkg/i18n"
)

const matriculaMaxLen = 6

// CollaboratorHandler maneja las peticiones HTTP para colaboradores.
type CollaboratorHandler struct {
	store *store.Store
}

// NewCollaboratorHandler construye el handler.
func NewCollaboratorHandler(s *store.Store) *CollaboratorHandler {
	return &CollaboratorHandler{store: s}
}

// List godoc
// @Summary      Listar colaboradores
// @Tags         collaborators
// @Produce      json
// @Success      200  {array}  entity.Collaborator
// @Router       /api/collaborators [get]
func (h *CollaboratorHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.store.Snapshot().Collaborators)
}

// Create godoc
// @Summary      Crear colaborador
// @Description  Si role viene vacío se asume el nombre del sector en el
//               idioma del caller (Accept-Language).
// @Tags         collaborators
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCollaboratorRequest  true  "Datos del colaborador"
// @Success      201   {object}  entity.Collaborator
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/collaborators [post]
func (h *CollaboratorHandler) Create(c *fiber.Ctx) error {
	in, errResp := parseCollaboratorBody(c)
	if errResp != nil {
		return c.Status(fiber.StatusBadRequest).JSON(*errResp)
	}

	created, err := h.store.AddCollaborator(c.Context(), collaboratorFromRequest(c, in))
	if errors.Is(err, domain.ErrDuplicate) {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "matricula ya asignada a otro colaborador"})
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// Update godoc
// @Summary      Actualizar colaborador
// @Tags         collaborators
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del colaborador"
// @Param        body  body  dto.UpdateCollaboratorRequest  true  "Datos a reemplazar"
// @Success      200   {object}  entity.Collaborator
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/collaborators/{id} [put]
func (h *CollaboratorHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	in, errResp := parseCollaboratorBody(c)
	if errResp != nil {
		return c.Status(fiber.StatusBadRequest).JSON(*errResp)
	}

	col := collaboratorFromRequest(c, in)
	col.ID = id
	switch err := h.store.UpdateCollaborator(c.Context(), col); {
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "matricula ya asignada a otro colaborador"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "colaborador no encontrado"})
	}
	return c.JSON(col)
}

// Delete godoc
// @Summary      Eliminar colaborador
// @Tags         collaborators
// @Param        id  path  string  true  "ID del colaborador"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/collaborators/{id} [delete]
func (h *CollaboratorHandler) Delete(c *fiber.Ctx) error {
	if !h.store.DeleteCollaborator(c.Context(), c.Params("id")) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "colaborador no encontrado"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// collaboratorFromRequest arma la entidad aplicando el default de role.
func collaboratorFromRequest(c *fiber.Ctx, in dto.CreateCollaboratorRequest) entity.Collaborator {
	role := in.Role
	if role == "" {
		lang := i18n.Match(c.Get(fiber.HeaderAcceptLanguage))
		role = i18n.Label(lang, "sector."+in.Sector)
	}
	return entity.Collaborator{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Matricula: in.Matricula,
		Sector:    in.Sector,
		Role:      role,
		HiredDate: in.HiredDate,
		AvatarURL: in.AvatarURL,
	}
}

// parseCollaboratorBody parsea y valida el cuerpo compartido entre Create y Update.
func parseCollaboratorBody(c *fiber.Ctx) (dto.CreateCollaboratorRequest, *dto.ErrorResponse) {
	var in dto.CreateCollaboratorRequest
	if err := c.BodyParser(&in); err != nil {
		return in, &dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"}
	}
	if in.FirstName == "" && in.LastName == "" {
		return in, &dto.ErrorResponse{Code: "VALIDATION", Message: "firstName o lastName es requerido"}
	}
	if !validMatricula(in.Matricula) {
		return in, &dto.ErrorResponse{Code: "VALIDATION", Message: "matricula: hasta 6 caracteres alfanuméricos"}
	}
	if !entity.ValidSector(in.Sector) {
		return in, &dto.ErrorResponse{Code: "VALIDATION", Message: "sector desconocido: " + in.Sector}
	}
	return in, nil
}

// validMatricula: no vacía, máximo 6 caracteres alfanuméricos ASCII.
func validMatricula(m string) bool {
	if m == "" || len(m) > matriculaMaxLen {
		return false
	}
	for _, r := range m {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		default:
			return false
		}
	}
	return true
}
