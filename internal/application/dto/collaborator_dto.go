package dto

// CreateCollaboratorRequest entrada para crear un colaborador.
// Role es opcional: si viene vacío se asume el nombre del sector en el
// idioma del caller (Accept-Language).
type CreateCollaboratorRequest struct {
	FirstName string `json:"firstName" validate:"required,min=1,max=100"`
	LastName  string `json:"lastName" validate:"required,min=1,max=100"`
	Matricula string `json:"matricula" validate:"required,alphanum,max=6"`
	Sector    string `json:"sector" validate:"required"`
	Role      string `json:"role"`
	HiredDate string `json:"hiredDate" validate:"required"`
	AvatarURL string `json:"avatarUrl"`
}

// UpdateCollaboratorRequest misma forma; el ID viene en la ruta.
type UpdateCollaboratorRequest = CreateCollaboratorRequest
