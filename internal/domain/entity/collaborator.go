package entity

// Sectores de la empresa.
const (
	SectorCommercial      = "COMMERCIAL"
	SectorAdmin           = "ADMIN"
	SectorGeneralServices = "GENERAL_SERVICES"
)

// Collaborator representa un empleado. El núcleo no deriva nada de esta
// entidad; las transacciones la referencian vía CollaboratorID para atribuir
// ventas o pagos de salario.
type Collaborator struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Matricula string `json:"matricula"` // código de empleado, máx. 6 alfanuméricos
	Sector    string `json:"sector"`
	Role      string `json:"role"` // cargo libre; por defecto el nombre del sector
	HiredDate string `json:"hiredDate"`
	AvatarURL string `json:"avatarUrl,omitempty"`
}

// ValidSector indica si el tag de sector pertenece a la enumeración.
func ValidSector(s string) bool {
	switch s {
	case SectorCommercial, SectorAdmin, SectorGeneralServices:
		return true
	}
	return false
}

// FullName devuelve nombre y apellido para mostrar.
func (c Collaborator) FullName() string {
	if c.FirstName == "" {
		return c.LastName
	}
	if c.LastName == "" {
		return c.FirstName
	}
	return c.FirstName + " " + c.LastName
}
