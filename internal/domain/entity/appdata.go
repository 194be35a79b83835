package entity

// AppData es el agregado raíz: la foto completa del estado de negocio en un
// instante. El Store de aplicación es su único dueño; todo lector recibe una
// copia, nunca los slices internos.
type AppData struct {
	Products      []Product      `json:"products"`      // únicos por ID
	Transactions  []Transaction  `json:"transactions"`  // ordenadas por inserción, append-only
	Collaborators []Collaborator `json:"collaborators"` // únicos por ID
}

// Clone devuelve una copia profunda del agregado. Los campos de las entidades
// son valores (decimal.Decimal incluido, que es inmutable), así que basta con
// copiar los slices.
func (d AppData) Clone() AppData {
	out := AppData{
		Products:      make([]Product, len(d.Products)),
		Transactions:  make([]Transaction, len(d.Transactions)),
		Collaborators: make([]Collaborator, len(d.Collaborators)),
	}
	copy(out.Products, d.Products)
	copy(out.Transactions, d.Transactions)
	copy(out.Collaborators, d.Collaborators)
	return out
}

// FindProduct busca un producto por ID. Devuelve nil si no existe: las
// referencias colgantes (producto borrado con transacciones históricas) son
// válidas y el consumidor debe tratarlas como "sin vínculo".
func (d AppData) FindProduct(id string) *Product {
	for i := range d.Products {
		if d.Products[i].ID == id {
			p := d.Products[i]
			return &p
		}
	}
	return nil
}

// FindCollaborator busca un colaborador por ID; nil si no existe.
func (d AppData) FindCollaborator(id string) *Collaborator {
	for i := range d.Collaborators {
		if d.Collaborators[i].ID == id {
			c := d.Collaborators[i]
			return &c
		}
	}
	return nil
}
