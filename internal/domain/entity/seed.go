package entity

import "github.com/shopspring/decimal"

// Seed devuelve el dataset inicial fijo que se usa cuando no hay estado
// persistido. También es la fuente del set de colaboradores al migrar
// documentos legados que no traen el campo collaborators.
func Seed() AppData {
	return AppData{
		Products:      seedProducts(),
		Transactions:  seedTransactions(),
		Collaborators: SeedCollaborators(),
	}
}

// SeedCollaborators expuesto por separado: la migración de documentos legados
// solo sintetiza esta colección.
func SeedCollaborators() []Collaborator {
	return []Collaborator{
		{
			ID: "1", FirstName: "Ana", LastName: "Silva", Matricula: "CO001",
			Sector: SectorCommercial, Role: "Vendedora Sénior", HiredDate: "2022-03-15",
			AvatarURL: "https://images.unsplash.com/photo-1494790108377-be9c29b29330?auto=format&fit=crop&q=80&w=150",
		},
		{
			ID: "2", FirstName: "Carlos", LastName: "Mendes", Matricula: "CO002",
			Sector: SectorCommercial, Role: "Gerente de Ventas", HiredDate: "2021-06-10",
			AvatarURL: "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?auto=format&fit=crop&q=80&w=150",
		},
		{
			ID: "3", FirstName: "Mariana", LastName: "Costa", Matricula: "CO003",
			Sector: SectorCommercial, Role: "Vendedora Jr", HiredDate: "2023-01-20",
			AvatarURL: "https://images.unsplash.com/photo-1438761681033-6461ffad8d80?auto=format&fit=crop&q=80&w=150",
		},
		{
			ID: "4", FirstName: "Julia", LastName: "Pereira", Matricula: "CO004",
			Sector: SectorAdmin, Role: "Contadora", HiredDate: "2023-05-10",
			AvatarURL: "https://images.unsplash.com/photo-1544005313-94ddf0286df2?auto=format&fit=crop&q=80&w=150",
		},
		{
			ID: "5", FirstName: "Roberto", LastName: "Santos", Matricula: "CO005",
			Sector: SectorGeneralServices, Role: "Auxiliar de Limpieza", HiredDate: "2022-11-05",
			AvatarURL: "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?auto=format&fit=crop&q=80&w=150",
		},
	}
}

func seedProducts() []Product {
	return []Product{
		{
			ID: "1", Name: "Silla de Oficina Ergonómica", Category: CategoryFurniture,
			Price: decimal.NewFromInt(850), Stock: 12, Status: StatusForStock(12),
			ImageURL: "https://images.unsplash.com/photo-1580480055273-228ff5388ef8?auto=format&fit=crop&q=80&w=200",
		},
		{
			ID: "2", Name: "Teclado Inalámbrico", Category: CategoryElectronics,
			Price: decimal.NewFromInt(185), Stock: 4, Status: StatusForStock(4),
			ImageURL: "https://images.unsplash.com/photo-1587829741301-dc798b91add1?auto=format&fit=crop&q=80&w=200",
		},
		{
			ID: "3", Name: "Mesa con Regulación de Altura", Category: CategoryFurniture,
			Price: decimal.NewFromInt(1450), Stock: 0, Status: StatusForStock(0),
			ImageURL: "https://images.unsplash.com/photo-1595515106967-1b072e27dd8d?auto=format&fit=crop&q=80&w=200",
		},
		{
			ID: "4", Name: "Auriculares con Cancelación de Ruido", Category: CategoryElectronics,
			Price: decimal.NewFromInt(599), Stock: 25, Status: StatusForStock(25),
			ImageURL: "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?auto=format&fit=crop&q=80&w=200",
		},
		{
			ID: "5", Name: "Dock Station USB-C", Category: CategoryOffice,
			Price: decimal.NewFromInt(320), Stock: 8, Status: StatusForStock(8),
			ImageURL: "https://images.unsplash.com/photo-1574614995393-4e45e7f09337?auto=format&fit=crop&q=80&w=200",
		},
	}
}

func seedTransactions() []Transaction {
	return []Transaction{
		{ID: "1", Date: "2023-10-01", Type: TypeIncome, Category: TxCategorySales, Amount: decimal.NewFromInt(4250), Description: "Venta: 5x Sillas", CollaboratorID: "1"},
		{ID: "2", Date: "2023-10-02", Type: TypeExpense, Category: TxCategorySupplies, Amount: decimal.NewFromInt(400), Description: "Materiales de Oficina"},
		{ID: "3", Date: "2023-10-03", Type: TypeIncome, Category: TxCategorySales, Amount: decimal.NewFromInt(5990), Description: "Venta: 10x Auriculares", CollaboratorID: "2"},
		{ID: "4", Date: "2023-10-05", Type: TypeExpense, Category: TxCategoryEquipment, Amount: decimal.NewFromInt(9500), Description: "Reposición de Stock: Electrónicos"},
		{ID: "5", Date: "2023-10-06", Type: TypeIncome, Category: TxCategorySales, Amount: decimal.NewFromInt(1850), Description: "Venta: 10x Teclados", CollaboratorID: "3"},
		{ID: "6", Date: "2023-10-10", Type: TypeExpense, Category: TxCategoryMarketing, Amount: decimal.NewFromInt(1200), Description: "Anuncios Google Ads"},
		{ID: "7", Date: "2023-10-15", Type: TypeExpense, Category: TxCategoryRent, Amount: decimal.NewFromInt(2500), Description: "Alquiler de la Oficina"},
	}
}
