package seed

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/pet-control/internal/models"
)

func Clients() []models.Client {
	return []models.Client{
		{FullName: "Ana Silva", Phone: "11988887777", PetName: "Thor (Golden)"},
		{FullName: "Bruno Oliveira", Phone: "11977776666", PetName: "Mel (Poodle)"},
		{FullName: "Carla Santos", Phone: "11966665555", PetName: "Luna (Gato)"},
		{FullName: "Diego Lima", Phone: "11955554444", PetName: "Rex (Vira-lata)"},
		{FullName: "Elena Costa", Phone: "11944443333", PetName: "Bolinha (Hamster)"},
		{FullName: "Fabio Junior", Phone: "11933332222", PetName: "Max (Beagle)"},
		{FullName: "Gisele Bündchen", Phone: "11922221111", PetName: "Vida (Yorkshire)"},
		{FullName: "Helio Luz", Phone: "11911110000", PetName: "Faísca (Dálmata)"},
		{FullName: "Iris Mar", Phone: "11900009999", PetName: "Ariel (Peixe)"},
		{FullName: "João Dapper", Phone: "11899998888", PetName: "Zeca (Bulldog)"},
	}
}

func Products() []models.Product {
	return []models.Product{
		{Name: "Ração Seca Premium (Cães)", DurationDays: 30, LeadTimeDays: 5},
		{Name: "Ração Seca Premium (Gatos)", DurationDays: 30, LeadTimeDays: 5},
		{Name: "Antipulgas e Carrapatos (3 meses)", DurationDays: 90, LeadTimeDays: 15},
		{Name: "Antipulgas e Carrapatos (6 meses)", DurationDays: 180, LeadTimeDays: 20},
		{Name: "Vermífugo", DurationDays: 90, LeadTimeDays: 10},
		{Name: "Shampoo Antipulgas", DurationDays: 45, LeadTimeDays: 7},
		{Name: "Areia Higiênica para Gatos", DurationDays: 30, LeadTimeDays: 5},
		{Name: "Petisco Funcional (Dental)", DurationDays: 30, LeadTimeDays: 5},
		{Name: "Coleira Antipulgas", DurationDays: 180, LeadTimeDays: 20},
		{Name: "Brinquedo Interativo", DurationDays: 60, LeadTimeDays: 10},
	}
}

// InsertClients ignora telefones já cadastrados e devolve quantos
// entraram.
func InsertClients(ctx context.Context, db *gorm.DB) (int64, error) {
	rows := Clients()
	res := db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "phone"}}, DoNothing: true}).
		Create(&rows)
	return res.RowsAffected, res.Error
}

// InsertProducts ignora nomes já cadastrados.
func InsertProducts(ctx context.Context, db *gorm.DB) (int64, error) {
	rows := Products()
	res := db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "name"}}, DoNothing: true}).
		Create(&rows)
	return res.RowsAffected, res.Error
}
