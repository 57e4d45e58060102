package sale

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	dbpkg "github.com/BruksfildServices01/pet-control/internal/db"
	"github.com/BruksfildServices01/pet-control/internal/domain/retention"
	"github.com/BruksfildServices01/pet-control/internal/httperr"
	infraRepo "github.com/BruksfildServices01/pet-control/internal/infra/repository"
	"github.com/BruksfildServices01/pet-control/internal/models"
	"github.com/BruksfildServices01/pet-control/internal/timezone"
)

const testTZ = "America/Sao_Paulo"

func setup(t *testing.T) (*gorm.DB, *RegisterSale, *AddClient) {
	t.Helper()

	db, err := dbpkg.OpenSQLite(filepath.Join(t.TempDir(), "sale.db"))
	require.NoError(t, err)

	repo := infraRepo.NewSaleGormRepository(db)
	return db, NewRegisterSale(repo, nil, testTZ), NewAddClient(repo, nil, testTZ)
}

func count(t *testing.T, db *gorm.DB, model any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(model).Count(&n).Error)
	return n
}

func uintPtr(v uint) *uint { return &v }

func TestRegisterSaleForExistingClient(t *testing.T) {
	ctx := context.Background()
	db, uc, _ := setup(t)

	client := models.Client{ID: 1, FullName: "Ana Silva", Phone: "11988887777"}
	product := models.Product{ID: 10, Name: "Ração", DurationDays: 30}
	require.NoError(t, db.Create(&client).Error)
	require.NoError(t, db.Create(&product).Error)

	out, err := uc.Execute(ctx, RegisterSaleInput{
		ClientID:    uintPtr(1),
		ProductName: "Ração",
	})
	require.NoError(t, err)
	assert.False(t, out.ClientCreated)

	var sales []models.Sale
	require.NoError(t, db.Find(&sales).Error)
	require.Len(t, sales, 1)
	assert.Equal(t, uint(1), sales[0].ClientID)
	assert.Equal(t, uint(10), sales[0].ProductID)
	assert.True(t, timezone.Today(testTZ).Equal(sales[0].SaleDate))

	snap, err := retention.LoadSnapshot(ctx, infraRepo.NewRetentionGormRepository(db))
	require.NoError(t, err)
	views := retention.BuildClientViews(snap.Clients, snap.Sales, snap.Agenda)
	require.Len(t, views, 1)
	require.NotNil(t, views[0].LastProduct)
	assert.Equal(t, "Ração", *views[0].LastProduct)
	assert.Len(t, views[0].History, 1)
}

func TestRegisterSaleResolvesClientByPhone(t *testing.T) {
	ctx := context.Background()
	db, uc, _ := setup(t)

	require.NoError(t, db.Create(&models.Client{FullName: "Ana Silva", Phone: "11988887777"}).Error)
	require.NoError(t, db.Create(&models.Product{Name: "Vermífugo", DurationDays: 90, LeadTimeDays: 10}).Error)

	out, err := uc.Execute(ctx, RegisterSaleInput{
		ClientName:  "Ana S.",
		ClientPhone: "(11) 98888-7777",
		ProductName: "Vermífugo",
		SaleDate:    "15/01/2025",
	})
	require.NoError(t, err)

	assert.False(t, out.ClientCreated)
	assert.Equal(t, "Ana Silva", out.Client.FullName)
	assert.Equal(t, int64(1), count(t, db, &models.Client{}))
	assert.Equal(t, "2025-01-15", timezone.FormatISO(out.Sale.SaleDate))
}

func TestRegisterSaleMatchesPhoneWithCountryCode(t *testing.T) {
	ctx := context.Background()
	db, uc, _ := setup(t)

	require.NoError(t, db.Create(&models.Client{FullName: "Ana Silva", Phone: "11988887777"}).Error)
	require.NoError(t, db.Create(&models.Product{Name: "Ração", DurationDays: 30, LeadTimeDays: 5}).Error)

	out, err := uc.Execute(ctx, RegisterSaleInput{
		ClientName:  "Ana Silva",
		ClientPhone: "+55 (11) 98888-7777",
		ProductName: "Ração",
	})
	require.NoError(t, err)

	assert.False(t, out.ClientCreated)
	assert.Equal(t, "11988887777", out.Client.Phone)
	assert.Equal(t, int64(1), count(t, db, &models.Client{}))
}

func TestRegisterSaleCreatesClient(t *testing.T) {
	ctx := context.Background()
	db, uc, _ := setup(t)

	require.NoError(t, db.Create(&models.Product{Name: "Ração", DurationDays: 30, LeadTimeDays: 5}).Error)

	out, err := uc.Execute(ctx, RegisterSaleInput{
		ClientName:  "Bruno Oliveira",
		ClientPhone: "11 97777-6666",
		PetName:     "Mel",
		ProductName: "Ração",
		SaleDate:    "2025-02-01",
	})
	require.NoError(t, err)

	assert.True(t, out.ClientCreated)
	assert.Equal(t, "11977776666", out.Client.Phone)
	assert.Equal(t, "Mel", out.Client.PetName)
	assert.Equal(t, int64(1), count(t, db, &models.Sale{}))
}

func TestRegisterSaleUnknownProductMutatesNothing(t *testing.T) {
	ctx := context.Background()
	db, uc, _ := setup(t)

	_, err := uc.Execute(ctx, RegisterSaleInput{
		ClientName:  "Carla Santos",
		ClientPhone: "11966665555",
		ProductName: "Produto Fantasma",
	})

	assert.True(t, httperr.IsBusiness(err, "product_not_found"))
	assert.Equal(t, int64(0), count(t, db, &models.Client{}))
	assert.Equal(t, int64(0), count(t, db, &models.Sale{}))
}

func TestRegisterSaleValidation(t *testing.T) {
	ctx := context.Background()
	db, uc, _ := setup(t)
	require.NoError(t, db.Create(&models.Product{Name: "Ração", DurationDays: 30}).Error)

	cases := []struct {
		name string
		in   RegisterSaleInput
		code string
	}{
		{"sem produto", RegisterSaleInput{ClientID: uintPtr(1)}, "missing_product"},
		{"cliente inexistente", RegisterSaleInput{ClientID: uintPtr(99), ProductName: "Ração"}, "client_not_found"},
		{"sem telefone", RegisterSaleInput{ClientName: "Ana", ProductName: "Ração"}, "missing_client_data"},
		{"novo sem nome", RegisterSaleInput{ClientPhone: "11988887777", ProductName: "Ração"}, "missing_client_data"},
		{"telefone curto", RegisterSaleInput{ClientName: "Ana", ClientPhone: "98888", ProductName: "Ração"}, "invalid_phone"},
		{"data inválida", RegisterSaleInput{ClientID: uintPtr(1), ProductName: "Ração", SaleDate: "32/01/2025"}, "invalid_date"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Execute(ctx, tc.in)
			assert.True(t, httperr.IsBusiness(err, tc.code), "got %v", err)
		})
	}

	assert.Equal(t, int64(0), count(t, db, &models.Sale{}))
}

func TestAddClient(t *testing.T) {
	ctx := context.Background()

	t.Run("sem produto", func(t *testing.T) {
		db, _, uc := setup(t)

		out, err := uc.Execute(ctx, AddClientInput{Name: "Ana Silva", Phone: "(11) 98888-7777", PetName: "Thor"})
		require.NoError(t, err)
		assert.Nil(t, out.Sale)
		assert.Equal(t, "11988887777", out.Client.Phone)
		assert.Equal(t, int64(0), count(t, db, &models.Sale{}))
	})

	t.Run("com primeira compra", func(t *testing.T) {
		db, _, uc := setup(t)
		require.NoError(t, db.Create(&models.Product{Name: "Ração", DurationDays: 30}).Error)

		out, err := uc.Execute(ctx, AddClientInput{Name: "Ana Silva", Phone: "11988887777", ProductName: "Ração", SaleDate: "2025-01-10"})
		require.NoError(t, err)
		require.NotNil(t, out.Sale)
		assert.Equal(t, out.Client.ID, out.Sale.ClientID)
		assert.Equal(t, "Ração", out.Sale.Product.Name)
	})

	t.Run("telefone duplicado", func(t *testing.T) {
		db, _, uc := setup(t)
		require.NoError(t, db.Create(&models.Client{FullName: "Ana", Phone: "11988887777"}).Error)

		_, err := uc.Execute(ctx, AddClientInput{Name: "Outra Ana", Phone: "11 98888 7777"})
		assert.True(t, httperr.IsBusiness(err, "phone_already_exists"))
		assert.Equal(t, int64(1), count(t, db, &models.Client{}))

		_, err = uc.Execute(ctx, AddClientInput{Name: "Outra Ana", Phone: "5511988887777"})
		assert.True(t, httperr.IsBusiness(err, "phone_already_exists"))
		assert.Equal(t, int64(1), count(t, db, &models.Client{}))
	})

	t.Run("produto inexistente desfaz o cadastro", func(t *testing.T) {
		db, _, uc := setup(t)

		_, err := uc.Execute(ctx, AddClientInput{Name: "Ana", Phone: "11988887777", ProductName: "Nada"})
		assert.True(t, httperr.IsBusiness(err, "product_not_found"))
		assert.Equal(t, int64(0), count(t, db, &models.Client{}))
	})
}
