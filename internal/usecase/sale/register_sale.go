package sale

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/BruksfildServices01/pet-control/internal/audit"
	"github.com/BruksfildServices01/pet-control/internal/domain"
	domainSale "github.com/BruksfildServices01/pet-control/internal/domain/sale"
	"github.com/BruksfildServices01/pet-control/internal/httperr"
	"github.com/BruksfildServices01/pet-control/internal/models"
	"github.com/BruksfildServices01/pet-control/internal/timezone"
	"github.com/BruksfildServices01/pet-control/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type RegisterSaleInput struct {
	// quando presente, dispensa a busca por telefone
	ClientID *uint

	ClientName  string
	ClientPhone string
	PetName     string

	ProductName string
	SaleDate    string

	Actor string
}

type RegisterSaleOutput struct {
	Sale          *models.Sale
	Client        *models.Client
	ClientCreated bool
}

// ======================================================
// USE CASE
// ======================================================

type RegisterSale struct {
	repo     domainSale.Repository
	audit    *audit.Dispatcher
	timezone string
}

func NewRegisterSale(
	repo domainSale.Repository,
	audit *audit.Dispatcher,
	tz string,
) *RegisterSale {
	return &RegisterSale{
		repo:     repo,
		audit:    audit,
		timezone: tz,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *RegisterSale) Execute(
	ctx context.Context,
	in RegisterSaleInput,
) (*RegisterSaleOutput, error) {

	productName := strings.TrimSpace(in.ProductName)
	if productName == "" {
		return nil, httperr.ErrBusiness("missing_product")
	}

	saleDate, err := resolveSaleDate(in.SaleDate, uc.timezone)
	if err != nil {
		return nil, err
	}

	var out RegisterSaleOutput

	err = uc.repo.Transaction(ctx, func(tx domainSale.Repository) error {

		// --------------------------------------------------
		// 1️⃣ Cliente (id, telefone ou novo)
		// --------------------------------------------------
		client, created, err := resolveClient(ctx, tx, in)
		if err != nil {
			return err
		}

		// --------------------------------------------------
		// 2️⃣ Produto pelo nome exato + 3️⃣ venda
		// --------------------------------------------------
		s, err := insertSale(ctx, tx, client.ID, productName, saleDate)
		if err != nil {
			return err
		}

		out = RegisterSaleOutput{
			Sale:          s,
			Client:        client,
			ClientCreated: created,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 4️⃣ Auditoria
	// --------------------------------------------------
	if out.ClientCreated {
		uc.audit.Dispatch(audit.Event{
			Subject:  in.Actor,
			Action:   "client_created",
			Entity:   "client",
			EntityID: &out.Client.ID,
		})
	}

	uc.audit.Dispatch(audit.Event{
		Subject:  in.Actor,
		Action:   "sale_registered",
		Entity:   "sale",
		EntityID: &out.Sale.ID,
		Metadata: map[string]any{
			"client_id": out.Client.ID,
			"product":   productName,
			"sale_date": timezone.FormatISO(saleDate),
		},
	})

	return &out, nil
}

// ======================================================
// STEPS
// ======================================================

func resolveClient(
	ctx context.Context,
	repo domainSale.Repository,
	in RegisterSaleInput,
) (*models.Client, bool, error) {

	if in.ClientID != nil && *in.ClientID != 0 {
		client, err := repo.GetClient(ctx, *in.ClientID)
		if errors.Is(err, domain.ErrNotFound) {
			return nil, false, httperr.ErrBusiness("client_not_found")
		}
		if err != nil {
			return nil, false, err
		}
		return client, false, nil
	}

	phone := validators.CanonicalPhone(in.ClientPhone)
	if phone == "" {
		return nil, false, httperr.ErrBusiness("missing_client_data")
	}

	client, err := repo.FindClientByPhone(ctx, phone)
	if err == nil {
		return client, false, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, false, err
	}

	client, err = createClient(ctx, repo, in.ClientName, phone, in.PetName)
	if err != nil {
		return nil, false, err
	}
	return client, true, nil
}

func createClient(
	ctx context.Context,
	repo domainSale.Repository,
	name string,
	phone string,
	pet string,
) (*models.Client, error) {

	name = strings.TrimSpace(name)
	if name == "" || phone == "" {
		return nil, httperr.ErrBusiness("missing_client_data")
	}
	if !validators.IsPhoneValid(phone) {
		return nil, httperr.ErrBusiness("invalid_phone")
	}

	client := &models.Client{
		FullName: name,
		Phone:    phone,
		PetName:  strings.TrimSpace(pet),
	}

	if err := repo.CreateClient(ctx, client); err != nil {
		if httperr.IsUniqueViolation(err) {
			return nil, httperr.ErrBusiness("phone_already_exists")
		}
		return nil, err
	}
	return client, nil
}

func insertSale(
	ctx context.Context,
	repo domainSale.Repository,
	clientID uint,
	productName string,
	saleDate time.Time,
) (*models.Sale, error) {

	product, err := repo.GetProductByName(ctx, productName)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, httperr.ErrBusiness("product_not_found")
	}
	if err != nil {
		return nil, err
	}

	s := &models.Sale{
		ClientID:  clientID,
		ProductID: product.ID,
		SaleDate:  saleDate,
	}
	if err := repo.CreateSale(ctx, s); err != nil {
		return nil, err
	}

	s.Product = *product
	return s, nil
}

func resolveSaleDate(raw string, tz string) (time.Time, error) {
	if strings.TrimSpace(raw) == "" {
		return timezone.Today(tz), nil
	}

	d, err := timezone.ParseDate(raw)
	if err != nil {
		return time.Time{}, httperr.ErrBusiness("invalid_date")
	}
	return d, nil
}
