package sale

import (
	"context"
	"errors"
	"strings"

	"github.com/BruksfildServices01/pet-control/internal/audit"
	"github.com/BruksfildServices01/pet-control/internal/domain"
	domainSale "github.com/BruksfildServices01/pet-control/internal/domain/sale"
	"github.com/BruksfildServices01/pet-control/internal/httperr"
	"github.com/BruksfildServices01/pet-control/internal/models"
	"github.com/BruksfildServices01/pet-control/internal/validators"
)

type AddClientInput struct {
	Name    string
	Phone   string
	PetName string

	// opcional: primeira compra
	ProductName string
	SaleDate    string

	Actor string
}

type AddClientOutput struct {
	Client *models.Client
	Sale   *models.Sale
}

// AddClient cadastra o cliente e, se vier produto, já registra a
// primeira venda na mesma transação.
type AddClient struct {
	repo     domainSale.Repository
	audit    *audit.Dispatcher
	timezone string
}

func NewAddClient(
	repo domainSale.Repository,
	audit *audit.Dispatcher,
	tz string,
) *AddClient {
	return &AddClient{
		repo:     repo,
		audit:    audit,
		timezone: tz,
	}
}

func (uc *AddClient) Execute(
	ctx context.Context,
	in AddClientInput,
) (*AddClientOutput, error) {

	phone := validators.CanonicalPhone(in.Phone)
	productName := strings.TrimSpace(in.ProductName)

	saleDate, err := resolveSaleDate(in.SaleDate, uc.timezone)
	if err != nil {
		return nil, err
	}

	var out AddClientOutput

	err = uc.repo.Transaction(ctx, func(tx domainSale.Repository) error {
		if phone != "" {
			_, err := tx.FindClientByPhone(ctx, phone)
			if err == nil {
				return httperr.ErrBusiness("phone_already_exists")
			}
			if !errors.Is(err, domain.ErrNotFound) {
				return err
			}
		}

		client, err := createClient(ctx, tx, in.Name, phone, in.PetName)
		if err != nil {
			return err
		}
		out.Client = client

		if productName == "" {
			return nil
		}

		s, err := insertSale(ctx, tx, client.ID, productName, saleDate)
		if err != nil {
			return err
		}
		out.Sale = s
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Subject:  in.Actor,
		Action:   "client_created",
		Entity:   "client",
		EntityID: &out.Client.ID,
	})

	if out.Sale != nil {
		uc.audit.Dispatch(audit.Event{
			Subject:  in.Actor,
			Action:   "sale_registered",
			Entity:   "sale",
			EntityID: &out.Sale.ID,
			Metadata: map[string]any{
				"client_id": out.Client.ID,
				"product":   productName,
			},
		})
	}

	return &out, nil
}
