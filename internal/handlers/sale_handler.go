package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/pet-control/internal/dto"
	"github.com/BruksfildServices01/pet-control/internal/httperr"
	"github.com/BruksfildServices01/pet-control/internal/httpresp"
	"github.com/BruksfildServices01/pet-control/internal/middleware"
	"github.com/BruksfildServices01/pet-control/internal/models"
	ucSale "github.com/BruksfildServices01/pet-control/internal/usecase/sale"
)

type SaleHandler struct {
	db       *gorm.DB
	register *ucSale.RegisterSale
}

func NewSaleHandler(db *gorm.DB, register *ucSale.RegisterSale) *SaleHandler {
	return &SaleHandler{db: db, register: register}
}

// --------- Requests ---------

type RegisterSaleRequest struct {
	ClientID    *uint  `json:"client_id"`
	ClientName  string `json:"client_name"`
	ClientPhone string `json:"client_phone"`
	PetName     string `json:"pet_name"`
	ProductName string `json:"product_name"`
	SaleDate    string `json:"sale_date"`
}

// --------- Handlers ---------

func (h *SaleHandler) Create(c *gin.Context) {
	var req RegisterSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	out, err := h.register.Execute(c.Request.Context(), ucSale.RegisterSaleInput{
		ClientID:    req.ClientID,
		ClientName:  req.ClientName,
		ClientPhone: req.ClientPhone,
		PetName:     req.PetName,
		ProductName: req.ProductName,
		SaleDate:    req.SaleDate,
		Actor:       middleware.Actor(c),
	})
	if err != nil {
		respondError(c, err, "failed_to_register_sale", "Erro ao registrar venda.")
		return
	}

	httpresp.Created(c, gin.H{
		"sale":           out.Sale,
		"client":         out.Client,
		"client_created": out.ClientCreated,
	})
}

func (h *SaleHandler) List(c *gin.Context) {
	q := h.db.WithContext(c.Request.Context()).
		Preload("Client").
		Preload("Product")

	if raw := c.Query("client_id"); raw != "" {
		id, err := parseUint(raw)
		if err != nil {
			httperr.BadRequest(c, "invalid_client_id", "Cliente inválido.")
			return
		}
		q = q.Where("client_id = ?", id)
	}

	var sales []models.Sale
	if err := q.
		Order("sale_date DESC").
		Order("id DESC").
		Find(&sales).Error; err != nil {

		httperr.Internal(c, "failed_to_list_sales", "Erro ao listar vendas.")
		return
	}

	httpresp.List(c, dto.SaleList(sales))
}
