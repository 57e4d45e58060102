package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/pet-control/internal/dto"
	"github.com/BruksfildServices01/pet-control/internal/httperr"
	"github.com/BruksfildServices01/pet-control/internal/httpresp"
	"github.com/BruksfildServices01/pet-control/internal/middleware"
	"github.com/BruksfildServices01/pet-control/internal/models"
	ucClient "github.com/BruksfildServices01/pet-control/internal/usecase/client"
	ucSale "github.com/BruksfildServices01/pet-control/internal/usecase/sale"
)

type ClientHandler struct {
	db          *gorm.DB
	withHistory *ucClient.ListClientsWithHistory
	addClient   *ucSale.AddClient
}

func NewClientHandler(
	db *gorm.DB,
	withHistory *ucClient.ListClientsWithHistory,
	addClient *ucSale.AddClient,
) *ClientHandler {
	return &ClientHandler{
		db:          db,
		withHistory: withHistory,
		addClient:   addClient,
	}
}

// --------- Requests ---------

type CreateClientRequest struct {
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	PetName     string `json:"pet_name"`
	ProductName string `json:"product_name"`
	SaleDate    string `json:"sale_date"`
}

// ======================================================
// LIST (seleção em formulários)
// ======================================================
func (h *ClientHandler) List(c *gin.Context) {
	query := strings.ToLower(strings.TrimSpace(c.Query("query")))

	q := h.db.WithContext(c.Request.Context())

	if query != "" {
		like := "%" + query + "%"
		q = q.Where(
			"LOWER(full_name) LIKE ? OR phone LIKE ? OR LOWER(pet_name) LIKE ?",
			like, like, like,
		)
	}

	var clients []models.Client
	if err := q.
		Order("full_name ASC").
		Order("id ASC").
		Find(&clients).Error; err != nil {

		httperr.Internal(c, "failed_to_list_clients", "Erro ao listar clientes.")
		return
	}

	httpresp.List(c, clients)
}

// ======================================================
// HISTORY (tela de clientes)
// ======================================================
func (h *ClientHandler) History(c *gin.Context) {
	views := h.withHistory.Execute(c.Request.Context())
	httpresp.List(c, dto.ClientViews(views))
}

// ======================================================
// CREATE (cliente + primeira venda opcional)
// ======================================================
func (h *ClientHandler) Create(c *gin.Context) {
	var req CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	out, err := h.addClient.Execute(c.Request.Context(), ucSale.AddClientInput{
		Name:        req.Name,
		Phone:       req.Phone,
		PetName:     req.PetName,
		ProductName: req.ProductName,
		SaleDate:    req.SaleDate,
		Actor:       middleware.Actor(c),
	})
	if err != nil {
		respondError(c, err, "failed_to_create_client", "Erro ao cadastrar cliente.")
		return
	}

	httpresp.Created(c, gin.H{
		"client": out.Client,
		"sale":   out.Sale,
	})
}
