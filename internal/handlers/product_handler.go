package handlers

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/pet-control/internal/audit"
	"github.com/BruksfildServices01/pet-control/internal/httperr"
	"github.com/BruksfildServices01/pet-control/internal/httpresp"
	"github.com/BruksfildServices01/pet-control/internal/middleware"
	"github.com/BruksfildServices01/pet-control/internal/models"
)

type ProductHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewProductHandler(db *gorm.DB, audit *audit.Dispatcher) *ProductHandler {
	return &ProductHandler{db: db, audit: audit}
}

// --------- Requests ---------

type CreateProductRequest struct {
	Name         string `json:"name" binding:"required"`
	DurationDays int    `json:"duration_days" binding:"required,min=1"`
	LeadTimeDays int    `json:"lead_time_days" binding:"min=0"`
}

type UpdateProductRequest struct {
	Name         *string `json:"name,omitempty"`
	DurationDays *int    `json:"duration_days,omitempty"`
	LeadTimeDays *int    `json:"lead_time_days,omitempty"`
}

// --------- Handlers ---------

func (h *ProductHandler) List(c *gin.Context) {
	query := strings.ToLower(strings.TrimSpace(c.Query("query")))

	q := h.db.WithContext(c.Request.Context())
	if query != "" {
		q = q.Where("LOWER(name) LIKE ?", "%"+query+"%")
	}

	var products []models.Product
	if err := q.
		Order("name ASC").
		Find(&products).Error; err != nil {

		httperr.Internal(c, "failed_to_list_products", "Erro ao listar produtos.")
		return
	}

	httpresp.List(c, products)
}

func (h *ProductHandler) Create(c *gin.Context) {
	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	product := models.Product{
		Name:         strings.TrimSpace(req.Name),
		DurationDays: req.DurationDays,
		LeadTimeDays: req.LeadTimeDays,
	}

	if !h.validProduct(c, &product, 0) {
		return
	}

	if err := h.db.WithContext(c.Request.Context()).Create(&product).Error; err != nil {
		if httperr.IsUniqueViolation(err) {
			httperr.Conflict(c, "product_already_exists", "Já existe um produto com este nome.")
			return
		}
		httperr.Internal(c, "failed_to_create_product", "Erro ao criar produto.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Subject:  middleware.Actor(c),
		Action:   "product_created",
		Entity:   "product",
		EntityID: &product.ID,
	})

	httpresp.Created(c, product)
}

func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	product, ok := h.find(c, id)
	if !ok {
		return
	}

	var req UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.Name != nil {
		product.Name = strings.TrimSpace(*req.Name)
	}
	if req.DurationDays != nil {
		product.DurationDays = *req.DurationDays
	}
	if req.LeadTimeDays != nil {
		product.LeadTimeDays = *req.LeadTimeDays
	}

	if !h.validProduct(c, product, product.ID) {
		return
	}

	if err := h.db.WithContext(c.Request.Context()).Save(product).Error; err != nil {
		if httperr.IsUniqueViolation(err) {
			httperr.Conflict(c, "product_already_exists", "Já existe um produto com este nome.")
			return
		}
		httperr.Internal(c, "failed_to_update_product", "Erro ao atualizar produto.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Subject:  middleware.Actor(c),
		Action:   "product_updated",
		Entity:   "product",
		EntityID: &product.ID,
	})

	httpresp.OK(c, product)
}

// Delete recusa produtos que já aparecem em vendas.
func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	product, ok := h.find(c, id)
	if !ok {
		return
	}

	db := h.db.WithContext(c.Request.Context())

	var sales int64
	if err := db.Model(&models.Sale{}).
		Where("product_id = ?", product.ID).
		Count(&sales).Error; err != nil {

		httperr.Internal(c, "failed_to_delete_product", "Erro ao remover produto.")
		return
	}
	if sales > 0 {
		httperr.Conflict(c, "product_in_use", "Produto já usado em vendas não pode ser removido.")
		return
	}

	if err := db.Delete(product).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_product", "Erro ao remover produto.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Subject:  middleware.Actor(c),
		Action:   "product_deleted",
		Entity:   "product",
		EntityID: &product.ID,
		Metadata: map[string]any{"name": product.Name},
	})

	httpresp.NoContent(c)
}

// --------- Helpers ---------

func (h *ProductHandler) find(c *gin.Context, id uint) (*models.Product, bool) {
	var product models.Product
	err := h.db.WithContext(c.Request.Context()).First(&product, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		httperr.NotFound(c, "product_not_found", "Produto não encontrado.")
		return nil, false
	}
	if err != nil {
		httperr.Internal(c, "failed_to_get_product", "Erro ao buscar produto.")
		return nil, false
	}
	return &product, true
}

func (h *ProductHandler) validProduct(c *gin.Context, p *models.Product, selfID uint) bool {
	if p.Name == "" {
		httperr.BadRequest(c, "invalid_product_name", "Informe o nome do produto.")
		return false
	}
	if p.DurationDays < 1 || p.LeadTimeDays < 0 {
		httperr.BadRequest(c, "invalid_product_cycle", "Duração e antecedência devem ser positivas.")
		return false
	}

	var count int64
	if err := h.db.WithContext(c.Request.Context()).
		Model(&models.Product{}).
		Where("name = ? AND id <> ?", p.Name, selfID).
		Count(&count).Error; err != nil {

		httperr.Internal(c, "failed_to_check_product", "Erro ao validar produto.")
		return false
	}
	if count > 0 {
		httperr.Conflict(c, "product_already_exists", "Já existe um produto com este nome.")
		return false
	}
	return true
}
