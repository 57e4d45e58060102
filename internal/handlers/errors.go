package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/pet-control/internal/httperr"
)

type businessMessage struct {
	status  int
	message string
}

var businessMessages = map[string]businessMessage{
	// clientes e vendas
	"missing_client_data":  {http.StatusBadRequest, "Informe nome e telefone do cliente."},
	"invalid_phone":        {http.StatusBadRequest, "Telefone inválido."},
	"phone_already_exists": {http.StatusConflict, "Já existe um cliente com este telefone."},
	"client_not_found":     {http.StatusNotFound, "Cliente não encontrado."},
	"missing_product":      {http.StatusBadRequest, "Informe o produto."},
	"product_not_found":    {http.StatusNotFound, "Produto não encontrado."},
	"invalid_date":         {http.StatusBadRequest, "Data inválida."},

	// agenda
	"missing_fields":         {http.StatusBadRequest, "Preencha cliente, mensagem, data e hora."},
	"invalid_time":           {http.StatusBadRequest, "Hora inválida. Use HH:MM."},
	"agenda_not_found":       {http.StatusNotFound, "Lembrete não encontrado."},
	"invalid_state":          {http.StatusConflict, "O status atual do lembrete não permite esta ação."},
	"client_not_linked":      {http.StatusUnprocessableEntity, "Lembrete sem cliente vinculado."},
	"missing_phone":          {http.StatusUnprocessableEntity, "Cliente sem telefone cadastrado."},
	"automation_running":     {http.StatusConflict, "A automação já está em execução."},
	"webhook_not_configured": {http.StatusUnprocessableEntity, "Configure a URL do webhook nas configurações."},

	// configurações
	"invalid_shop_name":       {http.StatusBadRequest, "Informe o nome da loja."},
	"invalid_webhook_url":     {http.StatusBadRequest, "URL do webhook inválida."},
	"invalid_automation_hour": {http.StatusBadRequest, "Horário da automação inválido. Use HH:MM."},
	"logo_upload_failed":      {http.StatusBadGateway, "Não foi possível enviar o logo."},
}

// respondError traduz erros de negócio; o resto vira 500 com o código
// informado.
func respondError(c *gin.Context, err error, code, message string) {
	if bc, ok := httperr.AsBusiness(err); ok {
		if m, known := businessMessages[bc]; known {
			httperr.Write(c, m.status, bc, m.message)
			return
		}
		httperr.BadRequest(c, bc, "Requisição inválida.")
		return
	}

	log.Printf("%s: %v", code, err)
	httperr.Internal(c, code, message)
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := parseUint(c.Param("id"))
	if err != nil || id == 0 {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return 0, false
	}
	return id, true
}
