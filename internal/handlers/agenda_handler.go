package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/pet-control/internal/dto"
	"github.com/BruksfildServices01/pet-control/internal/httperr"
	"github.com/BruksfildServices01/pet-control/internal/httpresp"
	"github.com/BruksfildServices01/pet-control/internal/middleware"
	ucReminder "github.com/BruksfildServices01/pet-control/internal/usecase/reminder"
)

// ======================================================
// HANDLER
// ======================================================

type AgendaHandler struct {
	schedule   *ucReminder.ScheduleReminder
	send       *ucReminder.SendReminder
	confirm    *ucReminder.ConfirmReminder
	fail       *ucReminder.FailReminder
	remove     *ucReminder.DeleteReminder
	list       *ucReminder.ListReminders
	status     *ucReminder.AutomationStatus
	automation *ucReminder.RunAutomation
}

func NewAgendaHandler(
	schedule *ucReminder.ScheduleReminder,
	send *ucReminder.SendReminder,
	confirm *ucReminder.ConfirmReminder,
	fail *ucReminder.FailReminder,
	remove *ucReminder.DeleteReminder,
	list *ucReminder.ListReminders,
	status *ucReminder.AutomationStatus,
	automation *ucReminder.RunAutomation,
) *AgendaHandler {
	return &AgendaHandler{
		schedule:   schedule,
		send:       send,
		confirm:    confirm,
		fail:       fail,
		remove:     remove,
		list:       list,
		status:     status,
		automation: automation,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type ScheduleReminderRequest struct {
	ClientID uint   `json:"client_id"`
	Message  string `json:"message"`
	Date     string `json:"scheduled_date"`
	Time     string `json:"scheduled_time"`
}

type FailReminderRequest struct {
	Error string `json:"error"`
}

// ======================================================
// LIST / CREATE
// ======================================================

func (h *AgendaHandler) List(c *gin.Context) {
	entries, err := h.list.Execute(c.Request.Context())
	if err != nil {
		respondError(c, err, "failed_to_list_agenda", "Erro ao carregar a agenda.")
		return
	}

	httpresp.List(c, dto.AgendaList(entries))
}

func (h *AgendaHandler) Create(c *gin.Context) {
	var req ScheduleReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	entry, err := h.schedule.Execute(c.Request.Context(), ucReminder.ScheduleInput{
		ClientID: req.ClientID,
		Message:  req.Message,
		Date:     req.Date,
		Time:     req.Time,
		Actor:    middleware.Actor(c),
	})
	if err != nil {
		respondError(c, err, "failed_to_schedule", "Erro ao agendar lembrete.")
		return
	}

	httpresp.Created(c, dto.AgendaItem(entry))
}

// ======================================================
// STATUS TRANSITIONS
// ======================================================

func (h *AgendaHandler) Send(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	out, err := h.send.Execute(c.Request.Context(), id, middleware.Actor(c))
	if err != nil {
		respondError(c, err, "failed_to_send", "Erro ao enviar lembrete.")
		return
	}

	httpresp.OK(c, gin.H{
		"entry":         dto.AgendaItem(out.Entry),
		"whatsapp_link": out.Link,
	})
}

func (h *AgendaHandler) Confirm(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	entry, err := h.confirm.Execute(c.Request.Context(), id, middleware.Actor(c))
	if err != nil {
		respondError(c, err, "failed_to_confirm", "Erro ao confirmar envio.")
		return
	}

	httpresp.OK(c, dto.AgendaItem(entry))
}

func (h *AgendaHandler) Fail(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	// corpo opcional
	var req FailReminderRequest
	_ = c.ShouldBindJSON(&req)

	entry, err := h.fail.Execute(c.Request.Context(), id, req.Error, middleware.Actor(c))
	if err != nil {
		respondError(c, err, "failed_to_mark_failed", "Erro ao registrar falha.")
		return
	}

	httpresp.OK(c, dto.AgendaItem(entry))
}

func (h *AgendaHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.remove.Execute(c.Request.Context(), id, middleware.Actor(c)); err != nil {
		respondError(c, err, "failed_to_delete", "Erro ao remover lembrete.")
		return
	}

	httpresp.NoContent(c)
}

// ======================================================
// AUTOMATION
// ======================================================

func (h *AgendaHandler) Status(c *gin.Context) {
	summary, err := h.status.Execute(c.Request.Context())
	if err != nil {
		respondError(c, err, "failed_to_load_status", "Erro ao carregar status da automação.")
		return
	}

	httpresp.OK(c, summary)
}

func (h *AgendaHandler) RunAutomation(c *gin.Context) {
	report, err := h.automation.Execute(c.Request.Context(), middleware.Actor(c))
	if err != nil {
		respondError(c, err, "failed_to_run_automation", "Erro ao executar a automação.")
		return
	}

	httpresp.OK(c, report)
}
