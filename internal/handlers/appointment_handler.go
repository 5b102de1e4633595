package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/Newksitesfss/barbearia-criatech/internal/domain/appointment"
	"github.com/Newksitesfss/barbearia-criatech/internal/httperr"
	"github.com/Newksitesfss/barbearia-criatech/internal/httpresp"
	"github.com/Newksitesfss/barbearia-criatech/internal/middleware"
	ucAppointment "github.com/Newksitesfss/barbearia-criatech/internal/usecase/appointment"
)

type AppointmentHandler struct {
	createUC *ucAppointment.CreateAppointment
	updateUC *ucAppointment.UpdateAppointment
	deleteUC *ucAppointment.DeleteAppointment
	listUC   *ucAppointment.ListAppointments

	loc *time.Location
}

func NewAppointmentHandler(
	createUC *ucAppointment.CreateAppointment,
	updateUC *ucAppointment.UpdateAppointment,
	deleteUC *ucAppointment.DeleteAppointment,
	listUC *ucAppointment.ListAppointments,
	loc *time.Location,
) *AppointmentHandler {
	return &AppointmentHandler{
		createUC: createUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
		listUC:   listUC,
		loc:      loc,
	}
}

// --------- Requests ---------

type AppointmentRequest struct {
	BarberID  uint `json:"barber_id" binding:"required"`
	HaircutID uint `json:"haircut_id" binding:"required"`

	// RFC3339 ou "2006-01-02 15:04" no timezone do negócio
	AppointmentDate string `json:"appointment_date" binding:"required"`

	// Valor pago em centavos
	PricePaid *int   `json:"price_paid" binding:"required,gte=0"`
	Notes     string `json:"notes"`
}

// --------- Handlers ---------

func (h *AppointmentHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req AppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	when, err := parseDateTimeIn(h.loc, req.AppointmentDate)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data do atendimento inválida.")
		return
	}

	_, err = h.createUC.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		UserID:          userID,
		BarberID:        req.BarberID,
		HaircutID:       req.HaircutID,
		AppointmentDate: when,
		PricePaid:       *req.PricePaid,
		Notes:           req.Notes,
		RequestID:       requestID(c),
	})
	if err != nil {
		writeAppointmentError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true})
}

func (h *AppointmentHandler) Update(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req AppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	when, err := parseDateTimeIn(h.loc, req.AppointmentDate)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data do atendimento inválida.")
		return
	}

	err = h.updateUC.Execute(c.Request.Context(), ucAppointment.UpdateAppointmentInput{
		UserID:          userID,
		ID:              id,
		BarberID:        req.BarberID,
		HaircutID:       req.HaircutID,
		AppointmentDate: when,
		PricePaid:       *req.PricePaid,
		Notes:           req.Notes,
		RequestID:       requestID(c),
	})
	if err != nil {
		writeAppointmentError(c, err)
		return
	}

	httpresp.Success(c)
}

func (h *AppointmentHandler) Delete(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	id, ok := paramID(c)
	if !ok {
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), userID, id, requestID(c)); err != nil {
		httperr.Internal(c, "failed_to_delete_appointment", "Erro ao excluir atendimento.")
		return
	}

	httpresp.Success(c)
}

// List aplica os filtros combinados com AND; filtro omitido não restringe.
// O intervalo de datas é inclusivo nas duas pontas.
func (h *AppointmentHandler) List(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var filters domain.ListFilters

	if startStr := c.Query("start_date"); startStr != "" {
		start, err := parseDateIn(h.loc, startStr)
		if err != nil {
			httperr.BadRequest(c, "invalid_start_date", "Data inicial inválida.")
			return
		}
		filters.StartDate = &start
	}

	if endStr := c.Query("end_date"); endStr != "" {
		end, err := parseDateIn(h.loc, endStr)
		if err != nil {
			httperr.BadRequest(c, "invalid_end_date", "Data final inválida.")
			return
		}
		end = endOfDay(end)
		filters.EndDate = &end
	}

	if barberStr := c.Query("barber_id"); barberStr != "" {
		barberID, err := strconv.ParseUint(barberStr, 10, 64)
		if err != nil {
			httperr.BadRequest(c, "invalid_barber_id", "Barbeiro inválido.")
			return
		}
		filters.BarberID = uint(barberID)
	}

	if haircutStr := c.Query("haircut_id"); haircutStr != "" {
		haircutID, err := strconv.ParseUint(haircutStr, 10, 64)
		if err != nil {
			httperr.BadRequest(c, "invalid_haircut_id", "Corte inválido.")
			return
		}
		filters.HaircutID = uint(haircutID)
	}

	rows, err := h.listUC.Execute(c.Request.Context(), userID, filters)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Erro ao listar atendimentos.")
		return
	}

	c.JSON(http.StatusOK, rows)
}

func writeAppointmentError(c *gin.Context, err error) {
	var be httperr.BusinessError
	if errors.As(err, &be) {
		httperr.NotFound(c, be.Code, "Referência inexistente para este usuário.")
		return
	}
	httperr.Internal(c, "failed_to_save_appointment", "Erro ao gravar atendimento.")
}
