package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Newksitesfss/barbearia-criatech/internal/audit"
	"github.com/Newksitesfss/barbearia-criatech/internal/httperr"
	"github.com/Newksitesfss/barbearia-criatech/internal/httpresp"
	"github.com/Newksitesfss/barbearia-criatech/internal/middleware"
	"github.com/Newksitesfss/barbearia-criatech/internal/models"
	"github.com/Newksitesfss/barbearia-criatech/internal/validators"
)

type BarberHandler struct {
	db    *gorm.DB
	audit *audit.Logger
}

func NewBarberHandler(db *gorm.DB, auditLogger *audit.Logger) *BarberHandler {
	return &BarberHandler{db: db, audit: auditLogger}
}

// --------- Requests ---------

type BarberRequest struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

type ToggleActiveRequest struct {
	Active *int `json:"active" binding:"required,min=0,max=1"`
}

// --------- Handlers ---------

func (h *BarberHandler) List(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	q := h.db.Where("user_id = ?", userID)

	// "true" → só ativos; "false" → só inativos; vazio → todos
	switch strings.TrimSpace(c.Query("active")) {
	case "true":
		q = q.Where("active = ?", 1)
	case "false":
		q = q.Where("active = ?", 0)
	}

	barbers := make([]models.Barber, 0)
	if err := q.
		Order("created_at DESC, id DESC").
		Find(&barbers).Error; err != nil {

		httperr.Internal(c, "failed_to_list_barbers", "Erro ao listar barbeiros.")
		return
	}

	c.JSON(http.StatusOK, barbers)
}

func (h *BarberHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req BarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if !validators.IsEmailValid(req.Email) {
		httperr.BadRequest(c, "invalid_email", "E-mail inválido.")
		return
	}

	barber := models.Barber{
		UserID: userID,
		Name:   req.Name,
		Phone:  req.Phone,
		Email:  req.Email,
		Active: 1,
	}

	if err := h.db.Create(&barber).Error; err != nil {
		httperr.Internal(c, "failed_to_create_barber", "Erro ao criar barbeiro.")
		return
	}

	h.audit.Log(userID, "barber_created", "barber", &barber.ID, requestID(c), nil)

	httpresp.Success(c)
}

// Update só escreve linhas do próprio usuário; id de outro usuário (ou
// inexistente) não altera nada e ainda assim responde sucesso.
func (h *BarberHandler) Update(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req BarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if !validators.IsEmailValid(req.Email) {
		httperr.BadRequest(c, "invalid_email", "E-mail inválido.")
		return
	}

	if err := h.db.
		Model(&models.Barber{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(map[string]any{
			"name":  req.Name,
			"phone": req.Phone,
			"email": req.Email,
		}).Error; err != nil {

		httperr.Internal(c, "failed_to_update_barber", "Erro ao atualizar barbeiro.")
		return
	}

	h.audit.Log(userID, "barber_updated", "barber", &id, requestID(c), nil)

	httpresp.Success(c)
}

func (h *BarberHandler) ToggleActive(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req ToggleActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if err := h.db.
		Model(&models.Barber{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("active", *req.Active).Error; err != nil {

		httperr.Internal(c, "failed_to_update_barber", "Erro ao atualizar barbeiro.")
		return
	}

	h.audit.Log(userID, "barber_toggled", "barber", &id, requestID(c), gin.H{"active": *req.Active})

	httpresp.Success(c)
}

// Delete remove o barbeiro e, em cascata, os atendimentos dele.
func (h *BarberHandler) Delete(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	id, ok := paramID(c)
	if !ok {
		return
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("barber_id = ? AND user_id = ?", id, userID).
			Delete(&models.Appointment{}).Error; err != nil {
			return err
		}

		return tx.
			Where("id = ? AND user_id = ?", id, userID).
			Delete(&models.Barber{}).Error
	})
	if err != nil {
		httperr.Internal(c, "failed_to_delete_barber", "Erro ao excluir barbeiro.")
		return
	}

	h.audit.Log(userID, "barber_deleted", "barber", &id, requestID(c), nil)

	httpresp.Success(c)
}
