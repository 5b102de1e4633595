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
)

type HaircutHandler struct {
	db    *gorm.DB
	audit *audit.Logger
}

func NewHaircutHandler(db *gorm.DB, auditLogger *audit.Logger) *HaircutHandler {
	return &HaircutHandler{db: db, audit: auditLogger}
}

// --------- Requests ---------

// Price em centavos; nunca aceitar valor decimal aqui.
type HaircutRequest struct {
	Name        string `json:"name" binding:"required"`
	Price       *int   `json:"price" binding:"required,gte=0"`
	Description string `json:"description"`
}

// --------- Handlers ---------

func (h *HaircutHandler) List(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	q := h.db.Where("user_id = ?", userID)

	switch strings.TrimSpace(c.Query("active")) {
	case "true":
		q = q.Where("active = ?", 1)
	case "false":
		q = q.Where("active = ?", 0)
	}

	haircuts := make([]models.Haircut, 0)
	if err := q.
		Order("created_at DESC, id DESC").
		Find(&haircuts).Error; err != nil {

		httperr.Internal(c, "failed_to_list_haircuts", "Erro ao listar cortes.")
		return
	}

	c.JSON(http.StatusOK, haircuts)
}

func (h *HaircutHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req HaircutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	haircut := models.Haircut{
		UserID:      userID,
		Name:        req.Name,
		Price:       *req.Price,
		Description: req.Description,
		Active:      1,
	}

	if err := h.db.Create(&haircut).Error; err != nil {
		httperr.Internal(c, "failed_to_create_haircut", "Erro ao criar corte.")
		return
	}

	h.audit.Log(userID, "haircut_created", "haircut", &haircut.ID, requestID(c), nil)

	httpresp.Success(c)
}

func (h *HaircutHandler) Update(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req HaircutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if err := h.db.
		Model(&models.Haircut{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(map[string]any{
			"name":        req.Name,
			"price":       *req.Price,
			"description": req.Description,
		}).Error; err != nil {

		httperr.Internal(c, "failed_to_update_haircut", "Erro ao atualizar corte.")
		return
	}

	h.audit.Log(userID, "haircut_updated", "haircut", &id, requestID(c), nil)

	httpresp.Success(c)
}

func (h *HaircutHandler) ToggleActive(c *gin.Context) {
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
		Model(&models.Haircut{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("active", *req.Active).Error; err != nil {

		httperr.Internal(c, "failed_to_update_haircut", "Erro ao atualizar corte.")
		return
	}

	h.audit.Log(userID, "haircut_toggled", "haircut", &id, requestID(c), gin.H{"active": *req.Active})

	httpresp.Success(c)
}

// Delete remove o corte e, em cascata, os atendimentos que o referenciam.
func (h *HaircutHandler) Delete(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	id, ok := paramID(c)
	if !ok {
		return
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("haircut_id = ? AND user_id = ?", id, userID).
			Delete(&models.Appointment{}).Error; err != nil {
			return err
		}

		return tx.
			Where("id = ? AND user_id = ?", id, userID).
			Delete(&models.Haircut{}).Error
	})
	if err != nil {
		httperr.Internal(c, "failed_to_delete_haircut", "Erro ao excluir corte.")
		return
	}

	h.audit.Log(userID, "haircut_deleted", "haircut", &id, requestID(c), nil)

	httpresp.Success(c)
}
