package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Newksitesfss/barbearia-criatech/internal/httperr"
	"github.com/Newksitesfss/barbearia-criatech/internal/middleware"
	ucStats "github.com/Newksitesfss/barbearia-criatech/internal/usecase/stats"
)

type StatsHandler struct {
	dailyUC   *ucStats.DailyStats
	monthlyUC *ucStats.MonthlyStats

	loc *time.Location
}

func NewStatsHandler(
	dailyUC *ucStats.DailyStats,
	monthlyUC *ucStats.MonthlyStats,
	loc *time.Location,
) *StatsHandler {
	return &StatsHandler{
		dailyUC:   dailyUC,
		monthlyUC: monthlyUC,
		loc:       loc,
	}
}

// Daily responde os totais de ?date=YYYY-MM-DD (default: hoje).
func (h *StatsHandler) Daily(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	date := time.Now().In(h.loc)
	if dateStr := c.Query("date"); dateStr != "" {
		parsed, err := parseDateIn(h.loc, dateStr)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "Data inválida.")
			return
		}
		date = parsed
	}

	out, err := h.dailyUC.Execute(c.Request.Context(), userID, date)
	if err != nil {
		httperr.Internal(c, "failed_to_compute_stats", "Erro ao calcular estatísticas.")
		return
	}

	c.JSON(http.StatusOK, out)
}

// Monthly responde os totais de ?year=YYYY&month=1..12.
func (h *StatsHandler) Monthly(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	year, err := strconv.Atoi(c.Query("year"))
	if err != nil || year < 1 {
		httperr.BadRequest(c, "invalid_year", "Ano inválido.")
		return
	}

	month, err := strconv.Atoi(c.Query("month"))
	if err != nil || month < 1 || month > 12 {
		httperr.BadRequest(c, "invalid_month", "Mês inválido.")
		return
	}

	out, err := h.monthlyUC.Execute(c.Request.Context(), userID, year, month)
	if err != nil {
		httperr.Internal(c, "failed_to_compute_stats", "Erro ao calcular estatísticas.")
		return
	}

	c.JSON(http.StatusOK, out)
}
