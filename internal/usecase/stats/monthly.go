package stats

import (
	"context"
	"sort"
	"time"

	domain "github.com/Newksitesfss/barbearia-criatech/internal/domain/appointment"
	"github.com/Newksitesfss/barbearia-criatech/internal/dto"
)

type MonthlyStats struct {
	repo domain.Repository
	loc  *time.Location
}

func NewMonthlyStats(repo domain.Repository, loc *time.Location) *MonthlyStats {
	return &MonthlyStats{repo: repo, loc: loc}
}

// Execute computa os totais do mês-calendário no timezone do negócio, a
// evolução por dia e o ranking de barbeiros.
func (uc *MonthlyStats) Execute(
	ctx context.Context,
	userID uint,
	year int,
	month int,
) (*dto.MonthlyStatsDTO, error) {

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, uc.loc)
	end := start.AddDate(0, 1, 0)

	total, revenue, err := uc.repo.Totals(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}

	evolution, err := uc.dailyEvolution(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}

	ranking, err := uc.repo.BarberRanking(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}

	return &dto.MonthlyStatsDTO{
		TotalAppointments: total,
		TotalRevenue:      revenue,
		DailyEvolution:    evolution,
		BarberRanking:     ranking,
	}, nil
}

// dailyEvolution agrupa os atendimentos do período por dia-calendário no
// timezone do negócio. Dias sem atendimento não aparecem.
func (uc *MonthlyStats) dailyEvolution(
	ctx context.Context,
	userID uint,
	start time.Time,
	end time.Time,
) ([]dto.DailyEvolutionDTO, error) {

	aps, err := uc.repo.ListForPeriod(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}

	byDay := make(map[string]*dto.DailyEvolutionDTO)
	for _, ap := range aps {
		day := ap.AppointmentDate.In(uc.loc).Format("2006-01-02")

		row, ok := byDay[day]
		if !ok {
			row = &dto.DailyEvolutionDTO{Date: day}
			byDay[day] = row
		}

		row.Count++
		row.Revenue += ap.PricePaid
	}

	out := make([]dto.DailyEvolutionDTO, 0, len(byDay))
	for _, row := range byDay {
		out = append(out, *row)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Date < out[j].Date
	})

	return out, nil
}
