package stats

import (
	"context"
	"time"

	domain "github.com/Newksitesfss/barbearia-criatech/internal/domain/appointment"
	"github.com/Newksitesfss/barbearia-criatech/internal/dto"
)

type DailyStats struct {
	repo domain.Repository
	loc  *time.Location
}

func NewDailyStats(repo domain.Repository, loc *time.Location) *DailyStats {
	return &DailyStats{repo: repo, loc: loc}
}

// Execute computa os totais do dia [00:00, 24:00) no timezone do negócio,
// mais o ranking de cortes por quantidade.
func (uc *DailyStats) Execute(
	ctx context.Context,
	userID uint,
	date time.Time,
) (*dto.DailyStatsDTO, error) {

	day := date.In(uc.loc)
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, uc.loc)
	end := start.Add(24 * time.Hour)

	total, revenue, err := uc.repo.Totals(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}

	topHaircuts, err := uc.repo.TopHaircuts(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}

	return &dto.DailyStatsDTO{
		TotalAppointments: total,
		TotalRevenue:      revenue,
		TopHaircuts:       topHaircuts,
	}, nil
}
