package appointment

import (
	"context"
	"time"

	"github.com/Newksitesfss/barbearia-criatech/internal/dto"
	"github.com/Newksitesfss/barbearia-criatech/internal/models"
)

// ListFilters são combinados com AND; campo zero = filtro não aplicado.
// StartDate/EndDate formam um intervalo inclusivo sobre appointment_date.
type ListFilters struct {
	StartDate *time.Time
	EndDate   *time.Time
	BarberID  uint
	HaircutID uint
}

type Repository interface {
	GetBarber(ctx context.Context, userID, barberID uint) (*models.Barber, error)
	GetHaircut(ctx context.Context, userID, haircutID uint) (*models.Haircut, error)

	Create(ctx context.Context, ap *models.Appointment) error
	Update(ctx context.Context, userID, id uint, ap *models.Appointment) error
	Delete(ctx context.Context, userID, id uint) error
	List(ctx context.Context, userID uint, filters ListFilters) ([]dto.AppointmentListDTO, error)

	// Agregados; leitura pura, sem efeitos colaterais.
	// Janelas são [start, end) — o chamador monta o intervalo.
	Totals(ctx context.Context, userID uint, start, end time.Time) (totalAppointments int, totalRevenue int, err error)
	TopHaircuts(ctx context.Context, userID uint, start, end time.Time) ([]dto.HaircutCountDTO, error)
	BarberRanking(ctx context.Context, userID uint, start, end time.Time) ([]dto.BarberRankingDTO, error)
	ListForPeriod(ctx context.Context, userID uint, start, end time.Time) ([]models.Appointment, error)
}
