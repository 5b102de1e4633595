package appointment

import (
	"context"
	"time"

	"github.com/Newksitesfss/barbearia-criatech/internal/audit"
	domain "github.com/Newksitesfss/barbearia-criatech/internal/domain/appointment"
	"github.com/Newksitesfss/barbearia-criatech/internal/httperr"
	"github.com/Newksitesfss/barbearia-criatech/internal/models"
)

type CreateAppointmentInput struct {
	UserID    uint
	BarberID  uint
	HaircutID uint

	AppointmentDate time.Time
	PricePaid       int
	Notes           string

	RequestID string
}

type CreateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	// Barbeiro e corte precisam existir e pertencer ao usuário.
	if _, err := uc.repo.GetBarber(ctx, in.UserID, in.BarberID); err != nil {
		return nil, httperr.ErrBusiness("barber_not_found")
	}

	if _, err := uc.repo.GetHaircut(ctx, in.UserID, in.HaircutID); err != nil {
		return nil, httperr.ErrBusiness("haircut_not_found")
	}

	ap := &models.Appointment{
		UserID:          in.UserID,
		BarberID:        in.BarberID,
		HaircutID:       in.HaircutID,
		AppointmentDate: in.AppointmentDate,
		PricePaid:       in.PricePaid,
		Notes:           in.Notes,
	}

	if err := uc.repo.Create(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:    in.UserID,
		Action:    "appointment_created",
		Entity:    "appointment",
		EntityID:  &ap.ID,
		RequestID: in.RequestID,
	})

	return ap, nil
}
