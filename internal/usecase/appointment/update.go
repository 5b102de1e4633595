package appointment

import (
	"context"
	"time"

	"github.com/Newksitesfss/barbearia-criatech/internal/audit"
	domain "github.com/Newksitesfss/barbearia-criatech/internal/domain/appointment"
	"github.com/Newksitesfss/barbearia-criatech/internal/httperr"
	"github.com/Newksitesfss/barbearia-criatech/internal/models"
)

type UpdateAppointmentInput struct {
	UserID uint
	ID     uint

	BarberID  uint
	HaircutID uint

	AppointmentDate time.Time
	PricePaid       int
	Notes           string

	RequestID string
}

type UpdateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateAppointment {
	return &UpdateAppointment{
		repo:  repo,
		audit: audit,
	}
}

// Execute valida as referências e grava. Um id inexistente ou de outro
// usuário não atualiza linha alguma e ainda assim não é erro.
func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	in UpdateAppointmentInput,
) error {

	if _, err := uc.repo.GetBarber(ctx, in.UserID, in.BarberID); err != nil {
		return httperr.ErrBusiness("barber_not_found")
	}

	if _, err := uc.repo.GetHaircut(ctx, in.UserID, in.HaircutID); err != nil {
		return httperr.ErrBusiness("haircut_not_found")
	}

	ap := &models.Appointment{
		BarberID:        in.BarberID,
		HaircutID:       in.HaircutID,
		AppointmentDate: in.AppointmentDate,
		PricePaid:       in.PricePaid,
		Notes:           in.Notes,
	}

	if err := uc.repo.Update(ctx, in.UserID, in.ID, ap); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:    in.UserID,
		Action:    "appointment_updated",
		Entity:    "appointment",
		EntityID:  &in.ID,
		RequestID: in.RequestID,
	})

	return nil
}
