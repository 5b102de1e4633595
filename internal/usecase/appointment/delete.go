package appointment

import (
	"context"

	"github.com/Newksitesfss/barbearia-criatech/internal/audit"
	domain "github.com/Newksitesfss/barbearia-criatech/internal/domain/appointment"
)

type DeleteAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeleteAppointment {
	return &DeleteAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *DeleteAppointment) Execute(
	ctx context.Context,
	userID uint,
	id uint,
	requestID string,
) error {

	if err := uc.repo.Delete(ctx, userID, id); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:    userID,
		Action:    "appointment_deleted",
		Entity:    "appointment",
		EntityID:  &id,
		RequestID: requestID,
	})

	return nil
}
