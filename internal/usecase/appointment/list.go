package appointment

import (
	"context"

	domain "github.com/Newksitesfss/barbearia-criatech/internal/domain/appointment"
	"github.com/Newksitesfss/barbearia-criatech/internal/dto"
)

type ListAppointments struct {
	repo domain.Repository
}

func NewListAppointments(repo domain.Repository) *ListAppointments {
	return &ListAppointments{repo: repo}
}

func (uc *ListAppointments) Execute(
	ctx context.Context,
	userID uint,
	filters domain.ListFilters,
) ([]dto.AppointmentListDTO, error) {
	return uc.repo.List(ctx, userID, filters)
}
