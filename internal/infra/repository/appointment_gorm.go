package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	domain "github.com/Newksitesfss/barbearia-criatech/internal/domain/appointment"
	"github.com/Newksitesfss/barbearia-criatech/internal/dto"
	"github.com/Newksitesfss/barbearia-criatech/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Lookups (sempre escopados pelo dono)
// --------------------------------------------------

func (r *AppointmentGormRepository) GetBarber(
	ctx context.Context,
	userID uint,
	barberID uint,
) (*models.Barber, error) {

	var barber models.Barber
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", barberID, userID).
		First(&barber).Error; err != nil {
		return nil, err
	}
	return &barber, nil
}

func (r *AppointmentGormRepository) GetHaircut(
	ctx context.Context,
	userID uint,
	haircutID uint,
) (*models.Haircut, error) {

	var haircut models.Haircut
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", haircutID, userID).
		First(&haircut).Error; err != nil {
		return nil, err
	}
	return &haircut, nil
}

// --------------------------------------------------
// CRUD
// --------------------------------------------------

func (r *AppointmentGormRepository) Create(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Create(ap).Error
}

// Update escreve apenas linhas do dono; id inexistente ou de outro usuário
// afeta zero linhas e não é erro.
func (r *AppointmentGormRepository) Update(
	ctx context.Context,
	userID uint,
	id uint,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(map[string]any{
			"barber_id":        ap.BarberID,
			"haircut_id":       ap.HaircutID,
			"appointment_date": ap.AppointmentDate,
			"price_paid":       ap.PricePaid,
			"notes":            ap.Notes,
		}).Error
}

func (r *AppointmentGormRepository) Delete(
	ctx context.Context,
	userID uint,
	id uint,
) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.Appointment{}).Error
}

func (r *AppointmentGormRepository) List(
	ctx context.Context,
	userID uint,
	filters domain.ListFilters,
) ([]dto.AppointmentListDTO, error) {

	q := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Select(`appointments.id,
			appointments.barber_id,
			appointments.haircut_id,
			appointments.appointment_date,
			appointments.price_paid,
			appointments.notes,
			appointments.created_at,
			barbers.name AS barber_name,
			haircuts.name AS haircut_name`).
		Joins("LEFT JOIN barbers ON barbers.id = appointments.barber_id").
		Joins("LEFT JOIN haircuts ON haircuts.id = appointments.haircut_id").
		Where("appointments.user_id = ?", userID)

	if filters.StartDate != nil && filters.EndDate != nil {
		q = q.Where(
			"appointments.appointment_date BETWEEN ? AND ?",
			*filters.StartDate,
			*filters.EndDate,
		)
	}

	if filters.BarberID != 0 {
		q = q.Where("appointments.barber_id = ?", filters.BarberID)
	}

	if filters.HaircutID != 0 {
		q = q.Where("appointments.haircut_id = ?", filters.HaircutID)
	}

	rows := make([]dto.AppointmentListDTO, 0)
	if err := q.
		Order("appointments.appointment_date DESC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	return rows, nil
}

// --------------------------------------------------
// Agregados
// --------------------------------------------------

func (r *AppointmentGormRepository) Totals(
	ctx context.Context,
	userID uint,
	start time.Time,
	end time.Time,
) (int, int, error) {

	var out struct {
		Total   int
		Revenue int
	}

	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Select("COUNT(*) AS total, COALESCE(SUM(price_paid), 0) AS revenue").
		Where(
			"user_id = ? AND appointment_date >= ? AND appointment_date < ?",
			userID, start, end,
		).
		Scan(&out).Error; err != nil {
		return 0, 0, err
	}

	return out.Total, out.Revenue, nil
}

func (r *AppointmentGormRepository) TopHaircuts(
	ctx context.Context,
	userID uint,
	start time.Time,
	end time.Time,
) ([]dto.HaircutCountDTO, error) {

	rows := make([]dto.HaircutCountDTO, 0)

	// desempate por id para saída determinística
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Select(`appointments.haircut_id,
			haircuts.name AS haircut_name,
			COUNT(*) AS count`).
		Joins("LEFT JOIN haircuts ON haircuts.id = appointments.haircut_id").
		Where(
			"appointments.user_id = ? AND appointments.appointment_date >= ? AND appointments.appointment_date < ?",
			userID, start, end,
		).
		Group("appointments.haircut_id, haircuts.name").
		Order("COUNT(*) DESC, appointments.haircut_id ASC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	return rows, nil
}

func (r *AppointmentGormRepository) BarberRanking(
	ctx context.Context,
	userID uint,
	start time.Time,
	end time.Time,
) ([]dto.BarberRankingDTO, error) {

	rows := make([]dto.BarberRankingDTO, 0)

	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Select(`appointments.barber_id,
			barbers.name AS barber_name,
			COUNT(*) AS total_appointments,
			COALESCE(SUM(appointments.price_paid), 0) AS total_revenue`).
		Joins("LEFT JOIN barbers ON barbers.id = appointments.barber_id").
		Where(
			"appointments.user_id = ? AND appointments.appointment_date >= ? AND appointments.appointment_date < ?",
			userID, start, end,
		).
		Group("appointments.barber_id, barbers.name").
		Order("COUNT(*) DESC, appointments.barber_id ASC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	return rows, nil
}

func (r *AppointmentGormRepository) ListForPeriod(
	ctx context.Context,
	userID uint,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where(
			"user_id = ? AND appointment_date >= ? AND appointment_date < ?",
			userID, start, end,
		).
		Order("appointment_date ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}

	return aps, nil
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
