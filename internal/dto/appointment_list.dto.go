package dto

import "time"

type AppointmentListDTO struct {
	ID              uint      `json:"id"`
	BarberID        uint      `json:"barber_id"`
	HaircutID       uint      `json:"haircut_id"`
	AppointmentDate time.Time `json:"appointment_date"`
	PricePaid       int       `json:"price_paid"`
	Notes           string    `json:"notes"`
	CreatedAt       time.Time `json:"created_at"`
	BarberName      string    `json:"barber_name"`
	HaircutName     string    `json:"haircut_name"`
}
