package models

import "time"

type Appointment struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"index;not null" json:"user_id"`

	BarberID uint   `gorm:"index;not null" json:"barber_id"`
	Barber   Barber `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	HaircutID uint    `gorm:"index;not null" json:"haircut_id"`
	Haircut   Haircut `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	AppointmentDate time.Time `gorm:"index;not null" json:"appointment_date"`

	// Valor pago em centavos, snapshot histórico (independe do preço atual do corte)
	PricePaid int    `gorm:"not null" json:"price_paid"`
	Notes     string `gorm:"type:text" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
