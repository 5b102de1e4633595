package models

import "time"

type Haircut struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"index;not null" json:"user_id"`

	Name string `gorm:"size:255;not null" json:"name"`

	// Preço em centavos para evitar problemas com decimais
	Price       int    `gorm:"not null" json:"price"`
	Description string `gorm:"type:text" json:"description"`

	// 1 = ativo, 0 = inativo
	Active int `gorm:"default:1;not null" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
