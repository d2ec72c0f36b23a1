package models

import (
	"time"
)

type Hotel struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	// Audit fields are managed explicitly by the services: created_at is set
	// once on insert, updated_at only by mutating operations.
	CreatedAt time.Time  `gorm:"autoCreateTime:false" json:"created_at"`
	UpdatedAt *time.Time `gorm:"autoUpdateTime:false" json:"updated_at"`

	Name    string `gorm:"size:50" json:"name"`
	Address string `gorm:"size:100;uniqueIndex" json:"address"`
	Phone   string `gorm:"size:20;uniqueIndex" json:"phone"`
	Email   string `gorm:"size:150;uniqueIndex" json:"email"`
	Website string `gorm:"size:150;uniqueIndex" json:"website"`

	Rooms    []Room    `gorm:"foreignKey:HotelID;constraint:OnDelete:CASCADE" json:"rooms,omitempty"`
	Services []Service `gorm:"many2many:hotel_services" json:"services,omitempty"`
}
