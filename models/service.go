package models

import (
	"time"
)

type Service struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	CreatedAt time.Time  `gorm:"autoCreateTime:false" json:"created_at"`
	UpdatedAt *time.Time `gorm:"autoUpdateTime:false" json:"updated_at"`

	Name        string `gorm:"size:50" json:"name"`
	Description string `gorm:"size:500" json:"description"`
	Category    string `gorm:"size:100" json:"category"`

	Hotels []Hotel `gorm:"many2many:hotel_services" json:"hotels,omitempty"`
}
