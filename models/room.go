package models

import (
	"time"
)

type Room struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	CreatedAt time.Time  `gorm:"autoCreateTime:false" json:"created_at"`
	UpdatedAt *time.Time `gorm:"autoUpdateTime:false" json:"updated_at"`

	Number        string  `gorm:"size:10" json:"number"`
	Type          string  `gorm:"size:20" json:"type"`
	PricePerNight float64 `gorm:"column:price_per_night" json:"price_per_night"`

	HotelID uint   `gorm:"index;not null" json:"hotel_id"`
	Hotel   *Hotel `gorm:"foreignKey:HotelID" json:"hotel,omitempty"`

	Guests []Guest `gorm:"foreignKey:RoomID" json:"guests,omitempty"`
}
