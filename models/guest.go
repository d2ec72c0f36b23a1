package models

import (
	"time"
)

type Guest struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	CreatedAt time.Time  `gorm:"autoCreateTime:false" json:"created_at"`
	UpdatedAt *time.Time `gorm:"autoUpdateTime:false" json:"updated_at"`

	FirstName string `gorm:"size:50" json:"first_name"`
	LastName  string `gorm:"size:50" json:"last_name"`
	Document  string `gorm:"size:9;uniqueIndex" json:"document"`

	CheckInAt  *time.Time `gorm:"column:check_in_at" json:"check_in_at"`
	CheckOutAt *time.Time `gorm:"column:check_out_at" json:"check_out_at"`

	// RoomID is the guest's current stay; nil when there is no active
	// reservation. It is mutated only by Reserve and Checkout.
	RoomID *uint `gorm:"index" json:"room_id"`
	Room   *Room `gorm:"foreignKey:RoomID" json:"room,omitempty"`
}
