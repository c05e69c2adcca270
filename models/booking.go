package models

import (
	"time"

	"gorm.io/datatypes"
)

// Booking is a reservation over a date range, linked to zero or more rooms
// through the room_booking join table. Start and end are day-granularity;
// datatypes.Date truncates whatever time component comes in.
type Booking struct {
	ID    uint           `gorm:"primaryKey" json:"id"`
	Name  string         `gorm:"column:name;type:varchar(255)" json:"name"`
	Start datatypes.Date `gorm:"column:start" json:"start"`
	End   datatypes.Date `gorm:"column:end" json:"end"`

	Rooms []Room `gorm:"many2many:room_booking" json:"-"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

func (Booking) TableName() string { return "booking" }
