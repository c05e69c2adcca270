package models

import (
	"time"
)

// Rating is the pricing tier of a room. The tier is the key into the daily
// price table, so only the four known values are accepted.
type Rating string

const (
	RatingA Rating = "A"
	RatingB Rating = "B"
	RatingC Rating = "C"
	RatingD Rating = "D"
)

func (r Rating) Valid() bool {
	switch r {
	case RatingA, RatingB, RatingC, RatingD:
		return true
	}
	return false
}

type Room struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Number string `gorm:"column:number;uniqueIndex;type:varchar(32)" json:"number"`
	Rating Rating `gorm:"column:rating;type:varchar(8)" json:"rating"`

	Bookings []Booking `gorm:"many2many:room_booking" json:"-"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

func (Room) TableName() string { return "room" }
