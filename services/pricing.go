package services

import (
	"errors"
	"fmt"
	"time"

	"hotel-booking-api/models"

	"gorm.io/datatypes"
)

const dateLayout = "2006-01-02"

// Daily price per rating tier.
var ratingPrices = map[models.Rating]int{
	models.RatingA: 200,
	models.RatingB: 150,
	models.RatingC: 100,
	models.RatingD: 50,
}

var ErrUnknownRating = errors.New("unknown rating")

// PriceForRating returns the daily price for a rating tier. Ratings are
// validated when a room is written, so this only fails for rows that predate
// that check.
func PriceForRating(r models.Rating) (int, error) {
	price, ok := ratingPrices[r]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownRating, string(r))
	}
	return price, nil
}

// DurationDays returns the whole-day difference between end and start.
// Both endpoints are rebuilt as UTC midnights from their calendar components
// first: the store may hand dates back as local midnights, and a DST jump in
// between would otherwise shift the difference off a 24h multiple.
func DurationDays(start, end datatypes.Date) int {
	return int(utcMidnight(time.Time(end)).Sub(utcMidnight(time.Time(start))).Hours() / 24)
}

func utcMidnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// BookingView renders a booking with its derived fields. The rooms and
// "total cost" keys are only present when the booking has rooms attached;
// total cost is one entry per room, in association order, not a sum.
func BookingView(b *models.Booking) (map[string]any, error) {
	duration := DurationDays(b.Start, b.End)
	view := map[string]any{
		"id":       b.ID,
		"name":     b.Name,
		"start":    time.Time(b.Start).Format(dateLayout),
		"end":      time.Time(b.End).Format(dateLayout),
		"duration": duration,
	}
	if len(b.Rooms) == 0 {
		return view, nil
	}

	numbers := make([]string, 0, len(b.Rooms))
	costs := make([]int, 0, len(b.Rooms))
	for _, room := range b.Rooms {
		price, err := PriceForRating(room.Rating)
		if err != nil {
			return nil, err
		}
		numbers = append(numbers, room.Number)
		costs = append(costs, price*duration)
	}
	view["rooms"] = numbers
	view["total cost"] = costs
	return view, nil
}
