package services

import (
	"errors"
	"fmt"
	"time"

	"hotel-booking-api/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrBookingNotFound  = errors.New("booking_not_found")
	ErrInvalidDateRange = errors.New("invalid_date_range")
)

// BookingService wraps *gorm.DB to keep booking logic out of the handlers.
type BookingService struct {
	DB *gorm.DB
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{DB: db}
}

func (s *BookingService) List() ([]models.Booking, error) {
	bookings := make([]models.Booking, 0)
	if err := s.DB.Preload("Rooms").Find(&bookings).Error; err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return bookings, nil
}

func (s *BookingService) Get(id uint) (*models.Booking, error) {
	var booking models.Booking
	if err := s.DB.Preload("Rooms").First(&booking, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to find booking %d: %w", id, err)
	}
	return &booking, nil
}

// GetByName returns the first booking with the given name. Names are not
// unique; with duplicates this picks whichever the store returns first.
func (s *BookingService) GetByName(name string) (*models.Booking, error) {
	var booking models.Booking
	err := s.DB.Preload("Rooms").Where("name = ?", name).First(&booking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to find booking %q: %w", name, err)
	}
	return &booking, nil
}

// Create validates the range and resolves every room id before anything is
// written, so a rejected booking leaves no partial state behind.
func (s *BookingService) Create(name string, start, end time.Time, roomIDs []uint) (*models.Booking, error) {
	if !start.Before(end) {
		return nil, ErrInvalidDateRange
	}

	rooms, err := s.roomsByIDs(roomIDs)
	if err != nil {
		return nil, err
	}

	booking := models.Booking{
		Name:  name,
		Start: datatypes.Date(start),
		End:   datatypes.Date(end),
		Rooms: rooms,
	}
	if err := s.DB.Create(&booking).Error; err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}
	return &booking, nil
}

// Update overwrites name, start and end. A non-empty roomIDs replaces the
// room set; nil or empty leaves the current associations untouched.
func (s *BookingService) Update(id uint, name string, start, end time.Time, roomIDs []uint) (*models.Booking, error) {
	if !start.Before(end) {
		return nil, ErrInvalidDateRange
	}

	booking, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	booking.Name = name
	booking.Start = datatypes.Date(start)
	booking.End = datatypes.Date(end)
	if err := s.DB.Omit(clause.Associations).Save(booking).Error; err != nil {
		return nil, fmt.Errorf("failed to update booking %d: %w", id, err)
	}

	if len(roomIDs) > 0 {
		rooms, err := s.roomsByIDs(roomIDs)
		if err != nil {
			return nil, err
		}
		if err := s.DB.Model(booking).Association("Rooms").Replace(&rooms); err != nil {
			return nil, fmt.Errorf("failed to replace rooms on booking %d: %w", id, err)
		}
		booking.Rooms = rooms
	}
	return booking, nil
}

// Delete removes the booking and its join rows; the rooms themselves stay.
func (s *BookingService) Delete(id uint) error {
	booking, err := s.Get(id)
	if err != nil {
		return err
	}

	if err := s.DB.Select(clause.Associations).Delete(booking).Error; err != nil {
		return fmt.Errorf("failed to delete booking %d: %w", id, err)
	}
	return nil
}

func (s *BookingService) roomsByIDs(ids []uint) ([]models.Room, error) {
	rooms := make([]models.Room, 0, len(ids))
	for _, id := range ids {
		var room models.Room
		if err := s.DB.First(&room, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("%w: id %d", ErrRoomNotFound, id)
			}
			return nil, fmt.Errorf("failed to find room %d: %w", id, err)
		}
		rooms = append(rooms, room)
	}
	return rooms, nil
}
