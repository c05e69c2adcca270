package services

import (
	"errors"
	"fmt"
	"strings"

	"hotel-booking-api/models"

	mysql "github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrRoomNotFound        = errors.New("room_not_found")
	ErrInvalidRating       = errors.New("invalid_rating")
	ErrDuplicateRoomNumber = errors.New("duplicate_room_number")
)

// RoomService wraps *gorm.DB to keep room logic out of the handlers.
type RoomService struct {
	DB *gorm.DB
}

func NewRoomService(db *gorm.DB) *RoomService {
	return &RoomService{DB: db}
}

func (s *RoomService) List() ([]models.Room, error) {
	rooms := make([]models.Room, 0)
	if err := s.DB.Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}
	return rooms, nil
}

func (s *RoomService) Get(id uint) (*models.Room, error) {
	var room models.Room
	if err := s.DB.First(&room, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, fmt.Errorf("failed to find room %d: %w", id, err)
	}
	return &room, nil
}

func (s *RoomService) Create(number string, rating models.Rating) (*models.Room, error) {
	if !rating.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidRating, string(rating))
	}

	room := models.Room{Number: number, Rating: rating}
	if err := s.DB.Create(&room).Error; err != nil {
		if isDuplicateKey(err) {
			return nil, ErrDuplicateRoomNumber
		}
		return nil, fmt.Errorf("failed to create room: %w", err)
	}
	return &room, nil
}

// Update overwrites number and rating unconditionally, as PUT implies.
func (s *RoomService) Update(id uint, number string, rating models.Rating) (*models.Room, error) {
	if !rating.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidRating, string(rating))
	}

	room, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	room.Number = number
	room.Rating = rating
	if err := s.DB.Omit(clause.Associations).Save(room).Error; err != nil {
		if isDuplicateKey(err) {
			return nil, ErrDuplicateRoomNumber
		}
		return nil, fmt.Errorf("failed to update room %d: %w", id, err)
	}
	return room, nil
}

// Delete removes the room and its join rows. Bookings referencing the room
// stay alive with a shorter room list.
func (s *RoomService) Delete(id uint) error {
	room, err := s.Get(id)
	if err != nil {
		return err
	}

	if err := s.DB.Select(clause.Associations).Delete(room).Error; err != nil {
		return fmt.Errorf("failed to delete room %d: %w", id, err)
	}
	return nil
}

// isDuplicateKey reports whether err is a unique-constraint violation.
// MySQL surfaces error 1062; the sqlite driver used in tests reports a
// "UNIQUE constraint failed" message instead.
func isDuplicateKey(err error) bool {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
		return true
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate entry") || strings.Contains(msg, "unique constraint")
}
