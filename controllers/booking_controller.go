package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"hotel-booking-api/models"
	"hotel-booking-api/services"
	"hotel-booking-api/utils"

	"github.com/gin-gonic/gin"
)

// ---------------------------
// Payload / DTOs
// ---------------------------

// CreateBookingPayload requires all four keys to be present. Rooms stays a
// raw message so a present-but-null value can be told apart from an absent
// key: null and [] both mean a booking with no rooms.
type CreateBookingPayload struct {
	Name  string          `json:"name" binding:"required"`
	Start []int           `json:"start" binding:"required,len=3"`
	End   []int           `json:"end" binding:"required,len=3"`
	Rooms json.RawMessage `json:"rooms" binding:"required"`
}

// roomIDs decodes the rooms value. JSON null unmarshals to a nil slice,
// which downstream treats the same as an empty list.
func roomIDs(raw json.RawMessage) ([]uint, error) {
	var ids []uint
	if err := json.Unmarshal(raw, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

type UpdateBookingPayload struct {
	Name  string `json:"name" binding:"required"`
	Start []int  `json:"start" binding:"required,len=3"`
	End   []int  `json:"end" binding:"required,len=3"`
	Rooms []uint `json:"rooms"`
}

// ---------------------------
// Controller
// ---------------------------

type BookingController struct {
	BookingSvc *services.BookingService
}

func NewBookingController(svc *services.BookingService) *BookingController {
	return &BookingController{BookingSvc: svc}
}

// dateFromTriple converts a [year, month, day] triple into a UTC date.
// ok is false when the triple names a day that does not exist (time.Date
// would silently normalize it otherwise).
func dateFromTriple(t []int) (time.Time, bool) {
	d := time.Date(t[0], time.Month(t[1]), t[2], 0, 0, 0, 0, time.UTC)
	if d.Year() != t[0] || int(d.Month()) != t[1] || d.Day() != t[2] {
		return time.Time{}, false
	}
	return d, true
}

// ---------------------------
// 1) Get bookings (GET /api/bookings[?id=|?name=])
// ---------------------------

func (ctrl *BookingController) GetBookings(c *gin.Context) {
	id, found, err := queryID(c)
	if err != nil {
		utils.JSONMessage(c, http.StatusBadRequest, "Booking id must be an integer")
		return
	}

	// id wins over name when both are supplied.
	var booking *models.Booking
	switch {
	case found:
		booking, err = ctrl.BookingSvc.Get(id)
	case c.Query("name") != "":
		booking, err = ctrl.BookingSvc.GetByName(c.Query("name"))
	default:
		ctrl.renderAll(c)
		return
	}

	if err != nil {
		if errors.Is(err, services.ErrBookingNotFound) {
			utils.JSONMessage(c, http.StatusNotFound, "Booking not found.")
			return
		}
		log.Printf("❌ get booking failed: %v", err)
		utils.JSONMessage(c, http.StatusInternalServerError, "Database error")
		return
	}

	view, err := services.BookingView(booking)
	if err != nil {
		log.Printf("❌ render booking %d failed: %v", booking.ID, err)
		utils.JSONMessage(c, http.StatusInternalServerError, "Database error")
		return
	}
	c.JSON(http.StatusOK, view)
}

func (ctrl *BookingController) renderAll(c *gin.Context) {
	bookings, err := ctrl.BookingSvc.List()
	if err != nil {
		log.Printf("❌ list bookings failed: %v", err)
		utils.JSONMessage(c, http.StatusInternalServerError, "Database error")
		return
	}

	views := make([]map[string]any, 0, len(bookings))
	for i := range bookings {
		view, err := services.BookingView(&bookings[i])
		if err != nil {
			log.Printf("❌ render booking %d failed: %v", bookings[i].ID, err)
			utils.JSONMessage(c, http.StatusInternalServerError, "Database error")
			return
		}
		views = append(views, view)
	}
	c.JSON(http.StatusOK, views)
}

// ---------------------------
// 2) Create booking (POST /api/bookings)
// ---------------------------

func (ctrl *BookingController) CreateBooking(c *gin.Context) {
	var payload CreateBookingPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("❌ booking payload rejected: %v", err)
		utils.JSONMessage(c, http.StatusBadRequest, "Input data incomplete")
		return
	}

	start, okStart := dateFromTriple(payload.Start)
	end, okEnd := dateFromTriple(payload.End)
	if !okStart || !okEnd {
		utils.JSONMessage(c, http.StatusBadRequest, "Start and end must be valid [year, month, day] dates")
		return
	}

	ids, err := roomIDs(payload.Rooms)
	if err != nil {
		log.Printf("❌ booking payload rejected: %v", err)
		utils.JSONMessage(c, http.StatusBadRequest, "Input data incomplete")
		return
	}

	booking, err := ctrl.BookingSvc.Create(payload.Name, start, end, ids)
	if err != nil {
		ctrl.respondBookingError(c, err)
		return
	}

	utils.JSONMessage(c, http.StatusCreated, fmt.Sprintf(
		"Booking: %s from %s to %s inserted.",
		booking.Name, start.Format("2006-01-02"), end.Format("2006-01-02"),
	))
}

// ---------------------------
// 3) Update booking (PUT /api/bookings?id=)
// ---------------------------

func (ctrl *BookingController) UpdateBooking(c *gin.Context) {
	id, found, err := queryID(c)
	if err != nil {
		utils.JSONMessage(c, http.StatusBadRequest, "Booking id must be an integer")
		return
	}
	if !found {
		utils.JSONMessage(c, http.StatusBadRequest, "You must provide booking id")
		return
	}

	var payload UpdateBookingPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("❌ booking payload rejected: %v", err)
		utils.JSONMessage(c, http.StatusBadRequest, "Input data incomplete")
		return
	}

	start, okStart := dateFromTriple(payload.Start)
	end, okEnd := dateFromTriple(payload.End)
	if !okStart || !okEnd {
		utils.JSONMessage(c, http.StatusBadRequest, "Start and end must be valid [year, month, day] dates")
		return
	}

	booking, err := ctrl.BookingSvc.Update(id, payload.Name, start, end, payload.Rooms)
	if err != nil {
		if errors.Is(err, services.ErrBookingNotFound) {
			utils.JSONMessage(c, http.StatusNotFound, fmt.Sprintf("Booking with ID %d not found.", id))
			return
		}
		ctrl.respondBookingError(c, err)
		return
	}

	utils.JSONMessage(c, http.StatusOK, fmt.Sprintf(
		"Booking: %s from %s to %s updated.",
		booking.Name, start.Format("2006-01-02"), end.Format("2006-01-02"),
	))
}

// ---------------------------
// 4) Delete booking (DELETE /api/bookings?id=)
// ---------------------------

func (ctrl *BookingController) DeleteBooking(c *gin.Context) {
	id, found, err := queryID(c)
	if err != nil {
		utils.JSONMessage(c, http.StatusBadRequest, "Booking id must be an integer")
		return
	}
	if !found {
		utils.JSONMessage(c, http.StatusBadRequest, "You must provide booking id")
		return
	}

	if err := ctrl.BookingSvc.Delete(id); err != nil {
		if errors.Is(err, services.ErrBookingNotFound) {
			utils.JSONMessage(c, http.StatusNotFound, fmt.Sprintf("Booking with ID %d not found.", id))
			return
		}
		log.Printf("❌ delete booking %d failed: %v", id, err)
		utils.JSONMessage(c, http.StatusInternalServerError, "Database error")
		return
	}

	utils.JSONMessage(c, http.StatusOK, fmt.Sprintf("Booking %d deleted", id))
}

func (ctrl *BookingController) respondBookingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidDateRange):
		utils.JSONMessage(c, http.StatusBadRequest, "Start date must not be prior to end date.")
	case errors.Is(err, services.ErrRoomNotFound):
		utils.JSONMessage(c, http.StatusNotFound, "One or more rooms in the booking do not exist.")
	default:
		log.Printf("❌ booking write failed: %v", err)
		utils.JSONMessage(c, http.StatusInternalServerError, "Database error")
	}
}
