package controllers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"hotel-booking-api/models"
	"hotel-booking-api/services"
	"hotel-booking-api/utils"

	"github.com/gin-gonic/gin"
)

// ---------------------------
// Payload / DTOs
// ---------------------------

type RoomPayload struct {
	Number string `json:"number" binding:"required"`
	Rating string `json:"rating" binding:"required"`
}

// ---------------------------
// Controller
// ---------------------------

type RoomController struct {
	RoomSvc *services.RoomService
}

func NewRoomController(svc *services.RoomService) *RoomController {
	return &RoomController{RoomSvc: svc}
}

// queryID parses the ?id= query parameter. found is false when the
// parameter is absent.
func queryID(c *gin.Context) (id uint, found bool, err error) {
	raw := c.Query("id")
	if raw == "" {
		return 0, false, nil
	}
	parsed, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, true, err
	}
	return uint(parsed), true, nil
}

// ---------------------------
// 1) Get rooms (GET /api/rooms[?id=])
// ---------------------------

func (ctrl *RoomController) GetRooms(c *gin.Context) {
	id, found, err := queryID(c)
	if err != nil {
		utils.JSONMessage(c, http.StatusBadRequest, "Room id must be an integer")
		return
	}

	if !found {
		rooms, err := ctrl.RoomSvc.List()
		if err != nil {
			log.Printf("❌ list rooms failed: %v", err)
			utils.JSONMessage(c, http.StatusInternalServerError, "Database error")
			return
		}
		c.JSON(http.StatusOK, rooms)
		return
	}

	room, err := ctrl.RoomSvc.Get(id)
	if err != nil {
		if errors.Is(err, services.ErrRoomNotFound) {
			utils.JSONMessage(c, http.StatusNotFound, fmt.Sprintf("Room with ID %d not found.", id))
			return
		}
		log.Printf("❌ get room %d failed: %v", id, err)
		utils.JSONMessage(c, http.StatusInternalServerError, "Database error")
		return
	}
	c.JSON(http.StatusOK, room)
}

// ---------------------------
// 2) Create room (POST /api/rooms)
// ---------------------------

func (ctrl *RoomController) CreateRoom(c *gin.Context) {
	var payload RoomPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("❌ room payload rejected: %v", err)
		utils.JSONMessage(c, http.StatusBadRequest, "Room number and rating are required")
		return
	}

	room, err := ctrl.RoomSvc.Create(payload.Number, models.Rating(payload.Rating))
	if err != nil {
		ctrl.respondRoomError(c, err, payload.Number)
		return
	}

	utils.JSONMessage(c, http.StatusCreated, fmt.Sprintf("Room %s inserted.", room.Number))
}

// ---------------------------
// 3) Update room (PUT /api/rooms?id=)
// ---------------------------

func (ctrl *RoomController) UpdateRoom(c *gin.Context) {
	id, found, err := queryID(c)
	if err != nil {
		utils.JSONMessage(c, http.StatusBadRequest, "Room id must be an integer")
		return
	}
	if !found {
		utils.JSONMessage(c, http.StatusBadRequest, "Must provide the room ID")
		return
	}

	var payload RoomPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("❌ room payload rejected: %v", err)
		utils.JSONMessage(c, http.StatusBadRequest, "Room number and rating are required")
		return
	}

	room, err := ctrl.RoomSvc.Update(id, payload.Number, models.Rating(payload.Rating))
	if err != nil {
		if errors.Is(err, services.ErrRoomNotFound) {
			utils.JSONMessage(c, http.StatusNotFound, fmt.Sprintf("Room with ID %d not found.", id))
			return
		}
		ctrl.respondRoomError(c, err, payload.Number)
		return
	}

	utils.JSONMessage(c, http.StatusOK, fmt.Sprintf("Room %s updated.", room.Number))
}

// ---------------------------
// 4) Delete room (DELETE /api/rooms?id=)
// ---------------------------

func (ctrl *RoomController) DeleteRoom(c *gin.Context) {
	id, found, err := queryID(c)
	if err != nil {
		utils.JSONMessage(c, http.StatusBadRequest, "Room id must be an integer")
		return
	}
	if !found {
		utils.JSONMessage(c, http.StatusBadRequest, "Must provide room id")
		return
	}

	if err := ctrl.RoomSvc.Delete(id); err != nil {
		if errors.Is(err, services.ErrRoomNotFound) {
			utils.JSONMessage(c, http.StatusNotFound, fmt.Sprintf("Room with ID %d not found.", id))
			return
		}
		log.Printf("❌ delete room %d failed: %v", id, err)
		utils.JSONMessage(c, http.StatusInternalServerError, "Database error")
		return
	}

	utils.JSONMessage(c, http.StatusOK, fmt.Sprintf("Room %d deleted", id))
}

func (ctrl *RoomController) respondRoomError(c *gin.Context, err error, number string) {
	switch {
	case errors.Is(err, services.ErrInvalidRating):
		utils.JSONMessage(c, http.StatusBadRequest, "Rating must be one of A, B, C or D")
	case errors.Is(err, services.ErrDuplicateRoomNumber):
		utils.JSONMessage(c, http.StatusConflict, fmt.Sprintf("Room number '%s' already exists.", number))
	default:
		log.Printf("❌ room write failed: %v", err)
		utils.JSONMessage(c, http.StatusInternalServerError, "Database error")
	}
}
