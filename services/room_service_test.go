package services

import (
	"testing"

	"hotel-booking-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoomIDStableAcrossOperations(t *testing.T) {
	svc := NewRoomService(newTestDB(t))

	created, err := svc.Create("101", models.RatingA)
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	got, err := svc.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	updated, err := svc.Update(created.ID, "102", models.RatingB)
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "102", updated.Number)
	assert.Equal(t, models.RatingB, updated.Rating)

	require.NoError(t, svc.Delete(created.ID))
	_, err = svc.Get(created.ID)
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestCreateRoomRejectsUnknownRating(t *testing.T) {
	svc := NewRoomService(newTestDB(t))

	_, err := svc.Create("101", models.Rating("Z"))
	assert.ErrorIs(t, err, ErrInvalidRating)

	rooms, err := svc.List()
	require.NoError(t, err)
	assert.Empty(t, rooms)
}

func TestUpdateRoomRejectsUnknownRating(t *testing.T) {
	svc := NewRoomService(newTestDB(t))

	created, err := svc.Create("101", models.RatingA)
	require.NoError(t, err)

	_, err = svc.Update(created.ID, "101", models.Rating("premium"))
	assert.ErrorIs(t, err, ErrInvalidRating)
}

func TestCreateRoomDuplicateNumber(t *testing.T) {
	svc := NewRoomService(newTestDB(t))

	_, err := svc.Create("101", models.RatingA)
	require.NoError(t, err)

	_, err = svc.Create("101", models.RatingB)
	assert.ErrorIs(t, err, ErrDuplicateRoomNumber)
}

func TestRoomNotFound(t *testing.T) {
	svc := NewRoomService(newTestDB(t))

	_, err := svc.Get(99)
	assert.ErrorIs(t, err, ErrRoomNotFound)

	_, err = svc.Update(99, "101", models.RatingA)
	assert.ErrorIs(t, err, ErrRoomNotFound)

	assert.ErrorIs(t, svc.Delete(99), ErrRoomNotFound)
}

func TestListRoomsInsertionOrder(t *testing.T) {
	svc := NewRoomService(newTestDB(t))

	for _, number := range []string{"301", "101", "202"} {
		_, err := svc.Create(number, models.RatingC)
		require.NoError(t, err)
	}

	rooms, err := svc.List()
	require.NoError(t, err)
	require.Len(t, rooms, 3)

	numbers := []string{rooms[0].Number, rooms[1].Number, rooms[2].Number}
	assert.Equal(t, []string{"301", "101", "202"}, numbers)
}
