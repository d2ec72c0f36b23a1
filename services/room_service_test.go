package services

import (
	"errors"
	"testing"

	"hotel-api/domain"
	"hotel-api/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateRoomChecksHotelBeforeInsert(t *testing.T) {
	db, mock := newTestDB(t)
	svc := NewRoomService(db)

	// hotel lookup misses: no insert must follow
	mock.ExpectQuery("SELECT count(.+) FROM `hotels`").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	room := models.Room{Number: "101", Type: "double", PricePerNight: 80, HotelID: 42}
	err := svc.Create(&room)
	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))
	assert.Contains(t, err.Error(), "Hotel with id 42")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateRoomInsertsWhenHotelExists(t *testing.T) {
	db, mock := newTestDB(t)
	svc := NewRoomService(db)

	mock.ExpectQuery("SELECT count(.+) FROM `hotels`").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectExec("INSERT INTO `rooms`").
		WillReturnResult(sqlmock.NewResult(5, 1))

	room := models.Room{Number: "101", Type: "double", PricePerNight: 80, HotelID: 1}
	require.NoError(t, svc.Create(&room))
	assert.Equal(t, uint(5), room.ID)
	assert.False(t, room.CreatedAt.IsZero())
	assert.Nil(t, room.UpdatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateBulkRollsBackOnMissingHotel(t *testing.T) {
	db, mock := newTestDB(t)
	svc := NewRoomService(db)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT count(.+) FROM `hotels`").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectExec("INSERT INTO `rooms`").
		WillReturnResult(sqlmock.NewResult(5, 1))
	mock.ExpectQuery("SELECT count(.+) FROM `hotels`").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectRollback()

	err := svc.CreateBulk([]models.Room{
		{Number: "101", Type: "double", PricePerNight: 80, HotelID: 1},
		{Number: "102", Type: "double", PricePerNight: 80, HotelID: 42},
	})
	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRoomGuestsReturnsOccupants(t *testing.T) {
	db, mock := newTestDB(t)
	svc := NewRoomService(db)

	mock.ExpectQuery("SELECT (.+) FROM `rooms`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "type"}).AddRow(7, "double"))
	mock.ExpectQuery("SELECT (.+) FROM `guests`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "first_name", "room_id"}).
			AddRow(1, "Ada", 7).
			AddRow(2, "Grace", 7))

	guests, err := svc.Guests(7)
	require.NoError(t, err)
	assert.Len(t, guests, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteRoomWithOccupantsIsADeleteConflict(t *testing.T) {
	db, mock := newTestDB(t)
	svc := NewRoomService(db)

	mock.ExpectQuery("SELECT (.+) FROM `rooms`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "type"}).AddRow(7, "double"))
	mock.ExpectExec("DELETE FROM `rooms`").
		WillReturnError(errors.New("Error 1451 (23000): Cannot delete or update a parent row: a foreign key constraint fails"))

	err := svc.Delete(7)
	require.Error(t, err)
	assert.True(t, domain.IsDeleteConflict(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}
