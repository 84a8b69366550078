package services

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hoteldesk-backend/models"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNightsBetween(t *testing.T) {
	assert.Equal(t, 2, nightsBetween(date(2026, 1, 10), date(2026, 1, 12)))
	assert.Equal(t, 1, nightsBetween(date(2026, 1, 31), date(2026, 2, 1)))
	assert.Equal(t, 0, nightsBetween(date(2026, 1, 10), date(2026, 1, 10)))
	assert.Equal(t, -1, nightsBetween(date(2026, 1, 10), date(2026, 1, 9)))

	// Times of day are irrelevant: a stay is counted in whole nights.
	late := time.Date(2026, 1, 10, 23, 30, 0, 0, time.UTC)
	early := time.Date(2026, 1, 12, 0, 15, 0, 0, time.UTC)
	assert.Equal(t, 2, nightsBetween(late, early))
}

func TestBookingService_Create(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db)
	client := seedClient(t, db, "Jane Doe", "555-1234")
	room := seedRoom(t, db, "101", "Standard", 100)

	booking, err := svc.Create(client.ID, room.ID, date(2026, 1, 10), date(2026, 1, 12))
	require.NoError(t, err)
	assert.NotZero(t, booking.ID)
	assert.Equal(t, 2, booking.Nights)
	assert.Equal(t, 200.0, booking.Total)

	// The room flips to Occupied in the same transaction.
	got, err := NewRoomService(db).GetByID(room.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RoomStatusOccupied, got.Status)
}

func TestBookingService_Create_TotalLocksInRate(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db)
	client := seedClient(t, db, "Jane Doe", "555-1234")
	room := seedRoom(t, db, "101", "Standard", 100)

	booking, err := svc.Create(client.ID, room.ID, date(2026, 1, 10), date(2026, 1, 13))
	require.NoError(t, err)
	require.Equal(t, 300.0, booking.Total)

	// A later rate edit must not touch the stored total.
	require.NoError(t, db.Model(&models.Room{}).Where("id = ?", room.ID).Update("price", 999).Error)

	got, err := svc.Get(booking.ID)
	require.NoError(t, err)
	assert.Equal(t, 300.0, got.Total)
}

func TestBookingService_Create_InvalidDateRange(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db)
	client := seedClient(t, db, "Jane Doe", "555-1234")
	room := seedRoom(t, db, "101", "Standard", 100)

	// Zero nights.
	_, err := svc.Create(client.ID, room.ID, date(2026, 1, 10), date(2026, 1, 10))
	assert.ErrorIs(t, err, ErrInvalidDateRange)

	// Checkout before checkin.
	_, err = svc.Create(client.ID, room.ID, date(2026, 1, 10), date(2026, 1, 9))
	assert.ErrorIs(t, err, ErrInvalidDateRange)

	// Nothing was written and the room is untouched.
	got, err := NewRoomService(db).GetByID(room.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RoomStatusAvailable, got.Status)

	var count int64
	db.Model(&models.Booking{}).Count(&count)
	assert.Zero(t, count)
}

func TestBookingService_Create_UnknownReferences(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db)
	client := seedClient(t, db, "Jane Doe", "555-1234")
	room := seedRoom(t, db, "101", "Standard", 100)

	_, err := svc.Create(9999, room.ID, date(2026, 1, 10), date(2026, 1, 12))
	assert.ErrorIs(t, err, ErrClientNotFound)

	_, err = svc.Create(client.ID, 9999, date(2026, 1, 10), date(2026, 1, 12))
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestBookingService_Create_RoomUnavailable(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db)
	client := seedClient(t, db, "Jane Doe", "555-1234")
	room := seedRoom(t, db, "101", "Standard", 100)

	_, err := svc.Create(client.ID, room.ID, date(2026, 1, 10), date(2026, 1, 12))
	require.NoError(t, err)

	// Same room, no intervening release: refused.
	_, err = svc.Create(client.ID, room.ID, date(2026, 2, 1), date(2026, 2, 3))
	assert.ErrorIs(t, err, ErrRoomUnavailable)

	var count int64
	db.Model(&models.Booking{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

// Two racing bookings for the same room: exactly one may win.
func TestBookingService_Create_Concurrent(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db)
	client := seedClient(t, db, "Jane Doe", "555-1234")
	room := seedRoom(t, db, "101", "Standard", 100)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.Create(client.ID, room.ID, date(2026, 1, 10), date(2026, 1, 12))
		}(i)
	}
	wg.Wait()

	successes := 0
	for _, err := range errs {
		if err == nil {
			successes++
		} else {
			assert.ErrorIs(t, err, ErrRoomUnavailable)
		}
	}
	assert.Equal(t, 1, successes)

	var count int64
	db.Model(&models.Booking{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

// A room is occupied exactly when a booking created through the engine
// references it.
func TestBookingService_OccupancyMatchesBookings(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db)
	roomSvc := NewRoomService(db)
	client := seedClient(t, db, "Jane Doe", "555-1234")

	booked := seedRoom(t, db, "101", "Standard", 100)
	seedRoom(t, db, "102", "Deluxe", 250)

	_, err := svc.Create(client.ID, booked.ID, date(2026, 1, 10), date(2026, 1, 12))
	require.NoError(t, err)

	rooms, err := roomSvc.GetAll()
	require.NoError(t, err)
	for _, room := range rooms {
		var refs int64
		db.Model(&models.Booking{}).
			Where("room_id = ? AND status = ?", room.ID, models.BookingStatusActive).
			Count(&refs)
		if refs > 0 {
			assert.Equal(t, models.RoomStatusOccupied, room.Status, "room %s", room.Number)
		} else {
			assert.Equal(t, models.RoomStatusAvailable, room.Status, "room %s", room.Number)
		}
	}
}

func TestBookingService_GetAllWithRelations(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db)
	client := seedClient(t, db, "Jane Doe", "555-1234")
	r1 := seedRoom(t, db, "101", "Standard", 100)
	r2 := seedRoom(t, db, "102", "Deluxe", 250)

	first, err := svc.Create(client.ID, r1.ID, date(2026, 1, 10), date(2026, 1, 12))
	require.NoError(t, err)
	second, err := svc.Create(client.ID, r2.ID, date(2026, 1, 11), date(2026, 1, 14))
	require.NoError(t, err)

	bookings, err := svc.GetAllWithRelations()
	require.NoError(t, err)
	require.Len(t, bookings, 2)

	// Insertion order, with client and room joined in.
	assert.Equal(t, first.ID, bookings[0].ID)
	assert.Equal(t, second.ID, bookings[1].ID)
	assert.Equal(t, "Jane Doe", bookings[0].Client.Name)
	assert.Equal(t, "101", bookings[0].Room.Number)
	assert.Equal(t, "102", bookings[1].Room.Number)
}

func TestBookingService_Get_NotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db)

	_, err := svc.Get(42)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestBookingService_Checkout(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db)
	client := seedClient(t, db, "Jane Doe", "555-1234")
	room := seedRoom(t, db, "101", "Standard", 100)

	booking, err := svc.Create(client.ID, room.ID, date(2026, 1, 10), date(2026, 1, 12))
	require.NoError(t, err)

	require.NoError(t, svc.Checkout(booking.ID))

	got, err := NewRoomService(db).GetByID(room.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RoomStatusAvailable, got.Status)

	// The reservation fields are untouched; only the lifecycle moved.
	kept, err := svc.Get(booking.ID)
	require.NoError(t, err)
	assert.Equal(t, booking.Total, kept.Total)
	assert.Equal(t, booking.RoomID, kept.RoomID)
	assert.Equal(t, models.BookingStatusCheckedOut, kept.Status)
	assert.NotNil(t, kept.CheckedOutAt)

	// Checking out twice is a conflict, not a silent no-op.
	assert.ErrorIs(t, svc.Checkout(booking.ID), ErrBookingCheckedOut)

	// The room can be booked again after release.
	_, err = svc.Create(client.ID, room.ID, date(2026, 2, 1), date(2026, 2, 3))
	assert.NoError(t, err)
}

// A checkout on a booking that already ended must not free the room a
// later booking is holding.
func TestBookingService_Checkout_StaleBooking(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db)
	roomSvc := NewRoomService(db)
	client := seedClient(t, db, "Jane Doe", "555-1234")
	room := seedRoom(t, db, "101", "Standard", 100)

	first, err := svc.Create(client.ID, room.ID, date(2026, 1, 10), date(2026, 1, 12))
	require.NoError(t, err)
	require.NoError(t, svc.Checkout(first.ID))

	// The room is re-booked by an active stay.
	second, err := svc.Create(client.ID, room.ID, date(2026, 2, 1), date(2026, 2, 3))
	require.NoError(t, err)

	// The stale checkout is refused and the room stays occupied.
	assert.ErrorIs(t, svc.Checkout(first.ID), ErrBookingCheckedOut)

	got, err := roomSvc.GetByID(room.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RoomStatusOccupied, got.Status)

	// No double allocation opened up behind the active booking.
	_, err = svc.Create(client.ID, room.ID, date(2026, 3, 1), date(2026, 3, 2))
	assert.ErrorIs(t, err, ErrRoomUnavailable)

	// The active booking can still check out normally.
	require.NoError(t, svc.Checkout(second.ID))
	got, err = roomSvc.GetByID(room.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RoomStatusAvailable, got.Status)
}

func TestBookingService_Checkout_NotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db)

	assert.ErrorIs(t, svc.Checkout(42), ErrBookingNotFound)
}
