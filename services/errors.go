package services

import "errors"

// Service errors. Controllers map these onto HTTP statuses; nothing here is
// retried automatically.
var (
	// Validation
	ErrInvalidDateRange = errors.New("check-out must be after check-in")
	ErrInvalidPrice     = errors.New("price must be positive")
	ErrMissingField     = errors.New("missing required field")

	// Not found
	ErrClientNotFound  = errors.New("client not found")
	ErrRoomNotFound    = errors.New("room not found")
	ErrBookingNotFound = errors.New("booking not found")
	ErrUserNotFound    = errors.New("user not found")

	// Conflict
	ErrRoomUnavailable     = errors.New("room is not available")
	ErrRoomNotOccupiable   = errors.New("room is already occupied")
	ErrRoomNotReleasable   = errors.New("room is not occupied")
	ErrBookingCheckedOut   = errors.New("booking already checked out")
	ErrDuplicateRoomNumber = errors.New("room number already exists")
	ErrDuplicateUsername   = errors.New("username already exists")

	// Authorization
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid or expired token")
)
