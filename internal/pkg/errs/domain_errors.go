package errs

import "errors"

// Domain-specific sentinel errors shared by the usecase layers
var (
	// Catalog errors
	ErrCourtNotFound = errors.New("court not found")

	// Ledger errors
	ErrReservationNotFound = errors.New("reservation not found")
	ErrSlotUnavailable     = errors.New("slot unavailable")
)
