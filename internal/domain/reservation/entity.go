package reservation

import (
	"time"

	"padel-booking/internal/domain/court"
)

// Reservation is a booking of one court slot. The court name and the total
// price are snapshots taken at creation time; later catalog changes do not
// affect existing records.
type Reservation struct {
	id         string
	courtID    string
	courtName  string
	date       Date
	slot       TimeSlot
	userName   string
	status     Status
	totalPrice Money
	createdAt  time.Time
}

func NewReservation(id string, c *court.Court, date Date, slot TimeSlot, userName string, totalPrice Money, createdAt time.Time) *Reservation {
	return &Reservation{
		id:         id,
		courtID:    c.ID(),
		courtName:  c.Name(),
		date:       date,
		slot:       slot,
		userName:   userName,
		status:     StatusConfirmed,
		totalPrice: totalPrice,
		createdAt:  createdAt,
	}
}

func (r *Reservation) ID() string        { return r.id }
func (r *Reservation) CourtID() string   { return r.courtID }
func (r *Reservation) CourtName() string { return r.courtName }
func (r *Reservation) Date() Date        { return r.date }
func (r *Reservation) Slot() TimeSlot    { return r.slot }
func (r *Reservation) UserName() string  { return r.userName }
func (r *Reservation) Status() Status    { return r.status }
func (r *Reservation) TotalPrice() Money { return r.totalPrice }
func (r *Reservation) CreatedAt() time.Time { return r.createdAt }

func (r *Reservation) IsConfirmed() bool {
	return r.status == StatusConfirmed
}

// Cancel releases the slot. Cancelling an already-cancelled reservation is a
// no-op; the record is never deleted.
func (r *Reservation) Cancel() {
	r.status = StatusCancelled
}

// Snapshot returns a copy safe to read outside the ledger lock.
func (r *Reservation) Snapshot() *Reservation {
	clone := *r
	return &clone
}

// Occupies reports whether this reservation blocks the given slot start.
// Only confirmed reservations occupy; a booking blocks exactly the slot it
// starts in, matching the availability grid.
func (r *Reservation) Occupies(courtID string, date Date, start TimeOfDay) bool {
	return r.status == StatusConfirmed &&
		r.courtID == courtID &&
		r.date == date &&
		r.slot.start == start
}
