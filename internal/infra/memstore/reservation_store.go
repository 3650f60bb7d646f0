package memstore

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"padel-booking/internal/domain/court"
	"padel-booking/internal/domain/reservation"
	"padel-booking/internal/pkg/clock"
	"padel-booking/internal/pkg/errs"
)

// ReservationStore is the ledger: the authoritative, process-lifetime record
// of all reservations. One RWMutex guards the map and the id counter; the
// availability check and the insert in Create run under a single write-lock
// acquisition so two racing requests for the same slot can never both win.
type ReservationStore struct {
	mu      sync.RWMutex
	byID    map[string]*reservation.Reservation
	counter int
	clock   clock.Clock
}

func NewReservationStore(clk clock.Clock) *ReservationStore {
	return &ReservationStore{
		byID:  make(map[string]*reservation.Reservation),
		clock: clk,
	}
}

// Create atomically re-checks slot availability, allocates the next
// sequential identifier and inserts the confirmed reservation.
func (s *ReservationStore) Create(_ context.Context, c *court.Court, date reservation.Date, slot reservation.TimeSlot, userName string, totalPrice reservation.Money) (*reservation.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.slotTaken(c.ID(), date, slot.Start()) {
		return nil, errs.Mark(
			errs.New(fmt.Sprintf("slot %s %s already booked on %s", date, slot.Start(), c.ID())),
			errs.ErrSlotUnavailable,
		)
	}

	// Counter is never reused, even after cancellations.
	s.counter++
	id := fmt.Sprintf("RES-%04d", s.counter)

	res := reservation.NewReservation(id, c, date, slot, userName, totalPrice, s.clock.Now())
	s.byID[id] = res
	return res.Snapshot(), nil
}

// Cancel flips the reservation to cancelled and reports whether the id was
// known. Cancelling an already-cancelled reservation succeeds as a no-op.
func (s *ReservationStore) Cancel(_ context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, ok := s.byID[id]
	if !ok {
		return false
	}
	res.Cancel()
	return true
}

// Get returns a reservation of any status by id.
func (s *ReservationStore) Get(_ context.Context, id string) (*reservation.Reservation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	res, ok := s.byID[id]
	if !ok {
		return nil, errs.Mark(errs.New("reservation not found: "+id), errs.ErrReservationNotFound)
	}
	return res.Snapshot(), nil
}

// ListByUser returns the confirmed reservations whose user name matches
// case-insensitively, ordered by (date, startTime) ascending.
func (s *ReservationStore) ListByUser(_ context.Context, userName string) []*reservation.Reservation {
	s.mu.RLock()
	out := make([]*reservation.Reservation, 0)
	for _, res := range s.byID {
		if res.IsConfirmed() && strings.EqualFold(res.UserName(), userName) {
			out = append(out, res.Snapshot())
		}
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].Date() != out[j].Date() {
			return out[i].Date().String() < out[j].Date().String()
		}
		return out[i].Slot().Start().Before(out[j].Slot().Start())
	})
	return out
}

// BookedStarts returns the set of occupied slot starts for a court and date
// under one lock acquisition, so a whole day's availability is derived from
// a single consistent ledger snapshot.
func (s *ReservationStore) BookedStarts(_ context.Context, courtID string, date reservation.Date) map[reservation.TimeOfDay]struct{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	taken := make(map[reservation.TimeOfDay]struct{})
	for _, res := range s.byID {
		if res.IsConfirmed() && res.CourtID() == courtID && res.Date() == date {
			taken[res.Slot().Start()] = struct{}{}
		}
	}
	return taken
}

func (s *ReservationStore) slotTaken(courtID string, date reservation.Date, start reservation.TimeOfDay) bool {
	for _, res := range s.byID {
		if res.Occupies(courtID, date, start) {
			return true
		}
	}
	return false
}
