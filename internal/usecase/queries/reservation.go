package queries

import (
	"context"

	"padel-booking/internal/domain/reservation"
	"padel-booking/internal/pkg/errs"
)

type LedgerReadStore interface {
	Get(ctx context.Context, id string) (*reservation.Reservation, error)
	ListByUser(ctx context.Context, userName string) []*reservation.Reservation
}

type ReservationQueries interface {
	Get(ctx context.Context, id string) (*ReservationView, error)
	ListByUser(ctx context.Context, userName string) []*ReservationView
}

type reservationQueriesImpl struct {
	ledger LedgerReadStore
}

func NewReservationQueries(ledger LedgerReadStore) ReservationQueries {
	return &reservationQueriesImpl{ledger: ledger}
}

func (q *reservationQueriesImpl) Get(ctx context.Context, id string) (*ReservationView, error) {
	res, err := q.ledger.Get(ctx, id)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load reservation")
	}
	return NewReservationView(res), nil
}

// ListByUser surfaces confirmed reservations only; cancelled records stay in
// the ledger but are excluded from this view. Order and case-insensitivity
// are guaranteed by the ledger.
func (q *reservationQueriesImpl) ListByUser(ctx context.Context, userName string) []*ReservationView {
	rows := q.ledger.ListByUser(ctx, userName)
	views := make([]*ReservationView, len(rows))
	for i, res := range rows {
		views[i] = NewReservationView(res)
	}
	return views
}
