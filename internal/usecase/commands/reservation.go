package commands

import (
	"context"
	"log/slog"

	"padel-booking/internal/domain/court"
	"padel-booking/internal/domain/reservation"
	"padel-booking/internal/pkg/errs"
	"padel-booking/internal/usecase/queries"
)

type CreateReservationParams struct {
	CourtID   string
	Date      reservation.Date
	StartTime reservation.TimeOfDay
	EndTime   reservation.TimeOfDay
	UserName  string
}

type CourtRepository interface {
	ByID(ctx context.Context, id string) (*court.Court, error)
}

type LedgerRepository interface {
	Create(ctx context.Context, c *court.Court, date reservation.Date, slot reservation.TimeSlot, userName string, totalPrice reservation.Money) (*reservation.Reservation, error)
	Cancel(ctx context.Context, id string) bool
}

type ReservationCommands interface {
	CreateReservation(ctx context.Context, params CreateReservationParams) (*queries.ReservationView, error)
	CancelReservation(ctx context.Context, id string) bool
}

type reservationCommandsImpl struct {
	courts     CourtRepository
	ledger     LedgerRepository
	calculator reservation.PriceCalculator
}

func NewReservationCommands(courts CourtRepository, ledger LedgerRepository, calculator reservation.PriceCalculator) ReservationCommands {
	return &reservationCommandsImpl{
		courts:     courts,
		ledger:     ledger,
		calculator: calculator,
	}
}

// CreateReservation validates in a fixed order: court existence, time range,
// slot availability. The availability check and the insert happen atomically
// inside the ledger; a rejected create leaves the ledger untouched.
func (c *reservationCommandsImpl) CreateReservation(ctx context.Context, params CreateReservationParams) (*queries.ReservationView, error) {
	courtEntity, err := c.courts.ByID(ctx, params.CourtID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to resolve court")
	}

	slot, err := reservation.NewTimeSlot(params.StartTime, params.EndTime)
	if err != nil {
		return nil, errs.Wrap(err, "invalid reservation time slot")
	}

	price := reservation.NewMoney(c.calculator.CalculatePriceCents(courtEntity, slot))

	res, err := c.ledger.Create(ctx, courtEntity, params.Date, slot, params.UserName, price)
	if err != nil {
		return nil, errs.Wrap(err, "failed to insert reservation")
	}

	slog.Info("reservation created",
		"reservation_id", res.ID(),
		"court_id", res.CourtID(),
		"date", res.Date().String(),
		"start_time", res.Slot().Start().String(),
		"user_name", res.UserName(),
	)
	return queries.NewReservationView(res), nil
}

// CancelReservation reports false for an unknown id; cancelling an already
// cancelled reservation is a no-op success.
func (c *reservationCommandsImpl) CancelReservation(ctx context.Context, id string) bool {
	ok := c.ledger.Cancel(ctx, id)
	if ok {
		slog.Info("reservation cancelled", "reservation_id", id)
	} else {
		slog.Warn("cancel requested for unknown reservation", "reservation_id", id)
	}
	return ok
}
