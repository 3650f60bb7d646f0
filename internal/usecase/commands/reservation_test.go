//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"padel-booking/internal/domain/court"
	"padel-booking/internal/domain/reservation"
	"padel-booking/internal/infra/memstore"
	"padel-booking/internal/pkg/clock"
	"padel-booking/internal/pkg/errs"
	"padel-booking/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCommands(t *testing.T) (commands.ReservationCommands, *memstore.ReservationStore) {
	t.Helper()
	courts := memstore.NewCourtStore(court.DefaultCatalog())
	ledger := memstore.NewReservationStore(clock.NewMockClock(time.Date(2025, 5, 20, 12, 0, 0, 0, time.UTC)))
	cmds := commands.NewReservationCommands(courts, ledger, reservation.NewHourlyRateCalculator())
	return cmds, ledger
}

func params(t *testing.T, courtID, date, start, end, user string) commands.CreateReservationParams {
	t.Helper()
	d, err := reservation.NewDate(date)
	require.NoError(t, err)
	s, err := reservation.NewTimeOfDay(start)
	require.NoError(t, err)
	e, err := reservation.NewTimeOfDay(end)
	require.NoError(t, err)
	return commands.CreateReservationParams{
		CourtID:   courtID,
		Date:      d,
		StartTime: s,
		EndTime:   e,
		UserName:  user,
	}
}

func TestCreateReservation(t *testing.T) {
	ctx := context.Background()
	cmds, _ := newCommands(t)

	view, err := cmds.CreateReservation(ctx, params(t, "court-1", "2025-06-01", "10:00", "11:30", "Alice"))
	require.NoError(t, err)

	assert.Equal(t, "RES-0001", view.ID)
	assert.Equal(t, "Center Court", view.CourtName)
	assert.Equal(t, "confirmed", view.Status)
	// 1.5h at 25.00/h
	assert.InDelta(t, 37.5, view.TotalPrice, 1e-9)
}

func TestCreateReservationValidationOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown court wins over bad time range", func(t *testing.T) {
		cmds, _ := newCommands(t)
		_, err := cmds.CreateReservation(ctx, params(t, "court-99", "2025-06-01", "11:00", "10:00", "Alice"))
		assert.ErrorIs(t, err, errs.ErrCourtNotFound)
		// Wrapping adds context without losing the sentinel
		assert.ErrorContains(t, err, "failed to resolve court")
	})

	t.Run("bad time range wins over occupied slot", func(t *testing.T) {
		cmds, _ := newCommands(t)
		_, err := cmds.CreateReservation(ctx, params(t, "court-1", "2025-06-01", "10:00", "11:00", "Alice"))
		require.NoError(t, err)

		_, err = cmds.CreateReservation(ctx, params(t, "court-1", "2025-06-01", "10:00", "10:00", "Bob"))
		assert.ErrorIs(t, err, reservation.ErrInvalidTimeRange)
	})

	t.Run("occupied slot is rejected last", func(t *testing.T) {
		cmds, _ := newCommands(t)
		_, err := cmds.CreateReservation(ctx, params(t, "court-1", "2025-06-01", "10:00", "11:00", "Alice"))
		require.NoError(t, err)

		_, err = cmds.CreateReservation(ctx, params(t, "court-1", "2025-06-01", "10:00", "11:00", "Bob"))
		assert.ErrorIs(t, err, errs.ErrSlotUnavailable)
		assert.ErrorContains(t, err, "failed to insert reservation")
	})
}

func TestCreateReservationRejectionLeavesLedgerUnchanged(t *testing.T) {
	ctx := context.Background()
	cmds, ledger := newCommands(t)

	first, err := cmds.CreateReservation(ctx, params(t, "court-1", "2025-06-01", "10:00", "11:00", "Alice"))
	require.NoError(t, err)

	_, err = cmds.CreateReservation(ctx, params(t, "court-1", "2025-06-01", "10:00", "11:00", "Bob"))
	require.ErrorIs(t, err, errs.ErrSlotUnavailable)

	// Ledger still holds exactly the first booking
	kept, err := ledger.Get(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice", kept.UserName())
	assert.Empty(t, ledger.ListByUser(ctx, "Bob"))
}

func TestCreateReservationDifferentCourtsSameSlot(t *testing.T) {
	ctx := context.Background()
	cmds, _ := newCommands(t)

	_, err := cmds.CreateReservation(ctx, params(t, "court-1", "2025-06-01", "10:00", "11:00", "Alice"))
	require.NoError(t, err)

	// Same date and time on a different court is a separate slot
	view, err := cmds.CreateReservation(ctx, params(t, "court-2", "2025-06-01", "10:00", "11:00", "Bob"))
	require.NoError(t, err)
	assert.Equal(t, "RES-0002", view.ID)
	// court-2 rate is 20.00/h
	assert.InDelta(t, 20.0, view.TotalPrice, 1e-9)
}

func TestCancelReservation(t *testing.T) {
	ctx := context.Background()
	cmds, _ := newCommands(t)

	view, err := cmds.CreateReservation(ctx, params(t, "court-1", "2025-06-01", "10:00", "11:00", "Alice"))
	require.NoError(t, err)

	assert.True(t, cmds.CancelReservation(ctx, view.ID))
	assert.True(t, cmds.CancelReservation(ctx, view.ID)) // repeat is a no-op success
	assert.False(t, cmds.CancelReservation(ctx, "RES-9999"))
}
