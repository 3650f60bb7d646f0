package queries

import (
	"context"

	"padel-booking/internal/domain/reservation"
	"padel-booking/internal/pkg/config"
)

type LedgerSlotReader interface {
	BookedStarts(ctx context.Context, courtID string, date reservation.Date) map[reservation.TimeOfDay]struct{}
}

type AvailabilityQueries interface {
	ListSlots(ctx context.Context, courtID string, date reservation.Date) []*SlotView
}

type availabilityQueriesImpl struct {
	courts CourtReadStore
	ledger LedgerSlotReader
	grid   config.ScheduleConfig
}

func NewAvailabilityQueries(courts CourtReadStore, ledger LedgerSlotReader, grid config.ScheduleConfig) AvailabilityQueries {
	return &availabilityQueriesImpl{
		courts: courts,
		ledger: ledger,
		grid:   grid,
	}
}

// ListSlots derives the day's slot grid for a court. An unknown court yields
// an empty list, not an error; callers that must tell "unknown court" apart
// from "fully booked" resolve the court first via CourtQueries.Get.
func (q *availabilityQueriesImpl) ListSlots(ctx context.Context, courtID string, date reservation.Date) []*SlotView {
	if _, err := q.courts.ByID(ctx, courtID); err != nil {
		return []*SlotView{}
	}

	// One BookedStarts call = one consistent ledger snapshot for the day.
	taken := q.ledger.BookedStarts(ctx, courtID, date)

	slots := make([]*SlotView, 0, q.grid.CloseHour-q.grid.OpenHour)
	for hour := q.grid.OpenHour; hour < q.grid.CloseHour; hour++ {
		start := reservation.TimeOfDayFromHour(hour)
		end := reservation.TimeOfDayFromHour(hour + 1)
		_, booked := taken[start]
		slots = append(slots, &SlotView{
			StartTime: start.String(),
			EndTime:   end.String(),
			Available: !booked,
		})
	}
	return slots
}
