package components

import (
	"padel-booking/internal/domain/court"
	"padel-booking/internal/infra/memstore"
	"padel-booking/internal/pkg/clock"
	"padel-booking/internal/usecase/commands"
	"padel-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

var StoreModule = fx.Module("store",
	fx.Provide(
		clock.NewRealClock,
		NewCourtStore,
		// Catalog
		fx.Annotate(
			func(s *memstore.CourtStore) *memstore.CourtStore { return s },
			fx.As(new(queries.CourtReadStore)),
			fx.As(new(commands.CourtRepository)),
		),
		// Ledger
		fx.Annotate(
			memstore.NewReservationStore,
			fx.As(new(commands.LedgerRepository)),
			fx.As(new(queries.LedgerReadStore)),
			fx.As(new(queries.LedgerSlotReader)),
		),
	),
)

func NewCourtStore() *memstore.CourtStore {
	return memstore.NewCourtStore(court.DefaultCatalog())
}
