package components

import (
	"padel-booking/internal/domain/reservation"
	"padel-booking/internal/usecase/commands"
	"padel-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		fx.Annotate(
			reservation.NewHourlyRateCalculator,
			fx.As(new(reservation.PriceCalculator)),
		),
		queries.NewCourtQueries,
		queries.NewAvailabilityQueries,
		queries.NewReservationQueries,
		commands.NewReservationCommands,
	),
)
