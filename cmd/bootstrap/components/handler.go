package components

import (
	"padel-booking/internal/handler"
	"padel-booking/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewCourtHandler,
		api.NewReservationHandler,
		api.NewToolsHandler,
	),
	fx.Invoke(handler.NewRouter),
)
