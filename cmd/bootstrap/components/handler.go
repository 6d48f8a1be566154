package components

import (
	"cinema-scheduler/internal/handler"
	"cinema-scheduler/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewCatalogHandler,
		api.NewScheduleHandler,
		api.NewBoardHandler,
		func(catalog *api.CatalogHandler, schedule *api.ScheduleHandler, board *api.BoardHandler) handler.Handlers {
			return handler.Handlers{Catalog: catalog, Schedule: schedule, Board: board}
		},
	),
	fx.Invoke(handler.NewRouter),
)
