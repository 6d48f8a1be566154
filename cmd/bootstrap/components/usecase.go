package components

import (
	"cinema-scheduler/internal/domain/roomevent"
	"cinema-scheduler/internal/pkg/config"
	"cinema-scheduler/internal/usecase/commands"
	"cinema-scheduler/internal/usecase/queries"
	"cinema-scheduler/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseDomainOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseDomainOption = fx.Provide(
	roomevent.NewAvailabilityChecker,
	roomevent.NewValidator,
	roomevent.NewFactory,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewShowUseCase,
		commands.NewCleaningSlotUseCase,
		commands.NewUnavailabilityUseCase,
		commands.NewScheduleUseCase,
		func(rooms shared.RoomRepository, movies shared.MovieRepository, cfg config.Config) commands.CatalogCommands {
			return commands.NewCatalogUseCase(rooms, movies, cfg.Schedule.DefaultCleaningSlot)
		},
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewBoardQueries,
	),
)
