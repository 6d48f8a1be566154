package components

import (
	"cinema-scheduler/internal/domain/roomevent"
	"cinema-scheduler/internal/infra/readstore"
	"cinema-scheduler/internal/infra/repository"
	"cinema-scheduler/internal/infra/uow"
	"cinema-scheduler/internal/usecase/queries"
	"cinema-scheduler/internal/usecase/shared"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		// Room events: one store per kind behind a single facade
		fx.Annotate(
			repository.NewRoomEventRepository,
			fx.As(new(shared.RoomEventStore)),
			fx.As(new(roomevent.DayEventLookup)),
			fx.As(new(readstore.RoomEventSource)),
		),
		// Catalog
		fx.Annotate(
			repository.NewRoomRepository,
			fx.As(new(shared.RoomRepository)),
		),
		fx.Annotate(
			repository.NewMovieRepository,
			fx.As(new(shared.MovieRepository)),
		),
		// UnitOfWork
		fx.Annotate(
			uow.NewMemoryUoW,
			fx.As(new(shared.UnitOfWork)),
		),
		// Read side
		fx.Annotate(
			readstore.NewBoardReadStore,
			fx.As(new(queries.BoardReadStore)),
		),
	),
)
