package bootstrap

import (
	"cinema-scheduler/internal/domain/roomevent"
	"cinema-scheduler/internal/infra/uow"
	"cinema-scheduler/internal/pkg/clock"
	"cinema-scheduler/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		NewWorkingHours,
		NewUoWOptions,
		NewClock,
	),
)

func NewWorkingHours(cfg config.Config) (roomevent.WorkingHours, error) {
	return cfg.Schedule.WorkingHours()
}

func NewUoWOptions(cfg config.Config) uow.Options {
	return uow.Options{RollbackOnFailure: cfg.Schedule.RollbackOnFailure}
}

func NewClock(cfg config.Config) (clock.Clock, error) {
	loc, err := cfg.Schedule.Location()
	if err != nil {
		return nil, err
	}
	return clock.NewRealClock(loc), nil
}
