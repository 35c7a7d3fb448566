package modules

import (
	"rankcast/api/handlers"
	seasonservice "rankcast/api/services/season"
)

func initializeSeasonHandler(deps *ModuleDependencies) *handlers.SeasonHandler {
	seasonDeps := &seasonservice.SeasonServiceDeps{
		DB:       deps.DB,
		MemCache: deps.MemCache,
		Redis:    deps.Redis,
	}

	seasonService := seasonservice.NewSeasonService(seasonDeps)

	seasonHandlerDeps := &handlers.SeasonHandlerDependencies{
		SeasonService: seasonService,
	}

	return handlers.NewSeasonHandler(seasonHandlerDeps)
}
