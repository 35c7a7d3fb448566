package modules

import (
	"rankcast/api/handlers"
	eventservice "rankcast/api/services/event"
)

func initializeEventHandler(deps *ModuleDependencies) *handlers.EventHandler {
	eventDeps := &eventservice.EventServiceDeps{
		DB:       deps.DB,
		MemCache: deps.MemCache,
		Redis:    deps.Redis,
		Notifier: deps.Notifier,
	}

	eventService := eventservice.NewEventService(eventDeps)

	eventHandlerDeps := &handlers.EventHandlerDependencies{
		EventService: eventService,
	}

	return handlers.NewEventHandler(eventHandlerDeps)
}
