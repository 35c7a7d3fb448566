package modules

import (
	"rankcast/api/handlers"
	participantservice "rankcast/api/services/participant"
)

func initializeParticipantHandler(deps *ModuleDependencies) *handlers.ParticipantHandler {
	participantDeps := &participantservice.ParticipantServiceDeps{
		DB:       deps.DB,
		MemCache: deps.MemCache,
		Redis:    deps.Redis,
	}

	participantService := participantservice.NewParticipantService(participantDeps)

	participantHandlerDeps := &handlers.ParticipantHandlerDependencies{
		ParticipantService: participantService,
	}

	return handlers.NewParticipantHandler(participantHandlerDeps)
}
