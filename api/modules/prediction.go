package modules

import (
	"rankcast/api/handlers"
	predictionservice "rankcast/api/services/prediction"
)

func initializePredictionHandler(deps *ModuleDependencies) *handlers.PredictionHandler {
	predictionDeps := &predictionservice.PredictionServiceDeps{
		DB: deps.DB,
	}

	predictionService := predictionservice.NewPredictionService(predictionDeps)

	predictionHandlerDeps := &handlers.PredictionHandlerDependencies{
		PredictionService: predictionService,
	}

	return handlers.NewPredictionHandler(predictionHandlerDeps)
}
