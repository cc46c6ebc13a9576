package health

import (
	"context"

	"go-weather/internal/domain/gateway/cache"
	"go-weather/internal/domain/gateway/db"
	"go-weather/internal/domain/model"
)

type healthUseCase struct {
	dbGateway    db.HealthDBGateway
	cacheGateway cache.HealthCacheGateway
}

// NewHealthUseCase reports the database and, when cacheGateway is not nil, the forecast cache
func NewHealthUseCase(dbGateway db.HealthDBGateway, cacheGateway cache.HealthCacheGateway) UseCase {
	return &healthUseCase{
		dbGateway:    dbGateway,
		cacheGateway: cacheGateway,
	}
}

func (useCase *healthUseCase) CheckHealth(ctx context.Context) model.HealthResponse {
	dbHealth := useCase.dbGateway.Health(ctx)

	overallStatus := model.StatusUp
	if dbHealth.Status != model.StatusUp {
		overallStatus = model.StatusDown
	}

	response := model.HealthResponse{
		Status:   overallStatus,
		Database: dbHealth,
	}

	if useCase.cacheGateway != nil {
		cacheHealth := useCase.cacheGateway.Health(ctx)
		if cacheHealth.Status != model.StatusUp {
			response.Status = model.StatusDown
		}
		response.Cache = &cacheHealth
	}

	return response
}
