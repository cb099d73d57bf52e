package health

import (
	"shorten-api/internal/domain/gateway/cache"
	"shorten-api/internal/domain/gateway/db"
	"shorten-api/internal/domain/gateway/storage"
	"shorten-api/internal/domain/model"
)

type healthUseCase struct {
	dbGateway    db.HealthDBGateway
	blobGateway  storage.BlobGateway
	cacheGateway cache.ResolveCache
}

// NewHealthUseCase takes the gateways to probe. cacheGateway may be nil when
// caching is disabled; the cache component is then omitted from the response.
func NewHealthUseCase(dbGateway db.HealthDBGateway, blobGateway storage.BlobGateway, cacheGateway cache.ResolveCache) UseCase {
	return &healthUseCase{
		dbGateway:    dbGateway,
		blobGateway:  blobGateway,
		cacheGateway: cacheGateway,
	}
}

func (useCase *healthUseCase) CheckHealth() model.HealthResponse {
	dbHealth := useCase.dbGateway.Health()
	blobHealth := useCase.blobGateway.Health()

	overallStatus := model.StatusUp
	if dbHealth.Status != model.StatusUp || blobHealth.Status != model.StatusUp {
		overallStatus = model.StatusDown
	}

	response := model.HealthResponse{
		Status:    overallStatus,
		Database:  dbHealth,
		BlobStore: blobHealth,
	}

	if useCase.cacheGateway != nil {
		cacheHealth := useCase.cacheGateway.Health()
		response.Cache = &cacheHealth
		if cacheHealth.Status != model.StatusUp {
			response.Status = model.StatusDown
		}
	}

	return response
}
