package health

import "shorten-api/internal/domain/model"

type UseCase interface {
	CheckHealth() model.HealthResponse
}
