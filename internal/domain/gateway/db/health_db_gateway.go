package db

import "shorten-api/internal/domain/model"

type HealthDBGateway interface {
	Health() model.ComponentHealthStatus
}
