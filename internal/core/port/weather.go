package port

import (
	"context"
	"tempest/internal/core/domain"
)

type WeatherProvider interface {
	// GetByCity returns the current weather for a free-text location, or domain.ErrLocationNotFound.
	GetByCity(ctx context.Context, city string) (*domain.WeatherReport, error)
}
