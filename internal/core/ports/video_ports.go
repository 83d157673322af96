package ports

import (
	"context"

	"github.com/watchearn/watchearn/internal/core/domain"
)

type VideoRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Video, error)
	List(ctx context.Context) ([]*domain.Video, error)
}

type VideoService interface {
	Get(ctx context.Context, id string) (*domain.Video, error)
	List(ctx context.Context) ([]*domain.Video, error)
}
