package services

import (
	"context"
	"fmt"

	"github.com/watchearn/watchearn/internal/core/domain"
	"github.com/watchearn/watchearn/internal/core/ports"
)

type videoService struct {
	repo ports.VideoRepository
}

func NewVideoService(repo ports.VideoRepository) ports.VideoService {
	return &videoService{repo: repo}
}

func (s *videoService) Get(ctx context.Context, id string) (*domain.Video, error) {
	video, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch video: %w", err)
	}
	if video == nil {
		return nil, domain.ErrVideoNotFound
	}
	return video, nil
}

func (s *videoService) List(ctx context.Context) ([]*domain.Video, error) {
	videos, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list videos: %w", err)
	}
	return videos, nil
}
