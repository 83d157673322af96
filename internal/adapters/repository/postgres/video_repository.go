package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/watchearn/watchearn/internal/core/domain"
	"github.com/watchearn/watchearn/internal/core/ports"
)

type videoRepository struct {
	db *sql.DB
}

func NewVideoRepository(db *sql.DB) ports.VideoRepository {
	return &videoRepository{db: db}
}

func (r *videoRepository) GetByID(ctx context.Context, id string) (*domain.Video, error) {
	query := `
		SELECT id, title, description, url, thumbnail, reward_min, reward_max, created_at
		FROM videos
		WHERE id = $1
	`
	video := &domain.Video{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&video.ID,
		&video.Title,
		&video.Description,
		&video.URL,
		&video.Thumbnail,
		&video.RewardMin,
		&video.RewardMax,
		&video.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get video: %w", err)
	}
	return video, nil
}

func (r *videoRepository) List(ctx context.Context) ([]*domain.Video, error) {
	query := `
		SELECT id, title, description, url, thumbnail, reward_min, reward_max, created_at
		FROM videos
		ORDER BY created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list videos: %w", err)
	}
	defer rows.Close()

	var videos []*domain.Video
	for rows.Next() {
		video := &domain.Video{}
		if err := rows.Scan(
			&video.ID,
			&video.Title,
			&video.Description,
			&video.URL,
			&video.Thumbnail,
			&video.RewardMin,
			&video.RewardMax,
			&video.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan video: %w", err)
		}
		videos = append(videos, video)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating videos: %w", err)
	}

	return videos, nil
}
