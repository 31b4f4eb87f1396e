package repository

import (
	"context"
	"fmt"

	"aniflow/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AnimeRepository interface {
	Create(ctx context.Context, anime *models.Anime) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Anime, error)
	SearchByTitle(ctx context.Context, query string, page, pageSize int) ([]models.Anime, int64, error)
	UpdateScores(ctx context.Context, id uuid.UUID, popularityScore, averageRating float64) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type animeRepository struct {
	db *gorm.DB
}

func NewAnimeRepository(db *gorm.DB) AnimeRepository {
	return &animeRepository{db: db}
}

func (r *animeRepository) Create(ctx context.Context, anime *models.Anime) error {
	if err := r.db.WithContext(ctx).Create(anime).Error; err != nil {
		return fmt.Errorf("create anime: %w", err)
	}
	return nil
}

func (r *animeRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Anime, error) {
	var anime models.Anime
	if err := r.db.WithContext(ctx).First(&anime, "anime_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &anime, nil
}

// SearchByTitle matches titles case-insensitively with pagination. The title
// column is indexed, so prefix queries stay cheap.
func (r *animeRepository) SearchByTitle(ctx context.Context, query string, page, pageSize int) ([]models.Anime, int64, error) {
	var (
		animes []models.Anime
		total  int64
	)

	pattern := "%" + query + "%"

	if err := r.db.WithContext(ctx).Model(&models.Anime{}).
		Where("title LIKE ?", pattern).
		Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count anime: %w", err)
	}

	offset := (page - 1) * pageSize
	if err := r.db.WithContext(ctx).
		Where("title LIKE ?", pattern).
		Order("popularity_score DESC").
		Limit(pageSize).
		Offset(offset).
		Find(&animes).Error; err != nil {
		return nil, 0, fmt.Errorf("search anime: %w", err)
	}

	return animes, total, nil
}

// UpdateScores writes the denormalized popularity and rating aggregates kept
// on the anime row.
func (r *animeRepository) UpdateScores(ctx context.Context, id uuid.UUID, popularityScore, averageRating float64) error {
	result := r.db.WithContext(ctx).Model(&models.Anime{}).
		Where("anime_id = ?", id).
		Updates(map[string]interface{}{
			"popularity_score": popularityScore,
			"average_rating":   averageRating,
		})
	if result.Error != nil {
		return fmt.Errorf("update anime scores: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes the anime row; its ratings, notes and watchlist items are
// removed by the ON DELETE CASCADE constraints.
func (r *animeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.Anime{}, "anime_id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("delete anime: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
