package repository

import (
	"errors"

	"aniflow/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RatingRepository interface {
	Create(rating *models.Rating) error
	Update(rating *models.Rating) error
	Delete(userID, animeID uuid.UUID) error
	FindByID(id uuid.UUID) (*models.Rating, error)
	FindByUserAndAnime(userID, animeID uuid.UUID) (*models.Rating, error)
	FindByUser(userID uuid.UUID) ([]models.Rating, error)
	FindByAnime(animeID uuid.UUID, page, pageSize int) ([]models.Rating, int64, error)
	AverageForAnime(animeID uuid.UUID) (float64, error)
	CountForAnime(animeID uuid.UUID) (int64, error)
}

type ratingRepository struct {
	db *gorm.DB
}

func NewRatingRepository(db *gorm.DB) RatingRepository {
	return &ratingRepository{db: db}
}

// Create a new rating
func (r *ratingRepository) Create(rating *models.Rating) error {
	return r.db.Create(rating).Error
}

// Update an existing rating
func (r *ratingRepository) Update(rating *models.Rating) error {
	return r.db.Save(rating).Error
}

// Delete a rating by user and anime
func (r *ratingRepository) Delete(userID, animeID uuid.UUID) error {
	result := r.db.Where("user_id = ? AND anime_id = ?", userID, animeID).Delete(&models.Rating{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("rating not found")
	}
	return nil
}

func (r *ratingRepository) FindByID(id uuid.UUID) (*models.Rating, error) {
	var rating models.Rating
	if err := r.db.First(&rating, "rating_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &rating, nil
}

// FindByUserAndAnime retrieves a user's rating for a specific anime
func (r *ratingRepository) FindByUserAndAnime(userID, animeID uuid.UUID) (*models.Rating, error) {
	var rating models.Rating
	if err := r.db.Where("user_id = ? AND anime_id = ?", userID, animeID).First(&rating).Error; err != nil {
		return nil, err
	}
	return &rating, nil
}

// FindByUser retrieves all ratings a user has written, newest first. This is
// the reverse lookup that replaces navigating from the user row.
func (r *ratingRepository) FindByUser(userID uuid.UUID) ([]models.Rating, error) {
	var ratings []models.Rating
	if err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&ratings).Error; err != nil {
		return nil, err
	}
	return ratings, nil
}

// FindByAnime retrieves all ratings for a specific anime with pagination
func (r *ratingRepository) FindByAnime(animeID uuid.UUID, page, pageSize int) ([]models.Rating, int64, error) {
	var ratings []models.Rating
	var total int64

	// Count total ratings
	if err := r.db.Model(&models.Rating{}).Where("anime_id = ?", animeID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Get paginated ratings
	offset := (page - 1) * pageSize
	err := r.db.Where("anime_id = ?", animeID).
		Order("created_at DESC").
		Limit(pageSize).
		Offset(offset).
		Find(&ratings).Error

	if err != nil {
		return nil, 0, err
	}

	return ratings, total, nil
}

// AverageForAnime calculates the average score for an anime
func (r *ratingRepository) AverageForAnime(animeID uuid.UUID) (float64, error) {
	var avg struct {
		Average float64
	}

	err := r.db.Model(&models.Rating{}).
		Select("COALESCE(AVG(score), 0) as average").
		Where("anime_id = ?", animeID).
		Scan(&avg).Error

	if err != nil {
		return 0, err
	}

	return avg.Average, nil
}

// CountForAnime counts the total number of ratings for an anime
func (r *ratingRepository) CountForAnime(animeID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.Rating{}).Where("anime_id = ?", animeID).Count(&count).Error
	return count, err
}
