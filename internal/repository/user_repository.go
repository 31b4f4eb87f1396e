package repository

import (
	"aniflow/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserRepository defines the interface for user and profile data operations.
// The profile lives here rather than in its own repository because it shares
// its primary key with the user and never outlives it.
type UserRepository interface {
	Create(user *models.User) error
	FindByID(id uuid.UUID) (*models.User, error)
	FindByUsername(username string) (*models.User, error)
	FindByEmail(email string) (*models.User, error)
	Delete(id uuid.UUID) error

	SaveProfile(profile *models.UserProfile) error
	FindProfile(userID uuid.UUID) (*models.UserProfile, error)
}

// userRepository is the GORM implementation of UserRepository.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new instance of UserRepository in a GORM implementation
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

func (r *userRepository) FindByID(id uuid.UUID) (*models.User, error) {
	var user models.User
	// check for the error if the user is not found
	// prevent returning a zero-value user struct => which make GORM think user is found => erroneous behavior
	// we do it for all query methods
	if err := r.db.First(&user, "user_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByUsername(username string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// Delete removes the user row. The profile, watchlists (and their items),
// ratings and notes go with it through the ON DELETE CASCADE constraints.
func (r *userRepository) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.User{}, "user_id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// SaveProfile creates or updates the profile for its user.
func (r *userRepository) SaveProfile(profile *models.UserProfile) error {
	return r.db.Save(profile).Error
}

func (r *userRepository) FindProfile(userID uuid.UUID) (*models.UserProfile, error) {
	var profile models.UserProfile
	if err := r.db.First(&profile, "user_id = ?", userID).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}
