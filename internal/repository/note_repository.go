package repository

import (
	"context"
	"fmt"

	"aniflow/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NoteRepository interface {
	Create(ctx context.Context, note *models.Note) error
	Update(ctx context.Context, note *models.Note) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Note, error)
	FindByUser(ctx context.Context, userID uuid.UUID) ([]models.Note, error)
	FindByUserAndAnime(ctx context.Context, userID, animeID uuid.UUID) ([]models.Note, error)
}

type noteRepository struct {
	db *gorm.DB
}

func NewNoteRepository(db *gorm.DB) NoteRepository {
	return &noteRepository{db: db}
}

func (r *noteRepository) Create(ctx context.Context, note *models.Note) error {
	if err := r.db.WithContext(ctx).Create(note).Error; err != nil {
		return fmt.Errorf("create note: %w", err)
	}
	return nil
}

// Update rewrites the note body; updated_at is refreshed by GORM.
func (r *noteRepository) Update(ctx context.Context, note *models.Note) error {
	if err := r.db.WithContext(ctx).Save(note).Error; err != nil {
		return fmt.Errorf("update note: %w", err)
	}
	return nil
}

func (r *noteRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.Note{}, "note_id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("delete note: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *noteRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Note, error) {
	var note models.Note
	if err := r.db.WithContext(ctx).First(&note, "note_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &note, nil
}

// FindByUser lists a user's private notes, most recently edited first.
func (r *noteRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]models.Note, error) {
	var notes []models.Note
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("updated_at DESC").
		Find(&notes).Error; err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	return notes, nil
}

func (r *noteRepository) FindByUserAndAnime(ctx context.Context, userID, animeID uuid.UUID) ([]models.Note, error) {
	var notes []models.Note
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND anime_id = ?", userID, animeID).
		Order("updated_at DESC").
		Find(&notes).Error; err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	return notes, nil
}
