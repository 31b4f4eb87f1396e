package repository

import (
	"context"
	"fmt"

	"aniflow/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type WatchlistRepository interface {
	Create(ctx context.Context, watchlist *models.Watchlist) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Watchlist, error)
	FindByUser(ctx context.Context, userID uuid.UUID) ([]models.Watchlist, error)
	Rename(ctx context.Context, id uuid.UUID, name string) error
	Delete(ctx context.Context, id uuid.UUID) error

	AddItem(ctx context.Context, item *models.WatchlistItem) error
	Items(ctx context.Context, watchlistID uuid.UUID) ([]models.WatchlistItem, error)
	SetCompleted(ctx context.Context, itemID uuid.UUID, completed bool) error
	IncrementRewatch(ctx context.Context, itemID uuid.UUID) error
	SetPriority(ctx context.Context, itemID uuid.UUID, rank int) error
	RemoveItem(ctx context.Context, itemID uuid.UUID) error
}

type watchlistRepository struct {
	db *gorm.DB
}

func NewWatchlistRepository(db *gorm.DB) WatchlistRepository {
	return &watchlistRepository{db: db}
}

func (r *watchlistRepository) Create(ctx context.Context, watchlist *models.Watchlist) error {
	if err := r.db.WithContext(ctx).Create(watchlist).Error; err != nil {
		return fmt.Errorf("create watchlist: %w", err)
	}
	return nil
}

func (r *watchlistRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Watchlist, error) {
	var watchlist models.Watchlist
	if err := r.db.WithContext(ctx).First(&watchlist, "watchlist_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &watchlist, nil
}

// FindByUser lists a user's watchlists, oldest first so the default list
// created at signup stays on top.
func (r *watchlistRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]models.Watchlist, error) {
	var watchlists []models.Watchlist
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&watchlists).Error; err != nil {
		return nil, fmt.Errorf("list watchlists: %w", err)
	}
	return watchlists, nil
}

func (r *watchlistRepository) Rename(ctx context.Context, id uuid.UUID, name string) error {
	result := r.db.WithContext(ctx).Model(&models.Watchlist{}).
		Where("watchlist_id = ?", id).
		Update("name", name)
	if result.Error != nil {
		return fmt.Errorf("rename watchlist: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes the watchlist; its items go with it through the
// ON DELETE CASCADE constraint.
func (r *watchlistRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.Watchlist{}, "watchlist_id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("delete watchlist: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *watchlistRepository) AddItem(ctx context.Context, item *models.WatchlistItem) error {
	if err := r.db.WithContext(ctx).Create(item).Error; err != nil {
		return fmt.Errorf("add watchlist item: %w", err)
	}
	return nil
}

// Items lists the entries of a watchlist ordered by priority rank, with
// unranked entries last in the order they were added.
func (r *watchlistRepository) Items(ctx context.Context, watchlistID uuid.UUID) ([]models.WatchlistItem, error) {
	var items []models.WatchlistItem
	if err := r.db.WithContext(ctx).
		Where("watchlist_id = ?", watchlistID).
		Order("priority_rank IS NULL, priority_rank ASC, added_at ASC").
		Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list watchlist items: %w", err)
	}
	return items, nil
}

func (r *watchlistRepository) SetCompleted(ctx context.Context, itemID uuid.UUID, completed bool) error {
	return r.updateItem(ctx, itemID, map[string]interface{}{"completed": completed})
}

// IncrementRewatch bumps the rewatch counter atomically in SQL so two
// concurrent updates never lose a rewatch.
func (r *watchlistRepository) IncrementRewatch(ctx context.Context, itemID uuid.UUID) error {
	return r.updateItem(ctx, itemID, map[string]interface{}{
		"rewatch_count": gorm.Expr("rewatch_count + 1"),
	})
}

func (r *watchlistRepository) SetPriority(ctx context.Context, itemID uuid.UUID, rank int) error {
	return r.updateItem(ctx, itemID, map[string]interface{}{"priority_rank": rank})
}

func (r *watchlistRepository) RemoveItem(ctx context.Context, itemID uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.WatchlistItem{}, "watchlist_item_id = ?", itemID)
	if result.Error != nil {
		return fmt.Errorf("remove watchlist item: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *watchlistRepository) updateItem(ctx context.Context, itemID uuid.UUID, values map[string]interface{}) error {
	result := r.db.WithContext(ctx).Model(&models.WatchlistItem{}).
		Where("watchlist_item_id = ?", itemID).
		Updates(values)
	if result.Error != nil {
		return fmt.Errorf("update watchlist item: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
