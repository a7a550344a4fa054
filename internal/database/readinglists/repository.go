// Package readinglists provides database operations for users' reading lists.
package readinglists

import (
	"context"

	"gorm.io/gorm"

	"github.com/mrlokans/bookshelf/internal/entities"
)

// Repository handles reading list entry persistence.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CreateReadingList inserts a new entry. References are not checked here.
func (r *Repository) CreateReadingList(ctx context.Context, entry *entities.ReadingList) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *Repository) GetReadingListByID(ctx context.Context, id uint) (*entities.ReadingList, error) {
	var entry entities.ReadingList
	if err := r.db.WithContext(ctx).First(&entry, id).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

// GetReadingListsByUser returns every entry owned by userID, oldest first.
// Unknown users yield an empty, non-nil slice.
func (r *Repository) GetReadingListsByUser(ctx context.Context, userID uint) ([]entities.ReadingList, error) {
	entries := []entities.ReadingList{}
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&entries).Error
	return entries, err
}

// DeleteReadingList permanently removes the entry with the given ID.
func (r *Repository) DeleteReadingList(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&entities.ReadingList{}, id).Error
}
