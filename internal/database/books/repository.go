// Package books provides database operations for the book catalog.
//
// # Usage
//
//	repo := books.NewRepository(db)
//	book, err := repo.GetBookByID(ctx, 123)
package books

import (
	"context"

	"gorm.io/gorm"

	"github.com/mrlokans/bookshelf/internal/entities"
)

// Repository handles all book database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new books repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CreateBook inserts book and fills in its generated ID and timestamps.
func (r *Repository) CreateBook(ctx context.Context, book *entities.Book) error {
	return r.db.WithContext(ctx).Create(book).Error
}

// GetBookByID retrieves a book by its ID.
func (r *Repository) GetBookByID(ctx context.Context, id uint) (*entities.Book, error) {
	var book entities.Book
	err := r.db.WithContext(ctx).First(&book, id).Error
	if err != nil {
		return nil, err
	}
	return &book, nil
}

// FindBooksByTitleAndAuthor returns books whose title and author both match exactly.
func (r *Repository) FindBooksByTitleAndAuthor(ctx context.Context, title, author string) ([]entities.Book, error) {
	books := []entities.Book{}
	err := r.db.WithContext(ctx).
		Where("title = ? AND author = ?", title, author).
		Order("id ASC").
		Find(&books).Error
	return books, err
}

// GetAllBooks retrieves the whole catalog ordered by ID.
func (r *Repository) GetAllBooks(ctx context.Context) ([]entities.Book, error) {
	books := []entities.Book{}
	err := r.db.WithContext(ctx).Order("id ASC").Find(&books).Error
	return books, err
}

// UpdateBook persists every field of an existing book.
func (r *Repository) UpdateBook(ctx context.Context, book *entities.Book) error {
	return r.db.WithContext(ctx).Save(book).Error
}
