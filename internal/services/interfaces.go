package services

import (
	"context"

	"github.com/mrlokans/bookshelf/internal/entities"
)

// UserStore provides user persistence.
// Implemented by database/users.Repository.
type UserStore interface {
	CreateUser(ctx context.Context, username, email string) (*entities.User, error)
	GetUserByID(ctx context.Context, id uint) (*entities.User, error)
	FindUsersByEmail(ctx context.Context, email string) ([]entities.User, error)
}

// BookStore provides book catalog persistence.
// Implemented by database/books.Repository.
type BookStore interface {
	CreateBook(ctx context.Context, book *entities.Book) error
	GetBookByID(ctx context.Context, id uint) (*entities.Book, error)
	FindBooksByTitleAndAuthor(ctx context.Context, title, author string) ([]entities.Book, error)
	UpdateBook(ctx context.Context, book *entities.Book) error
}

// ReadingListStore provides reading list persistence.
// Implemented by database/readinglists.Repository.
type ReadingListStore interface {
	CreateReadingList(ctx context.Context, entry *entities.ReadingList) error
	GetReadingListByID(ctx context.Context, id uint) (*entities.ReadingList, error)
	GetReadingListsByUser(ctx context.Context, userID uint) ([]entities.ReadingList, error)
	DeleteReadingList(ctx context.Context, id uint) error
}

// Auditor records successful mutations. Implemented by audit.Service.
type Auditor interface {
	LogCreate(ctx context.Context, entityType string, entityID uint, name string)
	LogUpdate(ctx context.Context, entityType string, entityID uint, name string)
	LogDelete(ctx context.Context, entityType string, entityID uint, name string)
}
