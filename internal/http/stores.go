package http

import (
	"context"

	"github.com/mrlokans/bookshelf/internal/entities"
	"github.com/mrlokans/bookshelf/internal/services"
)

// Each controller depends on the narrow slice of the library service it
// calls. *services.LibraryService satisfies all of them.

// UserCreator registers users.
type UserCreator interface {
	CreateUser(ctx context.Context, in services.CreateUserInput) (*entities.User, error)
}

// BookCatalog manages the book catalog.
type BookCatalog interface {
	AddBook(ctx context.Context, in services.AddBookInput) (*entities.Book, error)
	SearchBooks(ctx context.Context, in services.SearchBooksInput) ([]entities.Book, error)
	UpdateBook(ctx context.Context, bookID uint, in services.UpdateBookInput) (*entities.Book, error)
}

// ReadingListManager manages per-user reading lists.
type ReadingListManager interface {
	AddToReadingList(ctx context.Context, in services.AddToReadingListInput) (*entities.ReadingList, error)
	GetReadingList(ctx context.Context, userID uint) ([]entities.ReadingList, error)
	RemoveFromReadingList(ctx context.Context, readingListID uint) error
}

// Library combines every capability the router wires.
type Library interface {
	UserCreator
	BookCatalog
	ReadingListManager
}
