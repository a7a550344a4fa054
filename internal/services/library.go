package services

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/mrlokans/bookshelf/internal/entities"
)

// Entity names recorded in the audit trail.
const (
	EntityUser        = "user"
	EntityBook        = "book"
	EntityReadingList = "reading_list"
)

// LibraryService implements the user, catalog and reading list operations.
// Every method performs at most one write; failures come back as *Error for
// expected outcomes and as wrapped plain errors for persistence problems.
type LibraryService struct {
	users   UserStore
	books   BookStore
	lists   ReadingListStore
	auditor Auditor
}

// NewLibraryService creates a LibraryService. auditor may be nil.
func NewLibraryService(users UserStore, books BookStore, lists ReadingListStore, auditor Auditor) *LibraryService {
	return &LibraryService{
		users:   users,
		books:   books,
		lists:   lists,
		auditor: auditor,
	}
}

// CreateUser registers a user after checking that the email is unused.
// The check and the insert are not atomic: concurrent requests with the same
// email can both succeed.
func (s *LibraryService) CreateUser(ctx context.Context, in CreateUserInput) (*entities.User, error) {
	if errs := ValidateUser(in); len(errs) > 0 {
		return nil, ValidationFailed(errs...)
	}

	existing, err := s.users.FindUsersByEmail(ctx, in.Email)
	if err != nil {
		return nil, fmt.Errorf("find users by email: %w", err)
	}
	if len(existing) > 0 {
		return nil, newError(KindConflict, MsgEmailExists)
	}

	user, err := s.users.CreateUser(ctx, in.Username, in.Email)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	if s.auditor != nil {
		s.auditor.LogCreate(ctx, EntityUser, user.ID, user.Username)
	}
	return user, nil
}

// AddBook adds a book to the catalog.
func (s *LibraryService) AddBook(ctx context.Context, in AddBookInput) (*entities.Book, error) {
	if errs := ValidateBook(in); len(errs) > 0 {
		return nil, ValidationFailed(errs...)
	}

	book := &entities.Book{
		Title:           in.Title,
		Author:          in.Author,
		Genre:           in.Genre,
		PublicationYear: int(in.PublicationYear),
	}
	if err := s.books.CreateBook(ctx, book); err != nil {
		return nil, fmt.Errorf("create book: %w", err)
	}

	if s.auditor != nil {
		s.auditor.LogCreate(ctx, EntityBook, book.ID, book.Title)
	}
	return book, nil
}

// SearchBooks returns the books matching title and author exactly.
// An empty result is reported as KindNotFound.
func (s *LibraryService) SearchBooks(ctx context.Context, in SearchBooksInput) ([]entities.Book, error) {
	if errs := ValidateSearch(in); len(errs) > 0 {
		return nil, ValidationFailed(errs...)
	}

	books, err := s.books.FindBooksByTitleAndAuthor(ctx, in.Title, in.Author)
	if err != nil {
		return nil, fmt.Errorf("find books by title and author: %w", err)
	}
	if len(books) == 0 {
		return nil, newError(KindNotFound, MsgNoBooksFound)
	}
	return books, nil
}

// AddToReadingList creates an entry once both the user and the book exist.
func (s *LibraryService) AddToReadingList(ctx context.Context, in AddToReadingListInput) (*entities.ReadingList, error) {
	userID, bookID := in.UserID.ID(), in.BookID.ID()
	userExists, err := s.userExists(ctx, userID)
	if err != nil {
		return nil, err
	}
	bookExists, err := s.bookExists(ctx, bookID)
	if err != nil {
		return nil, err
	}
	if !userExists || !bookExists {
		return nil, newError(KindInvalidReference, MsgInvalidUserOrBook)
	}

	entry := &entities.ReadingList{
		UserID: userID,
		BookID: bookID,
		Status: in.Status,
	}
	if err := s.lists.CreateReadingList(ctx, entry); err != nil {
		return nil, fmt.Errorf("create reading list entry: %w", err)
	}

	if s.auditor != nil {
		s.auditor.LogCreate(ctx, EntityReadingList, entry.ID, describeEntry(entry))
	}
	return entry, nil
}

// UpdateBook overwrites the title and genre of an existing book.
// Both fields are checked before the book is looked up. A zero bookID never
// matches a record.
func (s *LibraryService) UpdateBook(ctx context.Context, bookID uint, in UpdateBookInput) (*entities.Book, error) {
	if err := validate.Struct(in); err != nil {
		return nil, newError(KindInvalidInput, MsgTitleAndGenreRequired)
	}

	book, err := s.findBook(ctx, bookID)
	if err != nil {
		return nil, err
	}
	if book == nil {
		return nil, newError(KindNotFound, MsgBookNotFound)
	}

	book.Title = in.Title
	book.Genre = in.Genre
	if err := s.books.UpdateBook(ctx, book); err != nil {
		return nil, fmt.Errorf("update book %d: %w", bookID, err)
	}

	if s.auditor != nil {
		s.auditor.LogUpdate(ctx, EntityBook, book.ID, book.Title)
	}
	return book, nil
}

// GetReadingList returns every entry of the user's reading list.
// Unknown users get an empty list rather than an error.
func (s *LibraryService) GetReadingList(ctx context.Context, userID uint) ([]entities.ReadingList, error) {
	if userID == 0 {
		return []entities.ReadingList{}, nil
	}

	entries, err := s.lists.GetReadingListsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get reading list for user %d: %w", userID, err)
	}
	if entries == nil {
		entries = []entities.ReadingList{}
	}
	return entries, nil
}

// RemoveFromReadingList deletes one entry. A missing entry is reported as
// KindInvalidReference.
func (s *LibraryService) RemoveFromReadingList(ctx context.Context, readingListID uint) error {
	if readingListID == 0 {
		return newError(KindInvalidReference, MsgReadingListNotFound)
	}

	entry, err := s.lists.GetReadingListByID(ctx, readingListID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return newError(KindInvalidReference, MsgReadingListNotFound)
	}
	if err != nil {
		return fmt.Errorf("get reading list entry %d: %w", readingListID, err)
	}

	if err := s.lists.DeleteReadingList(ctx, entry.ID); err != nil {
		return fmt.Errorf("delete reading list entry %d: %w", entry.ID, err)
	}

	if s.auditor != nil {
		s.auditor.LogDelete(ctx, EntityReadingList, entry.ID, describeEntry(entry))
	}
	return nil
}

func (s *LibraryService) userExists(ctx context.Context, id uint) (bool, error) {
	if id == 0 {
		return false, nil
	}
	_, err := s.users.GetUserByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("get user %d: %w", id, err)
	}
	return true, nil
}

func (s *LibraryService) bookExists(ctx context.Context, id uint) (bool, error) {
	book, err := s.findBook(ctx, id)
	return book != nil, err
}

// findBook returns (nil, nil) when no book has the given id.
func (s *LibraryService) findBook(ctx context.Context, id uint) (*entities.Book, error) {
	if id == 0 {
		return nil, nil
	}
	book, err := s.books.GetBookByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get book %d: %w", id, err)
	}
	return book, nil
}

func describeEntry(entry *entities.ReadingList) string {
	return fmt.Sprintf("book %d for user %d (%s)", entry.BookID, entry.UserID, entry.Status)
}
