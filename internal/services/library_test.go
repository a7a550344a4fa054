package services

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/bookshelf/internal/database"
	"github.com/mrlokans/bookshelf/internal/database/books"
	"github.com/mrlokans/bookshelf/internal/database/readinglists"
	"github.com/mrlokans/bookshelf/internal/database/users"
	"github.com/mrlokans/bookshelf/internal/entities"
)

type recordedAudit struct {
	op         string
	entityType string
	entityID   uint
}

type recordingAuditor struct {
	mu     sync.Mutex
	events []recordedAudit
}

func (a *recordingAuditor) record(op, entityType string, id uint) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.events = append(a.events, recordedAudit{op: op, entityType: entityType, entityID: id})
}

func (a *recordingAuditor) LogCreate(_ context.Context, entityType string, id uint, _ string) {
	a.record("create", entityType, id)
}

func (a *recordingAuditor) LogUpdate(_ context.Context, entityType string, id uint, _ string) {
	a.record("update", entityType, id)
}

func (a *recordingAuditor) LogDelete(_ context.Context, entityType string, id uint, _ string) {
	a.record("delete", entityType, id)
}

func setupTestService(t *testing.T) (*LibraryService, *database.Database, *recordingAuditor) {
	t.Helper()
	db, err := database.NewDatabase(filepath.Join(t.TempDir(), "library.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	auditor := &recordingAuditor{}
	svc := NewLibraryService(
		users.NewRepository(db.DB),
		books.NewRepository(db.DB),
		readinglists.NewRepository(db.DB),
		auditor,
	)
	return svc, db, auditor
}

func requireKind(t *testing.T, err error, kind Kind) *Error {
	t.Helper()
	require.Error(t, err)
	var svcErr *Error
	require.True(t, errors.As(err, &svcErr), "expected *services.Error, got %T: %v", err, err)
	require.Equal(t, kind, svcErr.Kind)
	return svcErr
}

func addBook(t *testing.T, svc *LibraryService, title, author string) *entities.Book {
	t.Helper()
	book, err := svc.AddBook(context.Background(), AddBookInput{
		Title: title, Author: author, Genre: "Fiction", PublicationYear: 2020,
	})
	require.NoError(t, err)
	return book
}

func TestLibraryService_CreateUser(t *testing.T) {
	ctx := context.Background()

	t.Run("creates user with generated id", func(t *testing.T) {
		svc, _, auditor := setupTestService(t)

		user, err := svc.CreateUser(ctx, CreateUserInput{Username: "TestUser1", Email: "test1@example.com"})

		require.NoError(t, err)
		assert.NotZero(t, user.ID)
		assert.Equal(t, []recordedAudit{{"create", EntityUser, user.ID}}, auditor.events)
	})

	t.Run("rejects duplicate email", func(t *testing.T) {
		svc, _, _ := setupTestService(t)

		_, err := svc.CreateUser(ctx, CreateUserInput{Username: "TestUser2", Email: "test@example.com"})
		require.NoError(t, err)

		_, err = svc.CreateUser(ctx, CreateUserInput{Username: "AnotherUser", Email: "test@example.com"})
		svcErr := requireKind(t, err, KindConflict)
		assert.Equal(t, MsgEmailExists, svcErr.Message)
	})

	t.Run("reports missing fields before touching the store", func(t *testing.T) {
		svc, db, _ := setupTestService(t)
		require.NoError(t, db.Close())

		_, err := svc.CreateUser(ctx, CreateUserInput{})
		svcErr := requireKind(t, err, KindValidation)
		assert.Equal(t, []string{"username is required!", "email is required!"}, svcErr.Errors)
	})

	t.Run("persistence failure is internal", func(t *testing.T) {
		svc, db, _ := setupTestService(t)
		require.NoError(t, db.Close())

		_, err := svc.CreateUser(ctx, CreateUserInput{Username: "u", Email: "u@example.com"})
		require.Error(t, err)
		assert.Equal(t, KindInternal, KindOf(err))
	})
}

func TestLibraryService_AddBook(t *testing.T) {
	svc, _, auditor := setupTestService(t)
	ctx := context.Background()

	book, err := svc.AddBook(ctx, AddBookInput{Title: "Book Title", Author: "Book Author", Genre: "Fiction", PublicationYear: 2020})
	require.NoError(t, err)
	assert.NotZero(t, book.ID)
	assert.Equal(t, 2020, book.PublicationYear)
	assert.Equal(t, []recordedAudit{{"create", EntityBook, book.ID}}, auditor.events)

	_, err = svc.AddBook(ctx, AddBookInput{Title: "Incomplete Book"})
	svcErr := requireKind(t, err, KindValidation)
	assert.Contains(t, svcErr.Errors, "author is required!")
}

func TestLibraryService_SearchBooks(t *testing.T) {
	svc, _, _ := setupTestService(t)
	ctx := context.Background()

	addBook(t, svc, "Dune", "Frank Herbert")
	addBook(t, svc, "Dune", "Frank Herbert")
	addBook(t, svc, "Emma", "Jane Austen")

	t.Run("returns every exact match", func(t *testing.T) {
		found, err := svc.SearchBooks(ctx, SearchBooksInput{Title: "Dune", Author: "Frank Herbert"})
		require.NoError(t, err)
		assert.Len(t, found, 2)
	})

	t.Run("no match is not found", func(t *testing.T) {
		_, err := svc.SearchBooks(ctx, SearchBooksInput{Title: "Dune", Author: "Jane Austen"})
		svcErr := requireKind(t, err, KindNotFound)
		assert.Equal(t, MsgNoBooksFound, svcErr.Message)
	})

	t.Run("missing parameters", func(t *testing.T) {
		_, err := svc.SearchBooks(ctx, SearchBooksInput{Author: "Frank Herbert"})
		svcErr := requireKind(t, err, KindValidation)
		assert.Equal(t, []string{"book title is required!"}, svcErr.Errors)
	})
}

func TestLibraryService_AddToReadingList(t *testing.T) {
	svc, _, _ := setupTestService(t)
	ctx := context.Background()

	user, err := svc.CreateUser(ctx, CreateUserInput{Username: "Reader", Email: "reader@example.com"})
	require.NoError(t, err)
	book := addBook(t, svc, "Reading List Book", "Author")

	t.Run("creates entry", func(t *testing.T) {
		entry, err := svc.AddToReadingList(ctx, AddToReadingListInput{UserID: FlexInt(user.ID), BookID: FlexInt(book.ID), Status: "Reading"})
		require.NoError(t, err)
		assert.NotZero(t, entry.ID)
		assert.Equal(t, "Reading", entry.Status)
	})

	invalid := []struct {
		name  string
		input AddToReadingListInput
	}{
		{"unknown user", AddToReadingListInput{UserID: 999, BookID: FlexInt(book.ID)}},
		{"unknown book", AddToReadingListInput{UserID: FlexInt(user.ID), BookID: 999}},
		{"both unknown", AddToReadingListInput{UserID: 999, BookID: 999}},
		{"negative user id", AddToReadingListInput{UserID: -1, BookID: FlexInt(book.ID)}},
		{"ids missing", AddToReadingListInput{Status: "Reading"}},
	}
	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.AddToReadingList(ctx, tt.input)
			svcErr := requireKind(t, err, KindInvalidReference)
			assert.Equal(t, MsgInvalidUserOrBook, svcErr.Message)
		})
	}
}

func TestLibraryService_UpdateBook(t *testing.T) {
	svc, _, auditor := setupTestService(t)
	ctx := context.Background()
	book := addBook(t, svc, "Old Title", "Author")

	t.Run("requires title and genre", func(t *testing.T) {
		_, err := svc.UpdateBook(ctx, 999, UpdateBookInput{Title: "Only Title"})
		svcErr := requireKind(t, err, KindInvalidInput)
		assert.Equal(t, MsgTitleAndGenreRequired, svcErr.Message)
	})

	t.Run("unknown book", func(t *testing.T) {
		_, err := svc.UpdateBook(ctx, 999, UpdateBookInput{Title: "T", Genre: "G"})
		svcErr := requireKind(t, err, KindNotFound)
		assert.Equal(t, MsgBookNotFound, svcErr.Message)
	})

	t.Run("zero id never matches", func(t *testing.T) {
		_, err := svc.UpdateBook(ctx, 0, UpdateBookInput{Title: "T", Genre: "G"})
		requireKind(t, err, KindNotFound)
	})

	t.Run("overwrites title and genre", func(t *testing.T) {
		updated, err := svc.UpdateBook(ctx, book.ID, UpdateBookInput{Title: "New Title", Genre: "Essay"})
		require.NoError(t, err)
		assert.Equal(t, "New Title", updated.Title)
		assert.Equal(t, "Essay", updated.Genre)
		assert.Equal(t, "Author", updated.Author)
		assert.Contains(t, auditor.events, recordedAudit{"update", EntityBook, book.ID})
	})
}

func TestLibraryService_GetReadingList(t *testing.T) {
	svc, _, _ := setupTestService(t)
	ctx := context.Background()

	user, err := svc.CreateUser(ctx, CreateUserInput{Username: "Reader", Email: "reader@example.com"})
	require.NoError(t, err)
	book := addBook(t, svc, "Book", "Author")
	_, err = svc.AddToReadingList(ctx, AddToReadingListInput{UserID: FlexInt(user.ID), BookID: FlexInt(book.ID), Status: "Reading"})
	require.NoError(t, err)

	entries, err := svc.GetReadingList(ctx, user.ID)
	require.NoError(t, err)
	assert.Len(t, entries, 1)

	for _, id := range []uint{0, 999} {
		entries, err := svc.GetReadingList(ctx, id)
		require.NoError(t, err)
		assert.NotNil(t, entries)
		assert.Empty(t, entries)
	}
}

func TestLibraryService_RemoveFromReadingList(t *testing.T) {
	svc, _, auditor := setupTestService(t)
	ctx := context.Background()

	user, err := svc.CreateUser(ctx, CreateUserInput{Username: "Reader", Email: "reader@example.com"})
	require.NoError(t, err)
	book := addBook(t, svc, "Book", "Author")
	entry, err := svc.AddToReadingList(ctx, AddToReadingListInput{UserID: FlexInt(user.ID), BookID: FlexInt(book.ID), Status: "Reading"})
	require.NoError(t, err)

	t.Run("unknown entry is an invalid reference", func(t *testing.T) {
		err := svc.RemoveFromReadingList(ctx, 999)
		svcErr := requireKind(t, err, KindInvalidReference)
		assert.Equal(t, MsgReadingListNotFound, svcErr.Message)
	})

	t.Run("removes entry", func(t *testing.T) {
		require.NoError(t, svc.RemoveFromReadingList(ctx, entry.ID))

		entries, err := svc.GetReadingList(ctx, user.ID)
		require.NoError(t, err)
		assert.Empty(t, entries)
		assert.Contains(t, auditor.events, recordedAudit{"delete", EntityReadingList, entry.ID})
	})

	t.Run("second removal fails", func(t *testing.T) {
		err := svc.RemoveFromReadingList(ctx, entry.ID)
		requireKind(t, err, KindInvalidReference)
	})
}

func TestLibraryService_NilAuditor(t *testing.T) {
	db, err := database.NewDatabase(filepath.Join(t.TempDir(), "noaudit.db"))
	require.NoError(t, err)
	defer db.Close()

	svc := NewLibraryService(users.NewRepository(db.DB), books.NewRepository(db.DB), readinglists.NewRepository(db.DB), nil)

	_, err = svc.CreateUser(context.Background(), CreateUserInput{Username: "u", Email: "u@example.com"})
	assert.NoError(t, err)
}
