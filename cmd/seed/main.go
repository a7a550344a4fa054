// Command seed fills a database with sample users, books and reading lists.
// Usage: go run ./cmd/seed [-db path/to/bookshelf.db] [-fresh]
package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/mrlokans/bookshelf/internal/config"
	"github.com/mrlokans/bookshelf/internal/database"
	"github.com/mrlokans/bookshelf/internal/database/books"
	"github.com/mrlokans/bookshelf/internal/database/readinglists"
	"github.com/mrlokans/bookshelf/internal/database/users"
	"github.com/mrlokans/bookshelf/internal/entities"
)

type sampleUser struct {
	Username string
	Email    string
	// Indexes into sampleBooks with the status of each entry.
	Reading map[int]string
}

var sampleBooks = []entities.Book{
	{Title: "Pride and Prejudice", Author: "Jane Austen", Genre: "Romance", PublicationYear: 1813},
	{Title: "Moby-Dick", Author: "Herman Melville", Genre: "Adventure", PublicationYear: 1851},
	{Title: "Meditations", Author: "Marcus Aurelius", Genre: "Philosophy", PublicationYear: 180},
	{Title: "The Time Machine", Author: "H. G. Wells", Genre: "Science Fiction", PublicationYear: 1895},
	{Title: "Frankenstein", Author: "Mary Shelley", Genre: "Gothic", PublicationYear: 1818},
}

var sampleUsers = []sampleUser{
	{
		Username: "alice",
		Email:    "alice@example.com",
		Reading: map[int]string{
			0: entities.ReadingStatusCompleted,
			2: entities.ReadingStatusReading,
		},
	},
	{
		Username: "bob",
		Email:    "bob@example.com",
		Reading: map[int]string{
			1: entities.ReadingStatusWantToRead,
			3: entities.ReadingStatusReading,
			4: entities.ReadingStatusWantToRead,
		},
	},
}

type readingListCreator interface {
	CreateReadingList(ctx context.Context, entry *entities.ReadingList) error
}

// addReadingList saves the user's sample entries and returns how many were
// stored. Entries whose book was not saved are skipped.
func addReadingList(ctx context.Context, lists readingListCreator, user *entities.User, bookIDs []uint, reading map[int]string) int {
	created := 0
	for idx, status := range reading {
		if idx >= len(bookIDs) || bookIDs[idx] == 0 {
			continue
		}
		entry := &entities.ReadingList{UserID: user.ID, BookID: bookIDs[idx], Status: status}
		if err := lists.CreateReadingList(ctx, entry); err != nil {
			log.Printf("Failed to add book %d for %s: %v", bookIDs[idx], user.Username, err)
			continue
		}
		created++
	}
	return created
}

func main() {
	cfg := config.NewConfig()

	dbPath := flag.String("db", cfg.Database.Path, "path to the SQLite database file")
	fresh := flag.Bool("fresh", false, "delete the database file before seeding")
	flag.Parse()

	if *fresh {
		if err := os.Remove(*dbPath); err != nil && !os.IsNotExist(err) {
			log.Fatalf("Failed to remove existing database: %v", err)
		}
	}

	log.Printf("Seeding database at %s...", *dbPath)

	db, err := database.NewDatabase(*dbPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	ctx := context.Background()
	bookRepo := books.NewRepository(db.DB)
	userRepo := users.NewRepository(db.DB)
	listRepo := readinglists.NewRepository(db.DB)

	catalog, err := bookRepo.GetAllBooks(ctx)
	if err != nil {
		log.Fatalf("Failed to read catalog: %v", err)
	}
	if len(catalog) > 0 {
		log.Printf("Catalog already has %d books, nothing to do (use -fresh to start over)", len(catalog))
		return
	}

	bookIDs := make([]uint, len(sampleBooks))
	for i := range sampleBooks {
		book := sampleBooks[i]
		if err := bookRepo.CreateBook(ctx, &book); err != nil {
			log.Printf("Failed to save book %s: %v", book.Title, err)
			continue
		}
		bookIDs[i] = book.ID
		log.Printf("Saved: %s by %s", book.Title, book.Author)
	}

	for _, su := range sampleUsers {
		existing, err := userRepo.FindUsersByEmail(ctx, su.Email)
		if err != nil {
			log.Fatalf("Failed to look up %s: %v", su.Email, err)
		}
		if len(existing) > 0 {
			log.Printf("Skipping %s: email already exists", su.Email)
			continue
		}

		user, err := userRepo.CreateUser(ctx, su.Username, su.Email)
		if err != nil {
			log.Printf("Failed to create user %s: %v", su.Username, err)
			continue
		}

		created := addReadingList(ctx, listRepo, user, bookIDs, su.Reading)
		log.Printf("Created user %s with %d of %d reading list entries", user.Username, created, len(su.Reading))
	}

	log.Println("Database seeded successfully!")
}
