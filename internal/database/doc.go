// Package database provides the data access layer for the application.
//
// # Architecture
//
// The database layer is organized into record-kind sub-packages:
//
//	database/
//	├── database.go      # Connection setup (sqlite or postgres), migrations
//	├── users/           # User creation and lookups
//	├── books/           # Book catalog CRUD
//	├── readinglists/    # Reading list entries
//	└── audit/           # Audit trail events
//
// # Using Sub-packages
//
// Each sub-package provides a Repository type built on the shared *gorm.DB:
//
//	db, err := database.NewDatabase("./bookshelf.db")
//
//	usersRepo := users.NewRepository(db.DB)
//	booksRepo := books.NewRepository(db.DB)
//
//	user, err := usersRepo.GetUserByID(ctx, 1)
//
// Single-record finders return gorm.ErrRecordNotFound (possibly wrapped)
// when nothing matches; list finders return an empty slice.
//
// # Interface Implementations
//
//   - users.Repository: implements services.UserStore
//   - books.Repository: implements services.BookStore
//   - readinglists.Repository: implements services.ReadingListStore
//   - audit.Repository: backs audit.Service and the cleanup task
package database
