package interfaces

// Compile-time interface implementation checks.
// To verify all checks pass: go build ./internal/interfaces/...

import (
	"github.com/mrlokans/bookshelf/internal/audit"
	"github.com/mrlokans/bookshelf/internal/database/books"
	"github.com/mrlokans/bookshelf/internal/database/readinglists"
	"github.com/mrlokans/bookshelf/internal/database/users"
	"github.com/mrlokans/bookshelf/internal/http"
	"github.com/mrlokans/bookshelf/internal/scheduler"
	"github.com/mrlokans/bookshelf/internal/services"
	"github.com/mrlokans/bookshelf/internal/tasks"
)

// =============================================================================
// Data Access Layer
// =============================================================================

var _ services.UserStore = (*users.Repository)(nil)
var _ services.BookStore = (*books.Repository)(nil)
var _ services.ReadingListStore = (*readinglists.Repository)(nil)

// =============================================================================
// HTTP Boundary
// =============================================================================

var _ http.Library = (*services.LibraryService)(nil)

// =============================================================================
// Audit Trail and Maintenance
// =============================================================================

var _ services.Auditor = (*audit.Service)(nil)
var _ tasks.AuditEventCleaner = (*audit.Service)(nil)
var _ scheduler.Enqueuer = (*tasks.Client)(nil)
