// Package interfaces documents the core abstractions of the application and
// holds compile-time checks that the concrete types implement them.
//
// # Data Access
//
//   - UserStore, BookStore, ReadingListStore (internal/services/interfaces.go):
//     implemented by the gorm repositories under internal/database.
//
// # HTTP Boundary
//
//   - UserCreator, BookCatalog, ReadingListManager (internal/http/stores.go):
//     the slice of LibraryService each controller calls. Library combines them.
//
// # Audit Trail
//
//   - services.Auditor: records successful mutations, implemented by
//     audit.Service. Pass nil to disable auditing.
//   - tasks.AuditEventCleaner: deletes expired events and records the
//     maintenance run, also implemented by audit.Service.
//   - scheduler.Enqueuer: hands a cleanup run to the task queue, implemented
//     by tasks.Client.
//
// # Adding a Record Kind
//
//  1. Add the entity to internal/entities and to database.Models.
//  2. Add a repository package under internal/database.
//  3. Declare the store interface in internal/services and use it from a
//     service method that returns *services.Error for expected failures.
//  4. Add a controller in internal/http and register its routes in NewRouter.
//  5. Add a compile-time check here.
package interfaces
