package entrypoint

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/cors"

	"github.com/mrlokans/bookshelf/internal/audit"
	"github.com/mrlokans/bookshelf/internal/config"
	"github.com/mrlokans/bookshelf/internal/database"
	auditrepo "github.com/mrlokans/bookshelf/internal/database/audit"
	"github.com/mrlokans/bookshelf/internal/database/books"
	"github.com/mrlokans/bookshelf/internal/database/readinglists"
	"github.com/mrlokans/bookshelf/internal/database/users"
	http_controllers "github.com/mrlokans/bookshelf/internal/http"
	"github.com/mrlokans/bookshelf/internal/readonly"
	"github.com/mrlokans/bookshelf/internal/scheduler"
	"github.com/mrlokans/bookshelf/internal/services"
	"github.com/mrlokans/bookshelf/internal/tasks"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

// WithCORS wraps handler with the configured cross-origin policy.
func WithCORS(handler http.Handler, cfg config.CORS) http.Handler {
	c := cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Origin", "Content-Type", "Accept", http_controllers.HeaderRequestID},
		ExposedHeaders: []string{http_controllers.HeaderRequestID},
	}
	return cors.New(c).Handler(handler)
}

func Serve(handler http.Handler, cfg *config.Config, onShutdown ShutdownFunc) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("Starting server at %s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// kill (no param) sends SIGTERM, kill -2 is SIGINT
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing\n", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	// Stop taking requests first so no new audit writes or tasks appear
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Server Shutdown: %v", err)
	}

	if onShutdown != nil {
		onShutdown(ctx)
	}

	log.Println("Server exiting")
}

// Migrate opens the configured database, migrates every table and closes it.
func Migrate(cfg *config.Config) error {
	db, err := database.Open(cfg.Database)
	if err != nil {
		return err
	}
	return db.Close()
}

func Run(cfg *config.Config, version string) {
	log.Printf("Starting Bookshelf v%s", version)

	db, err := database.Open(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}()

	// Audit trail
	var auditService *audit.Service
	var auditor services.Auditor
	if cfg.Audit.Enabled {
		auditService = audit.NewService(auditrepo.NewRepository(db.DB))
		auditor = auditService
	} else {
		log.Printf("Audit trail disabled")
	}

	library := services.NewLibraryService(
		users.NewRepository(db.DB),
		books.NewRepository(db.DB),
		readinglists.NewRepository(db.DB),
		auditor,
	)

	// Task queue
	var taskClient *tasks.Client
	var taskCtxCancel context.CancelFunc
	if cfg.Tasks.Enabled && auditService != nil {
		taskClient, err = tasks.NewClient(cfg.Database.Path, tasks.Config{
			Workers:         cfg.Tasks.Workers,
			ReleaseAfter:    cfg.Tasks.ReleaseAfter,
			CleanupInterval: cfg.Tasks.CleanupInterval,
		})
		if err != nil {
			log.Fatalf("Failed to initialize task queue: %v", err)
		}
		defer func() {
			if err := taskClient.Close(); err != nil {
				log.Printf("Error closing task client: %v", err)
			}
		}()

		taskClient.Register(tasks.NewCleanupAuditEventsQueue(auditService))

		var taskCtx context.Context
		taskCtx, taskCtxCancel = context.WithCancel(context.Background())
		go taskClient.Start(taskCtx)
	}

	// Audit retention
	var cleanupScheduler *scheduler.AuditCleanupScheduler
	if auditService != nil {
		var queue scheduler.Enqueuer
		if taskClient != nil {
			queue = taskClient
		}
		cleanupScheduler = scheduler.NewAuditCleanupScheduler(cfg.Audit.CleanupSchedule, cfg.Audit.RetentionDays, queue, auditService)
		if err := cleanupScheduler.Start(context.Background()); err != nil {
			log.Printf("WARNING: audit cleanup scheduler not started: %v", err)
		}
	}

	readOnly := readonly.NewMiddleware(cfg.ReadOnly.Enabled)
	if readOnly.IsEnabled() {
		log.Printf("Read-only mode enabled - write operations will be blocked")
	}

	router := http_controllers.NewRouter(http_controllers.RouterConfig{
		Database: db,
		Library:  library,
		ReadOnly: readOnly,
		Version:  version,
	})

	onShutdown := func(ctx context.Context) {
		if cleanupScheduler != nil {
			cleanupScheduler.Stop()
		}
		if taskClient != nil && taskCtxCancel != nil {
			taskClient.Stop(ctx)
			taskCtxCancel()
		}
		if auditService != nil {
			auditService.Wait()
		}
	}

	Serve(WithCORS(router, cfg.CORS), cfg, onShutdown)
}
