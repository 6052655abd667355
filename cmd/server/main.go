/*
main.go - Application entry point

PURPOSE:
  Initializes and starts the calendar grid server.
  Handles configuration, dependency injection, and graceful shutdown.

STARTUP SEQUENCE:
  1. Parse command-line flags
  2. Initialize SQLite profile store
  3. Seed profiles (from -profiles file, or built-in presets when empty)
  4. Create API handler, cache and cache warmer
  5. Start server with graceful shutdown

COMMAND-LINE FLAGS:
  -port           HTTP server port (default: 8080)
  -db             SQLite database path (default: calendar.db)
                  Use ":memory:" for in-memory database
  -profiles       YAML/JSON profile document to seed on startup
  -cache-size     Maximum cached grid results (default: 512)
  -warm-interval  Cache warm interval, 0 disables (default: 1h)
  -tz-fallback    Zone substituted for unknown time zones in queries
                  (default: reject with 400)

GRACEFUL SHUTDOWN:
  On SIGINT/SIGTERM:
  1. Stop the cache warmer
  2. Stop accepting new connections
  3. Wait for active requests to complete (30s timeout)
  4. Close database connection

EXAMPLES:
  ./server -db=":memory:"
  ./server -profiles=./profiles.yaml -warm-interval=15m

SEE ALSO:
  - api/server.go: Router configuration
  - api/handlers.go: HTTP handlers
  - store/sqlite/sqlite.go: Database implementation
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/warp/calendar-engine/api"
	"github.com/warp/calendar-engine/calendar"
	"github.com/warp/calendar-engine/factory"
	"github.com/warp/calendar-engine/store/sqlite"
)

func main() {
	// Flags
	port := flag.Int("port", 8080, "HTTP server port")
	dbPath := flag.String("db", "calendar.db", "SQLite database path")
	profilesPath := flag.String("profiles", "", "Profile document (YAML or JSON) to seed")
	cacheSize := flag.Int("cache-size", calendar.DefaultCacheSize, "Maximum cached grid results")
	warmInterval := flag.Duration("warm-interval", time.Hour, "Cache warm interval (0 disables)")
	tzFallback := flag.String("tz-fallback", "", "Time zone used when a query names an unknown zone")
	flag.Parse()

	// Initialize store
	store, err := sqlite.New(*dbPath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer store.Close()

	// Initialize handler
	cache := calendar.NewCache(*cacheSize)
	handler := api.NewHandler(store, cache)
	if *tzFallback != "" {
		loc, err := time.LoadLocation(*tzFallback)
		if err != nil {
			log.Fatalf("Invalid -tz-fallback: %v", err)
		}
		handler.TimeZoneFallback = loc
		handler.ProfileFactory.TimeZoneFallback = loc
	}

	if err := seedProfiles(context.Background(), handler, *profilesPath); err != nil {
		log.Printf("Warning: Failed to seed profiles: %v", err)
	}

	// Start cache warmer
	warmer := api.NewCacheWarmer(store, cache)
	warmer.Interval = *warmInterval
	warmer.Enabled = *warmInterval > 0
	warmer.Start()

	// Create router
	router := api.NewRouter(handler)

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", *port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Server starting on http://localhost:%d", *port)
		log.Printf("API available at http://localhost:%d/api", *port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	warmer.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server stopped")
}

// seedProfiles loads the -profiles document, or the presets when the store
// is empty and no document was given.
func seedProfiles(ctx context.Context, h *api.Handler, path string) error {
	var profiles []calendar.Profile
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		if profiles, err = h.ProfileFactory.ParseProfiles(data); err != nil {
			return err
		}
	} else {
		existing, err := h.Store.ListProfiles(ctx)
		if err != nil {
			return err
		}
		if len(existing) > 0 {
			return nil
		}
		profiles = factory.DefaultProfiles()
	}

	n, err := h.SeedProfiles(ctx, profiles)
	if err != nil {
		return err
	}
	log.Printf("Seeded %d profiles", n)
	return nil
}
