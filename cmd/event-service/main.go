package main

import (
	"context"
	"fmt"
	"log"
	"os/signal"
	"syscall"

	"github.com/gorilla/mux"

	"github.com/Elie-MK/eventBooking-microservice/internal/cache"
	"github.com/Elie-MK/eventBooking-microservice/internal/config"
	"github.com/Elie-MK/eventBooking-microservice/internal/db"
	"github.com/Elie-MK/eventBooking-microservice/internal/discovery"
	"github.com/Elie-MK/eventBooking-microservice/internal/handlers"
	"github.com/Elie-MK/eventBooking-microservice/internal/middleware"
	"github.com/Elie-MK/eventBooking-microservice/internal/server"
	"github.com/Elie-MK/eventBooking-microservice/internal/telemetry"
)

func main() {
	// Load configuration
	cfg, err := config.Load(config.EventService)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracer, err := telemetry.SetupTracer(ctx, cfg.ServiceName, cfg.OTLPEndpoint, cfg.TracingEnabled)
	if err != nil {
		log.Fatalf("Failed to set up tracing: %v", err)
	}
	defer shutdownTracer(context.Background())

	// Connect to PostgreSQL
	database, err := db.NewPostgresDB(cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBSSLMode)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()

	if err := database.Migrate(ctx, db.EventsSchema); err != nil {
		log.Fatalf("Failed to prepare schema: %v", err)
	}

	// Reads go through Redis when it is reachable
	repo := db.NewEventRepository(database)
	var store handlers.EventStore = repo
	checks := map[string]handlers.Check{"postgres": database.Ping}
	redisCache, err := cache.NewRedisCache(cfg.RedisHost, cfg.RedisPort, cfg.EventCacheTTL)
	if err != nil {
		log.Printf("⚠️ Redis unavailable, serving events uncached: %v", err)
	} else {
		defer redisCache.Close()
		store = db.NewCachedEventRepository(repo, redisCache)
		checks["redis"] = redisCache.Ping
	}

	eventHandler := handlers.NewEventHandler(store)

	// Create router
	router := mux.NewRouter()
	router.Use(middleware.HTTPTracing(cfg.ServiceName))
	router.HandleFunc("/health", handlers.HTTPHealthCheck(cfg.ServiceName, checks)).Methods("GET")
	eventHandler.Register(router)

	consul := discovery.Connect(cfg)
	deregister := consul.RegisterSelf(cfg, "events")
	defer deregister()

	fmt.Println("🚀 Event Service")
	fmt.Println("==========================================")
	fmt.Printf("📍 Server starting on port %d\n", cfg.Port)
	fmt.Println("📖 API Endpoints:")
	fmt.Printf("   GET    http://localhost:%d/health\n", cfg.Port)
	fmt.Printf("   GET    http://localhost:%d/api/events\n", cfg.Port)
	fmt.Printf("   POST   http://localhost:%d/api/events\n", cfg.Port)
	fmt.Printf("   GET    http://localhost:%d/api/events/search?name=\n", cfg.Port)
	fmt.Printf("   GET    http://localhost:%d/api/events/{id}\n", cfg.Port)
	fmt.Printf("   PUT    http://localhost:%d/api/events/{id}\n", cfg.Port)
	fmt.Printf("   DELETE http://localhost:%d/api/events/{id}\n", cfg.Port)
	fmt.Println("==========================================")

	if err := server.Run(ctx, cfg.Addr(), router); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
