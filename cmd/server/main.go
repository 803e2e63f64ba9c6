package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/redis/go-redis/v9"

	"github.com/rl1809/shop-sync/internal/adapter/handler"
	"github.com/rl1809/shop-sync/internal/adapter/storage"
	"github.com/rl1809/shop-sync/internal/config"
	"github.com/rl1809/shop-sync/internal/core/domain"
	"github.com/rl1809/shop-sync/internal/port"
)

// demoInventory seeds the in-memory driver so a fresh server has something
// to sell.
var demoInventory = []domain.InventoryItem{
	{ID: 1, Name: "Apple", Count: 10},
	{ID: 2, Name: "Banana", Count: 10},
	{ID: 3, Name: "Cherry", Count: 10},
}

func main() {
	configPath := flag.String("config", "", "path to config.yaml")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var repo port.ServerRepository
	switch cfg.Storage.Driver {
	case "mysql":
		db, err := sql.Open("mysql", cfg.Storage.MySQLDSN)
		if err != nil {
			log.Fatalf("failed to connect mysql: %v", err)
		}
		db.SetMaxOpenConns(50)
		db.SetMaxIdleConns(25)
		db.SetConnMaxLifetime(5 * time.Minute)
		if err := db.PingContext(ctx); err != nil {
			log.Fatalf("failed to ping mysql: %v", err)
		}
		defer db.Close()
		log.Println("connected to mysql")
		repo = storage.NewMySQLAdapter(db)

	default:
		mem := storage.NewMemoryAdapter()
		if err := mem.SeedInventory(ctx, demoInventory); err != nil {
			log.Fatalf("failed to seed inventory: %v", err)
		}
		log.Printf("seeded %d inventory items", len(demoInventory))
		repo = mem
	}

	if cfg.Storage.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.Storage.RedisAddr})
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Fatalf("failed to connect redis: %v", err)
		}
		defer rdb.Close()
		log.Println("connected to redis, stock counters enabled")

		front := storage.NewRedisAdapter(rdb, repo)
		// Prime the counters from whatever the backing store holds.
		items, err := repo.ListInventory(ctx)
		if err != nil {
			log.Fatalf("failed to read inventory: %v", err)
		}
		if err := front.SeedInventory(ctx, items); err != nil {
			log.Fatalf("failed to prime stock counters: %v", err)
		}
		repo = front
	}

	mux := http.NewServeMux()
	handler.NewHTTPHandler(repo).Register(mux)

	httpServer := &http.Server{
		Addr:    cfg.Server.HTTPAddr,
		Handler: mux,
	}

	go func() {
		log.Printf("HTTP server listening on %s", cfg.Server.HTTPAddr)
		if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
			log.Printf("HTTP server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	httpServer.Shutdown(shutdownCtx)
	log.Println("HTTP server stopped")
}
