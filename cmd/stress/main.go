package main

import (
	"context"
	"flag"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rl1809/shop-sync/internal/adapter/remote"
	"github.com/rl1809/shop-sync/internal/core/service"
	"github.com/rl1809/shop-sync/internal/core/store"
)

// Hammers a running reference server with overlapping add-to-cart calls for
// one item and checks that no update is lost.
func main() {
	remoteURL := flag.String("remote", "http://localhost:3000", "reference server URL")
	requests := flag.Int("n", 50, "number of concurrent add-to-cart calls")
	flag.Parse()

	ctx := context.Background()

	client := remote.NewHTTPClient(*remoteURL, nil)
	st := store.New()

	var notifications atomic.Int64
	st.Subscribe(func() { notifications.Add(1) })

	syncService := service.NewSyncService(client, st)
	if err := syncService.LoadAll(ctx); err != nil {
		log.Fatalf("failed to load remote state: %v", err)
	}

	inventory := st.Inventory()
	if len(inventory) == 0 {
		log.Fatal("remote inventory is empty, nothing to add")
	}
	target := inventory[0]
	baseline := 0
	for _, entry := range st.Cart() {
		if entry.ID == target.ID {
			baseline = entry.Amount
		}
	}
	log.Printf("hammering item %d (%s, count %d) with %d concurrent adds", target.ID, target.Name, target.Count, *requests)

	var successCount, failCount atomic.Int64
	var wg sync.WaitGroup
	start := time.Now()

	for i := 0; i < *requests; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := syncService.AddToCart(ctx, target.ID, 1); err != nil {
				failCount.Add(1)
			} else {
				successCount.Add(1)
			}
		}()
	}

	wg.Wait()
	elapsed := time.Since(start)

	log.Printf("done in %v", elapsed)
	log.Printf("success: %d, failed: %d", successCount.Load(), failCount.Load())
	log.Printf("notifications: %d", notifications.Load())

	for _, entry := range st.Cart() {
		if entry.ID != target.ID {
			continue
		}
		if int64(entry.Amount-baseline) == successCount.Load() {
			log.Printf("OK: cart amount grew by %d, matching confirmed adds", entry.Amount-baseline)
		} else {
			log.Printf("MISMATCH: cart amount grew by %d, confirmed adds %d", entry.Amount-baseline, successCount.Load())
		}
	}
}
