package main

import (
	"context"
	"flag"
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"google.golang.org/grpc"

	"github.com/rl1809/shop-sync/internal/adapter/handler/rpc"
	"github.com/rl1809/shop-sync/internal/adapter/handler/rpc/pb"
	"github.com/rl1809/shop-sync/internal/adapter/remote"
	"github.com/rl1809/shop-sync/internal/config"
	"github.com/rl1809/shop-sync/internal/core/service"
	"github.com/rl1809/shop-sync/internal/core/store"
)

const loadTimeout = 10 * time.Second

// mirror keeps a local copy of the remote inventory and cart and exposes the
// sync operations over gRPC.
func main() {
	configPath := flag.String("config", "", "path to config.yaml")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	st := store.New()
	st.Subscribe(func() {
		log.Printf("state changed: %d inventory items, %d cart entries", len(st.Inventory()), len(st.Cart()))
	})

	client := remote.NewHTTPClient(cfg.Client.RemoteURL, nil)
	syncService := service.NewSyncService(client, st)

	loadCtx, cancel := context.WithTimeout(context.Background(), loadTimeout)
	defer cancel()
	if err := syncService.LoadAll(loadCtx); err != nil {
		log.Fatalf("failed to load remote state from %s: %v", cfg.Client.RemoteURL, err)
	}
	log.Printf("mirror initialized from %s", cfg.Client.RemoteURL)

	grpcServer := grpc.NewServer()
	pb.RegisterSyncAPIServer(grpcServer, rpc.NewGRPCHandler(syncService))

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		log.Fatalf("failed to listen: %v", err)
	}

	go func() {
		log.Printf("gRPC server listening on %s", cfg.Server.GRPCAddr)
		if err := grpcServer.Serve(lis); err != nil {
			log.Printf("gRPC server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down...")
	grpcServer.GracefulStop()
	log.Println("gRPC server stopped")
}
