package rpc

//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative pb/sync.proto

import (
	"context"
	"errors"

	"github.com/rl1809/shop-sync/internal/adapter/handler/rpc/pb"
	"github.com/rl1809/shop-sync/internal/core/domain"
	"github.com/rl1809/shop-sync/internal/core/service"
)

// GRPCHandler exposes the sync service's operations over RPC, mapping the
// error taxonomy onto {success, message} responses.
type GRPCHandler struct {
	pb.UnimplementedSyncAPIServer
	syncService *service.SyncService
}

func NewGRPCHandler(syncService *service.SyncService) *GRPCHandler {
	return &GRPCHandler{syncService: syncService}
}

func (h *GRPCHandler) LoadAll(ctx context.Context, req *pb.LoadAllRequest) (*pb.OpResponse, error) {
	if err := h.syncService.LoadAll(ctx); err != nil {
		return opFailure(err), nil
	}
	return opSuccess("loaded"), nil
}

func (h *GRPCHandler) AdjustInventory(ctx context.Context, req *pb.AdjustInventoryRequest) (*pb.OpResponse, error) {
	h.syncService.AdjustInventoryCount(int(req.GetId()), int(req.GetDelta()))
	return opSuccess("adjusted"), nil
}

func (h *GRPCHandler) AddToCart(ctx context.Context, req *pb.AddToCartRequest) (*pb.OpResponse, error) {
	if err := h.syncService.AddToCart(ctx, int(req.GetId()), int(req.GetAmount())); err != nil {
		return opFailure(err), nil
	}
	return opSuccess("added to cart"), nil
}

func (h *GRPCHandler) DeleteFromCart(ctx context.Context, req *pb.DeleteFromCartRequest) (*pb.OpResponse, error) {
	if err := h.syncService.DeleteFromCart(ctx, int(req.GetId())); err != nil {
		return opFailure(err), nil
	}
	return opSuccess("deleted from cart"), nil
}

func (h *GRPCHandler) Checkout(ctx context.Context, req *pb.CheckoutRequest) (*pb.OpResponse, error) {
	if err := h.syncService.Checkout(ctx); err != nil {
		return opFailure(err), nil
	}
	return opSuccess("checked out"), nil
}

func (h *GRPCHandler) GetState(ctx context.Context, req *pb.GetStateRequest) (*pb.StateResponse, error) {
	state := h.syncService.Store().Snapshot()

	resp := &pb.StateResponse{}
	for _, it := range state.Inventory {
		resp.Inventory = append(resp.Inventory, &pb.InventoryItem{
			Id:    int64(it.ID),
			Name:  it.Name,
			Count: int64(it.Count),
		})
	}
	for _, it := range state.Cart {
		resp.Cart = append(resp.Cart, &pb.CartItem{
			Id:     int64(it.ID),
			Name:   it.Name,
			Amount: int64(it.Amount),
		})
	}
	return resp, nil
}

func opSuccess(msg string) *pb.OpResponse {
	return &pb.OpResponse{Success: true, Message: msg}
}

func opFailure(err error) *pb.OpResponse {
	msg := "internal error"
	var rerr *domain.RemoteError

	switch {
	case errors.Is(err, domain.ErrNotFound):
		msg = "item not found"
	case errors.Is(err, domain.ErrValidation):
		msg = "invalid amount"
	case errors.As(err, &rerr):
		msg = rerr.Error()
	}
	return &pb.OpResponse{Success: false, Message: msg}
}
