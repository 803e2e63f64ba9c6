package storage

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"testing"

	_ "github.com/go-sql-driver/mysql"

	"github.com/rl1809/shop-sync/internal/core/domain"
	"github.com/rl1809/shop-sync/internal/port"
)

func getMySQLDB(t *testing.T) *sql.DB {
	dsn := os.Getenv("MYSQL_DSN")
	if dsn == "" {
		dsn = "root:root@tcp(localhost:3306)/shopsync?parseTime=true"
	}

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		t.Skipf("MySQL not available: %v", err)
	}
	if err := db.Ping(); err != nil {
		t.Skipf("MySQL not available: %v", err)
	}
	return db
}

func seededMySQLAdapter(t *testing.T) *MySQLAdapter {
	t.Helper()
	db := getMySQLDB(t)
	t.Cleanup(func() { db.Close() })

	adapter := NewMySQLAdapter(db)
	err := adapter.SeedInventory(context.Background(), []domain.InventoryItem{
		{ID: 1, Name: "Apple", Count: 5},
		{ID: 2, Name: "Pear", Count: 3},
	})
	if err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	return adapter
}

func TestMySQLInsert_RoundTrip(t *testing.T) {
	adapter := seededMySQLAdapter(t)
	ctx := context.Background()

	entry, err := adapter.InsertCartEntry(ctx, domain.CartItem{ID: 1, Amount: 2})
	if err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	if entry.Name != "Apple" || entry.Amount != 2 {
		t.Errorf("unexpected entry: %v", entry)
	}

	inv, err := adapter.ListInventory(ctx)
	if err != nil {
		t.Fatalf("list inventory failed: %v", err)
	}
	if inv[0].Count != 3 {
		t.Errorf("expected count 3 after reserve, got %d", inv[0].Count)
	}

	cart, err := adapter.ListCart(ctx)
	if err != nil {
		t.Fatalf("list cart failed: %v", err)
	}
	if len(cart) != 1 || cart[0].ID != 1 {
		t.Errorf("unexpected cart: %v", cart)
	}
}

func TestMySQLInsert_GuardsStockAndDuplicates(t *testing.T) {
	adapter := seededMySQLAdapter(t)
	ctx := context.Background()

	if _, err := adapter.InsertCartEntry(ctx, domain.CartItem{ID: 99, Amount: 1}); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got: %v", err)
	}
	if _, err := adapter.InsertCartEntry(ctx, domain.CartItem{ID: 2, Amount: 10}); !errors.Is(err, port.ErrInsufficientStock) {
		t.Errorf("expected ErrInsufficientStock, got: %v", err)
	}

	if _, err := adapter.InsertCartEntry(ctx, domain.CartItem{ID: 2, Amount: 1}); err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	if _, err := adapter.InsertCartEntry(ctx, domain.CartItem{ID: 2, Amount: 1}); !errors.Is(err, port.ErrDuplicateEntry) {
		t.Errorf("expected ErrDuplicateEntry, got: %v", err)
	}
}

func TestMySQLUpdateDeleteClear(t *testing.T) {
	adapter := seededMySQLAdapter(t)
	ctx := context.Background()

	if _, err := adapter.InsertCartEntry(ctx, domain.CartItem{ID: 1, Amount: 2}); err != nil {
		t.Fatalf("insert failed: %v", err)
	}

	entry, err := adapter.UpdateCartAmount(ctx, 1, 5)
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if entry.Amount != 5 {
		t.Errorf("expected amount 5, got %d", entry.Amount)
	}
	inv, _ := adapter.ListInventory(ctx)
	if inv[0].Count != 0 {
		t.Errorf("expected count 0, got %d", inv[0].Count)
	}

	if _, err := adapter.UpdateCartAmount(ctx, 1, 6); !errors.Is(err, port.ErrInsufficientStock) {
		t.Errorf("expected ErrInsufficientStock, got: %v", err)
	}

	if err := adapter.DeleteCartEntry(ctx, 1); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	inv, _ = adapter.ListInventory(ctx)
	if inv[0].Count != 5 {
		t.Errorf("expected count restored to 5, got %d", inv[0].Count)
	}
	if err := adapter.DeleteCartEntry(ctx, 1); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got: %v", err)
	}

	if _, err := adapter.InsertCartEntry(ctx, domain.CartItem{ID: 2, Amount: 3}); err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	if err := adapter.ClearCart(ctx); err != nil {
		t.Fatalf("clear failed: %v", err)
	}
	inv, _ = adapter.ListInventory(ctx)
	if inv[1].Count != 3 {
		t.Errorf("expected count restored to 3, got %d", inv[1].Count)
	}
	cart, _ := adapter.ListCart(ctx)
	if len(cart) != 0 {
		t.Errorf("expected empty cart, got %v", cart)
	}
}
