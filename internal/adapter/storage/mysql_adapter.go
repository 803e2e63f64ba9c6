package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rl1809/shop-sync/internal/core/domain"
	"github.com/rl1809/shop-sync/internal/port"
)

// MySQLAdapter persists the reference server's collections. Schema:
//
//	CREATE TABLE inventory (id INT PRIMARY KEY, name VARCHAR(255), count INT NOT NULL);
//	CREATE TABLE cart (id INT PRIMARY KEY, name VARCHAR(255), amount INT NOT NULL);
//
// Stock reservations use conditional UPDATEs guarded by RowsAffected, so two
// concurrent inserts can never take the same units.
type MySQLAdapter struct {
	db *sql.DB
}

func NewMySQLAdapter(db *sql.DB) *MySQLAdapter {
	return &MySQLAdapter{db: db}
}

func (m *MySQLAdapter) ListInventory(ctx context.Context) ([]domain.InventoryItem, error) {
	rows, err := m.db.QueryContext(ctx, `SELECT id, name, count FROM inventory ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query inventory: %w", err)
	}
	defer rows.Close()

	var items []domain.InventoryItem
	for rows.Next() {
		var it domain.InventoryItem
		if err := rows.Scan(&it.ID, &it.Name, &it.Count); err != nil {
			return nil, fmt.Errorf("scan inventory row: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (m *MySQLAdapter) ListCart(ctx context.Context) ([]domain.CartItem, error) {
	rows, err := m.db.QueryContext(ctx, `SELECT id, name, amount FROM cart ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query cart: %w", err)
	}
	defer rows.Close()

	var items []domain.CartItem
	for rows.Next() {
		var it domain.CartItem
		if err := rows.Scan(&it.ID, &it.Name, &it.Amount); err != nil {
			return nil, fmt.Errorf("scan cart row: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (m *MySQLAdapter) InsertCartEntry(ctx context.Context, item domain.CartItem) (domain.CartItem, error) {
	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.CartItem{}, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var exists int
	err = tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM cart WHERE id = ?`, item.ID).Scan(&exists)
	if err != nil {
		return domain.CartItem{}, fmt.Errorf("check cart: %w", err)
	}
	if exists > 0 {
		return domain.CartItem{}, fmt.Errorf("cart id %d: %w", item.ID, port.ErrDuplicateEntry)
	}

	var name string
	err = tx.QueryRowContext(ctx, `SELECT name FROM inventory WHERE id = ?`, item.ID).Scan(&name)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.CartItem{}, fmt.Errorf("inventory id %d: %w", item.ID, domain.ErrNotFound)
	}
	if err != nil {
		return domain.CartItem{}, fmt.Errorf("query inventory: %w", err)
	}

	result, err := tx.ExecContext(ctx, `
		UPDATE inventory SET count = count - ?
		WHERE id = ? AND count >= ?`,
		item.Amount, item.ID, item.Amount,
	)
	if err != nil {
		return domain.CartItem{}, fmt.Errorf("reserve stock: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.CartItem{}, fmt.Errorf("inventory id %d: %w", item.ID, port.ErrInsufficientStock)
	}

	_, err = tx.ExecContext(ctx, `INSERT INTO cart (id, name, amount) VALUES (?, ?, ?)`,
		item.ID, name, item.Amount,
	)
	if err != nil {
		return domain.CartItem{}, fmt.Errorf("insert cart entry: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return domain.CartItem{}, fmt.Errorf("commit: %w", err)
	}
	return domain.CartItem{ID: item.ID, Name: name, Amount: item.Amount}, nil
}

func (m *MySQLAdapter) UpdateCartAmount(ctx context.Context, id, amount int) (domain.CartItem, error) {
	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.CartItem{}, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var name string
	var current int
	err = tx.QueryRowContext(ctx, `SELECT name, amount FROM cart WHERE id = ?`, id).Scan(&name, &current)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.CartItem{}, fmt.Errorf("cart id %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return domain.CartItem{}, fmt.Errorf("query cart: %w", err)
	}

	delta := amount - current
	if delta > 0 {
		result, err := tx.ExecContext(ctx, `
			UPDATE inventory SET count = count - ?
			WHERE id = ? AND count >= ?`,
			delta, id, delta,
		)
		if err != nil {
			return domain.CartItem{}, fmt.Errorf("reserve stock: %w", err)
		}
		rows, _ := result.RowsAffected()
		if rows == 0 {
			return domain.CartItem{}, fmt.Errorf("inventory id %d: %w", id, port.ErrInsufficientStock)
		}
	} else if delta < 0 {
		_, err := tx.ExecContext(ctx, `UPDATE inventory SET count = count + ? WHERE id = ?`, -delta, id)
		if err != nil {
			return domain.CartItem{}, fmt.Errorf("release stock: %w", err)
		}
	}

	if _, err := tx.ExecContext(ctx, `UPDATE cart SET amount = ? WHERE id = ?`, amount, id); err != nil {
		return domain.CartItem{}, fmt.Errorf("update cart entry: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return domain.CartItem{}, fmt.Errorf("commit: %w", err)
	}
	return domain.CartItem{ID: id, Name: name, Amount: amount}, nil
}

func (m *MySQLAdapter) DeleteCartEntry(ctx context.Context, id int) error {
	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var amount int
	err = tx.QueryRowContext(ctx, `SELECT amount FROM cart WHERE id = ?`, id).Scan(&amount)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("cart id %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("query cart: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `UPDATE inventory SET count = count + ? WHERE id = ?`, amount, id); err != nil {
		return fmt.Errorf("release stock: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM cart WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete cart entry: %w", err)
	}

	return tx.Commit()
}

func (m *MySQLAdapter) ClearCart(ctx context.Context) error {
	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		UPDATE inventory i
		JOIN cart c ON c.id = i.id
		SET i.count = i.count + c.amount`)
	if err != nil {
		return fmt.Errorf("release stock: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM cart`); err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}

	return tx.Commit()
}

func (m *MySQLAdapter) SeedInventory(ctx context.Context, items []domain.InventoryItem) error {
	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM cart`); err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM inventory`); err != nil {
		return fmt.Errorf("clear inventory: %w", err)
	}
	for _, it := range items {
		_, err := tx.ExecContext(ctx, `INSERT INTO inventory (id, name, count) VALUES (?, ?, ?)`,
			it.ID, it.Name, it.Count,
		)
		if err != nil {
			return fmt.Errorf("insert inventory %d: %w", it.ID, err)
		}
	}

	return tx.Commit()
}

var _ port.ServerRepository = (*MySQLAdapter)(nil)
