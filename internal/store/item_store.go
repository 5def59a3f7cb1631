package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"shelfwise/internal/domain"
)

const itemColumns = `id, user_id, name, category, quantity, price_per_unit,
	expiry_date, imported_at, used, wasted, created_at, updated_at`

type ItemStore struct {
	db *sql.DB
}

func NewItemStore(db *sql.DB) *ItemStore {
	return &ItemStore{db: db}
}

// Create inserts a new item for it.UserID, assigning the id and timestamps.
func (s *ItemStore) Create(ctx context.Context, it domain.Item) (*domain.Item, error) {
	it.ID = uuid.NewString()
	now := time.Now().UTC()
	if it.ImportedAt.IsZero() {
		it.ImportedAt = now
	}
	it.CreatedAt = now
	it.UpdatedAt = now
	if it.Category == "" {
		it.Category = "Default"
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO items (`+itemColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, it.ID, it.UserID, it.Name, it.Category, it.Quantity, it.PricePerUnit,
		it.ExpiryDate, it.ImportedAt, it.Used, it.Wasted, it.CreatedAt, it.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create item: %w", err)
	}

	return s.GetByID(ctx, it.UserID, it.ID)
}

// GetByID returns the item only if it belongs to userID; nil when not found.
func (s *ItemStore) GetByID(ctx context.Context, userID, id string) (*domain.Item, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+itemColumns+` FROM items WHERE id = ? AND user_id = ?
	`, id, userID)

	item, err := scanItem(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get item: %w", err)
	}

	return item, nil
}

// ListByUser returns all of a user's items ordered by soonest expiry first.
func (s *ItemStore) ListByUser(ctx context.Context, userID string) ([]domain.Item, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+itemColumns+` FROM items WHERE user_id = ? ORDER BY expiry_date ASC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	return collectItems(rows)
}

// ListExpiringBetween returns unconsumed items, across all users, whose expiry
// falls in [from, to]. Used by the expiry alert worker.
func (s *ItemStore) ListExpiringBetween(ctx context.Context, from, to time.Time) ([]domain.Item, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+itemColumns+` FROM items
		WHERE expiry_date >= ? AND expiry_date <= ? AND used = 0 AND wasted = 0
		ORDER BY expiry_date ASC
	`, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list expiring items: %w", err)
	}
	return collectItems(rows)
}

// Update rewrites the mutable fields of an item owned by it.UserID and bumps
// updated_at.
func (s *ItemStore) Update(ctx context.Context, it domain.Item) error {
	result, err := s.db.ExecContext(ctx, `
		UPDATE items
		SET name = ?, category = ?, quantity = ?, price_per_unit = ?,
			expiry_date = ?, used = ?, wasted = ?, updated_at = ?
		WHERE id = ? AND user_id = ?
	`, it.Name, it.Category, it.Quantity, it.PricePerUnit,
		it.ExpiryDate, it.Used, it.Wasted, time.Now().UTC(), it.ID, it.UserID)
	if err != nil {
		return fmt.Errorf("failed to update item: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("item not found")
	}

	return nil
}

func (s *ItemStore) Delete(ctx context.Context, userID, id string) error {
	result, err := s.db.ExecContext(ctx, `
		DELETE FROM items WHERE id = ? AND user_id = ?
	`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("item not found")
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(r rowScanner) (*domain.Item, error) {
	item := &domain.Item{}
	err := r.Scan(&item.ID, &item.UserID, &item.Name, &item.Category,
		&item.Quantity, &item.PricePerUnit, &item.ExpiryDate, &item.ImportedAt,
		&item.Used, &item.Wasted, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return item, nil
}

func collectItems(rows *sql.Rows) ([]domain.Item, error) {
	defer func() {
		if err := rows.Close(); err != nil {
			slog.Error("failed to close rows", "error", err)
		}
	}()

	var items []domain.Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		items = append(items, *item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating items: %w", err)
	}

	return items, nil
}
