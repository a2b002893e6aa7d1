package storage

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_customer_store.go -package=mocks briefly-ai/internal/storage CustomerStore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

var (
	// ErrNotFound is returned when a record is not found.
	ErrNotFound = errors.New("record not found")
)

// CustomerStore defines the interface for customer storage operations.
type CustomerStore interface {
	// Upsert inserts a new customer or updates an existing one by ID.
	Upsert(ctx context.Context, customer *CustomerRecord) error
	// GetByID gets a customer by ID. Returns nil and ErrNotFound if not found.
	GetByID(ctx context.Context, id string) (*CustomerRecord, error)
	// List returns customers ordered by creation time. limit <= 0 means no limit.
	List(ctx context.Context, limit int) ([]CustomerRecord, error)
	// Delete removes a customer by ID. Returns ErrNotFound if no row matched.
	Delete(ctx context.Context, id string) error
}

// CustomerRepo provides methods for customer operations.
// It implements the CustomerStore interface.
type CustomerRepo struct {
	db *sql.DB
}

// NewCustomerRepo creates a new CustomerRepo.
func NewCustomerRepo(db *sql.DB) *CustomerRepo {
	return &CustomerRepo{db: db}
}

const customerColumns = "id, name, email, phone, address, company, purchase_history, notes, status, created_at, updated_at"

// Upsert inserts a new customer or updates an existing one by ID.
// On update the created_at timestamp is preserved.
func (r *CustomerRepo) Upsert(ctx context.Context, customer *CustomerRecord) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO customers (id, name, email, phone, address, company, purchase_history, notes, status, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		 ON CONFLICT (id) DO UPDATE SET
		 name = excluded.name, email = excluded.email, phone = excluded.phone,
		 address = excluded.address, company = excluded.company,
		 purchase_history = excluded.purchase_history, notes = excluded.notes,
		 status = excluded.status, updated_at = CURRENT_TIMESTAMP`,
		customer.ID, customer.Name, customer.Email, customer.Phone, customer.Address,
		customer.Company, customer.PurchaseHistory, customer.Notes, customer.Status,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert customer: %w", err)
	}

	return nil
}

// GetByID gets a customer by ID.
// Returns nil and ErrNotFound if not found.
func (r *CustomerRepo) GetByID(ctx context.Context, id string) (*CustomerRecord, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+customerColumns+" FROM customers WHERE id = ?", id,
	)

	customer, err := scanCustomer(row.Scan)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query customer: %w", err)
	}

	return customer, nil
}

// List returns customers ordered by creation time, newest first.
func (r *CustomerRepo) List(ctx context.Context, limit int) ([]CustomerRecord, error) {
	query := "SELECT " + customerColumns + " FROM customers ORDER BY created_at DESC, id"
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	defer rows.Close()

	var customers []CustomerRecord
	for rows.Next() {
		customer, err := scanCustomer(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan customer: %w", err)
		}
		customers = append(customers, *customer)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate customers: %w", err)
	}

	return customers, nil
}

// Delete removes a customer by ID.
// Returns ErrNotFound if no row matched.
func (r *CustomerRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM customers WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete customer: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

func scanCustomer(scan func(dest ...any) error) (*CustomerRecord, error) {
	var customer CustomerRecord
	var createdAtStr, updatedAtStr string

	err := scan(
		&customer.ID, &customer.Name, &customer.Email, &customer.Phone,
		&customer.Address, &customer.Company, &customer.PurchaseHistory,
		&customer.Notes, &customer.Status, &createdAtStr, &updatedAtStr,
	)
	if err != nil {
		return nil, err
	}

	if customer.CreatedAt, err = parseTimestamp(createdAtStr); err != nil {
		return nil, fmt.Errorf("failed to parse created_at timestamp: %w", err)
	}
	if customer.UpdatedAt, err = parseTimestamp(updatedAtStr); err != nil {
		return nil, fmt.Errorf("failed to parse updated_at timestamp: %w", err)
	}

	return &customer, nil
}

// parseTimestamp handles both DATETIME layouts SQLite may hand back.
func parseTimestamp(raw string) (time.Time, error) {
	t, err := time.Parse("2006-01-02 15:04:05", raw)
	if err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, raw)
}
