package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/youcanfi/networth-backend/internal/domain"
)

// connectedAccountRepository implements domain.ConnectedAccountRepository
type connectedAccountRepository struct {
	db *DB
}

// NewConnectedAccountRepository creates a new connected account repository
func NewConnectedAccountRepository(db *DB) domain.ConnectedAccountRepository {
	return &connectedAccountRepository{db: db}
}

const accountColumns = `id, provider, provider_item_id, provider_account_id, institution_name,
	account_name, account_type, account_subtype, is_active, last_synced_at, last_sync_error,
	transactions_cursor, created_at, updated_at`

// GetByID retrieves a connected account by its ID
func (r *connectedAccountRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.ConnectedAccount, error) {
	query := `
		SELECT ` + accountColumns + `
		FROM connected_accounts
		WHERE id = $1
	`

	account, err := scanConnectedAccount(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("connected account %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get connected account by ID: %w", err)
	}
	return account, nil
}

// List retrieves connected accounts, optionally only active ones
func (r *connectedAccountRepository) List(ctx context.Context, activeOnly bool) ([]*domain.ConnectedAccount, error) {
	query := `
		SELECT ` + accountColumns + `
		FROM connected_accounts
	`
	if activeOnly {
		query += ` WHERE is_active`
	}
	query += ` ORDER BY created_at`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list connected accounts: %w", err)
	}
	defer rows.Close()

	var accounts []*domain.ConnectedAccount
	for rows.Next() {
		account, err := scanConnectedAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan connected account: %w", err)
		}
		accounts = append(accounts, account)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate connected accounts: %w", err)
	}

	return accounts, nil
}

// Create creates a new connected account
func (r *connectedAccountRepository) Create(ctx context.Context, account *domain.ConnectedAccount) error {
	query := `
		INSERT INTO connected_accounts (id, provider, provider_item_id, provider_account_id,
			institution_name, account_name, account_type, account_subtype, is_active,
			last_synced_at, last_sync_error, transactions_cursor, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW(), NOW())
	`

	_, err := r.db.ExecContext(ctx, query,
		account.ID,
		account.Provider,
		account.ProviderItemID,
		account.ProviderAccountID,
		account.InstitutionName,
		account.AccountName,
		account.AccountType,
		account.AccountSubtype,
		account.IsActive,
		nullableTime(account.LastSyncedAt),
		nullableString(account.LastSyncError),
		account.TransactionsCursor,
	)
	if err != nil {
		return fmt.Errorf("failed to create connected account: %w", err)
	}

	return nil
}

// Update updates an existing connected account
func (r *connectedAccountRepository) Update(ctx context.Context, account *domain.ConnectedAccount) error {
	query := `
		UPDATE connected_accounts
		SET institution_name = $2, account_name = $3, account_type = $4, account_subtype = $5,
		    is_active = $6, last_synced_at = $7, last_sync_error = $8, transactions_cursor = $9,
		    updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query,
		account.ID,
		account.InstitutionName,
		account.AccountName,
		account.AccountType,
		account.AccountSubtype,
		account.IsActive,
		nullableTime(account.LastSyncedAt),
		nullableString(account.LastSyncError),
		account.TransactionsCursor,
	)
	if err != nil {
		return fmt.Errorf("failed to update connected account: %w", err)
	}

	return requireRowAffected(result, "connected account", account.ID)
}

// scanConnectedAccount reads one connected account row from a row scanner
func scanConnectedAccount(row rowScanner) (*domain.ConnectedAccount, error) {
	var account domain.ConnectedAccount
	var lastSyncedAt sql.NullTime
	var lastSyncError sql.NullString

	err := row.Scan(
		&account.ID,
		&account.Provider,
		&account.ProviderItemID,
		&account.ProviderAccountID,
		&account.InstitutionName,
		&account.AccountName,
		&account.AccountType,
		&account.AccountSubtype,
		&account.IsActive,
		&lastSyncedAt,
		&lastSyncError,
		&account.TransactionsCursor,
		&account.CreatedAt,
		&account.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if lastSyncedAt.Valid {
		t := lastSyncedAt.Time
		account.LastSyncedAt = &t
	}
	if lastSyncError.Valid {
		s := lastSyncError.String
		account.LastSyncError = &s
	}

	return &account, nil
}
