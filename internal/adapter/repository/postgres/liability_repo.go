package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/youcanfi/networth-backend/internal/domain"
)

// liabilityRepository implements domain.LiabilityRepository
type liabilityRepository struct {
	db *DB
}

// NewLiabilityRepository creates a new liability repository
func NewLiabilityRepository(db *DB) domain.LiabilityRepository {
	return &liabilityRepository{db: db}
}

const liabilityColumns = `id, category, name, balance, interest_rate, connected_account_id, last_synced_at, created_at, updated_at`

// GetByID retrieves a liability by its ID
func (r *liabilityRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Liability, error) {
	query := `
		SELECT ` + liabilityColumns + `
		FROM liabilities
		WHERE id = $1
	`

	liability, err := scanLiability(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("liability %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get liability by ID: %w", err)
	}
	return liability, nil
}

// GetByConnectedAccount retrieves the liability linked to a connected account
func (r *liabilityRepository) GetByConnectedAccount(ctx context.Context, accountID uuid.UUID) (*domain.Liability, error) {
	query := `
		SELECT ` + liabilityColumns + `
		FROM liabilities
		WHERE connected_account_id = $1
	`

	liability, err := scanLiability(r.db.QueryRowContext(ctx, query, accountID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("liability for account %s: %w", accountID, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get liability by connected account: %w", err)
	}
	return liability, nil
}

// List retrieves all liabilities
func (r *liabilityRepository) List(ctx context.Context) ([]*domain.Liability, error) {
	query := `
		SELECT ` + liabilityColumns + `
		FROM liabilities
		ORDER BY created_at
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list liabilities: %w", err)
	}
	defer rows.Close()

	var liabilities []*domain.Liability
	for rows.Next() {
		liability, err := scanLiability(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan liability: %w", err)
		}
		liabilities = append(liabilities, liability)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate liabilities: %w", err)
	}

	return liabilities, nil
}

// Create creates a new liability
func (r *liabilityRepository) Create(ctx context.Context, liability *domain.Liability) error {
	query := `
		INSERT INTO liabilities (id, category, name, balance, interest_rate, connected_account_id, last_synced_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
	`

	_, err := r.db.ExecContext(ctx, query,
		liability.ID,
		string(liability.Category),
		liability.Name,
		liability.Balance.String(),
		nullableDecimal(liability.InterestRate),
		nullableUUID(liability.ConnectedAccountID),
		nullableTime(liability.LastSyncedAt),
	)
	if err != nil {
		return fmt.Errorf("failed to create liability: %w", err)
	}

	return nil
}

// Update updates an existing liability
func (r *liabilityRepository) Update(ctx context.Context, liability *domain.Liability) error {
	query := `
		UPDATE liabilities
		SET category = $2, name = $3, balance = $4, interest_rate = $5,
		    connected_account_id = $6, last_synced_at = $7, updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query,
		liability.ID,
		string(liability.Category),
		liability.Name,
		liability.Balance.String(),
		nullableDecimal(liability.InterestRate),
		nullableUUID(liability.ConnectedAccountID),
		nullableTime(liability.LastSyncedAt),
	)
	if err != nil {
		return fmt.Errorf("failed to update liability: %w", err)
	}

	return requireRowAffected(result, "liability", liability.ID)
}

// Delete removes a liability
func (r *liabilityRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM liabilities WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete liability: %w", err)
	}

	return requireRowAffected(result, "liability", id)
}

// scanLiability reads one liability row from a row scanner
func scanLiability(row rowScanner) (*domain.Liability, error) {
	var liability domain.Liability
	var balanceStr string
	var interestRate sql.NullString
	var accountID sql.NullString
	var lastSyncedAt sql.NullTime

	err := row.Scan(
		&liability.ID,
		&liability.Category,
		&liability.Name,
		&balanceStr,
		&interestRate,
		&accountID,
		&lastSyncedAt,
		&liability.CreatedAt,
		&liability.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	balance, err := decimal.NewFromString(balanceStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse balance: %w", err)
	}
	liability.Balance = balance

	if interestRate.Valid {
		rate, err := decimal.NewFromString(interestRate.String)
		if err != nil {
			return nil, fmt.Errorf("failed to parse interest_rate: %w", err)
		}
		liability.InterestRate = &rate
	}
	if accountID.Valid {
		parsed, err := uuid.Parse(accountID.String)
		if err != nil {
			return nil, fmt.Errorf("failed to parse connected_account_id: %w", err)
		}
		liability.ConnectedAccountID = &parsed
	}
	if lastSyncedAt.Valid {
		t := lastSyncedAt.Time
		liability.LastSyncedAt = &t
	}

	return &liability, nil
}
