package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/youcanfi/networth-backend/internal/domain"
)

// holdingRepository implements domain.HoldingRepository
type holdingRepository struct {
	db *DB
}

// NewHoldingRepository creates a new holding repository
func NewHoldingRepository(db *DB) domain.HoldingRepository {
	return &holdingRepository{db: db}
}

const holdingColumns = `id, connected_account_id, security_id, quantity, institution_price, institution_value, cost_basis, currency`

// ListByAccount retrieves the holdings of one connected account
func (r *holdingRepository) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]*domain.Holding, error) {
	query := `
		SELECT ` + holdingColumns + `
		FROM holdings
		WHERE connected_account_id = $1
	`

	rows, err := r.db.QueryContext(ctx, query, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to list holdings by account: %w", err)
	}
	defer rows.Close()

	return collectHoldings(rows)
}

// List retrieves all holdings across all connected accounts
func (r *holdingRepository) List(ctx context.Context) ([]*domain.Holding, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+holdingColumns+` FROM holdings`)
	if err != nil {
		return nil, fmt.Errorf("failed to list holdings: %w", err)
	}
	defer rows.Close()

	return collectHoldings(rows)
}

// ReplaceForAccount swaps the account's holdings wholesale inside one
// database transaction, so readers never see a partially refreshed account
func (r *holdingRepository) ReplaceForAccount(ctx context.Context, accountID uuid.UUID, holdings []*domain.Holding) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `DELETE FROM holdings WHERE connected_account_id = $1`, accountID)
	if err != nil {
		return fmt.Errorf("failed to clear holdings: %w", err)
	}

	insertQuery := `
		INSERT INTO holdings (id, connected_account_id, security_id, quantity, institution_price, institution_value, cost_basis, currency)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	for _, holding := range holdings {
		_, err = tx.ExecContext(ctx, insertQuery,
			holding.ID,
			holding.ConnectedAccountID,
			holding.SecurityID,
			holding.Quantity.String(),
			holding.InstitutionPrice.String(),
			holding.InstitutionValue.String(),
			nullableDecimal(holding.CostBasis),
			holding.Currency,
		)
		if err != nil {
			return fmt.Errorf("failed to insert holding: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit holdings replacement: %w", err)
	}

	return nil
}

func collectHoldings(rows *sql.Rows) ([]*domain.Holding, error) {
	var holdings []*domain.Holding
	for rows.Next() {
		holding, err := scanHolding(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan holding: %w", err)
		}
		holdings = append(holdings, holding)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate holdings: %w", err)
	}
	return holdings, nil
}

// scanHolding reads one holding row from a row scanner
func scanHolding(row rowScanner) (*domain.Holding, error) {
	var holding domain.Holding
	var quantityStr, priceStr, valueStr string
	var costBasis sql.NullString

	err := row.Scan(
		&holding.ID,
		&holding.ConnectedAccountID,
		&holding.SecurityID,
		&quantityStr,
		&priceStr,
		&valueStr,
		&costBasis,
		&holding.Currency,
	)
	if err != nil {
		return nil, err
	}

	if holding.Quantity, err = decimal.NewFromString(quantityStr); err != nil {
		return nil, fmt.Errorf("failed to parse quantity: %w", err)
	}
	if holding.InstitutionPrice, err = decimal.NewFromString(priceStr); err != nil {
		return nil, fmt.Errorf("failed to parse institution_price: %w", err)
	}
	if holding.InstitutionValue, err = decimal.NewFromString(valueStr); err != nil {
		return nil, fmt.Errorf("failed to parse institution_value: %w", err)
	}
	if costBasis.Valid {
		basis, err := decimal.NewFromString(costBasis.String)
		if err != nil {
			return nil, fmt.Errorf("failed to parse cost_basis: %w", err)
		}
		holding.CostBasis = &basis
	}

	return &holding, nil
}
