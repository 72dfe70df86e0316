package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/youcanfi/networth-backend/internal/domain"
)

// securityRepository implements domain.SecurityRepository
type securityRepository struct {
	db *DB
}

// NewSecurityRepository creates a new security repository
func NewSecurityRepository(db *DB) domain.SecurityRepository {
	return &securityRepository{db: db}
}

const securityColumns = `id, provider_security_id, name, ticker, security_type, is_cash_equivalent, close_price, currency`

// List retrieves all known securities
func (r *securityRepository) List(ctx context.Context) ([]*domain.Security, error) {
	query := `
		SELECT ` + securityColumns + `
		FROM securities
		ORDER BY name
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list securities: %w", err)
	}
	defer rows.Close()

	var securities []*domain.Security
	for rows.Next() {
		security, err := scanSecurity(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan security: %w", err)
		}
		securities = append(securities, security)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate securities: %w", err)
	}

	return securities, nil
}

// UpsertByProviderID inserts the security or refreshes it when the provider
// id is already known, returning the stored row either way. The stored id
// survives a refresh so existing holdings keep pointing at it.
func (r *securityRepository) UpsertByProviderID(ctx context.Context, security *domain.Security) (*domain.Security, error) {
	query := `
		INSERT INTO securities (id, provider_security_id, name, ticker, security_type, is_cash_equivalent, close_price, currency)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (provider_security_id) DO UPDATE
		SET name = EXCLUDED.name, ticker = EXCLUDED.ticker, security_type = EXCLUDED.security_type,
		    is_cash_equivalent = EXCLUDED.is_cash_equivalent, close_price = EXCLUDED.close_price,
		    currency = EXCLUDED.currency
		RETURNING ` + securityColumns + `
	`

	var ticker interface{}
	if security.Ticker != "" {
		ticker = security.Ticker
	}

	stored, err := scanSecurity(r.db.QueryRowContext(ctx, query,
		security.ID,
		security.ProviderSecurityID,
		security.Name,
		ticker,
		string(security.Type),
		security.IsCashEquivalent,
		nullableDecimal(security.ClosePrice),
		security.Currency,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to upsert security %s: %w", security.ProviderSecurityID, err)
	}

	return stored, nil
}

// scanSecurity reads one security row from a row scanner
func scanSecurity(row rowScanner) (*domain.Security, error) {
	var security domain.Security
	var ticker sql.NullString
	var closePrice sql.NullString

	err := row.Scan(
		&security.ID,
		&security.ProviderSecurityID,
		&security.Name,
		&ticker,
		&security.Type,
		&security.IsCashEquivalent,
		&closePrice,
		&security.Currency,
	)
	if err != nil {
		return nil, err
	}

	if ticker.Valid {
		security.Ticker = ticker.String
	}
	if closePrice.Valid {
		price, err := decimal.NewFromString(closePrice.String)
		if err != nil {
			return nil, fmt.Errorf("failed to parse close_price: %w", err)
		}
		security.ClosePrice = &price
	}

	return &security, nil
}
