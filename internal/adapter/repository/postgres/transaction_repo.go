package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/youcanfi/networth-backend/internal/domain"
)

// transactionRepository implements domain.TransactionRepository
type transactionRepository struct {
	db *DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *DB) domain.TransactionRepository {
	return &transactionRepository{db: db}
}

const transactionColumns = `id, connected_account_id, provider_transaction_id, provider_account_id,
	amount, currency, date, authorized_date, name, merchant_name, category_primary,
	category_detailed, payment_channel, pending, created_at, updated_at`

// ListByAccount retrieves an account's transactions, newest first
func (r *transactionRepository) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]*domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE connected_account_id = $1
		ORDER BY date DESC, created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	var transactions []*domain.Transaction
	for rows.Next() {
		transaction, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		transactions = append(transactions, transaction)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transactions: %w", err)
	}

	return transactions, nil
}

// UpsertByProviderID inserts the transaction or refreshes it when the
// provider transaction id is already known. The stored id and account
// attachment survive a refresh.
func (r *transactionRepository) UpsertByProviderID(ctx context.Context, transaction *domain.Transaction) error {
	query := `
		INSERT INTO transactions (id, connected_account_id, provider_transaction_id,
			provider_account_id, amount, currency, date, authorized_date, name,
			merchant_name, category_primary, category_detailed, payment_channel,
			pending, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, NOW(), NOW())
		ON CONFLICT (provider_transaction_id) DO UPDATE
		SET amount = EXCLUDED.amount, currency = EXCLUDED.currency, date = EXCLUDED.date,
		    authorized_date = EXCLUDED.authorized_date, name = EXCLUDED.name,
		    merchant_name = EXCLUDED.merchant_name, category_primary = EXCLUDED.category_primary,
		    category_detailed = EXCLUDED.category_detailed, payment_channel = EXCLUDED.payment_channel,
		    pending = EXCLUDED.pending, updated_at = NOW()
	`

	var merchant interface{}
	if transaction.MerchantName != "" {
		merchant = transaction.MerchantName
	}

	_, err := r.db.ExecContext(ctx, query,
		transaction.ID,
		transaction.ConnectedAccountID,
		transaction.ProviderTransactionID,
		transaction.ProviderAccountID,
		transaction.Amount.String(),
		transaction.Currency,
		transaction.Date,
		nullableTime(transaction.AuthorizedDate),
		transaction.Name,
		merchant,
		transaction.CategoryPrimary,
		transaction.CategoryDetailed,
		transaction.PaymentChannel,
		transaction.Pending,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert transaction %s: %w", transaction.ProviderTransactionID, err)
	}

	return nil
}

// DeleteByProviderID removes a transaction the provider retracted; deleting
// an unknown id is not an error
func (r *transactionRepository) DeleteByProviderID(ctx context.Context, providerTransactionID string) error {
	query := `DELETE FROM transactions WHERE provider_transaction_id = $1`

	if _, err := r.db.ExecContext(ctx, query, providerTransactionID); err != nil {
		return fmt.Errorf("failed to delete transaction %s: %w", providerTransactionID, err)
	}

	return nil
}

// scanTransaction reads one transaction row from a row scanner
func scanTransaction(row rowScanner) (*domain.Transaction, error) {
	var transaction domain.Transaction
	var amount string
	var authorizedDate sql.NullTime
	var merchantName sql.NullString

	err := row.Scan(
		&transaction.ID,
		&transaction.ConnectedAccountID,
		&transaction.ProviderTransactionID,
		&transaction.ProviderAccountID,
		&amount,
		&transaction.Currency,
		&transaction.Date,
		&authorizedDate,
		&transaction.Name,
		&merchantName,
		&transaction.CategoryPrimary,
		&transaction.CategoryDetailed,
		&transaction.PaymentChannel,
		&transaction.Pending,
		&transaction.CreatedAt,
		&transaction.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	transaction.Amount, err = decimal.NewFromString(amount)
	if err != nil {
		return nil, fmt.Errorf("failed to parse amount: %w", err)
	}

	if authorizedDate.Valid {
		t := authorizedDate.Time
		transaction.AuthorizedDate = &t
	}
	if merchantName.Valid {
		transaction.MerchantName = merchantName.String
	}

	return &transaction, nil
}
