// Package accountsync orchestrates per-account refresh of balances plus
// holdings or transactions from the aggregation provider. Each connected
// account moves through idle → syncing → synced|errored; bulk refresh fans
// out across accounts and reports partial failure as data, never as an
// exception.
package accountsync

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/youcanfi/networth-backend/internal/domain"
)

// Status is the sync state of one connected account
type Status string

const (
	StatusIdle    Status = "idle"
	StatusSyncing Status = "syncing"
	StatusSynced  Status = "synced"
	StatusErrored Status = "errored"
)

// SyncError describes one account's failure inside a bulk sync
type SyncError struct {
	AccountID   uuid.UUID
	AccountName string
	Error       string
}

// BulkSyncOutcome is the structured result of SyncAll. The call as a whole
// succeeds even when individual accounts fail.
type BulkSyncOutcome struct {
	Total      int
	Successful int
	Failed     int
	Errors     []SyncError
}

// Coordinator owns the per-account sync status map, the only mutable state in
// the core. Everything else it touches goes through repositories.
type Coordinator struct {
	accounts     domain.ConnectedAccountRepository
	assets       domain.AssetRepository
	liabilities  domain.LiabilityRepository
	securities   domain.SecurityRepository
	holdings     domain.HoldingRepository
	transactions domain.TransactionRepository
	provider     domain.ProviderClient
	logger       *zap.Logger

	mu     sync.Mutex
	status map[uuid.UUID]Status
}

// NewCoordinator creates a new Coordinator instance
func NewCoordinator(
	accounts domain.ConnectedAccountRepository,
	assets domain.AssetRepository,
	liabilities domain.LiabilityRepository,
	securities domain.SecurityRepository,
	holdings domain.HoldingRepository,
	transactions domain.TransactionRepository,
	provider domain.ProviderClient,
	logger *zap.Logger,
) *Coordinator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Coordinator{
		accounts:     accounts,
		assets:       assets,
		liabilities:  liabilities,
		securities:   securities,
		holdings:     holdings,
		transactions: transactions,
		provider:     provider,
		logger:       logger,
		status:       make(map[uuid.UUID]Status),
	}
}

// Status reports the sync state of an account; accounts never synced are idle
func (c *Coordinator) Status(accountID uuid.UUID) Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	if s, ok := c.status[accountID]; ok {
		return s
	}
	return StatusIdle
}

// beginSync transitions the account to syncing unless a sync is already
// running for it
func (c *Coordinator) beginSync(accountID uuid.UUID) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.status[accountID] == StatusSyncing {
		return domain.NewValidationError("sync already in progress for account %s", accountID)
	}
	c.status[accountID] = StatusSyncing
	return nil
}

func (c *Coordinator) endSync(accountID uuid.UUID, s Status) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.status[accountID] = s
}

// SyncAccount refreshes one connected account: balance always, then holdings
// for investment accounts or transactions for everything else. On success the
// linked asset or liability carries the new value and lastSyncedAt; on
// failure only lastSyncError moves, leaving the previous balance visible. An
// in-flight sync runs to completion even if the caller goes away.
func (c *Coordinator) SyncAccount(ctx context.Context, accountID uuid.UUID) error {
	if err := c.beginSync(accountID); err != nil {
		return err
	}

	// Abandoned callers must not interrupt a sync that already started
	ctx = context.WithoutCancel(ctx)

	err := c.syncAccount(ctx, accountID)
	if err != nil {
		c.endSync(accountID, StatusErrored)
		c.logger.Warn("account sync failed",
			zap.String("account_id", accountID.String()),
			zap.Error(err))
		return err
	}

	c.endSync(accountID, StatusSynced)
	c.logger.Info("account sync completed",
		zap.String("account_id", accountID.String()))
	return nil
}

func (c *Coordinator) syncAccount(ctx context.Context, accountID uuid.UUID) error {
	account, err := c.accounts.GetByID(ctx, accountID)
	if err != nil {
		return err
	}
	if !account.IsActive {
		return domain.NewValidationError("account %s is not active", accountID)
	}

	if err := c.syncBalance(ctx, account); err != nil {
		c.recordSyncError(ctx, account, err)
		return err
	}

	if account.IsInvestment() {
		if err := c.syncHoldings(ctx, account); err != nil {
			c.recordSyncError(ctx, account, err)
			return err
		}
	} else {
		if err := c.syncTransactions(ctx, account); err != nil {
			c.recordSyncError(ctx, account, err)
			return err
		}
	}

	now := time.Now().UTC()
	account.LastSyncedAt = &now
	account.LastSyncError = nil
	return c.accounts.Update(ctx, account)
}

// recordSyncError stores the failure on the account without touching
// lastSyncedAt or any previously synced value
func (c *Coordinator) recordSyncError(ctx context.Context, account *domain.ConnectedAccount, syncErr error) {
	msg := syncErr.Error()
	account.LastSyncError = &msg
	if err := c.accounts.Update(ctx, account); err != nil {
		c.logger.Error("failed to record sync error",
			zap.String("account_id", account.ID.String()),
			zap.Error(err))
	}
}

// syncBalance pulls the provider balance and pushes it into the linked asset
// or liability, creating the entity on first sync.
func (c *Coordinator) syncBalance(ctx context.Context, account *domain.ConnectedAccount) error {
	balance, err := c.provider.GetBalance(ctx, account.ProviderItemID, account.ProviderAccountID)
	if err != nil {
		return domain.NewUpstreamError("fetch balance", err)
	}

	mapping, ok := MapProviderCategory(account.AccountType, account.AccountSubtype)
	if !ok {
		return domain.NewValidationError("unable to map account type %s/%s",
			account.AccountType, account.AccountSubtype)
	}

	now := time.Now().UTC()
	amount := balance.Amount()

	if mapping.IsAsset {
		return c.upsertAsset(ctx, account, mapping.Asset, amount, now)
	}
	// Providers report owed amounts with either sign
	return c.upsertLiability(ctx, account, mapping.Liability, amount.Abs(), now)
}

func (c *Coordinator) upsertAsset(ctx context.Context, account *domain.ConnectedAccount, category domain.AssetCategory, value decimal.Decimal, now time.Time) error {
	asset, err := c.assets.GetByConnectedAccount(ctx, account.ID)
	switch {
	case err == nil:
		asset.Value = value
		asset.LastSyncedAt = &now
		return c.assets.Update(ctx, asset)
	case isNotFound(err):
		asset = &domain.Asset{
			ID:                 uuid.New(),
			Category:           category,
			Name:               account.DisplayName(),
			Value:              value,
			ConnectedAccountID: &account.ID,
			LastSyncedAt:       &now,
		}
		return c.assets.Create(ctx, asset)
	default:
		return err
	}
}

func (c *Coordinator) upsertLiability(ctx context.Context, account *domain.ConnectedAccount, category domain.LiabilityCategory, balance decimal.Decimal, now time.Time) error {
	liability, err := c.liabilities.GetByConnectedAccount(ctx, account.ID)
	switch {
	case err == nil:
		liability.Balance = balance
		liability.LastSyncedAt = &now
		return c.liabilities.Update(ctx, liability)
	case isNotFound(err):
		liability = &domain.Liability{
			ID:                 uuid.New(),
			Category:           category,
			Name:               account.DisplayName(),
			Balance:            balance,
			ConnectedAccountID: &account.ID,
			LastSyncedAt:       &now,
		}
		return c.liabilities.Create(ctx, liability)
	default:
		return err
	}
}

// syncHoldings full-refreshes the account's holdings: securities are
// upserted, then the account's holding rows are replaced wholesale.
func (c *Coordinator) syncHoldings(ctx context.Context, account *domain.ConnectedAccount) error {
	result, err := c.provider.GetHoldings(ctx, account.ProviderItemID)
	if err != nil {
		return domain.NewUpstreamError("fetch holdings", err)
	}

	securityIDs := make(map[string]uuid.UUID, len(result.Securities))
	for _, s := range result.Securities {
		stored, err := c.securities.UpsertByProviderID(ctx, &domain.Security{
			ID:                 uuid.New(),
			ProviderSecurityID: s.ProviderSecurityID,
			Name:               s.Name,
			Ticker:             s.Ticker,
			Type:               s.Type,
			IsCashEquivalent:   s.IsCashEquivalent,
			ClosePrice:         s.ClosePrice,
			Currency:           s.Currency,
		})
		if err != nil {
			return fmt.Errorf("failed to upsert security %s: %w", s.ProviderSecurityID, err)
		}
		securityIDs[s.ProviderSecurityID] = stored.ID
	}

	var fresh []*domain.Holding
	for _, h := range result.Holdings {
		// The item may span several accounts; keep only this one's rows
		if h.ProviderAccountID != account.ProviderAccountID {
			continue
		}
		securityID, ok := securityIDs[h.ProviderSecurityID]
		if !ok {
			continue
		}
		fresh = append(fresh, &domain.Holding{
			ID:                 uuid.New(),
			ConnectedAccountID: account.ID,
			SecurityID:         securityID,
			Quantity:           h.Quantity,
			InstitutionPrice:   h.InstitutionPrice,
			InstitutionValue:   h.InstitutionValue,
			CostBasis:          h.CostBasis,
			Currency:           h.Currency,
		})
	}

	return c.holdings.ReplaceForAccount(ctx, account.ID, fresh)
}

// syncTransactions drains the provider's incremental transaction feed from
// the account's stored cursor: added and modified rows are upserted by
// provider transaction id, retracted ids are deleted. The advanced cursor is
// stored on the account so the next sync resumes where this one stopped.
func (c *Coordinator) syncTransactions(ctx context.Context, account *domain.ConnectedAccount) error {
	cursor := account.TransactionsCursor

	for {
		page, err := c.provider.SyncTransactions(ctx, account.ProviderItemID, cursor)
		if err != nil {
			return domain.NewUpstreamError("sync transactions", err)
		}

		for _, pt := range append(page.Added, page.Modified...) {
			// The item may span several accounts; keep only this one's rows
			if pt.ProviderAccountID != account.ProviderAccountID {
				continue
			}
			if err := c.transactions.UpsertByProviderID(ctx, transactionFromProvider(account.ID, pt)); err != nil {
				return fmt.Errorf("failed to upsert transaction %s: %w", pt.ProviderTransactionID, err)
			}
		}

		for _, providerTxnID := range page.Removed {
			if err := c.transactions.DeleteByProviderID(ctx, providerTxnID); err != nil {
				return fmt.Errorf("failed to delete transaction %s: %w", providerTxnID, err)
			}
		}

		cursor = page.NextCursor
		if !page.HasMore {
			break
		}
	}

	account.TransactionsCursor = cursor
	return nil
}

func transactionFromProvider(accountID uuid.UUID, pt domain.ProviderTransaction) *domain.Transaction {
	return &domain.Transaction{
		ID:                    uuid.New(),
		ConnectedAccountID:    accountID,
		ProviderTransactionID: pt.ProviderTransactionID,
		ProviderAccountID:     pt.ProviderAccountID,
		Amount:                pt.Amount,
		Currency:              pt.Currency,
		Date:                  pt.Date,
		AuthorizedDate:        pt.AuthorizedDate,
		Name:                  pt.Name,
		MerchantName:          pt.MerchantName,
		CategoryPrimary:       pt.CategoryPrimary,
		CategoryDetailed:      pt.CategoryDetailed,
		PaymentChannel:        pt.PaymentChannel,
		Pending:               pt.Pending,
	}
}

// SyncAll refreshes every listed account independently: one account's failure
// never aborts the others, and the bulk result enumerates each failure. The
// call waits for every outcome before returning.
func (c *Coordinator) SyncAll(ctx context.Context, accountIDs []uuid.UUID) BulkSyncOutcome {
	type result struct {
		name string
		err  error
	}
	results := make([]result, len(accountIDs))

	var g errgroup.Group
	for i, accountID := range accountIDs {
		i, accountID := i, accountID
		g.Go(func() error {
			name := accountID.String()
			if account, err := c.accounts.GetByID(ctx, accountID); err == nil {
				name = account.AccountName
			}
			results[i] = result{name: name, err: c.SyncAccount(ctx, accountID)}
			return nil
		})
	}
	// Worker funcs never return an error; Wait is the fan-in barrier
	_ = g.Wait()

	outcome := BulkSyncOutcome{Total: len(accountIDs)}
	for i, r := range results {
		if r.err == nil {
			outcome.Successful++
			continue
		}
		outcome.Failed++
		outcome.Errors = append(outcome.Errors, SyncError{
			AccountID:   accountIDs[i],
			AccountName: r.name,
			Error:       r.err.Error(),
		})
	}

	c.logger.Info("bulk sync completed",
		zap.Int("total", outcome.Total),
		zap.Int("successful", outcome.Successful),
		zap.Int("failed", outcome.Failed))
	return outcome
}

func isNotFound(err error) bool {
	return errors.Is(err, domain.ErrNotFound)
}
