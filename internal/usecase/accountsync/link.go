package accountsync

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/youcanfi/networth-backend/internal/domain"
)

// EntityType names the side a link target lives on
type EntityType string

const (
	EntityAsset     EntityType = "asset"
	EntityLiability EntityType = "liability"
)

// LinkSession starts a provider link flow and returns its session token
func (c *Coordinator) LinkSession(ctx context.Context) (string, error) {
	token, err := c.provider.CreateLinkSession(ctx)
	if err != nil {
		return "", domain.NewUpstreamError("create link session", err)
	}
	return token, nil
}

// ExchangeLink trades a completed link result for connected account records,
// one per account the provider granted access to.
func (c *Coordinator) ExchangeLink(ctx context.Context, linkResult string, provider string) ([]*domain.ConnectedAccount, error) {
	providerAccounts, err := c.provider.ExchangeLinkResult(ctx, linkResult)
	if err != nil {
		return nil, domain.NewUpstreamError("exchange link result", err)
	}

	accounts := make([]*domain.ConnectedAccount, 0, len(providerAccounts))
	for _, pa := range providerAccounts {
		account := &domain.ConnectedAccount{
			ID:                uuid.New(),
			Provider:          provider,
			ProviderItemID:    pa.ProviderItemID,
			ProviderAccountID: pa.ProviderAccountID,
			InstitutionName:   pa.InstitutionName,
			AccountName:       pa.AccountName,
			AccountType:       pa.AccountType,
			AccountSubtype:    pa.AccountSubtype,
			IsActive:          true,
		}
		if err := c.accounts.Create(ctx, account); err != nil {
			return nil, err
		}
		accounts = append(accounts, account)
		c.logger.Info("account connected",
			zap.String("account_id", account.ID.String()),
			zap.String("institution", account.InstitutionName))
	}
	return accounts, nil
}

// LinkAccount attaches a connected account to an existing asset or liability.
// An account already linked to a different entity, or an entity already
// linked to a different account, is a validation error, never a silent
// overwrite. The entity is synced immediately after linking; a sync failure
// leaves the link in place.
func (c *Coordinator) LinkAccount(ctx context.Context, accountID uuid.UUID, entityType EntityType, entityID uuid.UUID) error {
	account, err := c.accounts.GetByID(ctx, accountID)
	if err != nil {
		return err
	}

	if err := c.ensureUnlinked(ctx, account.ID, entityType, entityID); err != nil {
		return err
	}

	switch entityType {
	case EntityAsset:
		asset, err := c.assets.GetByID(ctx, entityID)
		if err != nil {
			return err
		}
		if asset.ConnectedAccountID != nil && *asset.ConnectedAccountID != accountID {
			return domain.NewValidationError("asset %s is already linked to account %s",
				entityID, *asset.ConnectedAccountID)
		}
		asset.ConnectedAccountID = &account.ID
		if err := c.assets.Update(ctx, asset); err != nil {
			return err
		}
	case EntityLiability:
		liability, err := c.liabilities.GetByID(ctx, entityID)
		if err != nil {
			return err
		}
		if liability.ConnectedAccountID != nil && *liability.ConnectedAccountID != accountID {
			return domain.NewValidationError("liability %s is already linked to account %s",
				entityID, *liability.ConnectedAccountID)
		}
		liability.ConnectedAccountID = &account.ID
		if err := c.liabilities.Update(ctx, liability); err != nil {
			return err
		}
	default:
		return domain.NewValidationError("invalid entity type %q", entityType)
	}

	if err := c.SyncAccount(ctx, accountID); err != nil {
		// Link succeeded; the first refresh can be retried
		c.logger.Warn("sync after linking failed",
			zap.String("account_id", accountID.String()),
			zap.Error(err))
	}
	return nil
}

// ensureUnlinked rejects linking an account that already feeds a different
// entity on either side
func (c *Coordinator) ensureUnlinked(ctx context.Context, accountID uuid.UUID, entityType EntityType, entityID uuid.UUID) error {
	if asset, err := c.assets.GetByConnectedAccount(ctx, accountID); err == nil {
		if entityType != EntityAsset || asset.ID != entityID {
			return domain.NewValidationError("account %s is already linked to asset %s",
				accountID, asset.ID)
		}
	} else if !isNotFound(err) {
		return err
	}

	if liability, err := c.liabilities.GetByConnectedAccount(ctx, accountID); err == nil {
		if entityType != EntityLiability || liability.ID != entityID {
			return domain.NewValidationError("account %s is already linked to liability %s",
				accountID, liability.ID)
		}
	} else if !isNotFound(err) {
		return err
	}

	return nil
}

// Disconnect deactivates a connected account and detaches the entity it fed.
// The entity keeps its last synced value and becomes a manual record.
func (c *Coordinator) Disconnect(ctx context.Context, accountID uuid.UUID) error {
	account, err := c.accounts.GetByID(ctx, accountID)
	if err != nil {
		return err
	}

	if err := c.provider.RemoveItem(ctx, account.ProviderItemID); err != nil {
		return domain.NewUpstreamError("remove provider item", err)
	}

	now := time.Now().UTC()
	account.IsActive = false
	account.UpdatedAt = now
	if err := c.accounts.Update(ctx, account); err != nil {
		return err
	}

	if asset, err := c.assets.GetByConnectedAccount(ctx, accountID); err == nil {
		asset.ConnectedAccountID = nil
		if err := c.assets.Update(ctx, asset); err != nil {
			return err
		}
	} else if !isNotFound(err) {
		return err
	}

	if liability, err := c.liabilities.GetByConnectedAccount(ctx, accountID); err == nil {
		liability.ConnectedAccountID = nil
		if err := c.liabilities.Update(ctx, liability); err != nil {
			return err
		}
	} else if !isNotFound(err) {
		return err
	}

	c.logger.Info("account disconnected",
		zap.String("account_id", accountID.String()))
	return nil
}
