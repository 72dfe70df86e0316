package holdings

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/youcanfi/networth-backend/internal/domain"
)

// Service loads holdings, securities and accounts and reconciles them into
// the global portfolio view
type Service struct {
	HoldingRepo  domain.HoldingRepository
	SecurityRepo domain.SecurityRepository
	AccountRepo  domain.ConnectedAccountRepository
}

// NewService creates a new Service instance
func NewService(
	holdingRepo domain.HoldingRepository,
	securityRepo domain.SecurityRepository,
	accountRepo domain.ConnectedAccountRepository,
) *Service {
	return &Service{
		HoldingRepo:  holdingRepo,
		SecurityRepo: securityRepo,
		AccountRepo:  accountRepo,
	}
}

// Portfolio reconciles holdings across every linked account
func (s *Service) Portfolio(ctx context.Context) (*PortfolioView, error) {
	holdings, err := s.HoldingRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list holdings: %w", err)
	}

	securities, err := s.SecurityRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list securities: %w", err)
	}

	accounts, err := s.AccountRepo.List(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("failed to list connected accounts: %w", err)
	}

	view := Reconcile(
		holdings,
		lo.SliceToMap(securities, func(s *domain.Security) (uuid.UUID, *domain.Security) { return s.ID, s }),
		lo.SliceToMap(accounts, func(a *domain.ConnectedAccount) (uuid.UUID, *domain.ConnectedAccount) { return a.ID, a }),
	)
	return &view, nil
}

// AccountHoldings returns the raw holdings of one connected account
func (s *Service) AccountHoldings(ctx context.Context, accountID uuid.UUID) ([]*domain.Holding, error) {
	if _, err := s.AccountRepo.GetByID(ctx, accountID); err != nil {
		return nil, err
	}
	return s.HoldingRepo.ListByAccount(ctx, accountID)
}
