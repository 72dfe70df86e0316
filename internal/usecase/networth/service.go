package networth

import (
	"context"
	"fmt"

	"github.com/youcanfi/networth-backend/internal/domain"
)

// Service loads every asset and liability record and assembles the summary
type Service struct {
	AssetRepo     domain.AssetRepository
	LiabilityRepo domain.LiabilityRepository
}

// NewService creates a new Service instance
func NewService(assetRepo domain.AssetRepository, liabilityRepo domain.LiabilityRepository) *Service {
	return &Service{
		AssetRepo:     assetRepo,
		LiabilityRepo: liabilityRepo,
	}
}

// GetSummary computes the current net-worth summary over all stored records
func (s *Service) GetSummary(ctx context.Context) (*NetWorthSummary, error) {
	assets, err := s.AssetRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list assets: %w", err)
	}

	liabilities, err := s.LiabilityRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list liabilities: %w", err)
	}

	summary := Summarize(assets, liabilities)
	return &summary, nil
}
