package services

import (
	"context"

	"github.com/brado-project/brado-cli/internal/core/domain"
	"github.com/brado-project/brado-cli/internal/core/ports/driven"
	"github.com/brado-project/brado-cli/internal/core/ports/driving"
)

// Ensure LegislativeService implements the driving port.
var _ driving.LegislativeService = (*LegislativeService)(nil)

// LegislativeService lists legislative propositions.
type LegislativeService struct {
	api driven.BradoAPI
}

// NewLegislativeService creates a legislative service.
func NewLegislativeService(api driven.BradoAPI) *LegislativeService {
	return &LegislativeService{api: api}
}

// Propositions lists recent propositions.
func (s *LegislativeService) Propositions(ctx context.Context, limit int) ([]domain.PropositionItem, error) {
	resp, err := s.api.Propositions(ctx, limit)
	if err != nil {
		return nil, err
	}
	return resp.Items, nil
}
