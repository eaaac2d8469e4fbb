package brado

import (
	"context"
	"fmt"
	"net/http"

	"github.com/brado-project/brado-cli/internal/core/domain"
)

// DefaultPropositionsLimit caps a propositions listing when the caller
// does not say otherwise.
const DefaultPropositionsLimit = 20

// Propositions lists recent legislative propositions.
func (c *Client) Propositions(ctx context.Context, limit int) (domain.PropositionsResponse, error) {
	if limit <= 0 {
		limit = DefaultPropositionsLimit
	}
	path := fmt.Sprintf("%s/legislative/propositions?limit=%d", APIPrefix, limit)

	var resp domain.PropositionsResponse
	if err := c.Call(ctx, http.MethodGet, path, nil, &resp, true); err != nil {
		return domain.PropositionsResponse{}, fmt.Errorf("list propositions: %w", err)
	}
	return resp, nil
}
