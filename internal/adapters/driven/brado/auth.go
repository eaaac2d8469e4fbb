package brado

import (
	"context"
	"fmt"
	"net/http"

	"github.com/brado-project/brado-cli/internal/core/domain"
)

// Me returns the identity bound to the current token.
func (c *Client) Me(ctx context.Context) (domain.AuthMe, error) {
	var me domain.AuthMe
	err := c.Call(ctx, http.MethodGet, APIPrefix+"/auth/me", nil, &me, true)
	if err != nil {
		return domain.AuthMe{}, fmt.Errorf("auth me: %w", err)
	}
	return me, nil
}
