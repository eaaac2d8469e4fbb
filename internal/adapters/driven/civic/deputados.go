package civic

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"

	"github.com/brado-project/brado-cli/internal/core/domain"
)

const (
	// DefaultListLimit covers the full chamber (513 seats).
	DefaultListLimit = 513

	// DefaultSummaryLimit covers every active mandate with slack.
	DefaultSummaryLimit = 600
)

// ListDeputados lists normalized legislator profiles.
func (c *Client) ListDeputados(ctx context.Context, query domain.DeputadoQuery) ([]domain.Deputado, error) {
	params := url.Values{}
	if query.Nome != "" {
		params.Set("nome", query.Nome)
	}
	if query.UF != "" {
		params.Set("uf", query.UF)
	}
	if query.Partido != "" {
		params.Set("partido", query.Partido)
	}
	limit := query.Limit
	if limit <= 0 {
		limit = DefaultListLimit
	}
	params.Set("limit", strconv.Itoa(limit))

	body, err := c.get(ctx, "/deputados/normalizados?"+params.Encode())
	if err != nil {
		return nil, fmt.Errorf("list deputados: %w", err)
	}

	var deputados []domain.Deputado
	if err := json.Unmarshal(body, &deputados); err != nil {
		return nil, fmt.Errorf("decode deputados: %w", err)
	}
	return deputados, nil
}

// GetDeputado fetches one normalized profile. A missing profile is not
// an error: it returns (nil, nil).
func (c *Client) GetDeputado(ctx context.Context, id int64) (*domain.Deputado, error) {
	body, err := c.get(ctx, fmt.Sprintf("/deputados/normalizados/%d", id))
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get deputado %d: %w", id, err)
	}

	var deputado domain.Deputado
	if err := json.Unmarshal(body, &deputado); err != nil {
		return nil, fmt.Errorf("decode deputado %d: %w", id, err)
	}
	return &deputado, nil
}

// ExpenseSummary lists aggregated reimbursement summaries.
func (c *Client) ExpenseSummary(ctx context.Context, limit int) ([]domain.ExpenseSummary, error) {
	if limit <= 0 {
		limit = DefaultSummaryLimit
	}

	body, err := c.get(ctx, fmt.Sprintf("/deputados/despesas/resumo?limit=%d", limit))
	if err != nil {
		return nil, fmt.Errorf("expense summary: %w", err)
	}

	var summaries []domain.ExpenseSummary
	if err := json.Unmarshal(body, &summaries); err != nil {
		return nil, fmt.Errorf("decode expense summary: %w", err)
	}
	return summaries, nil
}

// Expenses lists reimbursement lines for one legislator.
func (c *Client) Expenses(ctx context.Context, deputadoID int64, query domain.ExpenseQuery) ([]domain.ExpenseItem, error) {
	params := url.Values{}
	if query.Ano > 0 {
		params.Set("ano", strconv.Itoa(query.Ano))
	}
	if query.Mes > 0 {
		params.Set("mes", strconv.Itoa(query.Mes))
	}
	if query.Limit > 0 {
		params.Set("limit", strconv.Itoa(query.Limit))
	}
	if query.Page > 0 {
		params.Set("page", strconv.Itoa(query.Page))
	}

	path := fmt.Sprintf("/deputados/%d/despesas", deputadoID)
	if encoded := params.Encode(); encoded != "" {
		path += "?" + encoded
	}

	body, err := c.get(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("expenses for deputado %d: %w", deputadoID, err)
	}

	var items []domain.ExpenseItem
	if err := json.Unmarshal(body, &items); err != nil {
		return nil, fmt.Errorf("decode expenses: %w", err)
	}
	return items, nil
}
