package client

import (
	"context"

	"github.com/pkg/errors"

	"github.com/betbot/gosea/sea/normalize"
	"github.com/betbot/gosea/sea/types"
)

// TokensPage is one page of payment tokens.
type TokensPage struct {
	Tokens []types.FungibleToken
}

// GetTokens lists the payment tokens matching q. Unlike the other listings,
// the page-derived limit and offset take precedence over q.Limit and q.Offset.
func (c *Client) GetTokens(ctx context.Context, q types.TokenQuery, page int) (*TokensPage, error) {
	values := q.Values()
	overlay(values, c.pageValues(page))

	resp, err := c.get(ctx, c.apiBase+EndpointTokens, values)
	if err != nil {
		return nil, errors.Wrap(err, "get tokens")
	}
	var raw []normalize.TokenJSON
	if err := decodeJSON(resp, &raw); err != nil {
		return nil, err
	}

	out := &TokensPage{Tokens: make([]types.FungibleToken, 0, len(raw))}
	for i, t := range raw {
		token, err := normalize.TokenFromJSON(t)
		if err != nil {
			return nil, errors.Wrapf(err, "get tokens: token #%d", i)
		}
		out.Tokens = append(out.Tokens, *token)
	}
	return out, nil
}
