package client

import (
	"context"
	"strings"

	"github.com/pkg/errors"

	"github.com/betbot/gosea/sea/normalize"
	"github.com/betbot/gosea/sea/types"
)

// AssetsPage is one page of an asset listing.
type AssetsPage struct {
	Assets         []types.OpenSeaAsset
	EstimatedCount int
}

// GetAsset fetches a single asset. It returns nil when the API answers with an
// empty body.
func (c *Client) GetAsset(ctx context.Context, tokenAddress, tokenID string) (*types.OpenSeaAsset, error) {
	resp, err := c.get(ctx, c.apiBase+assetPath(tokenAddress, tokenID), nil)
	if err != nil {
		return nil, errors.Wrapf(err, "get asset %s/%s", tokenAddress, tokenID)
	}
	if isEmptyBody(resp.Body()) {
		return nil, nil
	}
	var raw normalize.AssetJSON
	if err := decodeJSON(resp, &raw); err != nil {
		return nil, err
	}
	asset, err := normalize.AssetFromJSON(raw)
	if err != nil {
		return nil, errors.Wrapf(err, "get asset %s/%s", tokenAddress, tokenID)
	}
	return asset, nil
}

// GetAssets returns page (1-based) of the assets matching q.
func (c *Client) GetAssets(ctx context.Context, q types.AssetQuery, page int) (*AssetsPage, error) {
	values := c.pageValues(page)
	overlay(values, q.Values())

	resp, err := c.get(ctx, c.apiBase+EndpointAssets, values)
	if err != nil {
		return nil, errors.Wrap(err, "get assets")
	}
	var body struct {
		Assets         []normalize.AssetJSON `json:"assets"`
		EstimatedCount normalize.FlexInt     `json:"estimated_count"`
	}
	if err := decodeJSON(resp, &body); err != nil {
		return nil, err
	}

	out := &AssetsPage{
		Assets:         make([]types.OpenSeaAsset, 0, len(body.Assets)),
		EstimatedCount: int(body.EstimatedCount),
	}
	for i, raw := range body.Assets {
		asset, err := normalize.AssetFromJSON(raw)
		if err != nil {
			return nil, errors.Wrapf(err, "get assets: asset #%d", i)
		}
		out.Assets = append(out.Assets, *asset)
	}
	return out, nil
}

// PostAssetWhitelist adds email to the whitelist of a presale asset and
// reports whether the API accepted it.
func (c *Client) PostAssetWhitelist(ctx context.Context, tokenAddress, tokenID, email string) (bool, error) {
	resp, err := c.post(ctx, c.apiBase+assetWhitelistPath(tokenAddress, tokenID), map[string]string{"email": email})
	if err != nil {
		return false, errors.Wrapf(err, "whitelist asset %s/%s", tokenAddress, tokenID)
	}
	var body struct {
		Success bool `json:"success"`
	}
	if err := decodeJSON(resp, &body); err != nil {
		return false, err
	}
	return body.Success, nil
}

// isEmptyBody reports whether a success body carries no record.
func isEmptyBody(b []byte) bool {
	s := strings.TrimSpace(string(b))
	return s == "" || s == "null"
}
