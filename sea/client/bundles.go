package client

import (
	"context"

	"github.com/pkg/errors"

	"github.com/betbot/gosea/sea/normalize"
	"github.com/betbot/gosea/sea/types"
)

// BundlesPage is one page of a bundle listing.
type BundlesPage struct {
	Bundles        []types.AssetBundle
	EstimatedCount int
}

// GetBundle fetches a bundle by slug, or nil when the API returns no record.
func (c *Client) GetBundle(ctx context.Context, slug string) (*types.AssetBundle, error) {
	resp, err := c.get(ctx, c.apiBase+bundlePath(slug), nil)
	if err != nil {
		return nil, errors.Wrapf(err, "get bundle %s", slug)
	}
	if isEmptyBody(resp.Body()) {
		return nil, nil
	}
	var raw normalize.AssetBundleJSON
	if err := decodeJSON(resp, &raw); err != nil {
		return nil, err
	}
	bundle, err := normalize.AssetBundleFromJSON(raw)
	if err != nil {
		return nil, errors.Wrapf(err, "get bundle %s", slug)
	}
	return bundle, nil
}

// GetBundles returns page (1-based) of the bundles matching q.
func (c *Client) GetBundles(ctx context.Context, q types.BundleQuery, page int) (*BundlesPage, error) {
	values := c.pageValues(page)
	overlay(values, q.Values())

	resp, err := c.get(ctx, c.apiBase+EndpointBundles, values)
	if err != nil {
		return nil, errors.Wrap(err, "get bundles")
	}
	var body struct {
		Bundles        []normalize.AssetBundleJSON `json:"bundles"`
		EstimatedCount normalize.FlexInt           `json:"estimated_count"`
	}
	if err := decodeJSON(resp, &body); err != nil {
		return nil, err
	}

	out := &BundlesPage{
		Bundles:        make([]types.AssetBundle, 0, len(body.Bundles)),
		EstimatedCount: int(body.EstimatedCount),
	}
	for i, raw := range body.Bundles {
		bundle, err := normalize.AssetBundleFromJSON(raw)
		if err != nil {
			return nil, errors.Wrapf(err, "get bundles: bundle #%d", i)
		}
		out.Bundles = append(out.Bundles, *bundle)
	}
	return out, nil
}
