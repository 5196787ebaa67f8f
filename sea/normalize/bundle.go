package normalize

import (
	"github.com/betbot/gosea/sea/types"
)

const bundleRecord = "asset_bundle"

// AssetBundleFromJSON converts an API bundle together with its assets.
func AssetBundleFromJSON(raw AssetBundleJSON) (*types.AssetBundle, error) {
	if raw.Assets == nil {
		return nil, missing(bundleRecord, "assets")
	}
	bundle := &types.AssetBundle{
		Name:         raw.Name,
		Slug:         raw.Slug,
		Description:  raw.Description,
		ExternalLink: raw.ExternalLink,
		Permalink:    raw.Permalink,
		Assets:       make([]types.OpenSeaAsset, 0, len(raw.Assets)),
	}
	for _, a := range raw.Assets {
		asset, err := AssetFromJSON(a)
		if err != nil {
			return nil, invalid(bundleRecord, "assets", err)
		}
		bundle.Assets = append(bundle.Assets, *asset)
	}

	var err error
	if raw.Maker != nil {
		if bundle.Maker, err = AccountFromJSON(*raw.Maker); err != nil {
			return nil, invalid(bundleRecord, "maker", err)
		}
	}
	if raw.AssetContract != nil {
		if bundle.AssetContract, err = AssetContractFromJSON(*raw.AssetContract); err != nil {
			return nil, invalid(bundleRecord, "asset_contract", err)
		}
	}
	if bundle.SellOrders, err = OrdersFromJSON(raw.SellOrders); err != nil {
		return nil, invalid(bundleRecord, "sell_orders", err)
	}
	return bundle, nil
}
