package normalize

import (
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"

	"github.com/betbot/gosea/sea/types"
)

const (
	assetRecord      = "asset"
	contractRecord   = "asset_contract"
	collectionRecord = "collection"
	eventRecord      = "asset_event"
)

// AssetFromJSON converts an API asset. Orders embedded in the asset are
// normalized too; when only "orders" is present the sell and buy lists are
// derived from it by side.
func AssetFromJSON(raw AssetJSON) (*types.OpenSeaAsset, error) {
	if raw.AssetContract == nil {
		return nil, missing(assetRecord, "asset_contract")
	}
	if raw.TokenID == "" {
		return nil, missing(assetRecord, "token_id")
	}
	contract, err := AssetContractFromJSON(*raw.AssetContract)
	if err != nil {
		return nil, invalid(assetRecord, "asset_contract", err)
	}

	asset := &types.OpenSeaAsset{
		Asset: types.Asset{
			TokenAddress: contract.Address,
			TokenID:      string(raw.TokenID),
			SchemaName:   contract.SchemaName,
		},
		Name:              raw.Name,
		Description:       raw.Description,
		AssetContract:     *contract,
		IsPresale:         raw.IsPresale,
		ImageURL:          displayImageURL(raw),
		ImagePreviewURL:   raw.ImagePreviewURL,
		ImageURLOriginal:  raw.ImageOriginalURL,
		ImageURLThumbnail: raw.ImageThumbnailURL,
		ExternalLink:      raw.ExternalLink,
		Permalink:         raw.Permalink,
		Traits:            raw.Traits,
		NumSales:          int(raw.NumSales),
	}
	if raw.BackgroundColor != "" {
		asset.BackgroundColor = "#" + strings.TrimPrefix(raw.BackgroundColor, "#")
	}

	if raw.Owner != nil {
		if asset.Owner, err = AccountFromJSON(*raw.Owner); err != nil {
			return nil, invalid(assetRecord, "owner", err)
		}
	}
	if raw.Collection != nil {
		if asset.Collection, err = CollectionFromJSON(*raw.Collection); err != nil {
			return nil, invalid(assetRecord, "collection", err)
		}
	}
	if raw.LastSale != nil {
		if asset.LastSale, err = AssetEventFromJSON(*raw.LastSale); err != nil {
			return nil, invalid(assetRecord, "last_sale", err)
		}
	}
	if raw.TransferFee != nil {
		fee := *raw.TransferFee
		asset.TransferFee = &fee
	}
	if raw.TransferFeePaymentToken != nil {
		if asset.TransferFeePaymentToken, err = TokenFromJSON(*raw.TransferFeePaymentToken); err != nil {
			return nil, invalid(assetRecord, "transfer_fee_payment_token", err)
		}
	}

	if asset.Orders, err = OrdersFromJSON(raw.Orders); err != nil {
		return nil, invalid(assetRecord, "orders", err)
	}
	if asset.SellOrders, err = OrdersFromJSON(raw.SellOrders); err != nil {
		return nil, invalid(assetRecord, "sell_orders", err)
	}
	if asset.BuyOrders, err = OrdersFromJSON(raw.BuyOrders); err != nil {
		return nil, invalid(assetRecord, "buy_orders", err)
	}
	if asset.Orders != nil && asset.SellOrders == nil {
		asset.SellOrders = filterSide(asset.Orders, types.OrderSideSell)
	}
	if asset.Orders != nil && asset.BuyOrders == nil {
		asset.BuyOrders = filterSide(asset.Orders, types.OrderSideBuy)
	}

	return asset, nil
}

// Animated and vector images are served as-is; everything else prefers the preview.
func displayImageURL(raw AssetJSON) string {
	original := strings.ToLower(raw.ImageURL)
	if strings.HasSuffix(original, ".gif") || strings.HasSuffix(original, ".svg") {
		return raw.ImageURL
	}
	if raw.ImagePreviewURL != "" {
		return raw.ImagePreviewURL
	}
	return raw.ImageURL
}

func filterSide(orders []types.Order, side types.OrderSide) []types.Order {
	out := make([]types.Order, 0, len(orders))
	for _, o := range orders {
		if o.Side == side {
			out = append(out, o)
		}
	}
	return out
}

// AssetContractFromJSON converts the contract block of an asset or bundle.
func AssetContractFromJSON(raw AssetContractJSON) (*types.AssetContract, error) {
	if raw.Address == "" {
		return nil, missing(contractRecord, "address")
	}
	if !common.IsHexAddress(raw.Address) {
		return nil, invalid(contractRecord, "address", errors.Errorf("not a hex address: %q", raw.Address))
	}
	contract := &types.AssetContract{
		Name:                        raw.Name,
		Description:                 raw.Description,
		Address:                     raw.Address,
		Type:                        raw.AssetContractType,
		TokenSymbol:                 raw.Symbol,
		SellerFeeBasisPoints:        int(raw.SellerFeeBP),
		BuyerFeeBasisPoints:         int(raw.BuyerFeeBP),
		OpenseaSellerFeeBasisPoints: int(raw.OpenseaSellerFeeBP),
		OpenseaBuyerFeeBasisPoints:  int(raw.OpenseaBuyerFeeBP),
		DevSellerFeeBasisPoints:     int(raw.DevSellerFeeBP),
		DevBuyerFeeBasisPoints:      int(raw.DevBuyerFeeBP),
		ImageURL:                    raw.ImageURL,
		ExternalLink:                raw.ExternalLink,
		WikiLink:                    raw.WikiLink,
	}
	if raw.SchemaName != "" {
		schema, err := types.ParseSchemaName(raw.SchemaName)
		if err != nil {
			return nil, invalid(contractRecord, "schema_name", err)
		}
		contract.SchemaName = schema
	}
	return contract, nil
}

// CollectionFromJSON converts the collection block of an asset.
func CollectionFromJSON(raw CollectionJSON) (*types.Collection, error) {
	collection := &types.Collection{
		Name:                        raw.Name,
		Slug:                        raw.Slug,
		Description:                 raw.Description,
		Editors:                     raw.Editors,
		Hidden:                      raw.Hidden,
		Featured:                    raw.Featured,
		FeaturedImageURL:            raw.FeaturedImageURL,
		ImageURL:                    raw.ImageURL,
		LargeImageURL:               raw.LargeImageURL,
		ExternalLink:                raw.ExternalURL,
		WikiLink:                    raw.WikiURL,
		PayoutAddress:               raw.PayoutAddress,
		OpenseaSellerFeeBasisPoints: int(raw.OpenseaSellerFeeBP),
		OpenseaBuyerFeeBasisPoints:  int(raw.OpenseaBuyerFeeBP),
		DevSellerFeeBasisPoints:     int(raw.DevSellerFeeBP),
		DevBuyerFeeBasisPoints:      int(raw.DevBuyerFeeBP),
		PaymentTokens:               make([]types.FungibleToken, 0, len(raw.PaymentTokens)),
	}
	if raw.CreatedDate != "" {
		created, err := parseAPITime(raw.CreatedDate)
		if err != nil {
			return nil, invalid(collectionRecord, "created_date", err)
		}
		collection.CreatedDate = created
	}
	for _, t := range raw.PaymentTokens {
		token, err := TokenFromJSON(t)
		if err != nil {
			return nil, invalid(collectionRecord, "payment_tokens", err)
		}
		collection.PaymentTokens = append(collection.PaymentTokens, *token)
	}
	return collection, nil
}

// AssetEventFromJSON converts an asset event such as the last sale.
func AssetEventFromJSON(raw AssetEventJSON) (*types.AssetEvent, error) {
	event := &types.AssetEvent{
		EventType:   raw.EventType,
		AuctionType: raw.AuctionType,
	}
	if raw.TotalPrice != nil {
		event.TotalPrice = *raw.TotalPrice
	}
	if raw.EventTimestamp != "" {
		ts, err := parseAPITime(raw.EventTimestamp)
		if err != nil {
			return nil, invalid(eventRecord, "event_timestamp", err)
		}
		event.EventTimestamp = ts
	}
	var err error
	if raw.Transaction != nil {
		if event.Transaction, err = TransactionFromJSON(*raw.Transaction); err != nil {
			return nil, invalid(eventRecord, "transaction", err)
		}
	}
	if raw.PaymentToken != nil {
		if event.PaymentToken, err = TokenFromJSON(*raw.PaymentToken); err != nil {
			return nil, invalid(eventRecord, "payment_token", err)
		}
	}
	return event, nil
}

// TransactionFromJSON converts the transaction attached to an asset event.
func TransactionFromJSON(raw TransactionJSON) (*types.Transaction, error) {
	const record = "transaction"
	tx := &types.Transaction{
		TransactionHash:  raw.TransactionHash,
		TransactionIndex: string(raw.TransactionIndex),
		BlockNumber:      string(raw.BlockNumber),
		BlockHash:        raw.BlockHash,
	}
	dates := []struct {
		field string
		value string
		dst   *time.Time
	}{
		{"created_date", raw.CreatedDate, &tx.CreatedDate},
		{"modified_date", raw.ModifiedDate, &tx.ModifiedDate},
		{"timestamp", raw.Timestamp, &tx.Timestamp},
	}
	for _, d := range dates {
		if d.value == "" {
			continue
		}
		t, err := parseAPITime(d.value)
		if err != nil {
			return nil, invalid(record, d.field, err)
		}
		*d.dst = t
	}

	var err error
	if raw.FromAccount != nil {
		if tx.FromAccount, err = AccountFromJSON(*raw.FromAccount); err != nil {
			return nil, invalid(record, "from_account", err)
		}
	}
	if raw.ToAccount != nil {
		if tx.ToAccount, err = AccountFromJSON(*raw.ToAccount); err != nil {
			return nil, invalid(record, "to_account", err)
		}
	}
	return tx, nil
}
