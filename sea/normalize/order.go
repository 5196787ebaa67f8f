package normalize

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/betbot/gosea/sea/types"
)

// NullAddress is the fee recipient of orders waiting for the best counter order.
var NullAddress = strings.ToLower(common.Address{}.Hex())

const orderRecord = "order"

// DecodeOrder parses a raw API order.
func DecodeOrder(b []byte) (*types.Order, error) {
	var raw OrderJSON
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil, invalid(orderRecord, "", err)
	}
	return OrderFromJSON(raw)
}

// OrderFromJSON converts an API order into a typed order. Any missing required
// field or out-of-range enum yields a *ParseError and no order.
func OrderFromJSON(raw OrderJSON) (*types.Order, error) {
	r := &fieldReader{record: orderRecord}

	metadata := r.metadata(raw.Metadata)
	maker := r.account(raw.Maker, "maker")
	taker := r.account(raw.Taker, "taker")
	feeRecipient := r.account(raw.FeeRecipient, "fee_recipient")

	unsigned := types.UnsignedOrder{
		Exchange:           r.address(raw.Exchange, "exchange"),
		MakerRelayerFee:    r.number(raw.MakerRelayerFee, "maker_relayer_fee"),
		TakerRelayerFee:    r.number(raw.TakerRelayerFee, "taker_relayer_fee"),
		MakerProtocolFee:   r.number(raw.MakerProtocolFee, "maker_protocol_fee"),
		TakerProtocolFee:   r.number(raw.TakerProtocolFee, "taker_protocol_fee"),
		MakerReferrerFee:   optionalDecimal(raw.MakerReferrerFee, decimal.Zero),
		Target:             r.address(raw.Target, "target"),
		Calldata:           r.hex(raw.Calldata, "calldata"),
		ReplacementPattern: r.hex(raw.ReplacementPattern, "replacement_pattern"),
		StaticTarget:       r.address(raw.StaticTarget, "static_target"),
		StaticExtradata:    r.hex(raw.StaticExtradata, "static_extradata"),
		PaymentToken:       r.address(raw.PaymentToken, "payment_token"),
		BasePrice:          r.number(raw.BasePrice, "base_price"),
		Extra:              r.number(raw.Extra, "extra"),
		Quantity:           optionalDecimal(raw.Quantity, decimal.NewFromInt(1)),
		ListingTime:        r.number(raw.ListingTime, "listing_time"),
		ExpirationTime:     r.number(raw.ExpirationTime, "expiration_time"),
		Salt:               r.number(raw.Salt, "salt"),
		Metadata:           metadata,
	}
	feeMethod := r.enum(raw.FeeMethod, "fee_method")
	side := r.enum(raw.Side, "side")
	saleKind := r.enum(raw.SaleKind, "sale_kind")
	howToCall := r.enum(raw.HowToCall, "how_to_call")
	if r.err != nil {
		return nil, r.err
	}

	var err error
	if unsigned.FeeMethod, err = types.ParseFeeMethod(feeMethod); err != nil {
		return nil, invalid(orderRecord, "fee_method", err)
	}
	if unsigned.Side, err = types.ParseOrderSide(side); err != nil {
		return nil, invalid(orderRecord, "side", err)
	}
	if unsigned.SaleKind, err = types.ParseSaleKind(saleKind); err != nil {
		return nil, invalid(orderRecord, "sale_kind", err)
	}
	if unsigned.HowToCall, err = types.ParseHowToCall(howToCall); err != nil {
		return nil, invalid(orderRecord, "how_to_call", err)
	}

	unsigned.Maker = maker.Address
	unsigned.Taker = taker.Address
	unsigned.FeeRecipient = feeRecipient.Address
	unsigned.WaitingForBestCounterOrder = strings.EqualFold(feeRecipient.Address, NullAddress)
	if raw.EnglishAuctionReservePrice != nil {
		reserve := *raw.EnglishAuctionReservePrice
		unsigned.EnglishAuctionReservePrice = &reserve
	}

	order := &types.Order{
		UnsignedOrder:        unsigned,
		Hash:                 raw.OrderHash,
		CurrentPrice:         optionalDecimal(raw.CurrentPrice, decimal.Zero),
		CurrentBounty:        optionalDecimal(raw.CurrentBounty, decimal.Zero),
		MakerAccount:         maker,
		TakerAccount:         taker,
		FeeRecipientAccount:  feeRecipient,
		CancelledOrFinalized: raw.Cancelled || raw.Finalized,
		MarkedInvalid:        raw.MarkedInvalid,
	}
	if order.Hash == "" {
		order.Hash = raw.Hash
	}

	if raw.CreatedDate != "" {
		created, err := parseAPITime(raw.CreatedDate)
		if err != nil {
			return nil, invalid(orderRecord, "created_date", err)
		}
		order.CreatedTime = decimal.NewFromInt(created.Round(time.Second).Unix())
	}

	if raw.V != "" {
		v, err := strconv.ParseUint(string(raw.V), 10, 8)
		if err != nil {
			return nil, invalid(orderRecord, "v", err)
		}
		order.V = uint8(v)
	}
	order.R = raw.R
	order.S = raw.S

	if raw.PaymentTokenContract != nil {
		if order.PaymentTokenContract, err = TokenFromJSON(*raw.PaymentTokenContract); err != nil {
			return nil, invalid(orderRecord, "payment_token_contract", err)
		}
	}
	if raw.Asset != nil {
		if order.Asset, err = AssetFromJSON(*raw.Asset); err != nil {
			return nil, invalid(orderRecord, "asset", err)
		}
	}
	if raw.AssetBundle != nil {
		if order.AssetBundle, err = AssetBundleFromJSON(*raw.AssetBundle); err != nil {
			return nil, invalid(orderRecord, "asset_bundle", err)
		}
	}

	return order, nil
}

// OrdersFromJSON converts a list of API orders. A nil input stays nil.
func OrdersFromJSON(raws []OrderJSON) ([]types.Order, error) {
	if raws == nil {
		return nil, nil
	}
	orders := make([]types.Order, 0, len(raws))
	for i, raw := range raws {
		order, err := OrderFromJSON(raw)
		if err != nil {
			return nil, errors.Wrapf(err, "order #%d", i)
		}
		orders = append(orders, *order)
	}
	return orders, nil
}

// DecodeOrders parses a list of raw API orders one by one, so a malformed
// element fails with a *ParseError like DecodeOrder does. A nil input stays nil.
func DecodeOrders(raws []json.RawMessage) ([]types.Order, error) {
	if raws == nil {
		return nil, nil
	}
	orders := make([]types.Order, 0, len(raws))
	for i, raw := range raws {
		order, err := DecodeOrder(raw)
		if err != nil {
			return nil, errors.Wrapf(err, "order #%d", i)
		}
		orders = append(orders, *order)
	}
	return orders, nil
}

// fieldReader collects the first error while reading required fields.
type fieldReader struct {
	record string
	err    error
}

func (r *fieldReader) fail(err error) {
	if r.err == nil {
		r.err = err
	}
}

func (r *fieldReader) number(d *decimal.Decimal, field string) decimal.Decimal {
	if d == nil {
		r.fail(missing(r.record, field))
		return decimal.Zero
	}
	return *d
}

func (r *fieldReader) enum(v *FlexInt, field string) int {
	if v == nil {
		r.fail(missing(r.record, field))
		return 0
	}
	return int(*v)
}

func (r *fieldReader) address(v, field string) string {
	if v == "" {
		r.fail(missing(r.record, field))
		return ""
	}
	if !common.IsHexAddress(v) {
		r.fail(invalid(r.record, field, errors.Errorf("not a hex address: %q", v)))
		return ""
	}
	return v
}

func (r *fieldReader) hex(v, field string) string {
	if v == "" {
		r.fail(missing(r.record, field))
		return ""
	}
	if _, err := hexutil.Decode(v); err != nil {
		r.fail(invalid(r.record, field, err))
		return ""
	}
	return v
}

func (r *fieldReader) account(raw *AccountJSON, field string) *types.Account {
	if raw == nil {
		r.fail(missing(r.record, field))
		return &types.Account{}
	}
	account, err := AccountFromJSON(*raw)
	if err != nil {
		r.fail(invalid(r.record, field, err))
		return &types.Account{}
	}
	return account
}

func (r *fieldReader) metadata(raw *MetadataJSON) types.ExchangeMetadata {
	if raw == nil {
		r.fail(missing(r.record, "metadata"))
		return types.ExchangeMetadata{}
	}
	metadata := types.ExchangeMetadata{ReferrerAddress: raw.ReferrerAddress}

	switch {
	case raw.Asset != nil && raw.Bundle != nil:
		r.fail(invalid(r.record, "metadata", errors.New("both asset and bundle are set")))
	case raw.Asset != nil:
		if raw.Schema == nil || *raw.Schema == "" {
			r.fail(missing(r.record, "metadata.schema"))
			break
		}
		schema, err := types.ParseSchemaName(*raw.Schema)
		if err != nil {
			r.fail(invalid(r.record, "metadata.schema", err))
			break
		}
		asset := *raw.Asset
		metadata.Asset = &asset
		metadata.Schema = schema
	case raw.Bundle != nil:
		if raw.Bundle.Schemas == nil {
			r.fail(missing(r.record, "metadata.bundle.schemas"))
			break
		}
		schemas := make([]types.SchemaName, 0, len(raw.Bundle.Schemas))
		for _, s := range raw.Bundle.Schemas {
			schema, err := types.ParseSchemaName(s)
			if err != nil {
				r.fail(invalid(r.record, "metadata.bundle.schemas", err))
				break
			}
			schemas = append(schemas, schema)
		}
		metadata.Bundle = &types.WyvernBundle{
			Assets:       raw.Bundle.Assets,
			Schemas:      schemas,
			Name:         raw.Bundle.Name,
			Description:  raw.Bundle.Description,
			ExternalLink: raw.Bundle.ExternalLink,
		}
	default:
		r.fail(missing(r.record, "metadata.asset"))
	}
	return metadata
}

func optionalDecimal(d *decimal.Decimal, def decimal.Decimal) decimal.Decimal {
	if d == nil {
		return def
	}
	return *d
}

// API timestamps are UTC and usually carry no zone designator.
var apiTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
}

func parseAPITime(s string) (time.Time, error) {
	var lastErr error
	for _, layout := range apiTimeLayouts {
		t, err := time.ParseInLocation(layout, s, time.UTC)
		if err == nil {
			return t.UTC(), nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
