package types

import (
	"net/url"
	"strconv"
)

// OrderQuery filters orderbook queries. Zero values are omitted from the request.
type OrderQuery struct {
	Owner                string
	Maker                string
	Taker                string
	Side                 *OrderSide
	SaleKind             *SaleKind
	AssetContractAddress string
	PaymentTokenAddress  string
	TokenID              string
	TokenIDs             []string
	IsEnglish            *bool
	IsExpired            *bool
	Bundled              *bool
	IncludeInvalid       *bool
	ListedAfter          int64
	ListedBefore         int64
	OrderBy              string
	OrderDirection       string

	// Limit and Offset override the values derived from the page.
	Limit  int
	Offset int
}

// Values renders the query as URL parameters.
func (q OrderQuery) Values() url.Values {
	v := url.Values{}
	setString(v, "owner", q.Owner)
	setString(v, "maker", q.Maker)
	setString(v, "taker", q.Taker)
	if q.Side != nil {
		v.Set("side", strconv.Itoa(int(*q.Side)))
	}
	if q.SaleKind != nil {
		v.Set("sale_kind", strconv.Itoa(int(*q.SaleKind)))
	}
	setString(v, "asset_contract_address", q.AssetContractAddress)
	setString(v, "payment_token_address", q.PaymentTokenAddress)
	setString(v, "token_id", q.TokenID)
	for _, id := range q.TokenIDs {
		v.Add("token_ids", id)
	}
	setBool(v, "is_english", q.IsEnglish)
	setBool(v, "is_expired", q.IsExpired)
	setBool(v, "bundled", q.Bundled)
	setBool(v, "include_invalid", q.IncludeInvalid)
	setInt64(v, "listed_after", q.ListedAfter)
	setInt64(v, "listed_before", q.ListedBefore)
	setString(v, "order_by", q.OrderBy)
	setString(v, "order_direction", q.OrderDirection)
	setInt64(v, "limit", int64(q.Limit))
	setInt64(v, "offset", int64(q.Offset))
	return v
}

// AssetQuery filters asset listings.
type AssetQuery struct {
	Owner                string
	AssetContractAddress string
	TokenIDs             []string
	Search               string
	OrderBy              string
	OrderDirection       string
	Limit                int
	Offset               int
}

// Values renders the query as URL parameters. Token ids repeat the key.
func (q AssetQuery) Values() url.Values {
	v := url.Values{}
	setString(v, "owner", q.Owner)
	setString(v, "asset_contract_address", q.AssetContractAddress)
	for _, id := range q.TokenIDs {
		v.Add("token_ids", id)
	}
	setString(v, "search", q.Search)
	setString(v, "order_by", q.OrderBy)
	setString(v, "order_direction", q.OrderDirection)
	setInt64(v, "limit", int64(q.Limit))
	setInt64(v, "offset", int64(q.Offset))
	return v
}

// BundleQuery filters bundle listings.
type BundleQuery struct {
	OnSale               *bool
	Owner                string
	AssetContractAddress string
	TokenIDs             []string
	Limit                int
	Offset               int
}

// Values renders the query as URL parameters.
func (q BundleQuery) Values() url.Values {
	v := url.Values{}
	setBool(v, "on_sale", q.OnSale)
	setString(v, "owner", q.Owner)
	setString(v, "asset_contract_address", q.AssetContractAddress)
	for _, id := range q.TokenIDs {
		v.Add("token_ids", id)
	}
	setInt64(v, "limit", int64(q.Limit))
	setInt64(v, "offset", int64(q.Offset))
	return v
}

// TokenQuery filters payment token listings.
type TokenQuery struct {
	Symbol  string
	Address string
	Name    string
	Limit   int
	Offset  int
}

// Values renders the query as URL parameters.
func (q TokenQuery) Values() url.Values {
	v := url.Values{}
	setString(v, "symbol", q.Symbol)
	setString(v, "address", q.Address)
	setString(v, "name", q.Name)
	setInt64(v, "limit", int64(q.Limit))
	setInt64(v, "offset", int64(q.Offset))
	return v
}

func setString(v url.Values, key, val string) {
	if val != "" {
		v.Set(key, val)
	}
}

func setBool(v url.Values, key string, val *bool) {
	if val != nil {
		v.Set(key, strconv.FormatBool(*val))
	}
}

func setInt64(v url.Values, key string, val int64) {
	if val > 0 {
		v.Set(key, strconv.FormatInt(val, 10))
	}
}
