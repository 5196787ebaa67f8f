package types

import "github.com/shopspring/decimal"

// AssetBundle is a named group of assets traded as one unit.
type AssetBundle struct {
	Maker         *Account
	Assets        []OpenSeaAsset
	AssetContract *AssetContract
	Name          string
	Slug          string
	Description   string
	ExternalLink  string
	Permalink     string

	// SellOrders is nil when the API did not include orders.
	SellOrders []Order
}

// FungibleToken describes a payment token.
type FungibleToken struct {
	Name     string
	Symbol   string
	Decimals int
	Address  string
	ImageURL string
	EthPrice *decimal.Decimal
	UsdPrice *decimal.Decimal
}

// Account is a marketplace account keyed by wallet address.
type Account struct {
	Address       string
	Config        string
	ProfileImgURL string
	User          *User
}

// User is the optional profile attached to an account.
type User struct {
	Username string
}
