package types

import (
	"time"

	"github.com/shopspring/decimal"
)

// Asset identifies a token by contract address and token ID.
type Asset struct {
	TokenAddress string
	TokenID      string
	SchemaName   SchemaName
}

// AssetContract describes the contract an asset lives in, including its fee structure.
type AssetContract struct {
	Name        string
	Description string
	Address     string
	Type        string
	SchemaName  SchemaName
	TokenSymbol string

	SellerFeeBasisPoints        int
	BuyerFeeBasisPoints         int
	OpenseaSellerFeeBasisPoints int
	OpenseaBuyerFeeBasisPoints  int
	DevSellerFeeBasisPoints     int
	DevBuyerFeeBasisPoints      int

	ImageURL     string
	ExternalLink string
	WikiLink     string
}

// Collection groups assets for display and fee purposes.
type Collection struct {
	Name             string
	Slug             string
	Description      string
	CreatedDate      time.Time
	Editors          []string
	Hidden           bool
	Featured         bool
	FeaturedImageURL string
	ImageURL         string
	LargeImageURL    string
	ExternalLink     string
	WikiLink         string
	PayoutAddress    string
	PaymentTokens    []FungibleToken

	OpenseaSellerFeeBasisPoints int
	OpenseaBuyerFeeBasisPoints  int
	DevSellerFeeBasisPoints     int
	DevBuyerFeeBasisPoints      int
}

// Trait is a free-form attribute attached to an asset.
type Trait struct {
	TraitType   string      `json:"trait_type"`
	Value       interface{} `json:"value"`
	DisplayType string      `json:"display_type,omitempty"`
	MaxValue    interface{} `json:"max_value,omitempty"`
	TraitCount  int         `json:"trait_count,omitempty"`
}

// OpenSeaAsset is an Asset enriched with marketplace metadata.
type OpenSeaAsset struct {
	Asset

	Name          string
	Description   string
	Owner         *Account
	AssetContract AssetContract
	Collection    *Collection

	// Orders is nil when the API did not include orders.
	Orders     []Order
	SellOrders []Order
	BuyOrders  []Order

	IsPresale         bool
	ImageURL          string
	ImagePreviewURL   string
	ImageURLOriginal  string
	ImageURLThumbnail string
	ExternalLink      string
	Permalink         string
	BackgroundColor   string
	Traits            []Trait
	NumSales          int
	LastSale          *AssetEvent

	TransferFee             *decimal.Decimal
	TransferFeePaymentToken *FungibleToken
}

// AssetEvent is a marketplace event on an asset, such as its last sale.
type AssetEvent struct {
	EventType      string
	EventTimestamp time.Time
	AuctionType    string
	TotalPrice     decimal.Decimal
	Transaction    *Transaction
	PaymentToken   *FungibleToken
}

// Transaction is the on-chain transaction behind an asset event.
type Transaction struct {
	FromAccount      *Account
	ToAccount        *Account
	CreatedDate      time.Time
	ModifiedDate     time.Time
	TransactionHash  string
	TransactionIndex string
	BlockNumber      string
	BlockHash        string
	Timestamp        time.Time
}
