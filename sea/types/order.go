package types

import "github.com/shopspring/decimal"

// WyvernAsset is the asset reference carried in order metadata.
type WyvernAsset struct {
	ID       string `json:"id"`
	Address  string `json:"address"`
	Quantity string `json:"quantity,omitempty"`
}

// WyvernBundle is the bundle reference carried in order metadata.
type WyvernBundle struct {
	Assets       []WyvernAsset `json:"assets"`
	Schemas      []SchemaName  `json:"schemas"`
	Name         string        `json:"name,omitempty"`
	Description  string        `json:"description,omitempty"`
	ExternalLink string        `json:"external_link,omitempty"`
}

// ExchangeMetadata says what an order trades. Exactly one of Asset or Bundle is set.
type ExchangeMetadata struct {
	Asset           *WyvernAsset  `json:"asset,omitempty"`
	Schema          SchemaName    `json:"schema,omitempty"`
	Bundle          *WyvernBundle `json:"bundle,omitempty"`
	ReferrerAddress string        `json:"referrerAddress,omitempty"`
}

// IsBundle reports whether the metadata references a bundle.
func (m ExchangeMetadata) IsBundle() bool {
	return m.Bundle != nil
}

// UnsignedOrder is an order before signing. It never carries signature fields.
type UnsignedOrder struct {
	Exchange     string
	Maker        string
	Taker        string
	FeeRecipient string

	MakerRelayerFee  decimal.Decimal
	TakerRelayerFee  decimal.Decimal
	MakerProtocolFee decimal.Decimal
	TakerProtocolFee decimal.Decimal
	MakerReferrerFee decimal.Decimal

	FeeMethod FeeMethod
	Side      OrderSide
	SaleKind  SaleKind
	HowToCall HowToCall

	Target             string
	Calldata           string
	ReplacementPattern string
	StaticTarget       string
	StaticExtradata    string
	PaymentToken       string

	BasePrice decimal.Decimal
	Extra     decimal.Decimal
	Quantity  decimal.Decimal

	// EnglishAuctionReservePrice is only set for English auction sell orders.
	EnglishAuctionReservePrice *decimal.Decimal

	ListingTime    decimal.Decimal
	ExpirationTime decimal.Decimal
	Salt           decimal.Decimal

	// WaitingForBestCounterOrder is true when the fee recipient is the null address.
	WaitingForBestCounterOrder bool

	Metadata ExchangeMetadata
}

// ECSignature is an ECDSA signature split into its wire components.
type ECSignature struct {
	V uint8
	R string
	S string
}

// Order is a signed order together with the fields the API adds on read.
type Order struct {
	UnsignedOrder
	ECSignature

	Hash string

	CreatedTime   decimal.Decimal
	CurrentPrice  decimal.Decimal
	CurrentBounty decimal.Decimal

	MakerAccount        *Account
	TakerAccount        *Account
	FeeRecipientAccount *Account

	PaymentTokenContract *FungibleToken

	CancelledOrFinalized bool
	MarkedInvalid        bool

	Asset       *OpenSeaAsset
	AssetBundle *AssetBundle
}

// IsSigned reports whether the order carries signature components.
func (o *Order) IsSigned() bool {
	return o.R != "" && o.S != ""
}
