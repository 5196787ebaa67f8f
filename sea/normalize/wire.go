package normalize

import (
	"encoding/json"
	"strconv"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/betbot/gosea/sea/types"
)

// FlexString decodes either a JSON string or a JSON number into its text form.
type FlexString string

func (s *FlexString) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			return err
		}
		*s = FlexString(str)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return errors.Errorf("expected string or number, got %s", string(b))
	}
	*s = FlexString(n.String())
	return nil
}

// FlexInt decodes an integer sent either as a JSON number or a numeric string.
type FlexInt int

func (i *FlexInt) UnmarshalJSON(b []byte) error {
	var s FlexString
	if err := s.UnmarshalJSON(b); err != nil {
		return err
	}
	if s == "" {
		*i = 0
		return nil
	}
	n, err := strconv.Atoi(string(s))
	if err != nil {
		return errors.Wrapf(err, "invalid integer %q", string(s))
	}
	*i = FlexInt(n)
	return nil
}

// OrderJSON is an order as returned by the orderbook API.
type OrderJSON struct {
	OrderHash     string        `json:"order_hash"`
	Hash          string        `json:"hash"`
	CreatedDate   string        `json:"created_date"`
	Cancelled     bool          `json:"cancelled"`
	Finalized     bool          `json:"finalized"`
	MarkedInvalid bool          `json:"marked_invalid"`
	Metadata      *MetadataJSON `json:"metadata"`

	Exchange     string       `json:"exchange"`
	Maker        *AccountJSON `json:"maker"`
	Taker        *AccountJSON `json:"taker"`
	FeeRecipient *AccountJSON `json:"fee_recipient"`

	MakerRelayerFee  *decimal.Decimal `json:"maker_relayer_fee"`
	TakerRelayerFee  *decimal.Decimal `json:"taker_relayer_fee"`
	MakerProtocolFee *decimal.Decimal `json:"maker_protocol_fee"`
	TakerProtocolFee *decimal.Decimal `json:"taker_protocol_fee"`
	MakerReferrerFee *decimal.Decimal `json:"maker_referrer_fee"`

	FeeMethod *FlexInt `json:"fee_method"`
	Side      *FlexInt `json:"side"`
	SaleKind  *FlexInt `json:"sale_kind"`
	HowToCall *FlexInt `json:"how_to_call"`

	Target             string `json:"target"`
	Calldata           string `json:"calldata"`
	ReplacementPattern string `json:"replacement_pattern"`
	StaticTarget       string `json:"static_target"`
	StaticExtradata    string `json:"static_extradata"`
	PaymentToken       string `json:"payment_token"`

	PaymentTokenContract *TokenJSON `json:"payment_token_contract"`

	Quantity                   *decimal.Decimal `json:"quantity"`
	BasePrice                  *decimal.Decimal `json:"base_price"`
	Extra                      *decimal.Decimal `json:"extra"`
	CurrentBounty              *decimal.Decimal `json:"current_bounty"`
	CurrentPrice               *decimal.Decimal `json:"current_price"`
	EnglishAuctionReservePrice *decimal.Decimal `json:"english_auction_reserve_price"`
	ListingTime                *decimal.Decimal `json:"listing_time"`
	ExpirationTime             *decimal.Decimal `json:"expiration_time"`
	Salt                       *decimal.Decimal `json:"salt"`

	V FlexString `json:"v"`
	R string     `json:"r"`
	S string     `json:"s"`

	Asset       *AssetJSON       `json:"asset"`
	AssetBundle *AssetBundleJSON `json:"asset_bundle"`
}

// MetadataJSON is the exchange metadata block of an order.
type MetadataJSON struct {
	Asset           *types.WyvernAsset  `json:"asset"`
	Schema          *string             `json:"schema"`
	Bundle          *BundleMetadataJSON `json:"bundle"`
	ReferrerAddress string              `json:"referrerAddress"`
}

type BundleMetadataJSON struct {
	Assets       []types.WyvernAsset `json:"assets"`
	Schemas      []string            `json:"schemas"`
	Name         string              `json:"name"`
	Description  string              `json:"description"`
	ExternalLink string              `json:"external_link"`
}

// AccountJSON is an account reference embedded in other records.
type AccountJSON struct {
	Address       string    `json:"address"`
	Config        string    `json:"config"`
	ProfileImgURL string    `json:"profile_img_url"`
	User          *UserJSON `json:"user"`
}

type UserJSON struct {
	Username string `json:"username"`
}

// AssetJSON is an asset as returned by the asset endpoints.
type AssetJSON struct {
	TokenID       FlexString         `json:"token_id"`
	AssetContract *AssetContractJSON `json:"asset_contract"`
	Name          string             `json:"name"`
	Description   string             `json:"description"`
	Owner         *AccountJSON       `json:"owner"`
	Collection    *CollectionJSON    `json:"collection"`

	Orders     []OrderJSON `json:"orders"`
	SellOrders []OrderJSON `json:"sell_orders"`
	BuyOrders  []OrderJSON `json:"buy_orders"`

	IsPresale         bool            `json:"is_presale"`
	ImageURL          string          `json:"image_url"`
	ImagePreviewURL   string          `json:"image_preview_url"`
	ImageOriginalURL  string          `json:"image_original_url"`
	ImageThumbnailURL string          `json:"image_thumbnail_url"`
	ExternalLink      string          `json:"external_link"`
	Permalink         string          `json:"permalink"`
	BackgroundColor   string          `json:"background_color"`
	Traits            []types.Trait   `json:"traits"`
	NumSales          FlexInt         `json:"num_sales"`
	LastSale          *AssetEventJSON `json:"last_sale"`

	TransferFee             *decimal.Decimal `json:"transfer_fee"`
	TransferFeePaymentToken *TokenJSON       `json:"transfer_fee_payment_token"`
}

type AssetContractJSON struct {
	Address            string  `json:"address"`
	Name               string  `json:"name"`
	Description        string  `json:"description"`
	AssetContractType  string  `json:"asset_contract_type"`
	SchemaName         string  `json:"schema_name"`
	Symbol             string  `json:"symbol"`
	ImageURL           string  `json:"image_url"`
	ExternalLink       string  `json:"external_link"`
	WikiLink           string  `json:"wiki_link"`
	SellerFeeBP        FlexInt `json:"seller_fee_basis_points"`
	BuyerFeeBP         FlexInt `json:"buyer_fee_basis_points"`
	OpenseaSellerFeeBP FlexInt `json:"opensea_seller_fee_basis_points"`
	OpenseaBuyerFeeBP  FlexInt `json:"opensea_buyer_fee_basis_points"`
	DevSellerFeeBP     FlexInt `json:"dev_seller_fee_basis_points"`
	DevBuyerFeeBP      FlexInt `json:"dev_buyer_fee_basis_points"`
}

type CollectionJSON struct {
	Name               string      `json:"name"`
	Slug               string      `json:"slug"`
	Description        string      `json:"description"`
	CreatedDate        string      `json:"created_date"`
	Editors            []string    `json:"editors"`
	Hidden             bool        `json:"hidden"`
	Featured           bool        `json:"featured"`
	FeaturedImageURL   string      `json:"featured_image_url"`
	ImageURL           string      `json:"image_url"`
	LargeImageURL      string      `json:"large_image_url"`
	ExternalURL        string      `json:"external_url"`
	WikiURL            string      `json:"wiki_url"`
	PayoutAddress      string      `json:"payout_address"`
	PaymentTokens      []TokenJSON `json:"payment_tokens"`
	OpenseaSellerFeeBP FlexInt     `json:"opensea_seller_fee_basis_points"`
	OpenseaBuyerFeeBP  FlexInt     `json:"opensea_buyer_fee_basis_points"`
	DevSellerFeeBP     FlexInt     `json:"dev_seller_fee_basis_points"`
	DevBuyerFeeBP      FlexInt     `json:"dev_buyer_fee_basis_points"`
}

type AssetEventJSON struct {
	EventType      string           `json:"event_type"`
	EventTimestamp string           `json:"event_timestamp"`
	AuctionType    string           `json:"auction_type"`
	TotalPrice     *decimal.Decimal `json:"total_price"`
	Transaction    *TransactionJSON `json:"transaction"`
	PaymentToken   *TokenJSON       `json:"payment_token"`
}

type TransactionJSON struct {
	FromAccount      *AccountJSON `json:"from_account"`
	ToAccount        *AccountJSON `json:"to_account"`
	CreatedDate      string       `json:"created_date"`
	ModifiedDate     string       `json:"modified_date"`
	TransactionHash  string       `json:"transaction_hash"`
	TransactionIndex FlexString   `json:"transaction_index"`
	BlockNumber      FlexString   `json:"block_number"`
	BlockHash        string       `json:"block_hash"`
	Timestamp        string       `json:"timestamp"`
}

// AssetBundleJSON is a bundle as returned by the bundle endpoints.
type AssetBundleJSON struct {
	Maker         *AccountJSON       `json:"maker"`
	Assets        []AssetJSON        `json:"assets"`
	AssetContract *AssetContractJSON `json:"asset_contract"`
	Name          string             `json:"name"`
	Slug          string             `json:"slug"`
	Description   string             `json:"description"`
	ExternalLink  string             `json:"external_link"`
	Permalink     string             `json:"permalink"`
	SellOrders    []OrderJSON        `json:"sell_orders"`
}

// TokenJSON is a payment token descriptor.
type TokenJSON struct {
	Name     string           `json:"name"`
	Symbol   string           `json:"symbol"`
	Decimals FlexInt          `json:"decimals"`
	Address  string           `json:"address"`
	ImageURL string           `json:"image_url"`
	EthPrice *decimal.Decimal `json:"eth_price"`
	UsdPrice *decimal.Decimal `json:"usd_price"`
}
