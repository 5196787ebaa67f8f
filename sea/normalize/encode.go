package normalize

import (
	"strings"

	"github.com/betbot/gosea/sea/types"
)

// OrderPostJSON is the payload accepted by the order posting endpoint.
// Enum fields keep their exact integer values.
type OrderPostJSON struct {
	Exchange     string `json:"exchange"`
	Maker        string `json:"maker"`
	Taker        string `json:"taker"`
	FeeRecipient string `json:"feeRecipient"`

	MakerRelayerFee  string `json:"makerRelayerFee"`
	TakerRelayerFee  string `json:"takerRelayerFee"`
	MakerProtocolFee string `json:"makerProtocolFee"`
	TakerProtocolFee string `json:"takerProtocolFee"`
	MakerReferrerFee string `json:"makerReferrerFee"`

	FeeMethod types.FeeMethod `json:"feeMethod"`
	Side      types.OrderSide `json:"side"`
	SaleKind  types.SaleKind  `json:"saleKind"`
	HowToCall types.HowToCall `json:"howToCall"`

	Target             string `json:"target"`
	Calldata           string `json:"calldata"`
	ReplacementPattern string `json:"replacementPattern"`
	StaticTarget       string `json:"staticTarget"`
	StaticExtradata    string `json:"staticExtradata"`
	PaymentToken       string `json:"paymentToken"`

	Quantity                   string `json:"quantity"`
	BasePrice                  string `json:"basePrice"`
	EnglishAuctionReservePrice string `json:"englishAuctionReservePrice,omitempty"`
	Extra                      string `json:"extra"`
	CreatedTime                string `json:"createdTime,omitempty"`
	ListingTime                string `json:"listingTime"`
	ExpirationTime             string `json:"expirationTime"`
	Salt                       string `json:"salt"`

	Metadata types.ExchangeMetadata `json:"metadata"`

	Hash string `json:"hash,omitempty"`
	V    uint8  `json:"v,omitempty"`
	R    string `json:"r,omitempty"`
	S    string `json:"s,omitempty"`
}

// OrderToJSON renders an order in the posting format. Numeric fields are
// written with decimal.String so canonical inputs come back unchanged.
func OrderToJSON(order *types.Order) OrderPostJSON {
	out := OrderPostJSON{
		Exchange:           strings.ToLower(order.Exchange),
		Maker:              strings.ToLower(order.Maker),
		Taker:              strings.ToLower(order.Taker),
		FeeRecipient:       strings.ToLower(order.FeeRecipient),
		MakerRelayerFee:    order.MakerRelayerFee.String(),
		TakerRelayerFee:    order.TakerRelayerFee.String(),
		MakerProtocolFee:   order.MakerProtocolFee.String(),
		TakerProtocolFee:   order.TakerProtocolFee.String(),
		MakerReferrerFee:   order.MakerReferrerFee.String(),
		FeeMethod:          order.FeeMethod,
		Side:               order.Side,
		SaleKind:           order.SaleKind,
		HowToCall:          order.HowToCall,
		Target:             strings.ToLower(order.Target),
		Calldata:           order.Calldata,
		ReplacementPattern: order.ReplacementPattern,
		StaticTarget:       strings.ToLower(order.StaticTarget),
		StaticExtradata:    order.StaticExtradata,
		PaymentToken:       strings.ToLower(order.PaymentToken),
		Quantity:           order.Quantity.String(),
		BasePrice:          order.BasePrice.String(),
		Extra:              order.Extra.String(),
		ListingTime:        order.ListingTime.String(),
		ExpirationTime:     order.ExpirationTime.String(),
		Salt:               order.Salt.String(),
		Metadata:           order.Metadata,
		Hash:               order.Hash,
		V:                  order.V,
		R:                  order.R,
		S:                  order.S,
	}
	if order.EnglishAuctionReservePrice != nil {
		out.EnglishAuctionReservePrice = order.EnglishAuctionReservePrice.String()
	}
	if !order.CreatedTime.IsZero() {
		out.CreatedTime = order.CreatedTime.String()
	}
	return out
}
