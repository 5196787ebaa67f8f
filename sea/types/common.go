package types

import (
	"fmt"
	"strings"
)

// OrderSide is the side of an order. Values match the exchange contract.
type OrderSide int

const (
	OrderSideBuy  OrderSide = 0
	OrderSideSell OrderSide = 1
)

func (s OrderSide) String() string {
	switch s {
	case OrderSideBuy:
		return "buy"
	case OrderSideSell:
		return "sell"
	default:
		return fmt.Sprintf("OrderSide(%d)", int(s))
	}
}

// ParseOrderSide converts a wire value, rejecting anything outside the enum.
func ParseOrderSide(v int) (OrderSide, error) {
	switch OrderSide(v) {
	case OrderSideBuy, OrderSideSell:
		return OrderSide(v), nil
	}
	return 0, &EnumError{Enum: "side", Value: fmt.Sprint(v)}
}

// FeeMethod selects how the relayer fee is charged.
type FeeMethod int

const (
	FeeMethodProtocolFee FeeMethod = 0
	FeeMethodSplitFee    FeeMethod = 1
)

func (m FeeMethod) String() string {
	switch m {
	case FeeMethodProtocolFee:
		return "protocol_fee"
	case FeeMethodSplitFee:
		return "split_fee"
	default:
		return fmt.Sprintf("FeeMethod(%d)", int(m))
	}
}

// ParseFeeMethod converts a wire value, rejecting unknown fee methods.
func ParseFeeMethod(v int) (FeeMethod, error) {
	switch FeeMethod(v) {
	case FeeMethodProtocolFee, FeeMethodSplitFee:
		return FeeMethod(v), nil
	}
	return 0, &EnumError{Enum: "fee_method", Value: fmt.Sprint(v)}
}

// SaleKind distinguishes fixed price listings from Dutch auctions.
type SaleKind int

const (
	SaleKindFixedPrice   SaleKind = 0
	SaleKindDutchAuction SaleKind = 1
)

func (k SaleKind) String() string {
	switch k {
	case SaleKindFixedPrice:
		return "fixed_price"
	case SaleKindDutchAuction:
		return "dutch_auction"
	default:
		return fmt.Sprintf("SaleKind(%d)", int(k))
	}
}

// ParseSaleKind converts a wire value, rejecting unknown sale kinds.
func ParseSaleKind(v int) (SaleKind, error) {
	switch SaleKind(v) {
	case SaleKindFixedPrice, SaleKindDutchAuction:
		return SaleKind(v), nil
	}
	return 0, &EnumError{Enum: "sale_kind", Value: fmt.Sprint(v)}
}

// HowToCall is the call type the proxy uses against the order target.
type HowToCall int

const (
	HowToCallCall         HowToCall = 0
	HowToCallDelegateCall HowToCall = 1
	HowToCallStaticCall   HowToCall = 2
	HowToCallCreate       HowToCall = 3
)

func (h HowToCall) String() string {
	switch h {
	case HowToCallCall:
		return "call"
	case HowToCallDelegateCall:
		return "delegate_call"
	case HowToCallStaticCall:
		return "static_call"
	case HowToCallCreate:
		return "create"
	default:
		return fmt.Sprintf("HowToCall(%d)", int(h))
	}
}

// ParseHowToCall converts a wire value, rejecting unknown call types.
func ParseHowToCall(v int) (HowToCall, error) {
	switch HowToCall(v) {
	case HowToCallCall, HowToCallDelegateCall, HowToCallStaticCall, HowToCallCreate:
		return HowToCall(v), nil
	}
	return 0, &EnumError{Enum: "how_to_call", Value: fmt.Sprint(v)}
}

// SchemaName identifies the token standard an asset is traded under.
type SchemaName string

const (
	SchemaERC20               SchemaName = "ERC20"
	SchemaERC721              SchemaName = "ERC721"
	SchemaERC1155             SchemaName = "ERC1155"
	SchemaLegacyEnjin         SchemaName = "LegacyEnjin"
	SchemaENSShortNameAuction SchemaName = "ENSShortNameAuction"
)

// ParseSchemaName accepts only the token standards the orderbook trades.
func ParseSchemaName(v string) (SchemaName, error) {
	switch SchemaName(v) {
	case SchemaERC20, SchemaERC721, SchemaERC1155, SchemaLegacyEnjin, SchemaENSShortNameAuction:
		return SchemaName(v), nil
	}
	return "", &EnumError{Enum: "schema", Value: v}
}

// Network selects one of the well-known API deployments.
type Network string

const (
	NetworkMain    Network = "main"
	NetworkRinkeby Network = "rinkeby"
)

// ParseNetwork maps a config value to a network. Empty means main.
func ParseNetwork(v string) (Network, error) {
	switch Network(strings.ToLower(strings.TrimSpace(v))) {
	case "", NetworkMain, "mainnet":
		return NetworkMain, nil
	case NetworkRinkeby:
		return NetworkRinkeby, nil
	}
	return "", &EnumError{Enum: "network", Value: v}
}

// EnumError is returned when a wire value falls outside a closed enum.
type EnumError struct {
	Enum  string
	Value string
}

func (e *EnumError) Error() string {
	return fmt.Sprintf("invalid %s value %q", e.Enum, e.Value)
}
