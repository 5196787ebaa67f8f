// Package pricing estimates the price an order would settle at right now.
package pricing

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/betbot/gosea/sea/types"
)

// DefaultBacktrack offsets the clock so the estimate trails chain time slightly.
const DefaultBacktrack = 30 * time.Second

var (
	basisPoints = decimal.NewFromInt(10000)
	one         = decimal.NewFromInt(1)
)

// Options tunes EstimateCurrentPrice.
type Options struct {
	Backtrack time.Duration
	// RoundUp rounds the result to the next integer unit.
	RoundUp bool
}

// EstimateCurrentPrice computes the current price of an order at now.
//
// Fixed-price orders cost their base price. Dutch auctions move linearly by
// Extra between listing and expiration: sell prices fall, buy prices rise.
// Sell orders with a fee recipient also include the taker relayer fee.
func EstimateCurrentPrice(order *types.Order, now time.Time, opts Options) decimal.Decimal {
	price := order.BasePrice
	at := decimal.NewFromInt(now.Add(-opts.Backtrack).Unix())

	if order.SaleKind == types.SaleKindDutchAuction {
		price = order.BasePrice.Add(auctionDelta(order.UnsignedOrder, at))
	}

	if order.Side == types.OrderSideSell && !order.WaitingForBestCounterOrder {
		price = price.Mul(order.TakerRelayerFee.Div(basisPoints).Add(one))
	}

	if opts.RoundUp {
		price = price.Ceil()
	}
	return price
}

func auctionDelta(order types.UnsignedOrder, at decimal.Decimal) decimal.Decimal {
	duration := order.ExpirationTime.Sub(order.ListingTime)
	if !duration.IsPositive() {
		return decimal.Zero
	}
	elapsed := at.Sub(order.ListingTime)
	diff := order.Extra.Mul(elapsed).Div(duration)
	if order.Side == types.OrderSideSell {
		return diff.Neg()
	}
	return diff
}
