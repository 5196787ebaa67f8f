package main

import (
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/urfave/cli/v2"

	"github.com/betbot/gosea/sea/normalize"
	"github.com/betbot/gosea/sea/pricing"
	"github.com/betbot/gosea/sea/types"
)

var orderFilterFlags = []cli.Flag{
	&cli.StringFlag{Name: "owner", Usage: "address of the asset owner"},
	&cli.StringFlag{Name: "maker", Usage: "address of the order maker"},
	&cli.StringFlag{Name: "taker", Usage: "address of the order taker"},
	&cli.StringFlag{Name: "side", Usage: "buy or sell"},
	&cli.StringFlag{Name: "token-address", Usage: "asset contract address"},
	&cli.StringFlag{Name: "token-id", Usage: "asset token id"},
	&cli.StringFlag{Name: "payment-token", Usage: "payment token address"},
	&cli.BoolFlag{Name: "bundled", Usage: "only bundle orders"},
}

var orderCmd = cli.Command{
	Name:  "order",
	Usage: "fetch the first order matching the filters",
	Flags: append([]cli.Flag{
		&cli.BoolFlag{Name: "estimate", Usage: "also print a client-side current price estimate"},
	}, orderFilterFlags...),
	Action: getOrderAction,
}

var ordersCmd = cli.Command{
	Name:  "orders",
	Usage: "list one page of orders matching the filters",
	Flags: append([]cli.Flag{
		&cli.IntFlag{Name: "page", Usage: "1-based page number", Value: 1},
	}, orderFilterFlags...),
	Action: getOrdersAction,
}

var postOrderCmd = cli.Command{
	Name:      "post-order",
	Usage:     "post a signed order read from a JSON file in the API format",
	ArgsUsage: "<order.json>",
	Action:    postOrderAction,
}

func orderQuery(ctx *cli.Context) (types.OrderQuery, error) {
	q := types.OrderQuery{
		Owner:                ctx.String("owner"),
		Maker:                ctx.String("maker"),
		Taker:                ctx.String("taker"),
		AssetContractAddress: ctx.String("token-address"),
		TokenID:              ctx.String("token-id"),
		PaymentTokenAddress:  ctx.String("payment-token"),
	}
	if ctx.IsSet("side") {
		var side types.OrderSide
		switch strings.ToLower(ctx.String("side")) {
		case "buy", "0":
			side = types.OrderSideBuy
		case "sell", "1":
			side = types.OrderSideSell
		default:
			return q, errors.Errorf("invalid side %q", ctx.String("side"))
		}
		q.Side = &side
	}
	if ctx.IsSet("bundled") {
		bundled := ctx.Bool("bundled")
		q.Bundled = &bundled
	}
	return q, nil
}

func getOrderAction(ctx *cli.Context) error {
	c, err := newClient(ctx)
	if err != nil {
		return err
	}
	q, err := orderQuery(ctx)
	if err != nil {
		return err
	}

	order, err := c.GetOrder(ctx.Context, q)
	if err != nil {
		return err
	}
	if order == nil {
		return errors.New("no matching order")
	}
	if !ctx.Bool("estimate") {
		return printJSON(order)
	}

	estimate := pricing.EstimateCurrentPrice(order, time.Now(), pricing.Options{
		Backtrack: pricing.DefaultBacktrack,
		RoundUp:   true,
	})
	return printJSON(struct {
		Order          *types.Order
		EstimatedPrice decimal.Decimal
	}{order, estimate})
}

func getOrdersAction(ctx *cli.Context) error {
	c, err := newClient(ctx)
	if err != nil {
		return err
	}
	q, err := orderQuery(ctx)
	if err != nil {
		return err
	}

	page, err := c.GetOrders(ctx.Context, q, ctx.Int("page"))
	if err != nil {
		return err
	}
	return printJSON(page)
}

func postOrderAction(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return &invalidUsageError{ctx, "post-order"}
	}
	raw, err := os.ReadFile(ctx.Args().First())
	if err != nil {
		return errors.Wrap(err, "read order file")
	}
	order, err := normalize.DecodeOrder(raw)
	if err != nil {
		return err
	}
	if !order.IsSigned() {
		return errors.New("order is not signed")
	}

	c, err := newClient(ctx)
	if err != nil {
		return err
	}
	stored, err := c.PostOrder(ctx.Context, order)
	if err != nil {
		return err
	}
	return printJSON(stored)
}
