package main

import (
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/betbot/gosea/sea/types"
)

var bundleCmd = cli.Command{
	Name:      "bundle",
	Usage:     "fetch a bundle by slug",
	ArgsUsage: "<slug>",
	Action:    getBundleAction,
}

var bundlesCmd = cli.Command{
	Name:  "bundles",
	Usage: "list one page of bundles",
	Flags: []cli.Flag{
		&cli.BoolFlag{Name: "on-sale", Usage: "only bundles with an open sell order"},
		&cli.StringFlag{Name: "owner", Usage: "address of the bundle owner"},
		&cli.StringFlag{Name: "token-address", Usage: "asset contract address"},
		&cli.IntFlag{Name: "page", Usage: "1-based page number", Value: 1},
	},
	Action: getBundlesAction,
}

var tokensCmd = cli.Command{
	Name:  "tokens",
	Usage: "list payment tokens",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "symbol", Usage: "token symbol, e.g. WETH"},
		&cli.StringFlag{Name: "address", Usage: "token contract address"},
		&cli.StringFlag{Name: "name", Usage: "token name"},
		&cli.IntFlag{Name: "page", Usage: "1-based page number", Value: 1},
	},
	Action: getTokensAction,
}

func getBundleAction(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return &invalidUsageError{ctx, "bundle"}
	}
	c, err := newClient(ctx)
	if err != nil {
		return err
	}

	bundle, err := c.GetBundle(ctx.Context, ctx.Args().First())
	if err != nil {
		return err
	}
	if bundle == nil {
		return errors.New("bundle not found")
	}
	return printJSON(bundle)
}

func getBundlesAction(ctx *cli.Context) error {
	c, err := newClient(ctx)
	if err != nil {
		return err
	}
	q := types.BundleQuery{
		Owner:                ctx.String("owner"),
		AssetContractAddress: ctx.String("token-address"),
	}
	if ctx.IsSet("on-sale") {
		onSale := ctx.Bool("on-sale")
		q.OnSale = &onSale
	}

	page, err := c.GetBundles(ctx.Context, q, ctx.Int("page"))
	if err != nil {
		return err
	}
	return printJSON(page)
}

func getTokensAction(ctx *cli.Context) error {
	c, err := newClient(ctx)
	if err != nil {
		return err
	}
	q := types.TokenQuery{
		Symbol:  ctx.String("symbol"),
		Address: ctx.String("address"),
		Name:    ctx.String("name"),
	}

	page, err := c.GetTokens(ctx.Context, q, ctx.Int("page"))
	if err != nil {
		return err
	}
	return printJSON(page)
}
