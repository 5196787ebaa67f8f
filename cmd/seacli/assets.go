package main

import (
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/betbot/gosea/sea/types"
)

var assetCmd = cli.Command{
	Name:      "asset",
	Usage:     "fetch a single asset",
	ArgsUsage: "<token-address> <token-id>",
	Action:    getAssetAction,
}

var assetsCmd = cli.Command{
	Name:  "assets",
	Usage: "list one page of assets",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "owner", Usage: "address of the asset owner"},
		&cli.StringFlag{Name: "token-address", Usage: "asset contract address"},
		&cli.StringSliceFlag{Name: "token-id", Usage: "token id, repeatable"},
		&cli.StringFlag{Name: "search", Usage: "free-text search"},
		&cli.StringFlag{Name: "order-by", Usage: "sort field"},
		&cli.StringFlag{Name: "order-direction", Usage: "asc or desc"},
		&cli.IntFlag{Name: "page", Usage: "1-based page number", Value: 1},
	},
	Action: getAssetsAction,
}

var whitelistCmd = cli.Command{
	Name:      "whitelist",
	Usage:     "whitelist an email for a presale asset",
	ArgsUsage: "<token-address> <token-id> <email>",
	Action:    whitelistAction,
}

func getAssetAction(ctx *cli.Context) error {
	if ctx.NArg() != 2 {
		return &invalidUsageError{ctx, "asset"}
	}
	c, err := newClient(ctx)
	if err != nil {
		return err
	}

	asset, err := c.GetAsset(ctx.Context, ctx.Args().Get(0), ctx.Args().Get(1))
	if err != nil {
		return err
	}
	if asset == nil {
		return errors.New("asset not found")
	}
	return printJSON(asset)
}

func getAssetsAction(ctx *cli.Context) error {
	c, err := newClient(ctx)
	if err != nil {
		return err
	}
	q := types.AssetQuery{
		Owner:                ctx.String("owner"),
		AssetContractAddress: ctx.String("token-address"),
		TokenIDs:             ctx.StringSlice("token-id"),
		Search:               ctx.String("search"),
		OrderBy:              ctx.String("order-by"),
		OrderDirection:       ctx.String("order-direction"),
	}

	page, err := c.GetAssets(ctx.Context, q, ctx.Int("page"))
	if err != nil {
		return err
	}
	return printJSON(page)
}

func whitelistAction(ctx *cli.Context) error {
	if ctx.NArg() != 3 {
		return &invalidUsageError{ctx, "whitelist"}
	}
	c, err := newClient(ctx)
	if err != nil {
		return err
	}

	args := ctx.Args()
	ok, err := c.PostAssetWhitelist(ctx.Context, args.Get(0), args.Get(1), args.Get(2))
	if err != nil {
		return err
	}
	return printJSON(map[string]bool{"success": ok})
}
