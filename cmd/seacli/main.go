package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/betbot/gosea/pkg/config"
	"github.com/betbot/gosea/pkg/logger"
	"github.com/betbot/gosea/sea/client"
)

func main() {
	app := cli.NewApp()

	app.Name = "seacli"
	app.Usage = "Query and post to the NFT marketplace orderbook"
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Usage:   "path to a YAML config file",
			EnvVars: []string{"GOSEA_CONFIG"},
		},
		&cli.StringFlag{
			Name:  "network",
			Usage: "main or rinkeby",
		},
		&cli.StringFlag{
			Name:  "api-key",
			Usage: "marketplace API key, sent as X-API-KEY",
		},
		&cli.IntFlag{
			Name:  "page-size",
			Usage: "records per page",
		},
		&cli.StringFlag{
			Name:  "log-level",
			Usage: "debug, info, warn or error",
		},
	}
	app.Commands = append(
		app.Commands,
		&orderCmd,
		&ordersCmd,
		&postOrderCmd,
		&assetCmd,
		&assetsCmd,
		&bundleCmd,
		&bundlesCmd,
		&tokensCmd,
		&whitelistCmd,
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := app.RunContext(ctx, os.Args)
	stop()
	if err != nil {
		fatal(err)
	}
}

// newClient builds a client from the config file, environment and global flags.
func newClient(ctx *cli.Context) (*client.Client, error) {
	cfg, err := config.Load(ctx.String("config"))
	if err != nil {
		return nil, err
	}
	if ctx.IsSet("network") {
		cfg.Network = ctx.String("network")
	}
	if ctx.IsSet("api-key") {
		cfg.APIKey = ctx.String("api-key")
	}
	if ctx.IsSet("page-size") {
		cfg.PageSize = ctx.Int("page-size")
	}
	if ctx.IsSet("log-level") {
		cfg.Log.Level = ctx.String("log-level")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		return nil, err
	}
	return client.NewClient(cfg.ClientConfig(log))
}

func printJSON(v interface{}) error {
	b, err := json.MarshalIndent(v, "", "\t")
	if err != nil {
		return errors.Wrap(err, "encode output")
	}
	fmt.Println(string(b))
	return nil
}

type invalidUsageError struct {
	ctx     *cli.Context
	command string
}

func (e *invalidUsageError) Error() string {
	return fmt.Sprintf("invalid usage of command %s", e.command)
}

func fatal(err error) {
	var e *invalidUsageError
	if errors.As(err, &e) {
		_ = cli.ShowCommandHelp(e.ctx, e.command)
	} else {
		_, _ = fmt.Fprintf(os.Stderr, "[seacli] %v\n", err)
	}
	os.Exit(1)
}
