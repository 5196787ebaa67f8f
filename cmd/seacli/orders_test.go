package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"github.com/betbot/gosea/sea/types"
)

// runOrderQuery parses args with the order filter flags and returns the query.
func runOrderQuery(t *testing.T, args ...string) (types.OrderQuery, error) {
	t.Helper()
	var (
		q   types.OrderQuery
		err error
	)
	app := cli.NewApp()
	app.Commands = []*cli.Command{{
		Name:  "orders",
		Flags: orderFilterFlags,
		Action: func(ctx *cli.Context) error {
			q, err = orderQuery(ctx)
			return nil
		},
	}}
	require.NoError(t, app.Run(append([]string{"seacli", "orders"}, args...)))
	return q, err
}

func TestOrderQuery(t *testing.T) {
	q, err := runOrderQuery(t, "--maker", "0xabc", "--side", "sell", "--token-id", "7", "--bundled")
	require.NoError(t, err)
	assert.Equal(t, "0xabc", q.Maker)
	assert.Equal(t, "7", q.TokenID)
	require.NotNil(t, q.Side)
	assert.Equal(t, types.OrderSideSell, *q.Side)
	require.NotNil(t, q.Bundled)
	assert.True(t, *q.Bundled)

	q, err = runOrderQuery(t, "--side", "0")
	require.NoError(t, err)
	assert.Equal(t, types.OrderSideBuy, *q.Side)
	assert.Nil(t, q.Bundled)

	_, err = runOrderQuery(t, "--side", "both")
	assert.Error(t, err)
}
