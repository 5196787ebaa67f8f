package client

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/betbot/gosea/sea/types"
)

const kittyContract = "0x06012c8cf97bead5deae237070f9587f8e7a266d"

const assetBody = `{
	"token_id": "1234",
	"name": "Kitty #1234",
	"asset_contract": {"address": "` + kittyContract + `", "schema_name": "ERC721"},
	"sell_orders": []
}`

func TestGetAsset(t *testing.T) {
	srv, got := newTestServer(t, http.StatusOK, assetBody)
	c := newTestClient(t, srv, Config{})

	asset, err := c.GetAsset(context.Background(), kittyContract, "1234")
	require.NoError(t, err)
	require.NotNil(t, asset)
	assert.Equal(t, "Kitty #1234", asset.Name)
	assert.Equal(t, types.SchemaERC721, asset.SchemaName)
	assert.Equal(t, "/api/v1/asset/"+kittyContract+"/1234/", got.all()[0].Path)
}

func TestGetAsset_Empty(t *testing.T) {
	for _, body := range []string{"", "null"} {
		srv, _ := newTestServer(t, http.StatusOK, body)
		c := newTestClient(t, srv, Config{})

		asset, err := c.GetAsset(context.Background(), kittyContract, "1")
		require.NoError(t, err)
		assert.Nil(t, asset)
	}
}

func TestGetAsset_NotFound(t *testing.T) {
	srv, _ := newTestServer(t, http.StatusNotFound, `{"detail": "Not found."}`)
	c := newTestClient(t, srv, Config{})

	asset, err := c.GetAsset(context.Background(), kittyContract, "999")
	assert.Nil(t, asset)
	assert.True(t, IsNotFound(err))
}

func TestGetAssets(t *testing.T) {
	srv, got := newTestServer(t, http.StatusOK, `{"assets": [`+assetBody+`, `+assetBody+`], "estimated_count": 312}`)
	c := newTestClient(t, srv, Config{PageSize: 2})

	page, err := c.GetAssets(context.Background(), types.AssetQuery{Owner: "0xabc"}, 4)
	require.NoError(t, err)
	assert.Len(t, page.Assets, 2)
	assert.Equal(t, 312, page.EstimatedCount)

	req := got.all()[0]
	assert.Equal(t, "/api/v1/assets/", req.Path)
	assert.Equal(t, "2", req.Query.Get("limit"))
	assert.Equal(t, "6", req.Query.Get("offset"))
	assert.Equal(t, "0xabc", req.Query.Get("owner"))
}

func TestGetAssets_InvalidAsset(t *testing.T) {
	srv, _ := newTestServer(t, http.StatusOK, `{"assets": [{"token_id": "1"}], "estimated_count": 1}`)
	c := newTestClient(t, srv, Config{})

	_, err := c.GetAssets(context.Background(), types.AssetQuery{}, 1)
	assert.Error(t, err)
}

func TestGetBundle(t *testing.T) {
	srv, got := newTestServer(t, http.StatusOK, `{"slug": "pair", "name": "Pair", "assets": [`+assetBody+`]}`)
	c := newTestClient(t, srv, Config{})

	bundle, err := c.GetBundle(context.Background(), "pair")
	require.NoError(t, err)
	require.NotNil(t, bundle)
	assert.Equal(t, "Pair", bundle.Name)
	assert.Len(t, bundle.Assets, 1)
	assert.Equal(t, "/api/v1/bundle/pair/", got.all()[0].Path)

	srv, _ = newTestServer(t, http.StatusOK, `null`)
	c = newTestClient(t, srv, Config{})
	bundle, err = c.GetBundle(context.Background(), "gone")
	require.NoError(t, err)
	assert.Nil(t, bundle)
}

func TestGetBundles(t *testing.T) {
	srv, got := newTestServer(t, http.StatusOK, `{"bundles": [{"slug": "a", "assets": []}], "estimated_count": "9"}`)
	c := newTestClient(t, srv, Config{})

	onSale := true
	page, err := c.GetBundles(context.Background(), types.BundleQuery{OnSale: &onSale}, 1)
	require.NoError(t, err)
	require.Len(t, page.Bundles, 1)
	assert.Equal(t, "a", page.Bundles[0].Slug)
	assert.Equal(t, 9, page.EstimatedCount)

	req := got.all()[0]
	assert.Equal(t, "/api/v1/bundles/", req.Path)
	assert.Equal(t, "true", req.Query.Get("on_sale"))
	assert.Equal(t, "0", req.Query.Get("offset"))
}

func TestGetTokens(t *testing.T) {
	srv, got := newTestServer(t, http.StatusOK, `[
		{"name": "Wrapped Ether", "symbol": "WETH", "decimals": 18, "address": "0xc02aaa39b223fe8d0a0e5c4f27ead9083c756cc2"},
		{"name": "Dai", "symbol": "DAI", "decimals": 18, "address": "0x6b175474e89094c44da98b954eedeac495271d0f"}
	]`)
	c := newTestClient(t, srv, Config{})

	page, err := c.GetTokens(context.Background(), types.TokenQuery{Symbol: "WETH"}, 1)
	require.NoError(t, err)
	require.Len(t, page.Tokens, 2)
	assert.Equal(t, "WETH", page.Tokens[0].Symbol)

	req := got.all()[0]
	assert.Equal(t, "/api/v1/tokens/", req.Path)
	assert.Equal(t, "WETH", req.Query.Get("symbol"))
}

func TestGetTokens_PageWinsOverQuery(t *testing.T) {
	srv, got := newTestServer(t, http.StatusOK, `[]`)
	c := newTestClient(t, srv, Config{PageSize: 10})

	page, err := c.GetTokens(context.Background(), types.TokenQuery{Limit: 3, Offset: 99}, 2)
	require.NoError(t, err)
	assert.Empty(t, page.Tokens)

	q := got.all()[0].Query
	assert.Equal(t, "10", q.Get("limit"))
	assert.Equal(t, "10", q.Get("offset"))
}

func TestPostAssetWhitelist(t *testing.T) {
	srv, got := newTestServer(t, http.StatusOK, `{"success": true}`)
	c := newTestClient(t, srv, Config{})

	ok, err := c.PostAssetWhitelist(context.Background(), kittyContract, "1234", "buyer@example.com")
	require.NoError(t, err)
	assert.True(t, ok)

	req := got.all()[0]
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "/api/v1/asset/"+kittyContract+"/1234/whitelist/", req.Path)
	assert.JSONEq(t, `{"email": "buyer@example.com"}`, string(req.Body))
}
