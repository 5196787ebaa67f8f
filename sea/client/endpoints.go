package client

import (
	"fmt"
	"net/url"
)

// Well-known API deployments.
const (
	BaseURLMainnet = "https://api.opensea.io"
	BaseURLRinkeby = "https://rinkeby-api.opensea.io"
)

// APIPath prefixes every marketplace (non-orderbook) endpoint.
const APIPath = "/api/v1"

// Orderbook endpoints, relative to the versioned orderbook prefix.
const (
	EndpointOrders    = "/orders/"
	EndpointPostOrder = "/orders/post/"
)

// Marketplace endpoints, relative to APIPath.
const (
	EndpointAssets  = "/assets/"
	EndpointBundles = "/bundles/"
	EndpointTokens  = "/tokens/"
)

func orderbookPath(version int) string {
	return fmt.Sprintf("/wyvern/v%d", version)
}

func assetPath(tokenAddress, tokenID string) string {
	return fmt.Sprintf("/asset/%s/%s/", url.PathEscape(tokenAddress), url.PathEscape(tokenID))
}

func assetWhitelistPath(tokenAddress, tokenID string) string {
	return assetPath(tokenAddress, tokenID) + "whitelist/"
}

func bundlePath(slug string) string {
	return fmt.Sprintf("/bundle/%s/", url.PathEscape(slug))
}
