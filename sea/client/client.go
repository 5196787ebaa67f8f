// Package client talks to the marketplace REST API and its orderbook.
package client

import (
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/betbot/gosea/pkg/logger"
	"github.com/betbot/gosea/sea/types"
)

// DefaultPageSize is the page size used until SetPageSize is called.
const DefaultPageSize = 20

// DefaultOrderbookVersion selects the versioned orderbook schema.
const DefaultOrderbookVersion = 1

// Config configures a Client. Only Network is needed for the public API.
type Config struct {
	Network types.Network
	// APIBaseURL overrides the base URL derived from Network.
	APIBaseURL string
	APIKey     string
	PageSize   int
	// OrderbookVersion 0 selects the legacy bare-array schema.
	OrderbookVersion int

	Logger     logrus.FieldLogger
	HTTPClient *http.Client
}

// Client is the orderbook and marketplace client.
//
// A Client is safe for concurrent use except for SetPageSize, which is not
// synchronized with requests in flight.
type Client struct {
	baseURL       string
	apiBase       string
	orderbookBase string
	apiKey        string
	pageSize      int

	schema orderbookSchema
	http   *resty.Client
	log    logrus.FieldLogger
}

// NewClient builds a client. The orderbook schema is fixed for its lifetime.
func NewClient(cfg Config) (*Client, error) {
	baseURL := strings.TrimSuffix(cfg.APIBaseURL, "/")
	if baseURL == "" {
		switch cfg.Network {
		case types.NetworkMain, "":
			baseURL = BaseURLMainnet
		case types.NetworkRinkeby:
			baseURL = BaseURLRinkeby
		default:
			return nil, errors.Errorf("unknown network %q", cfg.Network)
		}
	}
	if cfg.OrderbookVersion < 0 {
		return nil, errors.Errorf("invalid orderbook version %d", cfg.OrderbookVersion)
	}

	pageSize := cfg.PageSize
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	log := cfg.Logger
	if log == nil {
		log = logger.NewNop()
	}

	var rc *resty.Client
	if cfg.HTTPClient != nil {
		rc = resty.NewWithClient(cfg.HTTPClient)
	} else {
		rc = resty.New()
	}
	rc.SetRetryCount(0)

	c := &Client{
		baseURL:       baseURL,
		apiBase:       baseURL + APIPath,
		orderbookBase: baseURL + orderbookPath(cfg.OrderbookVersion),
		apiKey:        cfg.APIKey,
		pageSize:      pageSize,
		schema:        schemaFor(cfg.OrderbookVersion),
		http:          rc,
		log:           log.WithField("component", "sea-client"),
	}
	return c, nil
}

// BaseURL returns the API host the client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// PageSize returns the number of records requested per page.
func (c *Client) PageSize() int {
	return c.pageSize
}

// SetPageSize changes the page size for subsequent requests. Values below 1
// are ignored.
func (c *Client) SetPageSize(n int) {
	if n > 0 {
		c.pageSize = n
	}
}
