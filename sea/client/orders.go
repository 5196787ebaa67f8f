package client

import (
	"context"
	"net/url"
	"strconv"

	"github.com/pkg/errors"

	"github.com/betbot/gosea/sea/normalize"
	"github.com/betbot/gosea/sea/types"
)

// OrdersPage is one page of orderbook results.
type OrdersPage struct {
	Orders []types.Order
	// Count is the total number of matches for the versioned orderbook and
	// the number of orders on this page for the legacy one.
	Count int
}

// PostOrder submits a signed order and returns the order as stored by the
// orderbook.
func (c *Client) PostOrder(ctx context.Context, order *types.Order) (*types.Order, error) {
	if order == nil {
		return nil, errors.New("post order: nil order")
	}
	resp, err := c.post(ctx, c.orderbookBase+EndpointPostOrder, normalize.OrderToJSON(order))
	if err != nil {
		return nil, errors.Wrap(err, "post order")
	}
	stored, err := normalize.DecodeOrder(resp.Body())
	if err != nil {
		return nil, errors.Wrap(err, "post order")
	}
	return stored, nil
}

// GetOrder returns the first order matching q, or nil when nothing matches.
func (c *Client) GetOrder(ctx context.Context, q types.OrderQuery) (*types.Order, error) {
	values := url.Values{"limit": {"1"}}
	overlay(values, q.Values())

	orders, _, err := c.fetchOrders(ctx, values)
	if err != nil {
		return nil, errors.Wrap(err, "get order")
	}
	if len(orders) == 0 {
		return nil, nil
	}
	return &orders[0], nil
}

// GetOrders returns page (1-based) of the orders matching q.
func (c *Client) GetOrders(ctx context.Context, q types.OrderQuery, page int) (*OrdersPage, error) {
	values := c.pageValues(page)
	overlay(values, q.Values())

	orders, count, err := c.fetchOrders(ctx, values)
	if err != nil {
		return nil, errors.Wrapf(err, "get orders page %d", page)
	}
	if orders == nil {
		orders = []types.Order{}
	}
	return &OrdersPage{Orders: orders, Count: count}, nil
}

func (c *Client) fetchOrders(ctx context.Context, values url.Values) ([]types.Order, int, error) {
	resp, err := c.get(ctx, c.orderbookBase+EndpointOrders, values)
	if err != nil {
		return nil, 0, err
	}
	raw, count, err := c.schema.decodeOrders(resp.Body())
	if err != nil {
		return nil, 0, err
	}
	orders, err := normalize.DecodeOrders(raw)
	if err != nil {
		return nil, 0, err
	}
	c.log.WithField("schema", c.schema.name()).Debugf("fetched %d orders of %d", len(orders), count)
	return orders, count, nil
}

// pageValues derives limit and offset from a 1-based page number. Pages below
// 1 are treated as the first page.
func (c *Client) pageValues(page int) url.Values {
	if page < 1 {
		page = 1
	}
	size := c.pageSize
	return url.Values{
		"limit":  {strconv.Itoa(size)},
		"offset": {strconv.Itoa((page - 1) * size)},
	}
}

// overlay copies every key of src over dst.
func overlay(dst, src url.Values) {
	for k, vs := range src {
		dst[k] = vs
	}
}
