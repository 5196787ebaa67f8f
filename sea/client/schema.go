package client

import (
	"encoding/json"

	"github.com/betbot/gosea/sea/normalize"
)

const ordersRecord = "orders page"

// orderbookSchema decodes an orders listing. Each orderbook API version that
// changes the response shape gets its own implementation.
type orderbookSchema interface {
	name() string
	// decodeOrders returns the raw orders and the total count they belong to.
	// Elements are left undecoded so each one is parsed on its own.
	decodeOrders(body []byte) ([]json.RawMessage, int, error)
}

func schemaFor(version int) orderbookSchema {
	if version == 0 {
		return legacySchema{}
	}
	return versionedSchema{}
}

// legacySchema reads a bare array. The API reports no total, so the count is
// the number of orders received.
type legacySchema struct{}

func (legacySchema) name() string { return "legacy" }

func (legacySchema) decodeOrders(body []byte) ([]json.RawMessage, int, error) {
	var orders []json.RawMessage
	if err := json.Unmarshal(body, &orders); err != nil {
		return nil, 0, &normalize.ParseError{Record: ordersRecord, Err: err}
	}
	return orders, len(orders), nil
}

// versionedSchema reads {"orders": [...], "count": n}.
type versionedSchema struct{}

func (versionedSchema) name() string { return "versioned" }

func (versionedSchema) decodeOrders(body []byte) ([]json.RawMessage, int, error) {
	var page struct {
		Orders []json.RawMessage  `json:"orders"`
		Count  *normalize.FlexInt `json:"count"`
	}
	if err := json.Unmarshal(body, &page); err != nil {
		return nil, 0, &normalize.ParseError{Record: ordersRecord, Err: err}
	}
	if page.Count == nil {
		return nil, 0, &normalize.ParseError{Record: ordersRecord, Field: "count"}
	}
	return page.Orders, int(*page.Count), nil
}
