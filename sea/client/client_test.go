package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/betbot/gosea/sea/normalize"
	"github.com/betbot/gosea/sea/types"
)

type recordedRequest struct {
	Method string
	Path   string
	Query  url.Values
	Header http.Header
	Body   []byte
}

type recorder struct {
	mu   sync.Mutex
	reqs []recordedRequest
}

func (r *recorder) all() []recordedRequest {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]recordedRequest(nil), r.reqs...)
}

// newTestServer answers every request with status and body and records
// what it received.
func newTestServer(t *testing.T, status int, body string) (*httptest.Server, *recorder) {
	t.Helper()
	rec := &recorder{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		rec.mu.Lock()
		rec.reqs = append(rec.reqs, recordedRequest{
			Method: r.Method,
			Path:   r.URL.Path,
			Query:  r.URL.Query(),
			Header: r.Header.Clone(),
			Body:   b,
		})
		rec.mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv, rec
}

func newTestClient(t *testing.T, srv *httptest.Server, cfg Config) *Client {
	t.Helper()
	cfg.APIBaseURL = srv.URL
	cfg.HTTPClient = srv.Client()
	c, err := NewClient(cfg)
	require.NoError(t, err)
	return c
}

func orderFixture(t *testing.T) string {
	t.Helper()
	b, err := os.ReadFile("testdata/order.json")
	require.NoError(t, err)
	return string(b)
}

func TestNewClient_BaseURL(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want string
	}{
		{"default network", Config{}, BaseURLMainnet},
		{"main", Config{Network: types.NetworkMain}, BaseURLMainnet},
		{"rinkeby", Config{Network: types.NetworkRinkeby}, BaseURLRinkeby},
		{"override", Config{Network: types.NetworkRinkeby, APIBaseURL: "http://localhost:8080/"}, "http://localhost:8080"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewClient(tt.cfg)
			require.NoError(t, err)
			assert.Equal(t, tt.want, c.BaseURL())
		})
	}

	_, err := NewClient(Config{Network: "ropsten"})
	assert.Error(t, err)
}

func TestPageSize(t *testing.T) {
	c, err := NewClient(Config{})
	require.NoError(t, err)
	assert.Equal(t, DefaultPageSize, c.PageSize())

	c.SetPageSize(50)
	assert.Equal(t, 50, c.PageSize())
	c.SetPageSize(0)
	assert.Equal(t, 50, c.PageSize())
}

func TestGetOrders_Pagination(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		query      types.OrderQuery
		wantLimit  string
		wantOffset string
	}{
		{"first page", 1, types.OrderQuery{}, "20", "0"},
		{"third page", 3, types.OrderQuery{}, "20", "40"},
		{"page zero is first page", 0, types.OrderQuery{}, "20", "0"},
		{"negative page is first page", -4, types.OrderQuery{}, "20", "0"},
		{"query overrides limit and offset", 2, types.OrderQuery{Limit: 5, Offset: 7}, "5", "7"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, got := newTestServer(t, http.StatusOK, `{"orders": [], "count": 0}`)
			c := newTestClient(t, srv, Config{OrderbookVersion: 1})

			_, err := c.GetOrders(context.Background(), tt.query, tt.page)
			require.NoError(t, err)
			require.Len(t, got.all(), 1)
			req := got.all()[0]
			assert.Equal(t, http.MethodGet, req.Method)
			assert.Equal(t, "/wyvern/v1/orders/", req.Path)
			assert.Equal(t, tt.wantLimit, req.Query.Get("limit"))
			assert.Equal(t, tt.wantOffset, req.Query.Get("offset"))
		})
	}
}

func TestGetOrders_QueryFilters(t *testing.T) {
	srv, got := newTestServer(t, http.StatusOK, `{"orders": [], "count": 0}`)
	c := newTestClient(t, srv, Config{OrderbookVersion: 1})
	c.SetPageSize(10)

	side := types.OrderSideSell
	bundled := false
	_, err := c.GetOrders(context.Background(), types.OrderQuery{
		Maker:    "0x0239769a1adf4def9f07da824b80b9c4fcb59593",
		Side:     &side,
		Bundled:  &bundled,
		TokenIDs: []string{"1", "2"},
	}, 2)
	require.NoError(t, err)

	q := got.all()[0].Query
	assert.Equal(t, "10", q.Get("limit"))
	assert.Equal(t, "10", q.Get("offset"))
	assert.Equal(t, "1", q.Get("side"))
	assert.Equal(t, "false", q.Get("bundled"))
	assert.Equal(t, []string{"1", "2"}, q["token_ids"])
	assert.Equal(t, "0x0239769a1adf4def9f07da824b80b9c4fcb59593", q.Get("maker"))
}

func TestGetOrders_Schemas(t *testing.T) {
	order := orderFixture(t)
	tests := []struct {
		name      string
		version   int
		body      string
		wantPath  string
		wantCount int
		wantLen   int
	}{
		{"legacy bare array", 0, "[" + order + "]", "/wyvern/v0/orders/", 1, 1},
		{"legacy empty", 0, "[]", "/wyvern/v0/orders/", 0, 0},
		{"versioned count is total", 1, `{"orders": [` + order + `], "count": 57}`, "/wyvern/v1/orders/", 57, 1},
		{"versioned empty page", 1, `{"orders": [], "count": 57}`, "/wyvern/v1/orders/", 57, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, got := newTestServer(t, http.StatusOK, tt.body)
			c := newTestClient(t, srv, Config{OrderbookVersion: tt.version})

			page, err := c.GetOrders(context.Background(), types.OrderQuery{}, 1)
			require.NoError(t, err)
			assert.Equal(t, tt.wantPath, got.all()[0].Path)
			assert.Equal(t, tt.wantCount, page.Count)
			assert.Len(t, page.Orders, tt.wantLen)
			assert.NotNil(t, page.Orders)
		})
	}
}

func TestGetOrders_SchemaMismatch(t *testing.T) {
	srv, _ := newTestServer(t, http.StatusOK, `{"orders": []}`)
	c := newTestClient(t, srv, Config{OrderbookVersion: 0})

	_, err := c.GetOrders(context.Background(), types.OrderQuery{}, 1)
	assert.Error(t, err)

	c = newTestClient(t, srv, Config{OrderbookVersion: 1})
	_, err = c.GetOrders(context.Background(), types.OrderQuery{}, 1)
	var perr *normalize.ParseError
	require.True(t, errors.As(err, &perr), "versioned pages must carry a count")
	assert.Equal(t, "count", perr.Field)
}

func TestGetOrders_MalformedOrder(t *testing.T) {
	bad := strings.Replace(orderFixture(t), `"side": 1`, `"side": "sell"`, 1)
	tests := []struct {
		name    string
		version int
		body    string
	}{
		{"legacy", 0, "[" + orderFixture(t) + ", " + bad + "]"},
		{"versioned", 1, `{"orders": [` + bad + `], "count": 1}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, _ := newTestServer(t, http.StatusOK, tt.body)
			c := newTestClient(t, srv, Config{OrderbookVersion: tt.version})

			page, err := c.GetOrders(context.Background(), types.OrderQuery{}, 1)
			require.Error(t, err)
			assert.Nil(t, page)

			var perr *normalize.ParseError
			require.True(t, errors.As(err, &perr))
			assert.Equal(t, "order", perr.Record)
			assert.Contains(t, err.Error(), `"sell"`)
		})
	}
}

func TestGetOrder(t *testing.T) {
	srv, got := newTestServer(t, http.StatusOK, `{"orders": [`+orderFixture(t)+`], "count": 1}`)
	c := newTestClient(t, srv, Config{OrderbookVersion: 1})

	order, err := c.GetOrder(context.Background(), types.OrderQuery{TokenID: "1234"})
	require.NoError(t, err)
	require.NotNil(t, order)
	assert.Equal(t, "0x1f6c3b0c8a87d1a1e0a2b0c42e84b9d5fb5c4c1ee52a26fdbd2aa2fb4bbde0a1", order.Hash)

	q := got.all()[0].Query
	assert.Equal(t, "1", q.Get("limit"))
	assert.Equal(t, "1234", q.Get("token_id"))
}

func TestGetOrder_NoMatch(t *testing.T) {
	for _, tt := range []struct {
		version int
		body    string
	}{
		{0, `[]`},
		{1, `{"orders": [], "count": 0}`},
	} {
		srv, _ := newTestServer(t, http.StatusOK, tt.body)
		c := newTestClient(t, srv, Config{OrderbookVersion: tt.version})

		order, err := c.GetOrder(context.Background(), types.OrderQuery{})
		require.NoError(t, err)
		assert.Nil(t, order)
	}
}

func TestPostOrder(t *testing.T) {
	fixture := orderFixture(t)
	srv, got := newTestServer(t, http.StatusOK, fixture)
	c := newTestClient(t, srv, Config{OrderbookVersion: 1, APIKey: "secret"})

	local, err := normalize.DecodeOrder([]byte(fixture))
	require.NoError(t, err)
	stored, err := c.PostOrder(context.Background(), local)
	require.NoError(t, err)
	assert.Equal(t, local.Hash, stored.Hash)

	require.Len(t, got.all(), 1)
	req := got.all()[0]
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "/wyvern/v1/orders/post/", req.Path)
	assert.Equal(t, "application/json", req.Header.Get("Content-Type"))
	assert.Equal(t, "secret", req.Header.Get("X-API-KEY"))

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(req.Body, &body))
	assert.Equal(t, "83006245783548033686093530747847303952463217644495033304999143031082661844460", body["salt"])
	assert.Equal(t, "123456789012345678901234567890", body["basePrice"])
	assert.Equal(t, float64(1), body["side"])
	assert.Equal(t, "0x7be8076f4ea4a4ad08075c2508e481d6c946d12b", body["exchange"])

	_, err = c.PostOrder(context.Background(), nil)
	assert.Error(t, err)
}

func TestHeaders(t *testing.T) {
	tests := []struct {
		name   string
		apiKey string
	}{
		{"without key", ""},
		{"with key", "k-123"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, got := newTestServer(t, http.StatusOK, `[]`)
			c := newTestClient(t, srv, Config{APIKey: tt.apiKey})

			_, err := c.Get(context.Background(), "/api/v1/tokens/", nil)
			require.NoError(t, err)

			h := got.all()[0].Header
			assert.Equal(t, "application/json", h.Get("Accept"))
			assert.Empty(t, h.Get("Content-Type"), "reads carry no body")
			if tt.apiKey == "" {
				_, present := h["X-Api-Key"]
				assert.False(t, present)
			} else {
				assert.Equal(t, tt.apiKey, h.Get("X-API-KEY"))
			}
		})
	}
}

func TestPutUsesWritePath(t *testing.T) {
	srv, got := newTestServer(t, http.StatusOK, `{"ok": true}`)
	c := newTestClient(t, srv, Config{APIKey: "k"})

	payload := map[string]string{"email": "a@b.c"}
	putBody, err := c.Put(context.Background(), "/api/v1/thing/", payload)
	require.NoError(t, err)
	postBody, err := c.Post(context.Background(), "/api/v1/thing/", payload)
	require.NoError(t, err)
	assert.JSONEq(t, `{"ok": true}`, string(putBody))
	assert.Equal(t, putBody, postBody)

	require.Len(t, got.all(), 2)
	put, post := got.all()[0], got.all()[1]
	assert.Equal(t, http.MethodPut, put.Method)
	assert.Equal(t, http.MethodPost, post.Method)
	assert.Equal(t, post.Path, put.Path)
	assert.Equal(t, post.Body, put.Body)
	assert.JSONEq(t, `{"email": "a@b.c"}`, string(put.Body))
	for _, req := range []recordedRequest{put, post} {
		assert.Equal(t, "application/json", req.Header.Get("Content-Type"))
		assert.Equal(t, "application/json", req.Header.Get("Accept"))
		assert.Equal(t, "k", req.Header.Get("X-API-KEY"))
	}
}

func TestAPIErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		kind    ErrorKind
		message string
	}{
		{"not found", 404, `{}`, KindNotFound, "API Error 404: Not found. Full message was '{}'"},
		{"bad request with errors", 400, `{"errors": ["bad salt", "bad side"]}`, KindInvalidRequest, "API Error 400: bad salt, bad side"},
		{"bad request without errors", 400, `{"detail":"nope"}`, KindInvalidRequest, `API Error 400: Invalid request: {"detail":"nope"}`},
		{"unauthorized", 401, `{"detail":"key"}`, KindUnauthorized, `API Error 401: Unauthorized. Full message was '{"detail":"key"}'`},
		{"forbidden", 403, `{}`, KindUnauthorized, "API Error 403: Unauthorized. Full message was '{}'"},
		{"internal", 500, `{}`, KindInternal, "API Error 500: Internal server error. OpenSea has been alerted, but if the problem persists please contact us via Discord: https://discord.gg/ga8EJbv - full message was {}"},
		{"unavailable", 503, `{}`, KindUnavailable, "API Error 503: Service unavailable. Please try again in a few minutes. If the problem persists please contact us via Discord: https://discord.gg/ga8EJbv - full message was {}"},
		{"unknown with non-json body", 418, `teapot`, KindUnknown, "API Error 418: status code 418. Message: "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, _ := newTestServer(t, tt.status, tt.body)
			c := newTestClient(t, srv, Config{OrderbookVersion: 1})

			page, err := c.GetOrders(context.Background(), types.OrderQuery{}, 1)
			require.Error(t, err)
			assert.Nil(t, page)

			var apiErr *APIError
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, tt.status, apiErr.StatusCode)
			assert.Equal(t, tt.kind, apiErr.Kind)
			assert.Equal(t, tt.message, apiErr.Error())
			assert.Equal(t, tt.kind, KindOf(err))
			assert.Equal(t, tt.kind == KindNotFound, IsNotFound(err))
		})
	}
}

func TestAPIErrors_NonJSONBodyIsAbsent(t *testing.T) {
	err := newAPIError(http.StatusNotFound, []byte("<html>gone</html>"))
	assert.Nil(t, err.Body)
	assert.Equal(t, "API Error 404: Not found. Full message was ''", err.Error())
	assert.Equal(t, KindUnknown, KindOf(errors.New("plain")))
}

func TestAPIErrors_BodyKeptVerbatim(t *testing.T) {
	raw := `{"z": 1, "salt": 83006245783548033686093530747847303952463217644495033304999143031082661844460, "a": "x"}`
	err := newAPIError(http.StatusNotFound, []byte(raw))

	assert.Equal(t,
		`API Error 404: Not found. Full message was '{"z":1,"salt":83006245783548033686093530747847303952463217644495033304999143031082661844460,"a":"x"}'`,
		err.Error())
	body, ok := err.Body.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, json.Number("83006245783548033686093530747847303952463217644495033304999143031082661844460"), body["salt"])
}
