package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/dherbrich/oandash/internal/client/models"
	"github.com/dherbrich/oandash/internal/common"
	"github.com/dherbrich/oandash/internal/logging"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const detailBody = `{
  "accountId": 8954947,
  "accountName": "Primary",
  "balance": 100000,
  "unrealizedPl": 1.1,
  "realizedPl": -2.2,
  "marginUsed": 3.3,
  "marginAvail": 100000,
  "openTrades": 1,
  "openOrders": 2,
  "marginRate": 0.05,
  "accountCurrency": "USD"
}`

type route struct {
	status int
	body   string
}

// fakeAPI serves fixed bodies per path and records what it saw.
type fakeAPI struct {
	routes    map[string]route
	hits      atomic.Int32
	lastAuth  atomic.Value
	lastReqID atomic.Value
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{routes: map[string]route{}}
}

func (f *fakeAPI) on(path string, status int, body string) {
	f.routes[path] = route{status: status, body: body}
}

func (f *fakeAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.hits.Add(1)
	f.lastAuth.Store(r.Header.Get("Authorization"))
	f.lastReqID.Store(r.Header.Get("X-Request-ID"))

	rt, ok := f.routes[r.URL.Path]
	if !ok {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(rt.status)
	_, _ = w.Write([]byte(rt.body))
}

func newTestClient(t *testing.T, api *fakeAPI) *RESTClient {
	t.Helper()
	srv := httptest.NewServer(api)
	t.Cleanup(srv.Close)

	c, err := NewRESTClient(srv.URL+"/", 2*time.Second, logging.Discard())
	require.NoError(t, err)
	return c
}

func TestListAccounts_OK(t *testing.T) {
	api := newFakeAPI()
	api.on("/v1/accounts", 200, `{"accounts":[
		{"accountId":8954947,"accountName":"Primary","accountCurrency":"USD","marginRate":0.05},
		{"accountId":8954950,"accountName":"SweetHome","accountCurrency":"CAD","marginRate":0.02}
	]}`)
	c := newTestClient(t, api)

	ids, err := c.ListAccounts(context.Background(), models.NewSession("alice", "secret-api-key"))
	require.NoError(t, err)
	assert.Equal(t, []int64{8954947, 8954950}, ids)

	assert.Equal(t, "Bearer secret-api-key", api.lastAuth.Load())
	_, err = uuid.Parse(api.lastReqID.Load().(string))
	assert.NoError(t, err, "X-Request-ID should be a uuid")
}

func TestListAccounts_Empty(t *testing.T) {
	api := newFakeAPI()
	api.on("/v1/accounts", 200, `{"accounts":[]}`)
	c := newTestClient(t, api)

	ids, err := c.ListAccounts(context.Background(), models.NewSession("alice", "k"))
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestListAccounts_Malformed(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "no accounts key", body: `{"code":4,"message":"nope"}`},
		{name: "accounts not a list", body: `{"accounts":{"accountId":1}}`},
		{name: "missing accountId", body: `{"accounts":[{"accountId":1},{"accountName":"x"}]}`},
		{name: "string accountId", body: `{"accounts":[{"accountId":"abc"}]}`},
		{name: "not json", body: `<html>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := newFakeAPI()
			api.on("/v1/accounts", 200, tt.body)
			c := newTestClient(t, api)

			_, err := c.ListAccounts(context.Background(), models.NewSession("alice", "k"))
			require.Error(t, err)
			assert.ErrorIs(t, err, common.ErrMalformedResponse)

			var re *ResponseError
			require.True(t, errors.As(err, &re))
			assert.Equal(t, tt.body, string(re.Raw))
		})
	}
}

func TestGetAccount_OK(t *testing.T) {
	api := newFakeAPI()
	api.on("/v1/accounts/8954947", 200, detailBody)
	c := newTestClient(t, api)

	a, err := c.GetAccount(context.Background(), models.NewSession("alice", "k"), 8954947)
	require.NoError(t, err)
	assert.Equal(t, "Primary", a.AccountName)
	assert.Equal(t, "USD", a.AccountCurrency)
	assert.True(t, a.MarginRate.Equal(decimal.RequireFromString("0.05")))
	assert.Equal(t, 2, a.OpenOrders)
}

func TestGetAccount_SchemaViolation(t *testing.T) {
	api := newFakeAPI()
	api.on("/v1/accounts/1", 200, `{"accountId":1,"accountName":"x"}`)
	c := newTestClient(t, api)

	_, err := c.GetAccount(context.Background(), models.NewSession("alice", "k"), 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrMalformedResponse)
	assert.Contains(t, err.Error(), "balance")
}

func TestGet_TransportErrors(t *testing.T) {
	api := newFakeAPI()
	api.on("/v1/accounts", 401, `{"code":4,"message":"The access token provided does not allow this request to be made","moreInfo":"http://developer.oanda.com/docs/v1/auth/#overview"}`)
	c := newTestClient(t, api)

	_, err := c.ListAccounts(context.Background(), models.NewSession("alice", "k"))
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrTransport)
	assert.Contains(t, err.Error(), "does not allow")
}

func TestGet_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c, err := NewRESTClient(url, time.Second, logging.Discard())
	require.NoError(t, err)

	_, err = c.ListAccounts(context.Background(), models.NewSession("alice", "k"))
	assert.ErrorIs(t, err, common.ErrTransport)
}

func TestGet_RequiresSession(t *testing.T) {
	api := newFakeAPI()
	c := newTestClient(t, api)

	_, err := c.ListAccounts(context.Background(), nil)
	assert.ErrorIs(t, err, common.ErrNotAuthenticated)

	_, err = c.GetAccount(context.Background(), nil, 1)
	assert.ErrorIs(t, err, common.ErrNotAuthenticated)

	assert.Zero(t, api.hits.Load())
}
