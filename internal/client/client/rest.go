package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/dherbrich/oandash/internal/client/models"
	"github.com/dherbrich/oandash/internal/common"
	"github.com/dherbrich/oandash/internal/logging"
	"github.com/dherbrich/oandash/internal/netx"
	"github.com/google/uuid"
	"github.com/xeipuuv/gojsonschema"
)

const (
	accountsPath = "/v1/accounts"

	accountIDsPath = "$.accounts[*].accountId"
)

type RESTClient struct {
	baseURI string
	http    *http.Client
	log     logging.Logger
	schema  *gojsonschema.Schema
}

// NewRESTClient returns a client for baseURI. A zero timeout leaves requests
// bounded only by the caller's context.
func NewRESTClient(baseURI string, timeout time.Duration, log logging.Logger) (*RESTClient, error) {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(accountSchema))
	if err != nil {
		return nil, fmt.Errorf("account schema: %w", err)
	}
	return &RESTClient{
		baseURI: strings.TrimRight(baseURI, "/"),
		http:    &http.Client{Timeout: timeout},
		log:     log,
		schema:  schema,
	}, nil
}

// ListAccounts returns the ids of every account visible to the session.
func (c *RESTClient) ListAccounts(ctx context.Context, sess *models.Session) ([]int64, error) {
	body, err := c.get(ctx, sess, accountsPath)
	if err != nil {
		return nil, err
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, &ResponseError{Path: accountsPath, Reason: err.Error(), Raw: body}
	}

	accounts, err := jsonpath.Get("$.accounts", doc)
	if err != nil {
		return nil, &ResponseError{Path: accountsPath, Reason: err.Error(), Raw: body}
	}
	list, ok := accounts.([]any)
	if !ok {
		return nil, &ResponseError{Path: accountsPath, Reason: "accounts is not a list", Raw: body}
	}

	raw, err := jsonpath.Get(accountIDsPath, doc)
	if err != nil {
		return nil, &ResponseError{Path: accountsPath, Reason: err.Error(), Raw: body}
	}
	values, _ := raw.([]any)
	if len(values) != len(list) {
		return nil, &ResponseError{Path: accountsPath, Reason: "account without accountId", Raw: body}
	}

	ids := make([]int64, 0, len(values))
	for _, v := range values {
		id, err := toInt64(v)
		if err != nil {
			return nil, &ResponseError{Path: accountsPath, Reason: err.Error(), Raw: body}
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// GetAccount fetches and validates one account detail record.
func (c *RESTClient) GetAccount(ctx context.Context, sess *models.Session, accountID int64) (*models.Account, error) {
	path := fmt.Sprintf("%s/%d", accountsPath, accountID)

	body, err := c.get(ctx, sess, path)
	if err != nil {
		return nil, err
	}

	result, err := c.schema.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		return nil, &ResponseError{Path: path, Reason: err.Error(), Raw: body}
	}
	if !result.Valid() {
		reasons := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			reasons = append(reasons, desc.String())
		}
		return nil, &ResponseError{Path: path, Reason: strings.Join(reasons, "; "), Raw: body}
	}

	var account models.Account
	if err := json.Unmarshal(body, &account); err != nil {
		return nil, &ResponseError{Path: path, Reason: err.Error(), Raw: body}
	}
	return &account, nil
}

func (c *RESTClient) get(ctx context.Context, sess *models.Session, path string) ([]byte, error) {
	if !sess.Authenticated() {
		return nil, common.ErrNotAuthenticated
	}

	requestID := uuid.NewString()
	log := c.log.With("request_id", requestID, "path", path)

	header := sess.Headers()
	header.Set(common.RequestIDHeaderName, requestID)

	start := time.Now()
	body, err := netx.Get(ctx, c.http, c.baseURI+path, header)
	if err != nil {
		var se *netx.StatusError
		if errors.As(err, &se) {
			log.Info(ctx, "api request rejected", "status", se.Code)
			if msg := apiMessage(se.Body); msg != "" {
				return nil, fmt.Errorf("%w: %s: %s", common.ErrTransport, se.Status, msg)
			}
			return nil, fmt.Errorf("%w: %s", common.ErrTransport, se.Status)
		}
		log.Info(ctx, "api request failed", "error", err)
		return nil, fmt.Errorf("%w: %v", common.ErrTransport, err)
	}

	log.Debug(ctx, "api request done", "bytes", len(body), "elapsed", time.Since(start))
	return body, nil
}

// apiMessage extracts the "message" field of an API error body, if any.
func apiMessage(body []byte) string {
	var doc any
	if err := json.Unmarshal(body, &doc); err != nil {
		return ""
	}
	v, err := jsonpath.Get("$.message", doc)
	if err != nil {
		return ""
	}
	msg, _ := v.(string)
	return msg
}

func toInt64(v any) (int64, error) {
	switch n := v.(type) {
	case json.Number:
		return n.Int64()
	case float64:
		if n != float64(int64(n)) {
			return 0, fmt.Errorf("accountId %v is not an integer", n)
		}
		return int64(n), nil
	default:
		return 0, fmt.Errorf("accountId %v is not a number", v)
	}
}
