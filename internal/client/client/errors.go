package client

import (
	"fmt"

	"github.com/dherbrich/oandash/internal/common"
)

// ResponseError is returned when a response body does not have the expected
// shape. Raw holds the body as received.
type ResponseError struct {
	Path   string
	Reason string
	Raw    []byte
}

func (e *ResponseError) Error() string {
	return fmt.Sprintf("%s: %s: %s", common.ErrMalformedResponse, e.Path, e.Reason)
}

func (e *ResponseError) Unwrap() error {
	return common.ErrMalformedResponse
}
