package common

import "errors"

var (
	// credential store errors
	ErrCredentialNotFound = errors.New("credential not found")

	// cipher errors
	ErrMalformedBlob = errors.New("malformed encrypted blob")
	ErrDecrypt       = errors.New("decryption failed")

	// auth errors; wrong password and unknown user both end up here
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrNotAuthenticated   = errors.New("not authenticated")

	// remote API errors
	ErrMalformedResponse = errors.New("malformed server response")
	ErrTransport         = errors.New("transport failure")
)
