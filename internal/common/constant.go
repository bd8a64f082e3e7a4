// Package common contains shared constants and sentinel errors used across
// oandash components.
package common

// AuthorizationHeaderName is the HTTP header carrying the bearer token on
// outbound API requests.
const AuthorizationHeaderName = "Authorization"

// BearerPrefix precedes the decrypted API key in the authorization header.
const BearerPrefix = "Bearer "

// RequestIDHeaderName tags each outbound request for log correlation.
const RequestIDHeaderName = "X-Request-ID"
