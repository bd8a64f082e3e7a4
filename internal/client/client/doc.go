// Package client talks to the brokerage REST API.
//
// # Overview
//
// The Client interface lists the read-only account endpoints the shell uses.
// RESTClient implements it over net/http: every call carries the session's
// bearer token and a fresh X-Request-ID, and is bounded by the configured
// request timeout and the caller's context.
//
// # Error Handling
//
// Network failures and non-2xx statuses are wrapped in common.ErrTransport.
// Bodies that do not have the expected shape come back as *ResponseError,
// which matches common.ErrMalformedResponse and keeps the raw body for
// diagnostics. Calls without an authenticated session fail with
// common.ErrNotAuthenticated before any request is sent.
package client
