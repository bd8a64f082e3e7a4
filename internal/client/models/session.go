package models

import (
	"net/http"

	"github.com/dherbrich/oandash/internal/common"
)

// Session maps request header names to values for an authenticated user.
// A nil *Session is unauthenticated; there is no way back from an
// authenticated Session other than dropping it.
type Session struct {
	Username string
	headers  map[string]string
}

// NewSession builds a Session carrying apikey as a bearer token.
func NewSession(username, apikey string) *Session {
	return &Session{
		Username: username,
		headers: map[string]string{
			common.AuthorizationHeaderName: common.BearerPrefix + apikey,
		},
	}
}

// Authenticated reports whether s holds an authorization header.
func (s *Session) Authenticated() bool {
	if s == nil {
		return false
	}
	_, ok := s.headers[common.AuthorizationHeaderName]
	return ok
}

// Header returns the value of the named header, or "".
func (s *Session) Header(name string) string {
	if s == nil {
		return ""
	}
	return s.headers[name]
}

// Headers returns a fresh copy of the session headers. It is empty for a
// nil Session.
func (s *Session) Headers() http.Header {
	h := http.Header{}
	if s == nil {
		return h
	}
	for k, v := range s.headers {
		h.Set(k, v)
	}
	return h
}
