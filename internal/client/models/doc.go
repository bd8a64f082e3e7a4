// Package models defines client-side data models used by the oandash shell:
// the authenticated Session and the Account snapshot returned by the API.
package models
