// Package services contains application services for the oandash shell.
// This file defines the authentication flow: credential lookup, decryption of
// the stored API key and construction of the bearer-token Session.
package services

import (
	"context"

	"github.com/dherbrich/oandash/internal/client/models"
	"github.com/dherbrich/oandash/internal/client/repositories/credentials"
	"github.com/dherbrich/oandash/internal/common"
	"github.com/dherbrich/oandash/internal/cryptox"
	"github.com/dherbrich/oandash/internal/logging"
)

// AuthService turns a username and password into an authenticated Session.
//
// Login fails with common.ErrInvalidCredentials whether the user is unknown,
// the password is wrong or the stored blob is corrupt.
type AuthService interface {
	Login(ctx context.Context, username string, password []byte) (*models.Session, error)
}

type authService struct {
	creds  credentials.Repository
	cipher *cryptox.Cipher
	log    logging.Logger
}

func NewAuthService(creds credentials.Repository, cipher *cryptox.Cipher, log logging.Logger) AuthService {
	return &authService{creds: creds, cipher: cipher, log: log}
}

func (a *authService) Login(ctx context.Context, username string, password []byte) (*models.Session, error) {
	log := a.log.With("user", username)

	encrypted, err := a.creds.Get(ctx, username)
	if err != nil {
		log.Debug(ctx, "login rejected", "stage", "lookup")
		return nil, common.ErrInvalidCredentials
	}

	plaintext, err := a.cipher.Decrypt(encrypted, password)
	if err != nil {
		log.Debug(ctx, "login rejected", "stage", "decrypt")
		return nil, common.ErrInvalidCredentials
	}
	defer common.WipeByteArray(plaintext)

	if !isToken(plaintext) {
		log.Debug(ctx, "login rejected", "stage", "decode")
		return nil, common.ErrInvalidCredentials
	}

	log.Info(ctx, "login successful")
	return models.NewSession(username, string(plaintext)), nil
}

// isToken reports whether b is a non-empty run of printable ASCII, the only
// bytes allowed in a bearer header value.
func isToken(b []byte) bool {
	if len(b) == 0 {
		return false
	}
	for _, c := range b {
		if c < 0x20 || c > 0x7e {
			return false
		}
	}
	return true
}
