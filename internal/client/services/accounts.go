package services

import (
	"context"
	"fmt"

	"github.com/dherbrich/oandash/internal/client/client"
	"github.com/dherbrich/oandash/internal/client/models"
	"github.com/dherbrich/oandash/internal/common"
)

// AccountService reads account snapshots for an authenticated session.
type AccountService interface {
	List(ctx context.Context, sess *models.Session) ([]*models.Account, error)
}

type accountService struct {
	client client.Client
}

func NewAccountService(c client.Client) AccountService {
	return &accountService{client: c}
}

// List fetches the account ids, then every account in order. It stops at the
// first failure and returns the accounts fetched so far together with the
// error.
func (s *accountService) List(ctx context.Context, sess *models.Session) ([]*models.Account, error) {
	if !sess.Authenticated() {
		return nil, common.ErrNotAuthenticated
	}

	ids, err := s.client.ListAccounts(ctx, sess)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}

	accounts := make([]*models.Account, 0, len(ids))
	for _, id := range ids {
		a, err := s.client.GetAccount(ctx, sess, id)
		if err != nil {
			return accounts, fmt.Errorf("get account %d: %w", id, err)
		}
		accounts = append(accounts, a)
	}
	return accounts, nil
}
