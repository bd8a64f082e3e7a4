package client

import (
	"context"

	"github.com/dherbrich/oandash/internal/client/models"
)

type Client interface {
	ListAccounts(ctx context.Context, sess *models.Session) ([]int64, error)
	GetAccount(ctx context.Context, sess *models.Session, accountID int64) (*models.Account, error)
}
