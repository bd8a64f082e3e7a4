package credentials

import "context"

// APIKeyField is the user-entry field holding the encrypted blob.
const APIKeyField = "apikey"

type Repository interface {
	Get(ctx context.Context, username string) (string, error)
	Set(ctx context.Context, username, encrypted string) error
	Delete(ctx context.Context, username string) error
	List(ctx context.Context) ([]string, error)
}
