package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dherbrich/oandash/internal/client/client"
	"github.com/dherbrich/oandash/internal/client/models"
	"github.com/dherbrich/oandash/internal/common"
	"github.com/dherbrich/oandash/internal/ui"
)

// spin is a test seam for the progress spinner.
var spin = ui.Spin[[]*models.Account]

// Accounts prints every account visible to the session in long form.
// Accounts fetched before a failure are still printed.
func (a *App) Accounts(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Please 'login' first.")
		return common.ErrNotAuthenticated
	}

	accounts, err := a.fetchAccounts(ctx)
	for _, acc := range accounts {
		fmt.Fprintln(a.out, a.palette.accountLong(acc))
	}
	if err != nil {
		a.log.Debug(ctx, "accounts failed", "error", err)
		a.reportError(err)
		return err
	}
	return nil
}

// fetchAccounts cancels the request context on return, including when the
// spinner gives up on a still running task.
func (a *App) fetchAccounts(ctx context.Context) ([]*models.Account, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	task := func() ([]*models.Account, error) {
		return a.accounts.List(ctx, a.session)
	}
	if !a.interactive {
		return task()
	}
	return spin(a.errOut, "Fetching accounts", task)
}

func (a *App) reportError(err error) {
	var re *client.ResponseError
	switch {
	case errors.As(err, &re):
		fmt.Fprintln(a.errOut, "Could not understand OANDA response:")
		fmt.Fprintln(a.errOut, prettyJSON(re.Raw))
	case errors.Is(err, common.ErrTransport):
		fmt.Fprintf(a.errOut, "Request failed: %v\n", err)
	case errors.Is(err, ui.ErrCancelled):
		fmt.Fprintln(a.errOut, "Cancelled.")
	default:
		fmt.Fprintf(a.errOut, "Error: %v\n", err)
	}
}

// prettyJSON re-indents raw with sorted keys and four spaces. Input that
// is not JSON is returned unchanged.
func prettyJSON(raw []byte) string {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return string(raw)
	}
	out, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return string(raw)
	}
	return string(out)
}
