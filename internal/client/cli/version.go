package cli

import (
	"context"

	"github.com/dherbrich/oandash/internal/buildinfo"
)

// Version prints the about text.
func (a *App) Version(context.Context) error {
	buildinfo.PrintAbout(a.out)
	return nil
}
