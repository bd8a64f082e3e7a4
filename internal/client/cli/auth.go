package cli

import (
	"context"
	"fmt"

	"github.com/dherbrich/oandash/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
)

const loginFailed = "Login failed: invalid username or password."

// Login prompts for a username (defaulting to the OS user) and a password
// and unlocks the stored API key. On success the App holds the new Session.
// Every authentication failure prints the same message to stderr and keeps
// the previous Session.
func (a *App) Login(ctx context.Context) error {
	suggested := currentUser()

	username, err := getSimpleText(a.reader, fmt.Sprintf("Username [%s]: ", suggested), a.out)
	if err != nil {
		fmt.Fprintln(a.errOut, "Login failed.")
		return err
	}
	if username == "" {
		username = suggested
	}

	password, err := getPassword(a.reader, a.out)
	if err != nil {
		fmt.Fprintln(a.errOut, "Login failed.")
		return err
	}
	defer common.WipeByteArray(password)

	sess, err := a.authService.Login(ctx, username, password)
	if err != nil {
		fmt.Fprintln(a.errOut, loginFailed)
		return err
	}

	a.session = sess
	return nil
}
