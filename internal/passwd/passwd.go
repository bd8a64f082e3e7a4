// Package passwd implements oandash-passwd, which writes and removes the
// encrypted API keys the shell unlocks at login.
package passwd

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dherbrich/oandash/internal/client/config"
	"github.com/dherbrich/oandash/internal/client/repositories/credentials"
	"github.com/dherbrich/oandash/internal/common"
	"github.com/dherbrich/oandash/internal/cryptox"
	"github.com/dherbrich/oandash/internal/logging"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	ErrPasswordMismatch = errors.New("passwords do not match")
	ErrEmptySecret      = errors.New("value must not be empty")
	ErrNotPrintable     = errors.New("api key must be printable ASCII")
)

// Test seams for the terminal and the KDF cost.
var (
	readPassword = term.ReadPassword
	isTerminal   = term.IsTerminal
	newCipher    = cryptox.NewCipher
)

type options struct {
	configDir string
	logLevel  string
	cipher    *cryptox.Cipher
}

// NewRootCmd builds the oandash-passwd command tree.
func NewRootCmd() *cobra.Command {
	var defaults config.Config
	defaults.LoadDefaults()

	opts := &options{cipher: newCipher()}

	root := &cobra.Command{
		Use:           "oandash-passwd",
		Short:         "Manage the encrypted API keys used by oandash",
		Long:          `oandash-passwd stores OANDA API keys encrypted under a per-user password in ` + config.StoreFileName + `, where the oandash shell looks them up at login.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&opts.configDir, "dir", "d", defaults.ConfigDir, "directory holding "+config.StoreFileName)
	root.PersistentFlags().StringVarP(&opts.logLevel, "log-level", "l", defaults.LogLevel, "log level (debug, info, warn, error)")

	root.AddCommand(newSetCmd(opts), newListCmd(opts), newRemoveCmd(opts))
	return root
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func (o *options) repo() *credentials.JSONFileRepository {
	cfg := config.Config{ConfigDir: o.configDir}
	return credentials.NewJSONFileRepository(cfg.StorePath())
}

func (o *options) logger(cmd *cobra.Command) logging.Logger {
	return logging.New(cmd.ErrOrStderr(), o.logLevel)
}

func newSetCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "set <username>",
		Short: "Store or replace the API key of a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			username := args[0]
			repo := opts.repo()
			log := opts.logger(cmd).With("user", username, "store", repo.Path())

			if credentials.Lookup(username, repo.Path()) != "" {
				fmt.Fprintf(cmd.ErrOrStderr(), "Replacing the stored API key of %s.\n", username)
			}

			p := newPrompter(cmd.InOrStdin(), cmd.ErrOrStderr())

			apikey, err := p.secret("API key: ")
			if err != nil {
				return err
			}
			defer common.WipeByteArray(apikey)
			apikey = bytes.TrimSpace(apikey)
			if err := validateAPIKey(apikey); err != nil {
				return err
			}

			password, err := p.confirmed("Password: ", "Repeat password: ")
			if err != nil {
				return err
			}
			defer common.WipeByteArray(password)

			blob, err := opts.cipher.Encrypt(apikey, password)
			if err != nil {
				return fmt.Errorf("encrypt: %w", err)
			}
			if err := repo.Set(cmd.Context(), username, blob); err != nil {
				return err
			}

			log.Info(cmd.Context(), "api key stored")
			fmt.Fprintf(cmd.OutOrStdout(), "Stored API key for %s.\n", username)
			return nil
		},
	}
}

func newListCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List users with a stored API key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			names, err := opts.repo().List(cmd.Context())
			if err != nil {
				return err
			}
			for _, name := range names {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}

func newRemoveCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:     "remove <username>",
		Aliases: []string{"rm"},
		Short:   "Delete the stored API key of a user",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.repo().Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s.\n", args[0])
			return nil
		},
	}
}

func validateAPIKey(b []byte) error {
	if len(b) == 0 {
		return ErrEmptySecret
	}
	for _, c := range b {
		if c < 0x20 || c > 0x7e {
			return ErrNotPrintable
		}
	}
	return nil
}

// prompter reads secrets from the terminal without echo, or line by line
// when input is piped.
type prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{in: bufio.NewReader(in), out: out}
}

func (p *prompter) secret(prompt string) ([]byte, error) {
	fmt.Fprint(p.out, prompt)

	fd := int(os.Stdin.Fd())
	if isTerminal(fd) {
		b, err := readPassword(fd)
		fmt.Fprintln(p.out)
		return b, err
	}

	line, err := p.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && len(line) > 0) {
		return nil, fmt.Errorf("read %s: %w", strings.TrimSuffix(prompt, ": "), err)
	}
	return []byte(strings.TrimRight(line, "\r\n")), nil
}

// confirmed asks twice and fails unless both answers match.
func (p *prompter) confirmed(prompt, again string) ([]byte, error) {
	first, err := p.secret(prompt)
	if err != nil {
		return nil, err
	}
	second, err := p.secret(again)
	if err != nil {
		common.WipeByteArray(first)
		return nil, err
	}
	defer common.WipeByteArray(second)

	if !bytes.Equal(first, second) {
		common.WipeByteArray(first)
		return nil, ErrPasswordMismatch
	}
	return first, nil
}
