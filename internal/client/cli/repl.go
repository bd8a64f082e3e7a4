package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	Login(ctx context.Context) error
	Accounts(ctx context.Context) error
	Version(ctx context.Context) error
	Help(ctx context.Context, topic string) error
}

// runREPL reads one command per line from in and dispatches it to a.
//
// "?" is a synonym for help, also in the glued form "?login". Handlers
// report their own failures, so returned errors are dropped and the loop
// goes on. The loop ends on "quit" or at end of input.
func runREPL(ctx context.Context, a execIface, in *bufio.Reader, w io.Writer, prompt string) {
	for {
		fmt.Fprint(w, prompt)

		line, err := in.ReadString('\n')
		if err != nil && line == "" {
			fmt.Fprintln(w)
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]
		if rest, ok := strings.CutPrefix(cmd, "?"); ok {
			cmd = "help"
			if rest != "" {
				args = append([]string{rest}, args...)
			}
		}

		switch cmd {
		case "help":
			topic := ""
			if len(args) > 0 {
				topic = args[0]
			}
			_ = a.Help(ctx, topic)

		case "login":
			_ = a.Login(ctx)

		case "accounts":
			_ = a.Accounts(ctx)

		case "version":
			_ = a.Version(ctx)

		case "quit":
			return

		default:
			fmt.Fprintln(w, "Unknown command:", cmd)
		}
	}
}
