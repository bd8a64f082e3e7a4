// Package cli provides the interactive oandash shell.
//
// It wires configuration, the encrypted credential store, the REST client
// and a line-oriented REPL. Typical flow: print the intro banner, read
// commands until quit or EOF, log in to obtain a Session and list the
// accounts that Session can see.
//
// Commands:
//   - login            prompt for username and password, unlock the API key
//   - accounts         show every account with balances and margin
//   - version          print version and licensing information
//   - help [command]   list commands or show help for one of them
//   - quit             leave the shell
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
