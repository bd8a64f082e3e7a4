package cli

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/glamour"
)

type helpPage struct {
	args string
	desc string
}

var helpPages = map[string]helpPage{
	"accounts": {desc: "Lists every account of the logged in user with balance, profit and loss, margin and leverage."},
	"help":     {args: "[command]", desc: "Lists the available commands, or shows help for one command."},
	"login":    {desc: "Asks for a username and password and unlocks the stored API key. The username defaults to the current system user."},
	"quit":     {desc: "Exits the shell immediately without asking for confirmation."},
	"version":  {desc: "Shows version, license and maintainer information."},
}

func (h helpPage) markdown(cmd string) string {
	usage := strings.TrimSpace(cmd + " " + h.args)
	return fmt.Sprintf("# Help for command: %s\n\n**Usage**: `%s`\n\n%s\n", cmd, usage, h.desc)
}

func commandNames() []string {
	names := make([]string, 0, len(helpPages))
	for name := range helpPages {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// renderHelp renders the help page for cmd. style is a glamour standard
// style such as "dark" or "notty".
func renderHelp(cmd, style string) (string, error) {
	page, ok := helpPages[cmd]
	if !ok {
		return "", fmt.Errorf("no help on %s", cmd)
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(72),
	)
	if err != nil {
		return "", err
	}
	return r.Render(page.markdown(cmd))
}

// Help lists the commands, or renders the help page for topic.
func (a *App) Help(_ context.Context, topic string) error {
	if topic == "" {
		fmt.Fprintf(a.out, "Available commands: %s\nType help <command> for details.\n", strings.Join(commandNames(), ", "))
		return nil
	}

	style := "notty"
	if a.interactive {
		style = "dark"
	}

	out, err := renderHelp(topic, style)
	if err != nil {
		fmt.Fprintf(a.out, "*** No help on %s\n", topic)
		return err
	}
	fmt.Fprint(a.out, out)
	return nil
}
