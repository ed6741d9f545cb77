package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/sandevgo/replkit/internal/core"
)

type HelpCommand struct {
	router core.CmdRouter
}

func NewHelpCommand(router core.CmdRouter) *HelpCommand {
	return &HelpCommand{router: router}
}

func (c *HelpCommand) Name() string {
	return "help"
}

func (c *HelpCommand) Description() string {
	return "List available commands"
}

func (c *HelpCommand) Execute(ctx context.Context, args []string) (string, error) {
	var b strings.Builder
	b.WriteString("Available commands:\n")
	for _, cmd := range c.router.ListCommands() {
		fmt.Fprintf(&b, "  %-10s %s\n", cmd.Name(), cmd.Description())
	}
	return strings.TrimRight(b.String(), "\n"), nil
}
