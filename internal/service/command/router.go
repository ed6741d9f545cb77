package command

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/sandevgo/replkit/internal/core"
)

type Router struct {
	commands map[string]core.Command
}

func New(commands []core.Command) *Router {
	c := &Router{
		commands: make(map[string]core.Command),
	}

	for _, cmd := range commands {
		c.commands[cmd.Name()] = cmd
	}
	return c
}

// Register adds a command after construction. Used for commands that need
// the router itself, like help.
func (c *Router) Register(cmd core.Command) {
	c.commands[cmd.Name()] = cmd
}

func (c *Router) Execute(ctx context.Context, input string) (string, error) {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return "", nil
	}
	name := parts[0]
	args := parts[1:]

	cmd, ok := c.commands[name]
	if !ok {
		return fmt.Sprintf("Unknown command: %s (try 'help')", name), nil
	}
	return cmd.Execute(ctx, args)
}

func (c *Router) ListCommands() []core.Command {
	res := make([]core.Command, 0, len(c.commands))
	for _, cmd := range c.commands {
		res = append(res, cmd)
	}
	sort.Slice(res, func(i, j int) bool {
		return res[i].Name() < res[j].Name()
	})
	return res
}
