package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/sandevgo/replkit/internal/core"
)

type HistoryCommand struct {
	source core.HistorySource
}

func NewHistoryCommand(source core.HistorySource) *HistoryCommand {
	return &HistoryCommand{source: source}
}

func (c *HistoryCommand) Name() string {
	return "history"
}

func (c *HistoryCommand) Description() string {
	return "Show the commands entered this session"
}

func (c *HistoryCommand) Execute(ctx context.Context, args []string) (string, error) {
	entries := c.source.History()
	if len(entries) == 0 {
		return "(empty)", nil
	}

	var b strings.Builder
	for i, entry := range entries {
		fmt.Fprintf(&b, "%4d  %s\n", i+1, entry)
	}
	return strings.TrimRight(b.String(), "\n"), nil
}
