package command

import (
	"context"
	"fmt"

	"github.com/sandevgo/replkit/internal/core"
)

type DelCommand struct {
	kv core.KVRepository
}

func NewDelCommand(kv core.KVRepository) *DelCommand {
	return &DelCommand{kv: kv}
}

func (c *DelCommand) Name() string {
	return "del"
}

func (c *DelCommand) Description() string {
	return "Delete a key"
}

func (c *DelCommand) Execute(ctx context.Context, args []string) (string, error) {
	if len(args) != 1 {
		return "", fmt.Errorf("usage: del <key>")
	}

	deleted, err := c.kv.Delete(ctx, args[0])
	if err != nil {
		return "", fmt.Errorf("failed to delete %q: %w", args[0], err)
	}
	if !deleted {
		return fmt.Sprintf("(no value for %s)", args[0]), nil
	}
	return fmt.Sprintf("Deleted %s", args[0]), nil
}
