package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/sandevgo/replkit/internal/core"
)

type SetCommand struct {
	kv core.KVRepository
}

func NewSetCommand(kv core.KVRepository) *SetCommand {
	return &SetCommand{kv: kv}
}

func (c *SetCommand) Name() string {
	return "set"
}

func (c *SetCommand) Description() string {
	return "Store a value under a key"
}

func (c *SetCommand) Execute(ctx context.Context, args []string) (string, error) {
	if len(args) < 2 {
		return "", fmt.Errorf("usage: set <key> <value>")
	}

	key := args[0]
	// The value may contain spaces; everything after the key belongs to it.
	value := strings.Join(args[1:], " ")

	if err := c.kv.Set(ctx, key, value); err != nil {
		return "", fmt.Errorf("failed to set %q: %w", key, err)
	}
	return fmt.Sprintf("OK %s", key), nil
}
