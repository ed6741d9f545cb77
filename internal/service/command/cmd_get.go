package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/sandevgo/replkit/internal/core"
)

type GetCommand struct {
	kv core.KVRepository
}

func NewGetCommand(kv core.KVRepository) *GetCommand {
	return &GetCommand{kv: kv}
}

func (c *GetCommand) Name() string {
	return "get"
}

func (c *GetCommand) Description() string {
	return "Print the value stored under a key"
}

func (c *GetCommand) Execute(ctx context.Context, args []string) (string, error) {
	if len(args) != 1 {
		return "", fmt.Errorf("usage: get <key>")
	}

	value, err := c.kv.Get(ctx, args[0])
	if errors.Is(err, core.ErrKeyNotFound) {
		return fmt.Sprintf("(no value for %s)", args[0]), nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get %q: %w", args[0], err)
	}
	return value, nil
}
