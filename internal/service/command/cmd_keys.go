package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/sandevgo/replkit/internal/core"
)

type KeysCommand struct {
	kv core.KVRepository
}

func NewKeysCommand(kv core.KVRepository) *KeysCommand {
	return &KeysCommand{kv: kv}
}

func (c *KeysCommand) Name() string {
	return "keys"
}

func (c *KeysCommand) Description() string {
	return "List all stored keys"
}

func (c *KeysCommand) Execute(ctx context.Context, args []string) (string, error) {
	keys, err := c.kv.Keys(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to list keys: %w", err)
	}
	if len(keys) == 0 {
		return "(empty)", nil
	}
	return strings.Join(keys, "\n"), nil
}
