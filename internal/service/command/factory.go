package command

import (
	"github.com/sandevgo/replkit/internal/core"
)

func NewCommands(
	kv core.KVRepository,
	history core.HistorySource,
) []core.Command {
	return []core.Command{
		NewSetCommand(kv),
		NewGetCommand(kv),
		NewDelCommand(kv),
		NewKeysCommand(kv),
		NewHistoryCommand(history),
		NewQuitCommand("quit"),
		NewQuitCommand("exit"),
	}
}
