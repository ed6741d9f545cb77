package core

import "context"

type CmdRouter interface {
	Execute(ctx context.Context, input string) (string, error)
	ListCommands() []Command
}

type Command interface {
	Name() string
	Description() string
	Execute(ctx context.Context, args []string) (string, error)
}

// HistorySource exposes the session's recall buffer, oldest first.
type HistorySource interface {
	History() []string
}
