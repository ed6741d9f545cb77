package command

import "context"

// QuitCommand ends the session. Registered under both "quit" and "exit".
type QuitCommand struct {
	name string
}

func NewQuitCommand(name string) *QuitCommand {
	return &QuitCommand{name: name}
}

func (c *QuitCommand) Name() string {
	return c.name
}

func (c *QuitCommand) Description() string {
	return "End the session"
}

func (c *QuitCommand) Execute(ctx context.Context, args []string) (string, error) {
	return "", ErrQuit
}
