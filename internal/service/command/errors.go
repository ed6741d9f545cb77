package command

import "errors"

// ErrQuit signals that the user asked to end the session. The console
// translates it into the loop's stop decision; it is not a failure.
var ErrQuit = errors.New("quit requested")
