package repl

import (
	"errors"
	"io"

	"github.com/chzyer/readline"
)

// ErrInterrupt reports that the user cancelled the pending input line
// (Ctrl+C). It is a control signal, not a failure: Run absorbs it and keeps
// the session running.
var ErrInterrupt = errors.New("input interrupted")

// LineSource is the terminal collaborator behind the loop. ReadLine blocks
// until a line, a signal, or an error is available and classifies the
// outcome through its error value:
//
//   - nil: a line was read
//   - ErrInterrupt: the pending line was cancelled, session continues
//   - io.EOF: no more input will ever arrive, session ends cleanly
//   - anything else: fatal read failure
//
// AppendHistory is best-effort; a failure must not abort the session.
// LoadHistory and SaveHistory are explicit, caller-invoked operations with
// discardable errors.
type LineSource interface {
	ReadLine(prompt string) (string, error)
	AppendHistory(entry string) error
	History() []string
	LoadHistory(path string) error
	SaveHistory(path string) error
	Close() error
}

type readlineSource struct {
	rl      *readline.Instance
	history *History
}

// NewReadlineSource opens the default terminal-backed line source. The
// editor's automatic history persistence is disabled: load/save are explicit
// operations owned by the History manager.
func NewReadlineSource() (LineSource, error) {
	return NewReadlineSourceWithLimit(DefaultHistoryLimit)
}

// NewReadlineSourceWithLimit opens the terminal-backed line source with a
// caller-chosen history size. The limit applies to both the recall buffer
// and the persisted file.
func NewReadlineSourceWithLimit(limit int) (LineSource, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}

	rl, err := readline.NewEx(&readline.Config{
		InterruptPrompt:        "^C",
		EOFPrompt:              "exit",
		HistoryLimit:           limit,
		DisableAutoSaveHistory: true,
	})
	if err != nil {
		return nil, err
	}

	return &readlineSource{
		rl:      rl,
		history: NewHistory(limit),
	}, nil
}

func (s *readlineSource) ReadLine(prompt string) (string, error) {
	s.rl.SetPrompt(prompt)

	line, err := s.rl.Readline()
	switch {
	case err == nil:
		return line, nil
	case errors.Is(err, readline.ErrInterrupt):
		return "", ErrInterrupt
	case errors.Is(err, io.EOF):
		return "", io.EOF
	default:
		return "", err
	}
}

func (s *readlineSource) AppendHistory(entry string) error {
	if !s.history.Add(entry) {
		// Consecutive duplicate, nothing to record.
		return nil
	}
	return s.rl.SaveHistory(entry)
}

func (s *readlineSource) History() []string {
	return s.history.Entries()
}

// LoadHistory replaces the in-memory history with the file's entries and
// replays them into the editor so arrow-recall works across restarts.
// Intended to be called once, at session start.
func (s *readlineSource) LoadHistory(path string) error {
	if err := s.history.Load(path); err != nil {
		return err
	}
	for _, entry := range s.history.Entries() {
		if err := s.rl.SaveHistory(entry); err != nil {
			return err
		}
	}
	return nil
}

func (s *readlineSource) SaveHistory(path string) error {
	return s.history.Save(path)
}

func (s *readlineSource) Close() error {
	return s.rl.Close()
}
