package command

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/sandevgo/replkit/internal/core"
)

type fakeKV struct {
	data map[string]string
}

func newFakeKV() *fakeKV {
	return &fakeKV{data: make(map[string]string)}
}

func (f *fakeKV) Set(ctx context.Context, key, value string) error {
	f.data[key] = value
	return nil
}

func (f *fakeKV) Get(ctx context.Context, key string) (string, error) {
	value, ok := f.data[key]
	if !ok {
		return "", core.ErrKeyNotFound
	}
	return value, nil
}

func (f *fakeKV) Delete(ctx context.Context, key string) (bool, error) {
	_, ok := f.data[key]
	delete(f.data, key)
	return ok, nil
}

func (f *fakeKV) Keys(ctx context.Context) ([]string, error) {
	keys := make([]string, 0, len(f.data))
	for k := range f.data {
		keys = append(keys, k)
	}
	return keys, nil
}

type fakeHistory struct {
	entries []string
}

func (f *fakeHistory) History() []string {
	return f.entries
}

func newTestRouter() *Router {
	router := New(NewCommands(newFakeKV(), &fakeHistory{}))
	router.Register(NewHelpCommand(router))
	return router
}

func TestRouter_SetGetRoundTrip(t *testing.T) {
	ctx := context.Background()
	router := newTestRouter()

	result, err := router.Execute(ctx, "set name ada lovelace")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result != "OK name" {
		t.Errorf("expected OK name, got %q", result)
	}

	result, err = router.Execute(ctx, "get name")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result != "ada lovelace" {
		t.Errorf("expected joined value, got %q", result)
	}
}

func TestRouter_GetMissingKey(t *testing.T) {
	router := newTestRouter()

	result, err := router.Execute(context.Background(), "get nothing")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(result, "no value") {
		t.Errorf("expected missing-key message, got %q", result)
	}
}

func TestRouter_UnknownCommand(t *testing.T) {
	router := newTestRouter()

	result, err := router.Execute(context.Background(), "frobnicate")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(result, "Unknown command: frobnicate") {
		t.Errorf("expected unknown-command hint, got %q", result)
	}
}

func TestRouter_QuitAndExitSignalStop(t *testing.T) {
	router := newTestRouter()

	for _, input := range []string{"quit", "exit"} {
		_, err := router.Execute(context.Background(), input)
		if !errors.Is(err, ErrQuit) {
			t.Errorf("%s: expected ErrQuit, got %v", input, err)
		}
	}
}

func TestRouter_UsageErrors(t *testing.T) {
	router := newTestRouter()

	tests := []string{"set", "set key", "get", "get a b", "del"}
	for _, input := range tests {
		if _, err := router.Execute(context.Background(), input); err == nil {
			t.Errorf("%q: expected usage error, got nil", input)
		}
	}
}

func TestRouter_HistoryCommand(t *testing.T) {
	router := New(NewCommands(newFakeKV(), &fakeHistory{entries: []string{"set a 1", "get a"}}))

	result, err := router.Execute(context.Background(), "history")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(result, "set a 1") || !strings.Contains(result, "get a") {
		t.Errorf("expected both entries listed, got %q", result)
	}
}

func TestRouter_HelpListsCommandsSorted(t *testing.T) {
	router := newTestRouter()

	result, err := router.Execute(context.Background(), "help")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	names := []string{}
	for _, cmd := range router.ListCommands() {
		names = append(names, cmd.Name())
		if !strings.Contains(result, cmd.Name()) {
			t.Errorf("help output missing %q", cmd.Name())
		}
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Errorf("ListCommands not sorted: %v", names)
		}
	}
}
