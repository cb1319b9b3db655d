package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	calls []string
}

func (f *fakeExec) Templates(ctx context.Context) error {
	f.calls = append(f.calls, "templates")
	return nil
}
func (f *fakeExec) Algorithms(ctx context.Context) error {
	f.calls = append(f.calls, "algorithms")
	return nil
}
func (f *fakeExec) Sites(ctx context.Context) error { f.calls = append(f.calls, "sites"); return nil }
func (f *fakeExec) Site(ctx context.Context, args []string) error {
	f.calls = append(f.calls, "site "+strings.Join(args, " "))
	return nil
}
func (f *fakeExec) Gen(ctx context.Context, args []string) error {
	f.calls = append(f.calls, "gen "+strings.Join(args, " "))
	return fmt.Errorf("handler errors do not stop the loop")
}

func capturePrint(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		lines = append(lines, strings.TrimSpace(fmt.Sprintln(a...)))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

func TestRunREPL_DispatchesCommands(t *testing.T) {
	lines := capturePrint(t)

	input := strings.NewReader(strings.Join([]string{
		"help",
		"",
		"templates",
		"algorithms",
		"sites",
		"site example.com",
		"gen example.com PIN 2 3",
		"foobar",
		"exit",
		"templates",
	}, "\n"))

	exec := &fakeExec{}
	runREPL(context.Background(), exec, bufio.NewReader(input))

	assert.Equal(t, []string{
		"templates",
		"algorithms",
		"sites",
		"site example.com",
		"gen example.com PIN 2 3",
	}, exec.calls)

	out := strings.Join(*lines, "\n")
	assert.Contains(t, out, "Available commands:")
	assert.Contains(t, out, "Unknown command: foobar")
	assert.Contains(t, out, "Bye!")
}

func TestRunREPL_StopsOnEOF(t *testing.T) {
	capturePrint(t)

	exec := &fakeExec{}
	runREPL(context.Background(), exec, rdr("sites"))
	assert.Equal(t, []string{"sites"}, exec.calls)
}
