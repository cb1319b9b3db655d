package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	Templates(ctx context.Context) error
	Algorithms(ctx context.Context) error
	Sites(ctx context.Context) error
	Site(ctx context.Context, args []string) error
	Gen(ctx context.Context, args []string) error
}

// runREPL reads commands line by line from reader and dispatches them to a.
// The loop exits at end of input or when the user types "exit" or "quit".
// Handlers may read follow-up answers from the same reader.
//
// Errors returned by command handlers are ignored here; handlers report
// their own errors. This keeps the loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, reader *bufio.Reader) {
	for {
		printlnFn("fort> ")
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			printlnFn("Available commands: templates, algorithms, sites, site [name], gen <site> [template] [counter] [length], exit")

		case "templates":
			_ = a.Templates(ctx)

		case "algorithms":
			_ = a.Algorithms(ctx)

		case "sites":
			_ = a.Sites(ctx)

		case "site":
			_ = a.Site(ctx, args)

		case "gen":
			_ = a.Gen(ctx, args)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
