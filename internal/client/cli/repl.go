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
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Inbox(ctx context.Context) error
	Show(ctx context.Context) error
	Compose(ctx context.Context) error
	Drafts(ctx context.Context) error
	SendDraft(ctx context.Context) error
	DeleteDraft(ctx context.Context) error
	Settings(ctx context.Context) error
	Logout(ctx context.Context) error
}

// runREPL starts a simple read-eval-print loop for the mail CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Commands while not logged in: register, login, settings, exit.
// Commands while logged in: inbox, show, compose, drafts, senddraft,
// deldraft, settings, logout, exit.
//
// Any errors returned by command handlers are ignored here; handlers should
// log their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("mail> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: (i)nbox, show, compose, drafts, senddraft, deldraft, settings, logout, exit")
			} else {
				printlnFn("Available commands: register, login, settings, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "i", "inbox", "list":
			_ = a.Inbox(ctx)

		case "show":
			_ = a.Show(ctx)

		case "compose":
			_ = a.Compose(ctx)

		case "drafts":
			_ = a.Drafts(ctx)

		case "senddraft":
			_ = a.SendDraft(ctx)

		case "deldraft":
			_ = a.DeleteDraft(ctx)

		case "settings":
			_ = a.Settings(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
