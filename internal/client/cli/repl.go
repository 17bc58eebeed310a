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
	Scan(ctx context.Context) error
	Save(ctx context.Context) error
	List(ctx context.Context) error
	Show(ctx context.Context) error
	Delete(ctx context.Context) error
	QR(ctx context.Context) error
	Profile(ctx context.Context) error
	Event(ctx context.Context) error
	Publish(ctx context.Context) error
}

// runREPL starts a simple read-eval-print loop for the Kontax CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Always available:
//	  - help           — show available commands
//	  - scan           — decode a scanned payload and stage it
//	  - save           — annotate the staged contact and save a card
//	  - list | l       — list saved cards
//	  - show           — show a single card (interactive ID prompt)
//	  - delete         — delete a card by ID
//	  - qr             — render your own QR payload
//	  - profile        — view or edit your profile
//	  - event          — view or edit the active event context
//	  - register       — create a device account
//	  - login          — authenticate against the server
//	  - exit | quit    — leave the program
//
//	Logged in:
//	  - publish        — push a card to the server for a hosted link
//
// Any errors returned by command handlers are ignored here; handlers should
// log their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("kx> %s > ", statusFn()))
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
				printlnFn("Available commands: scan, save, (l)ist, show, delete, qr, profile, event, publish, exit")
			} else {
				printlnFn("Available commands: scan, save, (l)ist, show, delete, qr, profile, event, register, login, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "scan":
			_ = a.Scan(ctx)

		case "save":
			_ = a.Save(ctx)

		case "l", "list":
			_ = a.List(ctx)

		case "show":
			_ = a.Show(ctx)

		case "delete":
			_ = a.Delete(ctx)

		case "qr":
			_ = a.QR(ctx)

		case "profile":
			_ = a.Profile(ctx)

		case "event":
			_ = a.Event(ctx)

		case "publish":
			_ = a.Publish(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
