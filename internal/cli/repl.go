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
	Login(ctx context.Context) error
	Signup(ctx context.Context) error
	Logout(ctx context.Context) error
	ShowProfile(ctx context.Context) error
	EditProfile(ctx context.Context) error
	EditGoals(ctx context.Context) error
	Scan(ctx context.Context) error
	Search(ctx context.Context) error
	History(ctx context.Context) error
	ClearHistory(ctx context.Context) error
	ShowRoutine(ctx context.Context) error
	ToggleStep(ctx context.Context) error
	SetRoutineLevel(ctx context.Context) error
	Dashboard(ctx context.Context) error
	Billing(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the SkinFlow CLI.
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
//	Not logged in:
//	  - help           — show available commands
//	  - signup         — create an account
//	  - login          — authenticate
//	  - exit | quit    — leave the program
//
//	Logged in:
//	  - profile        — show the current profile
//	  - edit           — edit name, skin type and skin tone
//	  - goals          — pick skin goals
//	  - scan           — scan a product barcode
//	  - search         — look a product up by name or brand
//	  - history        — list scanned products, newest first
//	  - clearhistory   — empty the scan history
//	  - routine        — show today's routine
//	  - toggle         — mark a routine step done or undone
//	  - level          — switch between the 3-step and 5-step routines
//	  - dashboard      — show the home summary
//	  - billing        — show plans, cards and invoices
//	  - logout         — log out
//	  - exit | quit    — leave the program
//
// Any errors returned by command handlers are ignored here; handlers should
// log their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("skinflow %s> ", statusFn()))
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
				printlnFn("Available commands: profile, edit, goals, scan, search, history, clearhistory, routine, toggle, level, dashboard, billing, logout, exit")
			} else {
				printlnFn("Available commands: signup, login, exit")
			}

		case "signup":
			_ = a.Signup(ctx)

		case "login":
			_ = a.Login(ctx)

		case "profile":
			_ = a.ShowProfile(ctx)

		case "edit":
			_ = a.EditProfile(ctx)

		case "goals":
			_ = a.EditGoals(ctx)

		case "scan":
			_ = a.Scan(ctx)

		case "search":
			_ = a.Search(ctx)

		case "history":
			_ = a.History(ctx)

		case "clearhistory":
			_ = a.ClearHistory(ctx)

		case "routine":
			_ = a.ShowRoutine(ctx)

		case "toggle":
			_ = a.ToggleStep(ctx)

		case "level":
			_ = a.SetRoutineLevel(ctx)

		case "dashboard":
			_ = a.Dashboard(ctx)

		case "billing":
			_ = a.Billing(ctx)

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
