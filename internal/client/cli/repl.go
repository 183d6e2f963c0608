package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn and printFn are test seams for REPL output. In tests, replace them with stubs.
var (
	printlnFn = fmt.Println
	printFn   = fmt.Print
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Navigate(ctx context.Context, path string) error
	Logout(ctx context.Context) error
	Status(ctx context.Context) error
	takeRedirect() string
}

// commandRoutes maps REPL commands to the view they open.
var commandRoutes = map[string]string{
	"home":         HomeRoute,
	"about":        AboutRoute,
	"contact":      ContactRoute,
	"login":        LoginRoute,
	"signup":       SignupRoute,
	"register":     SignupRoute,
	"forgot":       ForgotRoute,
	"predict":      RentFormRoute,
	"rent-form":    RentFormRoute,
	"results":      ResultsRoute,
	"profile":      ProfileRoute,
	"edit-profile": EditProfileRoute,
	"history":      HistoryRoute,
	"estimates":    EstimateRoute,
}

// runREPL starts a simple read-eval-print loop for the rentpred CLI.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a'. Before every prompt it opens the view the
// app asked for, if any (login after a forced logout). The loop exits on
// EOF, when ctx is cancelled, or when the user types "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//   - help                     show available commands
//   - home | about | contact   public pages
//   - login | signup | forgot  account pages
//   - predict                  rent estimate form (login required)
//   - results                  last estimate of this run
//   - profile | history        account data (login required)
//   - edit-profile             change name or mobile on this device
//   - go <path>                open a view by path, e.g. "go /estimates"
//   - status                   session, server and token details
//   - logout                   end the session
//   - exit | quit              leave the program
//
// Any errors returned by command handlers are ignored here; handlers
// report their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}
		if path := a.takeRedirect(); path != "" {
			_ = a.Navigate(ctx, path)
			continue
		}

		printFn(fmt.Sprintf("rentpred %s> ", statusFn()))
		line, err := readLine(reader)
		if err != nil {
			printlnFn()
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		if path, ok := commandRoutes[cmd]; ok {
			_ = a.Navigate(ctx, path)
			continue
		}

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: home, predict, results, history, profile, edit-profile, status, logout, about, contact, go <path>, exit")
			} else {
				printlnFn("Available commands: home, login, signup, forgot, results, status, about, contact, go <path>, exit")
				printlnFn("Log in to use: predict, history, profile, edit-profile")
			}

		case "go", "open":
			if len(args) == 0 {
				printlnFn("Usage: go <path>")
				continue
			}
			path := args[0]
			if !strings.HasPrefix(path, "/") {
				path = "/" + path
			}
			_ = a.Navigate(ctx, path)

		case "status":
			_ = a.Status(ctx)

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
