package cli

import (
	"context"
	"strings"
	"testing"
)

type fakeExec struct {
	loggedIn bool

	calls     []string
	paths     []string
	redirects []string
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Navigate(ctx context.Context, path string) error {
	f.calls = append(f.calls, "navigate")
	f.paths = append(f.paths, path)
	if path == LoginRoute {
		f.loggedIn = true
	}
	return nil
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.calls = append(f.calls, "logout")
	f.loggedIn = false
	return nil
}
func (f *fakeExec) Status(ctx context.Context) error {
	f.calls = append(f.calls, "status")
	return nil
}
func (f *fakeExec) takeRedirect() string {
	if len(f.redirects) == 0 {
		return ""
	}
	p := f.redirects[0]
	f.redirects = f.redirects[1:]
	return p
}

func silenceOutput(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	origPrintln, origPrint := printlnFn, printFn
	printlnFn = func(a ...any) (int, error) {
		parts := make([]string, 0, len(a))
		for _, v := range a {
			if s, ok := v.(string); ok {
				parts = append(parts, s)
			}
		}
		lines = append(lines, strings.Join(parts, " "))
		return 0, nil
	}
	printFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() {
		printlnFn = origPrintln
		printFn = origPrint
	})
	return &lines
}

func TestRunREPL_LoginFlowAndCommands(t *testing.T) {
	silenceOutput(t)

	input := strings.Join([]string{
		"help",
		"login",
		"help",
		"predict",
		"history",
		"go estimates",
		"status",
		"foobar",
		"logout",
		"exit",
	}, "\n")

	exec := &fakeExec{loggedIn: false}

	runREPL(context.Background(), exec, func() string { return "status" }, rdr(input))

	wantPaths := []string{LoginRoute, RentFormRoute, HistoryRoute, "/estimates"}
	if strings.Join(exec.paths, ",") != strings.Join(wantPaths, ",") {
		t.Fatalf("paths mismatch: got %v, want %v", exec.paths, wantPaths)
	}
	wantCalls := []string{"navigate", "navigate", "navigate", "navigate", "status", "logout"}
	if strings.Join(exec.calls, ",") != strings.Join(wantCalls, ",") {
		t.Fatalf("calls mismatch: got %v, want %v", exec.calls, wantCalls)
	}
}

func TestRunREPL_UsageAndQuit(t *testing.T) {
	lines := silenceOutput(t)

	exec := &fakeExec{loggedIn: true}

	runREPL(context.Background(), exec, func() string { return "s" }, rdr("go\nquit\n"))

	if len(exec.calls) != 0 {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
	if len(*lines) < 2 || (*lines)[0] != "Usage: go <path>" || (*lines)[1] != "Bye!" {
		t.Fatalf("unexpected output: %v", *lines)
	}
}

func TestRunREPL_FollowsRedirectBeforePrompt(t *testing.T) {
	silenceOutput(t)

	exec := &fakeExec{redirects: []string{LoginRoute}}

	runREPL(context.Background(), exec, func() string { return "" }, rdr("exit\n"))

	if len(exec.paths) != 1 || exec.paths[0] != LoginRoute {
		t.Fatalf("expected redirect to login, got %v", exec.paths)
	}
}

func TestRunREPL_StopsOnEOFAndCancel(t *testing.T) {
	silenceOutput(t)

	runREPL(context.Background(), &fakeExec{}, func() string { return "" }, rdr("help"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	exec := &fakeExec{}
	runREPL(ctx, exec, func() string { return "" }, rdr("login\n"))
	if len(exec.calls) != 0 {
		t.Fatalf("cancelled REPL must not dispatch, got %v", exec.calls)
	}
}
