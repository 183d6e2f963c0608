package cli

import "context"

// Root greets the user, opens the home view and runs the REPL until it
// returns.
func (a *App) Root(ctx context.Context) {
	a.muted("Welcome to the RentSeva CLI (type 'help' for commands)")
	_ = a.Navigate(ctx, HomeRoute)

	runREPL(ctx, a, a.getStatus, a.reader)
}
