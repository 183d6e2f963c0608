// Package cli provides the interactive rentpred command-line client.
//
// It wires configuration, the persisted session, the API services, and an
// interactive REPL. Every command navigates to a view path through the
// router; protected paths go through the session guard first, so an
// anonymous user is sent to the login view and a user whose session is
// still being restored sees a loading placeholder.
//
// Key features:
//   - Login / Signup / Logout, forgot-password notice
//   - Rent estimate form, results view, estimate history, profile
//   - Forced logout: a 401 from the API ends the session and the next
//     prompt opens the login view
//   - Online status watcher shown in the prompt
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, Navigate, StartOnlineStatusWatcher, and runREPL for details.
package cli
