// Package session owns the client's belief about who is logged in.
//
// # Overview
//
// Manager is the single owner of session state. It mirrors the durable
// token/user pair held by a storage.Store and moves through three phases:
//
//	Restoring ──Restore──▶ Authenticated | Anonymous
//	Anonymous ──Establish──▶ Authenticated
//	Authenticated ──End / HandleUnauthorized──▶ Anonymous
//
// Restoring is entered once, at construction, and never again.
//
// The API client reaches the manager through two narrow interfaces it
// satisfies: Token (read per request, straight from the store) and
// HandleUnauthorized (called for every 401). Because forced logout goes
// through the manager, subscribers observe it like any other transition
// and the in-memory user never lags behind storage.
//
// # Generations
//
// Every transition bumps a generation counter. Requests remember the
// generation they were issued under; a 401 that arrives for an older
// generation is logged and ignored so that a late reply to a request made
// by a previous session cannot log out the current one.
//
// # Route guard
//
// Evaluate is the pure decision function consulted on each navigation to a
// protected view.
package session
