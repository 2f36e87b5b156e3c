// Package app is the composition root for yourenergy.
//
// Run loads config and prefs, opens the zap log file and the SQLite
// preference store, builds the catalog client, starts the quote refresher and
// then hands control to the Bubble Tea UI until the user quits or the context
// is cancelled.
//
// The refresher runs in its own goroutine and writes into a state.Store. It
// fetches at most one quote per day through quote.Service and backs off
// exponentially while the API is failing.
//
// Environment exposes the same wiring to the non-interactive subcommands in
// cmd/yourenergy so they share the store and client with the TUI.
package app
