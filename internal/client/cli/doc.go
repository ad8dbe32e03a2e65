// Package cli provides the interactive Publicada command-line client.
//
// It wires configuration, the API client, and an interactive REPL around
// the account service. Typical flow: register or log in, then inspect and
// edit the profile with whoami/update, or remove the account with delete.
//
// Key features:
//   - Register / Login / Logout
//   - Whoami: show the signed-in profile
//   - Update: edit name and email (empty input keeps the current value)
//   - Delete: remove the account and end the session
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, StartOnlineStatusWatcher, and runREPL for details.
package cli
