// Package client implements the bookman command line client.
//
// It wires the HTTP server adapter, the saved session, and the cobra
// command tree into a single application. Each subcommand maps to one
// server operation; the bearer token obtained by `login` is persisted so
// subsequent commands can authenticate without re-entering credentials.
package client
