// Package cli provides the interactive Kontax command-line client.
//
// It wires configuration, local storage, API services, and an interactive REPL
// that supports online/offline operation. Typical flow: scan a payload, stage
// the decoded contact, annotate it, and save it to the local history.
//
// Key features:
//   - Decode scanned payloads (vCard, JSON, URL query)
//   - Annotate and save contact cards
//   - List / Show / Delete cards
//   - Render your own QR payload (URL when online, vCard when offline)
//   - Publish cards to the server for a hosted link
//
// The REPL is started via App.Root(ctx), which blocks until the user exits.
// See App, StartOnlineStatusWatcher, and runREPL for details.
package cli
