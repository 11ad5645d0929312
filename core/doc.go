// Package core contains the terminal host for the navigation container: the
// bubbletea model, message contracts, key and command registries and the
// overlay screen stack.
//
// Allowed here:
// - model update/view, header/status/footer bars, key and command dispatch
// - forwarding navigation intents to the container
//
// Not allowed here:
// - route matching (core/route), location ownership (core/nav)
// - concrete page rendering (pages) or overlay implementations (core/screens)
package core
