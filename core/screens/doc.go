// Package screens contains concrete overlay flows rendered above the mounted page.
//
// Allowed here:
// - screen implementations that satisfy core.Screen (go-to prompt, command palette)
// - overlay-specific presentation and interaction wiring
//
// Not allowed here:
// - the route table, location ownership and key registry ownership
// - low-level widget/layout primitives
package screens
