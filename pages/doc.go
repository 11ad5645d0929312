// Package pages holds the page-level content mounted by the navigation
// container. Pages are opaque to the shell: each renders itself from a
// route.Context and may ask for navigation by returning core.NavigateCmd.
package pages
