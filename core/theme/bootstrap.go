package theme

import (
	"sync"

	"github.com/charmbracelet/lipgloss"
)

var (
	mu      sync.Mutex
	applied bool
	current = plainStyles()
)

// Bootstrap applies t process-wide. Only the first call has any effect; it
// reports whether this call was the one that applied the theme.
func Bootstrap(t Theme) bool {
	mu.Lock()
	defer mu.Unlock()
	if applied {
		return false
	}
	lipgloss.SetHasDarkBackground(t.Dark)
	current = NewStyles(t)
	applied = true
	return true
}

// Applied reports whether a theme has been bootstrapped in this process.
func Applied() bool {
	mu.Lock()
	defer mu.Unlock()
	return applied
}

// Current returns the bootstrapped styles, or unstyled defaults before
// Bootstrap has run.
func Current() Styles {
	mu.Lock()
	defer mu.Unlock()
	return current
}
