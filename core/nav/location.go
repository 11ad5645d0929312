// Package nav owns the current location and mounts the route whose pattern
// matches it.
//
// Allowed here:
// - location stores (memory history and the LocationStore contract)
// - the navigation container: route registration, re-matching, no-match policy
//
// Not allowed here:
// - persistence (internal/history) or terminal layout (core)
package nav

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/jask/pageshell/core/route"
)

var ErrInvalidLocation = errors.New("nav: invalid location")

// Location is an absolute, canonical path plus an optional query.
type Location struct {
	Path     string
	RawQuery string
}

// Root is the location every history starts from unless told otherwise.
var Root = Location{Path: "/"}

// ParseLocation canonicalises raw into a Location. Fragments are dropped.
func ParseLocation(raw string) (Location, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Location{}, fmt.Errorf("%w: empty", ErrInvalidLocation)
	}
	if !strings.HasPrefix(raw, "/") {
		return Location{}, fmt.Errorf("%w: %q is not absolute", ErrInvalidLocation, raw)
	}
	query := route.ParseQuery(raw)
	return Location{Path: route.Canonical(raw), RawQuery: query.Encode()}, nil
}

func (l Location) String() string {
	if l.RawQuery == "" {
		return l.Path
	}
	return l.Path + "?" + l.RawQuery
}

func (l Location) Query() url.Values {
	v, err := url.ParseQuery(l.RawQuery)
	if err != nil {
		return url.Values{}
	}
	return v
}


// LocationStore is the history capability the container depends on. A
// terminal session, a test or a persisted session store can each provide one.
type LocationStore interface {
	Current() Location
	Subscribe(fn func(Location)) (unsubscribe func())
	Navigate(path string) error
	Replace(path string) error
	Back() bool
	Forward() bool
}
