// Package module defines the feature contract used by explorer composition.
package module

import "net/http"

// Mount describes a module route mount.
type Mount struct {
	Prefix  string
	Handler http.Handler
}

// Module declares the minimum contract required by explorer composition.
type Module interface {
	ID() string
	Mount() (Mount, error)
}
