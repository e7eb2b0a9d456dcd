// Package app composes explorer modules into one root handler.
package app

import (
	"fmt"
	"net/http"
	"strings"

	module "github.com/louisbranch/co2explorer/internal/services/explorer/module"
	"github.com/louisbranch/co2explorer/internal/services/explorer/platform/httpx"
)

// ComposeInput carries the modules and the middleware wrapped around them.
type ComposeInput struct {
	Modules    []module.Module
	Middleware []httpx.Middleware
}

// Compose builds a root HTTP handler from modules. Each module owns one
// prefix; duplicates are rejected.
func Compose(input ComposeInput) (http.Handler, error) {
	root := http.NewServeMux()
	seen := make(map[string]string)

	for _, feature := range input.Modules {
		if feature == nil {
			return nil, fmt.Errorf("module is nil")
		}
		if err := mountModule(root, feature, seen); err != nil {
			return nil, err
		}
	}
	return httpx.Chain(root, input.Middleware...), nil
}

func mountModule(root *http.ServeMux, feature module.Module, seen map[string]string) error {
	mount, err := feature.Mount()
	if err != nil {
		return fmt.Errorf("mount module %q: %w", feature.ID(), err)
	}
	prefix := strings.TrimSpace(mount.Prefix)
	if prefix == "" || !strings.HasPrefix(prefix, "/") {
		return fmt.Errorf("module %q has invalid prefix %q", feature.ID(), mount.Prefix)
	}
	if mount.Handler == nil {
		return fmt.Errorf("module %q has nil handler", feature.ID())
	}
	if previous, ok := seen[prefix]; ok {
		return fmt.Errorf("module %q duplicates prefix %q owned by module %q", feature.ID(), prefix, previous)
	}
	seen[prefix] = feature.ID()
	root.Handle(prefix, mount.Handler)
	return nil
}
