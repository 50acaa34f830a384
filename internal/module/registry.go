// internal/module/registry.go
//
// Exact-path dispatch table.
//
// Handlers registered here run before the chi router and own the whole
// response: the root handler in cmd/web looks up r.URL.Path and, on a hit,
// calls the handler and returns.  Components register during Activate and
// remove themselves during Deactivate, so a deactivated endpoint falls
// through to normal routing (and usually a 404) on the very next request.
//
// Paths are matched byte-for-byte.  No wildcards, no trailing-slash
// folding, no query handling.
package module

import (
	"fmt"
	"net/http"
	"sort"
	"strings"
	"sync"
)

// Handler serves one exact path.
type Handler = http.HandlerFunc

var (
	mu       sync.RWMutex
	registry = map[string]Handler{}
)

// Register binds path to h.  path must start with "/" and must not already
// be taken.
func Register(path string, h Handler) error {
	if !strings.HasPrefix(path, "/") {
		return fmt.Errorf("module: path %q must start with /", path)
	}
	if h == nil {
		return fmt.Errorf("module: nil handler for %q", path)
	}

	mu.Lock()
	defer mu.Unlock()
	if _, taken := registry[path]; taken {
		return fmt.Errorf("module: path %q already registered", path)
	}
	registry[path] = h
	return nil
}

// Unregister drops path.  Unknown paths are ignored.
func Unregister(path string) {
	mu.Lock()
	delete(registry, path)
	mu.Unlock()
}

// Lookup returns the handler for an exact path or nil.
func Lookup(path string) Handler {
	mu.RLock()
	defer mu.RUnlock()
	return registry[path]
}

// Paths lists the registered paths in sorted order.
func Paths() []string {
	mu.RLock()
	out := make([]string, 0, len(registry))
	for p := range registry {
		out = append(out, p)
	}
	mu.RUnlock()
	sort.Strings(out)
	return out
}

// Dispatch wraps next so registered paths short-circuit it.
func Dispatch(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h := Lookup(r.URL.Path); h != nil {
			h(w, r)
			return
		}
		next.ServeHTTP(w, r)
	})
}
