package modules

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

// Mountable is implemented by feature modules that expose their own sub-router.
type Mountable interface {
	Handle() http.Handler
}

// Route is a route table entry: every request under Path is served by Handler.
type Route struct {
	Path    string
	Handler http.Handler
}

// FromMountable builds a Route from a feature module.
func FromMountable(path string, m Mountable) Route {
	return Route{Path: path, Handler: m.Handle()}
}

// Routes returns the application route table. It is empty by default: add
// feature modules here as they are written.
//
// Example:
//
//	func Routes() []Route {
//		return []Route{
//			{Path: "/users", Handler: users.Router(usersSvc)},
//		}
//	}
func Routes() []Route {
	return []Route{}
}

// Mount registers every route under r in slice order. Entries with a nil
// handler are skipped. Paths are normalised to a single leading slash without
// a trailing one; an empty path or "/" mounts the handler at the root of r,
// where it serves every path not claimed by a more specific route.
func Mount(r chi.Router, routes ...Route) {
	for _, route := range routes {
		if route.Handler == nil {
			continue
		}
		r.Mount(normalisePath(route.Path), route.Handler)
	}
}

func normalisePath(p string) string {
	return "/" + strings.Trim(strings.TrimSpace(p), "/")
}
