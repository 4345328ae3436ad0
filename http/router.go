package http

import (
	"cmp"
	"net/http"
	"slices"
	"sync"
)

type RouteTable interface {
	Resolve(method, path string) []byte
	Lookup(method, path string) ([]byte, bool)
	AddRoute(method, path string, response Response)
	RemoveRoute(path string)
	RemoveMethod(method, path string)
	Routes() []Route
}

// Router maps (path, method) to serialized responses. Every method takes the lock for
// one map operation only; serialization and I/O happen outside of it.
// Returned byte slices are shared and must not be modified.
type Router struct {
	mu       sync.RWMutex
	paths    map[string]map[string][]byte
	notFound []byte
}

var _ RouteTable = (*Router)(nil)

func NewRouter(notFoundBody string) *Router {
	notFound := NewResponse(notFoundBody)
	notFound.SetStatus(StatusNotFound)

	return &Router{
		paths:    make(map[string]map[string][]byte),
		notFound: notFound.Bytes(),
	}
}

// NewDefaultRouter seeds a router with the index page on GET / and the not found page
// as fallback.
func NewDefaultRouter(pages PageSource) *Router {
	router := NewRouter(pages.NotFound())
	router.AddRoute(http.MethodGet, "/", NewResponse(pages.Index()))
	return router
}

func (router *Router) NotFound() []byte {
	return router.notFound
}

func (router *Router) Resolve(method, path string) []byte {
	res, _ := router.Lookup(method, path)
	return res
}

// Lookup is Resolve that also reports whether a registered route matched.
func (router *Router) Lookup(method, path string) ([]byte, bool) {
	router.mu.RLock()
	res, found := router.paths[path][method]
	router.mu.RUnlock()

	if !found {
		return router.notFound, false
	}

	return res, true
}

func (router *Router) AddRoute(method, path string, response Response) {
	raw := response.Bytes()

	router.mu.Lock()
	defer router.mu.Unlock()

	methods, found := router.paths[path]
	if !found {
		methods = make(map[string][]byte)
		router.paths[path] = methods
	}

	methods[method] = raw
}

func (router *Router) RemoveRoute(path string) {
	router.mu.Lock()
	defer router.mu.Unlock()

	delete(router.paths, path)
}

func (router *Router) RemoveMethod(method, path string) {
	router.mu.Lock()
	defer router.mu.Unlock()

	methods, found := router.paths[path]
	if !found {
		return
	}

	delete(methods, method)
	if len(methods) == 0 {
		delete(router.paths, path)
	}
}

func (router *Router) Routes() []Route {
	router.mu.RLock()
	routes := make([]Route, 0, len(router.paths))
	for path, methods := range router.paths {
		for method := range methods {
			routes = append(routes, Route{Method: method, Path: path})
		}
	}
	router.mu.RUnlock()

	slices.SortFunc(routes, func(a, b Route) int {
		if c := cmp.Compare(a.Path, b.Path); c != 0 {
			return c
		}
		return cmp.Compare(a.Method, b.Method)
	})

	return routes
}
