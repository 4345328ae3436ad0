package http

type Route struct {
	Method string `json:"method"`
	Path   string `json:"path"`
}

// PageSource supplies the bodies the default router is seeded with.
type PageSource interface {
	Index() string
	NotFound() string
}
