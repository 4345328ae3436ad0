package filesystem

import (
	"log/slog"
	"path/filepath"
)

const (
	// FallbackPage replaces any page that cannot be read.
	FallbackPage = "404"

	IndexPagePath    = "default/index.html"
	NotFoundPagePath = "404/index.html"
)

// Pages reads the bodies the server starts with from a directory laid out as
// <dir>/default/index.html and <dir>/404/index.html.
type Pages struct {
	filesystem Filesystem
	dir        string
	logger     *slog.Logger
}

func NewPages(filesystem Filesystem, dir string, logger *slog.Logger) Pages {
	if logger == nil {
		logger = slog.Default()
	}

	return Pages{
		filesystem: filesystem,
		dir:        dir,
		logger:     logger,
	}
}

func (pages Pages) Index() string {
	return pages.read(IndexPagePath)
}

func (pages Pages) NotFound() string {
	return pages.read(NotFoundPagePath)
}

func (pages Pages) read(name string) string {
	path := filepath.Join(pages.dir, name)

	content, err := pages.filesystem.ReadFile(path)
	if err != nil {
		pages.logger.Error("failed to read page", "path", path, "error", err)
		return FallbackPage
	}

	return string(content)
}
