package http

import "errors"

const (
	DefaultReadBufferSize = 1024

	protocolHttp11 = "HTTP/1.1"
	crlf           = "\r\n"
	headerBodySep  = "\r\n\r\n"

	headerContentType = "Content-Type"
	contentTypeHtml   = "text/html"
)

var (
	ErrInvalidEncoding  = errors.New("http: request is not valid UTF-8")
	ErrMalformedRequest = errors.New("http: malformed request")
	ErrBind             = errors.New("http: failed to bind address")
	ErrRead             = errors.New("http: failed to read from connection")
	ErrWrite            = errors.New("http: failed to write to connection")
)
