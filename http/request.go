package http

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

type Request struct {
	Method  string
	Path    string
	Version string
	Headers map[string]string

	// Body is whatever followed the first blank line. Content-Length is not consulted.
	Body string
}

// ParseRequest turns the raw bytes read from a connection into a Request.
// Method and version are taken verbatim, header names keep the case they were sent with
// and a repeated header overwrites the earlier one.
func ParseRequest(buf []byte) (Request, error) {
	var req Request

	if !utf8.Valid(buf) {
		return req, ErrInvalidEncoding
	}

	head, body, found := strings.Cut(string(buf), headerBodySep)
	if !found {
		return req, fmt.Errorf("%w: missing header/body separator", ErrMalformedRequest)
	}

	lines := strings.Split(head, "\n")
	// A head ending in a bare \n has no trailing header line.
	if n := len(lines); n > 1 && lines[n-1] == "" {
		lines = lines[:n-1]
	}

	parts := strings.Fields(strings.TrimSuffix(lines[0], "\r"))
	if len(parts) < 3 {
		return req, fmt.Errorf("%w: request line %q", ErrMalformedRequest, lines[0])
	}

	req.Method = parts[0]
	req.Path = parts[1]
	req.Version = parts[2]
	req.Headers = make(map[string]string, len(lines)-1)
	req.Body = body

	for _, line := range lines[1:] {
		line = strings.TrimSuffix(line, "\r")

		name, value, found := strings.Cut(line, ":")
		if !found {
			return Request{}, fmt.Errorf("%w: header line %q", ErrMalformedRequest, line)
		}

		req.Headers[strings.TrimSpace(name)] = strings.TrimSpace(value)
	}

	return req, nil
}

func (req Request) Header(name string) (string, bool) {
	value, found := req.Headers[name]
	return value, found
}
