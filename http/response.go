package http

import (
	"strconv"
	"strings"
)

type Response struct {
	StatusLine string
	Headers    map[string]string
	Body       string
}

// NewResponse returns a 200 text/html response carrying body.
func NewResponse(body string) Response {
	return Response{
		StatusLine: protocolHttp11 + " 200 OK",
		Headers: map[string]string{
			headerContentType: contentTypeHtml,
		},
		Body: body,
	}
}

func (res *Response) SetStatusLine(line string) {
	res.StatusLine = line
}

func (res *Response) SetStatus(status uint16) {
	res.StatusLine = protocolHttp11 + " " + strconv.Itoa(int(status)) + " " + StatusText(status)
}

func (res *Response) AddHeader(key, value string) {
	if res.Headers == nil {
		res.Headers = make(map[string]string)
	}

	res.Headers[key] = value
}

// Bytes serializes the response. Header order follows map iteration and is not stable.
func (res Response) Bytes() []byte {
	var sb strings.Builder

	size := len(res.StatusLine) + len(crlf) + len(headerBodySep) + len(res.Body)
	for key, value := range res.Headers {
		size += len(key) + len(value) + 4
	}
	sb.Grow(size)

	sb.WriteString(res.StatusLine)
	sb.WriteString(crlf)

	first := true
	for key, value := range res.Headers {
		if !first {
			sb.WriteString(crlf)
		}
		first = false

		sb.WriteString(key)
		sb.WriteString(": ")
		sb.WriteString(value)
	}

	sb.WriteString(headerBodySep)
	sb.WriteString(res.Body)

	return []byte(sb.String())
}
