package http

import (
	"bytes"
	"testing"

	"github.com/freekieb7/hddp/test"
)

func TestResponseBytes_Default(t *testing.T) {
	res := NewResponse("hello, world!")

	got := string(res.Bytes())
	want := "HTTP/1.1 200 OK\r\nContent-Type: text/html\r\n\r\nhello, world!"

	test.AssertEqual(t, want, got)
}

func TestResponseBytes_MultipleHeaders(t *testing.T) {
	res := NewResponse("not found")
	res.SetStatusLine("HTTP/1.1 404 Not Found")
	res.AddHeader("x-test", "foo")
	res.AddHeader("x-other", "bar")
	res.AddHeader("Content-Type", "text/plain")

	got := res.Bytes()

	if !bytes.HasPrefix(got, []byte("HTTP/1.1 404 Not Found\r\n")) {
		t.Errorf("missing status line: got %q", got)
	}
	for _, header := range []string{"x-test: foo", "x-other: bar", "Content-Type: text/plain"} {
		if !bytes.Contains(got, []byte(header)) {
			t.Errorf("missing header %q: got %q", header, got)
		}
	}
	if bytes.Contains(got, []byte("text/html")) {
		t.Errorf("content-type was not overwritten: got %q", got)
	}
	if !bytes.HasSuffix(got, []byte("\r\n\r\nnot found")) {
		t.Errorf("missing or incorrect body: got %q", got)
	}

	head, _, _ := bytes.Cut(got, []byte("\r\n\r\n"))
	test.AssertEqual(t, 4, len(bytes.Split(head, []byte("\r\n"))))
}

func TestResponseBytes_EmptyBody(t *testing.T) {
	res := NewResponse("")

	got := res.Bytes()
	if !bytes.HasSuffix(got, []byte("\r\n\r\n")) {
		t.Errorf("expected empty body, got %q", got)
	}
}

func TestResponseBytes_NoHeaders(t *testing.T) {
	res := Response{StatusLine: "HTTP/1.1 204 No Content"}

	test.AssertEqual(t, "HTTP/1.1 204 No Content\r\n\r\n\r\n", string(res.Bytes()))
}

func TestResponseAddHeader_NilMap(t *testing.T) {
	var res Response
	res.AddHeader("X-Test", "1")

	test.AssertEqual(t, "1", res.Headers["X-Test"])
}

func TestResponseSetStatus(t *testing.T) {
	testCases := []struct {
		status uint16
		want   string
	}{
		{StatusOK, "HTTP/1.1 200 OK"},
		{StatusNotFound, "HTTP/1.1 404 Not Found"},
		{StatusTeapot, "HTTP/1.1 418 I'm a teapot"},
		{StatusInternalServerError, "HTTP/1.1 500 Internal Server Error"},
		{299, "HTTP/1.1 299 Unknown Status Code"},
		{999, "HTTP/1.1 999 Unknown Status Code"},
	}

	for _, tc := range testCases {
		res := NewResponse("")
		res.SetStatus(tc.status)
		test.AssertEqual(t, tc.want, res.StatusLine)
	}
}

func BenchmarkResponseBytes(b *testing.B) {
	res := NewResponse("benchmarking response write")
	res.AddHeader("x-bench", "1")

	for b.Loop() {
		_ = res.Bytes()
	}
}
