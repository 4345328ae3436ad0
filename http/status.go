// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package http

const (
	StatusOK        uint16 = 200
	StatusCreated   uint16 = 201
	StatusAccepted  uint16 = 202
	StatusNoContent uint16 = 204

	StatusMovedPermanently  uint16 = 301
	StatusFound             uint16 = 302
	StatusSeeOther          uint16 = 303
	StatusNotModified       uint16 = 304
	StatusTemporaryRedirect uint16 = 307
	StatusPermanentRedirect uint16 = 308

	StatusBadRequest       uint16 = 400
	StatusUnauthorized     uint16 = 401
	StatusForbidden        uint16 = 403
	StatusNotFound         uint16 = 404
	StatusMethodNotAllowed uint16 = 405
	StatusGone             uint16 = 410
	StatusTeapot           uint16 = 418

	StatusInternalServerError uint16 = 500
	StatusNotImplemented      uint16 = 501
	StatusServiceUnavailable  uint16 = 503
)

var (
	unknownStatusCode = "Unknown Status Code"

	statusMessages = []string{
		StatusOK:        "OK",
		StatusCreated:   "Created",
		StatusAccepted:  "Accepted",
		StatusNoContent: "No Content",

		StatusMovedPermanently:  "Moved Permanently",
		StatusFound:             "Found",
		StatusSeeOther:          "See Other",
		StatusNotModified:       "Not Modified",
		StatusTemporaryRedirect: "Temporary Redirect",
		StatusPermanentRedirect: "Permanent Redirect",

		StatusBadRequest:       "Bad Request",
		StatusUnauthorized:     "Unauthorized",
		StatusForbidden:        "Forbidden",
		StatusNotFound:         "Not Found",
		StatusMethodNotAllowed: "Method Not Allowed",
		StatusGone:             "Gone",
		StatusTeapot:           "I'm a teapot",

		StatusInternalServerError: "Internal Server Error",
		StatusNotImplemented:      "Not Implemented",
		StatusServiceUnavailable:  "Service Unavailable",
	}
)

func StatusText(status uint16) string {
	if int(status) >= len(statusMessages) || statusMessages[status] == "" {
		return unknownStatusCode
	}

	return statusMessages[status]
}
