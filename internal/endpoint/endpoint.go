// Copyright (c) The Epirest Authors
// SPDX-License-Identifier: MPL-2.0

// Package endpoint assembles Kinetic REST endpoint URLs.
//
// Every API call in this module targets the same fixed shape,
//
//	{server}/api/v1/{instance}/{Schema}/{Namespace}/{Service}/{Method}
//
// so this package offers just two pure functions: one that joins the
// path with each segment escaped independently, and one that encodes a
// query string while preserving the order the parameters were supplied
// in. Keeping both free of any transport concerns makes the URL
// construction testable on its own.
package endpoint

import (
	"net/url"
	"strings"
)

// APIBasePath is the fixed path prefix between the server address and
// the instance name.
const APIBasePath = "api/v1"

// URL joins the server base address, the fixed API base path, the
// instance name, and the given path segments into a full endpoint URL.
//
// The instance and every segment are path-escaped independently, so
// names containing characters such as hyphens, spaces, or slashes are
// routed as single segments rather than corrupting the path.
func URL(server string, instance string, segments []string) string {
	var b strings.Builder
	b.WriteString(strings.TrimSuffix(server, "/"))
	b.WriteString("/")
	b.WriteString(APIBasePath)
	b.WriteString("/")
	b.WriteString(url.PathEscape(instance))
	for _, segment := range segments {
		b.WriteString("/")
		b.WriteString(url.PathEscape(segment))
	}
	return b.String()
}

// Param is a single query parameter. Parameters are kept as an ordered
// slice rather than a url.Values map so that the encoded query string
// preserves the order the caller supplied them in.
type Param struct {
	Key   string
	Value string
}

// EncodeQuery encodes the given parameters as a URL query string,
// without a leading "?", preserving their order. An empty parameter
// list encodes to an empty string.
func EncodeQuery(params []Param) string {
	if len(params) == 0 {
		return ""
	}
	var b strings.Builder
	for i, p := range params {
		if i > 0 {
			b.WriteString("&")
		}
		b.WriteString(url.QueryEscape(p.Key))
		b.WriteString("=")
		b.WriteString(url.QueryEscape(p.Value))
	}
	return b.String()
}
