// Copyright (c) The Epirest Authors
// SPDX-License-Identifier: MPL-2.0

// Package epirest contains the base types shared by the Epicor Kinetic
// REST client packages in this module.
//
// The interesting parts live in the sub-packages: package kinetic builds
// and dispatches API calls, package epiauth represents credentials, and
// package license enumerates the claimable license types. This root
// package deals only with identifying the server itself: parsing and
// normalizing the base server address, and vetting the server release
// a caller intends to talk to.
package epirest

import (
	"fmt"
	"net"
	"net/url"
	"strings"

	"golang.org/x/net/idna"
)

// ServerAddr is a normalized base address for a Kinetic application
// server, in the form "scheme://host[:port]" with no path, query,
// fragment or userinfo.
//
// Always obtain a ServerAddr through [ParseServerAddr] so that two
// spellings of the same server compare equal: the hostname is
// lowercased and internationalized labels are converted to their
// punycode form. The comparable representation makes ServerAddr
// suitable as a map key, which package epiauth relies on.
type ServerAddr string

// InvalidServerAddrError is the error type returned by [ParseServerAddr]
// when the given address cannot be used as a server base address.
type InvalidServerAddrError struct {
	Addr   string
	Reason string
}

// Error returns a customized error message.
func (e *InvalidServerAddrError) Error() string {
	return fmt.Sprintf("invalid server address %q: %s", e.Addr, e.Reason)
}

// ParseServerAddr validates and normalizes the given base server URL.
//
// The address must use the https or http scheme and must identify only
// the server: any path, query string, fragment, or embedded
// username/password is rejected. A single trailing slash is tolerated.
func ParseServerAddr(raw string) (ServerAddr, error) {
	if raw == "" {
		return "", &InvalidServerAddrError{Addr: raw, Reason: "address is empty"}
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", &InvalidServerAddrError{Addr: raw, Reason: err.Error()}
	}
	if u.Scheme != "https" && u.Scheme != "http" {
		return "", &InvalidServerAddrError{Addr: raw, Reason: fmt.Sprintf("unsupported scheme %q", u.Scheme)}
	}
	if u.User != nil {
		return "", &InvalidServerAddrError{Addr: raw, Reason: "embedded username/password information is not permitted"}
	}
	if u.Host == "" {
		return "", &InvalidServerAddrError{Addr: raw, Reason: "address has no host"}
	}
	if (u.Path != "" && u.Path != "/") || u.RawQuery != "" || u.Fragment != "" || u.Opaque != "" {
		return "", &InvalidServerAddrError{Addr: raw, Reason: "address must not include a path, query, or fragment"}
	}

	host, err := normalizeHost(u.Hostname())
	if err != nil {
		return "", &InvalidServerAddrError{Addr: raw, Reason: err.Error()}
	}
	if port := u.Port(); port != "" {
		host = net.JoinHostPort(host, port)
	}

	return ServerAddr(u.Scheme + "://" + host), nil
}

// normalizeHost lowercases the hostname and converts any
// internationalized labels to punycode. IP address literals are passed
// through unchanged apart from lowercasing.
func normalizeHost(host string) (string, error) {
	host = strings.ToLower(host)
	if net.ParseIP(host) != nil {
		return host, nil
	}
	ascii, err := idna.Lookup.ToASCII(host)
	if err != nil {
		return "", fmt.Errorf("invalid hostname: %w", err)
	}
	return ascii, nil
}

// String returns the normalized address.
func (a ServerAddr) String() string {
	return string(a)
}

// Host returns the host[:port] portion of the address.
func (a ServerAddr) Host() string {
	s := string(a)
	if i := strings.Index(s, "://"); i >= 0 {
		return s[i+len("://"):]
	}
	return s
}
