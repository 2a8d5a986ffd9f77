// Copyright (c) The Epirest Authors
// SPDX-License-Identifier: MPL-2.0

package kinetic

import (
	"net/http"
	"time"

	"github.com/epirest/epirest/license"
)

type ConnectionOption interface {
	applyOption(conn *Connection)
}

type connectionOption func(conn *Connection)

func (o connectionOption) applyOption(conn *Connection) {
	o(conn)
}

// WithHTTPClient specifies the HTTP client to use for API calls. If not
// given, a pooled client from cleanhttp is created automatically.
func WithHTTPClient(client *http.Client) ConnectionOption {
	return connectionOption(func(conn *Connection) {
		conn.httpClient = client
	})
}

// WithTimeout sets a per-call timeout on the automatically created HTTP
// client. It has no effect when a client is provided via
// [WithHTTPClient]; configure that client's timeout directly instead.
func WithTimeout(d time.Duration) ConnectionOption {
	return connectionOption(func(conn *Connection) {
		conn.timeout = d
	})
}

// WithClaimedLicense makes every call on the connection claim the given
// license type via the License header. Construction fails with an
// [InvalidLicenseError] if the type is not one the server recognizes.
func WithClaimedLicense(t license.Type) ConnectionOption {
	return connectionOption(func(conn *Connection) {
		conn.claimLicense = true
		conn.licenseType = t
	})
}

// WithServerRelease declares the Kinetic release of the target server,
// e.g. "2023.2". Construction fails if the release string does not
// parse or predates [epirest.MinServerRelease], so a known-incompatible
// target is caught before any call is attempted.
func WithServerRelease(release string) ConnectionOption {
	return connectionOption(func(conn *Connection) {
		conn.serverRelease = release
	})
}
