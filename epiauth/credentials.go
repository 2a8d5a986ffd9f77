// Copyright (c) The Epirest Authors
// SPDX-License-Identifier: MPL-2.0

// Package epiauth contains types and functions to represent the
// credentials used to authenticate API calls against a Kinetic server.
//
// The kinetic package consumes these types when preparing requests;
// anything that can load credentials (a CLI prompt, a credentials file,
// a secret manager) can provide them by implementing
// [CredentialsSource]. Loading itself is out of scope here.
package epiauth

import (
	"context"
	"net/http"

	"github.com/zclconf/go-cty/cty"

	"github.com/epirest/epirest"
)

// Credentials is a list of [CredentialsSource] objects that are tried in
// turn until one returns credentials for a server, or one returns an
// error.
//
// A Credentials is itself a CredentialsSource, wrapping its members.
type Credentials []CredentialsSource

// NoCredentials is an empty CredentialsSource that always returns nil
// when asked for credentials.
var NoCredentials CredentialsSource = Credentials{}

// A CredentialsSource is an object that may be able to provide
// credentials for a given server.
type CredentialsSource interface {
	// ForServer returns a non-nil HostCredentials if the source has
	// credentials available for the server, and a nil HostCredentials
	// if it does not.
	//
	// If an error is returned, progress through a list of
	// CredentialsSources is halted and the error is returned to the
	// caller.
	ForServer(ctx context.Context, server epirest.ServerAddr) (HostCredentials, error)
}

// HostCredentials represents a single set of credentials for a
// particular server.
type HostCredentials interface {
	// PrepareRequest modifies the given request in-place to apply the
	// receiving credentials, normally by setting one or more headers.
	//
	// Implementers must not abuse this by modifying the request in ways
	// that are unrelated to authentication.
	PrepareRequest(req *http.Request)
}

// NewHostCredentials represents credentials that could be saved by an
// external credentials store.
type NewHostCredentials interface {
	// ToStore returns a cty.Value, always of an object type,
	// representing data that can be serialized to represent this object
	// in persistent storage.
	//
	// The resulting value uses only cty values that can be accepted by
	// the cty JSON encoder, though the caller may elect to instead
	// store it in some other format that has a JSON-compatible type
	// system.
	ToStore() cty.Value
}

// ForServer iterates over the contained CredentialsSource objects and
// tries to obtain credentials for the given server from each one in
// turn.
//
// If any source returns either a non-nil HostCredentials or a non-nil
// error then this result is returned. Otherwise, the result is nil, nil.
func (c Credentials) ForServer(ctx context.Context, server epirest.ServerAddr) (HostCredentials, error) {
	for _, source := range c {
		creds, err := source.ForServer(ctx, server)
		if creds != nil || err != nil {
			return creds, err
		}
	}
	return nil, nil
}
