// Copyright (c) The Epirest Authors
// SPDX-License-Identifier: MPL-2.0

package epiauth

import (
	"context"

	"github.com/epirest/epirest"
)

// StaticCredentialsSource returns a [CredentialsSource] that looks up
// any requested credentials directly in the provided map.
//
// The caller should not modify the given map after passing it to this
// function.
func StaticCredentialsSource(creds map[epirest.ServerAddr]HostCredentials) CredentialsSource {
	return staticCredentialsSource(creds)
}

type staticCredentialsSource map[epirest.ServerAddr]HostCredentials

// ForServer implements [CredentialsSource].
func (s staticCredentialsSource) ForServer(_ context.Context, server epirest.ServerAddr) (HostCredentials, error) {
	return s[server], nil
}
