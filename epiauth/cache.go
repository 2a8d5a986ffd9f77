// Copyright (c) The Epirest Authors
// SPDX-License-Identifier: MPL-2.0

package epiauth

import (
	"context"
	"sync"

	"github.com/epirest/epirest"
)

// CachingCredentialsSource creates a new credentials source that wraps
// another and caches its results in memory, on a per-server basis.
//
// No means is provided for expiration of cached credentials, so a
// caching credentials source should have a limited lifetime (one batch
// of related API calls, for example) to ensure that rotated credentials
// don't outlive their cache entries.
func CachingCredentialsSource(source CredentialsSource) CredentialsSource {
	return &cachingCredentialsSource{
		source: source,
		cache:  map[epirest.ServerAddr]HostCredentials{},
	}
}

type cachingCredentialsSource struct {
	source CredentialsSource
	cache  map[epirest.ServerAddr]HostCredentials
	mu     sync.Mutex
}

// ForServer passes the given server on to the wrapped credentials
// source and caches the result to return for future requests with the
// same server.
//
// Both credentials and non-credentials (nil) responses are cached.
//
// No cache entry is created if the wrapped source returns an error, to
// allow the caller to retry the failing operation.
func (s *cachingCredentialsSource) ForServer(ctx context.Context, server epirest.ServerAddr) (HostCredentials, error) {
	s.mu.Lock()
	if cached, ok := s.cache[server]; ok {
		s.mu.Unlock()
		return cached, nil
	}
	s.mu.Unlock()

	result, err := s.source.ForServer(ctx, server)
	if err != nil {
		return result, err
	}

	s.mu.Lock()
	s.cache[server] = result
	s.mu.Unlock()
	return result, nil
}
