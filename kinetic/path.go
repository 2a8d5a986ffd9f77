// Copyright (c) The Epirest Authors
// SPDX-License-Identifier: MPL-2.0

package kinetic

import (
	"context"
	"fmt"
	"net/http"
	"strings"
)

// pathDepth is the number of segments in every endpoint path:
// Schema, Namespace, Service, Method.
const pathDepth = 4

// PathNode is a partially or fully resolved endpoint path on a
// [Connection].
//
// PathNode is an immutable value: resolving a further segment with
// [PathNode.Path] returns a new node one segment deeper and leaves the
// receiver untouched, so intermediate nodes can be kept and branched
// from freely. A node with all four segments resolved accepts only
// [PathNode.Invoke]; a shorter node accepts only further resolution.
//
// Chains start at [Connection.Path]; the zero PathNode belongs to no
// connection and rejects both operations.
type PathNode struct {
	conn     *Connection
	segments []string
}

// EmptySegmentError is the resolution error returned when a segment
// name is empty.
type EmptySegmentError struct {
	Path []string
}

// Error returns a customized error message.
func (e *EmptySegmentError) Error() string {
	if len(e.Path) == 0 {
		return "path segment name must not be empty"
	}
	return fmt.Sprintf("path segment name after %s must not be empty", strings.Join(e.Path, "."))
}

// PathDepthError is the resolution error returned when resolving a
// segment on a node that already has all four segments.
type PathDepthError struct {
	Path []string
	Next string
}

// Error returns a customized error message.
func (e *PathDepthError) Error() string {
	return fmt.Sprintf("cannot resolve %q: path %s already names a method", e.Next, strings.Join(e.Path, "."))
}

// IncompletePathError is the invocation error returned when invoking a
// node before all four segments are resolved.
type IncompletePathError struct {
	Path []string
}

// Error returns a customized error message.
func (e *IncompletePathError) Error() string {
	return fmt.Sprintf("cannot invoke %s: %d of %d path segments resolved", strings.Join(e.Path, "."), len(e.Path), pathDepth)
}

// CallArgumentsError is the invocation error returned when the call
// arguments don't determine a single verb and payload placement, such
// as query parameters and a dataset payload supplied together.
type CallArgumentsError struct {
	Reason string
}

// Error returns a customized error message.
func (e *CallArgumentsError) Error() string {
	return "invalid call arguments: " + e.Reason
}

// Path resolves the next segment of the endpoint path, returning a new
// node one segment deeper.
//
// Any non-empty name is legal, including names that contain hyphens,
// spaces, or other characters special to URLs; each segment is escaped
// independently when the endpoint URL is built. Resolving a fifth
// segment fails with a [PathDepthError].
func (n PathNode) Path(name string) (PathNode, error) {
	if name == "" {
		return PathNode{}, &EmptySegmentError{Path: n.Segments()}
	}
	if len(n.segments) >= pathDepth {
		return PathNode{}, &PathDepthError{Path: n.Segments(), Next: name}
	}

	segments := make([]string, len(n.segments), len(n.segments)+1)
	copy(segments, n.segments)
	segments = append(segments, name)

	return PathNode{conn: n.conn, segments: segments}, nil
}

// Segments returns a copy of the resolved segment names, in order.
func (n PathNode) Segments() []string {
	if n.segments == nil {
		return nil
	}
	ret := make([]string, len(n.segments))
	copy(ret, n.segments)
	return ret
}

// Complete reports whether all four segments are resolved, i.e. whether
// the node can be invoked.
func (n PathNode) Complete() bool {
	return len(n.segments) == pathDepth
}

// String returns the resolved segments joined with dots, for
// diagnostics.
func (n PathNode) String() string {
	return strings.Join(n.segments, ".")
}

// Invoke performs the HTTP call for a fully resolved path and returns
// the transport's response unmodified.
//
// The call arguments determine the verb: with [WithParam] options only
// (or none at all) the call is a GET carrying the parameters as a query
// string in the order supplied; with a [WithDataset] option the call is
// a POST carrying the payload as a JSON body. Supplying both, or more
// than one dataset, fails with a [CallArgumentsError] before any
// request is made. Invoking a node with fewer than four segments fails
// with an [IncompletePathError], likewise without any request.
//
// Invoke blocks until the transport completes; cancel or bound it
// through ctx. Transport errors are returned as-is, and responses are
// returned whatever their status code: interpreting non-2xx statuses is
// the caller's business.
func (n PathNode) Invoke(ctx context.Context, opts ...CallOption) (*http.Response, error) {
	if len(n.segments) < pathDepth || n.conn == nil {
		return nil, &IncompletePathError{Path: n.Segments()}
	}

	var req callRequest
	for _, opt := range opts {
		opt.applyCall(&req)
	}

	return n.conn.call(ctx, n.segments, req)
}
