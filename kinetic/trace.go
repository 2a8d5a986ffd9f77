// Copyright (c) The Epirest Authors
// SPDX-License-Identifier: MPL-2.0

package kinetic

import (
	"context"
)

// CallTrace allows a caller of [PathNode.Invoke] to be notified about
// the lifecycle of the underlying HTTP request, in case they want to
// generate log messages, telemetry traces, or similar.
//
// Use [ContextWithCallTrace] to derive a [context.Context] containing
// an instance of this type, and use that context when invoking a path.
//
// All of the function-typed fields may either be left as nil or set to
// a function with the specified signature. If nil then the call for the
// corresponding event will be skipped.
//
// RequestStart returns its own [context.Context] that should be either
// exactly the context given or a child of that context. This can be
// used to track per-request values such as distributed tracing spans.
// Tracing is purely observational: nothing here can alter which request
// is sent.
type CallTrace struct {
	// RequestStart is called when a request is about to be issued, with
	// the verb and the fully built endpoint URL.
	//
	// This should return a [context.Context] to be used for the HTTP
	// request, and it will then be passed as the context to either
	// RequestSuccess or RequestFailure once the request is complete to
	// allow terminating distributed tracing spans, etc.
	RequestStart func(ctx context.Context, method, url string) context.Context

	// RequestSuccess is called once the transport has returned a
	// response, whatever its status code.
	//
	// The given context has the same values as the one returned by the
	// earlier call to RequestStart.
	RequestSuccess func(ctx context.Context, method, url string, statusCode int)

	// RequestFailure is called when the transport fails without
	// producing a response.
	//
	// The given context has the same values as the one returned by the
	// earlier call to RequestStart.
	RequestFailure func(ctx context.Context, method, url string, err error)
}

func ContextWithCallTrace(parent context.Context, trace *CallTrace) context.Context {
	return context.WithValue(parent, callTraceKey, trace)
}

func (t *CallTrace) requestStart(ctx context.Context, method, url string) context.Context {
	if t.RequestStart == nil {
		return ctx
	}
	return t.RequestStart(ctx, method, url)
}

func (t *CallTrace) requestSuccess(ctx context.Context, method, url string, statusCode int) {
	if t.RequestSuccess == nil {
		return
	}
	t.RequestSuccess(ctx, method, url, statusCode)
}

func (t *CallTrace) requestFailure(ctx context.Context, method, url string, err error) {
	if t.RequestFailure == nil {
		return
	}
	t.RequestFailure(ctx, method, url, err)
}

func callTraceFromContext(ctx context.Context) *CallTrace {
	trace, ok := ctx.Value(callTraceKey).(*CallTrace)
	if !ok {
		trace = noTrace
	}
	return trace
}

type callTraceKeyType string

const callTraceKey = callTraceKeyType("")

var noTrace = &CallTrace{}
