// Copyright (c) The Epirest Authors
// SPDX-License-Identifier: MPL-2.0

package kinetic

import (
	"fmt"

	"github.com/epirest/epirest/internal/endpoint"
)

// callRequest accumulates the arguments of a single invocation before
// verb selection. Validation happens in buildCall, once all options
// have been applied.
type callRequest struct {
	params   []endpoint.Param
	dataset  any
	datasets int
	wrapKey  string
}

type CallOption interface {
	applyCall(req *callRequest)
}

type callOption func(req *callRequest)

func (o callOption) applyCall(req *callRequest) {
	o(req)
}

// WithParam adds one query parameter to the call. Parameters keep the
// order they are supplied in. String values are used verbatim; any
// other value is stringified with fmt.
//
// A call carrying only parameters is dispatched as a GET.
func WithParam(key string, value any) CallOption {
	return callOption(func(req *callRequest) {
		req.params = append(req.params, endpoint.Param{Key: key, Value: stringifyParam(value)})
	})
}

// WithDataset supplies a dataset payload for the call, which is then
// dispatched as a POST with the JSON encoding of v as its body.
//
// At most one dataset may be supplied, and not together with
// [WithParam]; either misuse fails the invocation with a
// [CallArgumentsError].
func WithDataset(v any) CallOption {
	return callOption(func(req *callRequest) {
		req.dataset = v
		req.datasets++
	})
}

// WithDatasetWrapped nests the dataset payload under the given key, so
// that WithDataset(row) with WithDatasetWrapped("ds") sends
// {"ds": <row>} rather than the row bare.
//
// Whether a service expects its payload bare or wrapped (conventionally
// under "ds") varies by endpoint family, so the wrapping is chosen
// per call. The default is bare.
func WithDatasetWrapped(key string) CallOption {
	return callOption(func(req *callRequest) {
		req.wrapKey = key
	})
}

func stringifyParam(value any) string {
	if s, ok := value.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", value)
}
