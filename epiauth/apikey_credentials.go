// Copyright (c) The Epirest Authors
// SPDX-License-Identifier: MPL-2.0

package epiauth

import (
	"net/http"

	"github.com/zclconf/go-cty/cty"
)

// Header names used to carry credentials on every API request.
const (
	APIKeyHeader  = "x-api-key"
	CompanyHeader = "X-Company"
)

// APIKeyCredentials is a HostCredentials implementation carrying the
// static API key and company code that identify a caller to a Kinetic
// server.
type APIKeyCredentials struct {
	// Key is the API key generated for an integration account on the
	// target server.
	Key string

	// Company is the company code the calls operate against.
	Company string
}

// Interface implementation assertions. Compilation will fail here if
// APIKeyCredentials does not fully implement these interfaces.
var _ HostCredentials = APIKeyCredentials{}
var _ NewHostCredentials = APIKeyCredentials{}

// PrepareRequest alters the given HTTP request by setting the API key
// and company headers from the receiver.
func (c APIKeyCredentials) PrepareRequest(req *http.Request) {
	if req.Header == nil {
		req.Header = http.Header{}
	}
	req.Header.Set(APIKeyHeader, c.Key)
	req.Header.Set(CompanyHeader, c.Company)
}

// ToStore returns a credentials object with "api_key" and "company"
// attributes. This implements [NewHostCredentials].
func (c APIKeyCredentials) ToStore() cty.Value {
	return cty.ObjectVal(map[string]cty.Value{
		"api_key": cty.StringVal(c.Key),
		"company": cty.StringVal(c.Company),
	})
}
