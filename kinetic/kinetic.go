// Copyright (c) The Epirest Authors
// SPDX-License-Identifier: MPL-2.0

// Package kinetic builds and dispatches calls against the Epicor
// Kinetic REST API.
//
// Every call targets a fixed four-segment path,
//
//	{server}/api/v1/{instance}/{Schema}/{Namespace}/{Service}/{Method}
//
// and this package maps a chain of resolved segment names onto that
// path. A [Connection] holds the server configuration and credentials;
// resolving names one at a time produces [PathNode] values, and
// invoking a fully resolved node performs the HTTP call:
//
//	conn, err := kinetic.NewConnection(server, "E10Demo", apiKey, "EPIC06")
//	...
//	node, err := conn.Path(kinetic.SchemaErp, kinetic.NamespaceBaq, "OrdersDashHed", "Data")
//	...
//	resp, err := node.Invoke(ctx, kinetic.WithParam("BeginDate", "01/01/2024"))
//
// The response is the transport's *http.Response, returned unmodified:
// this package never interprets status codes, never retries, and never
// reads the body. Callers decide what a given status means for the
// service they called.
package kinetic

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hashicorp/go-cleanhttp"

	"github.com/epirest/epirest"
	"github.com/epirest/epirest/epiauth"
	"github.com/epirest/epirest/internal/endpoint"
	"github.com/epirest/epirest/license"
)

// LicenseHeader is the header carrying a license claim, as a JSON
// object with a ClaimedLicense property holding the license type GUID.
const LicenseHeader = "License"

// Well-known names for the first two path segments. The server routes
// by name and this package never checks segments against these lists;
// they exist so callers don't have to spell the conventional values as
// string literals.
const (
	SchemaErp = "Erp"
	SchemaIce = "Ice"

	NamespaceBO   = "BO"
	NamespaceLib  = "Lib"
	NamespaceProc = "Proc"
	NamespaceRpt  = "Rpt"
	NamespaceEfx  = "Efx"
	NamespaceBaq  = "Baq"
)

// Connection holds the configuration for talking to one Kinetic
// application server instance and performs the HTTP call once a path
// chain is complete.
//
// A Connection is immutable after construction and performs no network
// activity of its own; requests happen only when a fully resolved
// [PathNode] is invoked. Multiple goroutines may build and invoke
// separate chains against the same Connection concurrently provided the
// configured HTTP client is safe for concurrent use (the default one
// is).
type Connection struct {
	server   epirest.ServerAddr
	instance string
	creds    epiauth.HostCredentials

	claimLicense bool
	licenseType  license.Type

	serverRelease string

	timeout    time.Duration
	httpClient *http.Client
}

// MissingConfigError is the error type returned when a required
// connection parameter is absent or empty.
type MissingConfigError struct {
	Field string
}

// Error returns a customized error message.
func (e *MissingConfigError) Error() string {
	return fmt.Sprintf("missing required connection parameter %q", e.Field)
}

// InvalidLicenseError is the error type returned when a connection is
// configured to claim a license type the server does not recognize.
type InvalidLicenseError struct {
	Type license.Type
}

// Error returns a customized error message.
func (e *InvalidLicenseError) Error() string {
	return fmt.Sprintf("unknown license type %q", string(e.Type))
}

// NoCredentialsError is the error type returned by [OpenFromSource]
// when the credentials source has no credentials for the server.
type NoCredentialsError struct {
	Server epirest.ServerAddr
}

// Error returns a customized error message.
func (e *NoCredentialsError) Error() string {
	return fmt.Sprintf("no credentials available for %s", e.Server)
}

// NewConnection returns a connection for the given server and instance,
// authenticating with the given API key and company code.
//
// All four parameters are required; an empty one produces a
// [MissingConfigError]. The server address must parse per
// [epirest.ParseServerAddr]. Construction only stores configuration,
// it never touches the network.
//
// By default no license is claimed and the HTTP client is a pooled
// client from cleanhttp with no timeout; see the With* options to
// adjust either.
func NewConnection(server, instance, apiKey, company string, opts ...ConnectionOption) (*Connection, error) {
	switch {
	case server == "":
		return nil, &MissingConfigError{Field: "server"}
	case instance == "":
		return nil, &MissingConfigError{Field: "instance"}
	case apiKey == "":
		return nil, &MissingConfigError{Field: "api key"}
	case company == "":
		return nil, &MissingConfigError{Field: "company"}
	}

	addr, err := epirest.ParseServerAddr(server)
	if err != nil {
		return nil, err
	}

	return newConnection(addr, instance, epiauth.APIKeyCredentials{Key: apiKey, Company: company}, opts)
}

// OpenFromSource is a variant of [NewConnection] that obtains the API
// credentials for the server from the given credentials source instead
// of taking them as strings.
//
// If the source has no credentials for the server the result is a
// [NoCredentialsError].
func OpenFromSource(ctx context.Context, server, instance string, src epiauth.CredentialsSource, opts ...ConnectionOption) (*Connection, error) {
	if server == "" {
		return nil, &MissingConfigError{Field: "server"}
	}
	if instance == "" {
		return nil, &MissingConfigError{Field: "instance"}
	}

	addr, err := epirest.ParseServerAddr(server)
	if err != nil {
		return nil, err
	}

	if src == nil {
		src = epiauth.NoCredentials
	}
	creds, err := src.ForServer(ctx, addr)
	if err != nil {
		return nil, err
	}
	if creds == nil {
		return nil, &NoCredentialsError{Server: addr}
	}

	return newConnection(addr, instance, creds, opts)
}

func newConnection(addr epirest.ServerAddr, instance string, creds epiauth.HostCredentials, opts []ConnectionOption) (*Connection, error) {
	c := &Connection{
		server:      addr,
		instance:    instance,
		creds:       creds,
		licenseType: license.Default,
	}
	for _, opt := range opts {
		opt.applyOption(c)
	}

	if c.claimLicense && !c.licenseType.Valid() {
		return nil, &InvalidLicenseError{Type: c.licenseType}
	}
	if c.serverRelease != "" {
		if err := epirest.CheckServerRelease(c.serverRelease); err != nil {
			return nil, err
		}
	}

	if c.httpClient == nil {
		c.httpClient = cleanhttp.DefaultPooledClient()
		c.httpClient.Timeout = c.timeout
	}

	return c, nil
}

// Server returns the normalized server address this connection targets.
func (c *Connection) Server() epirest.ServerAddr {
	return c.server
}

// Instance returns the application server instance name, e.g. "E10Demo".
func (c *Connection) Instance() string {
	return c.instance
}

// Path begins a path chain on this connection, resolving the given
// segment names in order. At least one and at most four names may be
// given; passing fewer than four leaves the returned node open for
// further resolution with [PathNode.Path].
func (c *Connection) Path(first string, rest ...string) (PathNode, error) {
	node, err := PathNode{conn: c}.Path(first)
	if err != nil {
		return PathNode{}, err
	}
	for _, name := range rest {
		node, err = node.Path(name)
		if err != nil {
			return PathNode{}, err
		}
	}
	return node, nil
}

// call performs the HTTP request for a fully resolved path. The node
// has already verified the segment count.
func (c *Connection) call(ctx context.Context, segments []string, req callRequest) (*http.Response, error) {
	method, urlStr, body, err := buildCall(c.server.String(), c.instance, segments, req)
	if err != nil {
		return nil, err
	}

	trace := callTraceFromContext(ctx)
	ctx = trace.requestStart(ctx, method, urlStr)

	var bodyReader io.Reader
	if body != nil {
		bodyReader = bytes.NewReader(body)
	}
	httpReq, err := http.NewRequestWithContext(ctx, method, urlStr, bodyReader)
	if err != nil {
		// Should not get in here because the URL was assembled from
		// already-escaped parts under our control.
		return nil, fmt.Errorf("invalid API request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	c.creds.PrepareRequest(httpReq)

	if c.claimLicense {
		claim, err := json.Marshal(licenseClaim{ClaimedLicense: string(c.licenseType)})
		if err != nil {
			return nil, fmt.Errorf("cannot encode license claim: %w", err)
		}
		httpReq.Header.Set(LicenseHeader, string(claim))
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		trace.requestFailure(ctx, method, urlStr, err)
		return nil, err
	}
	trace.requestSuccess(ctx, method, urlStr, resp.StatusCode)
	return resp, nil
}

type licenseClaim struct {
	ClaimedLicense string
}

// buildCall is the pure part of request construction: it turns the
// resolved segments and the collected call arguments into the HTTP
// method, the full endpoint URL, and the request body (nil for GET
// calls), without touching the network.
//
// Verb selection follows from the arguments alone: a dataset payload
// makes the call a POST with a JSON body; otherwise the call is a GET
// with the parameters, if any, as an order-preserving query string.
func buildCall(server, instance string, segments []string, req callRequest) (method, urlStr string, body []byte, err error) {
	switch {
	case req.datasets > 1:
		return "", "", nil, &CallArgumentsError{Reason: "multiple dataset payloads supplied"}
	case req.datasets > 0 && len(req.params) > 0:
		return "", "", nil, &CallArgumentsError{Reason: "query parameters and a dataset payload cannot be combined"}
	case req.wrapKey != "" && req.datasets == 0:
		return "", "", nil, &CallArgumentsError{Reason: "dataset wrapping requires a dataset payload"}
	}

	urlStr = endpoint.URL(server, instance, segments)

	if req.datasets > 0 {
		payload := req.dataset
		if req.wrapKey != "" {
			payload = map[string]any{req.wrapKey: req.dataset}
		}
		body, err = json.Marshal(payload)
		if err != nil {
			return "", "", nil, fmt.Errorf("cannot encode dataset payload: %w", err)
		}
		return http.MethodPost, urlStr, body, nil
	}

	if q := endpoint.EncodeQuery(req.params); q != "" {
		urlStr += "?" + q
	}
	return http.MethodGet, urlStr, nil, nil
}
