// Copyright (c) The Epirest Authors
// SPDX-License-Identifier: MPL-2.0

package epiauth

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/zclconf/go-cty/cty"

	"github.com/epirest/epirest"
)

func TestAPIKeyCredentialsPrepareRequest(t *testing.T) {
	req, err := http.NewRequest("GET", "https://erp.example.com/api/v1/E10Demo/Erp/Baq/Q/Data", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	APIKeyCredentials{Key: "k1", Company: "EPIC06"}.PrepareRequest(req)

	if got, want := req.Header.Get(APIKeyHeader), "k1"; got != want {
		t.Errorf("wrong %s header\ngot:  %s\nwant: %s", APIKeyHeader, got, want)
	}
	if got, want := req.Header.Get(CompanyHeader), "EPIC06"; got != want {
		t.Errorf("wrong %s header\ngot:  %s\nwant: %s", CompanyHeader, got, want)
	}
}

func TestAPIKeyCredentialsToStore(t *testing.T) {
	got := APIKeyCredentials{Key: "k1", Company: "EPIC06"}.ToStore()
	want := cty.ObjectVal(map[string]cty.Value{
		"api_key": cty.StringVal("k1"),
		"company": cty.StringVal("EPIC06"),
	})
	if !got.RawEquals(want) {
		t.Errorf("wrong result\ngot:  %#v\nwant: %#v", got, want)
	}
}

func TestCredentialsForServer(t *testing.T) {
	addr, err := epirest.ParseServerAddr("https://erp.example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	empty := StaticCredentialsSource(nil)
	have := StaticCredentialsSource(map[epirest.ServerAddr]HostCredentials{
		addr: APIKeyCredentials{Key: "k1", Company: "EPIC06"},
	})

	creds, err := Credentials{empty, have}.ForServer(context.Background(), addr)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := creds.(APIKeyCredentials).Key, "k1"; got != want {
		t.Errorf("wrong credentials: got key %q, want %q", got, want)
	}

	creds, err = NoCredentials.ForServer(context.Background(), addr)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if creds != nil {
		t.Errorf("unexpected credentials from the empty source: %#v", creds)
	}
}

type failingSource struct {
	err error
}

func (s failingSource) ForServer(_ context.Context, _ epirest.ServerAddr) (HostCredentials, error) {
	return nil, s.err
}

func TestCredentialsForServerError(t *testing.T) {
	addr, err := epirest.ParseServerAddr("https://erp.example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	boom := errors.New("keyring locked")
	have := StaticCredentialsSource(map[epirest.ServerAddr]HostCredentials{
		addr: APIKeyCredentials{Key: "k1", Company: "EPIC06"},
	})

	// An erroring source halts the search even when a later source
	// would have credentials.
	_, err = Credentials{failingSource{boom}, have}.ForServer(context.Background(), addr)
	if !errors.Is(err, boom) {
		t.Fatalf("unexpected error: %v", err)
	}
}
