// Copyright (c) The Epirest Authors
// SPDX-License-Identifier: MPL-2.0

package epirest

import (
	"strings"
	"testing"
)

func TestParseServerAddr(t *testing.T) {
	tests := []struct {
		input string
		want  string
		err   string
	}{
		{"https://erp.example.com", "https://erp.example.com", ""},
		{"https://erp.example.com/", "https://erp.example.com", ""},
		{"http://erp.example.com", "http://erp.example.com", ""},
		{"https://ERP.Example.COM", "https://erp.example.com", ""},
		{"https://erp.example.com:8443", "https://erp.example.com:8443", ""},
		{"https://münchen.example.com", "https://xn--mnchen-3ya.example.com", ""},
		{"https://127.0.0.1:8080", "https://127.0.0.1:8080", ""},
		{"ftp://erp.example.com", "<nil>", "unsupported scheme"},
		{"erp.example.com", "<nil>", "unsupported scheme"},
		{"https://user:pw@erp.example.com", "<nil>", "username/password"},
		{"https://erp.example.com/kinetic", "<nil>", "must not include a path"},
		{"https://erp.example.com?x=1", "<nil>", "must not include a path, query"},
		{"https://", "<nil>", "no host"},
		{"", "<nil>", "empty"},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			addr, err := ParseServerAddr(test.input)
			if test.err != "" {
				if err == nil || !strings.Contains(err.Error(), test.err) {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := addr.String(); got != test.want {
				t.Errorf("wrong result\ngot:  %s\nwant: %s", got, test.want)
			}
		})
	}
}

func TestServerAddrHost(t *testing.T) {
	addr, err := ParseServerAddr("https://erp.example.com:8443")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := addr.Host(), "erp.example.com:8443"; got != want {
		t.Errorf("wrong host\ngot:  %s\nwant: %s", got, want)
	}
}

func TestServerAddrEquality(t *testing.T) {
	// Two spellings of the same server must normalize to the same
	// comparable value, since epiauth keys credential maps by address.
	a, err := ParseServerAddr("https://MÜNCHEN.example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := ParseServerAddr("https://xn--mnchen-3ya.example.com/")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a != b {
		t.Errorf("addresses do not compare equal: %q vs %q", a, b)
	}
}
