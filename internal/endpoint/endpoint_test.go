// Copyright (c) The Epirest Authors
// SPDX-License-Identifier: MPL-2.0

package endpoint

import (
	"testing"
)

func TestURL(t *testing.T) {
	tests := []struct {
		name     string
		server   string
		instance string
		segments []string
		want     string
	}{
		{
			"complete path",
			"https://erp.example.com", "E10Demo",
			[]string{"Erp", "Baq", "OrdersDashHed", "Data"},
			"https://erp.example.com/api/v1/E10Demo/Erp/Baq/OrdersDashHed/Data",
		},
		{
			"hyphenated segment",
			"https://erp.example.com", "E10Demo",
			[]string{"Erp", "Baq", "zCRM-Customers", "Data"},
			"https://erp.example.com/api/v1/E10Demo/Erp/Baq/zCRM-Customers/Data",
		},
		{
			"segment with space",
			"https://erp.example.com", "E10Demo",
			[]string{"Erp", "Baq", "My Query", "Data"},
			"https://erp.example.com/api/v1/E10Demo/Erp/Baq/My%20Query/Data",
		},
		{
			"segment with slash",
			"https://erp.example.com", "E10Demo",
			[]string{"Erp", "Baq", "a/b", "Data"},
			"https://erp.example.com/api/v1/E10Demo/Erp/Baq/a%2Fb/Data",
		},
		{
			"trailing slash on server",
			"https://erp.example.com/", "E10Demo",
			[]string{"Ice", "BO", "CompanySvc", "GetByID"},
			"https://erp.example.com/api/v1/E10Demo/Ice/BO/CompanySvc/GetByID",
		},
		{
			"escaped instance",
			"https://erp.example.com", "E10 Demo",
			[]string{"Erp", "Baq", "Q", "Data"},
			"https://erp.example.com/api/v1/E10%20Demo/Erp/Baq/Q/Data",
		},
		{
			"partial path",
			"https://erp.example.com", "E10Demo",
			[]string{"Erp"},
			"https://erp.example.com/api/v1/E10Demo/Erp",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := URL(test.server, test.instance, test.segments)
			if got != test.want {
				t.Errorf("wrong result\ngot:  %s\nwant: %s", got, test.want)
			}
		})
	}
}

func TestEncodeQuery(t *testing.T) {
	tests := []struct {
		name   string
		params []Param
		want   string
	}{
		{"empty", nil, ""},
		{
			"single",
			[]Param{{"vendorID", "DIGCO"}},
			"vendorID=DIGCO",
		},
		{
			"order preserved",
			[]Param{{"BeginDate", "01/01/2024"}, {"EndDate", "01/31/2024"}},
			"BeginDate=01%2F01%2F2024&EndDate=01%2F31%2F2024",
		},
		{
			"order preserved reversed",
			[]Param{{"EndDate", "01/31/2024"}, {"BeginDate", "01/01/2024"}},
			"EndDate=01%2F31%2F2024&BeginDate=01%2F01%2F2024",
		},
		{
			"escaped key and value",
			[]Param{{"a b", "c&d"}},
			"a+b=c%26d",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := EncodeQuery(test.params)
			if got != test.want {
				t.Errorf("wrong result\ngot:  %s\nwant: %s", got, test.want)
			}
		})
	}
}
