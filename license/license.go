// Copyright (c) The Epirest Authors
// SPDX-License-Identifier: MPL-2.0

// Package license enumerates the Kinetic license types that a
// connection may claim when making API calls.
//
// Each license type is identified on the wire by a fixed GUID. The set
// is closed: the server recognizes exactly these values, so connection
// construction rejects anything not listed here.
package license

// Type identifies a claimable Kinetic license by its GUID.
type Type string

const (
	Default          Type = "00000003-B615-4300-957B-34956697F040"
	ECCWebForm       Type = "00000003-C997-4D03-868E-31E510BDD87B"
	ECCWebService    Type = "00000003-079B-4C49-9D0A-EF8236247504"
	EnterpriseSearch Type = "00000003-BDB7-43A3-949C-1F003E3ABCFA"
	EnterpriseSocial Type = "00000003-9F85-4C75-9A9D-B9198371275B"
	MobileFramework  Type = "00000003-C084-43C0-978D-9790A7A3C902"
	WebService       Type = "00000003-9439-4B30-A6F4-6D2FD4B9FD0F"
	WebServiceShared Type = "00000003-231B-4E2B-9B47-13F87EA9A0A3"
	CRM              Type = "00000003-15F2-4059-8C79-11849198F488"
	CustomerConnect  Type = "00000003-3278-47FF-BD7A-9E1BAE66B088"
	DataCollection   Type = "00000003-B8EB-40C4-8897-248CB30C5D47"
	SalesConnect     Type = "00000003-4344-4D20-8650-75C0E7EB64D7"
	SupplierConnect  Type = "00000003-EA5C-43E4-A1C6-26F7C7DBA2BE"
	TimeExpense      Type = "00000003-F415-4768-82EA-0AF7327B1AC4"
)

var all = []Type{
	Default,
	ECCWebForm,
	ECCWebService,
	EnterpriseSearch,
	EnterpriseSocial,
	MobileFramework,
	WebService,
	WebServiceShared,
	CRM,
	CustomerConnect,
	DataCollection,
	SalesConnect,
	SupplierConnect,
	TimeExpense,
}

// Valid reports whether t is one of the license types the server
// recognizes.
func (t Type) Valid() bool {
	for _, known := range all {
		if t == known {
			return true
		}
	}
	return false
}

// All returns the full set of recognized license types.
func All() []Type {
	ret := make([]Type, len(all))
	copy(ret, all)
	return ret
}

// String returns the GUID for the license type.
func (t Type) String() string {
	return string(t)
}
