// Copyright (c) The Epirest Authors
// SPDX-License-Identifier: MPL-2.0

package epirest

import (
	"fmt"

	version "github.com/hashicorp/go-version"
)

// MinServerRelease is the oldest Kinetic server release this module's
// fixed call surface is known to work against. Older releases route the
// REST surface differently and are not supported.
const MinServerRelease = "10.2.300"

var minServerRelease = version.Must(version.NewVersion(MinServerRelease))

// InvalidServerReleaseError is returned by [CheckServerRelease] when the
// given release string cannot be parsed as a version number.
type InvalidServerReleaseError struct {
	Release string
	err     error
}

// Error returns a customized error message.
func (e *InvalidServerReleaseError) Error() string {
	return fmt.Sprintf("invalid server release %q: %s", e.Release, e.err)
}

// Unwrap returns the underlying parse error.
func (e *InvalidServerReleaseError) Unwrap() error {
	return e.err
}

// UnsupportedServerReleaseError is returned by [CheckServerRelease] when
// the given release predates [MinServerRelease].
type UnsupportedServerReleaseError struct {
	Release string
}

// Error returns a customized error message.
func (e *UnsupportedServerReleaseError) Error() string {
	return fmt.Sprintf("server release %s is older than the oldest supported release %s", e.Release, MinServerRelease)
}

// CheckServerRelease vets a caller-declared Kinetic release string
// against [MinServerRelease].
//
// This module never asks the server for its release on its own; callers
// that know which release they are targeting can declare it (see the
// kinetic package's WithServerRelease option) to fail fast instead of
// discovering an incompatibility one mysterious 404 at a time.
func CheckServerRelease(raw string) error {
	v, err := version.NewVersion(raw)
	if err != nil {
		return &InvalidServerReleaseError{Release: raw, err: err}
	}
	if v.LessThan(minServerRelease) {
		return &UnsupportedServerReleaseError{Release: raw}
	}
	return nil
}
