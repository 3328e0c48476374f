/*
Copyright 2026 GDCF Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package gdcferr implements the core's unified error taxonomy: API,
// cache, consistency, and "no such resource" failures, all addressable
// through a single wrapped type rather than sentinel values.
package gdcferr

import (
	"errors"
	"fmt"
	"strings"
)

// Kind discriminates the taxonomy described in the error handling design.
type Kind int

const (
	// KindAPI wraps a transport/decoding failure from an ApiClient.
	KindAPI Kind = iota
	// KindAPINoResult is the ApiError subkind that drives the mark_absent path.
	KindAPINoResult
	// KindCache wraps a failure from a CacheStore.
	KindCache
	// KindConsistencyAssumptionViolated is raised by the UpgradeEngine when a
	// secondary is absent, no default is available, and no request can be
	// issued to resolve it.
	KindConsistencyAssumptionViolated
	// KindNoneVariant is raised when a caller asked for a must-exist value
	// but the request resolved to MarkedAbsent/DeducedAbsent.
	KindNoneVariant
)

func (k Kind) String() string {
	switch k {
	case KindAPI:
		return "api"
	case KindAPINoResult:
		return "api-no-result"
	case KindCache:
		return "cache"
	case KindConsistencyAssumptionViolated:
		return "consistency-assumption-violated"
	case KindNoneVariant:
		return "none-variant"
	default:
		return "unknown"
	}
}

// Error is the core's error type. It carries a taxonomy Kind, an optional
// wrapped library error (for logging, never exposed to callers beyond
// Unwrap), and arbitrary key/value pairs for structured logging.
type Error struct {
	kind        Kind
	description string
	err         error
	values      []any
}

// newError constructs an Error of the given kind.
func newError(kind Kind, a ...any) *Error {
	return &Error{
		kind:        kind,
		description: strings.TrimSuffix(fmt.Sprintln(a...), "\n"),
	}
}

// WithError augments the error with an underlying library error.
func (e *Error) WithError(err error) *Error {
	e.err = err

	return e
}

// WithValues augments the error with key/value pairs for structured logging.
// Values should not use the "error" key, that's implicitly defined by
// WithError and could collide.
func (e *Error) WithValues(values ...any) *Error {
	e.values = values

	return e
}

// Unwrap implements Go 1.13 errors.
func (e *Error) Unwrap() error {
	return e.err
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.description == "" {
		return e.kind.String()
	}

	return e.kind.String() + ": " + e.description
}

// Kind returns the error's taxonomy kind.
func (e *Error) Kind() Kind {
	return e.kind
}

// LogValues returns the key/value pairs suitable for a logr.Logger call,
// folding in the description and wrapped error where present.
func (e *Error) LogValues() []any {
	var details []any

	if e.description != "" {
		details = append(details, "detail", e.description)
	}

	if e.err != nil {
		details = append(details, "error", e.err)
	}

	if e.values != nil {
		details = append(details, e.values...)
	}

	return details
}

// asError unwraps a generic error to a *Error, if it is one.
func asError(err error) *Error {
	var gdcfErr *Error

	if !errors.As(err, &gdcfErr) {
		return nil
	}

	return gdcfErr
}

// isErrorKind reports whether err is a *Error of the given kind.
func isErrorKind(err error, kind Kind) bool {
	gdcfErr := asError(err)
	if gdcfErr == nil {
		return false
	}

	return gdcfErr.kind == kind
}

// API wraps a transport/decoding failure reported by an ApiClient.
func API(a ...any) *Error {
	return newError(KindAPI, a...)
}

// IsAPIError reports whether err is an ApiError (of any subkind).
func IsAPIError(err error) bool {
	return isErrorKind(err, KindAPI) || isErrorKind(err, KindAPINoResult)
}

// APINoResult wraps the ApiClient-specific "no such resource" signal. This
// is the only ApiError subkind recovered into MarkedAbsent by a RefreshTask;
// every other ApiError surfaces.
func APINoResult(a ...any) *Error {
	return newError(KindAPINoResult, a...)
}

// IsNoResult reports whether err is the ApiClient's "no such resource" signal.
func IsNoResult(err error) bool {
	return isErrorKind(err, KindAPINoResult)
}

// Cache wraps a failure reported by a CacheStore.
func Cache(a ...any) *Error {
	return newError(KindCache, a...)
}

// IsCacheError reports whether err is a CacheError.
func IsCacheError(err error) bool {
	return isErrorKind(err, KindCache)
}

// ConsistencyAssumptionViolated is raised by the UpgradeEngine when a
// secondary is absent, no default is available, and no request could be
// issued to resolve it. This indicates either a bug or genuine server
// inconsistency.
func ConsistencyAssumptionViolated(a ...any) *Error {
	return newError(KindConsistencyAssumptionViolated, a...)
}

// IsConsistencyViolation reports whether err is a ConsistencyAssumptionViolated.
func IsConsistencyViolation(err error) bool {
	return isErrorKind(err, KindConsistencyAssumptionViolated)
}

// NoneVariant is raised when a caller required a must-exist value but the
// request resolved to MarkedAbsent or DeducedAbsent.
func NoneVariant(a ...any) *Error {
	return newError(KindNoneVariant, a...)
}

// IsNoneVariant reports whether err is a NoneVariant error.
func IsNoneVariant(err error) bool {
	return isErrorKind(err, KindNoneVariant)
}
