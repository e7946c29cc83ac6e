// SteamLens - Game Platform Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package analytics

import (
	"errors"
	"fmt"
)

// Kind classifies why a query failed.
type Kind int

const (
	// KindUnexpected covers malformed data and recovered panics.
	KindUnexpected Kind = iota
	// KindNotFound means the requested genre, item or user is not in the snapshot.
	KindNotFound
	// KindEmptyResult means the selection had fewer rows than the query needs.
	KindEmptyResult
)

// String returns the snake_case name used in logs and metrics.
func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindEmptyResult:
		return "empty_result"
	default:
		return "unexpected"
	}
}

// Code returns the upper-case code used in API error bodies.
func (k Kind) Code() string {
	switch k {
	case KindNotFound:
		return "NOT_FOUND"
	case KindEmptyResult:
		return "EMPTY_RESULT"
	default:
		return "UNEXPECTED"
	}
}

// Sentinel errors for errors.Is matching against a *QueryError.
var (
	ErrNotFound    = errors.New("not found")
	ErrEmptyResult = errors.New("empty result")
	ErrUnexpected  = errors.New("unexpected error")
)

// QueryError is the only error type returned by Service methods.
type QueryError struct {
	Op      string
	Kind    Kind
	Message string
	Err     error
}

func (e *QueryError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

// Unwrap exposes the cause.
func (e *QueryError) Unwrap() error {
	return e.Err
}

// Is matches the sentinel for e.Kind.
func (e *QueryError) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.Kind == KindNotFound
	case ErrEmptyResult:
		return e.Kind == KindEmptyResult
	case ErrUnexpected:
		return e.Kind == KindUnexpected
	}
	return false
}

func notFound(op, format string, args ...any) *QueryError {
	return &QueryError{Op: op, Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func emptyResult(op, format string, args ...any) *QueryError {
	return &QueryError{Op: op, Kind: KindEmptyResult, Message: fmt.Sprintf(format, args...)}
}

// KindOf returns the Kind carried by err, or KindUnexpected.
func KindOf(err error) Kind {
	var qe *QueryError
	if errors.As(err, &qe) {
		return qe.Kind
	}
	return KindUnexpected
}
