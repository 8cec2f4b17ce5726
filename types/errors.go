// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2026 Datadog, Inc.

package types

import "fmt"

// ConfigurationError is returned when a stressor configuration is invalid,
// it is always detected before any side effect begins
type ConfigurationError struct {
	Kind   StressorKindName
	Field  string
	Value  any
	Reason string
}

func (e ConfigurationError) Error() string {
	return fmt.Sprintf("invalid %s configuration: %s=%v: %s", e.Kind, e.Field, e.Value, e.Reason)
}

// ResourceExhaustionError is returned when the platform refuses an
// allocation, it is an expected chaos outcome and must never be retried
type ResourceExhaustionError struct {
	RequestedBytes int64
	CommittedBytes int64
	Err            error
}

func (e ResourceExhaustionError) Error() string {
	return fmt.Sprintf("allocation refused after committing %d of %d requested bytes: %v", e.CommittedBytes, e.RequestedBytes, e.Err)
}

func (e ResourceExhaustionError) Unwrap() error {
	return e.Err
}

// IOFailure is returned when a write or read fails during churn, it aborts
// the remaining iterations
type IOFailure struct {
	Op   string
	Path string
	Err  error
}

func (e IOFailure) Error() string {
	return fmt.Sprintf("i/o failure during %s on %s: %v", e.Op, e.Path, e.Err)
}

func (e IOFailure) Unwrap() error {
	return e.Err
}
