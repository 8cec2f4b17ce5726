// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2026 Datadog, Inc.

package types

import "errors"

// Exit codes per failure class, sysexits-inspired so they stay
// distinguishable from the codes an operator passes to wait or exit
const (
	// ExitCodeSuccess is the outcome of a completed stressor run
	ExitCodeSuccess = 0
	// ExitCodeConfigurationError is the outcome of an invalid configuration
	ExitCodeConfigurationError = 64
	// ExitCodeUnrecoverableError is the outcome of an unanticipated component error
	ExitCodeUnrecoverableError = 70
	// ExitCodeResourceExhaustion is the outcome of a refused allocation
	ExitCodeResourceExhaustion = 71
	// ExitCodeIOFailure is the outcome of a failed write or read during churn
	ExitCodeIOFailure = 74
	// ExitCodeDispatcherFallback is the fixed outcome of a panic escaping a
	// component, distinct from every code a component can report itself
	ExitCodeDispatcherFallback = 125
)

// ExitOutcome is the structured result of a stressor invocation, the Code is
// forwarded unchanged to the process boundary by the adapter layer
type ExitOutcome struct {
	Code   int
	Status string
}

// Failed reports whether the outcome maps to a non-zero process exit status
func (o ExitOutcome) Failed() bool {
	return o.Code != ExitCodeSuccess
}

// Success builds a zero outcome with the given status line
func Success(status string) ExitOutcome {
	return ExitOutcome{Code: ExitCodeSuccess, Status: status}
}

// WithCode builds an outcome carrying an operator-chosen exit code, values
// outside [0,255] are truncated to their low 8 bits (which is what the
// platform would do to the process status anyway)
func WithCode(code int, status string) ExitOutcome {
	return ExitOutcome{Code: code & 0xff, Status: status}
}

// OutcomeFromError maps an error to the outcome of its failure class
func OutcomeFromError(err error) ExitOutcome {
	var (
		configErr     ConfigurationError
		exhaustionErr ResourceExhaustionError
		ioErr         IOFailure
	)

	switch {
	case errors.As(err, &configErr):
		return ExitOutcome{Code: ExitCodeConfigurationError, Status: err.Error()}
	case errors.As(err, &exhaustionErr):
		return ExitOutcome{Code: ExitCodeResourceExhaustion, Status: err.Error()}
	case errors.As(err, &ioErr):
		return ExitOutcome{Code: ExitCodeIOFailure, Status: err.Error()}
	default:
		return ExitOutcome{Code: ExitCodeUnrecoverableError, Status: err.Error()}
	}
}
