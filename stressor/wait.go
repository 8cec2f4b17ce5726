// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2026 Datadog, Inc.

package stressor

import (
	"fmt"
	"time"

	"github.com/DataDog/stresskit/types"
)

// WaitSpec configures the wait stressor, blocking the calling goroutine for
// a fixed duration before yielding the configured exit code
type WaitSpec struct {
	DurationMs int64 `validate:"gte=0"`
	// ExitCode values outside [0,255] are truncated to their low 8 bits
	ExitCode int
}

func (WaitSpec) GetStressorKind() types.StressorKindName {
	return types.StressorKindWait
}

func (s WaitSpec) Build(config Config) (Stressor, error) {
	if err := validateSpec(s.GetStressorKind(), s); err != nil {
		return nil, err
	}

	return &waiter{config: config.withDefaults(), spec: s}, nil
}

type waiter struct {
	config Config
	spec   WaitSpec
}

func (*waiter) GetStressorKind() types.StressorKindName {
	return types.StressorKindWait
}

func (w *waiter) Run() types.ExitOutcome {
	duration := time.Duration(w.spec.DurationMs) * time.Millisecond

	// early exit if dry-run mode is enabled
	if w.config.DryRun {
		w.config.Log.Debug("wait dry run mode activated, skipping sleep")

		return types.Success(fmt.Sprintf("dry run: would wait %s then exit with code %d", duration, w.spec.ExitCode))
	}

	w.config.Log.Infow("waiting", "duration", duration, "exit_code", w.spec.ExitCode)

	if duration > 0 {
		time.Sleep(duration)
	}

	return types.WithCode(w.spec.ExitCode, fmt.Sprintf("waited %s", duration))
}
