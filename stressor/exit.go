// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2026 Datadog, Inc.

package stressor

import (
	"fmt"

	"github.com/DataDog/stresskit/types"
)

// ExitSpec configures the exit stressor, terminating immediately with the
// chosen exit code
type ExitSpec struct {
	// Code values outside [0,255] are truncated to their low 8 bits
	Code int
}

func (ExitSpec) GetStressorKind() types.StressorKindName {
	return types.StressorKindExit
}

func (s ExitSpec) Build(config Config) (Stressor, error) {
	return &exiter{config: config.withDefaults(), spec: s}, nil
}

type exiter struct {
	config Config
	spec   ExitSpec
}

func (*exiter) GetStressorKind() types.StressorKindName {
	return types.StressorKindExit
}

func (e *exiter) Run() types.ExitOutcome {
	// early exit if dry-run mode is enabled, the outcome is 0 regardless of
	// the configured code
	if e.config.DryRun {
		e.config.Log.Debug("exit dry run mode activated")

		return types.Success(fmt.Sprintf("dry run: would exit with code %d", e.spec.Code))
	}

	return types.WithCode(e.spec.Code, fmt.Sprintf("exiting with code %d", e.spec.Code))
}
