// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2026 Datadog, Inc.

package stressor

import (
	"fmt"

	"github.com/DataDog/stresskit/types"
)

// Dispatcher is the composition root of the engine, it routes a validated
// spec to its stressor and forwards the outcome unchanged
type Dispatcher struct {
	config Config
}

// NewDispatcher creates a dispatcher running stressors with the given config
func NewDispatcher(config Config) Dispatcher {
	return Dispatcher{config: config.withDefaults()}
}

// Run builds and runs the stressor matching the spec kind. Component
// failures pass through untouched, only a panic none of the components
// anticipated is translated into the fixed fallback outcome.
func (d Dispatcher) Run(spec Spec) (outcome types.ExitOutcome) {
	defer func() {
		if r := recover(); r != nil {
			d.config.Log.Errorw("stressor terminated unexpectedly", "kind", spec.GetStressorKind(), "panic", r)

			outcome = types.ExitOutcome{
				Code:   types.ExitCodeDispatcherFallback,
				Status: fmt.Sprintf("unrecoverable %s failure: %v", spec.GetStressorKind(), r),
			}
		}
	}()

	component, err := spec.Build(d.config)
	if err != nil {
		return types.OutcomeFromError(err)
	}

	return component.Run()
}
