// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2026 Datadog, Inc.

package stressor

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/DataDog/stresskit/process"
	"github.com/DataDog/stresskit/types"
)

// Config is the common configuration of all stressors
type Config struct {
	Log     *zap.SugaredLogger
	DryRun  bool
	Verbose bool
	Runtime process.Runtime
	Process process.Manager
	// OnProgress, when set, is called synchronously after each committed
	// allocation chunk with the cumulative amount in MiB
	OnProgress func(committedMB int)
}

// withDefaults fills the nil collaborators so stressors never have to
// nil-check them
func (c Config) withDefaults() Config {
	if c.Log == nil {
		c.Log = zap.NewNop().Sugar()
	}

	if c.Runtime == nil {
		c.Runtime = process.NewRuntime(c.DryRun)
	}

	if c.Process == nil {
		c.Process = process.NewManager(c.DryRun)
	}

	return c
}

// Stressor represents a single bounded resource consumption run, it retains
// no state once Run has returned
type Stressor interface {
	GetStressorKind() types.StressorKindName
	Run() types.ExitOutcome
}

// Spec is a validated stressor configuration variant, one per stressor kind
type Spec interface {
	GetStressorKind() types.StressorKindName

	// Build validates the spec and creates its stressor, a validation error
	// is returned before any side effect begins
	Build(config Config) (Stressor, error)
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// validateSpec runs the validator tags of the given spec and translates the
// first violation into a configuration error
func validateSpec(kind types.StressorKindName, spec any) error {
	err := validate.Struct(spec)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
		violation := validationErrors[0]

		return types.ConfigurationError{
			Kind:   kind,
			Field:  violation.Field(),
			Value:  violation.Value(),
			Reason: fmt.Sprintf("must satisfy '%s'", violation.Tag()),
		}
	}

	return fmt.Errorf("unable to validate %s spec: %w", kind, err)
}
