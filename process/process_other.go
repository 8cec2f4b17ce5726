// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2026 Datadog, Inc.

//go:build !linux

package process

import (
	"errors"
	"os"
)

type manager struct {
	dryRun bool
}

// NewManager creates a new process manager
func NewManager(dryRun bool) Manager {
	return manager{dryRun}
}

// Prioritize set the priority of the current process group to the max value (-20)
func (p manager) Prioritize() error {
	if p.dryRun {
		return nil
	}

	return errors.New("unsupported")
}

func (p manager) SetAffinity([]int) error {
	if p.dryRun {
		return nil
	}

	return errors.New("unsupported")
}

// ProcessID returns the caller PID
func (p manager) ProcessID() int {
	return os.Getpid()
}

// ThreadID returns the caller thread PID
func (p manager) ThreadID() int {
	return -1
}
