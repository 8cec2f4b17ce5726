// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2026 Datadog, Inc.

package process

// Manager manages the current process
type Manager interface {
	// Prioritize raises the scheduling priority of the current process group
	// to the maximum value
	Prioritize() error

	// SetAffinity pins the calling thread to the given CPUs
	SetAffinity(cpus []int) error

	// ProcessID returns the caller PID
	ProcessID() int

	// ThreadID returns the caller thread ID
	ThreadID() int
}
