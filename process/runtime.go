// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2026 Datadog, Inc.
package process

import "runtime"

type Runtime interface {
	// GOMAXPROCS sets the maximum number of CPUs that can be executing
	// simultaneously and returns the previous setting. If n < 1, it does
	// not change the current setting.
	GOMAXPROCS(int) int

	// NumCPU returns the number of logical CPUs usable by the current process.
	NumCPU() int

	// LockOSThread wires the calling goroutine to its current operating system thread.
	// The calling goroutine will always execute in that thread,
	// and no other goroutine will execute in it,
	// until the calling goroutine has made as many calls to
	// UnlockOSThread as to LockOSThread.
	LockOSThread()

	// UnlockOSThread undoes an earlier call to LockOSThread.
	// If this drops the number of active LockOSThread calls on the
	// calling goroutine to zero, it unwires the calling goroutine from
	// its fixed operating system thread.
	UnlockOSThread()
}

// runtimeImpl implement Runtime interface and enable to perform dryRun AND testing
type runtimeImpl struct {
	dryRun bool
}

func NewRuntime(dryRun bool) Runtime {
	return &runtimeImpl{
		dryRun: dryRun,
	}
}

func (r runtimeImpl) GOMAXPROCS(new int) int {
	if r.dryRun {
		return new
	}

	return runtime.GOMAXPROCS(new)
}

func (r runtimeImpl) NumCPU() int {
	return runtime.NumCPU()
}

func (r runtimeImpl) LockOSThread() {
	if r.dryRun {
		return
	}

	runtime.LockOSThread()
}

func (r runtimeImpl) UnlockOSThread() {
	if r.dryRun {
		return
	}

	runtime.UnlockOSThread()
}
