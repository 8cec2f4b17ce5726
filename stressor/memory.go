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

const (
	// chunkSize is the fixed allocation unit, the final chunk is sized to
	// the remainder
	chunkSize = 8 * 1024 * 1024
	// pageSize is the granularity at which chunks are touched to force the
	// platform to commit the memory instead of lazily mapping it
	pageSize = 4096

	bytesPerMegabyte = 1024 * 1024
)

// SpikeSpec configures the memory spike stressor, committing a target amount
// of memory in fixed-size chunks and optionally holding it for a duration
type SpikeSpec struct {
	Megabytes   int `validate:"gte=0"`
	HoldSeconds int `validate:"gte=0"`
	// RampDuration, when positive, spreads the chunk acquisitions evenly
	// across the window instead of allocating flat out
	RampDuration time.Duration `validate:"gte=0"`
}

func (SpikeSpec) GetStressorKind() types.StressorKindName {
	return types.StressorKindSpike
}

func (s SpikeSpec) Build(config Config) (Stressor, error) {
	if err := validateSpec(s.GetStressorKind(), s); err != nil {
		return nil, err
	}

	return &allocator{
		config: config.withDefaults(),
		spec:   s,
		alloc:  allocateChunk,
		free:   releaseChunk,
	}, nil
}

type allocator struct {
	config Config
	spec   SpikeSpec

	// alloc and free default to the platform implementation, tests swap
	// them to simulate a refused allocation
	alloc func(int) ([]byte, error)
	free  func([]byte) error

	// allocations is the sole owner of every acquired chunk, clearing it is
	// the sole release mechanism
	allocations [][]byte
}

func (*allocator) GetStressorKind() types.StressorKindName {
	return types.StressorKindSpike
}

// Run commits the target amount of memory, holds it, then releases every
// chunk before returning, on the failure path included
func (a *allocator) Run() types.ExitOutcome {
	// early exit if dry-run mode is enabled
	if a.config.DryRun {
		a.config.Log.Debug("spike dry run mode activated, skipping allocation")

		return types.Success(fmt.Sprintf("dry run: would commit %d MiB", a.spec.Megabytes))
	}

	defer a.release()

	targetBytes := int64(a.spec.Megabytes) * bytesPerMegabyte
	chunkCount := (targetBytes + chunkSize - 1) / chunkSize

	var stepDelay time.Duration
	if a.spec.RampDuration > 0 && chunkCount > 1 {
		stepDelay = a.spec.RampDuration / time.Duration(chunkCount)
	}

	a.config.Log.Infow("starting memory allocation", "target_bytes", targetBytes, "chunks", chunkCount, "step_delay", stepDelay)

	var committed int64

	for remaining := targetBytes; remaining > 0; {
		size := int64(chunkSize)
		if remaining < size {
			size = remaining
		}

		chunk, err := a.alloc(int(size))
		if err != nil {
			// a refused allocation is a legitimate chaos outcome, chunks
			// acquired so far are released by the deferred call
			return types.OutcomeFromError(types.ResourceExhaustionError{
				RequestedBytes: targetBytes,
				CommittedBytes: committed,
				Err:            err,
			})
		}

		touchPages(chunk)

		a.allocations = append(a.allocations, chunk)
		committed += size
		remaining -= size

		if a.config.OnProgress != nil {
			a.config.OnProgress(int(committed / bytesPerMegabyte))
		}

		if stepDelay > 0 && remaining > 0 {
			time.Sleep(stepDelay)
		}
	}

	if a.spec.HoldSeconds > 0 {
		a.config.Log.Infow("memory allocation complete, holding", "committed_bytes", committed, "hold", time.Duration(a.spec.HoldSeconds)*time.Second)
		time.Sleep(time.Duration(a.spec.HoldSeconds) * time.Second)
	}

	return types.Success(fmt.Sprintf("committed %d MiB in %d chunks, held %ds", a.spec.Megabytes, len(a.allocations), a.spec.HoldSeconds))
}

// release drops every reference so the chunks become reclaimable, after it
// runs the process retains nothing from the allocation
func (a *allocator) release() {
	for _, chunk := range a.allocations {
		if err := a.free(chunk); err != nil {
			a.config.Log.Warnw("failed to release chunk", "error", err)
		}
	}

	a.allocations = nil

	a.config.Log.Debug("all chunks released")
}

// touchPages writes one byte per page so the platform commits physical or
// swap-backed memory rather than a lazily-mapped reservation
func touchPages(chunk []byte) {
	for i := 0; i < len(chunk); i += pageSize {
		chunk[i] = 0xd0
	}
}
