// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2026 Datadog, Inc.

package stressor

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/hashicorp/go-multierror"

	"github.com/DataDog/stresskit/types"
)

// burnBatchSize is the number of arithmetic iterations performed between two
// deadline checks, small enough to keep the overshoot past the deadline a
// constant independent of parallelism
const burnBatchSize = 1024

// burnSink receives each worker's final state so the busy loop cannot be
// optimized away
var burnSink atomic.Uint64

// BurnSpec configures the CPU burn stressor, loading CPUs with a
// side-effect-free arithmetic loop until a shared deadline fires
type BurnSpec struct {
	Seconds int `validate:"gte=0"`
	// Parallelism defaults to the logical CPU count when nil, explicit
	// values must be at least 1
	Parallelism *int `validate:"omitnil,gte=1"`
	// Prioritize raises the process group scheduling priority before
	// starting the workers
	Prioritize bool
}

func (BurnSpec) GetStressorKind() types.StressorKindName {
	return types.StressorKindBurn
}

func (s BurnSpec) Build(config Config) (Stressor, error) {
	if err := validateSpec(s.GetStressorKind(), s); err != nil {
		return nil, err
	}

	return &burner{config: config.withDefaults(), spec: s}, nil
}

type burner struct {
	config Config
	spec   BurnSpec
}

func (*burner) GetStressorKind() types.StressorKindName {
	return types.StressorKindBurn
}

// Run starts the workers and joins every one of them before returning, a
// worker observing the deadline is the expected termination path
func (b *burner) Run() types.ExitOutcome {
	// early exit if dry-run mode is enabled
	if b.config.DryRun {
		b.config.Log.Debug("burn dry run mode activated, skipping cpu load, no worker started")

		return types.Success(fmt.Sprintf("dry run: would burn for %ds", b.spec.Seconds))
	}

	parallelism := b.config.Runtime.NumCPU()
	if b.spec.Parallelism != nil {
		parallelism = *b.spec.Parallelism
	}

	if b.spec.Prioritize {
		if err := b.config.Process.Prioritize(); err != nil {
			b.config.Log.Warnw("unable to prioritize process", "error", err)
		}
	}

	// raise GOMAXPROCS when the requested parallelism exceeds it, restored
	// after the join, lowering it would throttle the workers instead
	currentProcs := b.config.Runtime.GOMAXPROCS(0)
	if parallelism > currentProcs {
		b.config.Runtime.GOMAXPROCS(parallelism)
		b.config.Log.Infof("changed GOMAXPROCS from %d to %d", currentProcs, parallelism)

		defer b.config.Runtime.GOMAXPROCS(currentProcs)
	}

	// the deadline is computed once and handed to every worker by value, it
	// is the only state they share
	deadline := time.Now().Add(time.Duration(b.spec.Seconds) * time.Second)

	b.config.Log.Infow("starting cpu load workers", "workers", parallelism, "duration", time.Until(deadline).Round(time.Second))

	var wg sync.WaitGroup

	workerErrors := make(chan error, parallelism)

	for worker := 0; worker < parallelism; worker++ {
		wg.Add(1)

		go b.work(worker, deadline, &wg, workerErrors)
	}

	// never return while a worker is still running
	wg.Wait()
	close(workerErrors)

	var result *multierror.Error
	for err := range workerErrors {
		result = multierror.Append(result, err)
	}

	if err := result.ErrorOrNil(); err != nil {
		return types.OutcomeFromError(fmt.Errorf("cpu load workers failed: %w", err))
	}

	b.config.Log.Infow("all cpu load workers are now stopped", "workers", parallelism)

	return types.Success(fmt.Sprintf("burned %d workers for %ds", parallelism, b.spec.Seconds))
}

// work runs a cpu intensive operation until the deadline is observed
func (b *burner) work(worker int, deadline time.Time, wg *sync.WaitGroup, workerErrors chan<- error) {
	defer wg.Done()

	// a worker failing for a reason unrelated to the deadline is surfaced
	// after every worker has been joined
	defer func() {
		if r := recover(); r != nil {
			workerErrors <- fmt.Errorf("worker %d panicked: %v", worker, r)
		}
	}()

	// lock the goroutine on the actual thread to pin it
	b.config.Runtime.LockOSThread()
	defer b.config.Runtime.UnlockOSThread()

	if worker < b.config.Runtime.NumCPU() {
		if err := b.config.Process.SetAffinity([]int{worker}); err != nil {
			b.config.Log.Debugw("unable to set affinity to a specific cpu, thread might move to another CPU", "cpu", worker, "error", err)
		}
	}

	// allocation-free linear-congruential update, the arithmetic carries no
	// meaning beyond consuming cycles
	state := uint64(worker + 1)

	for !time.Now().After(deadline) {
		for i := 0; i < burnBatchSize; i++ {
			state = state*6364136223846793005 + 1442695040888963407
		}
	}

	burnSink.Store(state)
}
