// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2026 Datadog, Inc.

package stressor

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/DataDog/stresskit/types"
)

// ChurnSpec configures the disk churn stressor, repeatedly writing a payload
// to a file and reading it back
type ChurnSpec struct {
	Iterations        int `validate:"gte=0"`
	BytesPerIteration int `validate:"gte=0"`
	// FilePath, when empty, is replaced by a generated path under the
	// platform temp directory which is owned by the run and removed on
	// every exit path, an explicit path stays caller-owned and is never
	// deleted
	FilePath string
}

func (ChurnSpec) GetStressorKind() types.StressorKindName {
	return types.StressorKindChurn
}

func (s ChurnSpec) Build(config Config) (Stressor, error) {
	if err := validateSpec(s.GetStressorKind(), s); err != nil {
		return nil, err
	}

	return &churner{config: config.withDefaults(), spec: s, sync: syncFile}, nil
}

type churner struct {
	config Config
	spec   ChurnSpec

	// sync defaults to the platform implementation, tests swap it to
	// simulate a failing i/o path
	sync func(*os.File) error
}

func (*churner) GetStressorKind() types.StressorKindName {
	return types.StressorKindChurn
}

func (c *churner) Run() types.ExitOutcome {
	// early exit if dry-run mode is enabled
	if c.config.DryRun {
		c.config.Log.Debug("churn dry run mode activated, skipping i/o, no file created")

		return types.Success(fmt.Sprintf("dry run: would churn %d iterations of %d bytes", c.spec.Iterations, c.spec.BytesPerIteration))
	}

	path := c.spec.FilePath
	owned := path == ""

	if owned {
		path = filepath.Join(os.TempDir(), fmt.Sprintf("stresskit-churn-%s.dat", uuid.New()))

		// the owned file lifecycle is uniform, it is created then removed
		// even when there is no iteration to run
		created, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, 0o600)
		if err != nil {
			return types.OutcomeFromError(types.IOFailure{Op: "create", Path: path, Err: err})
		}

		_ = created.Close()

		defer func() {
			if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
				c.config.Log.Warnw("unable to remove owned churn file", "path", path, "error", err)
			}
		}()
	}

	payload := make([]byte, c.spec.BytesPerIteration)
	rand.New(rand.NewSource(time.Now().UnixNano())).Read(payload)

	c.config.Log.Infow("starting i/o churn", "path", path, "iterations", c.spec.Iterations, "bytes_per_iteration", c.spec.BytesPerIteration, "owned", owned)

	for iteration := 0; iteration < c.spec.Iterations; iteration++ {
		if err := c.writePayload(path, payload); err != nil {
			return types.OutcomeFromError(err)
		}

		read, err := os.ReadFile(path)
		if err != nil {
			return types.OutcomeFromError(types.IOFailure{Op: "read", Path: path, Err: err})
		}

		if len(read) != len(payload) {
			return types.OutcomeFromError(types.IOFailure{Op: "read", Path: path, Err: fmt.Errorf("read %d bytes back, wrote %d", len(read), len(payload))})
		}
	}

	return types.Success(fmt.Sprintf("churned %d iterations of %d bytes on %s", c.spec.Iterations, c.spec.BytesPerIteration, path))
}

// writePayload replaces the file contents with the payload and forces it
// through the i/o path rather than leaving it in the page cache
func (c *churner) writePayload(path string, payload []byte) error {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o600)
	if err != nil {
		return types.IOFailure{Op: "open", Path: path, Err: err}
	}

	defer func() {
		_ = file.Close()
	}()

	if _, err := file.Write(payload); err != nil {
		return types.IOFailure{Op: "write", Path: path, Err: err}
	}

	if err := c.sync(file); err != nil {
		return types.IOFailure{Op: "sync", Path: path, Err: err}
	}

	return nil
}
