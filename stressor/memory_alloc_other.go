// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2026 Datadog, Inc.

//go:build !linux

package stressor

// allocateChunk allocates a chunk from the runtime heap, commitment is
// forced by the page touch performed by the caller
func allocateChunk(size int) ([]byte, error) {
	return make([]byte, size), nil
}

// releaseChunk is a no-op, dropping the reference is enough for the runtime
// to reclaim the chunk
func releaseChunk([]byte) error {
	return nil
}
