// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2026 Datadog, Inc.

//go:build linux

package stressor

import "golang.org/x/sys/unix"

// allocateChunk allocates anonymous memory pages using mmap with MAP_POPULATE
// to ensure physical pages are allocated immediately, a refusal surfaces as
// an error instead of aborting the process the way a failed make would
func allocateChunk(size int) ([]byte, error) {
	return unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANONYMOUS|unix.MAP_PRIVATE|unix.MAP_POPULATE)
}

// releaseChunk releases memory previously allocated with allocateChunk
func releaseChunk(chunk []byte) error {
	return unix.Munmap(chunk)
}
