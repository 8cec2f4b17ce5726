// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2026 Datadog, Inc.

//go:build linux

package stressor

import (
	"os"

	"golang.org/x/sys/unix"
)

// syncFile flushes the file data without the metadata round trip a full
// fsync would pay
func syncFile(file *os.File) error {
	return unix.Fdatasync(int(file.Fd()))
}
