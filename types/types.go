// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2026 Datadog, Inc.

package types

// StressorKindName represents a stressor kind
type StressorKindName string

const (
	// StressorKindWait is a stressor blocking for a fixed duration
	StressorKindWait StressorKindName = "wait"
	// StressorKindBurn is a CPU load stressor bounded by a deadline
	StressorKindBurn StressorKindName = "burn"
	// StressorKindSpike is a memory allocation stressor
	StressorKindSpike StressorKindName = "spike"
	// StressorKindChurn is a disk I/O stressor
	StressorKindChurn StressorKindName = "churn"
	// StressorKindExit is a stressor terminating with a chosen exit code
	StressorKindExit StressorKindName = "exit"
)

// StressorKindNames contains all existing stressor kinds, mostly
// useful for the CLI adapter to enumerate subcommands
var StressorKindNames = []StressorKindName{
	StressorKindWait,
	StressorKindBurn,
	StressorKindSpike,
	StressorKindChurn,
	StressorKindExit,
}
