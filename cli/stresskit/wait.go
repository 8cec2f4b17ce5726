// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2026 Datadog, Inc.

package main

import (
	"github.com/spf13/cobra"

	"github.com/DataDog/stresskit/stressor"
)

var waitCmd = &cobra.Command{
	Use:   "wait",
	Short: "Block for a fixed duration, then exit with the configured code",
	Run: func(cmd *cobra.Command, args []string) {
		durationMs, _ := cmd.Flags().GetInt64("duration-ms")
		exitCode, _ := cmd.Flags().GetInt("exit-code")

		runSpec(cmd, stressor.WaitSpec{
			DurationMs: durationMs,
			ExitCode:   exitCode,
		})
	},
}

func init() {
	waitCmd.Flags().Int64("duration-ms", 0, "duration to block in milliseconds")
	waitCmd.Flags().Int("exit-code", 0, "exit code to yield once the wait completes")
	_ = cobra.MarkFlagRequired(waitCmd.Flags(), "duration-ms")
}
