// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2026 Datadog, Inc.

package main

import (
	"github.com/spf13/cobra"

	"github.com/DataDog/stresskit/stressor"
)

var burnCmd = &cobra.Command{
	Use:   "burn",
	Short: "Load CPUs with compute-bound workers until a deadline fires",
	Run: func(cmd *cobra.Command, args []string) {
		seconds, _ := cmd.Flags().GetInt("seconds")
		prioritize, _ := cmd.Flags().GetBool("prioritize")

		spec := stressor.BurnSpec{
			Seconds:    seconds,
			Prioritize: prioritize,
		}

		// an unset parallelism defaults to the logical CPU count inside the
		// engine, an explicit value is validated there (must be >= 1)
		if cmd.Flags().Changed("parallelism") {
			parallelism, _ := cmd.Flags().GetInt("parallelism")
			spec.Parallelism = &parallelism
		}

		runSpec(cmd, spec)
	},
}

func init() {
	burnCmd.Flags().Int("seconds", 0, "duration of the CPU load in seconds")
	burnCmd.Flags().Int("parallelism", 0, "number of workers, defaults to the number of logical CPUs")
	burnCmd.Flags().Bool("prioritize", false, "raise the process group scheduling priority before starting")
	_ = cobra.MarkFlagRequired(burnCmd.Flags(), "seconds")
}
