// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2026 Datadog, Inc.

package main

import (
	"github.com/spf13/cobra"

	"github.com/DataDog/stresskit/stressor"
)

var spikeCmd = &cobra.Command{
	Use:   "spike",
	Short: "Commit a target amount of memory, hold it, then release it",
	Run: func(cmd *cobra.Command, args []string) {
		megabytes, _ := cmd.Flags().GetInt("megabytes")
		holdSeconds, _ := cmd.Flags().GetInt("hold-seconds")
		ramp, _ := cmd.Flags().GetDuration("ramp")

		runSpec(cmd, stressor.SpikeSpec{
			Megabytes:    megabytes,
			HoldSeconds:  holdSeconds,
			RampDuration: ramp,
		})
	},
}

func init() {
	spikeCmd.Flags().Int("megabytes", 0, "amount of memory to commit in MiB")
	spikeCmd.Flags().Int("hold-seconds", 5, "duration to hold the committed memory in seconds")
	spikeCmd.Flags().Duration("ramp", 0, "window to spread the allocation across, 0 allocates flat out")
	_ = cobra.MarkFlagRequired(spikeCmd.Flags(), "megabytes")
}
