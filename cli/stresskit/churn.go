// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2026 Datadog, Inc.

package main

import (
	"github.com/spf13/cobra"

	"github.com/DataDog/stresskit/stressor"
)

var churnCmd = &cobra.Command{
	Use:   "churn",
	Short: "Repeatedly write a payload to a file and read it back",
	Run: func(cmd *cobra.Command, args []string) {
		iterations, _ := cmd.Flags().GetInt("iterations")
		bytesPerIteration, _ := cmd.Flags().GetInt("bytes")
		filePath, _ := cmd.Flags().GetString("file")

		runSpec(cmd, stressor.ChurnSpec{
			Iterations:        iterations,
			BytesPerIteration: bytesPerIteration,
			FilePath:          filePath,
		})
	},
}

func init() {
	churnCmd.Flags().Int("iterations", 0, "number of write and read cycles")
	churnCmd.Flags().Int("bytes", 0, "payload size per iteration in bytes")
	churnCmd.Flags().String("file", "", "file to churn, defaults to a generated temp file removed on exit")
	_ = cobra.MarkFlagRequired(churnCmd.Flags(), "iterations")
	_ = cobra.MarkFlagRequired(churnCmd.Flags(), "bytes")
}
