// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2026 Datadog, Inc.

package main

import (
	"github.com/spf13/cobra"

	"github.com/DataDog/stresskit/stressor"
)

var exitCmd = &cobra.Command{
	Use:   "exit",
	Short: "Exit immediately with the chosen code",
	Run: func(cmd *cobra.Command, args []string) {
		code, _ := cmd.Flags().GetInt("code")

		runSpec(cmd, stressor.ExitSpec{Code: code})
	},
}

func init() {
	exitCmd.Flags().Int("code", 0, "exit code to terminate with")
	_ = cobra.MarkFlagRequired(exitCmd.Flags(), "code")
}
