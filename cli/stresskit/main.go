// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2026 Datadog, Inc.

package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/DataDog/stresskit/log"
	"github.com/DataDog/stresskit/stressor"
	"github.com/DataDog/stresskit/types"
)

var rootCmd = &cobra.Command{
	Use:   "stresskit",
	Short: "Datadog controlled resource-exhaustion application",
	Long:  "stresskit deliberately consumes time, CPU, memory or disk I/O for a bounded interval so an operator can observe how the surrounding system reacts",
	Run:   nil,
}

// outcome is produced by exactly one stressor invocation per run and
// forwarded unchanged to the process boundary
var outcome types.ExitOutcome

func init() {
	rootCmd.AddCommand(waitCmd)
	rootCmd.AddCommand(burnCmd)
	rootCmd.AddCommand(spikeCmd)
	rootCmd.AddCommand(churnCmd)
	rootCmd.AddCommand(exitCmd)

	rootCmd.PersistentFlags().Bool("dry-run", false, "validate and preview the stressor without performing any side effect")
	rootCmd.PersistentFlags().Bool("verbose", false, "report progress and status while the stressor runs")

	_ = viper.BindPFlag("dry-run", rootCmd.PersistentFlags().Lookup("dry-run"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	viper.SetEnvPrefix("stresskit")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

// runSpec forwards the validated spec to the engine and keeps the outcome
// for the process exit status
func runSpec(cmd *cobra.Command, spec stressor.Spec) {
	logger := log.FromContext(cmd.Context())

	config := stressor.Config{
		Log:     logger,
		DryRun:  viper.GetBool("dry-run"),
		Verbose: viper.GetBool("verbose"),
	}

	if config.Verbose {
		config.OnProgress = func(committedMB int) {
			logger.Infow("allocation progress", "committed_mb", committedMB)
		}
	}

	outcome = stressor.NewDispatcher(config).Run(spec)

	render(outcome, config.Verbose)
}

// render prints the human status line, failures always, successes only when
// verbose, colors are dropped automatically off a terminal
func render(outcome types.ExitOutcome, verbose bool) {
	if outcome.Status == "" {
		return
	}

	if outcome.Failed() {
		_, _ = color.New(color.FgRed).Fprintln(os.Stderr, outcome.Status)

		return
	}

	if verbose {
		_, _ = color.New(color.FgGreen).Fprintln(os.Stderr, outcome.Status)
	}
}

func main() {
	// prepare logger
	logger, err := log.NewZapLogger()
	if err != nil {
		fmt.Printf("error while creating logger: %v", err)
		os.Exit(2)
	}

	ctx := log.WithLogger(context.Background(), logger)

	// execute command
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(types.ExitCodeConfigurationError)
	}

	_ = logger.Sync()

	os.Exit(outcome.Code)
}
