// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2026 Datadog, Inc.
package stressor_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	. "github.com/DataDog/stresskit/stressor"
	"github.com/DataDog/stresskit/types"
)

var _ = Describe("Wait", func() {
	var config Config

	BeforeEach(func() {
		config = Config{Log: log}
	})

	Context("with dry run mode enabled", func() {
		BeforeEach(func() {
			config.DryRun = true
		})

		It("should return success immediately without blocking", func() {
			waiter, err := WaitSpec{DurationMs: 5000, ExitCode: 7}.Build(config)
			Expect(err).ShouldNot(HaveOccurred())

			started := time.Now()
			outcome := waiter.Run()

			Expect(outcome.Code).To(Equal(types.ExitCodeSuccess))
			Expect(time.Since(started)).To(BeNumerically("<", time.Second))
		})
	})

	Context("with a zero duration", func() {
		It("should return the configured exit code immediately", func() {
			waiter, err := WaitSpec{DurationMs: 0, ExitCode: 7}.Build(config)
			Expect(err).ShouldNot(HaveOccurred())

			started := time.Now()
			outcome := waiter.Run()

			Expect(outcome.Code).To(Equal(7))
			Expect(time.Since(started)).To(BeNumerically("<", time.Second))
		})
	})

	Context("with a short duration", func() {
		It("should block for at least the configured duration", func() {
			waiter, err := WaitSpec{DurationMs: 50}.Build(config)
			Expect(err).ShouldNot(HaveOccurred())

			started := time.Now()
			outcome := waiter.Run()

			Expect(outcome.Code).To(Equal(types.ExitCodeSuccess))
			Expect(time.Since(started)).To(BeNumerically(">=", 50*time.Millisecond))
		})
	})

	Context("with an exit code outside the platform range", func() {
		It("should truncate the code to its low 8 bits", func() {
			waiter, err := WaitSpec{DurationMs: 0, ExitCode: 300}.Build(config)
			Expect(err).ShouldNot(HaveOccurred())

			Expect(waiter.Run().Code).To(Equal(300 & 0xff))
		})
	})

	Context("with a negative duration", func() {
		It("should return a configuration error before any side effect", func() {
			_, err := WaitSpec{DurationMs: -1}.Build(config)

			Expect(err).Should(HaveOccurred())
			Expect(types.OutcomeFromError(err).Code).To(Equal(types.ExitCodeConfigurationError))
		})
	})
})
