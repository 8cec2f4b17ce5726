// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2026 Datadog, Inc.
package stressor_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	. "github.com/DataDog/stresskit/stressor"
	"github.com/DataDog/stresskit/types"
)

var _ = Describe("Spike", func() {
	var (
		config   Config
		progress []int
	)

	BeforeEach(func() {
		progress = nil
		config = Config{
			Log: log,
			OnProgress: func(committedMB int) {
				progress = append(progress, committedMB)
			},
		}
	})

	Context("with dry run mode enabled", func() {
		BeforeEach(func() {
			config.DryRun = true
		})

		It("should return success with zero allocation", func() {
			allocator, err := SpikeSpec{Megabytes: 16}.Build(config)
			Expect(err).ShouldNot(HaveOccurred())

			Expect(allocator.Run().Code).To(Equal(types.ExitCodeSuccess))
			Expect(progress).To(BeEmpty())
		})
	})

	Context("with a target fitting exactly two chunks", func() {
		It("should commit 16 MiB as two 8 MiB chunks and report progress after each", func() {
			allocator, err := SpikeSpec{Megabytes: 16, HoldSeconds: 0}.Build(config)
			Expect(err).ShouldNot(HaveOccurred())

			outcome := allocator.Run()

			Expect(outcome.Code).To(Equal(types.ExitCodeSuccess))
			Expect(outcome.Status).To(ContainSubstring("2 chunks"))
			Expect(progress).To(Equal([]int{8, 16}))
		})
	})

	Context("with a target leaving a remainder", func() {
		It("should size the final chunk to the remainder", func() {
			allocator, err := SpikeSpec{Megabytes: 12, HoldSeconds: 0}.Build(config)
			Expect(err).ShouldNot(HaveOccurred())

			outcome := allocator.Run()

			Expect(outcome.Code).To(Equal(types.ExitCodeSuccess))
			Expect(outcome.Status).To(ContainSubstring("2 chunks"))
			Expect(progress).To(Equal([]int{8, 12}))
		})
	})

	Context("with a zero target", func() {
		It("should succeed without allocating anything", func() {
			allocator, err := SpikeSpec{Megabytes: 0, HoldSeconds: 0}.Build(config)
			Expect(err).ShouldNot(HaveOccurred())

			Expect(allocator.Run().Code).To(Equal(types.ExitCodeSuccess))
			Expect(progress).To(BeEmpty())
		})
	})

	Context("with a negative target", func() {
		It("should return a configuration error before any allocation", func() {
			_, err := SpikeSpec{Megabytes: -1}.Build(config)

			Expect(err).Should(HaveOccurred())
			Expect(types.OutcomeFromError(err).Code).To(Equal(types.ExitCodeConfigurationError))
			Expect(progress).To(BeEmpty())
		})
	})
})
