// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2026 Datadog, Inc.
package stressor

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/DataDog/stresskit/types"
)

var _ = Describe("Spike allocation refusal", func() {
	var (
		alloc *allocator
		freed int
	)

	BeforeEach(func() {
		freed = 0

		built, err := SpikeSpec{Megabytes: 24, HoldSeconds: 0}.Build(Config{})
		Expect(err).ShouldNot(HaveOccurred())

		alloc = built.(*allocator)

		// the second chunk acquisition is refused by the platform
		calls := 0
		alloc.alloc = func(size int) ([]byte, error) {
			calls++
			if calls == 2 {
				return nil, errors.New("cannot allocate memory")
			}

			return make([]byte, size), nil
		}
		alloc.free = func([]byte) error {
			freed++

			return nil
		}
	})

	It("should surface a resource exhaustion outcome and release the chunks acquired before the refusal", func() {
		outcome := alloc.Run()

		Expect(outcome.Code).To(Equal(types.ExitCodeResourceExhaustion))
		Expect(outcome.Status).To(ContainSubstring("allocation refused"))

		By("retaining no reference to any chunk after the failure path")
		Expect(alloc.allocations).To(BeEmpty())
		Expect(freed).To(Equal(1))
	})
})
