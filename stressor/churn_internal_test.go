// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2026 Datadog, Inc.
package stressor

import (
	"errors"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/DataDog/stresskit/types"
)

var _ = Describe("Churn i/o failure on an owned path", func() {
	It("should surface the failure and still remove the owned file", func() {
		built, err := ChurnSpec{Iterations: 2, BytesPerIteration: 64}.Build(Config{})
		Expect(err).ShouldNot(HaveOccurred())

		churn := built.(*churner)
		churn.sync = func(*os.File) error {
			return errors.New("no space left on device")
		}

		outcome := churn.Run()

		Expect(outcome.Code).To(Equal(types.ExitCodeIOFailure))
		Expect(outcome.Status).To(ContainSubstring("sync"))

		By("running the owned-file cleanup on the failure path")
		matches, err := filepath.Glob(filepath.Join(os.TempDir(), "stresskit-churn-*"))
		Expect(err).ShouldNot(HaveOccurred())
		Expect(matches).To(BeEmpty())
	})
})
