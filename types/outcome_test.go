// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2026 Datadog, Inc.
package types_test

import (
	"errors"
	"fmt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/DataDog/stresskit/types"
)

var _ = Describe("ExitOutcome", func() {
	DescribeTable(
		"WithCode truncates to the platform exit-code range",
		func(code int, expected int) {
			Expect(types.WithCode(code, "").Code).To(Equal(expected))
		},
		Entry("in-range code passes through", 7, 7),
		Entry("255 passes through", 255, 255),
		Entry("256 wraps to 0", 256, 0),
		Entry("300 keeps its low 8 bits", 300, 44),
		Entry("negative code keeps its low 8 bits", -1, 255),
	)

	DescribeTable(
		"OutcomeFromError maps each failure class to its distinct code",
		func(err error, expected int) {
			Expect(types.OutcomeFromError(err).Code).To(Equal(expected))
		},
		Entry("configuration error",
			types.ConfigurationError{Kind: types.StressorKindBurn, Field: "Parallelism", Value: 0, Reason: "must be at least 1"},
			types.ExitCodeConfigurationError),
		Entry("wrapped configuration error",
			fmt.Errorf("building spec: %w", types.ConfigurationError{Kind: types.StressorKindSpike, Field: "Megabytes", Value: -1, Reason: "must be non-negative"}),
			types.ExitCodeConfigurationError),
		Entry("resource exhaustion",
			types.ResourceExhaustionError{RequestedBytes: 1 << 40, CommittedBytes: 1 << 30, Err: errors.New("cannot allocate memory")},
			types.ExitCodeResourceExhaustion),
		Entry("i/o failure",
			types.IOFailure{Op: "write", Path: "/tmp/churn.dat", Err: errors.New("no space left on device")},
			types.ExitCodeIOFailure),
		Entry("anything else",
			errors.New("unexpected"),
			types.ExitCodeUnrecoverableError),
	)

	Specify("Failed reports non-zero outcomes", func() {
		Expect(types.Success("done").Failed()).To(BeFalse())
		Expect(types.ExitOutcome{Code: types.ExitCodeIOFailure}.Failed()).To(BeTrue())
	})

	Specify("error causes stay reachable through Unwrap", func() {
		cause := errors.New("cannot allocate memory")
		err := types.ResourceExhaustionError{RequestedBytes: 1, CommittedBytes: 0, Err: cause}

		Expect(errors.Is(err, cause)).To(BeTrue())
	})
})
