// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"os"
	"path/filepath"
	"testing"

	ginkgo "github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"

	"github.com/ava-labs/prng/utils/sampler"
)

func TestCLI(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "prng command test suite")
}

var _ = ginkgo.Describe("[Seeded sampling]", func() {
	ginkgo.DescribeTable("reproduces a sequence from its seed",
		func(engine sampler.Engine) {
			args := []string{"--engine=" + engine.String(), "--seed-phrase=reproducible", "-n", "10", "pick", "a", "b", "c", "d"}

			first, _, err := runCommand(args...)
			gomega.Expect(err).Should(gomega.BeNil())
			gomega.Expect(first).Should(gomega.HaveLen(10))

			second, _, err := runCommand(args...)
			gomega.Expect(err).Should(gomega.BeNil())
			gomega.Expect(second).Should(gomega.Equal(first))
		},
		ginkgo.Entry("mt19937", sampler.MT19937),
		ginkgo.Entry("mt19937_64", sampler.MT19937_64),
		ginkgo.Entry("xoshiro256++", sampler.Xoshiro256PlusPlus),
		ginkgo.Entry("chacha20", sampler.ChaCha20),
	)

	ginkgo.It("rejects a seed together with a seed phrase", func() {
		_, _, err := runCommand("--seed=1", "--seed-phrase=one", "bool")
		gomega.Expect(err).Should(gomega.HaveOccurred())
	})
})

var _ = ginkgo.Describe("[Config file]", ginkgo.Ordered, func() {
	var configFile string

	ginkgo.BeforeAll(func() {
		dir, err := os.MkdirTemp("", "prng-config")
		gomega.Expect(err).Should(gomega.BeNil())
		ginkgo.DeferCleanup(os.RemoveAll, dir)

		configFile = filepath.Join(dir, "config.json")
		err = os.WriteFile(configFile, []byte(`{"engine": "xoshiro256++", "seed": 11, "count": 4}`), 0o600)
		gomega.Expect(err).Should(gomega.BeNil())
	})

	ginkgo.It("reads the sample count from the file", func() {
		lines, _, err := runCommand("--config-file="+configFile, "bool")
		gomega.Expect(err).Should(gomega.BeNil())
		gomega.Expect(lines).Should(gomega.HaveLen(4))
	})

	ginkgo.It("matches the flags it stands in for", func() {
		fromFile, _, err := runCommand("--config-file="+configFile, "index", "--size=1000")
		gomega.Expect(err).Should(gomega.BeNil())

		fromFlags, _, err := runCommand("--engine=xoshiro256++", "--seed=11", "-n", "4", "index", "--size=1000")
		gomega.Expect(err).Should(gomega.BeNil())
		gomega.Expect(fromFile).Should(gomega.Equal(fromFlags))
	})

	ginkgo.It("lets flags override the file", func() {
		lines, _, err := runCommand("--config-file="+configFile, "-n", "2", "bool")
		gomega.Expect(err).Should(gomega.BeNil())
		gomega.Expect(lines).Should(gomega.HaveLen(2))
	})
})

var _ = ginkgo.Describe("[Precondition violations]", func() {
	ginkgo.DescribeTable("fail with an invalid argument",
		func(args []string) {
			lines, _, err := runCommand(args...)
			gomega.Expect(err).Should(gomega.MatchError(sampler.ErrInvalidArgument))
			gomega.Expect(lines).Should(gomega.BeEmpty())
		},
		ginkgo.Entry("empty index", []string{"index", "--size=0"}),
		ginkgo.Entry("empty pick", []string{"pick"}),
		ginkgo.Entry("chance above one", []string{"bool", "--chance=2"}),
		ginkgo.Entry("reversed range", []string{"number", "--floor=1", "--ceil=0"}),
		ginkgo.Entry("negative subset", []string{"subset", "--size=-2", "a"}),
	)
})
