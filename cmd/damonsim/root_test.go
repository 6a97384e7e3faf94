package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/damonsim/config"
)

func execute(args ...string) (string, string, error) {
	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)

	cmd := newRootCmd()
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return stdout.String(), stderr.String(), err
}

func setenv(key, value string) {
	Expect(os.Setenv(key, value)).To(Succeed())
	DeferCleanup(os.Unsetenv, key)
}

var _ = Describe("damonsim", func() {
	It("should print the reference scenario", func() {
		out, _, err := execute(
			"--cycles", "1",
			"--realtime=false",
			"--pattern", "1111111000 1110000000",
		)

		Expect(err).NotTo(HaveOccurred())

		lines := strings.Split(out, "\n")
		Expect(lines[0]).To(Equal("Monitoring Cycle 1:"))
		Expect(lines[1]).To(Equal("Region 0 split into Region 0 and Region 10"))
		Expect(lines[2]).To(Equal("Region 1 and Region 2 merged into Region 1"))
		Expect(lines).To(ContainElement(
			"Region 10: Start=5, End=10, Size=5, Accessed Pages=0/5"))
	})

	It("should run the configured number of cycles", func() {
		out, _, err := execute("--cycles", "3", "--realtime=false", "--seed", "5")

		Expect(err).NotTo(HaveOccurred())
		Expect(strings.Count(out, "Monitoring Cycle")).To(Equal(3))
		Expect(strings.Count(out, "Region Monitoring Results:")).To(Equal(3))
	})

	It("should read the environment and let flags win", func() {
		setenv(config.EnvNumCycles, "2")
		setenv(config.EnvRealTime, "false")

		out, _, err := execute("--seed", "1")
		Expect(err).NotTo(HaveOccurred())
		Expect(strings.Count(out, "Monitoring Cycle")).To(Equal(2))

		out, _, err = execute("--seed", "1", "--cycles", "1")
		Expect(err).NotTo(HaveOccurred())
		Expect(strings.Count(out, "Monitoring Cycle")).To(Equal(1))
	})

	It("should load an env file", func() {
		envFile := filepath.Join(GinkgoT().TempDir(), "run.env")
		Expect(os.WriteFile(envFile,
			[]byte("DAMON_NUM_CYCLES=2\nDAMON_REALTIME=false\n"), 0o600)).
			To(Succeed())
		DeferCleanup(os.Unsetenv, config.EnvNumCycles)
		DeferCleanup(os.Unsetenv, config.EnvRealTime)

		out, _, err := execute("--env-file", envFile, "--seed", "3")

		Expect(err).NotTo(HaveOccurred())
		Expect(strings.Count(out, "Monitoring Cycle")).To(Equal(2))
	})

	It("should log the cycles when verbose", func() {
		_, errOut, err := execute(
			"--cycles", "1",
			"--realtime=false",
			"--pattern", "1111111000 1110000000",
			"--verbose",
		)

		Expect(err).NotTo(HaveOccurred())
		Expect(errOut).To(ContainSubstring("cycle 1/1 started"))
		Expect(errOut).To(ContainSubstring("sim.TickEvent -> Damon"))
		Expect(errOut).To(ContainSubstring(
			"Completed 1 cycles: 1 splits, 4 merges"))
	})

	It("should reject invalid configurations", func() {
		_, _, err := execute("--pages", "0")

		Expect(err).To(MatchError(config.ErrInvalidConfig))
	})

	It("should reject malformed patterns", func() {
		_, _, err := execute("--cycles", "1", "--realtime=false",
			"--pattern", "10a1")

		Expect(err).To(HaveOccurred())
	})

	It("should record into the output database", func() {
		output := filepath.Join(GinkgoT().TempDir(), "run")

		_, _, err := execute("--cycles", "2", "--realtime=false",
			"--seed", "9", "--record", "--output", output)

		Expect(err).NotTo(HaveOccurred())
		Expect(output + ".sqlite3").To(BeAnExistingFile())
	})
})
