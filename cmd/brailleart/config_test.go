package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/codegangsta/cli"
	"github.com/kevin-cantwell/brailleart"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

func contextFor(args ...string) *cli.Context {
	set := flag.NewFlagSet("brailleart", flag.ContinueOnError)
	for _, f := range conversionFlags {
		f.Apply(set)
	}
	Expect(set.Parse(args)).To(Succeed())
	return cli.NewContext(cli.NewApp(), set, nil)
}

var _ = Describe("configFrom", func() {
	It("applies flags", func() {
		cfg, err := configFrom(contextFor(
			"--width", "40",
			"--color-threshold", "200",
			"--alpha-threshold", "10",
			"--x-offset", "-3",
			"--background", "black",
			"--invert",
		))
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.Columns).To(Equal(40))
		Expect(cfg.Thresholds).To(Equal(brailleart.Thresholds{Color: 200, Alpha: 10}))
		Expect(cfg.XOffset).To(Equal(-3))
		Expect(cfg.YOffset).To(BeZero())
		Expect(cfg.Background).To(Equal(brailleart.BackgroundBlack))
		Expect(cfg.Adjust.Invert).To(BeTrue())
		Expect(cfg.Adjust.Gamma).To(BeZero())
	})

	It("keeps flag defaults without a config file", func() {
		cfg, err := configFrom(contextFor("--width", "12"))
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.Thresholds).To(Equal(brailleart.DefaultThresholds()))
		Expect(cfg.Filter).To(Equal(brailleart.DefaultFilter))
		Expect(cfg.Adjust.IsZero()).To(BeTrue())
	})

	It("rejects out of range thresholds", func() {
		_, err := configFrom(contextFor("--width", "12", "--color-threshold", "300"))
		Expect(err).To(HaveOccurred())
		Expect(err.(cli.ExitCoder).ExitCode()).To(Equal(2))
	})

	Context("with a config file", func() {
		var dir string

		BeforeEach(func() {
			var err error
			dir, err = os.MkdirTemp("", "brailleart")
			Expect(err).NotTo(HaveOccurred())
		})

		AfterEach(func() {
			os.RemoveAll(dir)
		})

		It("lets set flags override the file", func() {
			path := filepath.Join(dir, "config.yaml")
			body := "columns: 30\nthresholds:\n  color: 90\n  alpha: 20\nfilter: nearest\n"
			Expect(os.WriteFile(path, []byte(body), 0o644)).To(Succeed())

			cfg, err := configFrom(contextFor("--config", path, "--alpha-threshold", "50"))
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.Columns).To(Equal(30))
			Expect(cfg.Thresholds).To(Equal(brailleart.Thresholds{Color: 90, Alpha: 50}))
			Expect(cfg.Filter).To(Equal("nearest"))
		})
	})
})

var _ = Describe("quiet", func() {
	It("swallows cancellation only", func() {
		Expect(quiet(nil)).To(Succeed())
		Expect(quiet(fmt.Errorf("play: %w", context.Canceled))).To(Succeed())
		Expect(quiet(context.DeadlineExceeded)).To(MatchError(context.DeadlineExceeded))
	})
})
