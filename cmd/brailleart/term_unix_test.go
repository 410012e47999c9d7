//go:build unix

package main

import (
	"os"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("terminalSizeOf", func() {
	It("fails for a redirected output file", func() {
		f, err := os.CreateTemp("", "brailleart")
		Expect(err).NotTo(HaveOccurred())
		defer os.Remove(f.Name())
		defer f.Close()

		cols, lines, err := terminalSizeOf(f)
		Expect(err).To(HaveOccurred())
		Expect(cols).To(Equal(-1))
		Expect(lines).To(Equal(-1))
	})
})
