package brailleart_test

import (
	"image/color"
	"math/rand"

	"github.com/kevin-cantwell/brailleart"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
)

func uniform(c color.NRGBA) brailleart.Block {
	var b brailleart.Block
	for i := range b {
		b[i] = c
	}
	return b
}

var _ = Describe("Classify", func() {
	defaults := brailleart.DefaultThresholds()

	It("sets every dot of an opaque black block", func() {
		dots := brailleart.Classify(uniform(black), defaults)
		Expect(dots.Rune()).To(Equal(rune(0x28FF)))
	})

	It("sets no dot of an opaque white block", func() {
		dots := brailleart.Classify(uniform(white), defaults)
		Expect(dots.Rune()).To(Equal(rune(0x2800)))
	})

	It("places a lone dark pixel at the least significant bit", func() {
		b := uniform(white)
		b[0] = black
		Expect(brailleart.Classify(b, defaults).Rune()).To(Equal(rune(0x2801)))
	})

	DescribeTable("a transparent block is blank for any thresholds",
		func(colour, alpha int) {
			t := brailleart.Thresholds{Color: colour, Alpha: alpha}
			Expect(brailleart.Classify(brailleart.Block{}, t).Rune()).To(Equal(rune(0x2800)))
		},
		Entry("zero", 0, 0),
		Entry("defaults", 127, 127),
		Entry("max", 255, 255),
		Entry("draw everything", 255, 0),
	)

	DescribeTable("single pixels",
		func(c color.NRGBA, t brailleart.Thresholds, want bool) {
			Expect(t.Dot(c)).To(Equal(want))
		},
		Entry("average equal to the threshold is not drawn",
			color.NRGBA{R: 127, G: 127, B: 127, A: 255}, brailleart.Thresholds{Color: 127, Alpha: 127}, false),
		Entry("average just below the threshold is drawn",
			color.NRGBA{R: 126, G: 127, B: 127, A: 255}, brailleart.Thresholds{Color: 127, Alpha: 127}, true),
		Entry("fraction above the threshold is not drawn",
			color.NRGBA{R: 127, G: 127, B: 128, A: 255}, brailleart.Thresholds{Color: 127, Alpha: 127}, false),
		Entry("alpha equal to the threshold is drawn",
			color.NRGBA{A: 127}, brailleart.Thresholds{Color: 127, Alpha: 127}, true),
		Entry("alpha below the threshold is not drawn",
			color.NRGBA{A: 126}, brailleart.Thresholds{Color: 127, Alpha: 127}, false),
		Entry("color threshold above range draws white",
			white, brailleart.Thresholds{Color: 256, Alpha: 0}, true),
		Entry("negative color threshold draws nothing",
			black, brailleart.Thresholds{Color: -1, Alpha: 0}, false),
		Entry("alpha threshold above range draws nothing",
			black, brailleart.Thresholds{Color: 127, Alpha: 256}, false),
		Entry("negative alpha threshold still skips transparent pixels",
			transparent, brailleart.Thresholds{Color: 127, Alpha: -10}, false),
	)

	It("only removes dots when the alpha threshold rises", func() {
		rng := rand.New(rand.NewSource(1))
		for n := 0; n < 500; n++ {
			var b brailleart.Block
			for i := range b {
				b[i] = color.NRGBA{
					R: uint8(rng.Intn(256)),
					G: uint8(rng.Intn(256)),
					B: uint8(rng.Intn(256)),
					A: uint8(rng.Intn(256)),
				}
			}
			colour := rng.Intn(256)
			lo := rng.Intn(256)
			hi := lo + rng.Intn(256-lo)
			before := brailleart.Classify(b, brailleart.Thresholds{Color: colour, Alpha: lo})
			after := brailleart.Classify(b, brailleart.Thresholds{Color: colour, Alpha: hi})
			for i := range after {
				if after[i] {
					Expect(before[i]).To(BeTrue())
				}
			}
		}
	})
})
