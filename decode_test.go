package brailleart_test

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"

	"github.com/kevin-cantwell/brailleart"
	"golang.org/x/image/bmp"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Decode", func() {
	It("decodes png", func() {
		var buf bytes.Buffer
		Expect(png.Encode(&buf, opaque(6, 3, color.Black))).To(Succeed())
		img, err := brailleart.Decode(&buf)
		Expect(err).NotTo(HaveOccurred())
		Expect(img.Bounds()).To(Equal(image.Rect(0, 0, 6, 3)))
	})

	It("decodes bmp", func() {
		var buf bytes.Buffer
		Expect(bmp.Encode(&buf, opaque(4, 4, color.White))).To(Succeed())
		img, err := brailleart.Decode(&buf)
		Expect(err).NotTo(HaveOccurred())
		Expect(img.Bounds().Dx()).To(Equal(4))
	})

	It("fails on garbage", func() {
		_, err := brailleart.Decode(bytes.NewBufferString("not an image"))
		Expect(err).To(HaveOccurred())
	})

	It("fails on a gif without frames", func() {
		_, err := brailleart.DecodeGIF(bytes.NewBufferString("GIF89a"))
		Expect(err).To(HaveOccurred())
	})
})

var _ = Describe("Open", func() {
	ctx := context.Background()

	It("opens files", func() {
		dir, err := os.MkdirTemp("", "brailleart")
		Expect(err).NotTo(HaveOccurred())
		defer os.RemoveAll(dir)
		path := filepath.Join(dir, "img.txt")
		Expect(os.WriteFile(path, []byte("pixels"), 0o644)).To(Succeed())

		r, err := brailleart.Open(ctx, path)
		Expect(err).NotTo(HaveOccurred())
		defer r.Close()
		data, err := io.ReadAll(r)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(data)).To(Equal("pixels"))
	})

	It("fetches urls", func() {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/img" {
				http.NotFound(w, r)
				return
			}
			io.WriteString(w, "pixels")
		}))
		defer srv.Close()

		r, err := brailleart.Open(ctx, srv.URL+"/img")
		Expect(err).NotTo(HaveOccurred())
		data, err := io.ReadAll(r)
		r.Close()
		Expect(err).NotTo(HaveOccurred())
		Expect(string(data)).To(Equal("pixels"))

		_, err = brailleart.Open(ctx, srv.URL+"/missing")
		Expect(err).To(MatchError(ContainSubstring("404")))
	})
})
