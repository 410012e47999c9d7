package brailleart

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"image/jpeg"
	"io"
	"time"
)

// MJPEGPictures splits a motion jpeg stream into frames at each end of image
// marker and decodes them. Frames are paced at fps. A decode or read error is
// sent as the last picture.
func MJPEGPictures(ctx context.Context, r io.Reader, fps int) <-chan Picture {
	pics := make(chan Picture)
	if fps <= 0 {
		fps = 10
	}
	delay := time.Second / time.Duration(fps)
	go func() {
		defer close(pics)

		send := func(p Picture) bool {
			select {
			case pics <- p:
				return true
			case <-ctx.Done():
				return false
			}
		}

		br := bufio.NewReader(r)
		var buf bytes.Buffer
		for {
			c, err := br.ReadByte()
			if err == io.EOF {
				return
			}
			if err != nil {
				send(Picture{Err: fmt.Errorf("read mjpeg: %w", err)})
				return
			}
			buf.WriteByte(c)

			data := buf.Bytes()
			if len(data) < 2 || data[len(data)-2] != 0xff || data[len(data)-1] != 0xd9 {
				continue
			}
			img, err := jpeg.Decode(&buf)
			buf.Reset()
			if err != nil {
				send(Picture{Err: fmt.Errorf("decode mjpeg frame: %w", err)})
				return
			}
			if !send(Picture{Image: img, Delay: delay}) {
				return
			}
		}
	}()
	return pics
}
