package brailleart

import (
	"context"
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	"time"

	"github.com/disintegration/imaging"
)

// Picture is one still of an animation.
type Picture struct {
	Image image.Image
	Delay time.Duration
	Err   error
}

// GIFPictures composites the frames of g onto a full size screen, respecting
// disposal methods, and sends a snapshot of the screen for every frame. loops
// overrides g.LoopCount when positive. The channel is closed when playback
// ends or ctx is done. A gif without frames yields a single ErrNoImage
// picture.
func GIFPictures(ctx context.Context, g *gif.GIF, loops int) <-chan Picture {
	pics := make(chan Picture)
	go func() {
		defer close(pics)

		if len(g.Image) == 0 {
			select {
			case pics <- Picture{Err: ErrNoImage}:
			case <-ctx.Done():
			}
			return
		}

		rounds := loops
		if rounds <= 0 {
			switch {
			case g.LoopCount == 0:
				rounds = -1 // forever
			case g.LoopCount < 0:
				rounds = 1
			default:
				rounds = g.LoopCount + 1
			}
		}

		bounds := image.Rect(0, 0, g.Config.Width, g.Config.Height)
		if bounds.Empty() {
			bounds = g.Image[0].Bounds()
		}
		for c := 0; rounds < 0 || c < rounds; c++ {
			screen := image.NewNRGBA(bounds)
			for i, frame := range g.Image {
				var previous *image.NRGBA
				if disposal(g, i) == gif.DisposalPrevious {
					previous = imaging.Clone(screen)
				}
				draw.Draw(screen, frame.Bounds(), frame, frame.Bounds().Min, draw.Over)

				var delay time.Duration
				if i < len(g.Delay) {
					delay = time.Duration(g.Delay[i]) * time.Second / 100
				}
				select {
				case pics <- Picture{Image: imaging.Clone(screen), Delay: delay}:
				case <-ctx.Done():
					return
				}

				switch disposal(g, i) {
				// Dispose previous essentially means draw then undo.
				case gif.DisposalPrevious:
					screen = previous
				// Dispose background clears everything just drawn.
				case gif.DisposalBackground:
					draw.Draw(screen, frame.Bounds(), image.NewUniform(color.Transparent), image.Point{}, draw.Src)
				}
			}
		}
	}()
	return pics
}

func disposal(g *gif.GIF, i int) byte {
	if i < len(g.Disposal) {
		return g.Disposal[i]
	}
	return 0
}
