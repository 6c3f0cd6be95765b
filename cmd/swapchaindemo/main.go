// Command swapchaindemo drives a swapchain render loop against the
// headless compositor and writes the last presented frame as a PNG.
package main

import (
	"context"
	"flag"
	"image"
	"image/color"
	"image/png"
	"log"
	"log/slog"
	"os"
	"os/signal"

	"github.com/gogpu/gputypes"
	"golang.org/x/image/draw"
	"golang.org/x/sync/errgroup"

	"github.com/gogpu/swapchain"
	"github.com/gogpu/swapchain/ca"
	"github.com/gogpu/swapchain/ca/headless"
)

// demoDevice stands in for a GPU device.
type demoDevice struct{}

func (demoDevice) Poll(wait bool) {}
func (demoDevice) Destroy()       {}

func (demoDevice) MapFormat(f gputypes.TextureFormat) ca.PixelFormat { return ca.MapFormat(f) }

func (demoDevice) Capabilities() swapchain.Capabilities {
	return swapchain.Capabilities{CanSetNextDrawableTimeout: true, CanSetDisplaySync: true}
}

func (demoDevice) Raw() ca.DeviceHandle { return 1 }

func main() {
	var (
		width   = flag.Float64("width", 400, "view width in points")
		height  = flag.Float64("height", 300, "view height in points")
		scale   = flag.Float64("scale", 2, "window backing scale factor")
		frames  = flag.Int("frames", 60, "frames to render")
		output  = flag.String("output", "swapchain.png", "output file")
		verbose = flag.Bool("v", false, "log swapchain activity")
	)
	flag.Parse()

	if *verbose {
		swapchain.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	view := headless.NewView(nil)
	view.SetFrame(ca.NewRect(0, 0, *width, *height))
	headless.NewWindow(*scale).AddView(view)

	s := swapchain.FromView(headless.New(), view, swapchain.NewLayerDelegate(),
		swapchain.WithProfile(swapchain.DesktopProfile))
	defer s.Dispose()

	size := s.Dimensions()
	cfg := swapchain.NewConfiguration(nil, size.Width, size.Height)
	if err := s.Configure(demoDevice{}, cfg); err != nil {
		log.Fatalf("Failed to configure: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return renderLoop(ctx, s, *frames)
	})
	if err := g.Wait(); err != nil {
		log.Fatalf("Render loop failed: %v", err)
	}

	layer := s.Layer().(*headless.SurfaceLayer)
	frame := layer.Presented()
	if frame == nil {
		log.Fatalf("No frame was presented")
	}
	if err := savePNG(*output, frame); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("Presented %d frames, saved %s (%dx%d)\n", layer.PresentCount(), *output, size.Width, size.Height)
}

func renderLoop(ctx context.Context, s *swapchain.Surface, frames int) error {
	for i := 0; i < frames; i++ {
		if err := ctx.Err(); err != nil {
			return nil
		}
		acquired, err := s.AcquireTexture(0)
		if err != nil {
			return err
		}
		if acquired == nil {
			continue
		}
		st := acquired.Texture
		if tex, ok := st.Texture.Raw.(*headless.Texture); ok {
			drawFrame(tex.Image(), float64(i)/float64(frames))
		}
		st.Present()
	}
	return nil
}

// drawFrame paints a background and a bar whose position tracks t.
func drawFrame(img *image.RGBA, t float64) {
	b := img.Bounds()
	draw.Draw(img, b, &image.Uniform{C: color.RGBA{R: 24, G: 32, B: 64, A: 255}}, image.Point{}, draw.Src)

	w := b.Dx() / 8
	x := b.Min.X + int(t*float64(b.Dx()-w))
	bar := image.Rect(x, b.Min.Y+b.Dy()/4, x+w, b.Max.Y-b.Dy()/4)
	draw.Draw(img, bar, &image.Uniform{C: color.RGBA{R: 255, G: 160, B: 0, A: 255}}, image.Point{}, draw.Src)
}

func savePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
