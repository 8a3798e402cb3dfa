// Command ggwindemo opens an animated multi-window demo shell.
//
// Press "a" to open another window, "q" to close the focused one. The
// process exits when the last window closes.
package main

import (
	"flag"
	"fmt"
	"image"
	"log"
	"math"
	"os"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/draw"

	"github.com/gogpu/ggwin"
	_ "github.com/gogpu/ggwin/driver/glfwdriver"
)

func main() {
	var (
		title  = flag.String("title", "ggwin demo", "first window title")
		width  = flag.Int("width", 500, "window width")
		height = flag.Int("height", 500, "window height")
	)
	flag.Parse()

	face := loadFont()

	app, err := ggwin.NewApp(
		ggwin.WithTitle(*title),
		ggwin.WithSize(*width, *height),
		ggwin.WithIcon(appIcon()),
		ggwin.WithBackground(gg.RGB(0.12, 0.12, 0.16)),
	)
	if err != nil {
		log.Printf("ggwindemo: %v", err)
		os.Exit(ggwin.ExitCode(err))
	}
	caps := app.Capabilities()
	log.Printf("ggwindemo: transparent=%v samples=%d", caps.Transparent, caps.Samples)

	err = app.Run(func(frame uint64, dc *gg.Context) {
		renderFrame(dc, frame, face)
	})
	if err != nil {
		log.Printf("ggwindemo: %v", err)
		os.Exit(ggwin.ExitCode(err))
	}
}

// renderFrame paints one animated frame in logical coordinates.
func renderFrame(dc *gg.Context, frame uint64, face text.Face) {
	w, h := float64(dc.Width()), float64(dc.Height())
	cx, cy := w/2, h/2
	t := float64(frame) / 60

	// Ring of orbiting circles.
	for i := 0; i < 12; i++ {
		angle := float64(i)*math.Pi/6 + t
		x := cx + math.Cos(angle)*w*0.3
		y := cy + math.Sin(angle)*h*0.3

		c := gg.HSL(float64(i)*30, 0.8, 0.6)
		dc.SetColor(c)
		radius := 18 + 6*math.Sin(t*2+float64(i))
		dc.DrawCircle(x, y, radius)
		_ = dc.Fill()
	}

	// Slowly rotating square in the center.
	dc.Push()
	dc.Translate(cx, cy)
	dc.Rotate(t / 2)
	dc.SetRGBA(1, 1, 1, 0.85)
	dc.DrawRoundedRectangle(-40, -40, 80, 80, 10)
	_ = dc.Fill()
	dc.Pop()

	if face != nil {
		dc.SetFont(face)
		dc.SetRGBA(0.8, 0.8, 0.85, 0.9)
		dc.DrawString(fmt.Sprintf("frame %d", frame), 10, h-10)
	}
}

// appIcon renders the window icon and scales it down to the sizes window
// managers commonly pick from.
func appIcon() []image.Image {
	const base = 64
	dc := gg.NewContext(base, base)
	dc.SetRGB(0.12, 0.12, 0.16)
	dc.DrawRoundedRectangle(0, 0, base, base, 12)
	_ = dc.Fill()
	dc.SetRGB(0.95, 0.6, 0.1)
	dc.DrawCircle(base/2, base/2, base/2-10)
	_ = dc.Fill()
	src := image.NewRGBA(image.Rect(0, 0, base, base))
	copy(src.Pix, dc.ResizeTarget().Data())
	_ = dc.Close()

	icons := []image.Image{src}
	for _, size := range []int{32, 16} {
		dst := image.NewRGBA(image.Rect(0, 0, size, size))
		draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
		icons = append(icons, dst)
	}
	return icons
}

// loadFont finds a TTF font for the frame counter. Returns nil if none is
// available; the counter is then skipped.
func loadFont() text.Face {
	candidates := []string{
		"C:\\Windows\\Fonts\\segoeui.ttf",
		"/System/Library/Fonts/Supplemental/Arial.ttf",
		"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
		"/usr/share/fonts/TTF/DejaVuSans.ttf",
	}
	for _, path := range candidates {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		source, err := text.NewFontSourceFromFile(path)
		if err != nil {
			continue
		}
		return source.Face(14)
	}
	return nil
}
