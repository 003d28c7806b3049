package icon

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

// Sizes are the icon edge lengths the extension manifest references.
var Sizes = []int{16, 48, 128}

var (
	// CircleColor fills the badge behind the marker.
	CircleColor = color.RGBA{R: 74, G: 144, B: 226, A: 255} // #4A90E2
	// MarkerColor shows through wherever the accent bands leave the marker uncovered.
	MarkerColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}

	// AccentColors are painted top to bottom over the marker.
	AccentColors = [3]color.RGBA{
		{R: 255, G: 102, B: 102, A: 255}, // red
		{R: 102, G: 255, B: 178, A: 255}, // green
		{R: 255, G: 204, B: 102, A: 255}, // yellow
	}
)

// bezier control distance for a quarter circle
const kappa = 0.5522847498

// Geometry holds the shape layout for one icon size.
type Geometry struct {
	Size       int
	Padding    int
	Circle     image.Rectangle // bounding box of the badge circle
	Marker     image.Rectangle
	BandHeight int
	Bands      [3]image.Rectangle
}

// Layout computes the geometry for a size x size icon. Marker corners are
// inclusive, so the marker rectangle is one pixel wider and taller than
// size/3 by size/2. Each band covers BandHeight rows; rows left over by the
// floor division stay white.
func Layout(size int) Geometry {
	g := Geometry{Size: size, Padding: size / 10}
	g.Circle = image.Rect(g.Padding, g.Padding, size-g.Padding, size-g.Padding)

	center := size / 2
	w, h := size/3, size/2
	mx, my := center-w/2, center-h/2
	g.Marker = image.Rect(mx, my, mx+w+1, my+h+1)

	g.BandHeight = h / 3
	for i := range g.Bands {
		y := my + i*g.BandHeight
		g.Bands[i] = image.Rect(mx, y, mx+w+1, y+g.BandHeight)
	}
	return g
}

// Render draws the badge at the given size onto a transparent canvas.
func Render(size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	g := Layout(size)

	// The disc is inscribed in the continuous box, so its diameter is
	// size-2*padding with blended edges, not an inclusive-pixel ellipse.
	fillCircle(img, g.Circle, CircleColor)
	draw.Draw(img, g.Marker, image.NewUniform(MarkerColor), image.Point{}, draw.Src)
	for i, band := range g.Bands {
		draw.Draw(img, band, image.NewUniform(AccentColors[i]), image.Point{}, draw.Src)
	}
	return img
}

// fillCircle fills the circle inscribed in box. Edge pixels are blended by
// coverage; pixels outside the box are left untouched.
func fillCircle(img *image.RGBA, box image.Rectangle, c color.RGBA) {
	cx := float32(box.Min.X+box.Max.X) / 2
	cy := float32(box.Min.Y+box.Max.Y) / 2
	r := float32(box.Dx()) / 2
	k := float32(kappa) * r

	b := img.Bounds()
	var z vector.Rasterizer
	z.Reset(b.Dx(), b.Dy())
	z.MoveTo(cx+r, cy)
	z.CubeTo(cx+r, cy+k, cx+k, cy+r, cx, cy+r)
	z.CubeTo(cx-k, cy+r, cx-r, cy+k, cx-r, cy)
	z.CubeTo(cx-r, cy-k, cx-k, cy-r, cx, cy-r)
	z.CubeTo(cx+k, cy-r, cx+r, cy-k, cx+r, cy)
	z.ClosePath()
	z.Draw(img, b, image.NewUniform(c), image.Point{})
}

// FileName returns the conventional file name for an icon of the given size.
func FileName(size int) string {
	return fmt.Sprintf("icon%d.png", size)
}

// EncodePNG returns img encoded as PNG.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteFile encodes img as PNG and writes it to path, replacing any existing
// file. It returns the number of bytes written.
func WriteFile(path string, img image.Image) (int, error) {
	data, err := EncodePNG(img)
	if err != nil {
		return 0, err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return 0, fmt.Errorf("write %s: %w", path, err)
	}
	return len(data), nil
}
