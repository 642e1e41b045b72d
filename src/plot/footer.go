package plot

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/png"

	"github.com/pkg/errors"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// stampFooter decodes a PNG, draws text near its bottom-left corner and re-encodes it.
func stampFooter(encoded []byte, text string) ([]byte, error) {
	img, err := png.Decode(bytes.NewReader(encoded))
	if err != nil {
		return nil, errors.Wrap(err, "decode png for footer")
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, drawFooter(img, text)); err != nil {
		return nil, errors.Wrap(err, "encode png with footer")
	}
	return buf.Bytes(), nil
}

// drawFooter draws text on a dark translucent box at the bottom-left of img.
func drawFooter(img image.Image, text string) image.Image {
	b := img.Bounds()
	rgba := image.NewRGBA(b)
	draw.Draw(rgba, b, img, b.Min, draw.Src)

	pad := 6
	face := basicfont.Face7x13
	dr := &font.Drawer{Dst: rgba, Src: image.NewUniform(color.RGBA{R: 255, G: 255, B: 255, A: 255}), Face: face}
	tw := dr.MeasureString(text).Ceil()
	x := b.Min.X + 8
	y := b.Max.Y - 6

	bg := image.NewUniform(color.RGBA{R: 0, G: 0, B: 0, A: 200})
	rect := image.Rect(x-pad, y-face.Metrics().Ascent.Ceil()-pad, x+tw+pad, y+pad/2)
	draw.Draw(rgba, rect, bg, image.Point{}, draw.Over)

	dr.Dot = fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)}
	dr.DrawString(text)
	return rgba
}
