// Package overlay stamps the slot number onto a team logo.
//
// The number is drawn in the bottom-right corner as white text with a black
// outline, large enough for observers to read the slot at a glance on the
// spectator HUD. The outline is produced by drawing the text repeatedly along
// a circle of offsets before the white fill goes on top; gg has no native
// text stroking.
package overlay

import (
	"fmt"
	"image"
	"math"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"golang.org/x/image/font"
)

// Rendering constants tuned for 1024px logo tiles.
const (
	// FontSize is the point size of the slot number.
	FontSize = 300

	marginRight  = 30 // gap between text and the right edge
	marginBottom = 80 // gap between baseline and the bottom edge

	strokeWidth = 8  // outline radius in pixels
	strokeSteps = 32 // offsets drawn along the outline circle
)

// Stamp draws text onto a copy of img in the bottom-right corner using face.
// The input image is not modified.
func Stamp(img image.Image, text string, face font.Face) image.Image {
	dc := gg.NewContextForImage(img)
	dc.SetFontFace(face)

	w, _ := dc.MeasureString(text)
	x := float64(dc.Width()) - w - marginRight
	y := float64(dc.Height()) - marginBottom

	dc.SetRGB(0, 0, 0)
	for i := 0; i < strokeSteps; i++ {
		angle := 2 * math.Pi * float64(i) / strokeSteps
		dx := strokeWidth * math.Cos(angle)
		dy := strokeWidth * math.Sin(angle)
		dc.DrawString(text, x+dx, y+dy)
	}

	dc.SetRGB(1, 1, 1)
	dc.DrawString(text, x, y)

	return dc.Image()
}

// StampFile reads the logo at srcPath, stamps text onto it, and writes the
// result to dstPath. Source and destination may be the same file.
func StampFile(srcPath, dstPath, text string, face font.Face) error {
	img, err := imaging.Open(srcPath)
	if err != nil {
		return fmt.Errorf("open logo %s: %w", srcPath, err)
	}
	if err := imaging.Save(Stamp(img, text, face), dstPath); err != nil {
		return fmt.Errorf("save stamped logo %s: %w", dstPath, err)
	}
	return nil
}
