package overlay

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/basicfont"
)

// solidImage returns a uniformly colored test logo.
func solidImage(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func TestStampChangesPixels(t *testing.T) {
	src := solidImage(200, 200, color.NRGBA{R: 40, G: 90, B: 40, A: 255})

	out := Stamp(src, "7", basicfont.Face7x13)
	require.NotNil(t, out)
	assert.Equal(t, src.Bounds().Dx(), out.Bounds().Dx())
	assert.Equal(t, src.Bounds().Dy(), out.Bounds().Dy())

	// Some pixel near the bottom-right corner must now differ from the flat
	// background (either outline black or fill white).
	changed := false
	for y := 100; y < 200 && !changed; y++ {
		for x := 100; x < 200; x++ {
			r, g, b, _ := out.At(x, y).RGBA()
			if r>>8 != 40 || g>>8 != 90 || b>>8 != 40 {
				changed = true
				break
			}
		}
	}
	assert.True(t, changed, "stamping should alter pixels in the corner region")
}

func TestStampDoesNotModifyInput(t *testing.T) {
	src := solidImage(120, 120, color.NRGBA{R: 10, G: 10, B: 200, A: 255})

	_ = Stamp(src, "12", basicfont.Face7x13)

	for y := 0; y < 120; y++ {
		for x := 0; x < 120; x++ {
			c := src.NRGBAAt(x, y)
			require.Equal(t, color.NRGBA{R: 10, G: 10, B: 200, A: 255}, c,
				"input pixel (%d,%d) was modified", x, y)
		}
	}
}

func TestStampFile(t *testing.T) {
	dir := t.TempDir()
	srcPath := filepath.Join(dir, "3.png")
	dstPath := filepath.Join(dir, "out", "3.png")

	src := solidImage(64, 64, color.NRGBA{R: 200, G: 30, B: 30, A: 255})
	require.NoError(t, os.MkdirAll(filepath.Dir(dstPath), 0755))
	require.NoError(t, imaging.Save(src, srcPath))

	require.NoError(t, StampFile(srcPath, dstPath, "3", basicfont.Face7x13))

	out, err := imaging.Open(dstPath)
	require.NoError(t, err)
	assert.Equal(t, 64, out.Bounds().Dx())
}

func TestStampFileMissingSource(t *testing.T) {
	err := StampFile("/nonexistent/1.png", filepath.Join(t.TempDir(), "1.png"), "1", basicfont.Face7x13)
	assert.Error(t, err)
}
