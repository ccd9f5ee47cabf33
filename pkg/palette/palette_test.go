package palette

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

// fill paints a rectangle of the given color onto img.
func fill(img *image.NRGBA, r image.Rectangle, c color.NRGBA) {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
}

func TestHex(t *testing.T) {
	assert.Equal(t, "FF0000FF", RGB{R: 255}.Hex())
	assert.Equal(t, "0A141EFF", RGB{R: 10, G: 20, B: 30}.Hex())
	assert.Equal(t, "000000FF", RGB{}.Hex())
}

func TestDominantPicksFrequentColor(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 10, 10))
	fill(img, image.Rect(0, 0, 10, 8), color.NRGBA{R: 180, G: 60, B: 60, A: 255})
	fill(img, image.Rect(0, 8, 10, 10), color.NRGBA{R: 60, G: 60, B: 180, A: 255})

	got, acceptable := Dominant(img)
	assert.True(t, acceptable)
	// Equal saturation, so frequency breaks the tie.
	assert.Equal(t, RGB{R: 180, G: 60, B: 60}, got)
}

func TestDominantSkipsBlackAndWhite(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 10, 10))
	fill(img, image.Rect(0, 0, 10, 5), color.NRGBA{R: 10, G: 10, B: 10, A: 255})    // near-black outline
	fill(img, image.Rect(0, 5, 10, 9), color.NRGBA{R: 240, G: 240, B: 240, A: 255}) // near-white background
	fill(img, image.Rect(0, 9, 10, 10), color.NRGBA{R: 200, G: 40, B: 40, A: 255})  // the actual accent

	got, acceptable := Dominant(img)
	assert.True(t, acceptable)
	assert.Equal(t, RGB{R: 200, G: 40, B: 40}, got)
}

func TestDominantPrefersSaturation(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 10, 10))
	fill(img, image.Rect(0, 0, 10, 8), color.NRGBA{R: 120, G: 120, B: 130, A: 255}) // dull but frequent
	fill(img, image.Rect(0, 8, 10, 10), color.NRGBA{R: 60, G: 160, B: 60, A: 255})  // vivid minority

	got, acceptable := Dominant(img)
	assert.True(t, acceptable)
	assert.Equal(t, RGB{R: 60, G: 160, B: 60}, got)
}

func TestDominantIgnoresTransparentPixels(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 10, 10))
	// Transparent red everywhere except one opaque blue row.
	fill(img, image.Rect(0, 0, 10, 9), color.NRGBA{R: 255, A: 0})
	fill(img, image.Rect(0, 9, 10, 10), color.NRGBA{R: 60, G: 60, B: 180, A: 255})

	got, acceptable := Dominant(img)
	assert.True(t, acceptable)
	assert.Equal(t, RGB{R: 60, G: 60, B: 180}, got)
}

func TestDominantMonochromeFallback(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	fill(img, image.Rect(0, 0, 4, 4), color.NRGBA{R: 20, G: 20, B: 25, A: 255})

	got, acceptable := Dominant(img)
	assert.False(t, acceptable, "near-black only image should report fallback")
	assert.Equal(t, RGB{R: 20, G: 20, B: 25}, got)
}

func TestDominantFullyTransparent(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))

	got, acceptable := Dominant(img)
	assert.True(t, acceptable)
	assert.Equal(t, RGB{}, got)
}

func TestAllocatorClaim(t *testing.T) {
	a := NewAllocator()

	first := a.Claim(RGB{R: 100, G: 50, B: 25})
	assert.Equal(t, RGB{R: 100, G: 50, B: 25}, first)

	// Same color again gets nudged by the channel offset walk.
	second := a.Claim(RGB{R: 100, G: 50, B: 25})
	assert.Equal(t, RGB{R: 105, G: 55, B: 30}, second)

	third := a.Claim(RGB{R: 100, G: 50, B: 25})
	assert.Equal(t, RGB{R: 110, G: 60, B: 35}, third)
}

func TestAllocatorClaimWrapsChannels(t *testing.T) {
	a := NewAllocator()
	a.Claim(RGB{R: 254, G: 254, B: 254})

	nudged := a.Claim(RGB{R: 254, G: 254, B: 254})
	assert.Equal(t, RGB{R: 3, G: 3, B: 3}, nudged)
}
