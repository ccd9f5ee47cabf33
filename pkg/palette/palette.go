// Package palette extracts a representative accent color from a team logo.
//
// The broadcast overlay tints each team's widgets with a color sampled from
// its logo. A straight "most frequent pixel" pick tends to land on the black
// outline or the white background, so the extractor filters those out and
// prefers saturated colors:
//
//  1. Count every opaque pixel.
//  2. Drop colors close to black (all channels ≤ 50) or close to white
//     (all channels ≥ 200).
//  3. Of the remaining colors, pick the most saturated one, breaking ties in
//     favor of the more frequent color.
//  4. When the filter leaves nothing (monochrome logos), fall back to the
//     most saturated color overall.
//
// Saturation here is the cheap max(R,G,B)-min(R,G,B) spread, which is enough
// to separate "colorful" from "grayscale" without a colorspace conversion.
package palette

import (
	"fmt"
	"image"
	"sort"

	"github.com/disintegration/imaging"
)

// Channel thresholds for the black/white filter.
const (
	blackThreshold = 50  // channels at or below are "close to black"
	whiteThreshold = 200 // channels at or above are "close to white"
)

// RGB is an opaque accent color.
type RGB struct {
	R, G, B uint8
}

// Hex renders the color as the uppercase RRGGBBFF string the overlay CSV
// expects (the FF suffix is the fixed alpha).
func (c RGB) Hex() string {
	return fmt.Sprintf("%02X%02X%02XFF", c.R, c.G, c.B)
}

// saturation is the spread between the strongest and weakest channel.
func (c RGB) saturation() uint8 {
	max, min := c.R, c.R
	for _, v := range []uint8{c.G, c.B} {
		if v > max {
			max = v
		}
		if v < min {
			min = v
		}
	}
	return max - min
}

// nearBlack reports whether every channel is at or below blackThreshold.
func (c RGB) nearBlack() bool {
	return c.R <= blackThreshold && c.G <= blackThreshold && c.B <= blackThreshold
}

// nearWhite reports whether every channel is at or above whiteThreshold.
func (c RGB) nearWhite() bool {
	return c.R >= whiteThreshold && c.G >= whiteThreshold && c.B >= whiteThreshold
}

// Open decodes the image at path.
func Open(path string) (image.Image, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image %s: %w", path, err)
	}
	return img, nil
}

// colorCount pairs a color with its pixel frequency and first-seen rank.
type colorCount struct {
	color RGB
	count int
	rank  int // first-seen order, tie-breaker for determinism
}

// Dominant returns the accent color for img. The second result is false when
// the black/white filter rejected every color and the pick fell back to the
// most saturated color overall; callers typically log a warning in that case.
// Fully transparent images yield black.
func Dominant(img image.Image) (RGB, bool) {
	counts := countOpaque(img)
	if len(counts) == 0 {
		return RGB{}, true
	}

	// Frequency order first (descending, stable by first appearance), so that
	// saturation ties resolve toward the more common color.
	sort.SliceStable(counts, func(i, j int) bool {
		if counts[i].count != counts[j].count {
			return counts[i].count > counts[j].count
		}
		return counts[i].rank < counts[j].rank
	})

	if best, ok := mostSaturated(counts, func(c RGB) bool {
		return !c.nearBlack() && !c.nearWhite()
	}); ok {
		return best, true
	}

	best, _ := mostSaturated(counts, func(RGB) bool { return true })
	return best, false
}

// mostSaturated picks the highest-saturation color among those accepted by
// keep. counts must already be in frequency order.
func mostSaturated(counts []colorCount, keep func(RGB) bool) (RGB, bool) {
	var best RGB
	found := false
	var bestSat uint8
	for _, cc := range counts {
		if !keep(cc.color) {
			continue
		}
		if s := cc.color.saturation(); !found || s > bestSat {
			best, bestSat, found = cc.color, s, true
		}
	}
	return best, found
}

// countOpaque tallies the distinct colors of all non-transparent pixels.
func countOpaque(img image.Image) []colorCount {
	// Clone to NRGBA for straight (non-premultiplied) channel values and a
	// flat pixel slice.
	nrgba := imaging.Clone(img)

	index := make(map[RGB]int)
	var counts []colorCount

	for i := 0; i+3 < len(nrgba.Pix); i += 4 {
		if nrgba.Pix[i+3] == 0 {
			continue
		}
		c := RGB{R: nrgba.Pix[i], G: nrgba.Pix[i+1], B: nrgba.Pix[i+2]}
		if at, seen := index[c]; seen {
			counts[at].count++
			continue
		}
		index[c] = len(counts)
		counts = append(counts, colorCount{color: c, count: 1, rank: len(counts)})
	}
	return counts
}

// Allocator hands out team colors, nudging duplicates until every team's hex
// value is distinct. Two teams with visually identical logos would otherwise
// be indistinguishable on the overlay.
type Allocator struct {
	used map[string]bool
}

// NewAllocator creates an empty allocator.
func NewAllocator() *Allocator {
	return &Allocator{used: make(map[string]bool)}
}

// Claim returns c unchanged when its hex value is still free; otherwise it
// walks all three channels upward in steps of 5 (mod 256) until the result is
// unique. The returned color is recorded as used.
func (a *Allocator) Claim(c RGB) RGB {
	out := c
	offset := 0
	for a.used[out.Hex()] {
		offset += 5
		out = RGB{
			R: uint8((int(c.R) + offset) % 256),
			G: uint8((int(c.G) + offset) % 256),
			B: uint8((int(c.B) + offset) % 256),
		}
	}
	a.used[out.Hex()] = true
	return out
}
