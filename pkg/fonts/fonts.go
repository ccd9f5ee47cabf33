// Package fonts locates and loads the typeface used for slot-number overlays.
//
// Fonts are discovered on the host system via go-findfont, trying a list of
// preferred faces in order. When none of them is installed the package falls
// back to the builtin bitmap face, so rendering always succeeds - the result
// is just less pretty.
package fonts

import (
	"fmt"
	"os"

	"github.com/flopp/go-findfont"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// DefaultPreferred lists the overlay faces in preference order. The narrow
// bold italic is the broadcast house style; plain Arial variants are close
// enough on systems without it.
var DefaultPreferred = []string{
	"ArialNarrow-BoldItalic.ttf",
	"Arial Narrow Bold Italic.ttf",
	"Arial Bold.ttf",
	"Arial-Bold.ttf",
	"Arial.ttf",
	"DejaVuSans-Bold.ttf",
}

// LoadTTF parses the TrueType font at path and returns a face at the given
// point size.
func LoadTTF(path string, size float64) (font.Face, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font %s: %w", path, err)
	}
	f, err := truetype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font %s: %w", path, err)
	}
	return truetype.NewFace(f, &truetype.Options{Size: size}), nil
}

// Find searches the system font directories for the first available face in
// preferred and loads it at the given size. The second result names the font
// file actually used, or "builtin" when every lookup failed and the bitmap
// fallback was returned.
func Find(preferred []string, size float64) (font.Face, string) {
	if len(preferred) == 0 {
		preferred = DefaultPreferred
	}
	for _, name := range preferred {
		path, err := findfont.Find(name)
		if err != nil {
			continue
		}
		face, err := LoadTTF(path, size)
		if err != nil {
			continue
		}
		return face, path
	}
	return basicfont.Face7x13, "builtin"
}
