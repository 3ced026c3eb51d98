// Package imageurl computes CDN crop parameters for thumbnail variants of
// poster and profile images. Everything here is pure: no I/O.
package imageurl

import (
	"fmt"
	"math"
	"path"
	"strings"
)

// ValidationError reports an input the crop calculator refuses.
type ValidationError struct {
	Field string
	Value int
}

func (e *ValidationError) Error() string {
	if e.Field == "quality" {
		return fmt.Sprintf("imageurl: quality must be within 1..100, got %d", e.Value)
	}
	return fmt.Sprintf("imageurl: %s must be positive, got %d", e.Field, e.Value)
}

// Orientation tells which axis a crop trims.
type Orientation int

const (
	// Horizontal trims left and right.
	Horizontal Orientation = iota
	// Vertical trims top and bottom.
	Vertical
)

func (o Orientation) String() string {
	if o == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// Params is a computed crop: the output keeps one dimension fixed and cuts
// Offset pixels from one side of the other axis.
type Params struct {
	Orientation Orientation
	Quality     int
	Width       int
	Height      int
	Offset      int
}

// String encodes the crop the way the CDN expects it in a URL: the quality,
// the fixed dimension and the retained box.
func (p Params) String() string {
	scale := fmt.Sprintf("UX%d", p.Width)
	if p.Orientation == Horizontal {
		scale = fmt.Sprintf("UY%d", p.Height)
	}
	b := p.CropBox()
	return fmt.Sprintf("QL%d_%s_CR%d,%d,%d,%d_", p.Quality, scale, b[0], b[1], b[2], b[3])
}

// CropBox returns the retained rectangle as x, y, width, height.
func (p Params) CropBox() [4]int {
	if p.Orientation == Horizontal {
		return [4]int{p.Offset, 0, p.Width, p.Height}
	}
	return [4]int{0, p.Offset, p.Width, p.Height}
}

// RoundToEven rounds x down to the nearest even integer when its fractional
// part is below one half, and otherwise up to the nearest even integer not
// less than ceil(x). The CDN rejects odd crop values.
func RoundToEven(x float64) int {
	floor := math.Floor(x)
	if x-floor < 0.5 {
		n := int(floor)
		if n%2 != 0 {
			n--
		}
		return n
	}
	n := int(math.Ceil(x))
	if n%2 != 0 {
		n++
	}
	return n
}

// Crop decides the crop orientation by comparing aspect ratios and computes
// the offset for a target of tw x th at the given quality.
func Crop(ow, oh, tw, th, quality int) (Params, error) {
	for _, f := range []struct {
		name string
		v    int
	}{{"original width", ow}, {"original height", oh}, {"target width", tw}, {"target height", th}} {
		if f.v <= 0 {
			return Params{}, &ValidationError{Field: f.name, Value: f.v}
		}
	}
	if quality < 1 || quality > 100 {
		return Params{}, &ValidationError{Field: "quality", Value: quality}
	}

	p := Params{Quality: quality, Width: tw, Height: th}
	targetRatio := float64(tw) / float64(th)
	originalRatio := float64(ow) / float64(oh)

	if targetRatio < originalRatio {
		p.Orientation = Horizontal
		// ow / (oh / th), kept in one division so exact ratios stay exact.
		scaled := float64(ow) * float64(th) / float64(oh)
		p.Offset = max(RoundToEven(scaled-float64(tw))/2, 0)
		return p, nil
	}

	p.Orientation = Vertical
	scaled := float64(oh) * float64(tw) / float64(ow)
	p.Offset = max(RoundToEven(scaled-float64(th))/2, 0)
	return p, nil
}

// Thumbnail returns rawURL with its extension replaced by the crop
// parameters and ".jpg".
func Thumbnail(rawURL string, ow, oh, tw, th, quality int) (string, error) {
	p, err := Crop(ow, oh, tw, th, quality)
	if err != nil {
		return "", err
	}
	base := strings.TrimSuffix(rawURL, path.Ext(rawURL))
	// Decorated CDN names already end in "._V1_".
	if !strings.HasSuffix(base, "_") && !strings.HasSuffix(base, ".") {
		base += "."
	}
	return base + p.String() + ".jpg", nil
}

// ThumbnailOr is Thumbnail falling back to rawURL when the dimensions are
// unusable.
func ThumbnailOr(rawURL string, ow, oh, tw, th, quality int) string {
	u, err := Thumbnail(rawURL, ow, oh, tw, th, quality)
	if err != nil {
		return rawURL
	}
	return u
}
