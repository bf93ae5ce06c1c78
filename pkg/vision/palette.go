// Package vision derives textual descriptions from uploaded images.
package vision

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"sort"
	"strings"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/ericpauley/go-quantize/quantize"
	"golang.org/x/image/draw"
)

const (
	sampleSize  = 128
	paletteSize = 3
)

// Analyze decodes an image and describes its resolution, color mode and the
// three dominant colors of a 128x128 palette-reduced copy, as hex triples
// ordered by pixel frequency descending. Frequency ties keep palette order.
func Analyze(data []byte) (string, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("decode image: %w", err)
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	small := image.NewRGBA(image.Rect(0, 0, sampleSize, sampleSize))
	draw.NearestNeighbor.Scale(small, small.Bounds(), img, bounds, draw.Src, nil)

	quantizer := quantize.MedianCutQuantizer{}
	palette := color.Palette(quantizer.Quantize(make([]color.Color, 0, paletteSize), small))
	if len(palette) == 0 {
		return "", fmt.Errorf("quantize image: empty palette")
	}

	counts := make([]int, len(palette))
	for y := 0; y < sampleSize; y++ {
		for x := 0; x < sampleSize; x++ {
			counts[palette.Index(small.At(x, y))]++
		}
	}

	type colorFreq struct {
		index int
		count int
	}
	freqs := make([]colorFreq, len(palette))
	for i, n := range counts {
		freqs[i] = colorFreq{index: i, count: n}
	}
	sort.SliceStable(freqs, func(i, j int) bool { return freqs[i].count > freqs[j].count })

	dominant := make([]string, 0, paletteSize)
	for _, f := range freqs {
		if len(dominant) == paletteSize {
			break
		}
		r, g, b, _ := palette[f.index].RGBA()
		dominant = append(dominant, fmt.Sprintf("#%02x%02x%02x", uint8(r>>8), uint8(g>>8), uint8(b>>8)))
	}

	return fmt.Sprintf("Resolution: %dx%dpx. Mode: %s. Dominant colors: %s.",
		width, height, colorMode(img), strings.Join(dominant, ", ")), nil
}

func colorMode(img image.Image) string {
	switch img.(type) {
	case *image.Gray, *image.Gray16:
		return "L"
	default:
		return "RGB"
	}
}
