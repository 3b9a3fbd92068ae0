// SPDX-License-Identifier: GPL-2.0-or-later

package metapixel

import (
	"image"
	"image/color"
)

// Decode reads the metapixel area of img, the columns right of artWidth,
// in column-major order. Fully transparent pixels and pixels whose red
// channel is not a known opcode are skipped. Decode is total: any input
// yields a (possibly empty) record list.
func Decode(img *image.NRGBA, artWidth int) []Metapixel {
	if img == nil {
		return nil
	}
	b := img.Bounds()
	var pixels []Metapixel
	for x := artWidth; x < b.Dx(); x++ {
		for y := 0; y < b.Dy(); y++ {
			c := img.NRGBAAt(b.Min.X+x, b.Min.Y+y)
			if c.A == 0 {
				continue
			}
			p, ok := New(c.R, c.G, c.B)
			if !ok {
				continue
			}
			pixels = append(pixels, p)
		}
	}
	return pixels
}

// Columns reports how many metapixel columns a stream of n records needs
// at the given image height.
func Columns(n, height int) int {
	if n <= 0 || height <= 0 {
		return 0
	}
	return (n + height - 1) / height
}

// Blit writes the records into img column by column starting at
// (artWidth, 0). One row is left blank after each AnimationType record so
// the animation header never straddles a column break mid-record. Records
// that do not fit inside the image are dropped.
func Blit(img *image.NRGBA, pixels []Metapixel, artWidth int) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	i := 0
	for x := artWidth; x < w && i < len(pixels); x++ {
		for y := 0; y < h && i < len(pixels); {
			p := pixels[i]
			i++
			img.SetNRGBA(b.Min.X+x, b.Min.Y+y, color.NRGBA{
				R: byte(p.Op),
				G: p.A,
				B: p.B,
				A: 255,
			})
			y++
			if p.Op == AnimationType {
				y++
			}
		}
	}
}
