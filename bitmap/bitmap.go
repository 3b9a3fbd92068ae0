// SPDX-License-Identifier: GPL-2.0-or-later

// Package bitmap reads and writes the PNG files hat elements live in.
package bitmap

import (
	"image"
	"image/png"
	"os"

	"github.com/pkg/errors"
	"golang.org/x/image/draw"
)

// Load decodes a PNG into NRGBA, converting if the file uses another
// pixel layout.
func Load(name string) (*image.NRGBA, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "decode %s", name)
	}
	if nrgba, ok := img.(*image.NRGBA); ok {
		return nrgba, nil
	}
	nrgba := image.NewNRGBA(img.Bounds())
	draw.Draw(nrgba, nrgba.Bounds(), img, img.Bounds().Min, draw.Src)
	return nrgba, nil
}

// Write encodes img to name as PNG.
func Write(name string, img *image.NRGBA) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return errors.Wrapf(err, "encode %s", name)
	}
	return nil
}

// New returns a transparent canvas of the given size.
func New(w, h int) *image.NRGBA {
	return image.NewNRGBA(image.Rect(0, 0, w, h))
}
