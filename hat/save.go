// SPDX-License-Identifier: GPL-2.0-or-later

package hat

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/image/draw"

	"hatpack/bitmap"
	"hatpack/metapixel"
)

// Save writes every element into dir, one PNG each. The new pack is built
// in a sibling temp directory and swapped in, so a failed save never
// leaves a half-written pack behind.
func (b *Bundle) Save(dir string) error {
	dir = filepath.Clean(dir)
	tmp := fmt.Sprintf("%s.tmp-%s", dir, uuid.NewString()[:8])
	if err := os.MkdirAll(tmp, 0o755); err != nil {
		return errors.Wrap(err, "save hat")
	}
	for _, e := range b.Elements() {
		if err := saveElement(e, tmp); err != nil {
			os.RemoveAll(tmp)
			return err
		}
	}
	if err := os.RemoveAll(dir); err != nil {
		os.RemoveAll(tmp)
		return errors.Wrap(err, "save hat")
	}
	if err := os.Rename(tmp, dir); err != nil {
		return errors.Wrap(err, "save hat")
	}
	return nil
}

// saveElement lays the art area and the encoded metapixel columns side by
// side and writes the PNG. The image grows exactly as many columns as the
// stream needs.
func saveElement(e Element, dir string) error {
	base := e.Base()
	if base.Bitmap == nil {
		return errors.Errorf("unable to save %s: no bitmap", base.SaveName())
	}
	pixels := e.Metapixels()
	bounds := base.Bitmap.Bounds()
	height := bounds.Dy()
	cols := metapixel.Columns(len(pixels), height)

	out := bitmap.New(base.AreaSize.X+cols, height)
	draw.Draw(out, image.Rect(0, 0, base.AreaSize.X, height), base.Bitmap, bounds.Min, draw.Src)
	metapixel.Blit(out, pixels, base.AreaSize.X)

	name := fmt.Sprintf("%s_%d_%d.png", base.SaveName(), base.AreaSize.X, base.AreaSize.Y)
	return bitmap.Write(filepath.Join(dir, name), out)
}
