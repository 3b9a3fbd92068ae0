// SPDX-License-Identifier: GPL-2.0-or-later

package hat

import (
	"image"

	"hatpack/anim"
	"hatpack/metapixel"
)

// Extra is an optional overlay sheet: capes, rocks, particles layered on
// top of the wearable hat.
type Extra struct {
	anims []*anim.Animation
	base  Base
}

func (e *Extra) Base() *Base                       { return &e.base }
func (e *Extra) Animations() []*anim.Animation     { return e.anims }
func (e *Extra) SetAnimations(a []*anim.Animation) { e.anims = a }

func loadExtra(path string, ns NameAndSize, opts LoadOptions) (*Extra, error) {
	base, pixels, err := loadBase(KindExtra, path, ns, opts)
	if err != nil {
		return nil, err
	}
	e := &Extra{base: base}
	w, h := e.base.imageSize()
	e.base.FrameSize = image.Pt(min(w, MaxExtraSize.X), min(h, MaxExtraSize.Y))
	e.anims = append(e.anims, anim.New(
		anim.OnDefault,
		4,
		false,
		anim.FramesFromRange(0, e.base.FramesAmount()-1),
	))
	for _, p := range pixels {
		if p.Op == metapixel.FrameSize {
			e.base.FrameSize = image.Pt(int(p.A), int(p.B))
		}
	}
	return e, nil
}

func (e *Extra) Metapixels() []metapixel.Metapixel {
	var s metapixel.Stream
	s.Push(metapixel.FrameSize, byte(e.base.FrameSize.X), byte(e.base.FrameSize.Y))
	return s.Pixels
}
