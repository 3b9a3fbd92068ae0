// SPDX-License-Identifier: GPL-2.0-or-later

package hat

import (
	"image"

	"hatpack/anim"
	"hatpack/metapixel"
)

// Wearable is the hat worn on the head: the main element of most packs.
type Wearable struct {
	StrappedOn       bool
	IsBig            bool
	OnSpawnAnimation *anim.Kind
	LinkFrameState   LinkFrameState

	anims []*anim.Animation
	base  Base
}

func (w *Wearable) Base() *Base                       { return &w.base }
func (w *Wearable) Animations() []*anim.Animation     { return w.anims }
func (w *Wearable) SetAnimations(a []*anim.Animation) { w.anims = a }

func loadWearable(path string, ns NameAndSize, opts LoadOptions) (*Wearable, error) {
	base, pixels, err := loadBase(KindWearable, path, ns, opts)
	if err != nil {
		return nil, err
	}
	w := &Wearable{base: base}
	for i, p := range pixels {
		switch p.Op {
		case metapixel.StrappedOn:
			w.StrappedOn = true
		case metapixel.IsBigHat:
			w.IsBig = true
		case metapixel.FrameSize:
			w.base.FrameSize = image.Pt(int(p.A), int(p.B))
		case metapixel.OnSpawnAnimation:
			if kind, ok := anim.KindFromByte(p.A); ok {
				w.OnSpawnAnimation = &kind
			}
		case metapixel.LinkFrameState:
			w.LinkFrameState = linkFrameStateFromByte(p.A)
		case metapixel.AnimationType:
			if a, ok := anim.Extract(pixels, i); ok {
				w.anims = append(w.anims, a)
			}
		}
	}
	return w, nil
}

func (w *Wearable) Metapixels() []metapixel.Metapixel {
	var s metapixel.Stream
	if w.StrappedOn {
		s.Push(metapixel.StrappedOn, 0, 0)
	}
	if w.base.isBig() {
		s.Push(metapixel.IsBigHat, 0, 0)
	}
	s.Push(metapixel.FrameSize, byte(w.base.FrameSize.X), byte(w.base.FrameSize.Y))
	if w.OnSpawnAnimation != nil {
		s.Push(metapixel.OnSpawnAnimation, byte(*w.OnSpawnAnimation), 0)
	}
	if w.LinkFrameState != LinkDefault {
		s.Push(metapixel.LinkFrameState, byte(w.LinkFrameState), 0)
	}
	for _, a := range w.anims {
		s.PushMany(a.Metapixels())
	}
	return s.Pixels
}

func linkFrameStateFromByte(b byte) LinkFrameState {
	switch b {
	case 1:
		return LinkSaved
	case 2:
		return LinkInverted
	}
	return LinkDefault
}
