// SPDX-License-Identifier: GPL-2.0-or-later

package hat

import (
	"image"

	"hatpack/anim"
	"hatpack/metapixel"
)

// wingsOffsetBias shifts offsets between the signed editor view and the
// unsigned wire bytes. An offset of (0,0) is (128,128) on the wire and is
// omitted from the stream.
const wingsOffsetBias = 128

// Wings draw behind the duck and carry per-pose offsets.
type Wings struct {
	GeneralOffset image.Point
	CrouchOffset  image.Point
	RagdollOffset image.Point
	SlideOffset   image.Point
	NetOffset     image.Point

	GenAnimations     bool
	AutoGlideFrame    int
	AutoIdleFrame     int
	AutoAnimSpeed     int
	ChangesAnimations bool
	SizeState         bool

	anims []*anim.Animation
	base  Base
}

func (w *Wings) Base() *Base                       { return &w.base }
func (w *Wings) Animations() []*anim.Animation     { return w.anims }
func (w *Wings) SetAnimations(a []*anim.Animation) { w.anims = a }

func loadWings(path string, ns NameAndSize, opts LoadOptions) (*Wings, error) {
	base, pixels, err := loadBase(KindWings, path, ns, opts)
	if err != nil {
		return nil, err
	}
	w := &Wings{base: base}
	w.AutoGlideFrame = w.base.FramesAmount()
	w.AutoIdleFrame = DefaultWingsIdleFrame
	hasAutoSpeed := false
	for _, p := range pixels {
		switch p.Op {
		case metapixel.WingsGeneralOffset:
			w.GeneralOffset = offsetFromWire(p)
		case metapixel.WingsCrouchOffset:
			w.CrouchOffset = offsetFromWire(p)
		case metapixel.WingsRagdollOffset:
			w.RagdollOffset = offsetFromWire(p)
		case metapixel.WingsSlideOffset:
			w.SlideOffset = offsetFromWire(p)
		case metapixel.WingsNetOffset:
			w.NetOffset = offsetFromWire(p)
		case metapixel.GenerateWingsAnimations:
			w.GenAnimations = true
		case metapixel.WingsAutoGlideFrame:
			w.AutoGlideFrame = saturatingInc(p.A)
		case metapixel.WingsAutoIdleFrame:
			w.AutoIdleFrame = saturatingInc(p.A)
		case metapixel.WingsAutoAnimationsSpeed:
			w.AutoAnimSpeed = int(p.A)
			hasAutoSpeed = true
		case metapixel.ChangeAnimationsEveryLevel:
			w.ChangesAnimations = true
		case metapixel.IsBigHat:
			w.SizeState = true
		case metapixel.FrameSize:
			w.base.FrameSize = image.Pt(int(p.A), int(p.B))
		}
	}
	if !hasAutoSpeed {
		w.AutoAnimSpeed = DefaultAutoSpeed
	}
	w.anims = append(w.anims, anim.New(
		anim.OnDefault,
		w.AutoAnimSpeed,
		false,
		anim.FramesFromRange(0, w.base.FramesAmount()-1),
	))
	return w, nil
}

// Metapixels emits the wings fields. Animations are not serialized for
// wings; the game generates them from the auto fields.
func (w *Wings) Metapixels() []metapixel.Metapixel {
	var s metapixel.Stream
	pushOffset(&s, metapixel.WingsGeneralOffset, w.GeneralOffset)
	pushOffset(&s, metapixel.WingsSlideOffset, w.SlideOffset)
	pushOffset(&s, metapixel.WingsRagdollOffset, w.RagdollOffset)
	pushOffset(&s, metapixel.WingsCrouchOffset, w.CrouchOffset)
	pushOffset(&s, metapixel.WingsNetOffset, w.NetOffset)
	if w.base.isBig() {
		s.Push(metapixel.IsBigHat, 0, 0)
	}
	if w.GenAnimations {
		s.Push(metapixel.GenerateWingsAnimations, 0, 0)
	}
	if w.ChangesAnimations {
		s.Push(metapixel.ChangeAnimationsEveryLevel, 0, 0)
	}
	if w.AutoAnimSpeed != DefaultAutoSpeed {
		s.Push(metapixel.WingsAutoAnimationsSpeed, byte(w.AutoAnimSpeed), 0)
	}
	// the auto glide frame counts from one on the wire
	if w.AutoGlideFrame != w.base.FramesAmount() {
		s.Push(metapixel.WingsAutoGlideFrame, saturatingDec(w.AutoGlideFrame), 0)
	}
	if w.AutoIdleFrame != DefaultWingsIdleFrame {
		s.Push(metapixel.WingsAutoIdleFrame, saturatingDec(w.AutoIdleFrame), 0)
	}
	s.Push(metapixel.FrameSize, byte(w.base.FrameSize.X), byte(w.base.FrameSize.Y))
	return s.Pixels
}

func offsetFromWire(p metapixel.Metapixel) image.Point {
	return image.Pt(int(p.A)-wingsOffsetBias, int(p.B)-wingsOffsetBias)
}

func pushOffset(s *metapixel.Stream, op metapixel.OpCode, off image.Point) {
	if off.X == 0 && off.Y == 0 {
		return
	}
	s.Push(op, byte(off.X+wingsOffsetBias), byte(off.Y+wingsOffsetBias))
}

func saturatingInc(b byte) int {
	if b == 255 {
		return 255
	}
	return int(b) + 1
}

func saturatingDec(v int) byte {
	if v <= 0 {
		return 0
	}
	if v > 256 {
		return 255
	}
	return byte(v - 1)
}
