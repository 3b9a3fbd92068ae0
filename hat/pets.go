// SPDX-License-Identifier: GPL-2.0-or-later

package hat

import (
	"image"

	"hatpack/anim"
	"hatpack/metapixel"
)

// PetBase carries the fields both pet variants share.
type PetBase struct {
	Distance       int
	Flipped        bool
	IsBig          bool
	LinkFrameState LinkFrameState

	anims []*anim.Animation
}

// FlyingPet hovers near the duck at a configurable distance and speed.
type FlyingPet struct {
	PetBase
	ChangesAngle bool
	Speed        int

	base Base
}

func (p *FlyingPet) Base() *Base                       { return &p.base }
func (p *FlyingPet) Animations() []*anim.Animation     { return p.anims }
func (p *FlyingPet) SetAnimations(a []*anim.Animation) { p.anims = a }

// WalkingPet follows the duck along the ground.
type WalkingPet struct {
	PetBase

	base Base
}

func (p *WalkingPet) Base() *Base                       { return &p.base }
func (p *WalkingPet) Animations() []*anim.Animation     { return p.anims }
func (p *WalkingPet) SetAnimations(a []*anim.Animation) { p.anims = a }

func defaultPetBase() PetBase {
	return PetBase{
		Distance: DefaultPetDistance,
		Flipped:  true,
	}
}

// decodePixel handles the opcodes both pet variants understand.
func (pb *PetBase) decodePixel(pixels []metapixel.Metapixel, i int, base *Base) {
	p := pixels[i]
	switch p.Op {
	case metapixel.PetDistance:
		pb.Distance = int(p.A)
	case metapixel.PetNoFlip:
		pb.Flipped = false
	case metapixel.IsBigHat:
		pb.IsBig = true
	case metapixel.LinkFrameState:
		pb.LinkFrameState = linkFrameStateFromByte(p.A)
	case metapixel.FrameSize:
		base.FrameSize = image.Pt(int(p.A), int(p.B))
	case metapixel.AnimationType:
		if a, ok := anim.Extract(pixels, i); ok {
			pb.anims = append(pb.anims, a)
		}
	}
}

// encodeHead emits the shared leading records up to and including
// LinkFrameState.
func (pb *PetBase) encodeHead(s *metapixel.Stream, base *Base) {
	if pb.Distance != DefaultPetDistance {
		s.Push(metapixel.PetDistance, byte(pb.Distance), 0)
	}
	if pb.Flipped {
		s.Push(metapixel.PetNoFlip, 0, 0)
	}
	if base.isBig() {
		s.Push(metapixel.IsBigHat, 0, 0)
	}
	s.Push(metapixel.FrameSize, byte(base.FrameSize.X), byte(base.FrameSize.Y))
	if pb.LinkFrameState != LinkDefault {
		s.Push(metapixel.LinkFrameState, byte(pb.LinkFrameState), 0)
	}
}

func (pb *PetBase) encodeAnimations(s *metapixel.Stream) {
	for _, a := range pb.anims {
		s.PushMany(a.Metapixels())
	}
}

func loadFlyingPet(path string, ns NameAndSize, opts LoadOptions) (*FlyingPet, error) {
	base, pixels, err := loadBase(KindFlyingPet, path, ns, opts)
	if err != nil {
		return nil, err
	}
	pet := &FlyingPet{
		PetBase: defaultPetBase(),
		Speed:   DefaultPetSpeed,
		base:    base,
	}
	for i, p := range pixels {
		switch p.Op {
		case metapixel.PetChangesAngle:
			pet.ChangesAngle = true
		case metapixel.PetSpeed:
			pet.Speed = int(p.A)
		default:
			pet.PetBase.decodePixel(pixels, i, &pet.base)
		}
	}
	return pet, nil
}

func (p *FlyingPet) Metapixels() []metapixel.Metapixel {
	var s metapixel.Stream
	p.encodeHead(&s, &p.base)
	if p.ChangesAngle {
		s.Push(metapixel.PetChangesAngle, 0, 0)
	}
	if p.Speed != DefaultPetSpeed {
		s.Push(metapixel.PetSpeed, byte(p.Speed), 0)
	}
	p.encodeAnimations(&s)
	return s.Pixels
}

func loadWalkingPet(path string, ns NameAndSize, opts LoadOptions) (*WalkingPet, error) {
	base, pixels, err := loadBase(KindWalkingPet, path, ns, opts)
	if err != nil {
		return nil, err
	}
	pet := &WalkingPet{
		PetBase: defaultPetBase(),
		base:    base,
	}
	for i := range pixels {
		pet.PetBase.decodePixel(pixels, i, &pet.base)
	}
	return pet, nil
}

func (p *WalkingPet) Metapixels() []metapixel.Metapixel {
	var s metapixel.Stream
	p.encodeHead(&s, &p.base)
	p.encodeAnimations(&s)
	return s.Pixels
}
