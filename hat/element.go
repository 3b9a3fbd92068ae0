// SPDX-License-Identifier: GPL-2.0-or-later

// Package hat implements hat elements and bundles: the typed model behind
// a hat-pack directory and its PNG-with-metapixels files.
package hat

import (
	"image"
	"sync/atomic"

	"github.com/pkg/errors"

	"hatpack/anim"
	"hatpack/bitmap"
	"hatpack/metapixel"
)

const (
	MinFrameSize = 32
	MaxFrameSize = 64

	MaxPets = 5

	DefaultPetSpeed       = 10
	DefaultPetDistance    = 10
	DefaultWingsIdleFrame = 0
	DefaultAutoSpeed      = 4
)

// MaxExtraSize bounds the frame size of Extra elements.
var MaxExtraSize = image.Pt(97, 56)

type Kind int

const (
	KindWearable Kind = iota
	KindWings
	KindExtra
	KindFlyingPet
	KindWalkingPet
	KindRoom
	KindPreview
	KindUnspecified
)

func (k Kind) String() string {
	switch k {
	case KindWearable:
		return "Wearable Hat"
	case KindWings:
		return "Wings Hat"
	case KindExtra:
		return "Extra"
	case KindFlyingPet:
		return "Flying Pet"
	case KindWalkingPet:
		return "Walking Pet"
	case KindRoom:
		return "Room"
	case KindPreview:
		return "Preview"
	}
	return "Unspecified"
}

// SaveName is the filename stem a kind saves under when the element
// carries no explicit name.
func (k Kind) SaveName() string {
	switch k {
	case KindWearable:
		return "hat"
	case KindWings:
		return "wings"
	case KindExtra:
		return "extrahat"
	case KindFlyingPet:
		return "flyingpet"
	case KindWalkingPet:
		return "walkingpet"
	case KindRoom:
		return "room"
	case KindPreview:
		return "preview"
	}
	return ""
}

func (k Kind) IsPet() bool {
	return k == KindFlyingPet || k == KindWalkingPet
}

// LinkFrameState controls how quack-triggered animations relate to the
// frame rendered when the trigger fires.
type LinkFrameState byte

const (
	LinkDefault LinkFrameState = iota
	LinkSaved
	LinkInverted
)

func (s LinkFrameState) String() string {
	switch s {
	case LinkSaved:
		return "Saved"
	case LinkInverted:
		return "Inverted"
	}
	return "None"
}

// ElementID is an opaque process-wide identifier, used by the UI to refer
// to elements stably across replace operations. Never serialized.
type ElementID uint32

var elementIDCounter atomic.Uint32

func nextElementID() ElementID {
	return ElementID(elementIDCounter.Add(1) - 1)
}

// Texture is the handle contract the element model needs from the GPU
// collaborator. A nil texture means the element was loaded headless.
type Texture interface {
	Width() int
	Height() int
	Path() string
	ReplaceFromPath(path string) error
	Delete()
}

// TextureLoader acquires textures during bundle load.
type TextureLoader interface {
	FromPath(path string) (Texture, error)
}

// Base carries the fields all element variants share.
type Base struct {
	Kind      Kind
	FrameSize image.Point
	// AreaSize is the art-area extent: the left part of the source PNG.
	AreaSize image.Point
	Bitmap   *image.NRGBA
	Texture  Texture
	Name     string
	id       ElementID
}

func (b *Base) ID() ElementID {
	return b.id
}

func (b *Base) SaveName() string {
	if b.Name != "" {
		return b.Name
	}
	return b.Kind.SaveName()
}

func (b *Base) imageSize() (int, int) {
	if b.Texture != nil {
		return b.Texture.Width(), b.Texture.Height()
	}
	if b.Bitmap != nil {
		r := b.Bitmap.Bounds()
		return r.Dx(), r.Dy()
	}
	return 0, 0
}

// FramesAmount is how many frames the sprite sheet holds at the current
// frame size.
func (b *Base) FramesAmount() int {
	if b.FrameSize.X <= 0 || b.FrameSize.Y <= 0 {
		return 0
	}
	w, h := b.imageSize()
	return (w / b.FrameSize.X) * (h / b.FrameSize.Y)
}

func (b *Base) isBig() bool {
	return b.FrameSize.X > MinFrameSize || b.FrameSize.Y > MinFrameSize
}

// ReplaceImage swaps the element's bitmap and texture for the file at
// path while keeping all parsed fields. The art-area size follows the new
// filename; metapixels are reflowed to the new geometry on the next save.
func (b *Base) ReplaceImage(path string, textures TextureLoader) error {
	img, err := bitmap.Load(path)
	if err != nil {
		return errors.Wrap(err, "replace image")
	}
	r := img.Bounds()
	if r.Dx() == 0 || r.Dy() == 0 {
		return errors.Errorf("replace image: %s is empty", path)
	}
	ns := ParseNameAndSize(stem(path))
	b.Bitmap = img
	if ns.HasSize {
		b.AreaSize = ns.Size
	} else {
		b.AreaSize = image.Pt(r.Dx(), r.Dy())
	}
	switch {
	case b.Texture != nil:
		if err := b.Texture.ReplaceFromPath(path); err != nil {
			return errors.Wrap(err, "replace image")
		}
	case textures != nil:
		t, err := textures.FromPath(path)
		if err != nil {
			return errors.Wrap(err, "replace image")
		}
		b.Texture = t
	}
	return nil
}

// Element is one typed hat component. Variants without animation support
// return nil from Animations.
type Element interface {
	Base() *Base
	Metapixels() []metapixel.Metapixel
	Animations() []*anim.Animation
	SetAnimations([]*anim.Animation)
}

// AvailableAnimations lists the animation kinds an element kind may
// carry. Nil for kinds without animation support.
func AvailableAnimations(k Kind) []anim.Kind {
	switch k {
	case KindWearable:
		return []anim.Kind{
			anim.OnDefault, anim.OnPressQuack, anim.OnReleaseQuack,
			anim.OnDuckDeath, anim.OnResurrect,
		}
	case KindWings:
		return []anim.Kind{
			anim.Flying, anim.StartIdle, anim.Gliding,
			anim.StartGliding, anim.Idle,
		}
	case KindFlyingPet, KindWalkingPet:
		return []anim.Kind{
			anim.OnApproach, anim.OnDuckDeath, anim.OnStatic,
			anim.OnDefault, anim.OnResurrect,
		}
	}
	return nil
}
