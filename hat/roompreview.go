// SPDX-License-Identifier: GPL-2.0-or-later

package hat

import (
	"image"

	"hatpack/anim"
	"hatpack/metapixel"
)

// Room is the backdrop image shown in the hat room. It carries no
// metapixels of its own.
type Room struct {
	base Base
}

func (r *Room) Base() *Base                     { return &r.base }
func (r *Room) Animations() []*anim.Animation   { return nil }
func (r *Room) SetAnimations([]*anim.Animation) {}

func (r *Room) Metapixels() []metapixel.Metapixel { return nil }

func loadRoom(path string, ns NameAndSize, opts LoadOptions) (*Room, error) {
	base, _, err := loadBase(KindRoom, path, ns, opts)
	if err != nil {
		return nil, err
	}
	base.FrameSize = base.AreaSize
	return &Room{base: base}, nil
}

// Preview is the thumbnail shown in hat listings. The size suffix is
// ignored: the whole image is the art area.
type Preview struct {
	base Base
}

func (p *Preview) Base() *Base                     { return &p.base }
func (p *Preview) Animations() []*anim.Animation   { return nil }
func (p *Preview) SetAnimations([]*anim.Animation) {}

func (p *Preview) Metapixels() []metapixel.Metapixel { return nil }

func loadPreview(path string, opts LoadOptions) (*Preview, error) {
	ns := ParseNameAndSize(stem(path))
	base, _, err := loadBase(KindPreview, path, NameAndSize{Name: ns.Name}, opts)
	if err != nil {
		return nil, err
	}
	r := base.Bitmap.Bounds()
	base.AreaSize = image.Pt(r.Dx(), r.Dy())
	return &Preview{base: base}, nil
}
