// SPDX-License-Identifier: GPL-2.0-or-later

package hat

import (
	"image"

	"github.com/rs/zerolog"

	"hatpack/bitmap"
	"hatpack/metapixel"
)

// LoadOptions carries the collaborators a bundle load may use. A nil
// Textures loader yields headless elements; a nil Log keeps loading
// silent.
type LoadOptions struct {
	Textures TextureLoader
	Log      *zerolog.Logger
}

func (o LoadOptions) logger() zerolog.Logger {
	if o.Log != nil {
		return *o.Log
	}
	return zerolog.Nop()
}

// loadBase reads the element PNG, splits off the metapixel area and fills
// the fields every variant shares. Variant loaders consume the returned
// records on top of it.
func loadBase(kind Kind, path string, ns NameAndSize, opts LoadOptions) (Base, []metapixel.Metapixel, error) {
	img, err := bitmap.Load(path)
	if err != nil {
		return Base{}, nil, err
	}
	r := img.Bounds()
	size := image.Pt(r.Dx(), r.Dy())
	if ns.HasSize {
		size = ns.Size
	}
	base := Base{
		Kind:      kind,
		FrameSize: image.Pt(MinFrameSize, MinFrameSize),
		AreaSize:  size,
		Bitmap:    img,
		Name:      ns.Name,
		id:        nextElementID(),
	}
	if opts.Textures != nil {
		t, err := opts.Textures.FromPath(path)
		if err != nil {
			log := opts.logger()
			log.Warn().Err(err).Str("file", path).Msg("texture load failed")
		} else {
			base.Texture = t
		}
	}
	return base, metapixel.Decode(img, size.X), nil
}

// LoadElement loads a single element file of the given kind.
func LoadElement(kind Kind, path string, ns NameAndSize, opts LoadOptions) (Element, error) {
	switch kind {
	case KindWearable:
		return loadWearable(path, ns, opts)
	case KindWings:
		return loadWings(path, ns, opts)
	case KindExtra:
		return loadExtra(path, ns, opts)
	case KindFlyingPet:
		return loadFlyingPet(path, ns, opts)
	case KindWalkingPet:
		return loadWalkingPet(path, ns, opts)
	case KindRoom:
		return loadRoom(path, ns, opts)
	case KindPreview:
		return loadPreview(path, opts)
	}
	return nil, errUnspecifiedKind
}
