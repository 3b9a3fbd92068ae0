// SPDX-License-Identifier: GPL-2.0-or-later

// Package texture owns the GL texture handles behind loaded elements.
// GL calls are marshalled onto the main thread.
package texture

import (
	"image"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/gopxl/mainthread/v2"
	"github.com/pkg/errors"

	"hatpack/bitmap"
	"hatpack/hat"
)

type Texture struct {
	id     uint32
	width  int
	height int
	path   string
}

// FromPath decodes the PNG at name and uploads it.
func FromPath(name string) (*Texture, error) {
	img, err := bitmap.Load(name)
	if err != nil {
		return nil, err
	}
	r := img.Bounds()
	if r.Dx() == 0 || r.Dy() == 0 {
		return nil, errors.Errorf("tried to create empty texture from %s", name)
	}
	t := &Texture{
		width:  r.Dx(),
		height: r.Dy(),
		path:   name,
	}
	mainthread.Call(func() {
		t.id = upload(img)
	})
	return t, nil
}

func upload(img *image.NRGBA) uint32 {
	r := img.Bounds()
	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA,
		int32(r.Dx()), int32(r.Dy()), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	return id
}

func (t *Texture) ID() uint32   { return t.id }
func (t *Texture) Width() int   { return t.width }
func (t *Texture) Height() int  { return t.height }
func (t *Texture) Path() string { return t.path }

func (t *Texture) Bind() {
	gl.BindTexture(gl.TEXTURE_2D, t.id)
}

// ReplaceFromPath swaps the texture bytes in place, keeping the handle
// identity so element bases and the reloader stay valid.
func (t *Texture) ReplaceFromPath(name string) error {
	img, err := bitmap.Load(name)
	if err != nil {
		return err
	}
	r := img.Bounds()
	if r.Dx() == 0 || r.Dy() == 0 {
		return errors.Errorf("tried to replace texture with empty image %s", name)
	}
	mainthread.Call(func() {
		gl.DeleteTextures(1, &t.id)
		t.id = upload(img)
	})
	t.width = r.Dx()
	t.height = r.Dy()
	t.path = name
	return nil
}

// Delete releases the GL handle. Safe to call from any goroutine.
func (t *Texture) Delete() {
	id := t.id
	mainthread.CallNonBlock(func() {
		gl.DeleteTextures(1, &id)
	})
}

// Loader adapts the package to the loader contract the hat package
// consumes.
type Loader struct{}

func (Loader) FromPath(name string) (hat.Texture, error) {
	return FromPath(name)
}
