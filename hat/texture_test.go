// SPDX-License-Identifier: GPL-2.0-or-later

package hat

import (
	"fmt"
	"image"
	"testing"

	"hatpack/metapixel"
)

type fakeTexture struct {
	path     string
	replaced []string
	deleted  bool
}

func (f *fakeTexture) Width() int   { return 32 }
func (f *fakeTexture) Height() int  { return 32 }
func (f *fakeTexture) Path() string { return f.path }
func (f *fakeTexture) Delete()      { f.deleted = true }

func (f *fakeTexture) ReplaceFromPath(path string) error {
	f.replaced = append(f.replaced, path)
	f.path = path
	return nil
}

type fakeLoader struct {
	loaded []*fakeTexture
}

func (l *fakeLoader) FromPath(path string) (Texture, error) {
	t := &fakeTexture{path: path}
	l.loaded = append(l.loaded, t)
	return t, nil
}

func TestLoadAcquiresTextures(t *testing.T) {
	dir := t.TempDir()
	path := writeElementFile(t, dir, "hat_32_32.png", 32, 32, []metapixel.Metapixel{
		pix(metapixel.FrameSize, 32, 32),
	})

	loader := &fakeLoader{}
	b, err := Load(dir, LoadOptions{Textures: loader})
	if err != nil {
		t.Fatal(err)
	}
	w := b.Wearable()
	if w.base.Texture == nil {
		t.Fatal("element loaded without a texture")
	}
	if w.base.Texture.Path() != path {
		t.Errorf("texture path = %q, want %q", w.base.Texture.Path(), path)
	}

	b.DeleteTextures()
	if !loader.loaded[0].deleted {
		t.Error("DeleteTextures did not release the texture")
	}
	if w.base.Texture != nil {
		t.Error("texture handle not cleared after delete")
	}
}

func TestRemoveElementReleasesTexture(t *testing.T) {
	dir := t.TempDir()
	writeElementFile(t, dir, "hat_32_32.png", 32, 32, nil)

	loader := &fakeLoader{}
	b, err := Load(dir, LoadOptions{Textures: loader})
	if err != nil {
		t.Fatal(err)
	}
	w := b.Wearable()
	b.RemoveElement(w.base.ID())
	if !loader.loaded[0].deleted {
		t.Error("removing the element did not release its texture")
	}
}

func TestAddUniqueReleasesDisplacedTexture(t *testing.T) {
	dir := t.TempDir()
	writeElementFile(t, dir, "hat_32_32.png", 32, 32, nil)

	loader := &fakeLoader{}
	b, err := Load(dir, LoadOptions{Textures: loader})
	if err != nil {
		t.Fatal(err)
	}
	if err := b.AddUnique(KindWearable, newTestWearable()); err != nil {
		t.Fatal(err)
	}
	if !loader.loaded[0].deleted {
		t.Error("overwriting the wearable slot did not release the old texture")
	}
}

func TestLoadReleasesSkippedPetTextures(t *testing.T) {
	dir := t.TempDir()
	for i := 1; i <= 6; i++ {
		writeElementFile(t, dir, fmt.Sprintf("flyingpet%d_32_32.png", i), 32, 32, nil)
	}

	loader := &fakeLoader{}
	b, err := Load(dir, LoadOptions{Textures: loader})
	if err != nil {
		t.Fatal(err)
	}
	if len(b.Pets()) != MaxPets {
		t.Fatalf("bundle has %d pets, want %d", len(b.Pets()), MaxPets)
	}
	if len(loader.loaded) != 6 {
		t.Fatalf("loader acquired %d textures, want 6", len(loader.loaded))
	}
	if !loader.loaded[5].deleted {
		t.Error("texture of the skipped sixth pet was never released")
	}
	for i := 0; i < MaxPets; i++ {
		if loader.loaded[i].deleted {
			t.Errorf("texture of kept pet %d was released", i)
		}
	}
}

func TestReplaceImage(t *testing.T) {
	dir := t.TempDir()
	writeElementFile(t, dir, "hat_32_32.png", 32, 32, nil)
	next := writeElementFile(t, t.TempDir(), "hat_48_32.png", 48, 32, nil)

	loader := &fakeLoader{}
	b, err := Load(dir, LoadOptions{Textures: loader})
	if err != nil {
		t.Fatal(err)
	}
	w := b.Wearable()
	if err := w.base.ReplaceImage(next, loader); err != nil {
		t.Fatal(err)
	}
	if w.base.AreaSize != image.Pt(48, 32) {
		t.Errorf("area size = %v, want (48,32) from the new filename", w.base.AreaSize)
	}
	ft := w.base.Texture.(*fakeTexture)
	if len(ft.replaced) != 1 || ft.replaced[0] != next {
		t.Errorf("texture replaced with %v, want [%s]", ft.replaced, next)
	}
}
