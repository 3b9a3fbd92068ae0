// SPDX-License-Identifier: GPL-2.0-or-later

package hat

import (
	"os"
	"path/filepath"
	"testing"

	"hatpack/anim"
	"hatpack/bitmap"
	"hatpack/metapixel"
)

func TestSaveRoomWritesArtAreaOnly(t *testing.T) {
	src := t.TempDir()
	writeElementFile(t, src, "room.png", 64, 48, nil)

	b, err := Load(src, LoadOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if b.Room() == nil {
		t.Fatal("bundle has no room")
	}

	dst := filepath.Join(t.TempDir(), "saved")
	if err := b.Save(dst); err != nil {
		t.Fatal(err)
	}
	img, err := bitmap.Load(filepath.Join(dst, "room_64_48.png"))
	if err != nil {
		t.Fatal(err)
	}
	r := img.Bounds()
	if r.Dx() != 64 || r.Dy() != 48 {
		t.Errorf("saved room is %dx%d, want 64x48 with no metapixel columns", r.Dx(), r.Dy())
	}
}

func TestSaveReplacesTargetDirectory(t *testing.T) {
	src := t.TempDir()
	writeElementFile(t, src, "hat_32_32.png", 32, 32, []metapixel.Metapixel{
		pix(metapixel.FrameSize, 32, 32),
	})
	b, err := Load(src, LoadOptions{})
	if err != nil {
		t.Fatal(err)
	}

	dst := filepath.Join(t.TempDir(), "saved")
	if err := os.MkdirAll(dst, 0o755); err != nil {
		t.Fatal(err)
	}
	stale := filepath.Join(dst, "leftover.png")
	if err := os.WriteFile(stale, []byte("old"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := b.Save(dst); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(stale); !os.IsNotExist(err) {
		t.Error("stale file survived the save")
	}
	if _, err := os.Stat(filepath.Join(dst, "hat_32_32.png")); err != nil {
		t.Errorf("saved element missing: %v", err)
	}
}

func TestWearableRoundTrip(t *testing.T) {
	src := t.TempDir()
	writeElementFile(t, src, "hat_32_32.png", 32, 32, []metapixel.Metapixel{
		pix(metapixel.StrappedOn, 0, 0),
		pix(metapixel.FrameSize, 32, 32),
		pix(metapixel.AnimationType, byte(anim.OnDefault), 0),
		pix(metapixel.AnimationDelay, 3, 0),
		pix(metapixel.AnimationLoop, 1, 0),
		pix(metapixel.AnimationFrame, 0, 0),
		pix(metapixel.AnimationFrame, 2, 0),
		pix(metapixel.AnimationFrame, 4, 0),
		pix(metapixel.AnimationType, byte(anim.OnPressQuack), 0),
		pix(metapixel.AnimationDelay, 1, 0),
		pix(metapixel.AnimationLoop, 0, 0),
		pix(metapixel.AnimationFrame, 7, 0),
		pix(metapixel.AnimationFrame, 7, 0),
		pix(metapixel.AnimationFrame, 7, 0),
	})
	b, err := Load(src, LoadOptions{})
	if err != nil {
		t.Fatal(err)
	}
	w := b.Wearable()
	if w == nil {
		t.Fatal("bundle has no wearable")
	}
	// non-contiguous frame lists must stay explicit on the wire
	for _, p := range w.Metapixels() {
		if p.Op == metapixel.AnimationFramePeriod {
			t.Fatalf("non-run frames compressed into %+v", p)
		}
	}

	dst := filepath.Join(t.TempDir(), "saved")
	if err := b.Save(dst); err != nil {
		t.Fatal(err)
	}
	b2, err := Load(dst, LoadOptions{})
	if err != nil {
		t.Fatal(err)
	}
	w2 := b2.Wearable()
	if w2 == nil {
		t.Fatal("reloaded bundle has no wearable")
	}
	if !w2.StrappedOn {
		t.Error("StrappedOn lost in round trip")
	}
	if len(w2.anims) != 2 {
		t.Fatalf("reloaded wearable has %d animations, want 2", len(w2.anims))
	}
	wantFrames := [][]int{{0, 2, 4}, {7, 7, 7}}
	wantKinds := []anim.Kind{anim.OnDefault, anim.OnPressQuack}
	for i, a := range w2.anims {
		if a.Kind != wantKinds[i] {
			t.Errorf("animation %d kind = %v, want %v", i, a.Kind, wantKinds[i])
		}
		got := a.FrameValues()
		if len(got) != len(wantFrames[i]) {
			t.Errorf("animation %d frames = %v, want %v", i, got, wantFrames[i])
			continue
		}
		for j, v := range wantFrames[i] {
			if got[j] != v {
				t.Errorf("animation %d frame %d = %d, want %d", i, j, got[j], v)
			}
		}
	}
}

func TestFlyingPetRoundTrip(t *testing.T) {
	src := t.TempDir()
	writeElementFile(t, src, "flyingpet_32_32.png", 32, 32, []metapixel.Metapixel{
		pix(metapixel.PetDistance, 15, 0),
		pix(metapixel.FrameSize, 32, 32),
		pix(metapixel.PetChangesAngle, 0, 0),
		pix(metapixel.PetSpeed, 20, 0),
	})
	b, err := Load(src, LoadOptions{})
	if err != nil {
		t.Fatal(err)
	}

	dst := filepath.Join(t.TempDir(), "saved")
	if err := b.Save(dst); err != nil {
		t.Fatal(err)
	}
	b2, err := Load(dst, LoadOptions{})
	if err != nil {
		t.Fatal(err)
	}
	pets := b2.Pets()
	if len(pets) != 1 {
		t.Fatalf("reloaded bundle has %d pets, want 1", len(pets))
	}
	pet := pets[0].(*FlyingPet)
	if pet.Distance != 15 || pet.Speed != 20 || !pet.ChangesAngle {
		t.Errorf("pet reloaded as distance %d speed %d angle %v",
			pet.Distance, pet.Speed, pet.ChangesAngle)
	}
}
