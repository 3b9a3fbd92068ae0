// SPDX-License-Identifier: GPL-2.0-or-later

package drawer

import (
	"testing"

	"hatpack/anim"
)

func TestKeyStateTransitions(t *testing.T) {
	for _, tc := range []struct {
		name          string
		state         KeyState
		pressed, down bool
		want          KeyState
	}{
		{"idle stays idle", KeyNone, false, false, KeyNone},
		{"idle to pressed", KeyNone, true, true, KeyPressed},
		{"pressed to down", KeyPressed, false, true, KeyDown},
		{"pressed to released", KeyPressed, false, false, KeyReleased},
		{"down holds", KeyDown, false, true, KeyDown},
		{"down to released", KeyDown, false, false, KeyReleased},
		{"released to idle", KeyReleased, false, false, KeyNone},
		{"released to pressed", KeyReleased, true, true, KeyPressed},
	} {
		if got := tc.state.Next(tc.pressed, tc.down); got != tc.want {
			t.Errorf("%s: Next = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestAdvanceWithoutAnimations(t *testing.T) {
	d := New()
	for i := 0; i < 3; i++ {
		if got := d.Advance(60); got != 0 {
			t.Fatalf("empty drawer rendered frame %d", got)
		}
	}
}

func TestAdvanceLoops(t *testing.T) {
	d := New()
	d.AddAnimation(anim.New(anim.OnDefault, 1, true,
		[]anim.Frame{anim.NewFrame(0), anim.NewFrame(1), anim.NewFrame(2)}))

	want := []int{0, 1, 1, 2, 2, 0, 0, 1}
	var got []int
	got = append(got, d.Advance(60))
	for i := 1; i < len(want); i++ {
		got = append(got, d.Advance(60))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("frame sequence = %v, want %v", got, want)
		}
	}
}

func TestAdvancePausesOnLastFrame(t *testing.T) {
	d := New()
	d.AddAnimation(anim.New(anim.OnDefault, 1, false,
		[]anim.Frame{anim.NewFrame(5), anim.NewFrame(9)}))

	d.Advance(60)
	d.Advance(60)
	last := d.Advance(60)
	if last != 9 {
		t.Fatalf("frame before pause = %d, want 9", last)
	}
	if !d.Paused {
		t.Fatal("non-looping animation did not pause at its last frame")
	}
	if got := d.Advance(60); got != 9 {
		t.Errorf("paused drawer rendered frame %d, want 9", got)
	}
}

func TestSetAnim(t *testing.T) {
	d := New()
	d.AddAnimation(anim.New(anim.OnDefault, 1, true,
		[]anim.Frame{anim.NewFrame(0), anim.NewFrame(1), anim.NewFrame(2), anim.NewFrame(3)}))
	d.AddAnimation(anim.New(anim.Gliding, 1, true,
		[]anim.Frame{anim.NewFrame(4), anim.NewFrame(5), anim.NewFrame(6), anim.NewFrame(7)}))

	if d.SetAnim(anim.OnDuckDeath, ChangeReset) {
		t.Error("SetAnim reported success for a missing kind")
	}

	d.FrameIndex = 3
	if !d.SetAnim(anim.Gliding, ChangeKeep) {
		t.Fatal("SetAnim failed for a present kind")
	}
	if d.AnimIndex != 1 || d.FrameIndex != 3 {
		t.Errorf("keep: anim %d frame %d, want anim 1 frame 3", d.AnimIndex, d.FrameIndex)
	}

	if !d.SetAnim(anim.OnDefault, ChangeReverse) {
		t.Fatal("SetAnim failed for a present kind")
	}
	if d.FrameIndex != 1 {
		t.Errorf("reverse: frame %d, want 1", d.FrameIndex)
	}

	d.Paused = true
	if !d.SetAnim(anim.Gliding, ChangeReset) {
		t.Fatal("SetAnim failed for a present kind")
	}
	if d.FrameIndex != 0 || d.Paused {
		t.Errorf("reset: frame %d paused %v, want frame 0 unpaused", d.FrameIndex, d.Paused)
	}
}
