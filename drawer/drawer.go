// SPDX-License-Identifier: GPL-2.0-or-later

// Package drawer is the playback core behind the sprite preview: frame
// timing, animation switching and the quack-key state machine. It holds
// no GL state; the shell owns rendering.
package drawer

import "hatpack/anim"

// gameHertz is the reference tick rate animation delays count in.
const gameHertz = 60.0

// KeyState tracks the quack key across frames.
type KeyState int

const (
	KeyNone KeyState = iota
	KeyPressed
	KeyDown
	KeyReleased
)

// Next advances the state machine by one frame. pressed reports a fresh
// key-down event this frame, down reports the key being held.
func (s KeyState) Next(pressed, down bool) KeyState {
	switch s {
	case KeyNone, KeyReleased:
		if pressed {
			return KeyPressed
		}
		return KeyNone
	case KeyPressed, KeyDown:
		if down {
			return KeyDown
		}
		return KeyReleased
	}
	return KeyNone
}

// ChangeBehaviour selects what happens to the frame cursor when the
// active animation switches.
type ChangeBehaviour int

const (
	ChangeReset ChangeBehaviour = iota
	ChangeKeep
	ChangeReverse
)

// Drawer plays one element's animations.
type Drawer struct {
	AnimIndex  int
	FrameIndex int
	FrameTimer float64
	Paused     bool

	animations  []*anim.Animation
	defaultAnim *anim.Animation
}

func New() *Drawer {
	return &Drawer{
		defaultAnim: anim.New(anim.OnDefault, 1, false, []anim.Frame{anim.NewFrame(0)}),
	}
}

func (d *Drawer) AddAnimation(a *anim.Animation) {
	d.animations = append(d.animations, a)
}

// SetAnim switches to the first animation of the given kind. Returns
// false when the drawer has no such animation.
func (d *Drawer) SetAnim(kind anim.Kind, behaviour ChangeBehaviour) bool {
	for i, a := range d.animations {
		if a.Kind != kind {
			continue
		}
		switch behaviour {
		case ChangeReset:
			d.FrameIndex = 0
		case ChangeKeep:
		case ChangeReverse:
			d.FrameIndex = len(a.Frames) - d.FrameIndex
		}
		d.Paused = false
		d.AnimIndex = i
		return true
	}
	return false
}

// current returns the active animation, falling back to the built-in
// single-frame default when none were added.
func (d *Drawer) current() *anim.Animation {
	if len(d.animations) == 0 {
		return d.defaultAnim
	}
	if d.AnimIndex >= len(d.animations) {
		d.AnimIndex = len(d.animations) - 1
	}
	return d.animations[d.AnimIndex]
}

// Advance steps the frame timer at the given display rate and returns
// the frame value to render. A non-looping animation pauses on its last
// frame.
func (d *Drawer) Advance(hertz float64) int {
	a := d.current()
	if len(a.Frames) == 0 {
		d.FrameIndex = 0
		return 0
	}
	if d.FrameIndex >= len(a.Frames) {
		d.FrameIndex = len(a.Frames) - 1
	}
	if !d.Paused {
		if d.FrameIndex == len(a.Frames)-1 && !a.Looping {
			d.Paused = true
		} else {
			d.FrameTimer += hertz / gameHertz
			if d.FrameTimer > float64(a.Delay) {
				d.FrameTimer = 0
				d.FrameIndex = (d.FrameIndex + 1) % len(a.Frames)
			}
		}
	}
	return a.Frames[d.FrameIndex].Value
}
