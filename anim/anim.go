// SPDX-License-Identifier: GPL-2.0-or-later

// Package anim holds the typed animation records that hat elements carry
// and their metapixel serialization.
package anim

import (
	"sync/atomic"

	"hatpack/metapixel"
)

// Kind ordinals are part of the wire format. Never reorder.
type Kind byte

const (
	OnDefault Kind = iota
	OnPressQuack
	OnReleaseQuack
	OnStatic
	OnApproach
	OnDuckDeath
	Flying
	StartIdle
	Gliding
	StartGliding
	Idle
	OnResurrect

	numKinds
)

var kindNames = [numKinds]string{
	"On Default",
	"On Press Quack",
	"On Release Quack",
	"On Static",
	"On Approach",
	"On Duck Death",
	"Flying",
	"Start Idle",
	"Gliding",
	"Start Gliding",
	"Idle",
	"On Resurrect",
}

func (k Kind) String() string {
	if k >= numKinds {
		return "Unknown"
	}
	return kindNames[k]
}

// KindFromByte maps a wire byte onto a Kind. The second return is false
// for bytes outside the enumeration.
func KindFromByte(b byte) (Kind, bool) {
	if Kind(b) >= numKinds {
		return 0, false
	}
	return Kind(b), true
}

// FrameID is an opaque process-wide identifier. It exists so the UI can
// track individual list entries across reorders even when frame values
// collide. It is never serialized.
type FrameID uint32

var frameIDCounter atomic.Uint32

func nextFrameID() FrameID {
	return FrameID(frameIDCounter.Add(1) - 1)
}

// Frame is one sprite-sheet frame index inside an animation.
type Frame struct {
	Value int
	id    FrameID
}

func NewFrame(value int) Frame {
	return Frame{Value: value, id: nextFrameID()}
}

func (f Frame) ID() FrameID {
	return f.id
}

// Clone returns a copy carrying a fresh id.
func (f Frame) Clone() Frame {
	return NewFrame(f.Value)
}

// Animation is one typed animation. Delay is in game ticks, always at
// least 1. Frames may be empty; such an animation is valid but will not
// play. The New* fields are UI staging values and are never serialized.
type Animation struct {
	Kind    Kind
	Delay   int
	Looping bool
	Frames  []Frame

	NewFrame      int
	NewRangeStart int
	NewRangeEnd   int
}

func New(kind Kind, delay int, looping bool, frames []Frame) *Animation {
	if delay < 1 {
		delay = 1
	}
	if delay > 255 {
		delay = 255
	}
	return &Animation{
		Kind:          kind,
		Delay:         delay,
		Looping:       looping,
		Frames:        frames,
		NewRangeStart: 1,
		NewRangeEnd:   1,
	}
}

// FrameValues returns the frame indices without their ids.
func (a *Animation) FrameValues() []int {
	values := make([]int, len(a.Frames))
	for i, f := range a.Frames {
		values[i] = f.Value
	}
	return values
}

// Metapixels serializes the animation: the three header records followed
// by a single AnimationFramePeriod when the frames form a contiguous run
// of length above one, otherwise one AnimationFrame per frame.
func (a *Animation) Metapixels() []metapixel.Metapixel {
	var s metapixel.Stream
	s.Push(metapixel.AnimationType, byte(a.Kind), 0)
	s.Push(metapixel.AnimationDelay, byte(a.Delay), 0)
	var loop byte
	if a.Looping {
		loop = 1
	}
	s.Push(metapixel.AnimationLoop, loop, 0)

	if len(a.Frames) > 1 && IsRange(a.FrameValues()) {
		s.Push(metapixel.AnimationFramePeriod,
			byte(a.Frames[0].Value),
			byte(a.Frames[len(a.Frames)-1].Value))
		return s.Pixels
	}
	for _, f := range a.Frames {
		s.Push(metapixel.AnimationFrame, byte(f.Value), 0)
	}
	return s.Pixels
}
