// SPDX-License-Identifier: GPL-2.0-or-later

package anim

import "hatpack/metapixel"

// Extract decodes one animation from pixels when index i points at an
// AnimationType record followed by exactly AnimationDelay, AnimationLoop
// and a frame record. Frames come either from one AnimationFramePeriod or
// from the run of AnimationFrame records starting at i+3. The second
// return is false when the header shape does not match or the kind byte
// is outside the enumeration.
func Extract(pixels []metapixel.Metapixel, i int) (*Animation, bool) {
	if i < 0 || i+3 >= len(pixels) {
		return nil, false
	}
	typ, delay, loop, frame := pixels[i], pixels[i+1], pixels[i+2], pixels[i+3]
	if typ.Op != metapixel.AnimationType ||
		delay.Op != metapixel.AnimationDelay ||
		loop.Op != metapixel.AnimationLoop {
		return nil, false
	}
	if frame.Op != metapixel.AnimationFrame && frame.Op != metapixel.AnimationFramePeriod {
		return nil, false
	}
	kind, ok := KindFromByte(typ.A)
	if !ok {
		return nil, false
	}
	looping := loop.A != 0

	if frame.Op == metapixel.AnimationFramePeriod {
		return New(kind, int(delay.A), looping, FramesFromRange(int(frame.A), int(frame.B))), true
	}
	var frames []Frame
	for _, p := range pixels[i+3:] {
		if p.Op != metapixel.AnimationFrame {
			break
		}
		frames = append(frames, NewFrame(int(p.A)))
	}
	return New(kind, int(delay.A), looping, frames), true
}
