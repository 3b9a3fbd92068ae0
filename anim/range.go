// SPDX-License-Identifier: GPL-2.0-or-later

package anim

// IsRange reports whether values step by exactly one in a constant
// direction, so that the endpoints alone reconstruct the list. Lists of
// length zero or one count as ranges.
func IsRange(values []int) bool {
	if len(values) < 2 {
		return true
	}
	step := values[1] - values[0]
	if step != 1 && step != -1 {
		return false
	}
	for i := 1; i+1 < len(values); i++ {
		if values[i+1]-values[i] != step {
			return false
		}
	}
	return true
}

// FramesFromRange expands inclusive endpoints into a frame list,
// descending when start is above end.
func FramesFromRange(start, end int) []Frame {
	step := 1
	if start > end {
		step = -1
	}
	frames := make([]Frame, 0, (end-start)*step+1)
	for v := start; ; v += step {
		frames = append(frames, NewFrame(v))
		if v == end {
			break
		}
	}
	return frames
}
