// SPDX-License-Identifier: GPL-2.0-or-later

// Package metapixel implements the in-image sidecar format of hat packs.
// The columns right of the art area carry one record per opaque pixel:
// red is the opcode, green and blue are the operands.
package metapixel

// OpCode ordinals are part of the wire format. Never reorder.
type OpCode byte

const (
	StrappedOn OpCode = iota
	IsBigHat
	FrameSize
	AnimationType
	AnimationDelay
	AnimationLoop
	AnimationFrame
	AnimationFramePeriod
	LinkFrameState
	WingsGeneralOffset
	WingsCrouchOffset
	WingsRagdollOffset
	WingsSlideOffset
	GenerateWingsAnimations
	PetChangesAngle
	PetDistance
	PetNoFlip
	WingsAutoGlideFrame
	WingsAutoIdleFrame
	WingsAutoAnimationsSpeed
	ChangeAnimationsEveryLevel
	PetSpeed
	WingsNetOffset
	OnSpawnAnimation

	numOpCodes
)

var opCodeNames = [numOpCodes]string{
	"StrappedOn",
	"IsBigHat",
	"FrameSize",
	"AnimationType",
	"AnimationDelay",
	"AnimationLoop",
	"AnimationFrame",
	"AnimationFramePeriod",
	"LinkFrameState",
	"WingsGeneralOffset",
	"WingsCrouchOffset",
	"WingsRagdollOffset",
	"WingsSlideOffset",
	"GenerateWingsAnimations",
	"PetChangesAngle",
	"PetDistance",
	"PetNoFlip",
	"WingsAutoGlideFrame",
	"WingsAutoIdleFrame",
	"WingsAutoAnimationsSpeed",
	"ChangeAnimationsEveryLevel",
	"PetSpeed",
	"WingsNetOffset",
	"OnSpawnAnimation",
}

func (o OpCode) Valid() bool {
	return o < numOpCodes
}

func (o OpCode) String() string {
	if !o.Valid() {
		return "Unknown"
	}
	return opCodeNames[o]
}

// Metapixel is one decoded record.
type Metapixel struct {
	Op   OpCode
	A, B byte
}

// New builds a record from raw channel bytes. The second return is false
// when red does not name a known opcode.
func New(r, g, b byte) (Metapixel, bool) {
	if !OpCode(r).Valid() {
		return Metapixel{}, false
	}
	return Metapixel{Op: OpCode(r), A: g, B: b}, true
}

// Stream builds an ordered record list for encoding.
type Stream struct {
	Pixels []Metapixel
}

func (s *Stream) Push(op OpCode, a, b byte) {
	if !op.Valid() {
		return
	}
	s.Pixels = append(s.Pixels, Metapixel{Op: op, A: a, B: b})
}

func (s *Stream) PushRaw(p Metapixel) {
	s.Pixels = append(s.Pixels, p)
}

func (s *Stream) PushMany(ps []Metapixel) {
	s.Pixels = append(s.Pixels, ps...)
}
