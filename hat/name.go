// SPDX-License-Identifier: GPL-2.0-or-later

package hat

import (
	"image"
	"path/filepath"
	"strconv"
	"strings"
)

const nameSeparator = "_"

// NameAndSize is the result of parsing an element filename stem. HasSize
// is false when the stem carries no usable size suffix; the loader then
// falls back to the full PNG dimensions.
type NameAndSize struct {
	Name    string
	Size    image.Point
	HasSize bool
}

// ParseNameAndSize splits a stem of the form <name>_<w>_<h>. When the two
// tail segments are not both positive integers the whole stem becomes the
// name.
func ParseNameAndSize(stem string) NameAndSize {
	parts := strings.Split(stem, nameSeparator)
	if len(parts) < 3 {
		return NameAndSize{Name: stem}
	}
	w, errW := strconv.Atoi(parts[len(parts)-2])
	h, errH := strconv.Atoi(parts[len(parts)-1])
	if errW != nil || errH != nil || w <= 0 || h <= 0 || parts[0] == "" {
		return NameAndSize{Name: stem}
	}
	return NameAndSize{
		Name:    parts[0],
		Size:    image.Pt(w, h),
		HasSize: true,
	}
}

// KindFromName classifies an element by its parsed name, case
// insensitively. Pet names match by substring so that numbered pet files
// ("flyingpet2") still classify. Unmatched names yield KindUnspecified.
func KindFromName(name string) Kind {
	name = strings.ToLower(name)
	switch name {
	case "hat":
		return KindWearable
	case "wings":
		return KindWings
	case "extrahat":
		return KindExtra
	case "preview":
		return KindPreview
	case "room":
		return KindRoom
	}
	switch {
	case strings.Contains(name, "flyingpet"):
		return KindFlyingPet
	case strings.Contains(name, "walkingpet"):
		return KindWalkingPet
	}
	return KindUnspecified
}

// stem returns the filename without directory and extension.
func stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
