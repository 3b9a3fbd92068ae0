// SPDX-License-Identifier: GPL-2.0-or-later

// Package reload hot-reloads textures whose source PNG changed on disk.
// It polls modified times; no platform watcher is involved, so it works
// the same everywhere and never misses editors that replace files.
package reload

import (
	"os"
	"time"

	"github.com/rs/zerolog"

	"hatpack/hat"
)

type entry struct {
	texture hat.Texture
	path    string
	mtime   time.Time
}

// Reloader tracks (texture, path, mtime) triples. Update re-checks the
// files and reloads the ones that changed.
type Reloader struct {
	entries []entry
	log     zerolog.Logger
}

func New(log *zerolog.Logger) *Reloader {
	r := &Reloader{log: zerolog.Nop()}
	if log != nil {
		r.log = *log
	}
	return r
}

// Add starts watching a texture. Textures without a source path are
// ignored.
func (r *Reloader) Add(t hat.Texture) {
	if t == nil || t.Path() == "" {
		return
	}
	mtime, ok := modifiedTime(t.Path())
	if !ok {
		return
	}
	r.entries = append(r.entries, entry{texture: t, path: t.Path(), mtime: mtime})
}

// AddBundle watches every texture the bundle currently owns.
func (r *Reloader) AddBundle(b *hat.Bundle) {
	for _, e := range b.Elements() {
		r.Add(e.Base().Texture)
	}
}

// Remove stops watching the given texture, typically because its element
// was removed from the bundle.
func (r *Reloader) Remove(t hat.Texture) {
	for i, e := range r.entries {
		if e.texture == t {
			r.entries = append(r.entries[:i], r.entries[i+1:]...)
			return
		}
	}
}

// Update polls every watched file once and reloads changed textures.
// Call it once per frame.
func (r *Reloader) Update() {
	for i := range r.entries {
		e := &r.entries[i]
		mtime, ok := modifiedTime(e.path)
		if !ok {
			continue
		}
		if mtime.Equal(e.mtime) {
			continue
		}
		e.mtime = mtime
		if err := e.texture.ReplaceFromPath(e.path); err != nil {
			r.log.Warn().Err(err).Str("file", e.path).Msg("texture reload failed")
		}
	}
}

func modifiedTime(path string) (time.Time, bool) {
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}, false
	}
	return info.ModTime(), true
}
