// SPDX-License-Identifier: GPL-2.0-or-later

package hat

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/pkg/errors"
)

var errUnspecifiedKind = errors.New("hat element kind is unspecified")

// byKind orders the unique elements so iteration is deterministic.
func byKind(a, b interface{}) int {
	return int(a.(Kind)) - int(b.(Kind))
}

// Bundle is one hat: at most one element per unique kind plus up to
// MaxPets pet elements in insertion order.
type Bundle struct {
	unique *treemap.Map
	pets   []Element
	Path   string
}

func NewBundle(path string) *Bundle {
	return &Bundle{
		unique: treemap.NewWith(byKind),
		Path:   path,
	}
}

// Load reads every element PNG in dir. Files that fail to parse are
// skipped so one bad file never takes the whole pack down; only an
// unreadable directory is an error.
func Load(dir string, opts LoadOptions) (*Bundle, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrap(err, "open hat directory")
	}
	b := NewBundle(dir)
	log := opts.logger()
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".png") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		ns := ParseNameAndSize(stem(path))
		kind := KindFromName(ns.Name)
		if kind == KindUnspecified {
			continue
		}
		e, err := LoadElement(kind, path, ns, opts)
		if err != nil {
			log.Warn().Err(err).Str("file", entry.Name()).Msg("skipping element")
			continue
		}
		if kind.IsPet() {
			if err := b.AddPet(e); err != nil {
				releaseTexture(e)
				log.Warn().Str("file", entry.Name()).Msg("pet limit reached, skipping")
			}
			continue
		}
		if err := b.AddUnique(kind, e); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func (b *Bundle) HasElements() bool {
	return b.unique.Size() > 0 || len(b.pets) > 0
}

func (b *Bundle) CanAddPets() bool {
	return len(b.pets) < MaxPets
}

func (b *Bundle) Pets() []Element {
	return b.pets
}

// AddElement routes the element into the pet list or the unique map by
// its kind.
func (b *Bundle) AddElement(e Element) error {
	kind := e.Base().Kind
	if kind.IsPet() {
		return b.AddPet(e)
	}
	return b.AddUnique(kind, e)
}

func (b *Bundle) AddPet(e Element) error {
	if !b.CanAddPets() {
		return errors.Errorf("bundle already holds %d pets", MaxPets)
	}
	b.pets = append(b.pets, e)
	return nil
}

// AddUnique inserts e under kind, replacing any prior element of that
// kind. The displaced element's texture is released.
func (b *Bundle) AddUnique(kind Kind, e Element) error {
	if kind == KindUnspecified {
		return errUnspecifiedKind
	}
	if prior, ok := b.unique.Get(kind); ok {
		releaseTexture(prior.(Element))
	}
	b.unique.Put(kind, e)
	return nil
}

// RemoveElement drops the element with the given id from either
// collection and releases its texture.
func (b *Bundle) RemoveElement(id ElementID) {
	if e, ok := b.ByKindOf(id); ok {
		b.unique.Remove(e.Base().Kind)
		releaseTexture(e)
		return
	}
	for i, e := range b.pets {
		if e.Base().ID() == id {
			releaseTexture(e)
			b.pets = append(b.pets[:i], b.pets[i+1:]...)
			return
		}
	}
}

// ReplaceElement atomically swaps the element with the given id for e.
// The UI uses this to change an element's image while keeping its
// selection.
func (b *Bundle) ReplaceElement(id ElementID, e Element) error {
	b.RemoveElement(id)
	return b.AddElement(e)
}

func (b *Bundle) ElementByID(id ElementID) (Element, bool) {
	for _, e := range b.Elements() {
		if e.Base().ID() == id {
			return e, true
		}
	}
	return nil, false
}

// ByKindOf returns the unique element holding the given id.
func (b *Bundle) ByKindOf(id ElementID) (Element, bool) {
	var found Element
	b.unique.Each(func(_, value interface{}) {
		e := value.(Element)
		if found == nil && e.Base().ID() == id {
			found = e
		}
	})
	return found, found != nil
}

func (b *Bundle) ByKind(kind Kind) (Element, bool) {
	v, ok := b.unique.Get(kind)
	if !ok {
		return nil, false
	}
	return v.(Element), true
}

func (b *Bundle) KindOf(id ElementID) (Kind, bool) {
	e, ok := b.ElementByID(id)
	if !ok {
		return KindUnspecified, false
	}
	return e.Base().Kind, true
}

func (b *Bundle) IDOf(kind Kind) (ElementID, bool) {
	e, ok := b.ByKind(kind)
	if !ok {
		return 0, false
	}
	return e.Base().ID(), true
}

// Elements lists unique elements in kind order followed by pets in
// insertion order.
func (b *Bundle) Elements() []Element {
	all := make([]Element, 0, b.unique.Size()+len(b.pets))
	b.unique.Each(func(_, value interface{}) {
		all = append(all, value.(Element))
	})
	return append(all, b.pets...)
}

// FirstElement is the deterministic default selection for the UI.
func (b *Bundle) FirstElement() (Element, bool) {
	all := b.Elements()
	if len(all) == 0 {
		return nil, false
	}
	return all[0], true
}

// Typed accessors for the unique kinds. Nil when absent.

func (b *Bundle) Wearable() *Wearable {
	if e, ok := b.ByKind(KindWearable); ok {
		return e.(*Wearable)
	}
	return nil
}

func (b *Bundle) Wings() *Wings {
	if e, ok := b.ByKind(KindWings); ok {
		return e.(*Wings)
	}
	return nil
}

func (b *Bundle) Extra() *Extra {
	if e, ok := b.ByKind(KindExtra); ok {
		return e.(*Extra)
	}
	return nil
}

func (b *Bundle) Room() *Room {
	if e, ok := b.ByKind(KindRoom); ok {
		return e.(*Room)
	}
	return nil
}

func (b *Bundle) Preview() *Preview {
	if e, ok := b.ByKind(KindPreview); ok {
		return e.(*Preview)
	}
	return nil
}

// DeleteTextures releases every texture the bundle owns. Called when the
// bundle is closed.
func (b *Bundle) DeleteTextures() {
	for _, e := range b.Elements() {
		releaseTexture(e)
	}
}

func releaseTexture(e Element) {
	base := e.Base()
	if base.Texture != nil {
		base.Texture.Delete()
		base.Texture = nil
	}
}
