// Package orderfile models persisted installation orders: numbered
// sequences of component references and pause markers, their wire
// format, and the statistics queried over them.
package orderfile

import (
	"github.com/modhearth/modorder/internal/domain/component"
	"github.com/modhearth/modorder/internal/domain/pause"
)

// Entry is one slot in an install sequence: a component or a pause
// marker. Token returns the wire form.
type Entry interface {
	Token() string
}

// ComponentEntry wraps a component reference as a sequence entry.
type ComponentEntry struct {
	Ref component.Reference
}

// Token returns the "mod_id:comp_key" wire form.
func (e ComponentEntry) Token() string {
	return e.Ref.String()
}

// Order maps a sequence index to its ordered entries.
type Order map[int][]Entry

// ParseToken parses a wire token into an entry. Pause tokens are
// recognized by prefix before the component grammar applies.
func ParseToken(token string) (Entry, error) {
	if p, ok := pause.ParseToken(token); ok {
		return p, nil
	}
	ref, err := component.Parse(token)
	if err != nil {
		return nil, err
	}
	return ComponentEntry{Ref: ref}, nil
}

// FromReferences wraps component references as sequence entries.
func FromReferences(refs []component.Reference) []Entry {
	entries := make([]Entry, len(refs))
	for i, ref := range refs {
		entries[i] = ComponentEntry{Ref: ref}
	}
	return entries
}

// MergeComponents rebuilds an entry list from a merged component order,
// restoring the base list's pause markers. A marker is unconstrained
// and keeps its place: it stays directly ahead of the base component
// that followed it, and a marker with no following component stays at
// the end. Insertions made by the merge land directly after their
// constraining component, so a marker never separates from the
// component behind it. Every component of base must appear in merged,
// which the order merge guarantees.
func MergeComponents(merged []component.Reference, base []Entry) []Entry {
	ahead := make(map[component.Reference][]Entry)
	var block []Entry
	for _, entry := range base {
		ce, ok := entry.(ComponentEntry)
		if !ok {
			block = append(block, entry)
			continue
		}
		if len(block) > 0 {
			ahead[ce.Ref] = block
			block = nil
		}
	}
	trailing := block

	entries := make([]Entry, 0, len(merged)+len(base))
	for _, ref := range merged {
		entries = append(entries, ahead[ref]...)
		entries = append(entries, ComponentEntry{Ref: ref})
	}
	return append(entries, trailing...)
}

// Components returns the component references of a sequence, skipping
// pause markers. This is the shape the order generator consumes as a
// base order.
func Components(entries []Entry) []component.Reference {
	refs := make([]component.Reference, 0, len(entries))
	for _, entry := range entries {
		if ce, ok := entry.(ComponentEntry); ok {
			refs = append(refs, ce.Ref)
		}
	}
	return refs
}
