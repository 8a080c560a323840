package order

import "github.com/modhearth/modorder/internal/domain/component"

// mergeOrders folds the ideal order into a user-maintained base order.
//
// Entries already in base keep their existing relative order
// unconditionally; the merge never reorders them, even where the ideal
// order disagrees. The remaining ideal entries are inserted one at a
// time, in ideal sequence, each at the lowest index that places it
// after every already-placed entry whose ideal position precedes its
// own. An entry with no constraining neighbor placed yet lands at
// index 0, so unconstrained insertions cluster toward the front.
func mergeOrders(ideal, base []component.Reference) []component.Reference {
	baseSet := component.NewSet(base...)

	toInsert := make([]component.Reference, 0, len(ideal))
	for _, ref := range ideal {
		if !baseSet.Has(ref) {
			toInsert = append(toInsert, ref)
		}
	}

	result := make([]component.Reference, len(base), len(base)+len(toInsert))
	copy(result, base)

	if len(toInsert) == 0 {
		return result
	}

	idealPos := make(map[component.Reference]int, len(ideal))
	for pos, ref := range ideal {
		idealPos[ref] = pos
	}

	for _, ref := range toInsert {
		result = insertAt(result, insertionPoint(ref, result, idealPos), ref)
	}

	return result
}

// insertionPoint scans the current order for the lowest index that
// keeps every placed predecessor (by ideal position) ahead of ref.
// Entries without an ideal position impose no constraint.
func insertionPoint(ref component.Reference, current []component.Reference, idealPos map[component.Reference]int) int {
	refPos := idealPos[ref]

	minPos := 0
	for idx, existing := range current {
		existingPos, constrained := idealPos[existing]
		if !constrained {
			continue
		}
		if existingPos < refPos {
			minPos = idx + 1
		}
	}

	return minPos
}

func insertAt(refs []component.Reference, at int, ref component.Reference) []component.Reference {
	refs = append(refs, component.Reference{})
	copy(refs[at+1:], refs[at:])
	refs[at] = ref
	return refs
}
