// Package pause models user-inserted pause markers in an install sequence.
//
// A pause is a slot in an order list that asks the user to stop and do
// something by hand (save, test, back up) before installing further
// components. Pauses never appear in dependency or order rules, so the
// scheduler treats them as unconstrained and preserves them positionally.
package pause

import (
	"strconv"
	"strings"
	"sync/atomic"
)

// Prefix starts every pause token.
const Prefix = "pause"

// descriptionSep separates the pause id from its description in token form.
const descriptionSep = "::"

// Counter is the pause-id sequence source. Each document (or process)
// owns one; ids are unique within it. Increments are atomic, so entries
// may be created from multiple goroutines sharing a Counter.
type Counter struct {
	n atomic.Uint64
}

// NewCounter creates a Counter starting at zero; the first entry it
// mints is "pause:1".
func NewCounter() *Counter {
	return &Counter{}
}

// Next returns the next pause number.
func (c *Counter) Next() uint64 {
	return c.n.Add(1)
}

// Reset rewinds the counter to zero. Used when starting a fresh
// document and between tests.
func (c *Counter) Reset() {
	c.n.Store(0)
}

// NewEntry mints a pause entry with the next id from the counter.
func (c *Counter) NewEntry(description string) Entry {
	return Entry{
		id:          Prefix + ":" + strconv.FormatUint(c.Next(), 10),
		description: description,
	}
}

// Entry is a single pause marker.
// Token format: "pause:<n>" or "pause:<n>::<description>".
type Entry struct {
	id          string
	description string
}

// ID returns the pause id, e.g. "pause:3".
func (e Entry) ID() string {
	return e.id
}

// Description returns the optional description.
func (e Entry) Description() string {
	return e.description
}

// String returns the token form.
func (e Entry) String() string {
	if e.description != "" {
		return e.id + descriptionSep + e.description
	}
	return e.id
}

// Token returns the token form; alias of String for entry interfaces.
func (e Entry) Token() string {
	return e.String()
}

// IsZero returns true if this is a zero-value Entry.
func (e Entry) IsZero() bool {
	return e.id == ""
}

// IsPause reports whether token is a pause token.
func IsPause(token string) bool {
	return strings.HasPrefix(token, Prefix+":")
}

// ParseToken parses a pause token back into an Entry.
// Returns false when token does not carry the pause prefix.
func ParseToken(token string) (Entry, bool) {
	if !IsPause(token) {
		return Entry{}, false
	}
	id, description, _ := strings.Cut(token, descriptionSep)
	return Entry{id: id, description: description}, true
}

// ExtractID returns the numeric part of a pause token ("pause:3::x" -> "3").
// Returns an empty string for non-pause tokens.
func ExtractID(token string) string {
	entry, ok := ParseToken(token)
	if !ok {
		return ""
	}
	_, number, _ := strings.Cut(entry.id, ":")
	return number
}
