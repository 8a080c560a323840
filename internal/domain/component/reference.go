// Package component defines the identity of installable mod components.
package component

import (
	"errors"
	"fmt"
	"strings"
)

// Separator joins the mod id and component key in the token form.
const Separator = ":"

// Errors for Reference construction and parsing.
var (
	ErrEmptyModID         = errors.New("mod id cannot be empty")
	ErrEmptyCompKey       = errors.New("component key cannot be empty")
	ErrMalformedReference = errors.New("malformed component reference")
)

// Reference uniquely identifies a single mod component.
// Token format: "mod_id:comp_key" (e.g., "eet:0").
//
// Reference is an immutable value type: equality and ordering are
// structural over (mod id, component key). The lexicographic order
// implemented by Compare is the single tie-break order used everywhere
// determinism matters.
type Reference struct {
	modID   string
	compKey string
}

// New creates a Reference from a mod id and component key.
// Both parts are required.
func New(modID, compKey string) (Reference, error) {
	if modID == "" {
		return Reference{}, ErrEmptyModID
	}
	if compKey == "" {
		return Reference{}, ErrEmptyCompKey
	}
	return Reference{modID: modID, compKey: compKey}, nil
}

// MustNew creates a Reference, panicking on error.
// Use this for compile-time known values that should never fail validation.
func MustNew(modID, compKey string) Reference {
	ref, err := New(modID, compKey)
	if err != nil {
		panic("invalid component reference: " + modID + Separator + compKey + ": " + err.Error())
	}
	return ref
}

// Parse creates a Reference from its token form "mod_id:comp_key".
// The key may itself contain colons; only the first separator splits.
// Returns ErrMalformedReference if the separator is absent or either
// part is empty.
func Parse(token string) (Reference, error) {
	modID, compKey, ok := strings.Cut(token, Separator)
	if !ok || modID == "" || compKey == "" {
		return Reference{}, fmt.Errorf("%w: %q", ErrMalformedReference, token)
	}
	return Reference{modID: modID, compKey: compKey}, nil
}

// ParseList converts a slice of tokens into references, failing on the
// first malformed token.
func ParseList(tokens []string) ([]Reference, error) {
	refs := make([]Reference, 0, len(tokens))
	for _, token := range tokens {
		ref, err := Parse(token)
		if err != nil {
			return nil, err
		}
		refs = append(refs, ref)
	}
	return refs, nil
}

// Tokens converts a slice of references back to their token form.
func Tokens(refs []Reference) []string {
	tokens := make([]string, len(refs))
	for i, ref := range refs {
		tokens[i] = ref.String()
	}
	return tokens
}

// ModID returns the mod identifier.
func (r Reference) ModID() string {
	return r.modID
}

// CompKey returns the component key.
func (r Reference) CompKey() string {
	return r.compKey
}

// String returns the token form "mod_id:comp_key".
func (r Reference) String() string {
	return r.modID + Separator + r.compKey
}

// Equals checks structural equality with another Reference.
func (r Reference) Equals(other Reference) bool {
	return r == other
}

// IsZero returns true if this is a zero-value Reference.
func (r Reference) IsZero() bool {
	return r.modID == "" && r.compKey == ""
}

// Compare orders references lexicographically on (mod id, component key).
// Returns -1, 0 or 1 in the manner of strings.Compare.
func Compare(a, b Reference) int {
	if c := strings.Compare(a.modID, b.modID); c != 0 {
		return c
	}
	return strings.Compare(a.compKey, b.compKey)
}

// Less reports whether r orders strictly before other.
func (r Reference) Less(other Reference) bool {
	return Compare(r, other) < 0
}
