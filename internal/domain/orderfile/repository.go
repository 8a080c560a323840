package orderfile

import (
	"context"
	"fmt"
	"strconv"
)

// Repository is the port for order persistence. Implementations handle
// the actual file I/O and serialization; see internal/adapters/orderfile.
type Repository interface {
	// Load reads an order from the given path.
	// Returns ErrFileRead when the file cannot be read and
	// ErrInvalidFormat when it can but violates the format.
	Load(ctx context.Context, path string) (Order, error)

	// Save writes an order to the given path, overwriting any existing
	// file. Write failures are ErrFileRead.
	Save(ctx context.Context, path string, order Order) error

	// Exists returns true if an order file exists at the given path.
	Exists(ctx context.Context, path string) bool
}

// ToTokens converts an order to its wire representation: a mapping from
// decimal sequence index to the sequence's tokens.
func ToTokens(order Order) map[string][]string {
	data := make(map[string][]string, len(order))
	for idx, entries := range order {
		tokens := make([]string, len(entries))
		for i, entry := range entries {
			tokens[i] = entry.Token()
		}
		data[strconv.Itoa(idx)] = tokens
	}
	return data
}

// FromTokens rebuilds an order from wire form. Non-integer sequence
// keys and malformed tokens are ErrInvalidFormat violations; token
// errors keep the underlying cause in the chain.
func FromTokens(data map[string][]string) (Order, error) {
	order := make(Order, len(data))

	for key, tokens := range data {
		idx, err := strconv.Atoi(key)
		if err != nil {
			return nil, fmt.Errorf("%w: sequence key %q must be an integer", ErrInvalidFormat, key)
		}

		entries := make([]Entry, 0, len(tokens))
		for _, token := range tokens {
			entry, err := ParseToken(token)
			if err != nil {
				return nil, fmt.Errorf("%w: sequence %d: %w", ErrInvalidFormat, idx, err)
			}
			entries = append(entries, entry)
		}
		order[idx] = entries
	}

	return order, nil
}
