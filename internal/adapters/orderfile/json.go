// Package orderfile provides the JSON file implementation of the
// orderfile.Repository port.
package orderfile

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modhearth/modorder/internal/domain/orderfile"
	"github.com/modhearth/modorder/internal/ports"
)

// filePerm is the mode for written order files.
const filePerm = 0o644

// JSONRepository persists orders as a JSON object mapping decimal
// sequence indices to arrays of entry tokens:
//
//	{"0": ["modA:1", "pause:1::Save game"], "1": ["modB:0"]}
type JSONRepository struct {
	fs ports.FileSystem
}

// NewJSONRepository creates a repository reading and writing through fs.
func NewJSONRepository(fs ports.FileSystem) *JSONRepository {
	return &JSONRepository{fs: fs}
}

// Load reads and parses an order file.
// I/O failures are orderfile.ErrFileRead; structural violations (bad
// JSON, non-object root, non-array sequence, non-string or malformed
// token, non-integer key) are orderfile.ErrInvalidFormat.
func (r *JSONRepository) Load(_ context.Context, path string) (orderfile.Order, error) {
	raw, err := r.fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", orderfile.ErrFileRead, path, err)
	}

	var root map[string]json.RawMessage
	if err := json.Unmarshal(raw, &root); err != nil {
		return nil, fmt.Errorf("%w: root must be an object: %w", orderfile.ErrInvalidFormat, err)
	}
	if root == nil {
		// "null" unmarshals without error but is not an object.
		return nil, fmt.Errorf("%w: root must be an object", orderfile.ErrInvalidFormat)
	}

	data := make(map[string][]string, len(root))
	for key, value := range root {
		var tokens []string
		if err := json.Unmarshal(value, &tokens); err != nil {
			return nil, fmt.Errorf("%w: sequence %q must be an array of strings: %w",
				orderfile.ErrInvalidFormat, key, err)
		}
		if tokens == nil {
			return nil, fmt.Errorf("%w: sequence %q must be an array of strings",
				orderfile.ErrInvalidFormat, key)
		}
		data[key] = tokens
	}

	return orderfile.FromTokens(data)
}

// Save serializes an order and writes it to path, overwriting any
// existing file. Write failures are orderfile.ErrFileRead.
func (r *JSONRepository) Save(_ context.Context, path string, order orderfile.Order) error {
	data, err := json.MarshalIndent(orderfile.ToTokens(order), "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %w", orderfile.ErrInvalidFormat, err)
	}
	data = append(data, '\n')

	if err := r.fs.WriteFile(path, data, filePerm); err != nil {
		return fmt.Errorf("%w: %s: %w", orderfile.ErrFileRead, path, err)
	}
	return nil
}

// Exists returns true if an order file exists at path.
func (r *JSONRepository) Exists(_ context.Context, path string) bool {
	return r.fs.Exists(path)
}

// Ensure JSONRepository implements the port.
var _ orderfile.Repository = (*JSONRepository)(nil)
