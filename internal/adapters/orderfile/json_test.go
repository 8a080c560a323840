package orderfile

import (
	"context"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modhearth/modorder/internal/adapters/filesystem"
	"github.com/modhearth/modorder/internal/domain/component"
	"github.com/modhearth/modorder/internal/domain/orderfile"
	"github.com/modhearth/modorder/internal/domain/pause"
)

func testOrder() orderfile.Order {
	counter := pause.NewCounter()
	return orderfile.Order{
		0: []orderfile.Entry{
			orderfile.ComponentEntry{Ref: component.MustNew("modA", "1")},
			counter.NewEntry("Save game"),
		},
		1: []orderfile.Entry{
			orderfile.ComponentEntry{Ref: component.MustNew("modB", "0")},
		},
	}
}

func TestJSONRepository_SaveLoadRoundTrip(t *testing.T) {
	t.Parallel()

	fs := filesystem.NewMemoryFileSystem()
	repo := NewJSONRepository(fs)
	ctx := context.Background()
	order := testOrder()

	require.NoError(t, repo.Save(ctx, "order.json", order))
	assert.True(t, repo.Exists(ctx, "order.json"))

	loaded, err := repo.Load(ctx, "order.json")
	require.NoError(t, err)
	assert.Equal(t, order, loaded)
}

func TestJSONRepository_SaveGolden(t *testing.T) {
	t.Parallel()

	fs := filesystem.NewMemoryFileSystem()
	repo := NewJSONRepository(fs)

	require.NoError(t, repo.Save(context.Background(), "order.json", testOrder()))

	data, err := fs.ReadFile("order.json")
	require.NoError(t, err)

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "order", data)
}

func TestJSONRepository_LoadMissingFile(t *testing.T) {
	t.Parallel()

	repo := NewJSONRepository(filesystem.NewMemoryFileSystem())

	_, err := repo.Load(context.Background(), "missing.json")

	assert.ErrorIs(t, err, orderfile.ErrFileRead)
	assert.NotErrorIs(t, err, orderfile.ErrInvalidFormat)
}

func TestJSONRepository_LoadPermissionDenied(t *testing.T) {
	t.Parallel()

	fs := filesystem.NewMemoryFileSystem()
	require.NoError(t, fs.WriteFile("order.json", []byte(`{}`), 0o644))
	fs.FailReads("order.json")

	_, err := NewJSONRepository(fs).Load(context.Background(), "order.json")

	assert.ErrorIs(t, err, orderfile.ErrFileRead)
}

func TestJSONRepository_LoadInvalidFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: `{"0": [`},
		{name: "array root", body: `["modA:1"]`},
		{name: "null root", body: `null`},
		{name: "non-integer key", body: `{"first": ["modA:1"]}`},
		{name: "non-array sequence", body: `{"0": "modA:1"}`},
		{name: "null sequence", body: `{"0": null}`},
		{name: "non-string element", body: `{"0": [1]}`},
		{name: "malformed token", body: `{"0": ["broken"]}`},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fs := filesystem.NewMemoryFileSystem()
			require.NoError(t, fs.WriteFile("order.json", []byte(tt.body), 0o644))

			_, err := NewJSONRepository(fs).Load(context.Background(), "order.json")

			assert.ErrorIs(t, err, orderfile.ErrInvalidFormat)
			assert.NotErrorIs(t, err, orderfile.ErrFileRead)
		})
	}
}

func TestJSONRepository_LoadEmptyObject(t *testing.T) {
	t.Parallel()

	fs := filesystem.NewMemoryFileSystem()
	require.NoError(t, fs.WriteFile("order.json", []byte(`{}`), 0o644))

	order, err := NewJSONRepository(fs).Load(context.Background(), "order.json")

	require.NoError(t, err)
	assert.Empty(t, order)
}

func TestJSONRepository_SaveWriteFailure(t *testing.T) {
	t.Parallel()

	fs := filesystem.NewMemoryFileSystem()
	fs.FailReads("order.json")

	err := NewJSONRepository(fs).Save(context.Background(), "order.json", testOrder())

	assert.ErrorIs(t, err, orderfile.ErrFileRead)
}

func TestJSONRepository_Exists(t *testing.T) {
	t.Parallel()

	fs := filesystem.NewMemoryFileSystem()
	repo := NewJSONRepository(fs)
	ctx := context.Background()

	assert.False(t, repo.Exists(ctx, "order.json"))
	require.NoError(t, repo.Save(ctx, "order.json", orderfile.Order{}))
	assert.True(t, repo.Exists(ctx, "order.json"))
}
