package pause

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounter_NewEntry(t *testing.T) {
	t.Parallel()

	counter := NewCounter()

	first := counter.NewEntry("Save game")
	second := counter.NewEntry("")

	assert.Equal(t, "pause:1", first.ID())
	assert.Equal(t, "Save game", first.Description())
	assert.Equal(t, "pause:2", second.ID())
	assert.Empty(t, second.Description())
	assert.False(t, first.IsZero())
}

func TestCounter_Reset(t *testing.T) {
	t.Parallel()

	counter := NewCounter()
	_ = counter.NewEntry("")
	_ = counter.NewEntry("")

	counter.Reset()

	assert.Equal(t, "pause:1", counter.NewEntry("").ID())
}

func TestCounter_ConcurrentIDsAreUnique(t *testing.T) {
	t.Parallel()

	counter := NewCounter()
	const workers = 8
	const perWorker = 100

	ids := make(chan string, workers*perWorker)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				ids <- counter.NewEntry("").ID()
			}
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[string]bool, workers*perWorker)
	for id := range ids {
		assert.False(t, seen[id], "duplicate pause id %s", id)
		seen[id] = true
	}
	assert.Len(t, seen, workers*perWorker)
}

func TestEntry_TokenForm(t *testing.T) {
	t.Parallel()

	counter := NewCounter()

	withDesc := counter.NewEntry("Save game")
	assert.Equal(t, "pause:1::Save game", withDesc.String())
	assert.Equal(t, withDesc.String(), withDesc.Token())

	bare := counter.NewEntry("")
	assert.Equal(t, "pause:2", bare.String())
}

func TestParseToken_RoundTrip(t *testing.T) {
	t.Parallel()

	counter := NewCounter()
	original := counter.NewEntry("Back up your save")

	parsed, ok := ParseToken(original.Token())

	require.True(t, ok)
	assert.Equal(t, original.ID(), parsed.ID())
	assert.Equal(t, original.Description(), parsed.Description())
}

func TestParseToken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		token       string
		ok          bool
		id          string
		description string
	}{
		{name: "bare id", token: "pause:7", ok: true, id: "pause:7"},
		{name: "with description", token: "pause:1::Save game", ok: true, id: "pause:1", description: "Save game"},
		{name: "description with separator", token: "pause:2::a::b", ok: true, id: "pause:2", description: "a::b"},
		{name: "component token", token: "eet:0", ok: false},
		{name: "bare prefix", token: "pause", ok: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			entry, ok := ParseToken(tt.token)

			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.id, entry.ID())
				assert.Equal(t, tt.description, entry.Description())
			} else {
				assert.True(t, entry.IsZero())
			}
		})
	}
}

func TestIsPause(t *testing.T) {
	t.Parallel()

	assert.True(t, IsPause("pause:1"))
	assert.True(t, IsPause("pause:1::desc"))
	assert.False(t, IsPause("pause"))
	assert.False(t, IsPause("eet:0"))
}

func TestExtractID(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "3", ExtractID("pause:3::Save game"))
	assert.Equal(t, "12", ExtractID("pause:12"))
	assert.Empty(t, ExtractID("eet:0"))
}
