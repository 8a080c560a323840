package main

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modhearth/modorder/internal/app"
	"github.com/modhearth/modorder/internal/ports"
)

func overrideShowApp(t *testing.T, fs ports.FileSystem, out io.Writer) {
	t.Helper()
	prev := newShowApp
	newShowApp = func(_ io.Writer) *app.Modorder {
		return app.New(out).WithFileSystem(fs)
	}
	t.Cleanup(func() { newShowApp = prev })
}

func TestRunShow(t *testing.T) {
	fs := memoryFS(t, map[string]string{
		"order.json": `{"1": ["modB:0"], "0": ["modA:1"]}`,
	})
	out := &bytes.Buffer{}
	overrideShowApp(t, fs, out)

	err := runShow(showCmd, []string{"order.json"})

	require.NoError(t, err)
	assert.Equal(t, "Sequence 0:\n  modA:1\nSequence 1:\n  modB:0\n", out.String())
}

func TestRunShow_InvalidFile(t *testing.T) {
	fs := memoryFS(t, map[string]string{
		"order.json": `["modA:1"]`,
	})
	overrideShowApp(t, fs, io.Discard)

	err := runShow(showCmd, []string{"order.json"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "show failed")
}
