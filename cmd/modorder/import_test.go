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

func overrideImportApp(t *testing.T, fs ports.FileSystem, out io.Writer) {
	t.Helper()
	prev := newImportApp
	newImportApp = func(_ io.Writer) *app.Modorder {
		return app.New(out).WithFileSystem(fs)
	}
	t.Cleanup(func() { newImportApp = prev })
}

func setImportFlags(t *testing.T, output string) {
	t.Helper()
	prev := importOutputPath
	importOutputPath = output
	t.Cleanup(func() { importOutputPath = prev })
}

func TestImportCmd_RequiresLogArg(t *testing.T) {
	t.Parallel()

	err := importCmd.Args(importCmd, nil)

	assert.Error(t, err)
}

func TestRunImport_PrintsOrder(t *testing.T) {
	fs := memoryFS(t, map[string]string{
		"WeiDU.log": "~SETUP-BG1NPC.TP2~ #0 #0 // The BG1 NPC Project\n",
	})
	out := &bytes.Buffer{}
	overrideImportApp(t, fs, out)
	setImportFlags(t, "")

	err := runImport(importCmd, []string{"WeiDU.log"})

	require.NoError(t, err)
	assert.Equal(t, "Sequence 0:\n  bg1npc:0\n", out.String())
}

func TestRunImport_WritesOrderFile(t *testing.T) {
	fs := memoryFS(t, map[string]string{
		"WeiDU.log": "~EET.TP2~ #0 #0 // EET core\n",
	})
	overrideImportApp(t, fs, io.Discard)
	setImportFlags(t, "order.json")

	err := runImport(importCmd, []string{"WeiDU.log"})

	require.NoError(t, err)
	assert.True(t, fs.Exists("order.json"))
}

func TestRunImport_MissingLog(t *testing.T) {
	fs := memoryFS(t, nil)
	overrideImportApp(t, fs, io.Discard)
	setImportFlags(t, "")

	err := runImport(importCmd, []string{"WeiDU.log"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "import failed")
}
