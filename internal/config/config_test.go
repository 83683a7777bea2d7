package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewAppliesDefaultsThenOverrides(t *testing.T) {
	o := New(WithIndentWidth(2), WithPasses("resolver"))
	require.Equal(t, 2, o.IndentWidth)
	require.Equal(t, []string{"resolver"}, o.Passes)
	require.Equal(t, 64*1024, o.LexerBufferSize, "unset fields should keep their default")
}

func TestLoadProjectFileMergesValidJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "brandy.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"indentWidth": 8}`), 0o644))

	o := New()
	require.NoError(t, LoadProjectFile(o, path))
	require.Equal(t, 8, o.IndentWidth)
	require.Equal(t, path, o.ProjectFile)
}

func TestLoadProjectFileRejectsUnknownField(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "brandy.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"bogus": true}`), 0o644))

	o := New()
	require.Error(t, LoadProjectFile(o, path))
}
