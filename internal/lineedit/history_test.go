package lineedit

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistory_AppendSkipsRepeatsAndBlank(t *testing.T) {
	h := &History{Fs: afero.NewMemMapFs(), Limit: 10}
	h.Append("ls")
	h.Append("ls")
	h.Append("  ")
	h.Append("pwd")
	h.Append("ls")
	assert.Equal(t, []string{"ls", "pwd", "ls"}, h.Entries())
}

func TestHistory_Limit(t *testing.T) {
	h := &History{Fs: afero.NewMemMapFs(), Limit: 2}
	h.Append("a")
	h.Append("b")
	h.Append("c")
	assert.Equal(t, []string{"b", "c"}, h.Entries())
}

func TestHistory_PersistLoad(t *testing.T) {
	fs := afero.NewMemMapFs()
	h := &History{Fs: fs, Limit: 10}
	h.Append("make build")
	h.Append("go test ./...")
	require.NoError(t, h.Persist("/home/u/tool_history_file"))

	loaded := &History{Fs: fs, Limit: 10}
	require.NoError(t, loaded.Load("/home/u/tool_history_file"))
	assert.Equal(t, []string{"make build", "go test ./..."}, loaded.Entries())
}

func TestHistory_LoadMissing(t *testing.T) {
	h := &History{Fs: afero.NewMemMapFs(), Limit: 10}
	require.NoError(t, h.Load("/nope"))
	assert.Empty(t, h.Entries())
}
