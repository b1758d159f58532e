package topics

import (
	"bytes"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"separators.md":      {Data: []byte("# Separators\n\nThe list separator.")},
		"option-workers.txt": {Data: []byte("Workers run checks concurrently.")},
		"notes.json":         {Data: []byte("{}")},
		"nested/inner.md":    {Data: []byte("# Inner")},
	}
}

func TestLoad(t *testing.T) {
	tm, err := Load(testFS(), Options{})
	require.NoError(t, err)

	assert.Equal(t, []string{"option-workers", "separators"}, tm.ListTopics())

	topic, ok := tm.GetTopic("separators")
	require.True(t, ok)
	assert.Equal(t, ".md", topic.Format)
	assert.Equal(t, "# Separators\n\nThe list separator.", topic.Content)

	_, ok = tm.GetTopic("notes")
	assert.False(t, ok)
	_, ok = tm.GetTopic("inner")
	assert.False(t, ok)
}

func TestLoadCustomExtensions(t *testing.T) {
	tm, err := Load(testFS(), Options{Extensions: []string{".json"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"notes"}, tm.ListTopics())
}

func TestGetTopicFlagStyle(t *testing.T) {
	tm, err := Load(testFS(), Options{})
	require.NoError(t, err)

	for _, name := range []string{"workers", "--workers", "-workers", "option-workers"} {
		topic, ok := tm.GetTopic(name)
		require.True(t, ok, name)
		assert.Equal(t, "option-workers", topic.Name)
	}
}

func TestGlamourRendererPassesPlainText(t *testing.T) {
	r := &GlamourRenderer{Style: "notty"}
	assert.Equal(t, "plain *text*", r.Render("plain *text*", ".txt"))

	out := r.Render("# Title\n\nSome words here.", ".md")
	assert.Contains(t, out, "Title")
	assert.Contains(t, out, "Some words here.")
}

func newTree(t *testing.T) (*cobra.Command, *bytes.Buffer) {
	t.Helper()
	root := &cobra.Command{Use: "tool", Run: func(*cobra.Command, []string) {}}
	root.AddCommand(&cobra.Command{Use: "sub", Short: "A subcommand", Long: "Sub does things.", Run: func(*cobra.Command, []string) {}})

	tm, err := Load(testFS(), Options{})
	require.NoError(t, err)
	tm.Install(root, "")

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	return root, &out
}

func TestHelpCommand(t *testing.T) {
	t.Run("topic", func(t *testing.T) {
		root, out := newTree(t)
		root.SetArgs([]string{"help", "separators"})
		require.NoError(t, root.Execute())
		assert.Equal(t, "# Separators\n\nThe list separator.", out.String())
	})

	t.Run("list", func(t *testing.T) {
		root, out := newTree(t)
		root.SetArgs([]string{"help", ListKeyword})
		require.NoError(t, root.Execute())
		assert.Contains(t, out.String(), "General topics:\n  separators")
		assert.Contains(t, out.String(), "Option topics:\n  --workers")
		assert.Contains(t, out.String(), "Use 'tool help <topic>'")
	})

	t.Run("command", func(t *testing.T) {
		root, out := newTree(t)
		root.SetArgs([]string{"help", "sub"})
		require.NoError(t, root.Execute())
		assert.Contains(t, out.String(), "Sub does things.")
	})

	t.Run("unknown", func(t *testing.T) {
		root, out := newTree(t)
		root.SetArgs([]string{"help", "nope"})
		require.NoError(t, root.Execute())
		assert.True(t, strings.HasPrefix(out.String(), "Unknown help topic"))
	})
}
