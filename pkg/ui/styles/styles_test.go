package styles_test

import (
	"os"
	"testing"

	"github.com/arthur-debert/pathman/pkg/ui/styles"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStyleRegistry(t *testing.T) {
	for _, name := range []string{"Error", "Hint", "Command"} {
		t.Run(name, func(t *testing.T) {
			_, exists := styles.StyleRegistry[name]
			assert.True(t, exists, "Style %s should exist in registry", name)
		})
	}
}

func TestGetStyle(t *testing.T) {
	assert.True(t, styles.GetStyle("Error").GetBold())
	assert.True(t, styles.GetStyle("Hint").GetItalic())
	assert.True(t, styles.GetStyle("Command").GetBold())
	assert.False(t, styles.GetStyle("DoesNotExist").GetBold(), "unknown names fall back to a plain style")
}

func TestLoadStylesFromData(t *testing.T) {
	t.Cleanup(func() {
		data, err := os.ReadFile("styles.yaml")
		require.NoError(t, err)
		require.NoError(t, styles.LoadStylesFromData(data))
	})

	err := styles.LoadStylesFromData([]byte(`
colors:
  green: {light: "#00AA00", dark: "#00FF00"}
styles:
  Ok:
    underline: true
    foreground: green
`))
	require.NoError(t, err)
	assert.True(t, styles.GetStyle("Ok").GetUnderline())
	_, exists := styles.StyleRegistry["Error"]
	assert.False(t, exists)

	assert.Error(t, styles.LoadStylesFromData([]byte("styles: [")))
}

func TestRenderPlainWithoutColor(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)
	assert.Equal(t, "Error: boom", styles.Render("Error", "Error: boom"))
}

func TestSetupColorOnPipe(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	defer r.Close()
	defer w.Close()

	lipgloss.SetColorProfile(termenv.TrueColor)
	styles.SetupColor(w.Fd())
	assert.Equal(t, termenv.Ascii, lipgloss.ColorProfile())
}
