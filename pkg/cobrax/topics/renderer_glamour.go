package topics

import (
	"github.com/charmbracelet/glamour"
	"github.com/rs/zerolog/log"
)

// GlamourRenderer renders markdown topics with glamour. Other formats pass
// through unchanged.
type GlamourRenderer struct {
	Style string // "dark", "light", "notty", "auto" or a style file path
	Width int    // 0 keeps glamour's default
}

// NewGlamourRenderer creates a markdown renderer that picks its style from
// the terminal
func NewGlamourRenderer() *GlamourRenderer {
	return &GlamourRenderer{Style: "auto"}
}

// Render converts markdown to terminal output
func (r *GlamourRenderer) Render(content string, format string) string {
	if format != ".md" {
		return content
	}

	var options []glamour.TermRendererOption
	if r.Style != "" && r.Style != "auto" {
		options = append(options, glamour.WithStylePath(r.Style))
	} else {
		options = append(options, glamour.WithAutoStyle())
	}
	if r.Width > 0 {
		options = append(options, glamour.WithWordWrap(r.Width))
	}

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		log.Debug().Err(err).Msg("Markdown renderer unavailable, printing raw topic")
		return content
	}
	rendered, err := renderer.Render(content)
	if err != nil {
		log.Debug().Err(err).Msg("Failed to render topic, printing raw topic")
		return content
	}
	return rendered
}
