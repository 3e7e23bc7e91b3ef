package network

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
)

const defaultWordWrap = 80

// RenderNote renders a private note as markdown. Plain notes come out as a
// wrapped paragraph.
func RenderNote(title, note string, width int) (string, error) {
	if width <= 0 {
		width = defaultWordWrap
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("create markdown renderer: %w", err)
	}

	var doc strings.Builder
	if title != "" {
		fmt.Fprintf(&doc, "## %s\n\n", title)
	}
	if strings.TrimSpace(note) == "" {
		doc.WriteString("_No private note._\n")
	} else {
		doc.WriteString(note)
		doc.WriteString("\n")
	}

	out, err := renderer.Render(doc.String())
	if err != nil {
		return "", fmt.Errorf("render note: %w", err)
	}

	return out, nil
}
