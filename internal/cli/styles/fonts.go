package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/webfonts/internal/domain/entity"
)

// FontsRenderer renders catalog and font list output.
type FontsRenderer struct {
	theme *Theme
}

// NewFontsRenderer creates a renderer with the given theme.
func NewFontsRenderer(theme *Theme) *FontsRenderer {
	return &FontsRenderer{theme: theme}
}

// RenderCatalog renders one catalog partition, marking the used fonts.
// An empty partition renders emptyMsg.
func (r *FontsRenderer) RenderCatalog(title string, entries []entity.FontCatalogEntry, used *entity.UsedFontSet, emptyMsg string) string {
	var b strings.Builder
	b.WriteString(r.theme.Title.Render(title))
	b.WriteString(" ")
	b.WriteString(r.theme.BadgeMuted.Render(fmt.Sprintf("%d", len(entries))))
	b.WriteString("\n")

	if len(entries) == 0 {
		b.WriteString(r.theme.ListItem.Render(r.theme.Subtle.Render(emptyMsg)))
		return b.String()
	}

	lines := make([]string, len(entries))
	for i, e := range entries {
		if used.Contains(e.Name) {
			lines[i] = r.theme.ListItemSelected.Render(IconCheckboxChecked + " " + e.Name)
		} else {
			lines[i] = r.theme.ListItem.Render(IconCheckboxEmpty + " " + e.Name)
		}
	}
	b.WriteString(strings.Join(lines, "\n"))
	return b.String()
}

// RenderUsed renders the names of the fonts used by the theme.
func (r *FontsRenderer) RenderUsed(summary string, used *entity.UsedFontSet) string {
	header := lipgloss.JoinHorizontal(lipgloss.Center,
		lipgloss.NewStyle().Foreground(r.theme.Accent).Render(IconFont), " ", r.theme.Title.Render(summary))

	lines := []string{header}
	for _, name := range used.Names() {
		lines = append(lines, r.theme.ListItem.Render(name))
	}
	return strings.Join(lines, "\n")
}

// RenderRemote renders the refreshed remote font list summary.
func (r *FontsRenderer) RenderRemote(summary string, fonts []entity.RemoteFont, fromCache bool, limit int) string {
	source := r.theme.Badge.Render("fetched")
	if fromCache {
		source = r.theme.BadgeMuted.Render("cached")
	}
	header := lipgloss.JoinHorizontal(lipgloss.Center,
		lipgloss.NewStyle().Foreground(r.theme.Accent).Render(IconCloud), " ", r.theme.Title.Render(summary), " ", source)

	lines := []string{header}
	for i, f := range fonts {
		if limit > 0 && i >= limit {
			lines = append(lines, r.theme.ListItem.Render(r.theme.Subtle.Render(fmt.Sprintf("… %d more", len(fonts)-limit))))
			break
		}
		line := f.Family
		if f.Category != "" {
			line += " " + r.theme.Subtle.Render(f.Category)
		}
		lines = append(lines, r.theme.ListItem.Render(line))
	}
	return strings.Join(lines, "\n")
}
