package styles

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/webfonts/internal/domain/entity"
)

// MessageRenderer renders one-line status messages.
type MessageRenderer struct {
	theme *Theme
}

// NewMessageRenderer creates a renderer with the given theme.
func NewMessageRenderer(theme *Theme) *MessageRenderer {
	return &MessageRenderer{theme: theme}
}

// RenderSuccess renders a success line.
func (r *MessageRenderer) RenderSuccess(msg string) string {
	return r.line(IconCheck, r.theme.SuccessStyle, msg)
}

// RenderInfo renders an informational line with a key/value pair.
func (r *MessageRenderer) RenderInfo(icon, key, value string) string {
	return fmt.Sprintf("%s %s %s",
		lipgloss.NewStyle().Foreground(r.theme.Accent).Render(icon),
		r.theme.Subtle.Render(key),
		r.theme.Highlight.Render(value))
}

// RenderWarning renders a warning line.
func (r *MessageRenderer) RenderWarning(msg string) string {
	return r.line(IconWarning, r.theme.WarningStyle, msg)
}

// RenderError renders an error line.
func (r *MessageRenderer) RenderError(err error) string {
	return r.line(IconX, r.theme.ErrorStyle, err.Error())
}

// RenderSettingsErrors renders validation errors, one per line.
func (r *MessageRenderer) RenderSettingsErrors(errs []entity.SettingsError) string {
	out := ""
	for i, e := range errs {
		if i > 0 {
			out += "\n"
		}
		out += r.line(IconX, r.theme.ErrorStyle, fmt.Sprintf("%s: %s", e.Setting, e.Message))
	}
	return out
}

func (r *MessageRenderer) line(icon string, style lipgloss.Style, msg string) string {
	return style.Render(icon) + " " + r.theme.Normal.Render(msg)
}
