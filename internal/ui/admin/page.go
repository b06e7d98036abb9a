package admin

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"io"

	"github.com/bnema/webfonts/internal/application/settings"
	"github.com/bnema/webfonts/internal/domain/entity"
	"github.com/bnema/webfonts/internal/infrastructure/i18n"
)

var pageTmpl = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
{{.Head}}</head>
<body>
<div class="wrap">
<h2>{{.Title}}</h2>
{{- if and .Updated (not .Errors)}}
<div id="setting-error-settings_updated" class="updated settings-error"><p><strong>{{.SavedMessage}}</strong></p></div>
{{- end}}
{{- range .Errors}}
<div id="setting-error-{{.Code}}" class="{{.Type}} settings-error"><p><strong>{{.Message}}</strong></p></div>
{{- end}}
<form method="post" action="/options.php">
<input type="hidden" name="option_page" value="{{.Group}}" />
{{- range .Sections}}
<h3>{{.Title}}</h3>
{{.Intro}}
<table class="form-table">
{{- range .Fields}}
<tr valign="top"><th scope="row"><label for="{{.ID}}">{{.Label}}</label></th><td>{{.HTML}}</td></tr>
{{- end}}
</table>
{{- end}}
<p class="submit"><input type="submit" name="submit" id="submit" class="button button-primary" value="{{.SubmitLabel}}" /></p>
</form>
</div>
</body>
</html>
`))

// PageRequest describes one rendering of an options page.
type PageRequest struct {
	Slug string
	// Values holds the stored value of each option of the page's group.
	Values map[string]string
	// Errors are the settings errors pending from the last submission.
	Errors []entity.SettingsError
	// Updated is set after a submission redirect.
	Updated bool
}

type pageView struct {
	Title        string
	Head         template.HTML
	Group        string
	Updated      bool
	Errors       []entity.SettingsError
	Sections     []sectionView
	SavedMessage string
	SubmitLabel  string
}

type sectionView struct {
	Title  string
	Intro  template.HTML
	Fields []fieldView
}

type fieldView struct {
	ID    string
	Label string
	HTML  template.HTML
}

// RenderPage writes the options page registered under req.Slug. All field
// renderers of one call share a single used-font scope.
func (p *Plugin) RenderPage(ctx context.Context, w io.Writer, req PageRequest) error {
	page, err := p.registry.OptionsPage(req.Slug)
	if err != nil {
		return err
	}

	var head bytes.Buffer
	if err := p.hooks.Run(ctx, settings.EventAdminHead, &head); err != nil {
		return err
	}

	rc := settings.NewRenderContext(req.Values)
	view := pageView{
		Title:        page.Title,
		Head:         template.HTML(head.String()), //nolint:gosec // hook output is produced by html/template
		Group:        page.Group,
		Updated:      req.Updated,
		Errors:       req.Errors,
		SavedMessage: p.t(i18n.MsgSettingsSaved),
		SubmitLabel:  p.t(i18n.MsgSaveChanges),
	}

	for _, section := range p.registry.Sections(page.Page) {
		sv := sectionView{Title: section.Title}
		if section.Render != nil {
			if sv.Intro, err = section.Render(ctx, rc); err != nil {
				return fmt.Errorf("section %s: %w", section.ID, err)
			}
		}
		for _, field := range p.registry.Fields(page.Page, section.ID) {
			html, err := field.Render(ctx, rc)
			if err != nil {
				return fmt.Errorf("field %s: %w", field.ID, err)
			}
			sv.Fields = append(sv.Fields, fieldView{ID: field.ID, Label: field.Label, HTML: html})
		}
		view.Sections = append(view.Sections, sv)
	}

	return pageTmpl.Execute(w, view)
}
