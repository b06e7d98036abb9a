package admin

import (
	"bytes"
	"context"
	"html/template"
	"strings"

	"github.com/bnema/webfonts/internal/application/settings"
	"github.com/bnema/webfonts/internal/domain/entity"
	"github.com/bnema/webfonts/internal/infrastructure/i18n"
)

const apiKeyInputSize = 80

var (
	headTmpl = template.Must(template.New("head").Parse(
		`<link rel="stylesheet" type="text/css" href="{{.}}" />` + "\n"))

	sectionTmpl = template.Must(template.New("section").Parse(`<p>{{.}}</p>`))

	apiKeyTmpl = template.Must(template.New("api_key").Parse(
		`<input id="{{.ID}}" name="{{.ID}}" size="{{.Size}}" type="text" value="{{.Value}}" />`))

	fontListTmpl = template.Must(template.New("font_list").Parse(
		`<select name="{{.ID}}" multiple="multiple" size="10">` +
			`{{range .Options}}<option value="{{.Value}}"{{if .Selected}} selected="selected"{{end}}>{{.Name}}</option>{{end}}` +
			`</select> ({{len .Options}})`))

	emptyTmpl = template.Must(template.New("empty").Parse(`{{.}}`))
)

type fontOption struct {
	Value    int
	Name     string
	Selected bool
}

func (p *Plugin) sectionText(_ context.Context, _ *settings.RenderContext) (template.HTML, error) {
	return execute(sectionTmpl, p.t(i18n.MsgSectionIntro))
}

func (p *Plugin) apiKeyField(_ context.Context, rc *settings.RenderContext) (template.HTML, error) {
	return execute(apiKeyTmpl, struct {
		ID    string
		Size  int
		Value string
	}{entity.FieldAPIKey, apiKeyInputSize, rc.Values[entity.FieldAPIKey]})
}

func (p *Plugin) oldFontsField(ctx context.Context, rc *settings.RenderContext) (template.HTML, error) {
	catalog, err := p.fonts.Catalog(ctx)
	if err != nil {
		return "", err
	}
	return p.fontListField(ctx, rc, entity.FieldOldFonts, catalog.Old, i18n.MsgNoOldFonts)
}

func (p *Plugin) newFontsField(ctx context.Context, rc *settings.RenderContext) (template.HTML, error) {
	catalog, err := p.fonts.Catalog(ctx)
	if err != nil {
		return "", err
	}
	return p.fontListField(ctx, rc, entity.FieldNewFonts, catalog.New, i18n.MsgNoNewFonts)
}

// fontListField renders a view-only list with the fonts used by the theme
// pre-selected. Both lists share the render context's scope so the theme
// options are scanned once per page.
func (p *Plugin) fontListField(
	ctx context.Context,
	rc *settings.RenderContext,
	id string,
	fonts []entity.FontCatalogEntry,
	emptyMsg string,
) (template.HTML, error) {
	if len(fonts) == 0 {
		return execute(emptyTmpl, p.t(emptyMsg))
	}

	used, err := p.fonts.UsedFonts(ctx, rc.UsedFonts)
	if err != nil {
		return "", err
	}

	options := make([]fontOption, len(fonts))
	for i, f := range fonts {
		options[i] = fontOption{Value: i + 1, Name: f.Name, Selected: used.Contains(f.Name)}
	}
	return execute(fontListTmpl, struct {
		ID      string
		Options []fontOption
	}{id, options})
}

// stylesheetURL builds one Google Fonts CSS request for all entries.
func stylesheetURL(base string, fonts []entity.FontCatalogEntry) string {
	families := make([]string, 0, len(fonts))
	for _, f := range fonts {
		family := f.Stylesheet
		if family == "" {
			family = strings.ReplaceAll(f.Name, " ", "+")
		}
		families = append(families, family)
	}
	if len(families) == 0 || base == "" {
		return ""
	}
	// Family specs already use '+' for spaces and ':' ',' for variants.
	return base + "?family=" + strings.Join(families, "|")
}

func execute(tmpl *template.Template, data any) (template.HTML, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	//nolint:gosec // output of html/template is already escaped
	return template.HTML(buf.String()), nil
}
