// Package admin wires the web fonts options page into the settings registry
// and hook table, and renders it.
package admin

import (
	"context"
	"fmt"
	"io"

	"github.com/bnema/webfonts/internal/application/port"
	"github.com/bnema/webfonts/internal/application/settings"
	"github.com/bnema/webfonts/internal/application/usecase"
	"github.com/bnema/webfonts/internal/domain/entity"
	"github.com/bnema/webfonts/internal/infrastructure/i18n"
	"github.com/bnema/webfonts/internal/logging"
)

// HeadPriority runs the stylesheet injection after the framework's own
// admin_head handlers.
const HeadPriority = 20

// Plugin registers and renders the options page.
type Plugin struct {
	registry   *settings.Registry
	hooks      *settings.Hooks
	fonts      *usecase.ThemeFontsUseCase
	validator  *usecase.ValidateAPIKeyUseCase
	translator port.Translator
	cssBase    string
}

// Deps contains the collaborators of the plugin.
type Deps struct {
	Registry   *settings.Registry
	Hooks      *settings.Hooks
	Fonts      *usecase.ThemeFontsUseCase
	Validator  *usecase.ValidateAPIKeyUseCase
	Translator port.Translator
	// CSSBase is the Google Fonts stylesheet endpoint.
	CSSBase string
}

// NewPlugin creates the plugin.
func NewPlugin(deps Deps) *Plugin {
	return &Plugin{
		registry:   deps.Registry,
		hooks:      deps.Hooks,
		fonts:      deps.Fonts,
		validator:  deps.Validator,
		translator: deps.Translator,
		cssBase:    deps.CSSBase,
	}
}

// Init adds the plugin's hook registrations.
func (p *Plugin) Init() {
	p.hooks.Add(settings.EventAdminHead, HeadPriority, p.addFontStylesheets)
	p.hooks.Add(settings.EventAdminMenu, settings.DefaultPriority, p.adminMenu)
	p.hooks.Add(settings.EventAdminInit, settings.DefaultPriority, p.registerSettings)
}

func (p *Plugin) adminMenu(ctx context.Context, _ io.Writer) error {
	logging.FromContext(ctx).Debug().Str("slug", entity.SettingsPageSlug).Msg("adding options page")

	return p.registry.AddOptionsPage(settings.OptionsPage{
		Title:      p.t(i18n.MsgPageTitle),
		MenuTitle:  p.t(i18n.MsgMenuTitle),
		Capability: entity.CapabilityManageOptions,
		Slug:       entity.SettingsPageSlug,
		Page:       entity.SettingsPage,
		Group:      entity.SettingsGroup,
	})
}

func (p *Plugin) registerSettings(ctx context.Context, _ io.Writer) error {
	logging.FromContext(ctx).Debug().Str("group", entity.SettingsGroup).Msg("registering settings")

	if err := p.registry.RegisterSetting(entity.SettingsGroup, entity.FieldAPIKey, p.validator.Execute); err != nil {
		return err
	}

	if err := p.registry.AddSection(
		entity.SettingsSectionID,
		p.t(i18n.MsgSectionTitle),
		entity.SettingsPage,
		p.sectionText,
	); err != nil {
		return err
	}

	fields := []struct {
		id     string
		label  string
		render settings.Renderer
	}{
		{entity.FieldAPIKey, i18n.MsgAPIKeyLabel, p.apiKeyField},
		{entity.FieldOldFonts, i18n.MsgOldFontsLabel, p.oldFontsField},
		{entity.FieldNewFonts, i18n.MsgNewFontsLabel, p.newFontsField},
	}
	for _, f := range fields {
		if err := p.registry.AddField(f.id, p.t(f.label), entity.SettingsPage, entity.SettingsSectionID, f.render); err != nil {
			return err
		}
	}
	return nil
}

// addFontStylesheets emits the stylesheet links of the new fonts so the
// lists can preview them.
func (p *Plugin) addFontStylesheets(ctx context.Context, w io.Writer) error {
	catalog, err := p.fonts.Catalog(ctx)
	if err != nil {
		return fmt.Errorf("failed to load font catalog: %w", err)
	}

	href := stylesheetURL(p.cssBase, catalog.New)
	if href == "" {
		return nil
	}
	return headTmpl.Execute(w, href)
}

func (p *Plugin) t(key string) string {
	if p.translator == nil {
		return key
	}
	return p.translator.T(key)
}
