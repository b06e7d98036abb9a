// Package settings provides the explicit registration table for settings
// pages, sections and fields, and the hook table that drives them.
package settings

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"sync"

	"github.com/bnema/webfonts/internal/application/usecase"
	"github.com/bnema/webfonts/internal/domain/entity"
)

var (
	// ErrDuplicate is returned when an identifier is registered twice.
	ErrDuplicate = errors.New("already registered")
	// ErrUnknownGroup is returned when a submission names no registered group.
	ErrUnknownGroup = errors.New("unknown settings group")
	// ErrUnknownPage is returned when a slug names no registered options page.
	ErrUnknownPage = errors.New("unknown options page")
)

// RenderContext carries per-render state shared by every renderer of a page.
type RenderContext struct {
	// UsedFonts memoises the used-font set for this render.
	UsedFonts *usecase.UsedFontScope
	// Values holds the current stored value of each registered option.
	Values map[string]string
}

// NewRenderContext creates a context with a fresh used-font scope.
func NewRenderContext(values map[string]string) *RenderContext {
	if values == nil {
		values = map[string]string{}
	}
	return &RenderContext{UsedFonts: usecase.NewUsedFontScope(), Values: values}
}

// Renderer produces markup for a page, section or field.
type Renderer func(ctx context.Context, rc *RenderContext) (template.HTML, error)

// Validator checks a submitted value before it is persisted.
type Validator func(ctx context.Context, input string) entity.ValidationResult

// OptionsPage is an entry of the settings menu.
type OptionsPage struct {
	Title      string
	MenuTitle  string
	Capability string
	Slug       string
	// Page is the identifier sections and fields are attached to.
	Page string
	// Group is the settings group submitted by the page form.
	Group string
}

// Setting is a persisted option belonging to a group.
type Setting struct {
	Group    string
	Option   string
	Validate Validator
}

// Section groups fields on a page.
type Section struct {
	ID     string
	Title  string
	Page   string
	Render Renderer
}

// Field is a labelled control within a section.
type Field struct {
	ID      string
	Label   string
	Page    string
	Section string
	Render  Renderer
}

// Registry holds every registration in insertion order.
type Registry struct {
	mu       sync.RWMutex
	pages    []OptionsPage
	settings []Setting
	sections []Section
	fields   []Field
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// AddOptionsPage registers a page in the settings menu.
func (r *Registry) AddOptionsPage(page OptionsPage) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range r.pages {
		if p.Slug == page.Slug {
			return fmt.Errorf("options page %q: %w", page.Slug, ErrDuplicate)
		}
	}
	r.pages = append(r.pages, page)
	return nil
}

// OptionsPage returns the page registered under slug.
func (r *Registry) OptionsPage(slug string) (OptionsPage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.pages {
		if p.Slug == slug {
			return p, nil
		}
	}
	return OptionsPage{}, fmt.Errorf("%q: %w", slug, ErrUnknownPage)
}

// OptionsPages returns the registered menu entries.
func (r *Registry) OptionsPages() []OptionsPage {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]OptionsPage, len(r.pages))
	copy(out, r.pages)
	return out
}

// RegisterSetting registers an option within a group. validate may be nil.
func (r *Registry) RegisterSetting(group, option string, validate Validator) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, s := range r.settings {
		if s.Group == group && s.Option == option {
			return fmt.Errorf("setting %s/%s: %w", group, option, ErrDuplicate)
		}
	}
	r.settings = append(r.settings, Setting{Group: group, Option: option, Validate: validate})
	return nil
}

// Settings returns the options registered for group.
func (r *Registry) Settings(group string) ([]Setting, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []Setting
	for _, s := range r.settings {
		if s.Group == group {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%q: %w", group, ErrUnknownGroup)
	}
	return out, nil
}

// AddSection registers a section on a page. render may be nil.
func (r *Registry) AddSection(id, title, page string, render Renderer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, s := range r.sections {
		if s.Page == page && s.ID == id {
			return fmt.Errorf("section %s/%s: %w", page, id, ErrDuplicate)
		}
	}
	r.sections = append(r.sections, Section{ID: id, Title: title, Page: page, Render: render})
	return nil
}

// Sections returns the sections of page in registration order.
func (r *Registry) Sections(page string) []Section {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []Section
	for _, s := range r.sections {
		if s.Page == page {
			out = append(out, s)
		}
	}
	return out
}

// AddField registers a field within a section of a page.
func (r *Registry) AddField(id, label, page, section string, render Renderer) error {
	if render == nil {
		return fmt.Errorf("field %s: renderer is nil", id)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, f := range r.fields {
		if f.Page == page && f.ID == id {
			return fmt.Errorf("field %s/%s: %w", page, id, ErrDuplicate)
		}
	}
	r.fields = append(r.fields, Field{ID: id, Label: label, Page: page, Section: section, Render: render})
	return nil
}

// Fields returns the fields of a section in registration order.
func (r *Registry) Fields(page, section string) []Field {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []Field
	for _, f := range r.fields {
		if f.Page == page && f.Section == section {
			out = append(out, f)
		}
	}
	return out
}
