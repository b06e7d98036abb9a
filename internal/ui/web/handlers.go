package web

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"

	"github.com/rs/zerolog/hlog"

	"github.com/bnema/webfonts/internal/application/settings"
	"github.com/bnema/webfonts/internal/application/usecase"
	"github.com/bnema/webfonts/internal/domain/entity"
	"github.com/bnema/webfonts/internal/infrastructure/auth"
	"github.com/bnema/webfonts/internal/infrastructure/i18n"
	"github.com/bnema/webfonts/internal/ui/admin"
)

// usedFontsResponse is the body of GET /admin/fonts/used.
type usedFontsResponse struct {
	Fonts []string `json:"fonts"`
	Count int      `json:"count"`
}

// authorize writes the failure response and returns false when the request
// lacks capability. Anonymous requests get a basic auth challenge.
func (s *Server) authorize(w http.ResponseWriter, r *http.Request, capability string) bool {
	if s.deps.Authorizer.Can(r, capability) {
		return true
	}
	if _, _, ok := r.BasicAuth(); !ok {
		auth.Challenge(w)
		http.Error(w, s.t(i18n.MsgNoPermission), http.StatusUnauthorized)
		return false
	}
	hlog.FromRequest(r).Warn().Str("capability", capability).Msg("permission denied")
	http.Error(w, s.t(i18n.MsgNoPermission), http.StatusForbidden)
	return false
}

// authorizePage checks a page capability other than the admin one already
// verified by the caller.
func (s *Server) authorizePage(w http.ResponseWriter, r *http.Request, page settings.OptionsPage) bool {
	if page.Capability == "" || page.Capability == entity.CapabilityManageOptions {
		return true
	}
	return s.authorize(w, r, page.Capability)
}

func (s *Server) handleOptionsPage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := hlog.FromRequest(r)

	// Admin access comes before the page lookup.
	if !s.authorize(w, r, entity.CapabilityManageOptions) {
		return
	}
	slug := r.URL.Query().Get("page")
	page, err := s.deps.Registry.OptionsPage(slug)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	if !s.authorizePage(w, r, page) {
		return
	}

	values, err := s.optionValues(r, page.Group)
	if err != nil {
		log.Error().Err(err).Msg("failed to load option values")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	updated := r.URL.Query().Get("settings-updated") == "true"
	var pending []entity.SettingsError
	if updated {
		pending = s.takeSettingsErrors(r)
	}

	var buf bytes.Buffer
	err = s.deps.Plugin.RenderPage(ctx, &buf, admin.PageRequest{
		Slug:    slug,
		Values:  values,
		Errors:  pending,
		Updated: updated,
	})
	if err != nil {
		log.Error().Err(err).Str("page", slug).Msg("failed to render options page")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

func (s *Server) handleOptionsSubmit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := hlog.FromRequest(r)

	if !s.authorize(w, r, entity.CapabilityManageOptions) {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	group := r.PostForm.Get("option_page")
	page, ok := s.pageForGroup(group)
	if !ok {
		http.Error(w, "options page not found", http.StatusBadRequest)
		return
	}
	if !s.authorizePage(w, r, page) {
		return
	}

	sub, err := s.deps.Registry.Submit(ctx, s.deps.Options, group, r.PostForm)
	if err != nil {
		if errors.Is(err, settings.ErrUnknownGroup) {
			http.Error(w, "options page not found", http.StatusBadRequest)
			return
		}
		log.Error().Err(err).Str("group", group).Msg("failed to save settings")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if len(sub.Errors) > 0 {
		raw, err := json.Marshal(sub.Errors)
		if err == nil {
			err = s.deps.Transients.Set(ctx, settingsErrorsTransient, raw, settingsErrorsTTL)
		}
		if err != nil {
			log.Warn().Err(err).Msg("failed to store settings errors")
		}
	}

	query := url.Values{}
	query.Set("page", page.Slug)
	query.Set("settings-updated", "true")
	http.Redirect(w, r, PathOptionsPage+"?"+query.Encode(), http.StatusSeeOther)
}

func (s *Server) handleUsedFonts(w http.ResponseWriter, r *http.Request) {
	if !s.authorize(w, r, entity.CapabilityManageOptions) {
		return
	}

	used, err := s.deps.Fonts.UsedFonts(r.Context(), usecase.NewUsedFontScope())
	if err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("failed to resolve used fonts")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	names := used.Names()
	if names == nil {
		names = []string{}
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(usedFontsResponse{Fonts: names, Count: len(names)})
}

func (s *Server) optionValues(r *http.Request, group string) (map[string]string, error) {
	registered, err := s.deps.Registry.Settings(group)
	if err != nil {
		return nil, err
	}
	values := make(map[string]string, len(registered))
	for _, setting := range registered {
		value, _, err := s.deps.Options.Get(r.Context(), setting.Option)
		if err != nil {
			return nil, err
		}
		values[setting.Option] = value
	}
	return values, nil
}

// takeSettingsErrors returns the pending errors and clears them.
func (s *Server) takeSettingsErrors(r *http.Request) []entity.SettingsError {
	ctx := r.Context()
	log := hlog.FromRequest(r)

	raw, ok, err := s.deps.Transients.Get(ctx, settingsErrorsTransient)
	if err != nil {
		log.Warn().Err(err).Msg("failed to read settings errors")
		return nil
	}
	if !ok {
		return nil
	}
	if err := s.deps.Transients.Delete(ctx, settingsErrorsTransient); err != nil {
		log.Warn().Err(err).Msg("failed to clear settings errors")
	}

	var errs []entity.SettingsError
	if err := json.Unmarshal(raw, &errs); err != nil {
		log.Warn().Err(err).Msg("discarding malformed settings errors")
		return nil
	}
	return errs
}

func (s *Server) pageForGroup(group string) (settings.OptionsPage, bool) {
	if group == "" {
		return settings.OptionsPage{}, false
	}
	for _, p := range s.deps.Registry.OptionsPages() {
		if p.Group == group {
			return p, true
		}
	}
	return settings.OptionsPage{}, false
}

func (s *Server) t(key string) string {
	if s.deps.Translator == nil {
		return key
	}
	return s.deps.Translator.T(key)
}
