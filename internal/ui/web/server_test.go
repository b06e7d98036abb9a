package web

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/bnema/webfonts/internal/application/port/mocks"
	"github.com/bnema/webfonts/internal/application/settings"
	"github.com/bnema/webfonts/internal/application/usecase"
	"github.com/bnema/webfonts/internal/domain/entity"
	"github.com/bnema/webfonts/internal/domain/repository"
	"github.com/bnema/webfonts/internal/infrastructure/auth"
	"github.com/bnema/webfonts/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/webfonts/internal/infrastructure/theme"
	"github.com/bnema/webfonts/internal/logging"
	"github.com/bnema/webfonts/internal/ui/admin"
)

const (
	cacheKey  = "gwfc_remote_fonts"
	adminUser = "admin"
	adminPass = "s3cret"
)

var pageURL = PathOptionsPage + "?page=" + entity.SettingsPageSlug

type testServer struct {
	handler    http.Handler
	options    repository.OptionRepository
	transients repository.TransientRepository
	cache      *mocks.MockFontListCache
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	ctx := logging.WithContext(context.Background(), zerolog.Nop())
	db, err := sqlite.NewConnection(ctx, filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlite.Close(db) })

	options := sqlite.NewOptionRepository(db)
	transients := sqlite.NewTransientRepository(db)

	catalog := mocks.NewMockFontCatalogSource(t)
	catalog.EXPECT().Catalog(mock.Anything).Return(&entity.FontCatalog{
		Old: []entity.FontCatalogEntry{{Name: "Arvo", Origin: entity.FontOriginOld}},
		New: []entity.FontCatalogEntry{
			{Name: "Lato", Origin: entity.FontOriginNew},
			{Name: "Roboto", Origin: entity.FontOriginNew},
		},
	}, nil).Maybe()
	cache := mocks.NewMockFontListCache(t)

	fonts := usecase.NewThemeFontsUseCase(catalog, theme.NewOptionsStore(options), nil)
	registry := settings.NewRegistry()
	hooks := settings.NewHooks()
	plugin := admin.NewPlugin(admin.Deps{
		Registry:  registry,
		Hooks:     hooks,
		Fonts:     fonts,
		Validator: usecase.NewValidateAPIKeyUseCase(cache, cacheKey, nil),
		CSSBase:   "https://fonts.googleapis.com/css",
	})
	plugin.Init()
	require.NoError(t, hooks.Run(ctx, settings.EventAdminMenu, nil))
	require.NoError(t, hooks.Run(ctx, settings.EventAdminInit, nil))

	hash, err := bcrypt.GenerateFromPassword([]byte(adminPass), bcrypt.MinCost)
	require.NoError(t, err)

	srv := New(Config{Listen: "127.0.0.1:0"}, Deps{
		Plugin:     plugin,
		Registry:   registry,
		Options:    options,
		Transients: transients,
		Authorizer: auth.NewBasicAuthorizer(adminUser, string(hash)),
		Fonts:      fonts,
	}, zerolog.Nop())

	return &testServer{handler: srv.Handler(), options: options, transients: transients, cache: cache}
}

func (ts *testServer) do(t *testing.T, method, target string, form url.Values, authed bool) *httptest.ResponseRecorder {
	t.Helper()

	var body io.Reader = http.NoBody
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(method, target, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	if authed {
		req.SetBasicAuth(adminUser, adminPass)
	}
	rec := httptest.NewRecorder()
	ts.handler.ServeHTTP(rec, req)
	return rec
}

func TestOptionsPage_RequiresCredentials(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodGet, pageURL, nil, false)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("WWW-Authenticate"))

	req := httptest.NewRequest(http.MethodGet, pageURL, http.NoBody)
	req.SetBasicAuth(adminUser, "wrong")
	rec = httptest.NewRecorder()
	ts.handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "You do not have sufficient permissions to access this page.")
}

func TestOptionsPage_UnknownSlug(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodGet, PathOptionsPage+"?page=nope", nil, true)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = ts.do(t, http.MethodGet, PathOptionsPage+"?page=nope", nil, false)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestOptionsPage_Render(t *testing.T) {
	ts := newTestServer(t)
	ctx := context.Background()
	require.NoError(t, ts.options.Set(ctx, entity.FieldAPIKey, "abc123"))
	require.NoError(t, ts.options.Set(ctx, entity.ThemeOptionsName, `{"body":{"face":"Roboto"},"nav":{"face":"Arvo"}}`))

	rec := ts.do(t, http.MethodGet, pageURL, nil, true)
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()

	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, body, `value="abc123"`)
	assert.Contains(t, body, `<option value="1" selected="selected">Arvo</option>`)
	assert.Contains(t, body, `<option value="1">Lato</option><option value="2" selected="selected">Roboto</option>`)
	assert.NotContains(t, body, "settings-error")
}

func TestOptionsSubmit_InvalidKeyShowsErrorOnce(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodPost, PathOptions, url.Values{
		"option_page":      {entity.SettingsGroup},
		entity.FieldAPIKey: {"abc 123"},
	}, true)
	require.Equal(t, http.StatusSeeOther, rec.Code)

	location := rec.Header().Get("Location")
	assert.Contains(t, location, "page="+entity.SettingsPageSlug)
	assert.Contains(t, location, "settings-updated=true")

	stored, ok, err := ts.options.Get(context.Background(), entity.FieldAPIKey)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "abc 123", stored)

	rec = ts.do(t, http.MethodGet, location, nil, true)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "API key contains invalid characters")
	assert.NotContains(t, rec.Body.String(), "Settings saved.")

	rec = ts.do(t, http.MethodGet, location, nil, true)
	assert.NotContains(t, rec.Body.String(), "API key contains invalid characters")
	assert.Contains(t, rec.Body.String(), "Settings saved.")
}

func TestOptionsSubmit_ValidKeyInvalidatesCache(t *testing.T) {
	ts := newTestServer(t)
	ts.cache.EXPECT().Delete(mock.Anything, cacheKey).Return(nil).Once()

	rec := ts.do(t, http.MethodPost, PathOptions, url.Values{
		"option_page":      {entity.SettingsGroup},
		entity.FieldAPIKey: {"abc123"},
	}, true)
	require.Equal(t, http.StatusSeeOther, rec.Code)

	stored, _, err := ts.options.Get(context.Background(), entity.FieldAPIKey)
	require.NoError(t, err)
	assert.Equal(t, "abc123", stored)

	_, ok, err := ts.transients.Get(context.Background(), settingsErrorsTransient)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestOptionsSubmit_Rejections(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodPost, PathOptions, url.Values{"option_page": {"other-group"}}, true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// unknown groups are not revealed to anonymous callers
	rec = ts.do(t, http.MethodPost, PathOptions, url.Values{"option_page": {"other-group"}}, false)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.NotContains(t, rec.Body.String(), "options page not found")

	rec = ts.do(t, http.MethodPost, PathOptions, url.Values{
		"option_page":      {entity.SettingsGroup},
		entity.FieldAPIKey: {"abc123"},
	}, false)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestUsedFonts_JSON(t *testing.T) {
	ts := newTestServer(t)
	require.NoError(t, ts.options.Set(context.Background(), entity.ThemeOptionsName,
		`[{"face":"Roboto"},{"face":"Lato"},{"face":"Unknown"}]`))

	rec := ts.do(t, http.MethodGet, PathUsedFonts, nil, true)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp usedFontsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, []string{"Lato", "Roboto"}, resp.Fonts)
	assert.Equal(t, 2, resp.Count)
}

func TestUsedFonts_EmptyIsArray(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodGet, PathUsedFonts, nil, true)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"fonts":[],"count":0}`, rec.Body.String())
}
