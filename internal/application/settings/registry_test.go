package settings_test

import (
	"bytes"
	"context"
	"errors"
	"html/template"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/webfonts/internal/application/settings"
	"github.com/bnema/webfonts/internal/domain/entity"
	repomocks "github.com/bnema/webfonts/internal/domain/repository/mocks"
	"github.com/bnema/webfonts/internal/logging"
)

func testContext() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

func noopRenderer(context.Context, *settings.RenderContext) (template.HTML, error) {
	return "", nil
}

func TestRegistry_FieldsKeepRegistrationOrder(t *testing.T) {
	r := settings.NewRegistry()
	require.NoError(t, r.AddSection("main", "Main", "page", nil))
	require.NoError(t, r.AddField("b", "B", "page", "main", noopRenderer))
	require.NoError(t, r.AddField("a", "A", "page", "main", noopRenderer))
	require.NoError(t, r.AddField("c", "C", "page", "other", noopRenderer))

	fields := r.Fields("page", "main")
	require.Len(t, fields, 2)
	assert.Equal(t, "b", fields[0].ID)
	assert.Equal(t, "a", fields[1].ID)
	assert.Len(t, r.Sections("page"), 1)
	assert.Empty(t, r.Sections("missing"))
}

func TestRegistry_RejectsDuplicates(t *testing.T) {
	r := settings.NewRegistry()

	require.NoError(t, r.RegisterSetting("g", "opt", nil))
	assert.ErrorIs(t, r.RegisterSetting("g", "opt", nil), settings.ErrDuplicate)

	require.NoError(t, r.AddSection("s", "S", "p", nil))
	assert.ErrorIs(t, r.AddSection("s", "S", "p", nil), settings.ErrDuplicate)

	require.NoError(t, r.AddField("f", "F", "p", "s", noopRenderer))
	assert.ErrorIs(t, r.AddField("f", "F", "p", "s", noopRenderer), settings.ErrDuplicate)

	require.NoError(t, r.AddOptionsPage(settings.OptionsPage{Slug: "slug"}))
	assert.ErrorIs(t, r.AddOptionsPage(settings.OptionsPage{Slug: "slug"}), settings.ErrDuplicate)
}

func TestRegistry_AddFieldRequiresRenderer(t *testing.T) {
	r := settings.NewRegistry()
	assert.Error(t, r.AddField("f", "F", "p", "s", nil))
}

func TestRegistry_OptionsPageLookup(t *testing.T) {
	r := settings.NewRegistry()
	require.NoError(t, r.AddOptionsPage(settings.OptionsPage{Slug: "fonts", Title: "Fonts"}))

	page, err := r.OptionsPage("fonts")
	require.NoError(t, err)
	assert.Equal(t, "Fonts", page.Title)

	_, err = r.OptionsPage("nope")
	assert.ErrorIs(t, err, settings.ErrUnknownPage)
	assert.Len(t, r.OptionsPages(), 1)
}

func TestRegistry_Submit_PersistsValidatedValuesAndCollectsErrors(t *testing.T) {
	ctx := testContext()
	options := repomocks.NewMockOptionRepository(t)

	r := settings.NewRegistry()
	require.NoError(t, r.RegisterSetting("g", "key", func(_ context.Context, input string) entity.ValidationResult {
		return entity.ValidationResult{
			Value:  input,
			Errors: []entity.SettingsError{{Setting: "key", Code: "texterror", Message: "bad", Type: "error"}},
		}
	}))
	require.NoError(t, r.RegisterSetting("g", "plain", nil))
	require.NoError(t, r.RegisterSetting("other", "ignored", nil))

	options.EXPECT().Set(mock.Anything, "key", "a b").Return(nil).Once()
	options.EXPECT().Set(mock.Anything, "plain", "").Return(nil).Once()

	sub, err := r.Submit(ctx, options, "g", map[string][]string{"key": {"a b"}})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"key": "a b", "plain": ""}, sub.Values)
	require.Len(t, sub.Errors, 1)
	assert.Equal(t, "bad", sub.Errors[0].Message)
}

func TestRegistry_Submit_UnknownGroup(t *testing.T) {
	ctx := testContext()
	options := repomocks.NewMockOptionRepository(t)

	_, err := settings.NewRegistry().Submit(ctx, options, "nope", nil)
	assert.ErrorIs(t, err, settings.ErrUnknownGroup)
}

func TestRegistry_Submit_StoreFailure(t *testing.T) {
	ctx := testContext()
	options := repomocks.NewMockOptionRepository(t)
	options.EXPECT().Set(mock.Anything, "opt", "v").Return(errors.New("readonly database"))

	r := settings.NewRegistry()
	require.NoError(t, r.RegisterSetting("g", "opt", nil))

	_, err := r.Submit(ctx, options, "g", map[string][]string{"opt": {"v"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to save option opt")
}

func TestHooks_RunByPriorityThenRegistrationOrder(t *testing.T) {
	ctx := testContext()
	h := settings.NewHooks()

	var order []string
	record := func(name string) settings.Handler {
		return func(context.Context, io.Writer) error {
			order = append(order, name)
			return nil
		}
	}

	h.Add("admin_head", 20, record("late"))
	h.Add("admin_head", settings.DefaultPriority, record("first"))
	h.Add("admin_head", settings.DefaultPriority, record("second"))
	h.Add("admin_menu", 1, record("other event"))

	require.NoError(t, h.Run(ctx, "admin_head", nil))
	assert.Equal(t, []string{"first", "second", "late"}, order)
}

func TestHooks_RunStopsOnError(t *testing.T) {
	ctx := testContext()
	h := settings.NewHooks()

	called := false
	h.Add("admin_init", 1, func(context.Context, io.Writer) error { return errors.New("boom") })
	h.Add("admin_init", 2, func(context.Context, io.Writer) error { called = true; return nil })

	err := h.Run(ctx, "admin_init", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "hook admin_init (priority 1)")
	assert.False(t, called)
}

func TestHooks_HandlersWriteMarkup(t *testing.T) {
	ctx := testContext()
	h := settings.NewHooks()
	h.Add("admin_head", 20, func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, "<link>")
		return err
	})

	var buf bytes.Buffer
	require.NoError(t, h.Run(ctx, "admin_head", &buf))
	assert.Equal(t, "<link>", buf.String())
	assert.Empty(t, h.Registrations("unknown"))
}
