package cmd

import (
	"context"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/bnema/webfonts/internal/application/usecase"
	"github.com/bnema/webfonts/internal/cli/styles"
	"github.com/bnema/webfonts/internal/domain/entity"
)

func TestMaskKey(t *testing.T) {
	require.Equal(t, "", maskKey(""))
	require.Equal(t, "********", maskKey("abcdefgh"))
	require.Equal(t, "AIza*****wxyz", maskKey("AIza12345wxyz"))
}

func TestSkipAppInit(t *testing.T) {
	find := func(args ...string) *cobra.Command {
		c, _, err := rootCmd.Find(args)
		require.NoError(t, err)
		return c
	}

	require.True(t, skipAppInit(find("version")))
	require.True(t, skipAppInit(find("config", "init")))
	require.True(t, skipAppInit(find("config", "hash-password")))
	require.False(t, skipAppInit(find("serve")))
	require.False(t, skipAppInit(find("fonts", "list")))
	require.False(t, skipAppInit(find("apikey", "set")))
}

func TestRefreshModel_QuitsWithResult(t *testing.T) {
	m := newRefreshModel(context.Background(), styles.NewTheme(), nil, false)
	require.NotEmpty(t, m.View())

	out := &usecase.RefreshFontListOutput{Fonts: []entity.RemoteFont{{Family: "Lato"}}}
	next, cmd := m.Update(refreshResultMsg{output: out})
	require.NotNil(t, cmd)

	done := next.(refreshModel)
	require.True(t, done.done)
	require.Same(t, out, done.output)
	require.NoError(t, done.err)
	require.Empty(t, done.View())
}

func TestRefreshModel_KeepsError(t *testing.T) {
	m := newRefreshModel(context.Background(), styles.NewTheme(), nil, true)

	next, _ := m.Update(refreshResultMsg{err: usecase.ErrMissingAPIKey})
	require.ErrorIs(t, next.(refreshModel).err, usecase.ErrMissingAPIKey)
}
