package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/webfonts/internal/application/usecase"
	"github.com/bnema/webfonts/internal/cli/styles"
	"github.com/bnema/webfonts/internal/infrastructure/i18n"
)

var (
	fontsOld     bool
	fontsNew     bool
	refreshForce bool
	refreshLimit int
)

var fontsCmd = &cobra.Command{
	Use:   "fonts",
	Short: "Inspect the font catalog and the remote font list",
}

var fontsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalog fonts, marking the ones used by the theme",
	Long: `List the framework fonts and the new fonts of the catalog.

Fonts referenced by a face attribute in the theme options are checked.
Use --old or --new to show a single partition.`,
	RunE: runFontsList,
}

var fontsUsedCmd = &cobra.Command{
	Use:   "used",
	Short: "List catalog fonts used by the theme options",
	RunE:  runFontsUsed,
}

var fontsRefreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Fetch the Google Fonts list with the stored API key",
	Long: `Fetch the remote Google Fonts list and store it in the font list cache.

The cached list is returned when present unless --force is given.`,
	RunE: runFontsRefresh,
}

func init() {
	rootCmd.AddCommand(fontsCmd)
	fontsCmd.AddCommand(fontsListCmd)
	fontsCmd.AddCommand(fontsUsedCmd)
	fontsCmd.AddCommand(fontsRefreshCmd)

	fontsListCmd.Flags().BoolVar(&fontsOld, "old", false, "only list framework fonts")
	fontsListCmd.Flags().BoolVar(&fontsNew, "new", false, "only list new fonts")
	fontsListCmd.MarkFlagsMutuallyExclusive("old", "new")

	fontsRefreshCmd.Flags().BoolVarP(&refreshForce, "force", "f", false, "ignore the cached list")
	fontsRefreshCmd.Flags().IntVarP(&refreshLimit, "limit", "n", 20, "number of families to print (0 for all)")
}

func runFontsList(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	ctx := app.Ctx()

	catalog, err := app.ThemeFontsUC.Catalog(ctx)
	if err != nil {
		return err
	}
	// One scope so both partitions share a single resolution.
	scope := usecase.NewUsedFontScope()
	used, err := app.ThemeFontsUC.UsedFonts(ctx, scope)
	if err != nil {
		return err
	}

	tr := app.Translator
	renderer := styles.NewFontsRenderer(app.Theme)
	if !fontsNew {
		fmt.Println(renderer.RenderCatalog(tr.T(i18n.MsgOldFontsLabel), catalog.Old, used, tr.T(i18n.MsgNoOldFonts)))
	}
	if !fontsOld && !fontsNew {
		fmt.Println()
	}
	if !fontsOld {
		fmt.Println(renderer.RenderCatalog(tr.T(i18n.MsgNewFontsLabel), catalog.New, used, tr.T(i18n.MsgNoNewFonts)))
	}
	return nil
}

func runFontsUsed(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	used, err := app.ThemeFontsUC.UsedFonts(app.Ctx(), nil)
	if err != nil {
		return err
	}

	renderer := styles.NewFontsRenderer(app.Theme)
	fmt.Println(renderer.RenderUsed(app.Translator.T(i18n.MsgFontsUsedByTheme, used.Len()), used))
	return nil
}

func runFontsRefresh(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	messages := styles.NewMessageRenderer(app.Theme)
	m := newRefreshModel(app.Ctx(), app.Theme, app.RefreshFontListUC, refreshForce)
	final, err := tea.NewProgram(m).Run()
	if err != nil {
		return err
	}

	result, ok := final.(refreshModel)
	if !ok || result.quitting {
		return nil
	}
	if result.err != nil {
		if errors.Is(result.err, usecase.ErrMissingAPIKey) {
			fmt.Println(messages.RenderWarning("no API key stored, run 'webfonts apikey set <key>' first"))
			return nil
		}
		fmt.Println(messages.RenderError(result.err))
		return result.err
	}

	renderer := styles.NewFontsRenderer(app.Theme)
	out := result.output
	fmt.Println(renderer.RenderRemote(
		app.Translator.T(i18n.MsgRemoteFontsLoaded, len(out.Fonts)),
		out.Fonts, out.FromCache, refreshLimit))
	return nil
}

// refreshResultMsg is sent when the fetch completes.
type refreshResultMsg struct {
	output *usecase.RefreshFontListOutput
	err    error
}

// refreshModel shows a spinner while the remote font list is fetched.
type refreshModel struct {
	ctx     context.Context
	loading styles.LoadingModel
	uc      *usecase.RefreshFontListUseCase
	force   bool

	output   *usecase.RefreshFontListOutput
	err      error
	done     bool
	quitting bool
}

func newRefreshModel(ctx context.Context, theme *styles.Theme, uc *usecase.RefreshFontListUseCase, force bool) refreshModel {
	return refreshModel{
		ctx:     ctx,
		loading: styles.NewLoading(theme, "Fetching Google Fonts list..."),
		uc:      uc,
		force:   force,
	}
}

func (m refreshModel) Init() tea.Cmd {
	return tea.Batch(m.loading.Spinner.Tick, m.fetch())
}

func (m refreshModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.loading.Spinner, cmd = m.loading.Spinner.Update(msg)
		return m, cmd

	case refreshResultMsg:
		m.done = true
		m.output = msg.output
		m.err = msg.err
		return m, tea.Quit
	}

	return m, nil
}

func (m refreshModel) View() string {
	if m.done || m.quitting {
		return ""
	}
	return m.loading.View() + "\n"
}

func (m refreshModel) fetch() tea.Cmd {
	return func() tea.Msg {
		out, err := m.uc.Execute(m.ctx, usecase.RefreshFontListInput{Force: m.force})
		return refreshResultMsg{output: out, err: err}
	}
}
