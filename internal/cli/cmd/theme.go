package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/bnema/webfonts/internal/cli/styles"
)

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Manage the stored theme options",
}

var themeImportCmd = &cobra.Command{
	Use:   "import <file.json>",
	Short: "Replace the theme options with a JSON file",
	Long: `Store a JSON object or array as the theme options (woo_options).

Options holding a "face" member mark that font family as used by the theme.`,
	Args: cobra.ExactArgs(1),
	RunE: runThemeImport,
}

func init() {
	rootCmd.AddCommand(themeCmd)
	themeCmd.AddCommand(themeImportCmd)
}

func runThemeImport(_ *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read %s: %w", args[0], err)
	}

	count, err := app.ThemeStore.Import(app.Ctx(), data)
	if err != nil {
		return err
	}

	messages := styles.NewMessageRenderer(app.Theme)
	fmt.Println(messages.RenderSuccess("theme options imported"))
	fmt.Println(messages.RenderInfo(styles.IconConfig, "options", strconv.Itoa(count)))
	return nil
}
