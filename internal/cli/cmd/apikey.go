package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bnema/webfonts/internal/application/usecase"
	"github.com/bnema/webfonts/internal/cli/styles"
)

var apikeyReveal bool

var apikeyCmd = &cobra.Command{
	Use:   "apikey",
	Short: "Manage the Google Developer API key",
}

var apikeySetCmd = &cobra.Command{
	Use:   "set <key>",
	Short: "Validate and store the API key",
	Long: `Validate the API key the same way the options page does and store it.

A valid key discards the cached remote font list so the next refresh uses it.
An invalid key is reported and not stored.`,
	Args: cobra.ExactArgs(1),
	RunE: runAPIKeySet,
}

var apikeyShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the stored API key (masked)",
	RunE:  runAPIKeyShow,
}

func init() {
	rootCmd.AddCommand(apikeyCmd)
	apikeyCmd.AddCommand(apikeySetCmd)
	apikeyCmd.AddCommand(apikeyShowCmd)
	apikeyShowCmd.Flags().BoolVar(&apikeyReveal, "reveal", false, "print the key unmasked")
}

func runAPIKeySet(_ *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	messages := styles.NewMessageRenderer(app.Theme)
	result, err := app.APIKeyUC.Set(app.Ctx(), args[0])
	if err != nil {
		return err
	}
	if !result.Valid {
		fmt.Println(messages.RenderSettingsErrors(result.Errors))
		return fmt.Errorf("api key rejected")
	}

	fmt.Println(messages.RenderSuccess("API key stored, remote font list cache cleared"))
	return nil
}

func runAPIKeyShow(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	messages := styles.NewMessageRenderer(app.Theme)
	key, err := app.APIKeyUC.Get(app.Ctx())
	if errors.Is(err, usecase.ErrMissingAPIKey) {
		fmt.Println(messages.RenderWarning("no API key stored"))
		return nil
	}
	if err != nil {
		return err
	}

	if !apikeyReveal {
		key = maskKey(key)
	}
	fmt.Println(messages.RenderInfo(styles.IconKey, "API key", key))
	return nil
}

// maskKey keeps the first and last four characters of keys long enough to
// still hide most of them.
func maskKey(key string) string {
	if len(key) <= 8 {
		return strings.Repeat("*", len(key))
	}
	return key[:4] + strings.Repeat("*", len(key)-8) + key[len(key)-4:]
}
