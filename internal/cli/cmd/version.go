package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/webfonts/internal/cli/styles"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version and build information",
	Long:  `Display version, build info and repository URL.`,
	Run: func(_ *cobra.Command, _ []string) {
		renderer := styles.NewAboutRenderer(styles.NewTheme())
		fmt.Println(renderer.Render(buildInfo))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
