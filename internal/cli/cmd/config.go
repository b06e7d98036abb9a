package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bnema/webfonts/internal/cli/styles"
	"github.com/bnema/webfonts/internal/infrastructure/auth"
	"github.com/bnema/webfonts/internal/infrastructure/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long:  `Create the config file, print its path or export its JSON schema.`,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with default settings",
	Long:  `Write the default configuration. An existing file is left untouched.`,
	RunE:  runConfigInit,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	RunE:  runConfigPath,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the config file",
	RunE:  runConfigSchema,
}

var configHashPasswordCmd = &cobra.Command{
	Use:   "hash-password [password]",
	Short: "Print a bcrypt hash for admin.password_hash",
	Long: `Hash an administrator password for the admin.password_hash setting.

The password is read from standard input when no argument is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfigHashPassword,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configSchemaCmd)
	configCmd.AddCommand(configHashPasswordCmd)
}

func resolveConfigFile() (string, error) {
	if configFile != "" {
		return configFile, nil
	}
	return config.GetConfigFile()
}

func runConfigInit(_ *cobra.Command, _ []string) error {
	messages := styles.NewMessageRenderer(styles.NewTheme())

	path, err := resolveConfigFile()
	if err != nil {
		return err
	}

	written, err := config.WriteDefaultConfig(path)
	if err != nil {
		return err
	}
	if !written {
		fmt.Println(messages.RenderWarning("config file already exists: " + path))
		return nil
	}
	fmt.Println(messages.RenderSuccess("config file written: " + path))
	return nil
}

func runConfigPath(_ *cobra.Command, _ []string) error {
	path, err := resolveConfigFile()
	if err != nil {
		return err
	}
	fmt.Println(path)
	return nil
}

func runConfigSchema(_ *cobra.Command, _ []string) error {
	schema, err := config.Schema()
	if err != nil {
		return err
	}
	fmt.Println(string(schema))
	return nil
}

func runConfigHashPassword(_ *cobra.Command, args []string) error {
	var password string
	if len(args) == 1 {
		password = args[0]
	} else {
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil && line == "" {
			return fmt.Errorf("read password: %w", err)
		}
		password = strings.TrimRight(line, "\r\n")
	}
	if password == "" {
		return fmt.Errorf("password must not be empty")
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}
	fmt.Println(hash)
	return nil
}
