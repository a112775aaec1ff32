package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"refa/internal/config"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize refa configuration",
	Long:  "Creates a .refa/ directory with a default config.json and naming.toml in the current directory",
	RunE:  runInit,
}

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "Overwrite an existing .refa directory")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	dir := filepath.Join(cwd, config.ConfigDirName)
	if _, statErr := os.Stat(dir); statErr == nil && !initForce {
		// Already initialized is success, so init stays CI-friendly.
		fmt.Println("refa already initialized.")
		fmt.Printf("Configuration at: %s\n", filepath.Join(dir, "config.json"))
		fmt.Println("\nRun 'refa init --force' to reinitialize.")
		return nil
	}

	if _, err := config.ConfigDir(cwd, true); err != nil {
		return err
	}

	data, err := json.MarshalIndent(config.DefaultConfig(), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.json"), append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	rules := defaultRulesTOML()
	if err := os.WriteFile(filepath.Join(dir, "naming.toml"), []byte(rules), 0o644); err != nil {
		return fmt.Errorf("failed to write naming rules: %w", err)
	}

	fmt.Println("Initialized refa configuration.")
	fmt.Printf("  %s\n", filepath.Join(dir, "config.json"))
	fmt.Printf("  %s\n", filepath.Join(dir, "naming.toml"))
	return nil
}

// defaultRulesTOML renders the default exclusion list as an editable file.
func defaultRulesTOML() string {
	out := "# Identifiers never suggested for renaming.\nexcluded = [\n"
	for _, name := range config.DefaultNamingRules().Excluded {
		out += fmt.Sprintf("  %q,\n", name)
	}
	return out + "]\n"
}
