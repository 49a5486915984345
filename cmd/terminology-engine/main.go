// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the terminology-engine CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/terminology-engine/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the terminology-engine CLI.
var rootCmd = &cobra.Command{
	Use:   "terminology-engine",
	Short: "Rule-based technical vocabulary extraction",
	Long: `terminology-engine extracts technical vocabulary from a pre-downloaded
NIST CSRC glossary export and from local plaintext source files, applying
rule-based filters to decide which hyphenated compounds and single words
qualify as technical terms.

Each stage is a subcommand: compounds and terms run the extraction
pipelines; catalog indexes the generated vocabulary files for lookup.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./terminology-engine.yaml or ~/.config/terminology-engine/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("terminology-engine")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "terminology-engine"))
		}
	}

	viper.SetEnvPrefix("TERMINOLOGY_ENGINE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// configValue resolves a string setting: an explicitly set flag wins, then
// the viper config key, then the flag's default.
func configValue(cmd *cobra.Command, flag, key string) string {
	if cmd.Flags().Changed(flag) {
		v, _ := cmd.Flags().GetString(flag)
		return v
	}
	if key != "" && viper.IsSet(key) {
		return viper.GetString(key)
	}
	v, _ := cmd.Flags().GetString(flag)
	return v
}

// pipelineConfig builds the extraction configuration from flags and config.
// When no output path is given, the file lands in the source directory under
// defaultOutput, matching where source scans will find it on later runs.
func pipelineConfig(cmd *cobra.Command, defaultOutput string) types.PipelineConfig {
	cfg := types.PipelineConfig{
		DownloadsDir: configValue(cmd, "downloads-dir", "downloads_dir"),
		GlossaryFile: configValue(cmd, "glossary", "glossary_file"),
		SourceDir:    configValue(cmd, "source-dir", "source_dir"),
		OutputFile:   configValue(cmd, "output", ""),
	}
	// Only commands that scan source files register --pattern.
	if cmd.Flags().Lookup("pattern") != nil {
		cfg.SourcePattern = configValue(cmd, "pattern", "source_pattern")
	}
	if cfg.OutputFile == "" {
		cfg.OutputFile = filepath.Join(cfg.SourceDir, defaultOutput)
	}
	return cfg
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
