package main

import (
	"fmt"

	"github.com/rpggio/storyboard/internal/config"
	"github.com/rpggio/storyboard/internal/domain/catalog"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "storyboard",
		Short:         "Sealed-bid auction storyboards",
		Long:          "storyboard walks through Vickrey auction variants and builds case storyboards for them, as an MCP server or from the command line.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().String("config", "", "config file (default $STORYBOARD_CONFIG_PATH)")
	root.PersistentFlags().String("catalog", "", "YAML catalog replacing the builtin variants")
	root.PersistentFlags().String("log-level", "", "log level: debug, info, warn or error")

	root.AddCommand(
		newServeCmd(),
		newVariantsCmd(),
		newCaseCmd(),
		newSeedCmd(),
	)
	return root
}

// loadConfig loads configuration and applies the persistent flag overrides.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	var (
		cfg config.Config
		err error
	)
	if path != "" {
		cfg, err = config.LoadFrom(path)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return config.Config{}, fmt.Errorf("failed to load config: %w", err)
	}

	if cmd.Flags().Changed("catalog") {
		cfg.Catalog.Path, _ = cmd.Flags().GetString("catalog")
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level, _ = cmd.Flags().GetString("log-level")
	}
	return cfg, nil
}

func openCatalog(cfg config.Config) (*catalog.Store, error) {
	store, err := catalog.Open(cfg.Catalog.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	return store, nil
}
