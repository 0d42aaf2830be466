package main

import (
	"github.com/rpggio/storyboard/internal/domain/selection"
	"github.com/spf13/cobra"
)

func newVariantsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "variants [id]",
		Short: "List auction variants, or show one in detail",
		Long:  "Without an id, lists the catalog with the default selection marked. With an id, shows that variant; unknown ids show the first variant.",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runVariants,
	}
	cmd.Flags().Bool("json", false, "print JSON")
	return cmd
}

func runVariants(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	store, err := openCatalog(cfg)
	if err != nil {
		return err
	}
	asJSON, _ := cmd.Flags().GetBool("json")
	out := cmd.OutOrStdout()
	sel := selection.New(store, nil)

	if len(args) == 0 {
		if asJSON {
			return writeJSON(out, store.List())
		}
		printVariantList(out, store.List(), sel.ActiveID())
		return nil
	}

	v := sel.Select(args[0])
	if asJSON {
		return writeJSON(out, v)
	}
	printVariant(out, v)
	return nil
}
