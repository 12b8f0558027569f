package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"voicegen/internal/catalog"
)

func newCatalogCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool
	var offline bool

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Build the catalog and show the ranked tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			voices, _, err := ctx.loadVoices(cmd.Context(), offline)
			if err != nil {
				return err
			}

			rules := catalog.DefaultRules()
			rules.MostCommonVariants = cfg.Catalog.MostCommonVariants
			rules.OverrideVoiceIDs = cfg.Catalog.OverrideVoiceIDs

			cat, err := catalog.Build(voices, rules)
			if err != nil {
				return fmt.Errorf("build catalog: %w", err)
			}

			if jsonOutput {
				return writeJSON(cmd, cat)
			}

			out := cmd.OutOrStdout()
			sections := []struct {
				name    string
				entries []catalog.Entry
			}{
				{"Overrides", cat.Overrides},
				{"Standard", cat.Standard},
				{"Enhanced", cat.Enhanced},
				{"Premium", cat.Premium},
			}
			headers := []string{"#", "Lang", "Voice", "Description", "Pitch"}
			aligns := []columnAlignment{alignRight, alignLeft, alignLeft, alignLeft, alignLeft}
			for _, section := range sections {
				fmt.Fprintf(out, "%s (%d)\n", section.name, len(section.entries))
				rows := make([][]string, 0, len(section.entries))
				for i, entry := range section.entries {
					rows = append(rows, []string{
						fmt.Sprintf("%d", i+1),
						entry.Lang,
						entry.VoiceID,
						entry.Description,
						entry.Pitch.String(),
					})
				}
				writeRows(out, headers, rows, aligns)
				fmt.Fprintln(out)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit the catalog as JSON")
	cmd.Flags().BoolVar(&offline, "offline", false, "Use the newest cached fetch instead of the provider")

	return cmd
}
