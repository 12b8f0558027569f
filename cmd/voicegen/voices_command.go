package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"voicegen/internal/classify"
	"voicegen/internal/registry"
)

func newVoicesCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool
	var offline bool

	cmd := &cobra.Command{
		Use:   "voices",
		Short: "List the provider voice inventory",
		RunE: func(cmd *cobra.Command, args []string) error {
			voices, _, err := ctx.loadVoices(cmd.Context(), offline)
			if err != nil {
				return err
			}

			if jsonOutput {
				return writeJSON(cmd, voices)
			}

			reg := registry.Default()
			headers := []string{"Voice", "Tag", "Language", "Tier", "Pitch", "Hz"}
			rows := make([][]string, 0, len(voices))
			for _, voice := range voices {
				tag := voice.LanguageTag()
				desc, err := reg.Describe(tag)
				if err != nil {
					desc = "(unregistered)"
				}
				rows = append(rows, []string{
					voice.Name,
					tag,
					desc,
					classify.TierOf(voice.Name).String(),
					classify.PitchOf(voice.SSMLGender).String(),
					strconv.Itoa(voice.NaturalSampleRateHertz),
				})
			}
			aligns := []columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignLeft, alignRight}
			writeRows(cmd.OutOrStdout(), headers, rows, aligns)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit raw voice records as JSON")
	cmd.Flags().BoolVar(&offline, "offline", false, "Use the newest cached fetch instead of the provider")

	return cmd
}
