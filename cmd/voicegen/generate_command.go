package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"voicegen/internal/catalog"
	"voicegen/internal/emit"
)

func newGenerateCommand(ctx *commandContext) *cobra.Command {
	var outputFlag string
	var packageFlag string
	var offline bool

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Build the voice catalog and emit the generated source file",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger := ctx.ensureLogger()

			voices, source, err := ctx.loadVoices(cmd.Context(), offline)
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
			logger.Info("built catalog",
				"source", source,
				"overrides", len(cat.Overrides),
				"standard", len(cat.Standard),
				"enhanced", len(cat.Enhanced),
				"premium", len(cat.Premium),
			)

			pkg := cfg.Output.Package
			if strings.TrimSpace(packageFlag) != "" {
				pkg = strings.TrimSpace(packageFlag)
			}
			src, err := emit.Emit(cat, emit.Options{PackageName: pkg})
			if err != nil {
				return err
			}

			target := cfg.Output.Path
			if strings.TrimSpace(outputFlag) != "" {
				target = strings.TrimSpace(outputFlag)
			}
			if target == "-" {
				_, err := cmd.OutOrStdout().Write(src)
				return err
			}

			if dir := filepath.Dir(target); dir != "." && dir != "" {
				if err := os.MkdirAll(dir, 0o755); err != nil {
					return fmt.Errorf("create output directory %q: %w", dir, err)
				}
			}
			if err := os.WriteFile(target, src, 0o644); err != nil {
				return fmt.Errorf("write generated file: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%d entries)\n", target, cat.Len())
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Generated file destination (\"-\" for stdout)")
	cmd.Flags().StringVar(&packageFlag, "package", "", "Package name for the generated file")
	cmd.Flags().BoolVar(&offline, "offline", false, "Rebuild from the newest cached fetch instead of the provider")

	return cmd
}
