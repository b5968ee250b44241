package main

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/xgx-io/xgx-taxon/taxongen"
)

// validateCmd checks a manifest against the declaration rules without
// writing anything. Every violation is reported, not just the first.
func validateCmd() *cobra.Command {
	var manifestPath string
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check a taxonomy manifest against the declaration rules",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := taxongen.Load(manifestPath)
			if err != nil {
				return err
			}
			if err := taxongen.Validate(m); err != nil {
				return err
			}
			log.Debug().Str("manifest", manifestPath).Msg("Manifest is valid")
			cmd.Printf("%s: %d kinds, %d variants\n", manifestPath, len(m.Kinds), len(m.Variants))
			return nil
		},
	}

	cmd.Flags().StringVarP(&manifestPath, "file", "f", "taxonomy.yaml", "Path to the taxonomy manifest")

	return cmd
}
