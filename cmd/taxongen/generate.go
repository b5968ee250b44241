package main

import (
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/xgx-io/xgx-taxon/taxongen"
)

// generateCmd renders the variant file for a manifest. With --check it
// verifies the committed artifact instead, so CI can fail on drift.
func generateCmd() *cobra.Command {
	var (
		manifestPath string
		outputPath   string
		check        bool
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the variant file for a taxonomy manifest",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, manifestPath, outputPath, check)
		},
	}

	cmd.Flags().StringVarP(&manifestPath, "file", "f", "taxonomy.yaml", "Path to the taxonomy manifest")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output path (default: <package>_gen.go next to the manifest)")
	cmd.Flags().BoolVar(&check, "check", false, "Verify the artifact is current instead of writing it")

	return cmd
}

func runGenerate(cmd *cobra.Command, manifestPath, outputPath string, check bool) error {
	m, err := taxongen.Load(manifestPath)
	if err != nil {
		return err
	}
	if outputPath == "" {
		outputPath = filepath.Join(filepath.Dir(manifestPath), taxongen.DefaultOutput(m))
	}
	log.Debug().Str("manifest", manifestPath).Str("output", outputPath).Msg("Generating taxonomy")

	if check {
		upToDate, err := taxongen.Check(m, outputPath)
		if err != nil {
			return err
		}
		if !upToDate {
			return fmt.Errorf("%s is out of date - run 'taxongen generate -f %s'", outputPath, manifestPath)
		}
		cmd.Println("up to date:", outputPath)
		return nil
	}

	if err := taxongen.WriteFile(m, outputPath); err != nil {
		return err
	}
	cmd.Println("wrote", outputPath)
	return nil
}
