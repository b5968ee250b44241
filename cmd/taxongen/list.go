package main

import (
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	xgxtaxon "github.com/xgx-io/xgx-taxon"
	"github.com/xgx-io/xgx-taxon/taxongen"
)

// listCmd renders the kinds and variants a manifest declares, with the
// derived side and full class path each variant will carry.
func listCmd() *cobra.Command {
	var manifestPath string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show the kinds and variants a manifest declares",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, manifestPath)
		},
	}

	cmd.Flags().StringVarP(&manifestPath, "file", "f", "taxonomy.yaml", "Path to the taxonomy manifest")

	return cmd
}

func runList(cmd *cobra.Command, manifestPath string) error {
	m, err := taxongen.Load(manifestPath)
	if err != nil {
		return err
	}
	if err := taxongen.Validate(m); err != nil {
		return err
	}

	kinds := make(map[string]xgxtaxon.Kind, len(m.Kinds))

	kindTable := tablewriter.NewWriter(cmd.OutOrStdout())
	kindTable.SetHeader([]string{"Kind", "Message ID", "Code", "Side", "Description"})

	// Table appearance settings
	kindTable.SetAlignment(tablewriter.ALIGN_LEFT)       // Align all columns to the left
	kindTable.SetHeaderAlignment(tablewriter.ALIGN_LEFT) // Align headers to the left
	kindTable.SetAutoWrapText(false)                     // Disable text wrapping in all columns

	for _, kd := range m.Kinds {
		k := xgxtaxon.NewKind(xgxtaxon.KindDecl{
			Name:        kd.Name,
			MessageID:   kd.MessageID,
			Code:        kd.Code,
			Description: kd.Description,
			Side:        xgxtaxon.Side(kd.Side),
		})
		kinds[kd.Name] = k
		kindTable.Append([]string{
			k.Name(),
			k.MessageID(),
			fmt.Sprintf("%d", k.Code()),
			string(k.Side()),
			k.Description(),
		})
	}
	kindTable.Render()
	cmd.Println()

	variantTable := tablewriter.NewWriter(cmd.OutOrStdout())
	variantTable.SetHeader([]string{"Variant", "Kind", "Class"})
	variantTable.SetAlignment(tablewriter.ALIGN_LEFT)
	variantTable.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	variantTable.SetAutoWrapText(false)

	for _, v := range m.Variants {
		variantTable.Append([]string{v.Name, v.Kind, kinds[v.Kind].Class(v.Name)})
	}
	variantTable.Render()

	return nil
}
