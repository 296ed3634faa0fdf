package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sat8bit/cheatsheet/topic"
)

func (a *app) newExportCmd() *cobra.Command {
	var (
		out    string
		format string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the catalog as YAML or JSON",
		Long: `Exports the catalog. With --out the format follows the file extension
(.yaml, .yml, .json); the file can be passed back with --catalog.
Without --out the catalog is written to stdout in --format.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if out != "" {
				return a.catalog.Export(out)
			}
			data, err := a.catalog.Encode(topic.Format(format))
			if err != nil {
				return err
			}
			if _, err := cmd.OutOrStdout().Write(data); err != nil {
				return fmt.Errorf("failed to write catalog: %w", err)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file")
	cmd.Flags().StringVar(&format, "format", string(topic.FormatYAML), "stdout format: yaml or json")
	return cmd
}
