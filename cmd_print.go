package main

import (
	"github.com/spf13/cobra"

	"github.com/sat8bit/cheatsheet/renderer"
)

func addPrintFlags(cmd *cobra.Command) {
	cmd.Flags().String("style", "", "glamour style: auto, dark, light, notty, ... (default from config)")
	cmd.Flags().Int("width", 0, "word wrap width (default from config)")
}

func (a *app) newPrintCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "print",
		Short: "Print the cheat sheet to the terminal",
		Args:  cobra.NoArgs,
		RunE:  a.runPrint,
	}
	addPrintFlags(cmd)
	return cmd
}

func (a *app) runPrint(cmd *cobra.Command, args []string) error {
	style := a.cfg.Console.Style
	if cmd.Flags().Changed("style") {
		style, _ = cmd.Flags().GetString("style")
	}
	width := a.cfg.Console.Width
	if cmd.Flags().Changed("width") {
		width, _ = cmd.Flags().GetInt("width")
	}

	console, err := renderer.NewConsoleRenderer(cmd.OutOrStdout(), a.page(), style, width)
	if err != nil {
		return err
	}
	return renderer.Run(cmd.Context(), a.catalog, console)
}
