package main

import (
	"github.com/spf13/cobra"

	"github.com/sat8bit/cheatsheet/tui"
)

func (a *app) newBrowseCmd() *cobra.Command {
	var highlight bool

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse the cheat sheet interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m := tui.New(a.cfg.Title, a.catalog.GetAll(), tui.WithHighlight(highlight))
			return tui.Run(cmd.Context(), m)
		},
	}
	cmd.Flags().BoolVar(&highlight, "highlight", false, "syntax highlight the code panes")
	return cmd
}
