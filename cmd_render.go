package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sat8bit/cheatsheet/config"
	"github.com/sat8bit/cheatsheet/renderer"
)

func (a *app) newRenderCmd() *cobra.Command {
	var (
		outDir  string
		formats []string
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Write the cheat sheet as static files",
		Long: `Writes the cheat sheet to a directory in one pass:
  markdown  <title-slug>.md, a Hugo post
  html      index.html, the same page the web server serves
  feed      index.xml, an RSS feed with one item per topic
  atom      index.atom, the same feed as Atom`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := a.cfg.Output
			if cmd.Flags().Changed("out") {
				out.Dir = outDir
			}
			if cmd.Flags().Changed("format") {
				out.Formats = formats
			}

			renderers, err := a.fileRenderers(out)
			if err != nil {
				return err
			}
			return renderer.Run(cmd.Context(), a.catalog, renderers...)
		},
	}
	cmd.Flags().StringVarP(&outDir, "out", "o", "", "output directory (default from config)")
	cmd.Flags().StringSliceVarP(&formats, "format", "f", nil, "comma separated formats: markdown, html, feed, atom (default from config)")
	return cmd
}

func (a *app) fileRenderers(out config.OutputConfig) ([]renderer.Renderer, error) {
	if len(out.Formats) == 0 {
		return nil, fmt.Errorf("no output formats selected")
	}

	page := a.page()
	renderers := make([]renderer.Renderer, 0, len(out.Formats))
	for _, f := range out.Formats {
		switch f {
		case config.FormatMarkdown:
			renderers = append(renderers, renderer.NewMarkdownRenderer(out.Dir, page))
		case config.FormatHTML:
			renderers = append(renderers, renderer.NewHTMLRenderer(out.Dir, page))
		case config.FormatFeed:
			renderers = append(renderers, renderer.NewFeedRenderer(out.Dir, page))
		case config.FormatAtom:
			renderers = append(renderers, renderer.NewAtomRenderer(out.Dir, page))
		default:
			return nil, fmt.Errorf("unknown output format %q", f)
		}
	}
	return renderers, nil
}
