package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"dashboard/config"
	"dashboard/icons"
	"dashboard/nav"
	"dashboard/preview"
	"dashboard/theme"
	"dashboard/ui"
)

var (
	previewColor  string
	previewOpen   bool
	previewActive string
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Draw the sidebar in the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		color := cfg.Color
		if cmd.Flags().Changed("color") {
			color = previewColor
		}

		state := ui.State{IsOpened: previewOpen}
		if previewActive != "" {
			r, ok := nav.Lookup(previewActive)
			if !ok {
				return fmt.Errorf("unknown route %q", previewActive)
			}
			state = state.Select(r.Title)
		}

		m := ui.Build(theme.Parse(color), state, cfg.Name)
		fmt.Fprintln(cmd.OutOrStdout(), preview.Render(m, icons.Default(cfg.Name)))
		return nil
	},
}

func init() {
	previewCmd.Flags().StringVar(&previewColor, "color", "", `theme color ("dark" or light)`)
	previewCmd.Flags().BoolVar(&previewOpen, "open", false, "draw the sidebar opened")
	previewCmd.Flags().StringVar(&previewActive, "active", "", "title of the active route")
	rootCmd.AddCommand(previewCmd)
}
