package main

import (
	"github.com/spf13/cobra"

	"github.com/five82/yourenergy/internal/app"
)

// globalFlags are shared by every subcommand.
type globalFlags struct {
	configPath string
	verbose    bool
}

func (g *globalFlags) options() app.Options {
	return app.Options{ConfigPath: g.configPath, Verbose: g.verbose}
}

func newRootCmd() *cobra.Command {
	var (
		g         globalFlags
		prefsPath string
		route     string
	)

	root := &cobra.Command{
		Use:   "yourenergy",
		Short: "Browse the Your Energy exercise catalog from the terminal",
		Long: `yourenergy browses exercise categories and exercises, keeps a local
list of favorites and shows a daily motivational quote.

Run without arguments to start the interactive interface.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := g.options()
			opts.PrefsPath = prefsPath
			opts.Route = route
			return app.Run(cmd.Context(), opts)
		},
	}

	root.PersistentFlags().StringVar(&g.configPath, "config", "", "config file (default ~/.config/yourenergy/config.toml)")
	root.PersistentFlags().BoolVarP(&g.verbose, "verbose", "v", false, "log debug output")
	root.Flags().StringVar(&prefsPath, "prefs", "", "preferences file (default ~/.config/yourenergy/prefs.toml)")
	root.Flags().StringVar(&route, "route", "#/home", "start page: #/home or #/favorites")

	root.AddCommand(
		newFavoritesCmd(&g),
		newQuoteCmd(&g),
		newSubscribeCmd(&g),
		newRateCmd(&g),
		newLogsCmd(&g),
	)
	return root
}
