package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap/zapcore"

	"github.com/five82/yourenergy/internal/app"
	"github.com/five82/yourenergy/internal/config"
	"github.com/five82/yourenergy/internal/forms"
	"github.com/five82/yourenergy/internal/logtail"
)

func newQuoteCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "quote",
		Short: "Print the quote of the day",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := app.NewEnvironment(g.options())
			if err != nil {
				return err
			}
			defer env.Close()

			q, _, err := env.Quotes.Today(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%q\n  %s\n", q.Text, q.Author)
			return nil
		},
	}
}

func newSubscribeCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "subscribe EMAIL",
		Short: "Subscribe an email address to the newsletter",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			form := forms.Subscription{Email: args[0]}
			if err := form.Validate(); err != nil {
				return err
			}

			env, err := app.NewEnvironment(g.options())
			if err != nil {
				return err
			}
			defer env.Close()

			if err := env.Client.Subscribe(cmd.Context(), form.Email); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), forms.SubscribedMessage)
			return nil
		},
	}
}

func newRateCmd(g *globalFlags) *cobra.Command {
	var email, comment string
	cmd := &cobra.Command{
		Use:   "rate ID STARS",
		Short: "Rate an exercise from 1 to 5 stars",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			stars, err := strconv.Atoi(args[1])
			if err != nil {
				return forms.ErrNoRating
			}
			form := forms.Rating{Stars: stars, Email: email, Comment: comment}
			if err := form.Validate(); err != nil {
				return err
			}

			env, err := app.NewEnvironment(g.options())
			if err != nil {
				return err
			}
			defer env.Close()

			if err := env.Client.Rate(cmd.Context(), args[0], form.Request()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), forms.RatedMessage)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "email address of the rater (required)")
	cmd.Flags().StringVar(&comment, "comment", "", "optional review text")
	return cmd
}

func newLogsCmd(g *globalFlags) *cobra.Command {
	var (
		lines int
		raw   bool
		level string
	)
	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Print the tail of the application log",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(g.configPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			minLevel, err := zapcore.ParseLevel(level)
			if err != nil {
				return fmt.Errorf("invalid --level: %w", err)
			}
			tail, err := logtail.Tail(cfg.LogPath(), logtail.Options{Lines: lines, MinLevel: minLevel})
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, line := range tail {
				if !raw {
					line = logtail.Format(line)
				}
				fmt.Fprintln(out, line)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&lines, "lines", "n", 50, "number of lines to show")
	cmd.Flags().BoolVar(&raw, "raw", false, "print JSON lines unformatted")
	cmd.Flags().StringVar(&level, "level", "debug", "minimum level to show (debug, info, warn, error)")
	return cmd
}
