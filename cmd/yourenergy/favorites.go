package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/five82/yourenergy/internal/app"
)

var errBlankID = errors.New("exercise ID must not be blank")

func newFavoritesCmd(g *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "favorites",
		Aliases: []string{"fav"},
		Short:   "Manage favorite exercises",
	}

	var (
		page    int
		limit   int
		idsOnly bool
	)
	list := &cobra.Command{
		Use:   "list",
		Short: "List favorite exercises",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := app.NewEnvironment(g.options())
			if err != nil {
				return err
			}
			defer env.Close()

			out := cmd.OutOrStdout()
			if limit <= 0 {
				limit = env.Config.PageLimits(false).Favorites
			}
			ids, total, current := env.Favorites.Page(page, limit)
			if len(ids) == 0 {
				fmt.Fprintln(out, "No favorites yet.")
				return nil
			}
			if idsOnly {
				for _, id := range ids {
					fmt.Fprintln(out, id)
				}
				return nil
			}

			details := env.Client.FetchExercisesByID(cmd.Context(), ids)
			for i, id := range ids {
				name := "(unavailable)"
				if ex := details[i]; ex != nil {
					name = ex.Name
				}
				fmt.Fprintf(out, "%s  %s\n", id, name)
			}
			if total > 1 {
				fmt.Fprintf(out, "page %d of %d, %d favorites\n", current, total, env.Favorites.Len())
			}
			return nil
		},
	}
	list.Flags().IntVarP(&page, "page", "p", 1, "page to show")
	list.Flags().IntVar(&limit, "limit", 0, "favorites per page (default from config)")
	list.Flags().BoolVar(&idsOnly, "ids", false, "print IDs only without fetching details")

	mutate := func(use, short string, apply func(env *app.Environment, id string) string) *cobra.Command {
		return &cobra.Command{
			Use:   use + " ID",
			Short: short,
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				id := strings.TrimSpace(args[0])
				if id == "" {
					return errBlankID
				}
				env, err := app.NewEnvironment(g.options())
				if err != nil {
					return err
				}
				defer env.Close()
				fmt.Fprintln(cmd.OutOrStdout(), apply(env, id))
				return nil
			},
		}
	}

	add := mutate("add", "Add an exercise to favorites", func(env *app.Environment, id string) string {
		if env.Favorites.Add(id) {
			return "Added " + id
		}
		return id + " is already a favorite"
	})
	remove := mutate("remove", "Remove an exercise from favorites", func(env *app.Environment, id string) string {
		if env.Favorites.Remove(id) {
			return "Removed " + id
		}
		return id + " is not a favorite"
	})
	toggle := mutate("toggle", "Add or remove an exercise", func(env *app.Environment, id string) string {
		if env.Favorites.Toggle(id) {
			return "Added " + id
		}
		return "Removed " + id
	})

	cmd.AddCommand(list, add, remove, toggle)
	return cmd
}
