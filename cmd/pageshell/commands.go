package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/jask/pageshell/app"
	"github.com/jask/pageshell/core/route"
	"github.com/jask/pageshell/internal/config"
	"github.com/jask/pageshell/internal/database"
	"github.com/jask/pageshell/internal/database/repository"
)

func newRoutesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "Print the declared route table in match order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			routes, err := route.New(app.DefaultRoutes()...)
			if err != nil {
				return err
			}
			t := newTable("#", "PATTERN", "KIND", "CONTENT")
			for i, r := range routes.Routes() {
				kind := "literal"
				if !route.Literal(r.Pattern) {
					kind = "param"
				}
				t.Row(strconv.Itoa(i+1), r.Pattern, kind, r.Content.Title())
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), t.Render())
			return err
		},
	}
}

func newHistoryCmd(opts *options) *cobra.Command {
	var (
		limit   int
		session string
		prune   int
	)
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recorded locations from the sqlite history store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := database.OpenMigrated(opts.cfg.History.Path)
			if err != nil {
				return err
			}
			defer db.Close()
			repo := repository.NewHistoryRepo(db)
			ctx := cmd.Context()

			if prune > 0 {
				n, err := repo.Prune(ctx, prune)
				if err != nil {
					return fmt.Errorf("prune history: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "pruned %d entries\n", n)
				return nil
			}

			entries, err := repo.List(ctx, session, limit)
			if err != nil {
				return fmt.Errorf("list history: %w", err)
			}
			if len(entries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no history recorded")
				return nil
			}
			t := newTable("TIME", "SESSION", "SEQ", "KIND", "LOCATION")
			for _, e := range entries {
				loc := e.Path
				if e.RawQuery != "" {
					loc += "?" + e.RawQuery
				}
				t.Row(e.CreatedAt.Local().Format("2006-01-02 15:04:05"), shortID(e.Session), strconv.FormatInt(e.Seq, 10), e.Kind, loc)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), t.Render())
			return err
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "maximum entries to show (0 for all)")
	cmd.Flags().StringVar(&session, "session", "", "only show one session")
	cmd.Flags().IntVar(&prune, "prune", 0, "delete all but the newest N entries")
	return cmd
}

func newConfigCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create the config file",
	}
	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with the current settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := opts.configPath
			if path == "" {
				path = config.DefaultPath()
			}
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
				return err
			}
			if err := config.Save(path, opts.loaded); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	cmd.AddCommand(initCmd)
	return cmd
}

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderRow(false).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			return lipgloss.NewStyle().Padding(0, 1)
		})
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
