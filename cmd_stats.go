package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andareed/siftly-bikeshare/filters"
	"github.com/andareed/siftly-bikeshare/trips"
)

// selectionFlags are shared by the non-interactive commands.
type selectionFlags struct {
	city  string
	month string
	day   string
}

func (f *selectionFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.city, "city", "", "chicago, new york city or washington")
	cmd.Flags().StringVar(&f.month, "month", filters.All, "January..June or All")
	cmd.Flags().StringVar(&f.day, "day", filters.All, "Monday..Sunday or All")
	_ = cmd.MarkFlagRequired("city")
}

func (a *app) loadSelection(cmd *cobra.Command, f *selectionFlags) (filters.Selection, *trips.Table, error) {
	sel, err := filters.New(f.city, f.month, f.day)
	if err != nil {
		return filters.Selection{}, nil, err
	}
	table, err := a.loader().Load(cmd.Context(), sel)
	if err != nil {
		return filters.Selection{}, nil, err
	}
	return sel, table, nil
}

func (a *app) statsCmd() *cobra.Command {
	var f selectionFlags
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print trip statistics for one city without prompting",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sel, table, err := a.loadSelection(cmd, &f)
			if err != nil {
				return err
			}
			a.printer.Info("%s: %d trips", sel, table.Len())
			a.reporter().All(table)
			return nil
		},
	}
	f.register(cmd)
	return cmd
}

func (a *app) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), "Version:", Version)
			return err
		},
	}
}
