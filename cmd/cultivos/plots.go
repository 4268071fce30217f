package main

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"cultivos/pkg/harvest"
)

func newPlotsCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plots",
		Short: "Manage registered plots",
	}
	cmd.AddCommand(newPlotsListCmd(e), newPlotsAddCmd(e), newPlotsDeleteCmd(e))
	return cmd
}

func newPlotsListCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List plots ordered by number",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := e.store(); err != nil {
				return err
			}
			plots, err := e.services().plots.List()
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "NUMERO\tCULTIVO\tSIEMBRA\tPRIMERA\tRUTINARIA\tSUELO\tTEMP")
			for _, p := range plots {
				soil, temp := "-", "-"
				if p.SoilType != nil {
					soil = *p.SoilType
				}
				if p.Temperature != nil {
					temp = strconv.FormatFloat(*p.Temperature, 'g', -1, 64)
				}
				fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
					p.Number, p.CropType, p.SowingDate, p.FirstHarvest, p.RoutineHarvest, soil, temp)
			}
			return tw.Flush()
		},
	}
}

func newPlotsAddCmd(e *env) *cobra.Command {
	var in harvest.Input
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Register a plot; the number defaults to the next free one",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := e.store(); err != nil {
				return err
			}
			h, err := e.services().plots.Register(in)
			if err != nil {
				return err
			}
			return printPlot(cmd.OutOrStdout(), h, false)
		},
	}
	plotFlags(cmd, &in)
	cmd.Flags().IntVar(&in.Number, "number", 0, "plot number (default: next free)")
	return cmd
}

func newPlotsDeleteCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "delete NUMBER",
		Short: "Delete a plot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil || n <= 0 {
				return fmt.Errorf("invalid plot number %q", args[0])
			}
			if _, err := e.store(); err != nil {
				return err
			}
			if err := e.services().plots.Delete(n); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "plot %d deleted\n", n)
			return nil
		},
	}
}
