package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"cultivos/entities"
	"cultivos/pkg/harvest"
)

// plotFlags are shared by calc and plots add.
func plotFlags(cmd *cobra.Command, in *harvest.Input) {
	f := cmd.Flags()
	f.StringVar(&in.CropType, "crop", "", "crop type, e.g. limones, maíz, trigo, tomate")
	f.StringVar(&in.SowingDate, "sowing", "", "sowing date (YYYY-MM-DD)")
	f.StringVar(&in.FirstHarvest, "first", "", "first harvest date override (YYYY-MM-DD)")
	f.StringVar(&in.RoutineHarvest, "routine", "", "routine harvest date override (YYYY-MM-DD)")
	f.StringVar(&in.SoilType, "soil", "", "soil type label")
	f.StringVar(&in.Temperature, "temp", "", "temperature in °C")
	_ = cmd.MarkFlagRequired("crop")
	_ = cmd.MarkFlagRequired("sowing")
}

func newCalcCmd(e *env) *cobra.Command {
	var (
		in     harvest.Input
		asJSON bool
	)
	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Compute harvest dates without saving a plot",
		Example: `  cultivos calc --crop maíz --sowing 2024-03-01
  cultivos calc --crop limones --sowing 2024-02-29 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := e.rules.Calculate(in)
			if err != nil {
				return err
			}
			return printPlot(cmd.OutOrStdout(), h, asJSON)
		},
	}
	plotFlags(cmd, &in)
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	return cmd
}

func printPlot(w io.Writer, h *entities.Hectarea, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(h)
	}
	if h.Number > 0 {
		fmt.Fprintf(w, "Hectárea:          %d\n", h.Number)
	}
	fmt.Fprintf(w, "Cultivo:           %s\n", h.CropType)
	fmt.Fprintf(w, "Siembra:           %s\n", h.SowingDate)
	fmt.Fprintf(w, "Primera cosecha:   %s\n", h.FirstHarvest)
	fmt.Fprintf(w, "Cosecha rutinaria: %s\n", h.RoutineHarvest)
	if h.SoilType != nil {
		fmt.Fprintf(w, "Suelo:             %s\n", *h.SoilType)
	}
	if h.Temperature != nil {
		fmt.Fprintf(w, "Temperatura:       %g\n", *h.Temperature)
	}
	return nil
}
