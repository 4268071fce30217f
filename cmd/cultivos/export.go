package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"cultivos/entities"
	catalogSvc "cultivos/pkg/catalog/service"
	"cultivos/pkg/export"
)

func newExportCmd(e *env) *cobra.Command {
	var out, kind string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write plots or a catalog to an XLSX workbook",
		Example: `  cultivos export --out hectareas.xlsx
  cultivos export --kind climate --out clima.xlsx`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := e.store(); err != nil {
				return err
			}
			f, err := os.Create(out)
			if err != nil {
				return err
			}
			if err := e.writeExport(f, kind); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", out)
			return nil
		},
	}
	cmd.Flags().StringVar(&out, "out", "", "output .xlsx file")
	cmd.Flags().StringVar(&kind, "kind", "plots", "plots, soil, climate, vegetable or crop")
	_ = cmd.MarkFlagRequired("out")
	return cmd
}

func (e *env) writeExport(f *os.File, kind string) error {
	svc := e.services()
	switch kind {
	case "plots":
		plots, err := svc.plots.List()
		if err != nil {
			return err
		}
		return export.WritePlots(f, plots)
	case catalogSvc.KindSoil:
		return exportCatalog(f, svc.soils)
	case catalogSvc.KindClimate:
		return exportCatalog(f, svc.climates)
	case catalogSvc.KindVegetable:
		return exportCatalog(f, svc.vegetables)
	case catalogSvc.KindCrop:
		return exportCatalog(f, svc.crops)
	}
	return fmt.Errorf("unknown export kind %q", kind)
}

func exportCatalog[T any, P entities.CatalogPtr[T]](f *os.File, svc catalogSvc.CatalogService[T]) error {
	rows, err := svc.List()
	if err != nil {
		return err
	}
	return export.WriteCatalog[T, P](f, P(new(T)).TableName(), rows)
}
