package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/cmlabs-hris/staffsync-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/staffsync-backend-go/internal/domain/settings"
	"github.com/cmlabs-hris/staffsync-backend-go/internal/service/exporter"
	"github.com/spf13/cobra"
)

var (
	exportUnit string
	exportOut  string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a unit's staff to CSV",
	Long: `Write the staff of one unit, or every unit with --unit ALL, as CSV.

Columns follow the enabled field configuration. Without --out the file is
named after the unit and today's date.`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportUnit, "unit", settings.AllUnits, "unit code to export")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output file, - for stdout")
}

func runExport(cmd *cobra.Command, args []string) error {
	unit := strings.ToUpper(strings.TrimSpace(exportUnit))
	if unit != settings.AllUnits && !settings.IsKnownUnit(unit) {
		return fmt.Errorf("%w: %s", employee.ErrUnknownUnit, unit)
	}

	svc, err := openServices()
	if err != nil {
		return err
	}
	defer svc.Close()

	path := exportOut
	if path == "" {
		path = exporter.FileName(unit, time.Now())
	}

	w := cmd.OutOrStdout()
	var f *os.File
	if path != "-" {
		f, err = os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}

	buf := bufio.NewWriter(w)
	count, err := svc.exporter.Export(cmd.Context(), buf, employee.EmployeeFilter{UnitCode: unit})
	if err != nil {
		return err
	}
	if err := buf.Flush(); err != nil {
		return err
	}

	if f != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Exported %d employee(s) to %s\n", count, path)
	}
	return nil
}
