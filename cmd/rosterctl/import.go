package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/cmlabs-hris/staffsync-backend-go/internal/domain/employee"
	"github.com/spf13/cobra"
)

var (
	importUnit   string
	importDryRun bool
	importText   bool
)

var importCmd = &cobra.Command{
	Use:   "import FILE",
	Short: "Import staff records from a CSV or free-text file",
	Long: `Parse a CSV roster and add its rows to the store.

Columns are matched by header name (PEN, Name, Designation, Type, ...).
Rows whose PEN already exists are skipped and reported.

With --text the file is read as free text and parsed by Gemini, which
needs GEMINI_API_KEY.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	importCmd.Flags().StringVar(&importUnit, "unit", "", "unit code assigned to rows without one (required)")
	importCmd.Flags().BoolVar(&importDryRun, "dry-run", false, "parse and print the preview without saving")
	importCmd.Flags().BoolVar(&importText, "text", false, "treat FILE as free text for the AI parser")
	_ = importCmd.MarkFlagRequired("unit")
}

func runImport(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}

	svc, err := openServices()
	if err != nil {
		return err
	}
	defer svc.Close()

	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	var candidates []employee.Employee
	if importText {
		candidates, err = svc.importer.ParseText(ctx, string(data), importUnit)
		if err != nil {
			return err
		}
	} else {
		result, err := svc.importer.ParseCSVWithWarnings(ctx, data, importUnit)
		if err != nil {
			return err
		}
		candidates = result.Candidates
		for _, w := range result.Warnings {
			fmt.Fprintf(out, "  skipped row %d: %s\n", w.Row, w.Message)
		}
	}

	fmt.Fprintf(out, "Parsed %d row(s) for unit %s\n", len(candidates), strings.ToUpper(importUnit))
	for _, c := range candidates {
		fmt.Fprintf(out, "  %-12s %-28s %-16s %s\n", c.ID, c.Name, c.Designation, c.UnitCode)
	}

	if importDryRun {
		fmt.Fprintln(out, "Dry run, nothing saved.")
		return nil
	}

	result, err := svc.importer.Confirm(ctx, candidates)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Added %d employee(s)\n", result.Added)
	for _, msg := range result.Errors {
		fmt.Fprintln(out, "  "+msg)
	}
	return nil
}
